package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"degree_flowchart/internal/storage"

	"github.com/joho/godotenv"
)

// Seeds a plan from the plan directory into Redis and reads it back.
//
//	REDIS_URL=redis://localhost:6379/0 go run ./test sample
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	planID := "sample"
	if len(os.Args) > 1 {
		planID = os.Args[1]
	}
	planDir := os.Getenv("PLAN_DIR")
	if planDir == "" {
		planDir = "data/plans"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisStore, err := storage.NewRedisPlanStore(ctx, os.Getenv("REDIS_URL"), time.Hour)
	if err != nil {
		log.Fatalf("Failed to create Redis plan store: %v", err)
	}
	defer redisStore.Close()
	fmt.Println("✅ Connected to Redis successfully")

	plan, err := storage.NewFilePlanStore(planDir).GetPlan(ctx, planID)
	if err != nil {
		log.Fatalf("Failed to load plan %s: %v", planID, err)
	}

	if err := redisStore.SavePlan(ctx, plan); err != nil {
		log.Fatalf("Failed to save plan: %v", err)
	}
	fmt.Printf("✅ Saved plan %s (%d placements)\n", plan.ID, len(plan.Placements))

	loaded, err := redisStore.GetPlan(ctx, plan.ID)
	if err != nil {
		log.Fatalf("Failed to read plan back: %v", err)
	}
	if len(loaded.Placements) != len(plan.Placements) {
		log.Fatalf("Placement count mismatch: saved %d, loaded %d", len(plan.Placements), len(loaded.Placements))
	}
	fmt.Printf("✅ Read plan %s back from Redis\n", loaded.ID)

	ids, err := redisStore.ListPlans(ctx)
	if err != nil {
		log.Fatalf("Failed to list plans: %v", err)
	}
	fmt.Printf("📋 Plans in Redis: %v\n", ids)
}
