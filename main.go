package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"degree_flowchart/internal/config"
	"degree_flowchart/internal/core"
	"degree_flowchart/internal/logger"
	"degree_flowchart/internal/nodes"
	"degree_flowchart/internal/render"
	"degree_flowchart/internal/services"
	"degree_flowchart/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using process environment")
	}

	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	if err := logger.InitLogger(env.Log); err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}

	// Load configuration from config.yaml
	yamlConfig, err := config.LoadConfig(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", env.ConfigPath, err)
	}

	store, closeStore, err := openPlanStore(ctx, env)
	if err != nil {
		return err
	}
	defer closeStore()

	plan, err := store.GetPlan(ctx, env.PlanID)
	if err != nil {
		return fmt.Errorf("error loading plan: %w", err)
	}

	catalog, err := loadCatalog(env.CatalogPath)
	if err != nil {
		return err
	}
	plan.Placements = catalog.Resolve(plan.Placements)

	composer, err := nodes.NewComposer(ctx)
	if err != nil {
		return err
	}

	processor, err := core.NewFlowchartProcessor(plan, composer, config.BuildColorConfig(yamlConfig))
	if err != nil {
		return err
	}

	logger.Info().
		Str("plan_id", plan.ID).
		Int("placements", len(plan.Placements)).
		Int("catalog", catalog.Len()).
		Str("store", env.PlanStore).
		Msg("Flowchart loaded")

	tools, err := nodes.GetTools(catalog)
	if err != nil {
		return err
	}

	session, err := newSession(ctx, processor, store, tools, render.Options{
		BoxWidth:    config.BuildRenderConfig(yamlConfig).BoxWidth,
		ShowDetails: yamlConfig.Render.ShowDetails,
	}, out)
	if err != nil {
		return err
	}
	return session.Run(ctx, in)
}

// openPlanStore creates the configured plan store and its close function
func openPlanStore(ctx context.Context, env *config.EnvConfig) (storage.PlanStore, func(), error) {
	switch env.PlanStore {
	case config.StoreRedis:
		store, err := storage.NewRedisPlanStore(ctx, env.RedisURL, env.PlanTTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case config.StoreMemory:
		// seed the memory store from the plan directory
		files := storage.NewFilePlanStore(env.PlanDir)
		ids, err := files.ListPlans(ctx)
		if err != nil {
			return nil, nil, err
		}
		store := storage.NewMemoryPlanStore()
		for _, id := range ids {
			plan, err := files.GetPlan(ctx, id)
			if err != nil {
				return nil, nil, err
			}
			if err := store.SavePlan(ctx, plan); err != nil {
				return nil, nil, err
			}
		}
		return store, func() {}, nil

	default:
		return storage.NewFilePlanStore(env.PlanDir), func() {}, nil
	}
}

// loadCatalog loads the course catalog; a missing catalog file yields an empty catalog
func loadCatalog(path string) (*services.CatalogService, error) {
	if path == "" {
		return services.NewCatalogService(nil), nil
	}

	catalog, err := services.LoadCatalog(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", path).Msg("Catalog file not found, continuing without catalog")
			return services.NewCatalogService(nil), nil
		}
		return nil, err
	}
	return catalog, nil
}
