package config

import (
	"fmt"
	"os"
	"time"

	"degree_flowchart/internal/logger"
	"degree_flowchart/pkg"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Plan store backends
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// YAMLConfig represents the structure of config.yaml
type YAMLConfig struct {
	Flowchart struct {
		Colors     map[string]string `yaml:"colors"`
		ColorOrder []string          `yaml:"color_order"`
	} `yaml:"flowchart"`
	Render RenderConfig `yaml:"render"`
}

// RenderConfig holds terminal rendering options
type RenderConfig struct {
	BoxWidth    int  `yaml:"box_width"`
	ShowDetails bool `yaml:"show_details"`
}

// EnvConfig holds settings bound from the environment
type EnvConfig struct {
	ConfigPath  string           `envconfig:"FLOWCHART_CONFIG" default:"config.yaml"`
	PlanID      string           `envconfig:"PLAN_ID" default:"sample"`
	PlanStore   string           `envconfig:"PLAN_STORE" default:"file"`
	PlanDir     string           `envconfig:"PLAN_DIR" default:"data/plans"`
	CatalogPath string           `envconfig:"CATALOG_PATH" default:"data/catalog.yaml"`
	RedisURL    string           `envconfig:"REDIS_URL"`
	PlanTTL     time.Duration    `envconfig:"PLAN_TTL" default:"0s"`
	Log         logger.LogConfig `envconfig:""`
}

// LoadEnv binds the environment into EnvConfig
func LoadEnv() (*EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	switch env.PlanStore {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return nil, fmt.Errorf("invalid PLAN_STORE %q: must be %q, %q or %q", env.PlanStore, StoreMemory, StoreFile, StoreRedis)
	}

	return &env, nil
}

// LoadConfig loads configuration from config.yaml
func LoadConfig(filepath string) (*YAMLConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config YAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	return &config, nil
}

// BuildColorConfig creates the default ColorConfig from the YAML config
func BuildColorConfig(yamlConfig *YAMLConfig) pkg.ColorConfig {
	colors := pkg.ColorConfig{
		Colors: make(map[string]string, len(yamlConfig.Flowchart.Colors)),
		Order:  append([]string(nil), yamlConfig.Flowchart.ColorOrder...),
	}
	for category, color := range yamlConfig.Flowchart.Colors {
		colors.Colors[category] = color
	}
	return colors
}

// BuildRenderConfig fills render defaults
func BuildRenderConfig(yamlConfig *YAMLConfig) RenderConfig {
	render := yamlConfig.Render
	if render.BoxWidth <= 0 {
		render.BoxWidth = 22
	}
	return render
}
