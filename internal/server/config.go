package server

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel  = "HOLEFILL_MCP_LOG_LEVEL"
	EnvWeightZ   = "HOLEFILL_WEIGHT_Z"
	EnvWeightEps = "HOLEFILL_WEIGHT_EPS"
)

const (
	defaultName     = "hole-filling-mcp"
	protocolVersion = "2024-11-05"
)

// Config holds server settings.
type Config struct {
	// Name and Version are reported in the initialize handshake.
	Name    string
	Version string

	// Debug enables per-request logging to stderr.
	Debug bool

	// Weight is the default weighting for the weighted fill strategy.
	Weight holefill.WeightParams
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Name:    defaultName,
		Version: "dev",
		Weight:  holefill.DefaultWeightParams(),
	}
}

// LoadConfig builds a Config from the environment. Invalid values are logged
// and replaced by defaults.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()
	cfg.Debug = strings.EqualFold(getenv(EnvLogLevel), "debug")

	params := cfg.Weight
	if v := getenv(EnvWeightZ); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvWeightZ, v, err)
		} else {
			params.Z = z
		}
	}
	if v := getenv(EnvWeightEps); v != "" {
		eps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("Ignoring %s=%q: %v", EnvWeightEps, v, err)
		} else {
			params.Eps = eps
		}
	}
	if err := params.Validate(); err != nil {
		log.Printf("Ignoring weight parameters from environment: %v", err)
	} else {
		cfg.Weight = params
	}
	return cfg
}
