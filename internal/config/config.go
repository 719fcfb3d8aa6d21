package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Seat kinds
const (
	KindHuman = "human"
	KindAI    = "ai"
)

// Strategy names understood by the AI seat
const (
	RedrawKeepMadeHand  = "keep-made-hand"
	RedrawStandPat      = "stand-pat"
	PlayChaseFinalTrick = "chase-final-trick"
	PlayFirstLegal      = "first-legal"
)

// Storage backends for round history
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

const (
	minPlayers = 2
	maxPlayers = 10
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string // "development" or "production"
	LogLevel    string

	// Round history storage
	Storage     string
	SQLiteDSN   string
	HistoryPath string

	// Seed for the deck shuffle; 0 picks a time based seed
	Seed uint64

	// Optional YAML file describing the table
	TablePath string
	Table     TableConfig
}

// TableConfig describes who sits at the table and the house rules
type TableConfig struct {
	Players []SeatConfig `yaml:"players"`
	Rules   RulesConfig  `yaml:"rules"`
}

// SeatConfig describes one player
type SeatConfig struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Redraw string `yaml:"redraw,omitempty"`
	Play   string `yaml:"play,omitempty"`
}

// RulesConfig holds the scoring rules of the game loop
type RulesConfig struct {
	WinPoints       int `yaml:"win_points"`
	MaxRoundIndex   int `yaml:"max_round_index"`
	OutplayAward    int `yaml:"outplay_award"`
	MaxPlayAttempts int `yaml:"max_play_attempts"`
}

// DefaultRules returns the standard Chicago rules
func DefaultRules() RulesConfig {
	return RulesConfig{
		WinPoints:       52,
		MaxRoundIndex:   30,
		OutplayAward:    5,
		MaxPlayAttempts: 10,
	}
}

// DefaultTable returns a two seat table: one human, one AI
func DefaultTable() TableConfig {
	return TableConfig{
		Players: []SeatConfig{
			{Name: "Alice", Kind: KindHuman},
			{Name: "Theo", Kind: KindAI, Redraw: RedrawKeepMadeHand, Play: PlayChaseFinalTrick},
		},
		Rules: DefaultRules(),
	}
}

// Load reads the configuration from .env, environment variables and the
// optional table file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	seed, err := parseSeed(os.Getenv("CHICAGO_SEED"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("CHICAGO_LOG_LEVEL", "WARN"),
		Storage:     strings.ToLower(getEnvWithDefault("CHICAGO_STORAGE", StorageMemory)),
		SQLiteDSN:   getEnvWithDefault("CHICAGO_SQLITE_DSN", "file::memory:?cache=shared"),
		HistoryPath: getEnvWithDefault("CHICAGO_HISTORY_FILE", "data/history.json"),
		Seed:        seed,
		TablePath:   os.Getenv("CHICAGO_CONFIG"),
		Table:       DefaultTable(),
	}

	if cfg.TablePath != "" {
		table, err := LoadTable(cfg.TablePath)
		if err != nil {
			return nil, err
		}
		cfg.Table = *table
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadTable reads a table description from a YAML file. Missing rules fall
// back to the defaults.
func LoadTable(path string) (*TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML table description
func ParseTable(data []byte) (*TableConfig, error) {
	// Keys missing from the file keep their defaults; explicit zeros are kept
	table := TableConfig{Rules: DefaultRules()}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse table file: %w", err)
	}

	for i := range table.Players {
		seat := &table.Players[i]
		seat.Kind = strings.ToLower(strings.TrimSpace(seat.Kind))
		if seat.Kind == "" {
			seat.Kind = KindHuman
		}
		if seat.Kind == KindAI {
			if seat.Redraw == "" {
				seat.Redraw = RedrawKeepMadeHand
			}
			if seat.Play == "" {
				seat.Play = PlayChaseFinalTrick
			}
		}
	}

	return &table, nil
}

// validate checks the configuration for consistency
func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StorageSQLite, StorageFile:
	default:
		return fmt.Errorf("CHICAGO_STORAGE must be %q, %q or %q, got %q", StorageMemory, StorageSQLite, StorageFile, c.Storage)
	}
	if c.Storage == StorageSQLite && c.SQLiteDSN == "" {
		return fmt.Errorf("CHICAGO_SQLITE_DSN is required for sqlite storage")
	}
	return c.Table.Validate()
}

// Validate checks seats and rules
func (t *TableConfig) Validate() error {
	if len(t.Players) < minPlayers {
		return fmt.Errorf("at least %d players are required, got %d", minPlayers, len(t.Players))
	}
	if len(t.Players) > maxPlayers {
		return fmt.Errorf("at most %d players can sit at the table, got %d", maxPlayers, len(t.Players))
	}

	names := make(map[string]bool, len(t.Players))
	for i, seat := range t.Players {
		name := strings.TrimSpace(seat.Name)
		if name == "" {
			return fmt.Errorf("player %d has no name", i+1)
		}
		if names[strings.ToLower(name)] {
			return fmt.Errorf("player name %q is used twice", name)
		}
		names[strings.ToLower(name)] = true

		switch seat.Kind {
		case KindHuman:
		case KindAI:
			// Strategy names are resolved by the actor registry
			if seat.Redraw == "" || seat.Play == "" {
				return fmt.Errorf("player %q: ai seats need a redraw and a play strategy", name)
			}
		default:
			return fmt.Errorf("player %q: unknown kind %q", name, seat.Kind)
		}
	}

	r := t.Rules
	if r.WinPoints <= 0 {
		return fmt.Errorf("win_points must be positive")
	}
	if r.MaxRoundIndex < 0 {
		return fmt.Errorf("max_round_index must not be negative")
	}
	if r.OutplayAward < 0 {
		return fmt.Errorf("outplay_award must not be negative")
	}
	if r.MaxPlayAttempts < 1 {
		return fmt.Errorf("max_play_attempts must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func parseSeed(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	seed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CHICAGO_SEED must be an unsigned integer: %w", err)
	}
	return seed, nil
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
