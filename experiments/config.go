package experiments

import (
	"errors"
	"fmt"
	"os"

	"kishogi/experiments/metrics"
	"kishogi/meta"

	"gopkg.in/yaml.v3"
)

// Matchup pairs two agents by AgentConfig.ID.
type Matchup struct {
	Black int `yaml:"black"`
	White int `yaml:"white"`
}

type Config struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"` // Per matchup
	MaxTurns  int                   `yaml:"max_turns"`
	UseKi     bool                  `yaml:"ki"`
	Seed      uint64                `yaml:"seed"` // 0 seeds from the clock
	OutputDir string                `yaml:"output_dir"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	Matchups  []Matchup             `yaml:"matchups"`
}

// DefaultConfig plays every tier against the medium tier.
func DefaultConfig() Config {
	cfg := Config{
		Name:      "difficulty",
		Games:     4,
		MaxTurns:  meta.MAX_TURNS,
		UseKi:     true,
		OutputDir: "experiments",
	}
	for d := meta.MIN_DIFFICULTY; d <= meta.MAX_DIFFICULTY; d++ {
		cfg.Agents = append(cfg.Agents, metrics.AgentConfig{ID: d, Difficulty: d, Goroutines: meta.GO_ROUTINES})
		if d != 2 {
			cfg.Matchups = append(cfg.Matchups, Matchup{Black: d, White: 2})
		}
	}
	return cfg
}

// ThroughputConfig plays the extreme tier against itself with growing
// numbers of goroutines, to measure search speedup.
func ThroughputConfig() Config {
	cfg := Config{
		Name:      "throughput",
		Games:     1,
		MaxTurns:  40,
		OutputDir: "experiments",
	}
	for i, goroutines := range []int{1, 2, 4, 8, 16} {
		id := i + 1
		cfg.Agents = append(cfg.Agents, metrics.AgentConfig{ID: id, Difficulty: meta.MAX_DIFFICULTY, Goroutines: goroutines})
		cfg.Matchups = append(cfg.Matchups, Matchup{Black: id, White: id})
	}
	return cfg
}

// LoadConfig reads a YAML experiment file over the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	if c.MaxTurns <= 0 {
		return errors.New("max_turns must be positive")
	}
	if len(c.Matchups) == 0 {
		return errors.New("no matchups")
	}
	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if a.Difficulty < meta.MIN_DIFFICULTY || a.Difficulty > meta.MAX_DIFFICULTY {
			return fmt.Errorf("agent %d: difficulty %d out of range", a.ID, a.Difficulty)
		}
		if ids[a.ID] {
			return fmt.Errorf("agent %d defined twice", a.ID)
		}
		ids[a.ID] = true
	}
	for _, m := range c.Matchups {
		if !ids[m.Black] || !ids[m.White] {
			return fmt.Errorf("matchup %d vs %d: unknown agent", m.Black, m.White)
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
