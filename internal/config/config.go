// Package config holds the dispatch loop's tunable constants.
//
// The contest protocol takes no flags, environment variables, or config
// files (§6), so there is nothing to parse at runtime. The literal values
// are still kept out of the code as a named, documented TOML document
// (defaults.toml), compiled in through go:embed and decoded via
// BurntSushi/toml on each DefaultConfig call — the same shape teacher's daemon package uses for its
// Config/DefaultConfig pair, adapted to a compile-time-only source.
package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Annealer holds the geometric-schedule endpoints for one Annealer instance.
type Annealer struct {
	T0 float64 `toml:"t0"`
	T1 float64 `toml:"t1"`
}

// Config collects every tunable named in spec.md §4 and §9.
type Config struct {
	DayLimit            int `toml:"day_limit"`
	OptimizerIterations int `toml:"optimizer_iterations"`
	SkillIterations     int `toml:"skill_iterations"`

	SkillInitRangeMin float64 `toml:"skill_init_range_min"`
	SkillInitRangeMax float64 `toml:"skill_init_range_max"`

	SkillProposalMax int `toml:"skill_proposal_max"`

	OptimizerAnnealer Annealer `toml:"optimizer_annealer"`
	SkillAnnealer     Annealer `toml:"skill_annealer"`
}

// DefaultConfig decodes the embedded defaults document. It panics on
// decode failure — a malformed defaults.toml is a build-time bug, not a
// runtime condition callers can recover from.
func DefaultConfig() Config {
	var cfg Config
	if _, err := toml.Decode(string(defaultsTOML), &cfg); err != nil {
		panic(fmt.Errorf("config: decode embedded defaults: %w", err))
	}
	return cfg
}
