/*
File    : psl/cmd/psl/config.go

Loads an optional `.pslrc.yaml` overriding the safety bounds from §5
and the REPL's cosmetic banner/prompt strings. Grounded on go-mix's
indirect yaml.v3 dependency, promoted to direct use here since nothing
in go-mix itself exercises it. Absence of the file is not an error —
Defaults() applies.
*/
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the subset of runtime behavior a .pslrc.yaml may
// override.
type Config struct {
	RecursionDepth    int    `yaml:"recursion_depth"`
	MaxLoopIterations int    `yaml:"max_loop_iterations"`
	Prompt            string `yaml:"prompt"`
	Banner            string `yaml:"banner"`
}

// Defaults returns the built-in bounds and cosmetics, per §5's
// "implementation-defined; the reference uses 10^7" recursion cap and
// 10^6 loop cap.
func Defaults() Config {
	return Config{
		RecursionDepth:    10_000_000,
		MaxLoopIterations: 1_000_000,
		Prompt:            "psl >>> ",
		Banner:            defaultBanner,
	}
}

// LoadConfig reads .pslrc.yaml from $PSL_CONFIG, or ./.pslrc.yaml if
// that variable is unset, layering any fields it sets over Defaults().
// A missing file is not an error.
func LoadConfig() (Config, error) {
	cfg := Defaults()

	path := os.Getenv("PSL_CONFIG")
	if path == "" {
		path = ".pslrc.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, err
	}
	if overrides.RecursionDepth > 0 {
		cfg.RecursionDepth = overrides.RecursionDepth
	}
	if overrides.MaxLoopIterations > 0 {
		cfg.MaxLoopIterations = overrides.MaxLoopIterations
	}
	if overrides.Prompt != "" {
		cfg.Prompt = overrides.Prompt
	}
	if overrides.Banner != "" {
		cfg.Banner = overrides.Banner
	}
	return cfg, nil
}

const defaultBanner = `
 ____  ____  _
|  _ \/ ___|| |
| |_) \___ \| |
|  __/ ___) | |___
|_|   |____/|_____|
`
