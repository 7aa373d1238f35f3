package main

import (
	"github.com/BurntSushi/toml"
	"gitlab.com/NebulousLabs/errors"
)

// cliConfig holds the defaults the verify/gen-fixture subcommands fall back
// to when a flag isn't set explicitly. The zero value is valid: an empty
// Personal falls back to mmr.DefaultPersonal, and a zero StackCapacity falls
// back to mmr.DefaultStackCapacity.
type cliConfig struct {
	Personal      string `toml:"personal"`
	StackCapacity int    `toml:"stack_capacity"`
}

// loadConfig reads a TOML config file. An empty path returns the zero
// config rather than an error, since both subcommands work without one.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cliConfig{}, errors.AddContext(err, "loading config file "+path)
	}
	return cfg, nil
}
