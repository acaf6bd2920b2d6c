// Package config loads print-tree defaults and merges them with flags.
package config

import (
	"errors"
	"io/fs"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/taigrr/cli-commands/internal/types"
)

// DefaultPath is looked up in the working directory.
const DefaultPath = "print_tree_config.json"

// Load reads the config file at path. Problems are logged and yield an
// empty config; they never stop the caller.
func Load(afs afero.Fs, path string, logger *log.Logger) types.TreeConfig {
	if afs == nil {
		afs = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.Default()
	}

	v := viper.New()
	v.SetFs(afs)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Infof("Configuration file not found at %s. Use --help for instructions.", path)
		case errors.As(err, &parseErr):
			logger.Infof("Malformed configuration file at %s. Use --help for instructions.", path)
			logger.Debug("config parse error", "path", path, "err", err)
		default:
			logger.Warn("failed to read configuration file", "path", path, "err", err)
		}
		return types.TreeConfig{}
	}

	cfg := types.TreeConfig{
		Avoid:          v.GetStringSlice("avoid"),
		OmitExtensions: v.GetStringSlice("omit_extensions"),
	}
	logger.Debug("loaded configuration", "path", v.ConfigFileUsed(), "avoid", cfg.Avoid, "omit_extensions", cfg.OmitExtensions)
	return cfg
}

// Merge combines config defaults with command-line values. Flags extend the
// config lists rather than replacing them; only comes from flags alone.
func Merge(cfg types.TreeConfig, avoid, omit, only []string) types.FilterConfig {
	return types.FilterConfig{
		Avoid:          union(cfg.Avoid, avoid),
		OmitExtensions: union(cfg.OmitExtensions, omit),
		OnlyExtensions: union(nil, only),
	}
}

// union keeps first-seen order and drops duplicates.
func union(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, v := range list {
			if !slices.Contains(out, v) {
				out = append(out, v)
			}
		}
	}
	return out
}
