package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ouankou/roup/internal/lang"
)

// Config is the shape of an optional roup.toml project file: persistent
// defaults so a repeat invocation (scan, debug) does not need to repeat
// --lang every time, plus the directory scan --cache stores its cache in.
type Config struct {
	DefaultLanguage string `toml:"default_language"`
	CacheDir        string `toml:"cache_dir"`
}

// loadConfig reads path if non-empty, else looks for ./roup.toml. A
// missing file at the default location is not an error; an explicitly
// named --config path that is missing is.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		path = "roup.toml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: failed to parse config: %w", path, err)
	}
	return cfg, nil
}

func resolveLangFlag(cmd *cobra.Command) (lang.Language, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("lang")
	if err != nil {
		return 0, err
	}
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return 0, err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return 0, err
	}
	if !cmd.Root().PersistentFlags().Changed("lang") && cfg.DefaultLanguage != "" {
		flag = cfg.DefaultLanguage
	}
	return parseLangName(flag)
}

func parseLangName(name string) (lang.Language, error) {
	switch name {
	case "c":
		return lang.C, nil
	case "c++", "cxx", "cpp":
		return lang.CXX, nil
	case "fortran-free", "f90", "fortran":
		return lang.FortranFree, nil
	case "fortran-fixed", "f77":
		return lang.FortranFixed, nil
	default:
		return 0, fmt.Errorf("unknown language %q (want c|c++|fortran-free|fortran-fixed)", name)
	}
}

func resolveCacheDir(cmd *cobra.Command) (string, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return "", err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return "", err
	}
	if cfg.CacheDir == "" {
		return "", nil
	}
	if filepath.IsAbs(cfg.CacheDir) {
		return cfg.CacheDir, nil
	}
	return filepath.Join(filepath.Dir(configPath), cfg.CacheDir), nil
}
