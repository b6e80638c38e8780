package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/render"
)

const (
	configFolderName  = "mailmd"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

const (
	envEngine         = "MAILMD_ENGINE"
	envMinTextLength  = "MAILMD_MIN_TEXT_LENGTH"
	envExpandPasses   = "MAILMD_EXPAND_PASSES"
	envCollapsePasses = "MAILMD_COLLAPSE_PASSES"
	envDisable        = "MAILMD_DISABLE"
)

type Config struct {
	Engine         render.Engine
	MinTextLength  int
	ExpandPasses   int
	CollapsePasses int
	Raw            bool
	Features       map[string]bool
}

func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Engine:         render.EngineCard,
		MinTextLength:  markdownify.DefaultMinTextLength,
		ExpandPasses:   markdownify.DefaultExpandPasses,
		CollapsePasses: markdownify.DefaultCollapsePasses,
		Features:       map[string]bool{},
	}

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Options converts the config into engine options. Raw disables every
// feature regardless of the feature table.
func (c Config) Options() markdownify.Options {
	feats := markdownify.FeaturesFrom(c.Features)
	if c.Raw {
		feats = markdownify.NoFeatures()
	}
	return markdownify.Options{
		Features:       feats,
		MinTextLength:  c.MinTextLength,
		ExpandPasses:   c.ExpandPasses,
		CollapsePasses: c.CollapsePasses,
	}
}

type fileConfig struct {
	Engine         *string         `toml:"engine"`
	MinTextLength  *int            `toml:"min_text_length"`
	ExpandPasses   *int            `toml:"expand_passes"`
	CollapsePasses *int            `toml:"collapse_passes"`
	Raw            *bool           `toml:"raw"`
	Features       map[string]bool `toml:"features"`
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	if err := validateFileConfig(path, cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func validateFileConfig(path string, cfg fileConfig) error {
	if cfg.Engine != nil {
		if _, err := render.ParseEngine(*cfg.Engine); err != nil {
			return fmt.Errorf("invalid config file %q: engine: %w", path, err)
		}
	}
	if cfg.MinTextLength != nil && *cfg.MinTextLength < 1 {
		return fmt.Errorf("invalid config file %q: min_text_length must be >= 1", path)
	}
	if cfg.ExpandPasses != nil && *cfg.ExpandPasses < 1 {
		return fmt.Errorf("invalid config file %q: expand_passes must be >= 1", path)
	}
	if cfg.CollapsePasses != nil && *cfg.CollapsePasses < 1 {
		return fmt.Errorf("invalid config file %q: collapse_passes must be >= 1", path)
	}
	for key := range cfg.Features {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid config file %q: features keys must be non-empty", path)
		}
	}
	return nil
}

func applyFileConfig(cfg *Config, fileCfg fileConfig) {
	if fileCfg.Engine != nil {
		cfg.Engine, _ = render.ParseEngine(*fileCfg.Engine)
	}
	if fileCfg.MinTextLength != nil {
		cfg.MinTextLength = *fileCfg.MinTextLength
	}
	if fileCfg.ExpandPasses != nil {
		cfg.ExpandPasses = *fileCfg.ExpandPasses
	}
	if fileCfg.CollapsePasses != nil {
		cfg.CollapsePasses = *fileCfg.CollapsePasses
	}
	if fileCfg.Raw != nil {
		cfg.Raw = *fileCfg.Raw
	}
	for k, v := range fileCfg.Features {
		cfg.Features[strings.ToLower(strings.TrimSpace(k))] = v
	}
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(envEngine); ok && v != "" {
		if engine, err := render.ParseEngine(v); err == nil {
			cfg.Engine = engine
		}
	}
	if v, ok := os.LookupEnv(envMinTextLength); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.MinTextLength = n
		}
	}
	if v, ok := os.LookupEnv(envExpandPasses); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.ExpandPasses = n
		}
	}
	if v, ok := os.LookupEnv(envCollapsePasses); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.CollapsePasses = n
		}
	}
	if v, ok := os.LookupEnv(envDisable); ok && v != "" {
		for _, key := range SplitList(v) {
			cfg.Features[key] = false
		}
	}
}

// SplitList splits a comma separated list of feature keys, lowercased and
// with blanks dropped.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
