package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// #region config
// Config holds process-level settings. Values come from an optional YAML file,
// then env vars override, then defaults fill the gaps.
type Config struct {
	DBPath     string `yaml:"db_path"`
	ListenAddr string `yaml:"listen_addr"`

	TotalDraws int `yaml:"total_draws"`
	QuickDraws int `yaml:"quick_draws"`
	BatchSize  int `yaml:"batch_size"`

	DailyDraw     bool   `yaml:"daily_draw"`
	DailyDrawCron string `yaml:"daily_draw_cron"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DBPath:        "lotto_history.db",
		ListenAddr:    "localhost:8090",
		TotalDraws:    10000,
		QuickDraws:    100,
		BatchSize:     500,
		DailyDrawCron: "0 9 * * *",
	}
}
// #endregion config

// #region load
// Load reads the config file named by LOTTO_CONFIG (default lotto.yaml) if it
// exists, applies env overrides, and fills defaults. A missing file is fine; a
// malformed one is an error.
func Load() (Config, error) {
	cfg := Config{}

	path := "lotto.yaml"
	if p := os.Getenv("LOTTO_CONFIG"); p != "" {
		path = p
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	envOverride(&cfg.DBPath, "LOTTO_DB")
	envOverride(&cfg.ListenAddr, "LOTTO_ADDR")
	envOverrideInt(&cfg.TotalDraws, "LOTTO_TOTAL_DRAWS")
	envOverrideInt(&cfg.QuickDraws, "LOTTO_QUICK_DRAWS")
	envOverrideInt(&cfg.BatchSize, "LOTTO_BATCH_SIZE")
	envOverrideBool(&cfg.DailyDraw, "LOTTO_DAILY_DRAW")
	envOverride(&cfg.DailyDrawCron, "LOTTO_DAILY_DRAW_CRON")

	def := Default()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = def.ListenAddr
	}
	if cfg.TotalDraws <= 0 {
		cfg.TotalDraws = def.TotalDraws
	}
	if cfg.QuickDraws <= 0 {
		cfg.QuickDraws = def.QuickDraws
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.DailyDrawCron == "" {
		cfg.DailyDrawCron = def.DailyDrawCron
	}
	return cfg, nil
}
// #endregion load

// #region helpers
func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
// #endregion helpers
