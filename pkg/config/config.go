package config

// Package config provides a reusable loader for gitgold node configuration
// files and environment variables. It is versioned so that applications can
// depend on a stable API contract.
//
// Version: v0.1.0

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/nathfavour/gitgold/core"
	"github.com/nathfavour/gitgold/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config represents the unified configuration for a gitgold node. It
// mirrors the structure of the YAML files Load reads from cmd/config or
// config.
type Config struct {
	Shamir struct {
		K int `mapstructure:"k" json:"k"`
		N int `mapstructure:"n" json:"n"`
	} `mapstructure:"shamir" json:"shamir"`

	Storage struct {
		ChunkSizeBytes int    `mapstructure:"chunk_size_bytes" json:"chunk_size_bytes"`
		LedgerPath     string `mapstructure:"ledger_path" json:"ledger_path"`
		SnapshotPath   string `mapstructure:"snapshot_path" json:"snapshot_path"`
		SnapshotEvery  int    `mapstructure:"snapshot_every" json:"snapshot_every"`
	} `mapstructure:"storage" json:"storage"`

	Challenge struct {
		TimeoutSecs   uint64 `mapstructure:"timeout_secs" json:"timeout_secs"`
		MinBytes      int    `mapstructure:"min_bytes" json:"min_bytes"`
		MaxBytes      int    `mapstructure:"max_bytes" json:"max_bytes"`
		BonusMicroGC  uint64 `mapstructure:"bonus_micro_gc" json:"bonus_micro_gc"`
	} `mapstructure:"challenge" json:"challenge"`

	Fees struct {
		PushFeeRateMicroGC    uint64 `mapstructure:"push_fee_rate_micro_gc" json:"push_fee_rate_micro_gc"`
		PullFeeRateMicroGC    uint64 `mapstructure:"pull_fee_rate_micro_gc" json:"pull_fee_rate_micro_gc"`
		BandwidthRateMicroGC  uint64 `mapstructure:"bandwidth_rate_micro_gc" json:"bandwidth_rate_micro_gc"`
		PushBurnRateBps       uint32 `mapstructure:"push_burn_rate_bps" json:"push_burn_rate_bps"`
		PullBurnRateBps       uint32 `mapstructure:"pull_burn_rate_bps" json:"pull_burn_rate_bps"`
	} `mapstructure:"fees" json:"fees"`

	Supply struct {
		InitialMicroGC      uint64 `mapstructure:"initial_micro_gc" json:"initial_micro_gc"`
		EmissionRateBps     uint32 `mapstructure:"emission_rate_bps" json:"emission_rate_bps"`
		EmissionDecreaseBps uint32 `mapstructure:"emission_decrease_bps" json:"emission_decrease_bps"`
	} `mapstructure:"supply" json:"supply"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
		File  string `mapstructure:"file" json:"file"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and
// returned.
//
// The function uses the provided environment name to merge additional
// config files. If env is empty, only the default configuration is
// loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, utils.Wrap(err, "load config")
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.AutomaticEnv()

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the GITGOLD_ENV environment
// variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("GITGOLD_ENV", ""))
}

// ToCoreConfig maps the loaded node configuration onto the domain-level
// core.Config tunables used by the field/challenge/ledger components.
func (c *Config) ToCoreConfig() core.Config {
	return core.Config{
		K:         c.Shamir.K,
		N:         c.Shamir.N,
		ChunkSize: c.Storage.ChunkSizeBytes,

		ChallengeTimeoutSecs: c.Challenge.TimeoutSecs,
		ChallengeMinBytes:    c.Challenge.MinBytes,
		ChallengeMaxBytes:    c.Challenge.MaxBytes,
		ChallengeBonus:       c.Challenge.BonusMicroGC,

		PushFeeRate:   c.Fees.PushFeeRateMicroGC,
		PullFeeRate:   c.Fees.PullFeeRateMicroGC,
		BandwidthRate: c.Fees.BandwidthRateMicroGC,

		PushBurnRateBps: c.Fees.PushBurnRateBps,
		PullBurnRateBps: c.Fees.PullBurnRateBps,

		InitialSupply:       c.Supply.InitialMicroGC,
		EmissionRateBps:     c.Supply.EmissionRateBps,
		EmissionDecreaseBps: c.Supply.EmissionDecreaseBps,

		LedgerPath:       c.Storage.LedgerPath,
		SnapshotInterval: c.Storage.SnapshotEvery,
		LogLevel:         c.Logging.Level,
	}
}
