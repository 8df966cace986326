package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the seeder.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	S3       S3Config       `mapstructure:"s3"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
	// Transactions requires a replica set; disable for a standalone mongod,
	// at the cost of losing rollback of the current checkpoint segment.
	Transactions bool `mapstructure:"transactions"`
}

// SeedConfig controls the generation run itself.
type SeedConfig struct {
	// RNGSeed makes a run reproducible; 0 seeds from the clock.
	RNGSeed     int64 `mapstructure:"rng_seed"`
	HorizonDays int   `mapstructure:"horizon_days"`
	// BatchSize is the number of accepted sessions between checkpoint commits.
	BatchSize int `mapstructure:"batch_size"`
	// ExtraUsers are synthesized on top of the fixture users.
	ExtraUsers int `mapstructure:"extra_users"`
	// Wipe drops the data collections before seeding, making re-runs safe.
	Wipe bool `mapstructure:"wipe"`
}

// FixturesConfig selects where the fixture JSON files come from.
// Source is "embedded", "dir" or "s3".
type FixturesConfig struct {
	Source string `mapstructure:"source"`
	Dir    string `mapstructure:"dir"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	// Prefix is prepended to the fixture object keys in the bucket.
	Prefix string `mapstructure:"prefix"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. database.uri ->
	// DATABASE_URI, seed.rng_seed -> SEED_RNG_SEED.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "setlogs")
	viper.SetDefault("database.transactions", true)
	viper.SetDefault("seed.rng_seed", 0)
	viper.SetDefault("seed.horizon_days", 365)
	viper.SetDefault("seed.batch_size", 100)
	viper.SetDefault("seed.extra_users", 0)
	viper.SetDefault("seed.wipe", false)
	viper.SetDefault("fixtures.source", "embedded")

	err = viper.ReadInConfig()
	// A missing config file is fine: defaults plus env vars are a complete
	// configuration.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
