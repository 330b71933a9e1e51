package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ReadSeconds    int    `mapstructure:"read_timeout_seconds"`
	WriteSeconds   int    `mapstructure:"write_timeout_seconds"`
	IdleSeconds    int    `mapstructure:"idle_timeout_seconds"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI                string `mapstructure:"uri"`
	Database           string `mapstructure:"database"`
	UserCollection     string `mapstructure:"user_collection"`
	DonationCollection string `mapstructure:"donation_collection"`
}

type JWTConf struct {
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"access_ttl_minutes"`
}

type Config struct {
	App   AppConf   `mapstructure:"app"`
	Mongo MongoConf `mapstructure:"mongodb"`
	JWT   JWTConf   `mapstructure:"jwt"`

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AccessTTL       time.Duration
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()
	_ = v.BindEnv("mongodb.uri", "MONGO_URI")
	_ = v.BindEnv("mongodb.database", "MONGO_DB")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")
	_ = v.BindEnv("app.port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteSeconds) * time.Second
	cfg.IdleTimeout = time.Duration(cfg.App.IdleSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.AccessTTL = time.Duration(cfg.JWT.TTLMinutes) * time.Minute
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}
	if cfg.App.ReadSeconds == 0 {
		cfg.App.ReadSeconds = 15
	}
	if cfg.App.WriteSeconds == 0 {
		cfg.App.WriteSeconds = 15
	}
	if cfg.App.IdleSeconds == 0 {
		cfg.App.IdleSeconds = 60
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.Mongo.UserCollection == "" {
		cfg.Mongo.UserCollection = "userCollection"
	}
	if cfg.Mongo.DonationCollection == "" {
		cfg.Mongo.DonationCollection = "donationCollection"
	}
	if cfg.JWT.TTLMinutes == 0 {
		cfg.JWT.TTLMinutes = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Mongo.URI == "" {
		return errors.New("mongodb.uri is empty (set MONGO_URI)")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongodb.database is missing")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is empty (set JWT_SECRET)")
	}
	return nil
}
