package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis   `yaml:"redis"`
	Discord  Discord `yaml:"discord"`
	Match    Match   `yaml:"match"`
}

// Redis backs the display name cache. An empty host disables the cache.
type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	NameTTL time.Duration `yaml:"name-ttl" env:"REDIS_NAME_TTL" env-default:"10m"`
}

type Discord struct {
	Token         string `yaml:"token" env:"DISCORD_TOKEN" env-required:"true"`
	ApplicationID string `yaml:"application-id" env:"DISCORD_APPLICATION_ID" env-default:""`
	// GuildID limits command registration to one guild; empty registers globally.
	GuildID string `yaml:"guild-id" env:"DISCORD_GUILD_ID" env-default:""`
}

// Match policy. Every field defaults to its zero value.
type Match struct {
	// KeepSelectionAfterCommit leaves the mover's row and column picked after a successful commit.
	KeepSelectionAfterCommit bool `yaml:"keep-selection-after-commit" env:"MATCH_KEEP_SELECTION_AFTER_COMMIT" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) Enabled() bool {
	return that.Host != ""
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
