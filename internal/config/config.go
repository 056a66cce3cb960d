package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"tricktaker-server/internal/util"
	"tricktaker-server/pkg/bot"
	"tricktaker-server/pkg/playable/tricks"
	"tricktaker-server/pkg/ruleset"
)

// Config provides configuration for the trick-taking server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		RuleSet    string `yaml:"ruleSet" envconfig:"rule_set"`
		BotLevel   string `yaml:"botLevel" envconfig:"bot_level"`
		BotDelayMS int    `yaml:"botDelayMs" envconfig:"bot_delay_ms"`
		SeatCount  int    `yaml:"seatCount" envconfig:"seat_count"`
		HandSize   int    `yaml:"handSize" envconfig:"hand_size"`
		MaxRounds  int    `yaml:"maxRounds" envconfig:"max_rounds"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Log.Level = "info"
	cfg.Game.RuleSet = ruleset.Default.ID()
	cfg.Game.BotLevel = bot.LevelStandard.String()
	cfg.Game.BotDelayMS = int(tricks.DefaultBotDelay / time.Millisecond)
	cfg.Game.SeatCount = tricks.DefaultSeatCount
	cfg.Game.HandSize = tricks.DefaultHandSize
	cfg.Game.MaxRounds = tricks.DefaultMaxRounds

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("TRICKS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("tricks", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions converts the game section into engine options
func (c Config) GameOptions() (tricks.Options, error) {
	opts := tricks.DefaultOptions()

	rs, err := ruleset.Get(c.Game.RuleSet)
	if err != nil {
		return opts, err
	}

	level, err := bot.GetLevel(c.Game.BotLevel)
	if err != nil {
		return opts, err
	}

	opts.RuleSet = rs
	opts.BotLevel = level
	opts.BotDelay = time.Duration(c.Game.BotDelayMS) * time.Millisecond
	opts.SeatCount = c.Game.SeatCount
	opts.HandSize = c.Game.HandSize
	opts.MaxRounds = c.Game.MaxRounds

	return opts, nil
}
