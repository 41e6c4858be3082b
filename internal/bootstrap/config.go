package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"

	"baduk_core/internal/domain/game"
	"baduk_core/internal/errors"
)

type Config struct {
	BoardSize int     `mapstructure:"BOARD_SIZE"`
	RuleSet   string  `mapstructure:"RULE_SET"`
	Komi      float64 `mapstructure:"KOMI"`
	Handicap  int     `mapstructure:"HANDICAP"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	viper.SetDefault("BOARD_SIZE", 19)
	viper.SetDefault("RULE_SET", string(game.RuleSetChinese))
	viper.SetDefault("HANDICAP", 0)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if !viper.IsSet("KOMI") {
		cfg.Komi = game.RuleSet(cfg.RuleSet).DefaultKomi()
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BoardSize < game.MinBoardSize {
		return fmt.Errorf("%w: got %d", errors.ErrInvalidBoardSize, c.BoardSize)
	}
	if !game.RuleSet(c.RuleSet).Valid() {
		return fmt.Errorf("%w: %q", errors.ErrInvalidRuleSet, c.RuleSet)
	}
	if c.Handicap < 0 {
		return fmt.Errorf("%w: got %d stones", errors.ErrInvalidHandicap, c.Handicap)
	}
	return nil
}

func (c *Config) GameConfig() game.Config {
	return game.Config{
		BoardSize: c.BoardSize,
		RuleSet:   game.RuleSet(c.RuleSet),
		Komi:      c.Komi,
		Handicap:  c.Handicap,
	}
}
