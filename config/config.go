package config

import (
	"errors"
	"fmt"
	"strings"

	"go-ledger/common"

	"github.com/spf13/viper"
)

type Config struct {
	Log struct {
		Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
		Format string `mapstructure:"format" validate:"oneof=text json"`
	} `mapstructure:"log"`
	Ledger struct {
		FirstID           int  `mapstructure:"first_id" validate:"gte=0"`
		StrictWithdrawals bool `mapstructure:"strict_withdrawals"`
	} `mapstructure:"ledger"`
	Demo struct {
		InitialBalance float64 `mapstructure:"initial_balance"`
		DepositAmount  float64 `mapstructure:"deposit_amount" validate:"gte=0"`
	} `mapstructure:"demo"`
}

var AppConfig Config

const envPrefix = "LEDGER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("ledger.first_id", 0)
	v.SetDefault("ledger.strict_withdrawals", false)
	v.SetDefault("demo.initial_balance", 10.0)
	v.SetDefault("demo.deposit_amount", 20.0)
}

// LoadConfig reads config.yml from path into AppConfig. A missing file is not
// an error: defaults and LEDGER_* environment variables still apply.
func LoadConfig(path string) error {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := common.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	AppConfig = cfg
	return nil
}
