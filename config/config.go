package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/radixdlt/babylon-wallet-android-sub006/networks"
)

const EnvPrefix = "TXREVIEW"

type Config struct {
	Network                 string `mapstructure:"network"`
	DefaultDepositGuarantee string `mapstructure:"default_deposit_guarantee"`
	ResolverCacheSize       int    `mapstructure:"resolver_cache_size"`
	LogEnv                  string `mapstructure:"log_env"`
	Output                  string `mapstructure:"output"`
	Colors                  bool   `mapstructure:"colors"`
}

// Flag targets of the commands.
var (
	ConfigFile  string
	SummaryFile string
	LedgerFile  string
	ProfileFile string
	JSONOutput  bool

	SignersCount      int
	NotaryIsSignatory bool
	FeePadding        string
	TipPercentage     string
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("network", "mainnet")
	v.SetDefault("default_deposit_guarantee", "0.99")
	v.SetDefault("resolver_cache_size", 512)
	v.SetDefault("log_env", "development")
	v.SetDefault("output", "table")
	v.SetDefault("colors", true)
}

// Load reads txreview.yaml from file, or from . and $HOME/.txreview when
// file is empty, then TXREVIEW_* env vars. A missing default file is fine.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("txreview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.txreview")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	res := Config{}
	if err := v.Unmarshal(&res); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := res.Validate(); err != nil {
		return Config{}, err
	}
	return res, nil
}

func (c Config) Validate() error {
	if _, err := networks.GetNetwork(c.Network); err != nil {
		return fmt.Errorf("config network %q: %w", c.Network, err)
	}
	if _, err := c.DepositGuarantee(); err != nil {
		return err
	}
	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("config output %q: must be table or json", c.Output)
	}
	return nil
}

// DepositGuarantee is the guarantee offset used when the profile has none.
func (c Config) DepositGuarantee() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.DefaultDepositGuarantee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config default_deposit_guarantee: %w", err)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("config default_deposit_guarantee %s: must be between 0 and 1", d)
	}
	return d, nil
}
