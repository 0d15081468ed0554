package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/config"
	"github.com/radixdlt/babylon-wallet-android-sub006/logger"
	"github.com/radixdlt/babylon-wallet-android-sub006/networks"
	"github.com/radixdlt/babylon-wallet-android-sub006/txanalyzer"
	"github.com/radixdlt/babylon-wallet-android-sub006/ui"
)

// reviewEnv is everything a review command needs, read from its flags.
type reviewEnv struct {
	cfg      config.Config
	log      *zap.Logger
	ui       ui.UI
	analyzer *txanalyzer.Analyzer
	summary  *common.ExecutionSummary
	// execErr is set when the summary file holds an execution failure.
	execErr error
}

func loadConfig() (config.Config, error) {
	v := viper.New()
	for key, flag := range map[string]string{"network": "network", "log_env": "log-env"} {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(v, config.ConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if noColor, _ := rootCmd.PersistentFlags().GetBool("no-color"); noColor {
		cfg.Colors = false
	}
	if config.JSONOutput {
		cfg.Output = "json"
	}
	if err = networks.SetNetwork(cfg.Network); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadProfile reads the profile of --profile, or an empty one without it.
// The configured deposit guarantee applies unless the profile sets its own,
// zero included.
func loadProfile(cfg config.Config, log *zap.Logger) (*accounts.Profile, *accounts.MemoryStore, error) {
	profile, store := &accounts.Profile{}, accounts.NewMemoryStore()
	if config.ProfileFile != "" {
		var err error
		if profile, store, err = accounts.LoadProfile(config.ProfileFile); err != nil {
			return nil, nil, err
		}
	}
	if _, set := profile.DepositGuarantee(); !set {
		guarantee, err := cfg.DepositGuarantee()
		if err != nil {
			return nil, nil, err
		}
		profile.DefaultDepositGuarantee = &guarantee
	}
	if profile.Network != "" && profile.Network != cfg.Network {
		log.Warn("profile belongs to another network",
			zap.String("profile_network", profile.Network),
			zap.String("network", cfg.Network),
		)
	}
	return profile, store, nil
}

func prepareReview() (*reviewEnv, error) {
	if config.SignersCount < 0 {
		return nil, fmt.Errorf("--signers must not be negative, got %d", config.SignersCount)
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	env := &reviewEnv{
		cfg: cfg,
		log: log,
		ui:  ui.NewTerminalUI(cfg.Colors),
	}

	stop := env.ui.Spinner("Loading ledger snapshot...")
	ledger, err := assets.LoadSnapshot(config.LedgerFile)
	stop()
	if err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}
	resolver, err := assets.NewCached(ledger, cfg.ResolverCacheSize, log)
	if err != nil {
		return nil, err
	}

	profile, store, err := loadProfile(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	env.analyzer = txanalyzer.NewAnalyzer(txanalyzer.NewAnalysisContext(resolver, profile, store, log))

	content, err := os.ReadFile(config.SummaryFile)
	if err != nil {
		return nil, err
	}
	env.summary, env.execErr = common.DecodeExecutionSummary(content)
	var execErr *common.ExecutionError
	if env.execErr != nil && !errors.As(env.execErr, &execErr) {
		return nil, env.execErr
	}
	return env, nil
}
