package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/config"
	"github.com/radixdlt/babylon-wallet-android-sub006/fees"
	"github.com/radixdlt/babylon-wallet-android-sub006/util"
)

var feesCmd = &cobra.Command{
	Use:   "fees",
	Short: "Show the fees of a transaction",
	Long: `Shows the network and royalty fees of a transaction and what the wallet
would lock to pay them. With --padding or --tip it also shows the amount to
lock in advanced mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := prepareReview()
		if err != nil {
			return err
		}
		defer func() { _ = env.log.Sync() }()
		if env.execErr != nil {
			return env.execErr
		}

		padding, err := common.StringToDecimal(config.FeePadding)
		if err != nil {
			return fmt.Errorf("--padding: %w", err)
		}
		tip, err := common.StringToDecimal(config.TipPercentage)
		if err != nil {
			return fmt.Errorf("--tip: %w", err)
		}

		// guarantees depend on the preview; a failed analysis just has none
		preview, err := env.analyzer.Analyze(cmd.Context(), env.summary)
		if err != nil {
			env.ui.Warn("Cannot analyze the transaction, guarantees are not counted: %s", err)
		}
		f := fees.Resolve(env.summary, notaryAndSigners(), preview)
		toLock := f.TransactionFeeToLock(padding, tip)

		if env.cfg.Output == "json" {
			return printJSON(cmd, struct {
				*util.FeesDisplay
				ToLock string `json:"to_lock"`
			}{util.BuildFeesDisplay(f), common.FormatAmount(toLock, util.AmountDecimals)})
		}
		util.DisplayFees(env.ui, f)
		if !padding.IsZero() || !tip.IsZero() {
			env.ui.Critical("To lock: %s XRD", common.FormatAmount(toLock, util.AmountDecimals))
		}
		return nil
	},
}

func init() {
	AddInputFlagsToReviewCmds(feesCmd)
	feesCmd.Flags().StringVar(&config.FeePadding, "padding", "0", "XRD added on top of the fee in advanced mode")
	feesCmd.Flags().StringVar(&config.TipPercentage, "tip", "0", "Tip to the validator in percent of the execution and finalization cost")
	rootCmd.AddCommand(feesCmd)
}
