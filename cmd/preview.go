package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/config"
	"github.com/radixdlt/babylon-wallet-android-sub006/fees"
	"github.com/radixdlt/babylon-wallet-android-sub006/txanalyzer"
	"github.com/radixdlt/babylon-wallet-android-sub006/util"
)

func notaryAndSigners() fees.NotaryAndSigners {
	return fees.NotaryAndSigners{
		SignersCount:      config.SignersCount,
		NotaryIsSignatory: config.NotaryIsSignatory,
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Classify a transaction and show what it withdraws and deposits",
	Long: `Reads an execution summary and shows the transaction the way it will be
reviewed before signing: its kind, every account with the resources it sends
or receives, presented badges, the dApps, pools or validators involved and
the fees.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := prepareReview()
		if err != nil {
			return err
		}
		defer func() { _ = env.log.Sync() }()

		review := env.analyzer.Review(cmd.Context(), env.summary, env.execErr)
		var f *fees.TransactionFees
		if review.State == txanalyzer.ReviewReady || review.State == txanalyzer.ReviewRawManifest {
			resolved := fees.Resolve(env.summary, notaryAndSigners(), review.Preview)
			f = &resolved
		}

		if env.cfg.Output == "json" {
			return printJSON(cmd, util.BuildPreviewDisplay(review, f))
		}
		util.DisplayReview(env.ui, review, f)
		return nil
	},
}

func init() {
	AddInputFlagsToReviewCmds(previewCmd)
	rootCmd.AddCommand(previewCmd)
}
