package cmd

import (
	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/config"
)

func AddInputFlagsToReviewCmds(c *cobra.Command) {
	c.Flags().
		StringVarP(&config.SummaryFile, "summary", "s", "", "Execution summary json file, as returned by the transaction preview")
	c.Flags().
		StringVarP(&config.LedgerFile, "ledger", "l", "", "Ledger snapshot json file with the resources, pools, validators and dApps the transaction involves")
	c.Flags().
		StringVarP(&config.ProfileFile, "profile", "p", "", "Wallet profile json file. Without it no account is considered yours")
	c.Flags().
		BoolVarP(&config.JSONOutput, "json", "j", false, "Print json instead of tables")
	c.Flags().
		IntVar(&config.SignersCount, "signers", 1, "Number of signatures the transaction will carry")
	c.Flags().
		BoolVar(&config.NotaryIsSignatory, "notary-signatory", false, "The notary also signs the intent")
	_ = c.MarkFlagRequired("summary")
	_ = c.MarkFlagRequired("ledger")
}
