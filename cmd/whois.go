package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/config"
	"github.com/radixdlt/babylon-wallet-android-sub006/ui"
)

var whoisCmd = &cobra.Command{
	Use:   "whois [query]",
	Short: "Find profile accounts by address or name",
	Long:  `Fuzzy matches the query against the address and name of every account in the profile, best match first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, _, err := accounts.LoadProfile(config.ProfileFile)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		u := ui.NewTerminalUI(cfg.Colors)
		query := strings.Join(args, " ")
		matches := profile.FindAccounts(query)
		if len(matches) == 0 {
			u.Error("No account is found with '%s'", query)
			return nil
		}
		rows := make([][]string, 0, len(matches))
		for _, acc := range matches {
			rows = append(rows, []string{acc.DisplayName, string(acc.Address)})
		}
		u.Table([]string{"Name", "Address"}, rows)
		return nil
	},
}

func init() {
	whoisCmd.Flags().StringVarP(&config.ProfileFile, "profile", "p", "", "Wallet profile json file")
	_ = whoisCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(whoisCmd)
}
