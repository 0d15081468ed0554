package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/networks"
	"github.com/radixdlt/babylon-wallet-android-sub006/ui"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the supported Radix networks",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		u := ui.NewTerminalUI(cfg.Colors)
		rows := [][]string{}
		for _, n := range networks.GetSupportedNetworks() {
			name := n.GetName()
			if n == networks.CurrentNetwork() {
				name = u.Style(ui.Good(name + " (current)"))
			}
			rows = append(rows, []string{
				name,
				fmt.Sprintf("0x%02x", n.GetID()),
				n.GetHRPSuffix(),
				strings.Join(n.GetAlternativeNames(), ", "),
				n.GetXRDAddress(),
			})
		}
		u.Table([]string{"Name", "ID", "HRP", "Also known as", "XRD"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networksCmd)
}
