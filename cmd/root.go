// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radixdlt/babylon-wallet-android-sub006/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txreview",
	Short: "Explain what a Radix transaction will do before it is signed",
	Long: fmt.Sprintf(`txreview reads the execution summary of a previewed Radix transaction
and explains it the way a wallet would before asking for a signature:

	1. It classifies the transaction (transfer, pool contribution or
	redemption, staking, deposit settings, account deletion, securifying
	or recovering an entity) and falls back to a raw manifest review
	when the transaction does not fit any of them.

	2. It resolves every withdrawal and deposit against a ledger snapshot,
	groups them per account with the accounts of your profile first, and
	shows predicted amounts with the guaranteed minimum.

	3. It computes the fees the wallet would lock.

Inputs are JSON files: the execution summary, a ledger snapshot with the
resources, pools, validators and dApps involved, and optionally a wallet
profile. Settings are read from txreview.yaml and from %s_* env vars.`,
		config.EnvPrefix,
	),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.ConfigFile, "config", "c", "", "config file (default is ./txreview.yaml or $HOME/.txreview/txreview.yaml)")
	rootCmd.PersistentFlags().StringP("network", "k", "mainnet", "Radix network. Valid values: \"mainnet\", \"stokenet\".")
	rootCmd.PersistentFlags().String("log-env", "development", "\"production\" logs json, anything else logs to the console")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colours")
}
