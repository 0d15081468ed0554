package main

import "github.com/radixdlt/babylon-wallet-android-sub006/cmd"

func main() {
	cmd.Execute()
}
