package networks

type Network interface {
	GetName() string
	GetID() uint8
	GetAlternativeNames() []string
	// GetHRPSuffix is the part of every address between the entity prefix
	// and the bech32m separator, e.g. "rdx" in "account_rdx1...".
	GetHRPSuffix() string
	GetNativeTokenSymbol() string
	GetXRDAddress() string
}
