package networks

// radixNetwork is a statically known network. Every supported network is
// one of these; only the constants differ.
type radixNetwork struct {
	name             string
	id               uint8
	alternativeNames []string
	hrpSuffix        string
	xrd              string
}

func (self *radixNetwork) GetName() string {
	return self.name
}

func (self *radixNetwork) GetID() uint8 {
	return self.id
}

func (self *radixNetwork) GetAlternativeNames() []string {
	return self.alternativeNames
}

func (self *radixNetwork) GetHRPSuffix() string {
	return self.hrpSuffix
}

func (self *radixNetwork) GetNativeTokenSymbol() string {
	return "XRD"
}

func (self *radixNetwork) GetXRDAddress() string {
	return self.xrd
}

var Mainnet Network = &radixNetwork{
	name:             "mainnet",
	id:               0x01,
	alternativeNames: []string{"babylon"},
	hrpSuffix:        "rdx",
	xrd:              "resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd",
}

var Stokenet Network = &radixNetwork{
	name:             "stokenet",
	id:               0x02,
	alternativeNames: []string{"testnet"},
	hrpSuffix:        "tdx_2_",
	xrd:              "resource_tdx_2_1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxtfd2jc",
}
