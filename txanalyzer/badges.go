package txanalyzer

import (
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// Badge is a resource presented as a proof. It is shown, never moved.
type Badge struct {
	Resource assets.Resource
}

// badges resolves the presented proofs. Proofs of resources that are not
// on ledger are skipped.
func (self *resolution) badges() []Badge {
	res := []Badge{}
	for _, proof := range self.summary.PresentedProofs {
		a, found := self.onLedger[proof.ProofResource()]
		if !found {
			continue
		}
		r := a.GetResource()
		if p, ok := proof.(common.FungibleProof); ok {
			r = r.WithAmount(p.Amount)
		}
		res = append(res, Badge{Resource: r})
	}
	return res
}
