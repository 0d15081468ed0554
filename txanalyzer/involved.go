package txanalyzer

import (
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// InvolvedAddresses lists, without duplicates and in first seen order,
// what has to be looked up on ledger to review the summary. Resources and
// non fungibles created by the transaction are left out since everything
// known about them is in the summary. Withdrawals are scanned before
// deposits, then presented proofs.
func InvolvedAddresses(summary *common.ExecutionSummary) []common.ResourceOrNonFungible {
	res := []common.ResourceOrNonFungible{}
	seen := map[common.ResourceOrNonFungible]struct{}{}
	add := func(s common.ResourceOrNonFungible) {
		if _, found := seen[s]; found {
			return
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	newlyCreated := summary.NewlyCreatedNonFungibleSet()

	for _, m := range []*indicatorMap{summary.Withdrawals, summary.Deposits} {
		if m == nil {
			continue
		}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			for _, indicator := range pair.Value {
				address := indicator.ResourceAddress()
				if summary.NewEntities.Has(address) {
					continue
				}
				add(common.ResourceSpecifier(address))
				nf, ok := indicator.(*common.NonFungibleIndicator)
				if !ok {
					continue
				}
				for _, id := range nf.GlobalIDs() {
					if _, minted := newlyCreated[id]; minted {
						continue
					}
					add(common.NonFungibleSpecifier(id))
				}
			}
		}
	}

	for _, proof := range summary.PresentedProofs {
		add(common.ResourceSpecifier(proof.ProofResource()))
		if nf, ok := proof.(common.NonFungibleProof); ok {
			for _, id := range nf.IDs {
				add(common.NonFungibleSpecifier(common.NewNonFungibleGlobalID(nf.Resource, id)))
			}
		}
	}
	return res
}
