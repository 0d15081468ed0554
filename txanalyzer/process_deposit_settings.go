package txanalyzer

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// depositSettingsProcessor does not look at withdrawals and deposits; the
// preview lists the settings changed per account.
type depositSettingsProcessor struct {
	a              *Analyzer
	classification common.AccountDepositSettingsUpdate
}

func (p depositSettingsProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	c := p.classification
	specifiers := []common.ResourceOrNonFungible{}
	eachEntry(c.ResourcePreferencesUpdates, func(_ common.AccountAddress, updates []common.ResourcePreferenceUpdate) {
		for _, u := range updates {
			specifiers = append(specifiers, common.ResourceSpecifier(u.Resource))
		}
	})
	for _, depositors := range []*orderedmap.OrderedMap[common.AccountAddress, []common.ResourceOrNonFungible]{
		c.AuthorizedDepositorsAdded, c.AuthorizedDepositorsRemoved,
	} {
		eachEntry(depositors, func(_ common.AccountAddress, list []common.ResourceOrNonFungible) {
			for _, d := range list {
				specifiers = append(specifiers, common.ResourceSpecifier(d.ResourceAddress()))
			}
		})
	}
	toResolve := []common.ResourceOrNonFungible{}
	for _, s := range unique(specifiers) {
		if !summary.NewEntities.Has(s.ResourceAddress()) {
			toResolve = append(toResolve, s)
		}
	}
	res, err := p.a.resolveSpecifiers(ctx, summary, toResolve)
	if err != nil {
		return nil, err
	}

	order := []common.AccountAddress{}
	changes := map[common.AccountAddress]*AccountDepositSettingsChanges{}
	changesOf := func(address common.AccountAddress) *AccountDepositSettingsChanges {
		if ch, found := changes[address]; found {
			return ch
		}
		ch := &AccountDepositSettingsChanges{Account: involvedAccount(p.a.Profile, address)}
		changes[address] = ch
		order = append(order, address)
		return ch
	}

	var failure error
	eachEntry(c.ResourcePreferencesUpdates, func(address common.AccountAddress, updates []common.ResourcePreferenceUpdate) {
		ch := changesOf(address)
		for _, u := range updates {
			a, _, err := res.asset(u.Resource, res.kindOf(u.Resource))
			if err != nil {
				failure = firstError(failure, err)
				return
			}
			change := PreferenceClear
			if !u.Remove {
				change = PreferenceAllow
				if u.Preference == common.ResourcePreferenceDisallowed {
					change = PreferenceDisallow
				}
			}
			ch.ResourcePreferenceChanges = append(ch.ResourcePreferenceChanges, ResourcePreferenceChange{
				Resource: a.GetResource(),
				Change:   change,
			})
		}
	})
	eachEntry(c.DepositModeUpdates, func(address common.AccountAddress, rule common.DepositRule) {
		changesOf(address).DepositRule = &rule
	})
	depositorChanges := func(m *orderedmap.OrderedMap[common.AccountAddress, []common.ResourceOrNonFungible], kind DepositorChangeKind) {
		eachEntry(m, func(address common.AccountAddress, depositors []common.ResourceOrNonFungible) {
			ch := changesOf(address)
			for _, d := range depositors {
				resourceKind := res.kindOf(d.ResourceAddress())
				if d.IsNonFungible() {
					resourceKind = assets.NonFungible
				}
				a, _, err := res.asset(d.ResourceAddress(), resourceKind)
				if err != nil {
					failure = firstError(failure, err)
					return
				}
				ch.DepositorChanges = append(ch.DepositorChanges, DepositorChange{
					Depositor: d,
					Resource:  a.GetResource(),
					Change:    kind,
				})
			}
		})
	}
	depositorChanges(c.AuthorizedDepositorsAdded, DepositorAdd)
	depositorChanges(c.AuthorizedDepositorsRemoved, DepositorRemove)
	if failure != nil {
		return nil, failure
	}

	list := make([]AccountDepositSettingsChanges, 0, len(order))
	for _, address := range order {
		list = append(list, *changes[address])
	}
	return AccountsDepositSettings{
		Accounts: ownedFirst(p.a.Profile, list, func(ch AccountDepositSettingsChanges) common.AccountAddress {
			return ch.Account.Address
		}),
	}, nil
}

func eachEntry[V any](m *orderedmap.OrderedMap[common.AccountAddress, V], fn func(common.AccountAddress, V)) {
	if m == nil {
		return
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

func firstError(current, err error) error {
	if current != nil {
		return current
	}
	return err
}
