package txanalyzer

import (
	"slices"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type indicatorMap = orderedmap.OrderedMap[common.AccountAddress, []common.ResourceIndicator]

// InvolvedAccount is an account the transaction withdraws from or deposits
// to. Profile is set when the account is one of the user's.
type InvolvedAccount struct {
	Address common.AccountAddress
	Profile *accounts.Account
}

func (a InvolvedAccount) IsOwned() bool {
	return a.Profile != nil
}

func involvedAccount(profile *accounts.Profile, address common.AccountAddress) InvolvedAccount {
	acc, _ := profile.Account(address)
	return InvolvedAccount{Address: address, Profile: acc}
}

type AccountWithTransferables struct {
	Account       InvolvedAccount
	Transferables []Transferable
}

// accounts resolves every indicator of every account of m, keeping the
// order of m and of each indicator list, then sorts the accounts for
// display.
func (self *resolution) accounts(profile *accounts.Profile, m *indicatorMap, offset decimal.Decimal) ([]AccountWithTransferables, error) {
	res := []AccountWithTransferables{}
	if m == nil {
		return res, nil
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		transferables := make([]Transferable, 0, len(pair.Value))
		for _, indicator := range pair.Value {
			t, err := self.transferable(indicator, offset)
			if err != nil {
				return nil, err
			}
			transferables = append(transferables, t)
		}
		res = append(res, AccountWithTransferables{
			Account:       involvedAccount(profile, pair.Key),
			Transferables: transferables,
		})
	}
	return sortAccounts(profile, res), nil
}

// sortAccounts puts the user's accounts first, in profile order, followed
// by the other accounts in the order they were met.
func sortAccounts(profile *accounts.Profile, list []AccountWithTransferables) []AccountWithTransferables {
	return ownedFirst(profile, list, func(a AccountWithTransferables) common.AccountAddress {
		return a.Account.Address
	})
}

func ownedFirst[T any](profile *accounts.Profile, list []T, address func(T) common.AccountAddress) []T {
	others := 0
	if profile != nil {
		others = len(profile.Accounts)
	}
	rank := func(v T) int {
		if i := profile.AccountIndex(address(v)); i >= 0 {
			return i
		}
		return others
	}
	res := slices.Clone(list)
	slices.SortStableFunc(res, func(a, b T) int {
		return rank(a) - rank(b)
	})
	return res
}
