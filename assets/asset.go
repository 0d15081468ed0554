package assets

import (
	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type ResourceKind uint8

const (
	Fungible ResourceKind = iota + 1
	NonFungible
)

// StakeClaimData is the data a stake claim non fungible carries on ledger.
type StakeClaimData struct {
	ClaimEpoch  uint64
	ClaimAmount decimal.Decimal
}

type NonFungibleItem struct {
	GlobalID  common.NonFungibleGlobalID
	Name      string
	ImageURL  string
	ClaimData *StakeClaimData
}

// Resource is the on-ledger definition of a resource plus, depending on
// where it comes from, an amount (owned or presented) and the non fungible
// items that were asked for.
type Resource struct {
	Address         common.ResourceAddress
	Kind            ResourceKind
	Name            string
	Symbol          string
	Description     string
	IconURL         string
	Tags            []string
	Divisibility    *uint8
	CurrentSupply   decimal.Decimal
	Amount          *decimal.Decimal
	Items           []NonFungibleItem
	DAppDefinitions []common.Address
}

// DisplayName is the name, the symbol or the shortened address, whichever
// is set first.
func (r Resource) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Symbol != "" {
		return r.Symbol
	}
	return r.Address.Address().Short()
}

// WithAmount returns a copy of r holding amount.
func (r Resource) WithAmount(amount decimal.Decimal) Resource {
	r.Amount = &amount
	return r
}

// Item returns the item with the given local id, if r holds it.
func (r Resource) Item(id common.NonFungibleLocalID) (NonFungibleItem, bool) {
	for _, item := range r.Items {
		if item.GlobalID.LocalID == id {
			return item, true
		}
	}
	return NonFungibleItem{}, false
}

type Validator struct {
	Address            common.ValidatorAddress
	Name               string
	IconURL            string
	TotalXRDStake      decimal.Decimal
	StakeUnitResource  common.ResourceAddress
	ClaimTokenResource common.ResourceAddress
}

type PoolResource struct {
	Resource Resource
	Amount   decimal.Decimal
}

type Pool struct {
	Address          common.PoolAddress
	Resources        []PoolResource
	PoolUnitResource common.ResourceAddress
	DAppDefinition   common.Address
}

// Amount is how much of resource the pool holds.
func (p Pool) Amount(resource common.ResourceAddress) decimal.Decimal {
	for _, r := range p.Resources {
		if r.Resource.Address == resource {
			return r.Amount
		}
	}
	return decimal.Zero
}

type DApp struct {
	DefinitionAddress common.Address
	Name              string
	IconURL           string
}

// Asset is a resolved resource together with what it represents.
type Asset interface {
	GetResource() Resource
	isAsset()
}

type Token struct {
	Resource Resource
}

type LiquidStakeUnit struct {
	Resource  Resource
	Validator Validator
}

type PoolUnit struct {
	Resource Resource
	Pool     Pool
}

type NonFungibleCollection struct {
	Resource Resource
}

type StakeClaim struct {
	Resource  Resource
	Validator Validator
}

func (a Token) GetResource() Resource                 { return a.Resource }
func (a LiquidStakeUnit) GetResource() Resource       { return a.Resource }
func (a PoolUnit) GetResource() Resource              { return a.Resource }
func (a NonFungibleCollection) GetResource() Resource { return a.Resource }
func (a StakeClaim) GetResource() Resource            { return a.Resource }

func (Token) isAsset()                 {}
func (LiquidStakeUnit) isAsset()       {}
func (PoolUnit) isAsset()              {}
func (NonFungibleCollection) isAsset() {}
func (StakeClaim) isAsset()            {}

// StakeValueInXRD is what amount of stake units is worth in XRD.
func (a LiquidStakeUnit) StakeValueInXRD(amount decimal.Decimal) decimal.Decimal {
	return common.MulDivDecimal(a.Validator.TotalXRDStake, amount, a.Resource.CurrentSupply)
}

// RedemptionValue is how much of resource amount of pool units redeem for.
func (a PoolUnit) RedemptionValue(resource common.ResourceAddress, amount decimal.Decimal) decimal.Decimal {
	return common.MulDivDecimal(a.Pool.Amount(resource), amount, a.Resource.CurrentSupply)
}

// RedemptionValues computes RedemptionValue for every resource of the pool.
func (a PoolUnit) RedemptionValues(amount decimal.Decimal) map[common.ResourceAddress]decimal.Decimal {
	res := make(map[common.ResourceAddress]decimal.Decimal, len(a.Pool.Resources))
	for _, r := range a.Pool.Resources {
		res[r.Resource.Address] = a.RedemptionValue(r.Resource.Address, amount)
	}
	return res
}

// WithItems returns a copy of a whose resource holds items.
func WithItems(a Asset, items []NonFungibleItem) Asset {
	switch v := a.(type) {
	case Token:
		v.Resource.Items = items
		return v
	case LiquidStakeUnit:
		v.Resource.Items = items
		return v
	case PoolUnit:
		v.Resource.Items = items
		return v
	case NonFungibleCollection:
		v.Resource.Items = items
		return v
	case StakeClaim:
		v.Resource.Items = items
		return v
	}
	return a
}
