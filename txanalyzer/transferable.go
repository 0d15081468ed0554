package txanalyzer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type AmountKind uint8

const (
	Exact AmountKind = iota + 1
	Predicted
)

// BoundedAmount is a fungible amount as shown for review. A predicted
// amount is an estimate; GuaranteeOffset is the fraction of it the user is
// guaranteed to get.
type BoundedAmount struct {
	Kind             AmountKind
	Amount           decimal.Decimal
	InstructionIndex uint64
	GuaranteeOffset  decimal.Decimal
}

func ExactAmount(amount decimal.Decimal) BoundedAmount {
	return BoundedAmount{Kind: Exact, Amount: amount}
}

func PredictedAmount(amount decimal.Decimal, instructionIndex uint64, offset decimal.Decimal) BoundedAmount {
	return BoundedAmount{Kind: Predicted, Amount: amount, InstructionIndex: instructionIndex, GuaranteeOffset: offset}
}

func (b BoundedAmount) IsPredicted() bool {
	return b.Kind == Predicted
}

// Guaranteed is the minimum the amount can turn out to be.
func (b BoundedAmount) Guaranteed() decimal.Decimal {
	if b.Kind == Predicted {
		return b.Amount.Mul(b.GuaranteeOffset)
	}
	return b.Amount
}

// WithAmount replaces the value and keeps everything else.
func (b BoundedAmount) WithAmount(amount decimal.Decimal) BoundedAmount {
	b.Amount = amount
	return b
}

type NonFungibleAmount struct {
	Certain []assets.NonFungibleItem
}

// Transferable is one resolved resource movement of an account.
type Transferable interface {
	GetAsset() assets.Asset
	ResourceAddress() common.ResourceAddress
	NewlyCreated() bool
	isTransferable()
}

type TokenTransferable struct {
	Asset          assets.Token
	Amount         BoundedAmount
	IsNewlyCreated bool
}

type LiquidStakeUnitTransferable struct {
	Asset          assets.LiquidStakeUnit
	Amount         BoundedAmount
	XRDWorth       decimal.Decimal
	IsNewlyCreated bool
}

type PoolUnitTransferable struct {
	Asset          assets.PoolUnit
	Amount         BoundedAmount
	PerResource    map[common.ResourceAddress]decimal.Decimal
	IsNewlyCreated bool
}

type NFTCollectionTransferable struct {
	Asset          assets.NonFungibleCollection
	Amount         NonFungibleAmount
	IsNewlyCreated bool
}

type StakeClaimTransferable struct {
	Asset          assets.StakeClaim
	Amount         NonFungibleAmount
	IsNewlyCreated bool
}

func (t TokenTransferable) GetAsset() assets.Asset           { return t.Asset }
func (t LiquidStakeUnitTransferable) GetAsset() assets.Asset { return t.Asset }
func (t PoolUnitTransferable) GetAsset() assets.Asset        { return t.Asset }
func (t NFTCollectionTransferable) GetAsset() assets.Asset   { return t.Asset }
func (t StakeClaimTransferable) GetAsset() assets.Asset      { return t.Asset }

func (t TokenTransferable) ResourceAddress() common.ResourceAddress {
	return t.Asset.Resource.Address
}
func (t LiquidStakeUnitTransferable) ResourceAddress() common.ResourceAddress {
	return t.Asset.Resource.Address
}
func (t PoolUnitTransferable) ResourceAddress() common.ResourceAddress {
	return t.Asset.Resource.Address
}
func (t NFTCollectionTransferable) ResourceAddress() common.ResourceAddress {
	return t.Asset.Resource.Address
}
func (t StakeClaimTransferable) ResourceAddress() common.ResourceAddress {
	return t.Asset.Resource.Address
}

func (t TokenTransferable) NewlyCreated() bool           { return t.IsNewlyCreated }
func (t LiquidStakeUnitTransferable) NewlyCreated() bool { return t.IsNewlyCreated }
func (t PoolUnitTransferable) NewlyCreated() bool        { return t.IsNewlyCreated }
func (t NFTCollectionTransferable) NewlyCreated() bool   { return t.IsNewlyCreated }
func (t StakeClaimTransferable) NewlyCreated() bool      { return t.IsNewlyCreated }

func (TokenTransferable) isTransferable()           {}
func (LiquidStakeUnitTransferable) isTransferable() {}
func (PoolUnitTransferable) isTransferable()        {}
func (NFTCollectionTransferable) isTransferable()   {}
func (StakeClaimTransferable) isTransferable()      {}

// FungibleAmount returns the amount of fungible transferables.
func FungibleAmount(t Transferable) (BoundedAmount, bool) {
	switch v := t.(type) {
	case TokenTransferable:
		return v.Amount, true
	case LiquidStakeUnitTransferable:
		return v.Amount, true
	case PoolUnitTransferable:
		return v.Amount, true
	}
	return BoundedAmount{}, false
}

// resolution is the lookup state of one analysis: the on-ledger assets
// indexed by address and the entities created by the transaction.
type resolution struct {
	summary      *common.ExecutionSummary
	onLedger     map[common.ResourceAddress]assets.Asset
	newlyCreated map[common.NonFungibleGlobalID]struct{}
}

func newResolution(summary *common.ExecutionSummary, onLedger []assets.Asset) *resolution {
	index := make(map[common.ResourceAddress]assets.Asset, len(onLedger))
	for _, a := range onLedger {
		index[a.GetResource().Address] = a
	}
	return &resolution{
		summary:      summary,
		onLedger:     index,
		newlyCreated: summary.NewlyCreatedNonFungibleSet(),
	}
}

// asset returns the asset of address and whether it is created by the
// transaction.
func (self *resolution) asset(address common.ResourceAddress, kind assets.ResourceKind) (assets.Asset, bool, error) {
	if meta, found := self.summary.NewEntities.Metadata[address]; found {
		r := assets.Resource{
			Address:      address,
			Kind:         kind,
			Name:         meta.Name,
			Symbol:       meta.Symbol,
			Description:  meta.Description,
			IconURL:      meta.IconURL,
			Tags:         meta.Tags,
			Divisibility: meta.Divisibility,
		}
		if kind == assets.NonFungible {
			return assets.NonFungibleCollection{Resource: r}, true, nil
		}
		return assets.Token{Resource: r}, true, nil
	}
	a, found := self.onLedger[address]
	if !found {
		return nil, false, &ResourceCouldNotBeResolvedError{Address: address}
	}
	return a, false, nil
}

// kindOf guesses the kind of a resource no indicator qualifies. Resources
// created by the transaction are non fungible when declared so or when any
// of their ids is minted by it.
func (self *resolution) kindOf(address common.ResourceAddress) assets.ResourceKind {
	if a, found := self.onLedger[address]; found {
		return a.GetResource().Kind
	}
	if self.summary.NewEntities.Metadata[address].NonFungible {
		return assets.NonFungible
	}
	for id := range self.newlyCreated {
		if id.Resource == address {
			return assets.NonFungible
		}
	}
	return assets.Fungible
}

// items resolves every id of a non fungible indicator. Known items are used
// as they are, ids minted by the transaction become bare items.
func (self *resolution) items(indicator *common.NonFungibleIndicator, a assets.Asset, isNewlyCreated bool) ([]assets.NonFungibleItem, error) {
	r := a.GetResource()
	res := make([]assets.NonFungibleItem, 0, len(indicator.IDs.IDs))
	for _, id := range indicator.IDs.IDs {
		if item, found := r.Item(id); found {
			res = append(res, item)
			continue
		}
		globalID := common.NewNonFungibleGlobalID(indicator.Resource, id)
		if _, minted := self.newlyCreated[globalID]; minted || isNewlyCreated {
			res = append(res, assets.NonFungibleItem{GlobalID: globalID})
			continue
		}
		return nil, &ResourceCouldNotBeResolvedError{Address: indicator.Resource, LocalID: id}
	}
	return res, nil
}

// transferable resolves one indicator. offset is the guarantee offset of
// predicted amounts: zero for withdrawals, the profile default for
// deposits.
func (self *resolution) transferable(indicator common.ResourceIndicator, offset decimal.Decimal) (Transferable, error) {
	switch ind := indicator.(type) {
	case *common.FungibleIndicator:
		a, isNew, err := self.asset(ind.Resource, assets.Fungible)
		if err != nil {
			return nil, err
		}
		amount := ExactAmount(ind.Amount.Value)
		if ind.Amount.Predicted {
			amount = PredictedAmount(ind.Amount.Value, ind.Amount.InstructionIndex, offset)
		}
		switch v := a.(type) {
		case assets.Token:
			return TokenTransferable{Asset: v, Amount: amount, IsNewlyCreated: isNew}, nil
		case assets.LiquidStakeUnit:
			return LiquidStakeUnitTransferable{
				Asset:    v,
				Amount:   amount,
				XRDWorth: v.StakeValueInXRD(amount.Amount),
			}, nil
		case assets.PoolUnit:
			return PoolUnitTransferable{
				Asset:       v,
				Amount:      amount,
				PerResource: v.RedemptionValues(amount.Amount),
			}, nil
		}
		return nil, fmt.Errorf("%w: fungible amount of %s", ErrIndicatorKindMismatch, ind.Resource)
	case *common.NonFungibleIndicator:
		a, isNew, err := self.asset(ind.Resource, assets.NonFungible)
		if err != nil {
			return nil, err
		}
		items, err := self.items(ind, a, isNew)
		if err != nil {
			return nil, err
		}
		amount := NonFungibleAmount{Certain: items}
		switch v := a.(type) {
		case assets.NonFungibleCollection:
			return NFTCollectionTransferable{Asset: v, Amount: amount, IsNewlyCreated: isNew}, nil
		case assets.StakeClaim:
			return StakeClaimTransferable{Asset: v, Amount: amount}, nil
		}
		return nil, fmt.Errorf("%w: non fungible ids of %s", ErrIndicatorKindMismatch, ind.Resource)
	}
	return nil, fmt.Errorf("unsupported resource indicator %T", indicator)
}
