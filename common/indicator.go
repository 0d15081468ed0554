package common

import (
	"github.com/shopspring/decimal"
)

// ResourceIndicator is one raw resource movement attached to an account.
// It is either a *FungibleIndicator or a *NonFungibleIndicator.
type ResourceIndicator interface {
	ResourceAddress() ResourceAddress
	isResourceIndicator()
}

// FungibleAmountIndicator is an amount that is either guaranteed by the
// manifest or predicted by the preview of the instruction at
// InstructionIndex.
type FungibleAmountIndicator struct {
	Value            decimal.Decimal
	Predicted        bool
	InstructionIndex uint64
}

func GuaranteedAmount(value decimal.Decimal) FungibleAmountIndicator {
	return FungibleAmountIndicator{Value: value}
}

func PredictedAmount(value decimal.Decimal, instructionIndex uint64) FungibleAmountIndicator {
	return FungibleAmountIndicator{Value: value, Predicted: true, InstructionIndex: instructionIndex}
}

// NonFungibleIDsIndicator has the same guaranteed/predicted split as
// FungibleAmountIndicator, at the level of the whole id list.
type NonFungibleIDsIndicator struct {
	IDs              []NonFungibleLocalID
	Predicted        bool
	InstructionIndex uint64
}

func GuaranteedIDs(ids ...NonFungibleLocalID) NonFungibleIDsIndicator {
	return NonFungibleIDsIndicator{IDs: ids}
}

func PredictedIDs(instructionIndex uint64, ids ...NonFungibleLocalID) NonFungibleIDsIndicator {
	return NonFungibleIDsIndicator{IDs: ids, Predicted: true, InstructionIndex: instructionIndex}
}

type FungibleIndicator struct {
	Resource ResourceAddress
	Amount   FungibleAmountIndicator
}

type NonFungibleIndicator struct {
	Resource ResourceAddress
	IDs      NonFungibleIDsIndicator
}

func (i *FungibleIndicator) ResourceAddress() ResourceAddress    { return i.Resource }
func (i *NonFungibleIndicator) ResourceAddress() ResourceAddress { return i.Resource }

func (*FungibleIndicator) isResourceIndicator()    {}
func (*NonFungibleIndicator) isResourceIndicator() {}

// GlobalIDs returns the ids of the indicator qualified by its resource.
func (i *NonFungibleIndicator) GlobalIDs() []NonFungibleGlobalID {
	res := make([]NonFungibleGlobalID, 0, len(i.IDs.IDs))
	for _, id := range i.IDs.IDs {
		res = append(res, NewNonFungibleGlobalID(i.Resource, id))
	}
	return res
}
