package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ResourceOrNonFungible names either a whole resource or one non fungible
// of a resource. It is comparable and can be used as a set key.
type ResourceOrNonFungible struct {
	resource ResourceAddress
	// zero unless the specifier names a single non fungible
	nonFungibleID NonFungibleGlobalID
}

func ResourceSpecifier(address ResourceAddress) ResourceOrNonFungible {
	return ResourceOrNonFungible{resource: address}
}

func NonFungibleSpecifier(id NonFungibleGlobalID) ResourceOrNonFungible {
	return ResourceOrNonFungible{resource: id.Resource, nonFungibleID: id}
}

// IsNonFungible reports whether the specifier names one non fungible.
func (r ResourceOrNonFungible) IsNonFungible() bool {
	return r.nonFungibleID.LocalID != ""
}

// ResourceAddress is the resource, for both kinds of specifier.
func (r ResourceOrNonFungible) ResourceAddress() ResourceAddress {
	return r.resource
}

// NonFungibleGlobalID returns the global id and true for non fungible
// specifiers.
func (r ResourceOrNonFungible) NonFungibleGlobalID() (NonFungibleGlobalID, bool) {
	return r.nonFungibleID, r.IsNonFungible()
}

func (r ResourceOrNonFungible) String() string {
	if r.IsNonFungible() {
		return r.nonFungibleID.String()
	}
	return string(r.resource)
}

// ProofSpecifier is a resource presented as a proof during the transaction.
type ProofSpecifier interface {
	ProofResource() ResourceAddress
	isProofSpecifier()
}

type FungibleProof struct {
	Resource ResourceAddress
	Amount   decimal.Decimal
}

type NonFungibleProof struct {
	Resource ResourceAddress
	IDs      []NonFungibleLocalID
}

func (p FungibleProof) ProofResource() ResourceAddress    { return p.Resource }
func (p NonFungibleProof) ProofResource() ResourceAddress { return p.Resource }

func (FungibleProof) isProofSpecifier()    {}
func (NonFungibleProof) isProofSpecifier() {}

func (p FungibleProof) String() string {
	return fmt.Sprintf("%s %s", p.Amount, p.Resource)
}

func (p NonFungibleProof) String() string {
	return fmt.Sprintf("%s %v", p.Resource, p.IDs)
}
