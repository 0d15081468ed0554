package txanalyzer

import (
	"errors"
	"fmt"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

var (
	ErrUnacceptableManifest                 = errors.New("manifest uses reserved instructions")
	ErrReceivingAccountDoesNotAllowDeposits = errors.New("one of the receiving accounts does not allow deposits")
	ErrUnknownClassification                = errors.New("unknown transaction classification")
	ErrIndicatorKindMismatch                = errors.New("resource indicator does not match the resolved asset")
	ErrSecurityStructureNotFound            = accounts.ErrStructureNotFound
)

// ResourceCouldNotBeResolvedError is returned when a resource, or one of
// its non fungibles, is neither on ledger nor created by the transaction.
type ResourceCouldNotBeResolvedError struct {
	Address common.ResourceAddress
	LocalID common.NonFungibleLocalID
}

func (e *ResourceCouldNotBeResolvedError) Error() string {
	if e.LocalID != "" {
		return fmt.Sprintf("non fungible %s could not be resolved in transaction",
			common.NewNonFungibleGlobalID(e.Address, e.LocalID))
	}
	return fmt.Sprintf("resource %s could not be resolved in transaction", e.Address)
}

// EntityNotFoundError is returned when an account or persona the
// transaction acts on is not in the profile, or a pool is not on ledger.
type EntityNotFoundError struct {
	Address common.Address
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found", e.Address)
}

// PreviewError wraps any other failure of an analysis.
type PreviewError struct {
	Cause error
}

func (e *PreviewError) Error() string {
	return fmt.Sprintf("transaction preview failed: %s", e.Cause)
}

func (e *PreviewError) Unwrap() error {
	return e.Cause
}
