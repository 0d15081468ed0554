package common

import (
	"fmt"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NewEntityMetadata is what the manifest itself declares about an entity it
// creates. Such entities are not on ledger yet.
type NewEntityMetadata struct {
	NonFungible  bool
	Name         string
	Symbol       string
	Description  string
	IconURL      string
	Tags         []string
	Divisibility *uint8
}

type NewEntities struct {
	Metadata map[ResourceAddress]NewEntityMetadata
}

// Has reports whether the resource is created by the transaction.
func (n NewEntities) Has(address ResourceAddress) bool {
	_, found := n.Metadata[address]
	return found
}

type FeeSummary struct {
	ExecutionCost        decimal.Decimal
	FinalizationCost     decimal.Decimal
	StorageExpansionCost decimal.Decimal
	RoyaltyCost          decimal.Decimal
}

type FeeLocks struct {
	Lock           decimal.Decimal
	ContingentLock decimal.Decimal
}

type ReservedInstruction string

const (
	ReservedAccountLockFee               ReservedInstruction = "account_lock_fee"
	ReservedAccountSecurify              ReservedInstruction = "account_securify"
	ReservedIdentitySecurify             ReservedInstruction = "identity_securify"
	ReservedAccountUpdateSettings        ReservedInstruction = "account_update_settings"
	ReservedAccessControllerMethod       ReservedInstruction = "access_controller_method"
	ReservedAccountLockOwnerKeysMetadata ReservedInstruction = "account_lock_owner_keys_metadata"
)

// ExecutionSummary is the low level outcome of executing a transaction
// preview. Withdrawals and Deposits keep the order of the manifest.
type ExecutionSummary struct {
	Withdrawals              *orderedmap.OrderedMap[AccountAddress, []ResourceIndicator]
	Deposits                 *orderedmap.OrderedMap[AccountAddress, []ResourceIndicator]
	PresentedProofs          []ProofSpecifier
	NewEntities              NewEntities
	NewlyCreatedNonFungibles []NonFungibleGlobalID
	EncounteredComponents    []ComponentAddress
	ReservedInstructions     []ReservedInstruction
	DetailedClassification   DetailedClassification
	FeeSummary               FeeSummary
	FeeLocks                 FeeLocks
}

// NewExecutionSummary returns a summary with empty, ready to use maps.
func NewExecutionSummary() *ExecutionSummary {
	return &ExecutionSummary{
		Withdrawals: NewIndicatorMap(),
		Deposits:    NewIndicatorMap(),
		NewEntities: NewEntities{Metadata: map[ResourceAddress]NewEntityMetadata{}},
	}
}

func NewIndicatorMap() *orderedmap.OrderedMap[AccountAddress, []ResourceIndicator] {
	return orderedmap.New[AccountAddress, []ResourceIndicator]()
}

// NewlyCreatedNonFungibleSet indexes NewlyCreatedNonFungibles.
func (s *ExecutionSummary) NewlyCreatedNonFungibleSet() map[NonFungibleGlobalID]struct{} {
	res := make(map[NonFungibleGlobalID]struct{}, len(s.NewlyCreatedNonFungibles))
	for _, id := range s.NewlyCreatedNonFungibles {
		res[id] = struct{}{}
	}
	return res
}

// IsEmpty is true when the transaction moves nothing and shows nothing.
func (s *ExecutionSummary) IsEmpty() bool {
	return mapLen(s.Withdrawals) == 0 &&
		mapLen(s.Deposits) == 0 &&
		len(s.PresentedProofs) == 0 &&
		len(s.NewEntities.Metadata) == 0
}

func mapLen(m *orderedmap.OrderedMap[AccountAddress, []ResourceIndicator]) int {
	if m == nil {
		return 0
	}
	return m.Len()
}

// ExecutionErrorKind is the reason the execution engine refused to produce
// a summary.
type ExecutionErrorKind string

const (
	ReservedInstructionsNotAllowed             ExecutionErrorKind = "reserved_instructions_not_allowed"
	OneOfReceivingAccountsDoesNotAllowDeposits ExecutionErrorKind = "one_of_receiving_accounts_does_not_allow_deposits"
	ExecutionFailed                            ExecutionErrorKind = "execution_failed"
)

// ExecutionError is returned by the execution layer instead of a summary.
type ExecutionError struct {
	Kind    ExecutionErrorKind
	Message string
}

func (e *ExecutionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("execution error: %s", e.Kind)
	}
	return fmt.Sprintf("execution error: %s: %s", e.Kind, e.Message)
}
