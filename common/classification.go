package common

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ClassificationKind tags the variants of DetailedClassification.
type ClassificationKind uint8

const (
	GeneralClassification ClassificationKind = iota + 1
	TransferClassification
	PoolContributionClassification
	PoolRedemptionClassification
	ValidatorStakeClassification
	ValidatorUnstakeClassification
	ValidatorClaimClassification
	AccountDepositSettingsUpdateClassification
	DeleteAccountsClassification
	SecurifyEntityClassification
	InitiateRecoveryClassification
	ConfirmRecoveryClassification
	StopTimedRecoveryClassification
)

var classificationKindNames = map[ClassificationKind]string{
	GeneralClassification:                      "general",
	TransferClassification:                     "transfer",
	PoolContributionClassification:             "pool_contribution",
	PoolRedemptionClassification:               "pool_redemption",
	ValidatorStakeClassification:               "validator_stake",
	ValidatorUnstakeClassification:             "validator_unstake",
	ValidatorClaimClassification:               "validator_claim",
	AccountDepositSettingsUpdateClassification: "account_deposit_settings_update",
	DeleteAccountsClassification:               "delete_accounts",
	SecurifyEntityClassification:               "securify_entity",
	InitiateRecoveryClassification:             "initiate_recovery",
	ConfirmRecoveryClassification:              "confirm_recovery",
	StopTimedRecoveryClassification:            "stop_timed_recovery",
}

// AllClassificationKinds lists every variant of DetailedClassification.
func AllClassificationKinds() []ClassificationKind {
	res := make([]ClassificationKind, 0, len(classificationKindNames))
	for k := GeneralClassification; k <= StopTimedRecoveryClassification; k++ {
		res = append(res, k)
	}
	return res
}

func (k ClassificationKind) String() string {
	if name, ok := classificationKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("classification(%d)", uint8(k))
}

// ParseClassificationKind is the inverse of ClassificationKind.String.
func ParseClassificationKind(s string) (ClassificationKind, error) {
	for k, name := range classificationKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown classification %q", s)
}

// DetailedClassification is the high level intent the execution engine
// found in the manifest, together with the data specific to that intent.
type DetailedClassification interface {
	Kind() ClassificationKind
	isDetailedClassification()
}

type General struct{}

type Transfer struct {
	// IsOneToOne is set when a single account sends to a single account.
	IsOneToOne bool
}

type TrackedPoolContribution struct {
	PoolAddress              PoolAddress
	ContributedResources     map[ResourceAddress]decimal.Decimal
	PoolUnitsResourceAddress ResourceAddress
	PoolUnitsAmount          decimal.Decimal
}

type PoolContribution struct {
	PoolAddresses []PoolAddress
	Contributions []TrackedPoolContribution
}

type TrackedPoolRedemption struct {
	PoolAddress              PoolAddress
	PoolUnitsResourceAddress ResourceAddress
	PoolUnitsAmount          decimal.Decimal
	RedeemedResources        map[ResourceAddress]decimal.Decimal
}

type PoolRedemption struct {
	PoolAddresses []PoolAddress
	Redemptions   []TrackedPoolRedemption
}

type TrackedValidatorStake struct {
	ValidatorAddress       ValidatorAddress
	XRDAmount              decimal.Decimal
	LiquidStakeUnitAddress ResourceAddress
	LiquidStakeUnitAmount  decimal.Decimal
}

type ValidatorStake struct {
	ValidatorAddresses []ValidatorAddress
	Stakes             []TrackedValidatorStake
}

type TrackedValidatorUnstake struct {
	ValidatorAddress       ValidatorAddress
	LiquidStakeUnitAddress ResourceAddress
	LiquidStakeUnitAmount  decimal.Decimal
	ClaimNFTAddress        ResourceAddress
	ClaimNFTIDs            []NonFungibleLocalID
}

// UnstakeData is the on-ledger data of a stake claim minted by an unstake.
type UnstakeData struct {
	Name        string
	ClaimEpoch  uint64
	ClaimAmount decimal.Decimal
}

type ValidatorUnstake struct {
	ValidatorAddresses    []ValidatorAddress
	Unstakes              []TrackedValidatorUnstake
	ClaimsNonFungibleData map[NonFungibleGlobalID]UnstakeData
}

type TrackedValidatorClaim struct {
	ValidatorAddress ValidatorAddress
	ClaimNFTAddress  ResourceAddress
	ClaimNFTIDs      []NonFungibleLocalID
	XRDAmount        decimal.Decimal
}

type ValidatorClaim struct {
	ValidatorAddresses []ValidatorAddress
	Claims             []TrackedValidatorClaim
}

type ResourcePreference uint8

const (
	ResourcePreferenceAllowed ResourcePreference = iota + 1
	ResourcePreferenceDisallowed
)

// ResourcePreferenceUpdate either sets a preference or removes it.
type ResourcePreferenceUpdate struct {
	Resource   ResourceAddress
	Remove     bool
	Preference ResourcePreference
}

type DepositRule uint8

const (
	DepositRuleAcceptAll DepositRule = iota + 1
	DepositRuleAcceptKnown
	DepositRuleDenyAll
)

func (r DepositRule) String() string {
	switch r {
	case DepositRuleAcceptAll:
		return "accept all"
	case DepositRuleAcceptKnown:
		return "accept known"
	case DepositRuleDenyAll:
		return "deny all"
	}
	return "unknown"
}

type AccountDepositSettingsUpdate struct {
	ResourcePreferencesUpdates  *orderedmap.OrderedMap[AccountAddress, []ResourcePreferenceUpdate]
	DepositModeUpdates          *orderedmap.OrderedMap[AccountAddress, DepositRule]
	AuthorizedDepositorsAdded   *orderedmap.OrderedMap[AccountAddress, []ResourceOrNonFungible]
	AuthorizedDepositorsRemoved *orderedmap.OrderedMap[AccountAddress, []ResourceOrNonFungible]
}

type DeleteAccounts struct {
	Accounts []AccountAddress
}

// SecurifyEntity turns an unsecurified account or persona into one
// controlled by an access controller.
type SecurifyEntity struct {
	Entity Address
}

type InitiateRecovery struct {
	Entity              Address
	ProposedStructureID uuid.UUID
}

type ConfirmRecovery struct {
	Entity              Address
	ProposedStructureID uuid.UUID
}

type StopTimedRecovery struct {
	Entity Address
}

func (General) Kind() ClassificationKind          { return GeneralClassification }
func (Transfer) Kind() ClassificationKind         { return TransferClassification }
func (PoolContribution) Kind() ClassificationKind { return PoolContributionClassification }
func (PoolRedemption) Kind() ClassificationKind   { return PoolRedemptionClassification }
func (ValidatorStake) Kind() ClassificationKind   { return ValidatorStakeClassification }
func (ValidatorUnstake) Kind() ClassificationKind { return ValidatorUnstakeClassification }
func (ValidatorClaim) Kind() ClassificationKind   { return ValidatorClaimClassification }
func (AccountDepositSettingsUpdate) Kind() ClassificationKind {
	return AccountDepositSettingsUpdateClassification
}
func (DeleteAccounts) Kind() ClassificationKind    { return DeleteAccountsClassification }
func (SecurifyEntity) Kind() ClassificationKind    { return SecurifyEntityClassification }
func (InitiateRecovery) Kind() ClassificationKind  { return InitiateRecoveryClassification }
func (ConfirmRecovery) Kind() ClassificationKind   { return ConfirmRecoveryClassification }
func (StopTimedRecovery) Kind() ClassificationKind { return StopTimedRecoveryClassification }

func (General) isDetailedClassification()                      {}
func (Transfer) isDetailedClassification()                     {}
func (PoolContribution) isDetailedClassification()             {}
func (PoolRedemption) isDetailedClassification()               {}
func (ValidatorStake) isDetailedClassification()               {}
func (ValidatorUnstake) isDetailedClassification()             {}
func (ValidatorClaim) isDetailedClassification()               {}
func (AccountDepositSettingsUpdate) isDetailedClassification() {}
func (DeleteAccounts) isDetailedClassification()               {}
func (SecurifyEntity) isDetailedClassification()               {}
func (InitiateRecovery) isDetailedClassification()             {}
func (ConfirmRecovery) isDetailedClassification()              {}
func (StopTimedRecovery) isDetailedClassification()            {}
