package txanalyzer

import (
	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// PreviewType is the outcome of an analysis, ready to be shown for review.
type PreviewType interface {
	isPreviewType()
}

// None is the preview of a transaction that does nothing worth showing.
type None struct{}

type UnacceptableManifest struct{}

// NonConforming is shown as the raw manifest.
type NonConforming struct{}

// TransactionPreview is what transfer shaped previews share.
type TransactionPreview struct {
	From                  []AccountWithTransferables
	To                    []AccountWithTransferables
	Badges                []Badge
	NewlyCreatedGlobalIDs []common.NonFungibleGlobalID
}

// DAppEncounter is a component the manifest calls into. DApp is nil when
// the component does not belong to a known dApp.
type DAppEncounter struct {
	Component common.ComponentAddress
	DApp      *assets.DApp
}

type GeneralTransfer struct {
	TransactionPreview
	DApps []DAppEncounter
}

type Transfer struct {
	TransactionPreview
}

type PoolAction uint8

const (
	PoolContribution PoolAction = iota + 1
	PoolRedemption
)

func (a PoolAction) String() string {
	if a == PoolRedemption {
		return "redemption"
	}
	return "contribution"
}

type PoolWithDApp struct {
	Pool assets.Pool
	DApp *assets.DApp
}

type PoolTransaction struct {
	TransactionPreview
	Action PoolAction
	Pools  []PoolWithDApp
}

type StakingAction uint8

const (
	Stake StakingAction = iota + 1
	Unstake
	Claim
)

func (a StakingAction) String() string {
	switch a {
	case Unstake:
		return "unstake"
	case Claim:
		return "claim"
	}
	return "stake"
}

type Staking struct {
	TransactionPreview
	Action     StakingAction
	Validators []assets.Validator
}

type ResourcePreferenceChangeKind uint8

const (
	PreferenceAllow ResourcePreferenceChangeKind = iota + 1
	PreferenceDisallow
	PreferenceClear
)

func (k ResourcePreferenceChangeKind) String() string {
	switch k {
	case PreferenceAllow:
		return "allow"
	case PreferenceDisallow:
		return "disallow"
	}
	return "clear"
}

type ResourcePreferenceChange struct {
	Resource assets.Resource
	Change   ResourcePreferenceChangeKind
}

type DepositorChangeKind uint8

const (
	DepositorAdd DepositorChangeKind = iota + 1
	DepositorRemove
)

func (k DepositorChangeKind) String() string {
	if k == DepositorRemove {
		return "remove"
	}
	return "add"
}

// DepositorChange adds or removes a badge allowed to deposit into the
// account regardless of its deposit rules.
type DepositorChange struct {
	Depositor common.ResourceOrNonFungible
	Resource  assets.Resource
	Change    DepositorChangeKind
}

type AccountDepositSettingsChanges struct {
	Account                   InvolvedAccount
	DepositRule               *common.DepositRule
	ResourcePreferenceChanges []ResourcePreferenceChange
	DepositorChanges          []DepositorChange
}

type AccountsDepositSettings struct {
	Accounts []AccountDepositSettingsChanges
}

type DeleteAccount struct {
	Deleting accounts.Account
	To       []AccountWithTransferables
	Badges   []Badge
}

type SecurifyEntity struct {
	Entity    accounts.Entity
	Structure accounts.SecurityStructure
}

type RecoveryPhase uint8

const (
	RecoveryInitiate RecoveryPhase = iota + 1
	RecoveryConfirm
	RecoveryStop
)

func (p RecoveryPhase) String() string {
	switch p {
	case RecoveryConfirm:
		return "confirm"
	case RecoveryStop:
		return "stop"
	}
	return "initiate"
}

// UpdateSecurityStructure is a recovery of an already securified entity.
// Structure is nil when stopping a recovery whose proposal the wallet does
// not know about.
type UpdateSecurityStructure struct {
	Entity    accounts.Entity
	Structure *accounts.SecurityStructure
	Phase     RecoveryPhase
}

func (None) isPreviewType()                    {}
func (UnacceptableManifest) isPreviewType()    {}
func (NonConforming) isPreviewType()           {}
func (GeneralTransfer) isPreviewType()         {}
func (Transfer) isPreviewType()                {}
func (PoolTransaction) isPreviewType()         {}
func (Staking) isPreviewType()                 {}
func (AccountsDepositSettings) isPreviewType() {}
func (DeleteAccount) isPreviewType()           {}
func (SecurifyEntity) isPreviewType()          {}
func (UpdateSecurityStructure) isPreviewType() {}

// TransactionPreviewOf returns the from/to part of transfer shaped
// previews.
func TransactionPreviewOf(p PreviewType) (TransactionPreview, bool) {
	switch v := p.(type) {
	case GeneralTransfer:
		return v.TransactionPreview, true
	case Transfer:
		return v.TransactionPreview, true
	case PoolTransaction:
		return v.TransactionPreview, true
	case Staking:
		return v.TransactionPreview, true
	}
	return TransactionPreview{}, false
}
