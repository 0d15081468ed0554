package util

import "github.com/radixdlt/babylon-wallet-android-sub006/ui"

// PreviewDisplay is the printable form of a review. StyledText fields carry
// the severity for the terminal and marshal to plain strings.
type PreviewDisplay struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Kind   string `json:"kind,omitempty"`
	Action string `json:"action,omitempty"`
	Error  string `json:"error,omitempty"`

	Withdrawals []AccountDisplay `json:"withdrawals,omitempty"`
	Deposits    []AccountDisplay `json:"deposits,omitempty"`
	Badges      []ui.StyledText  `json:"badges,omitempty"`
	NewlyMinted []string         `json:"newly_minted,omitempty"`

	DApps      []ui.StyledText `json:"dapps,omitempty"`
	Pools      []ui.StyledText `json:"pools,omitempty"`
	Validators []ui.StyledText `json:"validators,omitempty"`

	DepositSettings []DepositSettingsDisplay `json:"deposit_settings,omitempty"`

	Entity    *ui.StyledText `json:"entity,omitempty"`
	Structure string         `json:"security_structure,omitempty"`

	Fees *FeesDisplay `json:"fees,omitempty"`
}

type AccountDisplay struct {
	Account       ui.StyledText         `json:"account"`
	Transferables []TransferableDisplay `json:"transferables"`
}

// TransferableDisplay is one resource of an account. Guaranteed is set for
// predicted amounts only. DApps are the dApp definitions the resource
// claims to belong to.
type TransferableDisplay struct {
	Resource     ui.StyledText `json:"resource"`
	Kind         string        `json:"kind"`
	Amount       ui.StyledText `json:"amount"`
	Guaranteed   string        `json:"guaranteed,omitempty"`
	Worth        []string      `json:"worth,omitempty"`
	Items        []string      `json:"items,omitempty"`
	DApps        []string      `json:"dapps,omitempty"`
	NewlyCreated bool          `json:"newly_created,omitempty"`
}

type DepositSettingsDisplay struct {
	Account     ui.StyledText `json:"account"`
	DepositRule string        `json:"deposit_rule,omitempty"`
	Preferences []string      `json:"resource_preferences,omitempty"`
	Depositors  []string      `json:"authorized_depositors,omitempty"`
}

type FeesDisplay struct {
	NetworkFee     string `json:"network_fee"`
	RoyaltyFee     string `json:"royalty_fee"`
	Locked         string `json:"locked"`
	TransactionFee string `json:"transaction_fee"`
	Guarantees     int    `json:"guarantees"`
	IncludeLockFee bool   `json:"include_lock_fee"`
}
