package common

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferSummaryJSON = `{
	"withdrawals": {
		"account_rdx1bob": [
			{"type": "fungible", "resource": "resource_rdx1token", "amount": "5"}
		],
		"account_rdx1alice": [
			{"type": "non_fungible", "resource": "resource_rdx1nft", "ids": ["#3#"]}
		]
	},
	"deposits": {
		"account_rdx1carol": [
			{"type": "fungible", "resource": "resource_rdx1token", "amount": "5", "predicted": true, "instruction_index": 4}
		]
	},
	"presented_proofs": [
		{"type": "fungible", "resource": "resource_rdx1badge", "amount": "1"}
	],
	"new_entities": {
		"resource_rdx1fresh": {"name": "Fresh", "symbol": "FRS", "divisibility": 6},
		"resource_rdx1freshnft": {"kind": "non_fungible", "name": "Fresh NFTs"}
	},
	"newly_created_non_fungibles": ["resource_rdx1nft:#9#"],
	"encountered_components": ["component_rdx1dex"],
	"classification": {"kind": "transfer", "is_one_to_one": false},
	"fee_summary": {"execution_cost": "0.3", "finalization_cost": "0.05", "storage_expansion_cost": "0.1", "royalty_cost": "0"},
	"fee_locks": {"lock": "0", "contingent_lock": "0"}
}`

func TestDecodeExecutionSummaryKeepsOrder(t *testing.T) {
	summary, err := DecodeExecutionSummary([]byte(transferSummaryJSON))
	require.NoError(t, err)

	var order []AccountAddress
	for pair := summary.Withdrawals.Oldest(); pair != nil; pair = pair.Next() {
		order = append(order, pair.Key)
	}
	assert.Equal(t, []AccountAddress{"account_rdx1bob", "account_rdx1alice"}, order)

	deposits, ok := summary.Deposits.Get("account_rdx1carol")
	require.True(t, ok)
	require.Len(t, deposits, 1)
	fungible, ok := deposits[0].(*FungibleIndicator)
	require.True(t, ok)
	assert.True(t, fungible.Amount.Predicted)
	assert.Equal(t, uint64(4), fungible.Amount.InstructionIndex)
	assert.True(t, fungible.Amount.Value.Equal(decimal.NewFromInt(5)))

	nft, _ := summary.Withdrawals.Get("account_rdx1alice")
	require.IsType(t, &NonFungibleIndicator{}, nft[0])
	assert.False(t, nft[0].(*NonFungibleIndicator).IDs.Predicted)

	assert.Equal(t, Transfer{IsOneToOne: false}, summary.DetailedClassification)
	assert.True(t, summary.NewEntities.Has("resource_rdx1fresh"))
	assert.False(t, summary.NewEntities.Metadata["resource_rdx1fresh"].NonFungible)
	assert.True(t, summary.NewEntities.Metadata["resource_rdx1freshnft"].NonFungible)
	assert.Contains(t, summary.NewlyCreatedNonFungibleSet(), NewNonFungibleGlobalID("resource_rdx1nft", "#9#"))
	assert.Equal(t, "0.3", summary.FeeSummary.ExecutionCost.String())
	assert.Len(t, summary.PresentedProofs, 1)
	assert.False(t, summary.IsEmpty())
}

func TestDecodeExecutionSummaryError(t *testing.T) {
	_, err := DecodeExecutionSummary([]byte(`{"execution_error": {"kind": "one_of_receiving_accounts_does_not_allow_deposits"}}`))
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, OneOfReceivingAccountsDoesNotAllowDeposits, execErr.Kind)
}

func TestDecodeClassifications(t *testing.T) {
	summary, err := DecodeExecutionSummary([]byte(`{
		"classification": {
			"kind": "account_deposit_settings_update",
			"resource_preferences_updates": {
				"account_rdx1bob": [{"resource": "resource_rdx1token", "preference": "disallowed"}],
				"account_rdx1alice": [{"resource": "resource_rdx1token", "preference": "remove"}]
			},
			"deposit_mode_updates": {"account_rdx1bob": "deny_all"},
			"authorized_depositors_added": {
				"account_rdx1bob": [{"resource": "resource_rdx1badge"}, {"resource": "resource_rdx1nft", "non_fungible_id": "#2#"}]
			}
		}
	}`))
	require.NoError(t, err)
	update, ok := summary.DetailedClassification.(AccountDepositSettingsUpdate)
	require.True(t, ok)
	assert.Equal(t, AccountAddress("account_rdx1bob"), update.ResourcePreferencesUpdates.Oldest().Key)
	alice, _ := update.ResourcePreferencesUpdates.Get("account_rdx1alice")
	assert.True(t, alice[0].Remove)
	rule, _ := update.DepositModeUpdates.Get("account_rdx1bob")
	assert.Equal(t, DepositRuleDenyAll, rule)
	added, _ := update.AuthorizedDepositorsAdded.Get("account_rdx1bob")
	require.Len(t, added, 2)
	assert.False(t, added[0].IsNonFungible())
	assert.True(t, added[1].IsNonFungible())
	assert.Equal(t, 0, update.AuthorizedDepositorsRemoved.Len())

	summary, err = DecodeExecutionSummary([]byte(`{
		"classification": {
			"kind": "validator_unstake",
			"validator_addresses": ["validator_rdx1val"],
			"unstakes": [{"validator_address": "validator_rdx1val", "liquid_stake_unit_address": "resource_rdx1lsu", "liquid_stake_unit_amount": "10", "claim_nft_address": "resource_rdx1claim", "claim_nft_ids": ["#1#"]}],
			"claims_non_fungible_data": {"resource_rdx1claim:#1#": {"name": "Stake Claim", "claim_epoch": 42, "claim_amount": "11"}}
		}
	}`))
	require.NoError(t, err)
	unstake := summary.DetailedClassification.(ValidatorUnstake)
	require.Len(t, unstake.Unstakes, 1)
	data := unstake.ClaimsNonFungibleData[NewNonFungibleGlobalID("resource_rdx1claim", "#1#")]
	assert.Equal(t, uint64(42), data.ClaimEpoch)
	assert.Equal(t, "11", data.ClaimAmount.String())

	_, err = DecodeExecutionSummary([]byte(`{"classification": {"kind": "initiate_recovery", "entity": "account_rdx1bob"}}`))
	assert.Error(t, err)

	_, err = DecodeExecutionSummary([]byte(`{"deposits": {"account_rdx1bob": [{"type": "mystery"}]}}`))
	assert.Error(t, err)
}
