package txanalyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

func poolContributionSummary() *common.ExecutionSummary {
	s := newSummary(common.PoolContribution{
		PoolAddresses: []common.PoolAddress{pool},
		Contributions: []common.TrackedPoolContribution{
			{
				PoolAddress:              pool,
				ContributedResources:     map[common.ResourceAddress]decimal.Decimal{tokenX: dec("10"), tokenY: dec("5")},
				PoolUnitsResourceAddress: poolUnit,
				PoolUnitsAmount:          dec("2.5"),
			},
			{
				PoolAddress:              pool,
				ContributedResources:     map[common.ResourceAddress]decimal.Decimal{tokenX: dec("3"), tokenY: dec("7")},
				PoolUnitsResourceAddress: poolUnit,
				PoolUnitsAmount:          dec("1.5"),
			},
		},
	})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(tokenX, "13"), fungible(tokenY, "12")})
	s.Deposits.Set(alice, []common.ResourceIndicator{predicted(poolUnit, "4.1", 3)})
	return s
}

func TestPoolContributionSumsTrackedContributions(t *testing.T) {
	preview, err := testAnalyzer().Analyze(context.Background(), poolContributionSummary())
	require.NoError(t, err)
	tx := preview.(PoolTransaction)
	assert.Equal(t, PoolContribution, tx.Action)

	unit := tx.To[0].Transferables[0].(PoolUnitTransferable)
	assert.Equal(t, "4", unit.Amount.Amount.String())
	assert.Equal(t, Predicted, unit.Amount.Kind)
	assert.Equal(t, uint64(3), unit.Amount.InstructionIndex)
	assert.Len(t, unit.PerResource, 2)
	assert.Equal(t, "13", unit.PerResource[tokenX].String())
	assert.Equal(t, "12", unit.PerResource[tokenY].String())

	require.Len(t, tx.Pools, 1)
	assert.Equal(t, pool, tx.Pools[0].Pool.Address)
	require.NotNil(t, tx.Pools[0].DApp)
	assert.Equal(t, "Pool dApp", tx.Pools[0].DApp.Name)
}

func TestAnalyzeTwiceGivesEqualPreviews(t *testing.T) {
	a := testAnalyzer()
	summary := poolContributionSummary()
	first, err := a.Analyze(context.Background(), summary)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), summary)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPoolUnitWithoutTrackedRecordKeepsResolvedAmount(t *testing.T) {
	s := poolContributionSummary()
	c := s.DetailedClassification.(common.PoolContribution)
	c.Contributions = nil
	s.DetailedClassification = c

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	unit := preview.(PoolTransaction).To[0].Transferables[0].(PoolUnitTransferable)
	assert.Equal(t, "4.1", unit.Amount.Amount.String())
	assert.Equal(t, "41", unit.PerResource[tokenX].String())
}

func TestPoolRedemptionSumsTrackedRedemptions(t *testing.T) {
	s := newSummary(common.PoolRedemption{
		PoolAddresses: []common.PoolAddress{pool, pool},
		Redemptions: []common.TrackedPoolRedemption{
			{PoolAddress: pool, PoolUnitsResourceAddress: poolUnit, PoolUnitsAmount: dec("1"),
				RedeemedResources: map[common.ResourceAddress]decimal.Decimal{tokenX: dec("10")}},
			{PoolAddress: pool, PoolUnitsResourceAddress: poolUnit, PoolUnitsAmount: dec("2"),
				RedeemedResources: map[common.ResourceAddress]decimal.Decimal{tokenX: dec("20"), tokenY: dec("10")}},
		},
	})
	s.Withdrawals.Set(bob, []common.ResourceIndicator{fungible(poolUnit, "3")})
	s.Deposits.Set(bob, []common.ResourceIndicator{predicted(tokenX, "30", 1), predicted(tokenY, "10", 1)})

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	tx := preview.(PoolTransaction)
	assert.Equal(t, PoolRedemption, tx.Action)
	unit := tx.From[0].Transferables[0].(PoolUnitTransferable)
	assert.Equal(t, Exact, unit.Amount.Kind)
	assert.Equal(t, "3", unit.Amount.Amount.String())
	assert.Equal(t, "30", unit.PerResource[tokenX].String())
	assert.Equal(t, "10", unit.PerResource[tokenY].String())
	assert.Len(t, tx.Pools, 1)
}

func TestPoolNotOnLedgerFails(t *testing.T) {
	s := poolContributionSummary()
	c := s.DetailedClassification.(common.PoolContribution)
	c.PoolAddresses = append(c.PoolAddresses, "pool_rdx1gone")
	s.DetailedClassification = c

	_, err := testAnalyzer().Analyze(context.Background(), s)
	var notFound *EntityNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, common.Address("pool_rdx1gone"), notFound.Address)
}

func TestValidatorStakeUsesAggregateWorth(t *testing.T) {
	s := newSummary(common.ValidatorStake{
		ValidatorAddresses: []common.ValidatorAddress{validator},
		Stakes: []common.TrackedValidatorStake{
			{ValidatorAddress: validator, XRDAmount: dec("60"), LiquidStakeUnitAddress: lsu, LiquidStakeUnitAmount: dec("54")},
			{ValidatorAddress: validator, XRDAmount: dec("40"), LiquidStakeUnitAddress: lsu, LiquidStakeUnitAmount: dec("36")},
		},
	})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(xrd, "100")})
	s.Deposits.Set(alice, []common.ResourceIndicator{predicted(lsu, "90.9", 2)})

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	staking := preview.(Staking)
	assert.Equal(t, Stake, staking.Action)
	stake := staking.To[0].Transferables[0].(LiquidStakeUnitTransferable)
	assert.Equal(t, "90", stake.Amount.Amount.String())
	assert.Equal(t, "100", stake.XRDWorth.String())
	require.Len(t, staking.Validators, 1)
	assert.Equal(t, "Radix Validator", staking.Validators[0].Name)
}

func TestValidatorUnstakeJoinsClaimData(t *testing.T) {
	claimID := globalID(claimNFT, "#1#")
	s := newSummary(common.ValidatorUnstake{
		ValidatorAddresses: []common.ValidatorAddress{validator},
		Unstakes: []common.TrackedValidatorUnstake{{
			ValidatorAddress:       validator,
			LiquidStakeUnitAddress: lsu,
			LiquidStakeUnitAmount:  dec("50"),
			ClaimNFTAddress:        claimNFT,
			ClaimNFTIDs:            []common.NonFungibleLocalID{"#1#"},
		}},
		ClaimsNonFungibleData: map[common.NonFungibleGlobalID]common.UnstakeData{
			claimID: {Name: "Stake Claim", ClaimEpoch: 500, ClaimAmount: dec("55")},
		},
	})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(lsu, "50")})
	s.Deposits.Set(alice, []common.ResourceIndicator{nonFungible(claimNFT, "#1#")})
	s.NewlyCreatedNonFungibles = []common.NonFungibleGlobalID{claimID}

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	staking := preview.(Staking)
	assert.Equal(t, Unstake, staking.Action)
	claim := staking.To[0].Transferables[0].(StakeClaimTransferable)
	require.Len(t, claim.Amount.Certain, 1)
	item := claim.Amount.Certain[0]
	assert.Equal(t, "Stake Claim", item.Name)
	require.NotNil(t, item.ClaimData)
	assert.Equal(t, uint64(500), item.ClaimData.ClaimEpoch)
	assert.Equal(t, "55", item.ClaimData.ClaimAmount.String())
	assert.Len(t, staking.Validators, 1)
}

func TestValidatorClaimIntersectsValidators(t *testing.T) {
	s := newSummary(common.ValidatorClaim{
		ValidatorAddresses: []common.ValidatorAddress{"validator_rdx1other", validator},
	})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{nonFungible(claimNFT, "#2#")})
	s.Deposits.Set(alice, []common.ResourceIndicator{fungible(xrd, "55")})

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	staking := preview.(Staking)
	assert.Equal(t, Claim, staking.Action)
	require.Len(t, staking.Validators, 1)
	assert.Equal(t, validator, staking.Validators[0].Address)
	claim := staking.From[0].Transferables[0].(StakeClaimTransferable)
	assert.Equal(t, uint64(100), claim.Amount.Certain[0].ClaimData.ClaimEpoch)
}

func TestAccountDepositSettingsUpdate(t *testing.T) {
	update := common.AccountDepositSettingsUpdate{
		ResourcePreferencesUpdates:  orderedmap.New[common.AccountAddress, []common.ResourcePreferenceUpdate](),
		DepositModeUpdates:          orderedmap.New[common.AccountAddress, common.DepositRule](),
		AuthorizedDepositorsAdded:   orderedmap.New[common.AccountAddress, []common.ResourceOrNonFungible](),
		AuthorizedDepositorsRemoved: orderedmap.New[common.AccountAddress, []common.ResourceOrNonFungible](),
	}
	update.ResourcePreferencesUpdates.Set(stranger, []common.ResourcePreferenceUpdate{
		{Resource: token, Preference: common.ResourcePreferenceDisallowed},
	})
	update.ResourcePreferencesUpdates.Set(bob, []common.ResourcePreferenceUpdate{
		{Resource: token, Preference: common.ResourcePreferenceAllowed},
		{Resource: tokenX, Remove: true},
	})
	update.DepositModeUpdates.Set(alice, common.DepositRuleDenyAll)
	update.AuthorizedDepositorsAdded.Set(bob, []common.ResourceOrNonFungible{
		common.NonFungibleSpecifier(globalID(pets, "#2#")),
	})
	update.AuthorizedDepositorsRemoved.Set(bob, []common.ResourceOrNonFungible{common.ResourceSpecifier(badge)})

	preview, err := testAnalyzer().Analyze(context.Background(), newSummary(update))
	require.NoError(t, err)
	settings := preview.(AccountsDepositSettings)
	require.Len(t, settings.Accounts, 3)

	aliceChanges, bobChanges, strangerChanges := settings.Accounts[0], settings.Accounts[1], settings.Accounts[2]
	assert.Equal(t, alice, aliceChanges.Account.Address)
	require.NotNil(t, aliceChanges.DepositRule)
	assert.Equal(t, common.DepositRuleDenyAll, *aliceChanges.DepositRule)

	assert.Equal(t, bob, bobChanges.Account.Address)
	assert.Nil(t, bobChanges.DepositRule)
	require.Len(t, bobChanges.ResourcePreferenceChanges, 2)
	assert.Equal(t, PreferenceAllow, bobChanges.ResourcePreferenceChanges[0].Change)
	assert.Equal(t, PreferenceClear, bobChanges.ResourcePreferenceChanges[1].Change)
	require.Len(t, bobChanges.DepositorChanges, 2)
	assert.Equal(t, DepositorAdd, bobChanges.DepositorChanges[0].Change)
	assert.Equal(t, "Pets", bobChanges.DepositorChanges[0].Resource.Name)
	assert.Equal(t, DepositorRemove, bobChanges.DepositorChanges[1].Change)

	assert.Equal(t, stranger, strangerChanges.Account.Address)
	assert.False(t, strangerChanges.Account.IsOwned())
	assert.Equal(t, PreferenceDisallow, strangerChanges.ResourcePreferenceChanges[0].Change)

	update.DepositModeUpdates = nil
	update.AuthorizedDepositorsAdded.Set(carol, []common.ResourceOrNonFungible{common.ResourceSpecifier(missing)})
	_, err = testAnalyzer().Analyze(context.Background(), newSummary(update))
	var unresolved *ResourceCouldNotBeResolvedError
	assert.True(t, errors.As(err, &unresolved))
}

func TestDepositSettingsKeepKindOfNewResources(t *testing.T) {
	update := common.AccountDepositSettingsUpdate{
		ResourcePreferencesUpdates: orderedmap.New[common.AccountAddress, []common.ResourcePreferenceUpdate](),
		AuthorizedDepositorsAdded:  orderedmap.New[common.AccountAddress, []common.ResourceOrNonFungible](),
	}
	update.ResourcePreferencesUpdates.Set(alice, []common.ResourcePreferenceUpdate{
		{Resource: freshNFTs, Preference: common.ResourcePreferenceAllowed},
		{Resource: fresh, Preference: common.ResourcePreferenceAllowed},
		{Resource: pets, Preference: common.ResourcePreferenceDisallowed},
	})
	update.AuthorizedDepositorsAdded.Set(alice, []common.ResourceOrNonFungible{common.ResourceSpecifier(freshNFTs)})
	s := newSummary(update)
	s.NewEntities.Metadata[freshNFTs] = common.NewEntityMetadata{NonFungible: true, Name: "Fresh NFTs"}
	s.NewEntities.Metadata[fresh] = common.NewEntityMetadata{Symbol: "FRS"}

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	changes := preview.(AccountsDepositSettings).Accounts[0]
	require.Len(t, changes.ResourcePreferenceChanges, 3)
	assert.Equal(t, assets.NonFungible, changes.ResourcePreferenceChanges[0].Resource.Kind)
	assert.Equal(t, "Fresh NFTs", changes.ResourcePreferenceChanges[0].Resource.Name)
	assert.Equal(t, assets.Fungible, changes.ResourcePreferenceChanges[1].Resource.Kind)
	assert.Equal(t, assets.NonFungible, changes.ResourcePreferenceChanges[2].Resource.Kind)
	require.Len(t, changes.DepositorChanges, 1)
	assert.Equal(t, assets.NonFungible, changes.DepositorChanges[0].Resource.Kind)

	// minted ids mark an undeclared new resource as non fungible too
	s.NewEntities.Metadata[freshNFTs] = common.NewEntityMetadata{Name: "Fresh NFTs"}
	s.NewlyCreatedNonFungibles = []common.NonFungibleGlobalID{globalID(freshNFTs, "#1#")}
	preview, err = testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	changes = preview.(AccountsDepositSettings).Accounts[0]
	assert.Equal(t, assets.NonFungible, changes.ResourcePreferenceChanges[0].Resource.Kind)
}

func TestDeleteAccount(t *testing.T) {
	s := newSummary(common.DeleteAccounts{Accounts: []common.AccountAddress{alice}})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(xrd, "10")})
	s.Deposits.Set(stranger, []common.ResourceIndicator{fungible(xrd, "4")})
	s.Deposits.Set(bob, []common.ResourceIndicator{fungible(xrd, "6")})

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	deletion := preview.(DeleteAccount)
	assert.Equal(t, alice, deletion.Deleting.Address)
	assert.Equal(t, []common.AccountAddress{bob, stranger}, addresses(deletion.To))

	_, err = testAnalyzer().Analyze(context.Background(), newSummary(common.DeleteAccounts{Accounts: []common.AccountAddress{stranger}}))
	var notFound *EntityNotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = testAnalyzer().Analyze(context.Background(), newSummary(common.DeleteAccounts{Accounts: []common.AccountAddress{alice, bob}}))
	assert.Error(t, err)
}

func TestSecurifyEntity(t *testing.T) {
	preview, err := testAnalyzer().Analyze(context.Background(), newSummary(common.SecurifyEntity{Entity: alice.Address()}))
	require.NoError(t, err)
	securify := preview.(SecurifyEntity)
	assert.Equal(t, "Alice", securify.Entity.DisplayName)
	assert.Equal(t, "Shield", securify.Structure.Name)

	_, err = testAnalyzer().Analyze(context.Background(), newSummary(common.SecurifyEntity{Entity: bob.Address()}))
	assert.ErrorIs(t, err, ErrSecurityStructureNotFound)

	_, err = testAnalyzer().Analyze(context.Background(), newSummary(common.SecurifyEntity{Entity: stranger.Address()}))
	var notFound *EntityNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestRecoveryPhases(t *testing.T) {
	a := testAnalyzer()
	preview, err := a.Analyze(context.Background(), newSummary(common.InitiateRecovery{Entity: alice.Address(), ProposedStructureID: structureID}))
	require.NoError(t, err)
	update := preview.(UpdateSecurityStructure)
	assert.Equal(t, RecoveryInitiate, update.Phase)
	require.NotNil(t, update.Structure)
	assert.Equal(t, structureID, update.Structure.ID)

	_, err = a.Analyze(context.Background(), newSummary(common.ConfirmRecovery{Entity: alice.Address(), ProposedStructureID: uuid.New()}))
	assert.ErrorIs(t, err, ErrSecurityStructureNotFound)

	preview, err = a.Analyze(context.Background(), newSummary(common.StopTimedRecovery{Entity: persona.Address()}))
	require.NoError(t, err)
	update = preview.(UpdateSecurityStructure)
	assert.Equal(t, RecoveryStop, update.Phase)
	assert.True(t, update.Entity.IsPersona)
	assert.Nil(t, update.Structure)
}

func TestGeneralTransferAttachesDApps(t *testing.T) {
	s := newSummary(common.General{})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(xrd, "10")})
	s.Deposits.Set(alice, []common.ResourceIndicator{predicted(token, "42", 2)})
	s.EncounteredComponents = []common.ComponentAddress{dex, "component_rdx1unknown", dex}

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	general := preview.(GeneralTransfer)
	require.Len(t, general.DApps, 2)
	assert.Equal(t, dex, general.DApps[0].Component)
	require.NotNil(t, general.DApps[0].DApp)
	assert.Equal(t, "Dex", general.DApps[0].DApp.Name)
	assert.Nil(t, general.DApps[1].DApp)
}

func TestGeneralWithNothingToShowIsNone(t *testing.T) {
	preview, err := testAnalyzer().Analyze(context.Background(), newSummary(common.General{}))
	require.NoError(t, err)
	assert.Equal(t, None{}, preview)
}

func TestSimpleTransfer(t *testing.T) {
	s := newSummary(common.Transfer{IsOneToOne: true})
	s.Withdrawals.Set(alice, []common.ResourceIndicator{fungible(xrd, "10")})
	s.Deposits.Set(stranger, []common.ResourceIndicator{fungible(xrd, "10")})

	preview, err := testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	transfer := preview.(Transfer)
	assert.Equal(t, []common.AccountAddress{alice}, addresses(transfer.From))
	assert.Equal(t, []common.AccountAddress{stranger}, addresses(transfer.To))

	s.Deposits.Set(bob, []common.ResourceIndicator{fungible(xrd, "1")})
	preview, err = testAnalyzer().Analyze(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, preview.(Transfer).To, 2)
}

func TestEmptyProfile(t *testing.T) {
	a := NewAnalyzer(NewAnalysisContext(testLedger(), nil, nil, nil))
	s := newSummary(common.Transfer{})
	s.Deposits.Set(alice, []common.ResourceIndicator{predicted(xrd, "1", 0)})

	preview, err := a.Analyze(context.Background(), s)
	require.NoError(t, err)
	to := preview.(Transfer).To
	assert.False(t, to[0].Account.IsOwned())
	assert.True(t, to[0].Transferables[0].(TokenTransferable).Amount.GuaranteeOffset.IsZero())

	_, err = a.Analyze(context.Background(), newSummary(common.SecurifyEntity{Entity: alice.Address()}))
	var notFound *EntityNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.ErrorIs(t, func() error {
		_, err := a.Security.StructureByID(context.Background(), structureID)
		return err
	}(), accounts.ErrStructureNotFound)
}
