package util_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/fees"
	"github.com/radixdlt/babylon-wallet-android-sub006/txanalyzer"
	"github.com/radixdlt/babylon-wallet-android-sub006/ui"
	"github.com/radixdlt/babylon-wallet-android-sub006/util"
)

const (
	alice    = common.AccountAddress("account_rdx1alice")
	stranger = common.AccountAddress("account_rdx1stranger")
)

var reviewID = uuid.MustParse("6f1c1a52-8c2e-4f7b-9d7e-0d5b8f7e2a11")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func xrd(amount txanalyzer.BoundedAmount) txanalyzer.Transferable {
	return txanalyzer.TokenTransferable{
		Asset:  assets.Token{Resource: assets.Resource{Address: "resource_rdx1xrd", Kind: assets.Fungible, Symbol: "XRD"}},
		Amount: amount,
	}
}

func transferReview() txanalyzer.Review {
	return txanalyzer.Review{
		ID:    reviewID,
		State: txanalyzer.ReviewReady,
		Preview: txanalyzer.Transfer{TransactionPreview: txanalyzer.TransactionPreview{
			From: []txanalyzer.AccountWithTransferables{{
				Account:       txanalyzer.InvolvedAccount{Address: alice, Profile: &accounts.Account{Address: alice, DisplayName: "Alice"}},
				Transferables: []txanalyzer.Transferable{xrd(txanalyzer.ExactAmount(dec("5")))},
			}},
			To: []txanalyzer.AccountWithTransferables{{
				Account:       txanalyzer.InvolvedAccount{Address: stranger},
				Transferables: []txanalyzer.Transferable{xrd(txanalyzer.PredictedAmount(dec("5"), 2, dec("0.9")))},
			}},
		}},
	}
}

func TestDisplayTransferReview(t *testing.T) {
	u := ui.NewRecordingUI()
	d := util.DisplayReview(u, transferReview(), nil)

	assert.Equal(t, reviewID.String(), d.ID)
	assert.Equal(t, "ready", d.State)
	assert.Equal(t, "transfer", d.Kind)
	require.Len(t, d.Withdrawals, 1)
	assert.Equal(t, "Alice (acco...1alice)", d.Withdrawals[0].Account.Text)
	assert.Equal(t, ui.SeveritySuccess, d.Withdrawals[0].Account.Severity)
	require.Len(t, d.Deposits, 1)
	assert.Equal(t, "acco...ranger", d.Deposits[0].Account.Text)
	deposit := d.Deposits[0].Transferables[0]
	assert.Equal(t, "~5", deposit.Amount.Text)
	assert.Equal(t, ui.SeverityWarn, deposit.Amount.Severity)
	assert.Equal(t, "4.5", deposit.Guaranteed)

	assert.Contains(t, u.Values("Table"), "Kind | Transfer")
	assert.Contains(t, u.Values("Table"), "Alice (acco...1alice) | XRD | 5 | ")
	assert.Contains(t, u.Values("Table"), "acco...ranger | XRD | ~5 (guaranteed 4.5) | ")
	assert.Equal(t, []string{"Withdrawals", "Deposits"}, u.Values("Section"))
}

func TestDisplayShowsResourceDApps(t *testing.T) {
	review := transferReview()
	tx := review.Preview.(txanalyzer.Transfer)
	tx.From[0].Transferables = []txanalyzer.Transferable{txanalyzer.TokenTransferable{
		Asset: assets.Token{Resource: assets.Resource{
			Address:         "resource_rdx1oci",
			Kind:            assets.Fungible,
			Symbol:          "OCI",
			DAppDefinitions: []common.Address{"account_rdx1ociswap"},
		}},
		Amount: txanalyzer.ExactAmount(dec("2")),
	}}
	review.Preview = tx

	u := ui.NewRecordingUI()
	d := util.DisplayReview(u, review, nil)
	assert.Equal(t, []string{"acco...ciswap"}, d.Withdrawals[0].Transferables[0].DApps)
	assert.Nil(t, d.Deposits[0].Transferables[0].DApps)
	assert.Contains(t, u.Values("Table"), "Alice (acco...1alice) | OCI | 2 | dApp acco...ciswap")
}

func TestPreviewDisplayMarshalsPlainText(t *testing.T) {
	d := util.BuildPreviewDisplay(transferReview(), nil)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"account":"Alice (acco...1alice)"`)
	assert.Contains(t, string(data), `"amount":"~5"`)
	assert.NotContains(t, string(data), `"fees"`)
}

func TestDisplayRawManifestReview(t *testing.T) {
	u := ui.NewRecordingUI()
	d := util.DisplayReview(u, txanalyzer.Review{
		ID:      reviewID,
		State:   txanalyzer.ReviewRawManifest,
		Preview: txanalyzer.NonConforming{},
		Err:     errors.New("resource could not be resolved"),
	}, nil)

	assert.Equal(t, "raw manifest", d.State)
	assert.Equal(t, []string{"resource could not be resolved"}, u.Values("Error"))
	assert.Contains(t, u.Values("Table"), "Kind | Raw Manifest")
}

func TestDisplayDepositSettings(t *testing.T) {
	rule := common.DepositRuleDenyAll
	badge := common.ResourceAddress("resource_rdx1badge")
	u := ui.NewRecordingUI()
	util.DisplayReview(u, txanalyzer.Review{
		ID:    reviewID,
		State: txanalyzer.ReviewReady,
		Preview: txanalyzer.AccountsDepositSettings{Accounts: []txanalyzer.AccountDepositSettingsChanges{{
			Account:     txanalyzer.InvolvedAccount{Address: alice, Profile: &accounts.Account{Address: alice, DisplayName: "Alice"}},
			DepositRule: &rule,
			ResourcePreferenceChanges: []txanalyzer.ResourcePreferenceChange{
				{Resource: assets.Resource{Name: "Pets"}, Change: txanalyzer.PreferenceAllow},
			},
			DepositorChanges: []txanalyzer.DepositorChange{{
				Depositor: common.NonFungibleSpecifier(common.NewNonFungibleGlobalID(badge, "#1#")),
				Resource:  assets.Resource{Address: badge, Name: "Badge"},
				Change:    txanalyzer.DepositorAdd,
			}},
		}}},
	}, nil)

	assert.Contains(t, u.Values("Table"), "Kind | Deposit Settings")
	assert.Equal(t, []string{"Alice (acco...1alice)"}, u.Values("Critical"))
	assert.Equal(t, []string{
		"Deposit rule: deny all",
		"Resource: allow Pets",
		"Depositor: add Badge #1#",
	}, u.Values("KeyValue"))
}

func TestDisplayStakingAndPools(t *testing.T) {
	lsu := assets.LiquidStakeUnit{
		Resource:  assets.Resource{Address: "resource_rdx1lsu", Kind: assets.Fungible, Name: "Liquid Stake Units"},
		Validator: assets.Validator{Name: "Radix Validator"},
	}
	d := util.BuildPreviewDisplay(txanalyzer.Review{
		ID:    reviewID,
		State: txanalyzer.ReviewReady,
		Preview: txanalyzer.Staking{
			Action:     txanalyzer.Stake,
			Validators: []assets.Validator{{Name: "Radix Validator"}},
			TransactionPreview: txanalyzer.TransactionPreview{To: []txanalyzer.AccountWithTransferables{{
				Account: txanalyzer.InvolvedAccount{Address: alice, Profile: &accounts.Account{Address: alice, DisplayName: "Alice"}},
				Transferables: []txanalyzer.Transferable{txanalyzer.LiquidStakeUnitTransferable{
					Asset:    lsu,
					Amount:   txanalyzer.ExactAmount(dec("90")),
					XRDWorth: dec("100"),
				}},
			}}},
		},
	}, nil)

	assert.Equal(t, "staking", d.Kind)
	assert.Equal(t, "stake", d.Action)
	assert.Equal(t, []string{"Radix Validator"}, []string{d.Validators[0].Text})
	lsuDisplay := d.Deposits[0].Transferables[0]
	assert.Equal(t, "liquid stake unit", lsuDisplay.Kind)
	assert.Equal(t, []string{"100 XRD"}, lsuDisplay.Worth)

	pool := assets.Pool{
		Address: "pool_rdx1pool",
		Resources: []assets.PoolResource{
			{Resource: assets.Resource{Address: "resource_rdx1x", Symbol: "X"}},
			{Resource: assets.Resource{Address: "resource_rdx1y", Symbol: "Y"}},
		},
	}
	d = util.BuildPreviewDisplay(txanalyzer.Review{
		ID:    reviewID,
		State: txanalyzer.ReviewReady,
		Preview: txanalyzer.PoolTransaction{
			Action: txanalyzer.PoolContribution,
			Pools:  []txanalyzer.PoolWithDApp{{Pool: pool}},
			TransactionPreview: txanalyzer.TransactionPreview{To: []txanalyzer.AccountWithTransferables{{
				Account: txanalyzer.InvolvedAccount{Address: alice},
				Transferables: []txanalyzer.Transferable{txanalyzer.PoolUnitTransferable{
					Asset:  assets.PoolUnit{Resource: assets.Resource{Address: "resource_rdx1lp", Name: "Pool Units"}, Pool: pool},
					Amount: txanalyzer.PredictedAmount(dec("4"), 1, dec("1")),
					PerResource: map[common.ResourceAddress]decimal.Decimal{
						"resource_rdx1y": dec("12"),
						"resource_rdx1x": dec("13"),
					},
				}},
			}}},
		},
	}, nil)

	assert.Equal(t, "contribution", d.Action)
	assert.Equal(t, ui.SeverityError, d.Pools[0].Severity)
	assert.Equal(t, []string{"13 X", "12 Y"}, d.Deposits[0].Transferables[0].Worth)
}

func TestDisplayFees(t *testing.T) {
	summary := common.NewExecutionSummary()
	summary.FeeSummary.ExecutionCost = dec("0.2")
	summary.FeeSummary.FinalizationCost = dec("0.05")
	summary.FeeSummary.StorageExpansionCost = dec("0.01")
	summary.FeeLocks.Lock = dec("1")
	f := fees.Resolve(summary, fees.NotaryAndSigners{SignersCount: 1}, txanalyzer.None{})

	u := ui.NewRecordingUI()
	d := util.DisplayFees(u, f)
	assert.Equal(t, "0.3196448", d.NetworkFee)
	assert.Equal(t, "1", d.Locked)
	assert.Equal(t, "0", d.TransactionFee)
	assert.False(t, d.IncludeLockFee)
	assert.Equal(t, []string{"Fees"}, u.Values("Section"))
	assert.Contains(t, u.Values("Table"), "Network fee | 0.3196448 XRD")
}
