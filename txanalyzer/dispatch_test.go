package txanalyzer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

func sampleClassification(t *testing.T, kind common.ClassificationKind) common.DetailedClassification {
	t.Helper()
	switch kind {
	case common.GeneralClassification:
		return common.General{}
	case common.TransferClassification:
		return common.Transfer{}
	case common.PoolContributionClassification:
		return common.PoolContribution{}
	case common.PoolRedemptionClassification:
		return common.PoolRedemption{}
	case common.ValidatorStakeClassification:
		return common.ValidatorStake{}
	case common.ValidatorUnstakeClassification:
		return common.ValidatorUnstake{}
	case common.ValidatorClaimClassification:
		return common.ValidatorClaim{}
	case common.AccountDepositSettingsUpdateClassification:
		return common.AccountDepositSettingsUpdate{}
	case common.DeleteAccountsClassification:
		return common.DeleteAccounts{}
	case common.SecurifyEntityClassification:
		return common.SecurifyEntity{}
	case common.InitiateRecoveryClassification:
		return common.InitiateRecovery{ProposedStructureID: uuid.New()}
	case common.ConfirmRecoveryClassification:
		return common.ConfirmRecovery{ProposedStructureID: uuid.New()}
	case common.StopTimedRecoveryClassification:
		return common.StopTimedRecovery{}
	}
	t.Fatalf("no sample for classification %s", kind)
	return nil
}

func TestEveryClassificationHasAProcessor(t *testing.T) {
	a := testAnalyzer()
	seen := map[string]common.ClassificationKind{}
	for _, kind := range common.AllClassificationKinds() {
		classification := sampleClassification(t, kind)
		require.Equal(t, kind, classification.Kind())

		p, err := a.processorFor(classification)
		require.NoError(t, err, kind.String())
		require.NotNil(t, p, kind.String())
		seen[kind.String()] = kind
	}
	assert.Len(t, seen, len(common.AllClassificationKinds()))
}

func TestOneToOneTransferUsesSimpleProcessor(t *testing.T) {
	a := testAnalyzer()
	p, err := a.processorFor(common.Transfer{IsOneToOne: true})
	require.NoError(t, err)
	assert.IsType(t, simpleTransferProcessor{}, p)

	p, err = a.processorFor(common.Transfer{})
	require.NoError(t, err)
	assert.IsType(t, directTransferProcessor{}, p)
}
