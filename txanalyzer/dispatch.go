package txanalyzer

import (
	"context"
	"fmt"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type processor interface {
	process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error)
}

// processorFor picks the processor of a classification. Every variant of
// common.DetailedClassification has exactly one arm.
func (self *Analyzer) processorFor(classification common.DetailedClassification) (processor, error) {
	switch c := classification.(type) {
	case common.General:
		return generalProcessor{a: self}, nil
	case common.Transfer:
		if c.IsOneToOne {
			return simpleTransferProcessor{a: self}, nil
		}
		return directTransferProcessor{a: self}, nil
	case common.PoolContribution:
		return poolContributionProcessor{a: self, classification: c}, nil
	case common.PoolRedemption:
		return poolRedemptionProcessor{a: self, classification: c}, nil
	case common.ValidatorStake:
		return validatorStakeProcessor{a: self, classification: c}, nil
	case common.ValidatorUnstake:
		return validatorUnstakeProcessor{a: self, classification: c}, nil
	case common.ValidatorClaim:
		return validatorClaimProcessor{a: self, classification: c}, nil
	case common.AccountDepositSettingsUpdate:
		return depositSettingsProcessor{a: self, classification: c}, nil
	case common.DeleteAccounts:
		return deleteAccountsProcessor{a: self, classification: c}, nil
	case common.SecurifyEntity:
		return securifyProcessor{a: self, classification: c}, nil
	case common.InitiateRecovery:
		return recoveryProcessor{a: self, entity: c.Entity, structureID: &c.ProposedStructureID, phase: RecoveryInitiate}, nil
	case common.ConfirmRecovery:
		return recoveryProcessor{a: self, entity: c.Entity, structureID: &c.ProposedStructureID, phase: RecoveryConfirm}, nil
	case common.StopTimedRecovery:
		return recoveryProcessor{a: self, entity: c.Entity, phase: RecoveryStop}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownClassification, classification)
}
