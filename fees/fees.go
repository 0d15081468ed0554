package fees

import (
	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/txanalyzer"
)

var (
	Margin                   = decimal.RequireFromString("0.15")
	LockFeeInstructionCost   = decimal.RequireFromString("0.08581566997")
	SignatureCost            = decimal.RequireFromString("0.01109974758")
	NotarizingCost           = decimal.RequireFromString("0.0081566")
	NotarizingCostAsSignator = decimal.RequireFromString("0.0084948")
	GuaranteeInstructionCost = decimal.RequireFromString("0.00908532837")
)

// NotaryAndSigners is who will sign the transaction once it is built.
type NotaryAndSigners struct {
	SignersCount      int
	NotaryIsSignatory bool
}

// TransactionFees holds the fee figures of one transaction in XRD.
type TransactionFees struct {
	ExecutionCost        decimal.Decimal
	FinalizationCost     decimal.Decimal
	StorageExpansionCost decimal.Decimal
	RoyaltyCost          decimal.Decimal
	NonContingentLock    decimal.Decimal

	GuaranteesCount   int
	SignersCount      int
	NotaryIsSignatory bool
	IncludeLockFee    bool
}

// Resolve derives the fees of summary. preview is the analyzed preview of
// the same summary; it only contributes the number of guarantees.
func Resolve(summary *common.ExecutionSummary, signers NotaryAndSigners, preview txanalyzer.PreviewType) TransactionFees {
	fees := TransactionFees{
		GuaranteesCount:   GuaranteesCount(preview),
		SignersCount:      signers.SignersCount,
		NotaryIsSignatory: signers.NotaryIsSignatory,
	}
	if summary != nil {
		fees.ExecutionCost = summary.FeeSummary.ExecutionCost
		fees.FinalizationCost = summary.FeeSummary.FinalizationCost
		fees.StorageExpansionCost = summary.FeeSummary.StorageExpansionCost
		fees.RoyaltyCost = summary.FeeSummary.RoyaltyCost
		fees.NonContingentLock = summary.FeeLocks.Lock
	}
	fees.IncludeLockFee = fees.DefaultTransactionFee().IsPositive()
	return fees
}

// GuaranteesCount is the number of predicted fungible deposits into
// accounts of the profile. Each of them gets a guarantee instruction.
func GuaranteesCount(preview txanalyzer.PreviewType) int {
	tp, ok := txanalyzer.TransactionPreviewOf(preview)
	if !ok {
		return 0
	}
	count := 0
	for _, acc := range tp.To {
		if !acc.Account.IsOwned() {
			continue
		}
		for _, t := range acc.Transferables {
			if amount, ok := txanalyzer.FungibleAmount(t); ok && amount.IsPredicted() {
				count++
			}
		}
	}
	return count
}

func (self TransactionFees) notarizingCost() decimal.Decimal {
	if self.NotaryIsSignatory {
		return NotarizingCostAsSignator
	}
	return NotarizingCost
}

// NetworkFee is the cost of executing the transaction as it will be
// submitted, margin included.
func (self TransactionFees) NetworkFee() decimal.Decimal {
	costs := []decimal.Decimal{
		self.ExecutionCost,
		self.FinalizationCost,
		SignatureCost.Mul(decimal.NewFromInt(int64(self.SignersCount))),
		self.notarizingCost(),
		GuaranteeInstructionCost.Mul(decimal.NewFromInt(int64(self.GuaranteesCount))),
	}
	if self.IncludeLockFee {
		costs = append(costs, LockFeeInstructionCost)
	}
	total := common.SumDecimals(costs...)
	return total.Mul(decimal.NewFromInt(1).Add(Margin)).Add(self.StorageExpansionCost)
}

// DefaultTransactionFee is what the fee payer has to lock on top of what
// the manifest already locks.
func (self TransactionFees) DefaultTransactionFee() decimal.Decimal {
	return common.ClampedToZero(self.NetworkFee().Add(self.RoyaltyCost).Sub(self.NonContingentLock))
}

// TransactionFeeToLock is the advanced mode total: the network fee and
// royalties plus a padding and a tip in percent of the execution and
// finalization costs.
func (self TransactionFees) TransactionFeeToLock(padding, tipPercentage decimal.Decimal) decimal.Decimal {
	tip := tipPercentage.Div(decimal.NewFromInt(100)).Mul(self.ExecutionCost.Add(self.FinalizationCost))
	return self.NetworkFee().Add(self.RoyaltyCost).Add(padding).Add(tip)
}
