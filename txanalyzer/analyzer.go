package txanalyzer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// Analyzer turns execution summaries into previews. It holds no state of
// its own; analyzing the same summary twice gives equal previews.
type Analyzer struct {
	*AnalysisContext
}

func NewAnalyzer(actx *AnalysisContext) *Analyzer {
	return &Analyzer{AnalysisContext: actx}
}

// Analyze classifies the summary and resolves everything it moves.
// A summary without classification is NonConforming, not an error.
func (self *Analyzer) Analyze(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	if summary == nil {
		return nil, errors.New("no execution summary to analyze")
	}
	if len(summary.ReservedInstructions) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnacceptableManifest, summary.ReservedInstructions)
	}
	if summary.DetailedClassification == nil {
		self.Log.Debug("summary has no classification")
		return NonConforming{}, nil
	}
	p, err := self.processorFor(summary.DetailedClassification)
	if err != nil {
		return nil, err
	}
	self.Log.Debug("analyzing transaction",
		zap.Stringer("classification", summary.DetailedClassification.Kind()),
		zap.Int("withdrawing_accounts", accountCount(summary.Withdrawals)),
		zap.Int("depositing_accounts", accountCount(summary.Deposits)),
	)
	return p.process(ctx, summary)
}

// resolve looks every involved address up on ledger.
func (self *Analyzer) resolve(ctx context.Context, summary *common.ExecutionSummary) (*resolution, error) {
	return self.resolveSpecifiers(ctx, summary, InvolvedAddresses(summary))
}

func (self *Analyzer) resolveSpecifiers(ctx context.Context, summary *common.ExecutionSummary, specifiers []common.ResourceOrNonFungible) (*resolution, error) {
	onLedger := []assets.Asset{}
	if len(specifiers) > 0 {
		var err error
		onLedger, err = self.Resolver.ResolveAssets(ctx, specifiers)
		if err != nil {
			return nil, fmt.Errorf("resolving assets: %w", err)
		}
	}
	self.Log.Debug("resolved assets",
		zap.Int("requested", len(specifiers)),
		zap.Int("found", len(onLedger)),
	)
	return newResolution(summary, onLedger), nil
}

// transactionPreview is the part every transfer shaped processor shares.
func (self *Analyzer) transactionPreview(ctx context.Context, summary *common.ExecutionSummary) (*resolution, TransactionPreview, error) {
	res, err := self.resolve(ctx, summary)
	if err != nil {
		return nil, TransactionPreview{}, err
	}
	badges := res.badges()
	from, err := res.accounts(self.Profile, summary.Withdrawals, decimal.Zero)
	if err != nil {
		return nil, TransactionPreview{}, err
	}
	to, err := res.accounts(self.Profile, summary.Deposits, self.depositGuarantee())
	if err != nil {
		return nil, TransactionPreview{}, err
	}
	return res, TransactionPreview{
		From:                  from,
		To:                    to,
		Badges:                badges,
		NewlyCreatedGlobalIDs: slices.Clone(summary.NewlyCreatedNonFungibles),
	}, nil
}

// mapTransferables returns a copy of list where every transferable went
// through fn.
func mapTransferables(list []AccountWithTransferables, fn func(Transferable) Transferable) []AccountWithTransferables {
	res := make([]AccountWithTransferables, 0, len(list))
	for _, acc := range list {
		transferables := make([]Transferable, 0, len(acc.Transferables))
		for _, t := range acc.Transferables {
			transferables = append(transferables, fn(t))
		}
		res = append(res, AccountWithTransferables{Account: acc.Account, Transferables: transferables})
	}
	return res
}

func accountCount(m *indicatorMap) int {
	if m == nil {
		return 0
	}
	return m.Len()
}

func unique[T comparable](list []T) []T {
	res := make([]T, 0, len(list))
	seen := make(map[T]struct{}, len(list))
	for _, v := range list {
		if _, found := seen[v]; found {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
