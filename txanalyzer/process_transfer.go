package txanalyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type generalProcessor struct {
	a *Analyzer
}

func (p generalProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	if summary.IsEmpty() {
		return None{}, nil
	}
	_, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	dapps, err := p.a.resolveDApps(ctx, summary.EncounteredComponents)
	if err != nil {
		return nil, err
	}
	return GeneralTransfer{TransactionPreview: preview, DApps: dapps}, nil
}

// resolveDApps looks the dApp of every component up concurrently.
func (self *Analyzer) resolveDApps(ctx context.Context, components []common.ComponentAddress) ([]DAppEncounter, error) {
	components = unique(components)
	res := make([]DAppEncounter, len(components))
	funcs := make([]func(context.Context) error, 0, len(components))
	for i, component := range components {
		funcs = append(funcs, func(ctx context.Context) error {
			dapp, err := self.Resolver.ResolveDApp(ctx, component)
			if err != nil {
				return fmt.Errorf("resolving dApp of %s: %w", component, err)
			}
			res[i] = DAppEncounter{Component: component, DApp: dapp}
			return nil
		})
	}
	if err := common.RunParallel(ctx, funcs...); err != nil {
		return nil, err
	}
	self.Log.Debug("resolved dApps", zap.Int("components", len(components)))
	return res, nil
}

// simpleTransferProcessor handles a transfer from one account to one
// account.
type simpleTransferProcessor struct {
	a *Analyzer
}

func (p simpleTransferProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	if accountCount(summary.Withdrawals) != 1 || accountCount(summary.Deposits) != 1 {
		p.a.Log.Debug("transfer is not one to one, processing as direct transfer")
		return directTransferProcessor(p).process(ctx, summary)
	}
	_, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	return Transfer{TransactionPreview: preview}, nil
}

// directTransferProcessor handles transfers between any number of
// accounts.
type directTransferProcessor struct {
	a *Analyzer
}

func (p directTransferProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	_, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	return Transfer{TransactionPreview: preview}, nil
}
