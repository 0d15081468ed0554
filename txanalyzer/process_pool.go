package txanalyzer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type poolContributionProcessor struct {
	a              *Analyzer
	classification common.PoolContribution
}

func (p poolContributionProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	res, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	preview.To = mapTransferables(preview.To, func(t Transferable) Transferable {
		unit, ok := t.(PoolUnitTransferable)
		if !ok {
			return t
		}
		records := []poolUnitRecord{}
		for _, c := range p.classification.Contributions {
			if c.PoolUnitsResourceAddress == unit.ResourceAddress() {
				records = append(records, poolUnitRecord{units: c.PoolUnitsAmount, resources: c.ContributedResources})
			}
		}
		return aggregatePoolUnit(unit, records)
	})
	pools, err := p.a.resolvePools(ctx, res, p.classification.PoolAddresses)
	if err != nil {
		return nil, err
	}
	return PoolTransaction{TransactionPreview: preview, Action: PoolContribution, Pools: pools}, nil
}

type poolRedemptionProcessor struct {
	a              *Analyzer
	classification common.PoolRedemption
}

func (p poolRedemptionProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	res, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	preview.From = mapTransferables(preview.From, func(t Transferable) Transferable {
		unit, ok := t.(PoolUnitTransferable)
		if !ok {
			return t
		}
		records := []poolUnitRecord{}
		for _, r := range p.classification.Redemptions {
			if r.PoolUnitsResourceAddress == unit.ResourceAddress() {
				records = append(records, poolUnitRecord{units: r.PoolUnitsAmount, resources: r.RedeemedResources})
			}
		}
		return aggregatePoolUnit(unit, records)
	})
	pools, err := p.a.resolvePools(ctx, res, p.classification.PoolAddresses)
	if err != nil {
		return nil, err
	}
	return PoolTransaction{TransactionPreview: preview, Action: PoolRedemption, Pools: pools}, nil
}

// poolUnitRecord is one contribution or redemption the engine tracked.
type poolUnitRecord struct {
	units     decimal.Decimal
	resources map[common.ResourceAddress]decimal.Decimal
}

// aggregatePoolUnit sums every record of the pool unit into its amount and
// per resource amounts. Without records the resolved amounts stay.
func aggregatePoolUnit(unit PoolUnitTransferable, records []poolUnitRecord) PoolUnitTransferable {
	if len(records) == 0 {
		return unit
	}
	total := decimal.Zero
	perResource := map[common.ResourceAddress]decimal.Decimal{}
	for _, r := range records {
		total = total.Add(r.units)
		for address, amount := range r.resources {
			if sum, found := perResource[address]; found {
				perResource[address] = sum.Add(amount)
			} else {
				perResource[address] = amount
			}
		}
	}
	unit.Amount = unit.Amount.WithAmount(total)
	unit.PerResource = perResource
	return unit
}

// poolDApp is the dApp the pool declares as its definition. Pools without
// one are looked up as dApp components.
func (self *Analyzer) poolDApp(ctx context.Context, pool assets.Pool) (*assets.DApp, error) {
	if pool.DAppDefinition != "" {
		return self.Resolver.ResolveDAppByDefinition(ctx, pool.DAppDefinition)
	}
	return self.Resolver.ResolveDApp(ctx, common.ComponentAddress(pool.Address))
}

// resolvePools resolves the pools of a pool transaction together with their
// dApps. Pools already known from the pool units of the transaction are
// not looked up again.
func (self *Analyzer) resolvePools(ctx context.Context, res *resolution, addresses []common.PoolAddress) ([]PoolWithDApp, error) {
	known := map[common.PoolAddress]assets.Pool{}
	for _, a := range res.onLedger {
		if unit, ok := a.(assets.PoolUnit); ok {
			known[unit.Pool.Address] = unit.Pool
		}
	}

	addresses = unique(addresses)
	pools := make([]PoolWithDApp, len(addresses))
	funcs := make([]func(context.Context) error, 0, len(addresses))
	for i, address := range addresses {
		funcs = append(funcs, func(ctx context.Context) error {
			pool, found := known[address]
			if !found {
				p, err := self.Resolver.ResolvePool(ctx, address)
				if err != nil {
					return fmt.Errorf("resolving pool %s: %w", address, err)
				}
				if p == nil {
					return &EntityNotFoundError{Address: address.Address()}
				}
				pool = *p
			}
			dapp, err := self.poolDApp(ctx, pool)
			if err != nil {
				return fmt.Errorf("resolving dApp of pool %s: %w", address, err)
			}
			pools[i] = PoolWithDApp{Pool: pool, DApp: dapp}
			return nil
		})
	}
	if err := common.RunParallel(ctx, funcs...); err != nil {
		return nil, err
	}
	self.Log.Debug("resolved pools", zap.Int("pools", len(addresses)))
	return pools, nil
}
