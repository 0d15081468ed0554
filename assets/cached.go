package assets

import (
	"context"

	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/logger"
	"github.com/radixdlt/babylon-wallet-android-sub006/util/cache"
)

// Cached decorates a Resolver with in memory LRU caches so the same ledger
// lookup is not repeated across analyses of one session. Misses are not
// cached.
type Cached struct {
	inner Resolver
	log   *zap.Logger

	resources *cache.LRU[common.ResourceAddress, Asset]
	items     *cache.LRU[common.NonFungibleGlobalID, NonFungibleItem]
	dapps     *cache.LRU[common.ComponentAddress, DApp]
	pools     *cache.LRU[common.PoolAddress, Pool]

	definitions *cache.LRU[common.Address, DApp]
}

func NewCached(inner Resolver, size int, log *zap.Logger) (*Cached, error) {
	resources, err := cache.NewLRU[common.ResourceAddress, Asset](size)
	if err != nil {
		return nil, err
	}
	items, err := cache.NewLRU[common.NonFungibleGlobalID, NonFungibleItem](size)
	if err != nil {
		return nil, err
	}
	dapps, err := cache.NewLRU[common.ComponentAddress, DApp](size)
	if err != nil {
		return nil, err
	}
	pools, err := cache.NewLRU[common.PoolAddress, Pool](size)
	if err != nil {
		return nil, err
	}
	definitions, err := cache.NewLRU[common.Address, DApp](size)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Cached{
		inner:     inner,
		log:       log,
		resources: resources,
		items:     items,
		dapps:     dapps,
		pools:     pools,

		definitions: definitions,
	}, nil
}

func (self *Cached) ResolveAssets(ctx context.Context, specifiers []common.ResourceOrNonFungible) ([]Asset, error) {
	missing := []common.ResourceOrNonFungible{}
	for _, s := range specifiers {
		if id, isNonFungible := s.NonFungibleGlobalID(); isNonFungible {
			if _, found := self.items.Get(id); found {
				continue
			}
		} else if _, found := self.resources.Get(s.ResourceAddress()); found {
			continue
		}
		missing = append(missing, s)
	}

	fetched := map[common.ResourceAddress]Asset{}
	if len(missing) > 0 {
		self.log.Debug("resolving assets",
			zap.Int("requested", len(specifiers)),
			zap.Int("missing", len(missing)),
		)
		assets, err := self.inner.ResolveAssets(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, a := range assets {
			r := a.GetResource()
			for _, item := range r.Items {
				self.items.Set(item.GlobalID, item)
			}
			fetched[r.Address] = a
			self.resources.Set(r.Address, WithItems(a, nil))
		}
	}

	return assemble(specifiers,
		func(address common.ResourceAddress) (Asset, bool) {
			// entries may have been evicted since the fetch above
			if a, found := fetched[address]; found {
				return a, true
			}
			return self.resources.Get(address)
		},
		func(id common.NonFungibleGlobalID) (NonFungibleItem, bool) {
			if a, found := fetched[id.Resource]; found {
				if item, found := a.GetResource().Item(id.LocalID); found {
					return item, true
				}
			}
			return self.items.Get(id)
		},
	), nil
}

func (self *Cached) ResolveDApp(ctx context.Context, component common.ComponentAddress) (*DApp, error) {
	if d, found := self.dapps.Get(component); found {
		return &d, nil
	}
	d, err := self.inner.ResolveDApp(ctx, component)
	if err != nil || d == nil {
		return d, err
	}
	self.dapps.Set(component, *d)
	return d, nil
}

func (self *Cached) ResolveDAppByDefinition(ctx context.Context, definition common.Address) (*DApp, error) {
	if d, found := self.definitions.Get(definition); found {
		return &d, nil
	}
	d, err := self.inner.ResolveDAppByDefinition(ctx, definition)
	if err != nil || d == nil {
		return d, err
	}
	self.definitions.Set(definition, *d)
	return d, nil
}

func (self *Cached) ResolvePool(ctx context.Context, pool common.PoolAddress) (*Pool, error) {
	if p, found := self.pools.Get(pool); found {
		return &p, nil
	}
	p, err := self.inner.ResolvePool(ctx, pool)
	if err != nil || p == nil {
		return p, err
	}
	self.pools.Set(pool, *p)
	return p, nil
}
