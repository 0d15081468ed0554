package assets

import (
	"context"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// Resolver looks resources, dApps and pools up on ledger.
type Resolver interface {
	// ResolveAssets returns one asset per resource referenced by specifiers,
	// in first seen order. Non fungible specifiers select which items the
	// returned resource holds. Unknown resources and items are omitted, not
	// reported as errors.
	ResolveAssets(ctx context.Context, specifiers []common.ResourceOrNonFungible) ([]Asset, error)
	// ResolveDApp returns the dApp a component belongs to, or nil.
	ResolveDApp(ctx context.Context, component common.ComponentAddress) (*DApp, error)
	// ResolveDAppByDefinition returns the dApp with the given definition
	// address, or nil.
	ResolveDAppByDefinition(ctx context.Context, definition common.Address) (*DApp, error)
	ResolvePool(ctx context.Context, pool common.PoolAddress) (*Pool, error)
}

// Map is an in memory Resolver. Assets are stored with every item known
// for them.
type Map struct {
	Assets map[common.ResourceAddress]Asset
	DApps  map[common.ComponentAddress]DApp
	Pools  map[common.PoolAddress]Pool

	Definitions map[common.Address]DApp
}

func NewMap() *Map {
	return &Map{
		Assets: map[common.ResourceAddress]Asset{},
		DApps:  map[common.ComponentAddress]DApp{},
		Pools:  map[common.PoolAddress]Pool{},

		Definitions: map[common.Address]DApp{},
	}
}

func (self *Map) AddAsset(a Asset) *Map {
	self.Assets[a.GetResource().Address] = a
	return self
}

// AddDApp registers d for component and, when d has one, under its
// definition address.
func (self *Map) AddDApp(component common.ComponentAddress, d DApp) *Map {
	self.DApps[component] = d
	if d.DefinitionAddress != "" {
		self.Definitions[d.DefinitionAddress] = d
	}
	return self
}

func (self *Map) AddPool(p Pool) *Map {
	self.Pools[p.Address] = p
	return self
}

func (self *Map) ResolveAssets(ctx context.Context, specifiers []common.ResourceOrNonFungible) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return assemble(specifiers,
		func(address common.ResourceAddress) (Asset, bool) {
			a, found := self.Assets[address]
			return a, found
		},
		func(id common.NonFungibleGlobalID) (NonFungibleItem, bool) {
			a, found := self.Assets[id.Resource]
			if !found {
				return NonFungibleItem{}, false
			}
			return a.GetResource().Item(id.LocalID)
		},
	), nil
}

func (self *Map) ResolveDApp(ctx context.Context, component common.ComponentAddress) (*DApp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, found := self.DApps[component]
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (self *Map) ResolveDAppByDefinition(ctx context.Context, definition common.Address) (*DApp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, found := self.Definitions[definition]
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (self *Map) ResolvePool(ctx context.Context, pool common.PoolAddress) (*Pool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, found := self.Pools[pool]
	if !found {
		return nil, nil
	}
	return &p, nil
}

// assemble builds the ResolveAssets answer out of per resource and per item
// lookups.
func assemble(
	specifiers []common.ResourceOrNonFungible,
	asset func(common.ResourceAddress) (Asset, bool),
	item func(common.NonFungibleGlobalID) (NonFungibleItem, bool),
) []Asset {
	order := []common.ResourceAddress{}
	items := map[common.ResourceAddress][]NonFungibleItem{}
	seenItems := map[common.NonFungibleGlobalID]bool{}
	for _, s := range specifiers {
		address := s.ResourceAddress()
		if _, seen := items[address]; !seen {
			items[address] = nil
			order = append(order, address)
		}
		id, isNonFungible := s.NonFungibleGlobalID()
		if !isNonFungible || seenItems[id] {
			continue
		}
		seenItems[id] = true
		if it, found := item(id); found {
			items[address] = append(items[address], it)
		}
	}

	res := make([]Asset, 0, len(order))
	for _, address := range order {
		a, found := asset(address)
		if !found {
			continue
		}
		res = append(res, WithItems(a, items[address]))
	}
	return res
}
