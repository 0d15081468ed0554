package assets

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// A ledger snapshot is a json dump of the ledger state a preview needs,
// as fetched by the wallet from the gateway.

type snapshotClaim struct {
	ClaimEpoch  uint64          `json:"claim_epoch"`
	ClaimAmount decimal.Decimal `json:"claim_amount"`
}

type snapshotItem struct {
	ID       common.NonFungibleLocalID `json:"id"`
	Name     string                    `json:"name"`
	ImageURL string                    `json:"image_url"`
	Claim    *snapshotClaim            `json:"claim"`
}

type snapshotResource struct {
	Address         common.ResourceAddress `json:"address"`
	Kind            string                 `json:"kind"`
	Name            string                 `json:"name"`
	Symbol          string                 `json:"symbol"`
	Description     string                 `json:"description"`
	IconURL         string                 `json:"icon_url"`
	Tags            []string               `json:"tags"`
	Divisibility    *uint8                 `json:"divisibility"`
	CurrentSupply   decimal.Decimal        `json:"current_supply"`
	Items           []snapshotItem         `json:"items"`
	DAppDefinitions []common.Address       `json:"dapp_definitions"`
}

type snapshotValidator struct {
	Address            common.ValidatorAddress `json:"address"`
	Name               string                  `json:"name"`
	IconURL            string                  `json:"icon_url"`
	TotalXRDStake      decimal.Decimal         `json:"total_xrd_stake"`
	StakeUnitResource  common.ResourceAddress  `json:"stake_unit_resource"`
	ClaimTokenResource common.ResourceAddress  `json:"claim_token_resource"`
}

type snapshotPoolResource struct {
	Resource common.ResourceAddress `json:"resource"`
	Amount   decimal.Decimal        `json:"amount"`
}

type snapshotPool struct {
	Address          common.PoolAddress     `json:"address"`
	Resources        []snapshotPoolResource `json:"resources"`
	PoolUnitResource common.ResourceAddress `json:"pool_unit_resource"`
	DAppDefinition   common.Address         `json:"dapp_definition"`
}

type snapshotDApp struct {
	Components        []common.ComponentAddress `json:"components"`
	DefinitionAddress common.Address            `json:"definition_address"`
	Name              string                    `json:"name"`
	IconURL           string                    `json:"icon_url"`
}

type snapshot struct {
	Resources  []snapshotResource  `json:"resources"`
	Validators []snapshotValidator `json:"validators"`
	Pools      []snapshotPool      `json:"pools"`
	DApps      []snapshotDApp      `json:"dapps"`
}

// LoadSnapshot reads a ledger snapshot file into a Map. Whether a resource
// is a stake unit, a stake claim or a pool unit is derived from the
// validators and pools that reference it.
func LoadSnapshot(path string) (*Map, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := DecodeSnapshot(content)
	if err != nil {
		return nil, fmt.Errorf("reading ledger snapshot %s: %w", path, err)
	}
	return m, nil
}

func DecodeSnapshot(content []byte) (*Map, error) {
	s := snapshot{}
	if err := json.Unmarshal(content, &s); err != nil {
		return nil, err
	}

	resources := map[common.ResourceAddress]Resource{}
	for _, r := range s.Resources {
		res, err := r.toResource()
		if err != nil {
			return nil, err
		}
		resources[r.Address] = res
	}
	resource := func(address common.ResourceAddress) Resource {
		if r, found := resources[address]; found {
			return r
		}
		return Resource{Address: address, Kind: Fungible}
	}

	m := NewMap()
	stakeUnits := map[common.ResourceAddress]Validator{}
	claimTokens := map[common.ResourceAddress]Validator{}
	for _, v := range s.Validators {
		validator := Validator(v)
		stakeUnits[v.StakeUnitResource] = validator
		claimTokens[v.ClaimTokenResource] = validator
	}
	poolUnits := map[common.ResourceAddress]Pool{}
	for _, p := range s.Pools {
		pool := Pool{
			Address:          p.Address,
			PoolUnitResource: p.PoolUnitResource,
			DAppDefinition:   p.DAppDefinition,
		}
		for _, pr := range p.Resources {
			pool.Resources = append(pool.Resources, PoolResource{Resource: resource(pr.Resource), Amount: pr.Amount})
		}
		poolUnits[p.PoolUnitResource] = pool
		m.AddPool(pool)
	}

	for address, r := range resources {
		switch {
		case r.Kind == Fungible && hasKey(stakeUnits, address):
			m.AddAsset(LiquidStakeUnit{Resource: r, Validator: stakeUnits[address]})
		case r.Kind == Fungible && hasKey(poolUnits, address):
			m.AddAsset(PoolUnit{Resource: r, Pool: poolUnits[address]})
		case r.Kind == NonFungible && hasKey(claimTokens, address):
			m.AddAsset(StakeClaim{Resource: r, Validator: claimTokens[address]})
		case r.Kind == NonFungible:
			m.AddAsset(NonFungibleCollection{Resource: r})
		default:
			m.AddAsset(Token{Resource: r})
		}
	}

	for _, d := range s.DApps {
		dapp := DApp{DefinitionAddress: d.DefinitionAddress, Name: d.Name, IconURL: d.IconURL}
		if d.DefinitionAddress != "" {
			m.Definitions[d.DefinitionAddress] = dapp
		}
		for _, component := range d.Components {
			m.AddDApp(component, dapp)
		}
	}
	return m, nil
}

func (r snapshotResource) toResource() (Resource, error) {
	res := Resource{
		Address:         r.Address,
		Name:            r.Name,
		Symbol:          r.Symbol,
		Description:     r.Description,
		IconURL:         r.IconURL,
		Tags:            r.Tags,
		Divisibility:    r.Divisibility,
		CurrentSupply:   r.CurrentSupply,
		DAppDefinitions: r.DAppDefinitions,
	}
	switch r.Kind {
	case "fungible", "":
		res.Kind = Fungible
	case "non_fungible":
		res.Kind = NonFungible
	default:
		return res, fmt.Errorf("resource %s has unknown kind %q", r.Address, r.Kind)
	}
	for _, item := range r.Items {
		if err := item.ID.Validate(); err != nil {
			return res, fmt.Errorf("resource %s: %w", r.Address, err)
		}
		it := NonFungibleItem{
			GlobalID: common.NewNonFungibleGlobalID(r.Address, item.ID),
			Name:     item.Name,
			ImageURL: item.ImageURL,
		}
		if item.Claim != nil {
			it.ClaimData = &StakeClaimData{ClaimEpoch: item.Claim.ClaimEpoch, ClaimAmount: item.Claim.ClaimAmount}
		}
		res.Items = append(res.Items, it)
	}
	return res, nil
}

func hasKey[K comparable, V any](m map[K]V, key K) bool {
	_, found := m[key]
	return found
}
