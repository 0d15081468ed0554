package txanalyzer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/logger"
)

const (
	alice    = common.AccountAddress("account_rdx1alice")
	bob      = common.AccountAddress("account_rdx1bob")
	carol    = common.AccountAddress("account_rdx1carol")
	stranger = common.AccountAddress("account_rdx1stranger")
	persona  = common.IdentityAddress("identity_rdx1me")

	xrd       = common.ResourceAddress("resource_rdx1tknxxxxxxxxxradxrdxxxxxxxxx009923554798xxxxxxxxxradxrd")
	token     = common.ResourceAddress("resource_rdx1token")
	tokenX    = common.ResourceAddress("resource_rdx1x")
	tokenY    = common.ResourceAddress("resource_rdx1y")
	poolUnit  = common.ResourceAddress("resource_rdx1lp")
	lsu       = common.ResourceAddress("resource_rdx1lsu")
	claimNFT  = common.ResourceAddress("resource_rdx1claim")
	pets      = common.ResourceAddress("resource_rdx1pets")
	badge     = common.ResourceAddress("resource_rdx1badge")
	fresh     = common.ResourceAddress("resource_rdx1fresh")
	freshNFTs = common.ResourceAddress("resource_rdx1freshnft")
	missing   = common.ResourceAddress("resource_rdx1missing")

	pool      = common.PoolAddress("pool_rdx1pool")
	validator = common.ValidatorAddress("validator_rdx1val")
	dex       = common.ComponentAddress("component_rdx1dex")
	router    = common.ComponentAddress("component_rdx1router")
)

var structureID = uuid.MustParse("1b4e28ba-2fa1-41d2-883f-0016d3cca427")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fungible(resource common.ResourceAddress, amount string) common.ResourceIndicator {
	return &common.FungibleIndicator{Resource: resource, Amount: common.GuaranteedAmount(dec(amount))}
}

func predicted(resource common.ResourceAddress, amount string, instruction uint64) common.ResourceIndicator {
	return &common.FungibleIndicator{Resource: resource, Amount: common.PredictedAmount(dec(amount), instruction)}
}

func nonFungible(resource common.ResourceAddress, ids ...common.NonFungibleLocalID) common.ResourceIndicator {
	return &common.NonFungibleIndicator{Resource: resource, IDs: common.GuaranteedIDs(ids...)}
}

func globalID(resource common.ResourceAddress, id common.NonFungibleLocalID) common.NonFungibleGlobalID {
	return common.NewNonFungibleGlobalID(resource, id)
}

func newSummary(classification common.DetailedClassification) *common.ExecutionSummary {
	s := common.NewExecutionSummary()
	s.DetailedClassification = classification
	return s
}

func testProfile() *accounts.Profile {
	guarantee := dec("0.99")
	return &accounts.Profile{
		Network: "mainnet",
		Accounts: []accounts.Account{
			{Address: alice, DisplayName: "Alice"},
			{Address: bob, DisplayName: "Bob"},
			{Address: carol, DisplayName: "Carol"},
		},
		Personas:                []accounts.Persona{{Address: persona, DisplayName: "Me"}},
		DefaultDepositGuarantee: &guarantee,
	}
}

func testValidator() assets.Validator {
	return assets.Validator{
		Address:            validator,
		Name:               "Radix Validator",
		TotalXRDStake:      dec("1100"),
		StakeUnitResource:  lsu,
		ClaimTokenResource: claimNFT,
	}
}

func testPool() assets.Pool {
	return assets.Pool{
		Address: pool,
		Resources: []assets.PoolResource{
			{Resource: assets.Resource{Address: tokenX, Symbol: "X"}, Amount: dec("1000")},
			{Resource: assets.Resource{Address: tokenY, Symbol: "Y"}, Amount: dec("500")},
		},
		PoolUnitResource: poolUnit,
		DAppDefinition:   "account_rdx1pooldef",
	}
}

func testLedger() *assets.Map {
	fungibleResource := func(address common.ResourceAddress, symbol string) assets.Resource {
		return assets.Resource{Address: address, Kind: assets.Fungible, Symbol: symbol, CurrentSupply: dec("1000000")}
	}
	return assets.NewMap().
		AddAsset(assets.Token{Resource: fungibleResource(xrd, "XRD")}).
		AddAsset(assets.Token{Resource: fungibleResource(token, "TKN")}).
		AddAsset(assets.Token{Resource: fungibleResource(tokenX, "X")}).
		AddAsset(assets.Token{Resource: fungibleResource(tokenY, "Y")}).
		AddAsset(assets.Token{Resource: fungibleResource(badge, "BDG")}).
		AddAsset(assets.PoolUnit{
			Resource: assets.Resource{Address: poolUnit, Kind: assets.Fungible, Name: "Pool Units", CurrentSupply: dec("100")},
			Pool:     testPool(),
		}).
		AddAsset(assets.LiquidStakeUnit{
			Resource:  assets.Resource{Address: lsu, Kind: assets.Fungible, Name: "Liquid Stake Units", CurrentSupply: dec("1000")},
			Validator: testValidator(),
		}).
		AddAsset(assets.StakeClaim{
			Resource: assets.Resource{
				Address: claimNFT,
				Kind:    assets.NonFungible,
				Name:    "Stake Claims",
				Items: []assets.NonFungibleItem{{
					GlobalID:  globalID(claimNFT, "#2#"),
					Name:      "Stake Claim",
					ClaimData: &assets.StakeClaimData{ClaimEpoch: 100, ClaimAmount: dec("55")},
				}},
			},
			Validator: testValidator(),
		}).
		AddAsset(assets.NonFungibleCollection{Resource: assets.Resource{
			Address: pets,
			Kind:    assets.NonFungible,
			Name:    "Pets",
			Items: []assets.NonFungibleItem{
				{GlobalID: globalID(pets, "#1#"), Name: "Cat"},
				{GlobalID: globalID(pets, "#2#"), Name: "Dog"},
			},
		}}).
		AddDApp(dex, assets.DApp{DefinitionAddress: "account_rdx1dexdef", Name: "Dex"}).
		AddDApp(router, assets.DApp{DefinitionAddress: "account_rdx1pooldef", Name: "Pool dApp"}).
		AddPool(testPool())
}

func testStore() *accounts.MemoryStore {
	store := accounts.NewMemoryStore()
	store.Add(accounts.SecurityStructure{ID: structureID, Name: "Shield", PrimaryThreshold: 1})
	store.SetProvisional(alice.Address(), structureID)
	return store
}

func testAnalyzer() *Analyzer {
	return NewAnalyzer(NewAnalysisContext(testLedger(), testProfile(), testStore(), logger.Nop()))
}

func addresses(list []AccountWithTransferables) []common.AccountAddress {
	res := []common.AccountAddress{}
	for _, acc := range list {
		res = append(res, acc.Account.Address)
	}
	return res
}
