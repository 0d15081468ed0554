package common

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// The JSON layout mirrors what the execution engine emits. Object key order
// of withdrawals/deposits is significant and preserved.

type indicatorJSON struct {
	Type             string               `json:"type"`
	Resource         ResourceAddress      `json:"resource"`
	Amount           *decimal.Decimal     `json:"amount,omitempty"`
	IDs              []NonFungibleLocalID `json:"ids,omitempty"`
	Predicted        bool                 `json:"predicted,omitempty"`
	InstructionIndex uint64               `json:"instruction_index,omitempty"`
}

type proofJSON struct {
	Type     string               `json:"type"`
	Resource ResourceAddress      `json:"resource"`
	Amount   *decimal.Decimal     `json:"amount,omitempty"`
	IDs      []NonFungibleLocalID `json:"ids,omitempty"`
}

type newEntityJSON struct {
	Kind         string   `json:"kind"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	Description  string   `json:"description"`
	IconURL      string   `json:"icon_url"`
	Tags         []string `json:"tags"`
	Divisibility *uint8   `json:"divisibility"`
}

type poolContributionJSON struct {
	PoolAddress              PoolAddress                         `json:"pool_address"`
	ContributedResources     map[ResourceAddress]decimal.Decimal `json:"contributed_resources"`
	PoolUnitsResourceAddress ResourceAddress                     `json:"pool_units_resource_address"`
	PoolUnitsAmount          decimal.Decimal                     `json:"pool_units_amount"`
}

type poolRedemptionJSON struct {
	PoolAddress              PoolAddress                         `json:"pool_address"`
	PoolUnitsResourceAddress ResourceAddress                     `json:"pool_units_resource_address"`
	PoolUnitsAmount          decimal.Decimal                     `json:"pool_units_amount"`
	RedeemedResources        map[ResourceAddress]decimal.Decimal `json:"redeemed_resources"`
}

type validatorStakeJSON struct {
	ValidatorAddress       ValidatorAddress `json:"validator_address"`
	XRDAmount              decimal.Decimal  `json:"xrd_amount"`
	LiquidStakeUnitAddress ResourceAddress  `json:"liquid_stake_unit_address"`
	LiquidStakeUnitAmount  decimal.Decimal  `json:"liquid_stake_unit_amount"`
}

type validatorUnstakeJSON struct {
	ValidatorAddress       ValidatorAddress     `json:"validator_address"`
	LiquidStakeUnitAddress ResourceAddress      `json:"liquid_stake_unit_address"`
	LiquidStakeUnitAmount  decimal.Decimal      `json:"liquid_stake_unit_amount"`
	ClaimNFTAddress        ResourceAddress      `json:"claim_nft_address"`
	ClaimNFTIDs            []NonFungibleLocalID `json:"claim_nft_ids"`
}

type unstakeDataJSON struct {
	Name        string          `json:"name"`
	ClaimEpoch  uint64          `json:"claim_epoch"`
	ClaimAmount decimal.Decimal `json:"claim_amount"`
}

type validatorClaimJSON struct {
	ValidatorAddress ValidatorAddress     `json:"validator_address"`
	ClaimNFTAddress  ResourceAddress      `json:"claim_nft_address"`
	ClaimNFTIDs      []NonFungibleLocalID `json:"claim_nft_ids"`
	XRDAmount        decimal.Decimal      `json:"xrd_amount"`
}

type preferenceJSON struct {
	Resource   ResourceAddress `json:"resource"`
	Preference string          `json:"preference"` // "allowed", "disallowed" or "remove"
}

type depositorJSON struct {
	Resource ResourceAddress `json:"resource"`
	ID       string          `json:"non_fungible_id,omitempty"`
}

type classificationJSON struct {
	Kind string `json:"kind"`

	IsOneToOne bool `json:"is_one_to_one"`

	PoolAddresses []PoolAddress          `json:"pool_addresses"`
	Contributions []poolContributionJSON `json:"contributions"`
	Redemptions   []poolRedemptionJSON   `json:"redemptions"`

	ValidatorAddresses    []ValidatorAddress                      `json:"validator_addresses"`
	Stakes                []validatorStakeJSON                    `json:"stakes"`
	Unstakes              []validatorUnstakeJSON                  `json:"unstakes"`
	ClaimsNonFungibleData map[NonFungibleGlobalID]unstakeDataJSON `json:"claims_non_fungible_data"`
	Claims                []validatorClaimJSON                    `json:"claims"`

	ResourcePreferencesUpdates  *orderedmap.OrderedMap[string, []preferenceJSON] `json:"resource_preferences_updates"`
	DepositModeUpdates          *orderedmap.OrderedMap[string, string]           `json:"deposit_mode_updates"`
	AuthorizedDepositorsAdded   *orderedmap.OrderedMap[string, []depositorJSON]  `json:"authorized_depositors_added"`
	AuthorizedDepositorsRemoved *orderedmap.OrderedMap[string, []depositorJSON]  `json:"authorized_depositors_removed"`

	Accounts []AccountAddress `json:"accounts"`

	Entity              Address    `json:"entity"`
	ProposedStructureID *uuid.UUID `json:"proposed_structure_id"`
}

type feeSummaryJSON struct {
	ExecutionCost        decimal.Decimal `json:"execution_cost"`
	FinalizationCost     decimal.Decimal `json:"finalization_cost"`
	StorageExpansionCost decimal.Decimal `json:"storage_expansion_cost"`
	RoyaltyCost          decimal.Decimal `json:"royalty_cost"`
}

type feeLocksJSON struct {
	Lock           decimal.Decimal `json:"lock"`
	ContingentLock decimal.Decimal `json:"contingent_lock"`
}

type executionErrorJSON struct {
	Kind    ExecutionErrorKind `json:"kind"`
	Message string             `json:"message"`
}

type executionSummaryJSON struct {
	Withdrawals              *orderedmap.OrderedMap[string, []indicatorJSON] `json:"withdrawals"`
	Deposits                 *orderedmap.OrderedMap[string, []indicatorJSON] `json:"deposits"`
	PresentedProofs          []proofJSON                                     `json:"presented_proofs"`
	NewEntities              map[ResourceAddress]newEntityJSON               `json:"new_entities"`
	NewlyCreatedNonFungibles []NonFungibleGlobalID                           `json:"newly_created_non_fungibles"`
	EncounteredComponents    []ComponentAddress                              `json:"encountered_components"`
	ReservedInstructions     []ReservedInstruction                           `json:"reserved_instructions"`
	Classification           *classificationJSON                             `json:"classification"`
	FeeSummary               feeSummaryJSON                                  `json:"fee_summary"`
	FeeLocks                 feeLocksJSON                                    `json:"fee_locks"`
	ExecutionError           *executionErrorJSON                             `json:"execution_error"`
}

// DecodeExecutionSummary parses the JSON output of the execution engine.
// When the engine reported a failure instead of a summary, the returned
// error is an *ExecutionError.
func DecodeExecutionSummary(data []byte) (*ExecutionSummary, error) {
	var raw executionSummaryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding execution summary: %w", err)
	}
	if raw.ExecutionError != nil {
		return nil, &ExecutionError{Kind: raw.ExecutionError.Kind, Message: raw.ExecutionError.Message}
	}

	summary := NewExecutionSummary()
	var err error
	if summary.Withdrawals, err = decodeIndicatorMap(raw.Withdrawals); err != nil {
		return nil, fmt.Errorf("decoding withdrawals: %w", err)
	}
	if summary.Deposits, err = decodeIndicatorMap(raw.Deposits); err != nil {
		return nil, fmt.Errorf("decoding deposits: %w", err)
	}
	for i, p := range raw.PresentedProofs {
		proof, err := decodeProof(p)
		if err != nil {
			return nil, fmt.Errorf("decoding presented proof %d: %w", i, err)
		}
		summary.PresentedProofs = append(summary.PresentedProofs, proof)
	}
	for address, meta := range raw.NewEntities {
		if meta.Kind != "" && meta.Kind != "fungible" && meta.Kind != "non_fungible" {
			return nil, fmt.Errorf("new entity %s has unknown kind %q", address, meta.Kind)
		}
		summary.NewEntities.Metadata[address] = NewEntityMetadata{
			NonFungible:  meta.Kind == "non_fungible",
			Name:         meta.Name,
			Symbol:       meta.Symbol,
			Description:  meta.Description,
			IconURL:      meta.IconURL,
			Tags:         meta.Tags,
			Divisibility: meta.Divisibility,
		}
	}
	summary.NewlyCreatedNonFungibles = raw.NewlyCreatedNonFungibles
	summary.EncounteredComponents = raw.EncounteredComponents
	summary.ReservedInstructions = raw.ReservedInstructions
	if raw.Classification != nil {
		if summary.DetailedClassification, err = decodeClassification(raw.Classification); err != nil {
			return nil, err
		}
	}
	summary.FeeSummary = FeeSummary(raw.FeeSummary)
	summary.FeeLocks = FeeLocks(raw.FeeLocks)
	return summary, nil
}

func decodeIndicatorMap(raw *orderedmap.OrderedMap[string, []indicatorJSON]) (*orderedmap.OrderedMap[AccountAddress, []ResourceIndicator], error) {
	res := NewIndicatorMap()
	if raw == nil {
		return res, nil
	}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		indicators := make([]ResourceIndicator, 0, len(pair.Value))
		for _, i := range pair.Value {
			indicator, err := decodeIndicator(i)
			if err != nil {
				return nil, fmt.Errorf("account %s: %w", pair.Key, err)
			}
			indicators = append(indicators, indicator)
		}
		res.Set(AccountAddress(pair.Key), indicators)
	}
	return res, nil
}

func decodeIndicator(raw indicatorJSON) (ResourceIndicator, error) {
	switch raw.Type {
	case "fungible":
		if raw.Amount == nil {
			return nil, fmt.Errorf("fungible indicator of %s has no amount", raw.Resource)
		}
		amount := GuaranteedAmount(*raw.Amount)
		if raw.Predicted {
			amount = PredictedAmount(*raw.Amount, raw.InstructionIndex)
		}
		return &FungibleIndicator{Resource: raw.Resource, Amount: amount}, nil
	case "non_fungible":
		for _, id := range raw.IDs {
			if err := id.Validate(); err != nil {
				return nil, err
			}
		}
		ids := GuaranteedIDs(raw.IDs...)
		if raw.Predicted {
			ids = PredictedIDs(raw.InstructionIndex, raw.IDs...)
		}
		return &NonFungibleIndicator{Resource: raw.Resource, IDs: ids}, nil
	}
	return nil, fmt.Errorf("unknown indicator type %q", raw.Type)
}

func decodeProof(raw proofJSON) (ProofSpecifier, error) {
	switch raw.Type {
	case "fungible":
		if raw.Amount == nil {
			return nil, fmt.Errorf("fungible proof of %s has no amount", raw.Resource)
		}
		return FungibleProof{Resource: raw.Resource, Amount: *raw.Amount}, nil
	case "non_fungible":
		return NonFungibleProof{Resource: raw.Resource, IDs: raw.IDs}, nil
	}
	return nil, fmt.Errorf("unknown proof type %q", raw.Type)
}

func decodeClassification(raw *classificationJSON) (DetailedClassification, error) {
	kind, err := ParseClassificationKind(raw.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case GeneralClassification:
		return General{}, nil
	case TransferClassification:
		return Transfer{IsOneToOne: raw.IsOneToOne}, nil
	case PoolContributionClassification:
		c := PoolContribution{PoolAddresses: raw.PoolAddresses}
		for _, r := range raw.Contributions {
			c.Contributions = append(c.Contributions, TrackedPoolContribution(r))
		}
		return c, nil
	case PoolRedemptionClassification:
		c := PoolRedemption{PoolAddresses: raw.PoolAddresses}
		for _, r := range raw.Redemptions {
			c.Redemptions = append(c.Redemptions, TrackedPoolRedemption(r))
		}
		return c, nil
	case ValidatorStakeClassification:
		c := ValidatorStake{ValidatorAddresses: raw.ValidatorAddresses}
		for _, r := range raw.Stakes {
			c.Stakes = append(c.Stakes, TrackedValidatorStake(r))
		}
		return c, nil
	case ValidatorUnstakeClassification:
		c := ValidatorUnstake{
			ValidatorAddresses:    raw.ValidatorAddresses,
			ClaimsNonFungibleData: map[NonFungibleGlobalID]UnstakeData{},
		}
		for _, r := range raw.Unstakes {
			c.Unstakes = append(c.Unstakes, TrackedValidatorUnstake(r))
		}
		for id, data := range raw.ClaimsNonFungibleData {
			c.ClaimsNonFungibleData[id] = UnstakeData(data)
		}
		return c, nil
	case ValidatorClaimClassification:
		c := ValidatorClaim{ValidatorAddresses: raw.ValidatorAddresses}
		for _, r := range raw.Claims {
			c.Claims = append(c.Claims, TrackedValidatorClaim(r))
		}
		return c, nil
	case AccountDepositSettingsUpdateClassification:
		return decodeDepositSettingsUpdate(raw)
	case DeleteAccountsClassification:
		return DeleteAccounts{Accounts: raw.Accounts}, nil
	case SecurifyEntityClassification:
		return SecurifyEntity{Entity: raw.Entity}, nil
	case InitiateRecoveryClassification, ConfirmRecoveryClassification:
		if raw.ProposedStructureID == nil {
			return nil, fmt.Errorf("%s classification without proposed_structure_id", kind)
		}
		if kind == InitiateRecoveryClassification {
			return InitiateRecovery{Entity: raw.Entity, ProposedStructureID: *raw.ProposedStructureID}, nil
		}
		return ConfirmRecovery{Entity: raw.Entity, ProposedStructureID: *raw.ProposedStructureID}, nil
	case StopTimedRecoveryClassification:
		return StopTimedRecovery{Entity: raw.Entity}, nil
	}
	return nil, fmt.Errorf("unsupported classification %s", kind)
}

func decodeDepositSettingsUpdate(raw *classificationJSON) (AccountDepositSettingsUpdate, error) {
	res := AccountDepositSettingsUpdate{
		ResourcePreferencesUpdates:  orderedmap.New[AccountAddress, []ResourcePreferenceUpdate](),
		DepositModeUpdates:          orderedmap.New[AccountAddress, DepositRule](),
		AuthorizedDepositorsAdded:   orderedmap.New[AccountAddress, []ResourceOrNonFungible](),
		AuthorizedDepositorsRemoved: orderedmap.New[AccountAddress, []ResourceOrNonFungible](),
	}
	if raw.ResourcePreferencesUpdates != nil {
		for pair := raw.ResourcePreferencesUpdates.Oldest(); pair != nil; pair = pair.Next() {
			updates := make([]ResourcePreferenceUpdate, 0, len(pair.Value))
			for _, p := range pair.Value {
				update := ResourcePreferenceUpdate{Resource: p.Resource}
				switch p.Preference {
				case "allowed":
					update.Preference = ResourcePreferenceAllowed
				case "disallowed":
					update.Preference = ResourcePreferenceDisallowed
				case "remove":
					update.Remove = true
				default:
					return res, fmt.Errorf("unknown resource preference %q", p.Preference)
				}
				updates = append(updates, update)
			}
			res.ResourcePreferencesUpdates.Set(AccountAddress(pair.Key), updates)
		}
	}
	if raw.DepositModeUpdates != nil {
		for pair := raw.DepositModeUpdates.Oldest(); pair != nil; pair = pair.Next() {
			var rule DepositRule
			switch pair.Value {
			case "accept_all":
				rule = DepositRuleAcceptAll
			case "accept_known":
				rule = DepositRuleAcceptKnown
			case "deny_all":
				rule = DepositRuleDenyAll
			default:
				return res, fmt.Errorf("unknown deposit rule %q", pair.Value)
			}
			res.DepositModeUpdates.Set(AccountAddress(pair.Key), rule)
		}
	}
	var err error
	if err = decodeDepositors(raw.AuthorizedDepositorsAdded, res.AuthorizedDepositorsAdded); err != nil {
		return res, err
	}
	if err = decodeDepositors(raw.AuthorizedDepositorsRemoved, res.AuthorizedDepositorsRemoved); err != nil {
		return res, err
	}
	return res, nil
}

func decodeDepositors(raw *orderedmap.OrderedMap[string, []depositorJSON], into *orderedmap.OrderedMap[AccountAddress, []ResourceOrNonFungible]) error {
	if raw == nil {
		return nil
	}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		depositors := make([]ResourceOrNonFungible, 0, len(pair.Value))
		for _, d := range pair.Value {
			if d.ID == "" {
				depositors = append(depositors, ResourceSpecifier(d.Resource))
				continue
			}
			localID := NonFungibleLocalID(d.ID)
			if err := localID.Validate(); err != nil {
				return err
			}
			depositors = append(depositors, NonFungibleSpecifier(NewNonFungibleGlobalID(d.Resource, localID)))
		}
		into.Set(AccountAddress(pair.Key), depositors)
	}
	return nil
}
