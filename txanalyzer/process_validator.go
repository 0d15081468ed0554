package txanalyzer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type validatorStakeProcessor struct {
	a              *Analyzer
	classification common.ValidatorStake
}

func (p validatorStakeProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	res, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	preview.To = mapTransferables(preview.To, func(t Transferable) Transferable {
		lsu, ok := t.(LiquidStakeUnitTransferable)
		if !ok {
			return t
		}
		matched := false
		units, xrd := decimal.Zero, decimal.Zero
		for _, s := range p.classification.Stakes {
			if s.LiquidStakeUnitAddress != lsu.ResourceAddress() {
				continue
			}
			matched = true
			units = units.Add(s.LiquidStakeUnitAmount)
			xrd = xrd.Add(s.XRDAmount)
		}
		if !matched {
			return t
		}
		lsu.Amount = lsu.Amount.WithAmount(units)
		lsu.XRDWorth = xrd
		return lsu
	})
	return Staking{
		TransactionPreview: preview,
		Action:             Stake,
		Validators:         res.validators(p.classification.ValidatorAddresses),
	}, nil
}

type validatorUnstakeProcessor struct {
	a              *Analyzer
	classification common.ValidatorUnstake
}

func (p validatorUnstakeProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	res, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	preview.To = mapTransferables(preview.To, func(t Transferable) Transferable {
		claim, ok := t.(StakeClaimTransferable)
		if !ok {
			return t
		}
		items := make([]assets.NonFungibleItem, 0, len(claim.Amount.Certain))
		for _, item := range claim.Amount.Certain {
			if data, found := p.classification.ClaimsNonFungibleData[item.GlobalID]; found {
				item.ClaimData = &assets.StakeClaimData{ClaimEpoch: data.ClaimEpoch, ClaimAmount: data.ClaimAmount}
				if item.Name == "" {
					item.Name = data.Name
				}
			}
			items = append(items, item)
		}
		claim.Amount = NonFungibleAmount{Certain: items}
		return claim
	})
	return Staking{
		TransactionPreview: preview,
		Action:             Unstake,
		Validators:         res.validators(p.classification.ValidatorAddresses),
	}, nil
}

type validatorClaimProcessor struct {
	a              *Analyzer
	classification common.ValidatorClaim
}

func (p validatorClaimProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	res, preview, err := p.a.transactionPreview(ctx, summary)
	if err != nil {
		return nil, err
	}
	return Staking{
		TransactionPreview: preview,
		Action:             Claim,
		Validators:         res.validators(p.classification.ValidatorAddresses),
	}, nil
}

// validators returns, in the order of addresses, the validators that both
// appear in addresses and back a resolved stake unit or stake claim.
func (self *resolution) validators(addresses []common.ValidatorAddress) []assets.Validator {
	involved := map[common.ValidatorAddress]assets.Validator{}
	for _, a := range self.onLedger {
		switch v := a.(type) {
		case assets.LiquidStakeUnit:
			involved[v.Validator.Address] = v.Validator
		case assets.StakeClaim:
			involved[v.Validator.Address] = v.Validator
		}
	}
	res := []assets.Validator{}
	for _, address := range unique(addresses) {
		if v, found := involved[address]; found {
			res = append(res, v)
		}
	}
	return res
}
