package txanalyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// Security processors read the security structure store, not the
// withdrawals and deposits.

type securifyProcessor struct {
	a              *Analyzer
	classification common.SecurifyEntity
}

func (p securifyProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	entity, err := p.a.entity(p.classification.Entity)
	if err != nil {
		return nil, err
	}
	structure, err := p.a.Security.ProvisionalStructure(ctx, entity.Address)
	if err != nil {
		return nil, fmt.Errorf("securifying %s: %w", entity.Address, err)
	}
	return SecurifyEntity{Entity: entity, Structure: *structure}, nil
}

type recoveryProcessor struct {
	a      *Analyzer
	entity common.Address
	// nil when stopping a timed recovery
	structureID *uuid.UUID
	phase       RecoveryPhase
}

func (p recoveryProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	entity, err := p.a.entity(p.entity)
	if err != nil {
		return nil, err
	}

	var structure *accounts.SecurityStructure
	if p.structureID != nil {
		structure, err = p.a.Security.StructureByID(ctx, *p.structureID)
		if err != nil {
			return nil, fmt.Errorf("%s recovery of %s: %w", p.phase, entity.Address, err)
		}
	} else {
		structure, err = p.a.Security.ProvisionalStructure(ctx, entity.Address)
		if errors.Is(err, accounts.ErrStructureNotFound) {
			structure, err = nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s recovery of %s: %w", p.phase, entity.Address, err)
		}
	}
	return UpdateSecurityStructure{Entity: entity, Structure: structure, Phase: p.phase}, nil
}

func (self *Analyzer) entity(address common.Address) (accounts.Entity, error) {
	entity, found := self.Profile.Entity(address)
	if !found {
		return accounts.Entity{}, &EntityNotFoundError{Address: address}
	}
	return entity, nil
}
