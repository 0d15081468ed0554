package accounts

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

var ErrStructureNotFound = errors.New("security structure not found")

type FactorSource struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// SecurityStructure is the set of factors that control a securified entity.
type SecurityStructure struct {
	ID                  uuid.UUID      `json:"id"`
	Name                string         `json:"name"`
	PrimaryThreshold    int            `json:"primary_threshold"`
	PrimaryFactors      []FactorSource `json:"primary_factors"`
	RecoveryFactors     []FactorSource `json:"recovery_factors"`
	ConfirmationFactors []FactorSource `json:"confirmation_factors"`
	TimedRecoveryDays   int            `json:"timed_recovery_days"`
}

// SecurityStructureStore gives read access to the structures the wallet
// prepared but has not applied yet.
type SecurityStructureStore interface {
	// ProvisionalStructure returns the structure pending for entity, or
	// ErrStructureNotFound.
	ProvisionalStructure(ctx context.Context, entity common.Address) (*SecurityStructure, error)
	StructureByID(ctx context.Context, id uuid.UUID) (*SecurityStructure, error)
}

// MemoryStore is a SecurityStructureStore kept in memory. It is what
// LoadProfile returns and what tests use.
type MemoryStore struct {
	mu          sync.RWMutex
	structures  map[uuid.UUID]SecurityStructure
	provisional map[common.Address]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		structures:  map[uuid.UUID]SecurityStructure{},
		provisional: map[common.Address]uuid.UUID{},
	}
}

// Add stores s, generating an id when s has none, and returns the id.
func (self *MemoryStore) Add(s SecurityStructure) uuid.UUID {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	self.structures[s.ID] = s
	return s.ID
}

func (self *MemoryStore) SetProvisional(entity common.Address, id uuid.UUID) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.provisional[entity] = id
}

func (self *MemoryStore) ProvisionalStructure(ctx context.Context, entity common.Address) (*SecurityStructure, error) {
	self.mu.RLock()
	id, found := self.provisional[entity]
	self.mu.RUnlock()
	if !found {
		return nil, ErrStructureNotFound
	}
	return self.StructureByID(ctx, id)
}

func (self *MemoryStore) StructureByID(ctx context.Context, id uuid.UUID) (*SecurityStructure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	self.mu.RLock()
	defer self.mu.RUnlock()
	s, found := self.structures[id]
	if !found {
		return nil, ErrStructureNotFound
	}
	return &s, nil
}
