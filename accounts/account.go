package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
	"github.com/shopspring/decimal"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

// Account is an account the user controls, as stored in the wallet profile.
type Account struct {
	Address      common.AccountAddress `json:"address"`
	DisplayName  string                `json:"display_name"`
	AppearanceID uint8                 `json:"appearance_id"`
}

type Persona struct {
	Address     common.IdentityAddress `json:"address"`
	DisplayName string                 `json:"display_name"`
}

// Entity is either an account or a persona of the profile.
type Entity struct {
	Address     common.Address
	DisplayName string
	IsPersona   bool
}

// Profile is a read-only snapshot of the wallet profile. Accounts are in
// the order the wallet displays them everywhere. DefaultDepositGuarantee is
// nil when the wallet never set one.
type Profile struct {
	Network                 string           `json:"network"`
	Accounts                []Account        `json:"accounts"`
	Personas                []Persona        `json:"personas"`
	DefaultDepositGuarantee *decimal.Decimal `json:"default_deposit_guarantee"`
}

// DepositGuarantee returns the default deposit guarantee and whether the
// profile sets one.
func (p *Profile) DepositGuarantee() (decimal.Decimal, bool) {
	if p == nil || p.DefaultDepositGuarantee == nil {
		return decimal.Zero, false
	}
	return *p.DefaultDepositGuarantee, true
}

// Account returns the profile account with the given address.
func (p *Profile) Account(address common.AccountAddress) (*Account, bool) {
	i := p.AccountIndex(address)
	if i < 0 {
		return nil, false
	}
	acc := p.Accounts[i]
	return &acc, true
}

// AccountIndex is the position of the account in the profile, or -1.
func (p *Profile) AccountIndex(address common.AccountAddress) int {
	if p == nil {
		return -1
	}
	for i, acc := range p.Accounts {
		if acc.Address == address {
			return i
		}
	}
	return -1
}

func (p *Profile) Persona(address common.IdentityAddress) (*Persona, bool) {
	if p == nil {
		return nil, false
	}
	for _, persona := range p.Personas {
		if persona.Address == address {
			return &persona, true
		}
	}
	return nil, false
}

// Entity looks the address up among accounts, then personas.
func (p *Profile) Entity(address common.Address) (Entity, bool) {
	switch address.EntityType() {
	case common.EntityAccount:
		if acc, found := p.Account(common.AccountAddress(address)); found {
			return Entity{Address: address, DisplayName: acc.DisplayName}, true
		}
	case common.EntityIdentity:
		if persona, found := p.Persona(common.IdentityAddress(address)); found {
			return Entity{Address: address, DisplayName: persona.DisplayName, IsPersona: true}, true
		}
	}
	return Entity{}, false
}

// FindAccounts fuzzy matches input against the address and display name
// of every profile account, best match first.
func (p *Profile) FindAccounts(input string) []Account {
	source := NewFuzzySource(p)
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	res := make([]Account, 0, len(matches))
	for _, m := range matches {
		res = append(res, source[m.Index])
	}
	return res
}

// FindAccount returns the best match of FindAccounts.
func (p *Profile) FindAccount(input string) (Account, error) {
	matches := p.FindAccounts(input)
	if len(matches) == 0 {
		return Account{}, fmt.Errorf("No account is found with '%s'", input)
	}
	return matches[0], nil
}

type profileFile struct {
	Profile
	SecurityStructures    []SecurityStructure          `json:"security_structures"`
	ProvisionalStructures map[common.Address]uuid.UUID `json:"provisional_structures"`
}

// LoadProfile reads a profile snapshot from a json file. The file may also
// carry the security structures known to the wallet, which are returned as
// a MemoryStore.
func LoadProfile(path string) (*Profile, *MemoryStore, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	file := profileFile{}
	if err = json.Unmarshal(content, &file); err != nil {
		return nil, nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	for _, acc := range file.Accounts {
		if err = acc.Address.Address().Validate(common.EntityAccount); err != nil {
			return nil, nil, fmt.Errorf("reading profile %s: %w", path, err)
		}
	}

	store := NewMemoryStore()
	for _, s := range file.SecurityStructures {
		store.Add(s)
	}
	for entity, id := range file.ProvisionalStructures {
		store.SetProvisional(entity, id)
	}
	profile := file.Profile
	return &profile, store, nil
}
