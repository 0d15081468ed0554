package common

import (
	"fmt"
	"strings"

	"github.com/radixdlt/babylon-wallet-android-sub006/networks"
)

// Entity prefixes of the bech32m encoded addresses we care about.
const (
	EntityAccount          = "account"
	EntityResource         = "resource"
	EntityComponent        = "component"
	EntityPool             = "pool"
	EntityValidator        = "validator"
	EntityIdentity         = "identity"
	EntityAccessController = "accesscontroller"
	EntityLocker           = "locker"
)

// Address is any global address, e.g. "account_rdx1...".
type Address string

type (
	AccountAddress   string
	ResourceAddress  string
	ComponentAddress string
	PoolAddress      string
	ValidatorAddress string
	IdentityAddress  string
)

// EntityType returns the prefix before the first underscore, or "" when the
// address is malformed.
func (a Address) EntityType() string {
	i := strings.Index(string(a), "_")
	if i <= 0 {
		return ""
	}
	return string(a[:i])
}

// NetworkHRP returns the human readable part between the entity prefix and
// the bech32m separator ("rdx", "tdx_2_").
func (a Address) NetworkHRP() string {
	i := strings.Index(string(a), "_")
	j := strings.LastIndex(string(a), "1")
	if i <= 0 || j <= i+1 {
		return ""
	}
	return string(a[i+1 : j])
}

// Network returns the supported network the address belongs to.
func (a Address) Network() (networks.Network, error) {
	return networks.GetNetworkByHRP(a.NetworkHRP())
}

// Validate checks the address has the expected entity prefix and belongs to
// a supported network.
func (a Address) Validate(entity string) error {
	if a.EntityType() != entity {
		return fmt.Errorf("address %q is not a %s address", a, entity)
	}
	if _, err := a.Network(); err != nil {
		return fmt.Errorf("address %q: %w", a, err)
	}
	return nil
}

// Short renders the address the way wallets do: first and last few chars.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 16 {
		return s
	}
	return s[:4] + "..." + s[len(s)-6:]
}

func (a AccountAddress) Address() Address   { return Address(a) }
func (a ResourceAddress) Address() Address  { return Address(a) }
func (a ComponentAddress) Address() Address { return Address(a) }
func (a PoolAddress) Address() Address      { return Address(a) }
func (a ValidatorAddress) Address() Address { return Address(a) }
func (a IdentityAddress) Address() Address  { return Address(a) }

// IsXRD reports whether the resource is the native token of the network it
// belongs to.
func (a ResourceAddress) IsXRD() bool {
	n, err := Address(a).Network()
	if err != nil {
		return false
	}
	return string(a) == n.GetXRDAddress()
}

// NonFungibleLocalID is the local part of a non fungible id, in its string
// form: "#1#", "<name>", "{hex-uuid}" or "[hex-bytes]".
type NonFungibleLocalID string

// Validate checks the id uses one of the four local id encodings.
func (id NonFungibleLocalID) Validate() error {
	s := string(id)
	if len(s) < 3 {
		return fmt.Errorf("invalid non fungible local id %q", s)
	}
	switch {
	case s[0] == '#' && s[len(s)-1] == '#',
		s[0] == '<' && s[len(s)-1] == '>',
		s[0] == '{' && s[len(s)-1] == '}',
		s[0] == '[' && s[len(s)-1] == ']':
		return nil
	}
	return fmt.Errorf("invalid non fungible local id %q", s)
}

// NonFungibleGlobalID identifies a single non fungible across the ledger.
type NonFungibleGlobalID struct {
	Resource ResourceAddress
	LocalID  NonFungibleLocalID
}

func NewNonFungibleGlobalID(resource ResourceAddress, localID NonFungibleLocalID) NonFungibleGlobalID {
	return NonFungibleGlobalID{Resource: resource, LocalID: localID}
}

func (id NonFungibleGlobalID) String() string {
	return fmt.Sprintf("%s:%s", id.Resource, id.LocalID)
}

// ParseNonFungibleGlobalID parses the "resource:localid" form.
func ParseNonFungibleGlobalID(s string) (NonFungibleGlobalID, error) {
	i := strings.Index(s, ":")
	if i <= 0 || i == len(s)-1 {
		return NonFungibleGlobalID{}, fmt.Errorf("invalid non fungible global id %q", s)
	}
	resource := ResourceAddress(s[:i])
	if Address(resource).EntityType() != EntityResource {
		return NonFungibleGlobalID{}, fmt.Errorf("invalid non fungible global id %q: not a resource", s)
	}
	localID := NonFungibleLocalID(s[i+1:])
	if err := localID.Validate(); err != nil {
		return NonFungibleGlobalID{}, err
	}
	return NewNonFungibleGlobalID(resource, localID), nil
}

func (id NonFungibleGlobalID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NonFungibleGlobalID) UnmarshalText(text []byte) error {
	parsed, err := ParseNonFungibleGlobalID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
