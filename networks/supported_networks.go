package networks

import (
	"fmt"
	"sort"
)

// Insert more Network implementation here to support
// more networks
var supportedNetworks = []Network{
	Mainnet,
	Stokenet,
}

var globalSupportedNetworks = newSupportedNetworks()
var ErrNetworkNotFound = fmt.Errorf("network not found")

type networks struct {
	networks      map[string]Network
	networksByID  map[uint8]Network
	networksByHRP map[string]Network
}

func (n *networks) getSupportedNetworkNames() []string {
	res := []string{}
	for name := range n.networks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (n *networks) getNetworkByID(id uint8) (Network, error) {
	res, found := n.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetwork(name string) (Network, error) {
	res, found := n.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (n *networks) getNetworkByHRP(hrp string) (Network, error) {
	res, found := n.networksByHRP[hrp]
	if !found {
		return nil, fmt.Errorf("address hrp '%s': %w", hrp, ErrNetworkNotFound)
	}
	return res, nil
}

func newSupportedNetworks() *networks {
	result := networks{
		map[string]Network{},
		map[uint8]Network{},
		map[string]Network{},
	}
	for _, n := range supportedNetworks {
		if _, found := result.networks[n.GetName()]; found {
			panic(
				fmt.Errorf(
					"network with name or alternative name of '%s' already exists",
					n.GetName(),
				),
			)
		}
		result.networks[n.GetName()] = n
		result.networksByID[n.GetID()] = n
		result.networksByHRP[n.GetHRPSuffix()] = n
		for _, an := range n.GetAlternativeNames() {
			if _, found := result.networks[an]; found {
				panic(
					fmt.Errorf("network with name or alternative name of '%s' already exists", an),
				)
			}
			result.networks[an] = n
		}
	}
	return &result
}

func GetSupportedNetworks() []Network {
	return append([]Network{}, supportedNetworks...)
}

func GetNetwork(name string) (Network, error) {
	return globalSupportedNetworks.getNetwork(name)
}

func GetNetworkByID(id uint8) (Network, error) {
	return globalSupportedNetworks.getNetworkByID(id)
}

// GetNetworkByHRP returns the network whose addresses carry the given hrp
// suffix ("rdx", "tdx_2_").
func GetNetworkByHRP(hrp string) (Network, error) {
	return globalSupportedNetworks.getNetworkByHRP(hrp)
}

func GetSupportedNetworkNames() []string {
	return globalSupportedNetworks.getSupportedNetworkNames()
}
