package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected with SetNetwork, falling back
// to mainnet.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()
	if cachedNetwork == nil {
		cachedNetwork = Mainnet
	}
	return cachedNetwork
}

// SetNetwork selects the current network by name or alternative name.
func SetNetwork(networkStr string) error {
	n, err := GetNetwork(networkStr)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	cachedNetwork = n
	return nil
}
