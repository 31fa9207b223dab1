package params

import "math/big"

// ChainConfig is the core config which determines the blockchain settings.
// This package only consults the replay-protection domain; fork scheduling
// lives with the execution layer.
type ChainConfig struct {
	ChainID *big.Int `json:"chainId"` // chainId identifies the current chain and is used for replay protection
}

var (
	// MainnetChainConfig is the chain parameters of the main network.
	MainnetChainConfig = &ChainConfig{
		ChainID: big.NewInt(7878),
	}

	// TestChainConfig contains the chain parameters used in tests.
	TestChainConfig = &ChainConfig{
		ChainID: big.NewInt(1337),
	}
)
