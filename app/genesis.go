package app

import (
	"fmt"
	"os"

	sdkmath "cosmossdk.io/math"
	"sigs.k8s.io/yaml"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
	bridgetypes "github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// AppGenesis is the initial state of every module.
type AppGenesis struct {
	Auth   authtypes.GenesisState   `json:"auth"`
	Bridge bridgetypes.GenesisState `json:"bridge"`
	Ledger ledgertypes.GenesisState `json:"ledger"`
}

// DefaultGenesis returns a genesis owned by owner in which the bridge reserve
// holds reserve native coins.
func DefaultGenesis(owner chain.Address, reserve sdkmath.Uint) AppGenesis {
	gen := AppGenesis{
		Auth:   *authtypes.DefaultGenesis(),
		Bridge: *bridgetypes.DefaultGenesis(),
		Ledger: *ledgertypes.DefaultGenesis(),
	}
	gen.Bridge.Config.Owner = owner
	if !reserve.IsZero() {
		gen.Ledger.Balances = append(gen.Ledger.Balances, ledgertypes.Balance{
			Account: bridgetypes.ModuleAddress,
			Asset:   ledgertypes.NativeAsset,
			Amount:  reserve,
		})
	}
	return gen
}

func (g AppGenesis) Validate() error {
	if err := g.Auth.Validate(); err != nil {
		return fmt.Errorf("%s: %w", authtypes.ModuleName, err)
	}
	if err := g.Bridge.Validate(); err != nil {
		return fmt.Errorf("%s: %w", bridgetypes.ModuleName, err)
	}
	if err := g.Ledger.Validate(); err != nil {
		return fmt.Errorf("%s: %w", ledgertypes.ModuleName, err)
	}
	return nil
}

// LoadGenesisFile reads a YAML or JSON genesis file.
func LoadGenesisFile(path string) (AppGenesis, error) {
	var gen AppGenesis
	bz, err := os.ReadFile(path)
	if err != nil {
		return gen, fmt.Errorf("failed to read genesis file: %w", err)
	}
	if err := yaml.Unmarshal(bz, &gen); err != nil {
		return gen, fmt.Errorf("failed to parse genesis file %s: %w", path, err)
	}
	return gen, nil
}

// SaveGenesisFile writes gen as YAML.
func SaveGenesisFile(path string, gen AppGenesis) error {
	bz, err := yaml.Marshal(gen)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}
