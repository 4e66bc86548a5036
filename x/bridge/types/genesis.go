package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// AssetLimit binds a daily limit window to an asset. The native asset entry
// is mandatory; every other entry registers a token.
type AssetLimit struct {
	Asset  chain.Address    `json:"asset" yaml:"asset"`
	Window DailyLimitWindow `json:"window" yaml:"window"`
}

type ValidatorReward struct {
	Validator chain.Address `json:"validator" yaml:"validator"`
	Amount    sdkmath.Uint  `json:"amount" yaml:"amount"`
}

type GenesisState struct {
	Config        Config            `json:"config" yaml:"config"`
	Assets        []AssetLimit      `json:"assets" yaml:"assets"`
	Validators    []chain.Address   `json:"validators" yaml:"validators"`
	TransferNonce sdkmath.Uint      `json:"transfer_nonce" yaml:"transfer_nonce"`
	Rewards       []ValidatorReward `json:"rewards" yaml:"rewards"`
	PendingSwaps  []PendingSwap     `json:"pending_swaps" yaml:"pending_swaps"`
}

// DefaultCoinDailyLimit is the native asset's daily limit in a fresh genesis.
var DefaultCoinDailyLimit = sdkmath.NewUint(1_000_000_000)

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Config: DefaultConfig(),
		Assets: []AssetLimit{
			{Asset: NativeAsset, Window: NewDailyLimitWindow(DefaultCoinDailyLimit, 0)},
		},
		TransferNonce: sdkmath.ZeroUint(),
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}

	seenAssets := make(map[chain.Address]bool, len(gs.Assets))
	for _, a := range gs.Assets {
		if seenAssets[a.Asset] {
			return fmt.Errorf("duplicate asset %s", a.Asset)
		}
		seenAssets[a.Asset] = true
		if err := a.Window.Validate(); err != nil {
			return fmt.Errorf("asset %s: %w", a.Asset, err)
		}
	}
	if !seenAssets[NativeAsset] {
		return ErrNoLimitConfigured.Wrap("genesis must configure the native asset limit")
	}

	seenValidators := make(map[chain.Address]bool, len(gs.Validators))
	for _, v := range gs.Validators {
		if v.IsZero() {
			return ErrInvalidAddress.Wrap("validator cannot be empty")
		}
		if seenValidators[v] {
			return fmt.Errorf("duplicate validator %s", v)
		}
		seenValidators[v] = true
	}
	if len(gs.Validators) > int(gs.Config.MaxValidatorCount) {
		return ErrCapacityExceeded.Wrapf("%d validators, max %d", len(gs.Validators), gs.Config.MaxValidatorCount)
	}

	if err := ValidateAmount(OrZero(gs.TransferNonce)); err != nil {
		return fmt.Errorf("transfer nonce: %w", err)
	}

	seenRewards := make(map[chain.Address]bool, len(gs.Rewards))
	for _, r := range gs.Rewards {
		if seenRewards[r.Validator] {
			return fmt.Errorf("duplicate reward entry %s", r.Validator)
		}
		seenRewards[r.Validator] = true
		if err := ValidateAmount(r.Amount); err != nil {
			return fmt.Errorf("reward %s: %w", r.Validator, err)
		}
	}

	seenSwaps := make(map[common.Hash]bool, len(gs.PendingSwaps))
	for _, p := range gs.PendingSwaps {
		if seenSwaps[p.Hash] {
			return fmt.Errorf("duplicate pending swap %s", p.Hash)
		}
		seenSwaps[p.Hash] = true
		if len(p.Attesters) == 0 {
			return fmt.Errorf("pending swap %s has no attesters", p.Hash)
		}
		attesters := make(map[chain.Address]bool, len(p.Attesters))
		for _, a := range p.Attesters {
			if attesters[a] {
				return ErrDuplicateApproval.Wrapf("pending swap %s", p.Hash)
			}
			attesters[a] = true
		}
	}

	return nil
}
