package cli

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/client"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		CmdTransferOwnership(),
		CmdSetFee(),
		CmdSetThreshold(),
		CmdSetTxExpirationTime(),
		CmdSetMinAmountToTransfer(),
		CmdSetMaxValidatorCount(),
		CmdAddValidator(),
		CmdRemoveValidator(),
		CmdAddToken(),
		CmdRemoveToken(),
		CmdSetDailyLimit(),
		CmdTransferCoin(),
		CmdTransferToken(),
		CmdRequestSwap(),
		CmdRequestRewards(),
		CmdCleanRequestSwaps(),
	)

	return cmd
}

// newTxCmd builds a command whose RunE turns the account of --key-file and
// the positional args into a message and broadcasts it signed.
func newTxCmd(use, short string, args int, build func(from chain.Address, args []string) (chain.Msg, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(args),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, from, err := client.GetSigningKey(cmd)
			if err != nil {
				return err
			}
			msg, err := build(from, args)
			if err != nil {
				return err
			}
			return client.BroadcastMsg(cmd, key, msg)
		},
	}

	client.AddTxFlagsToCmd(cmd)

	return cmd
}

func CmdTransferOwnership() *cobra.Command {
	return newTxCmd("transfer-ownership [new-owner]", "Hand the bridge over to a new owner", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			newOwner, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgTransferOwnership(from, newOwner), nil
		})
}

func CmdSetFee() *cobra.Command {
	return newTxCmd("set-fee [percent]", "Set the bridge fee percentage", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			fee, err := cast.ToUint64E(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetFee(from, fee), nil
		})
}

func CmdSetThreshold() *cobra.Command {
	return newTxCmd("set-threshold [approvals]", "Set the number of approvals a swap needs", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			threshold, err := cast.ToUint16E(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetThreshold(from, threshold), nil
		})
}

func CmdSetTxExpirationTime() *cobra.Command {
	return newTxCmd("set-tx-expiration-time [seconds]", "Set how long a swap message stays fresh", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			seconds, err := cast.ToUint64E(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetTxExpirationTime(from, seconds), nil
		})
}

func CmdSetMinAmountToTransfer() *cobra.Command {
	return newTxCmd("set-min-amount-to-transfer [amount]", "Set the smallest accepted outbound transfer", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			amount, err := sdkmath.ParseUint(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetMinAmountToTransfer(from, amount), nil
		})
}

func CmdSetMaxValidatorCount() *cobra.Command {
	return newTxCmd("set-max-validator-count [count]", "Set the validator set capacity", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			count, err := cast.ToUint16E(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetMaxValidatorCount(from, count), nil
		})
}

func CmdAddValidator() *cobra.Command {
	return newTxCmd("add-validator [address]", "Add a validator", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			validator, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgAddValidator(from, validator), nil
		})
}

func CmdRemoveValidator() *cobra.Command {
	return newTxCmd("remove-validator [address]", "Remove a validator", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			validator, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgRemoveValidator(from, validator), nil
		})
}

func CmdAddToken() *cobra.Command {
	return newTxCmd("add-token [token] [daily-limit]", "Register a token with its daily limit", 2,
		func(from chain.Address, args []string) (chain.Msg, error) {
			token, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			limit, err := sdkmath.ParseUint(args[1])
			if err != nil {
				return nil, err
			}
			return types.NewMsgAddToken(from, token, limit), nil
		})
}

func CmdRemoveToken() *cobra.Command {
	return newTxCmd("remove-token [token]", "Unregister a token", 1,
		func(from chain.Address, args []string) (chain.Msg, error) {
			token, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewMsgRemoveToken(from, token), nil
		})
}

func CmdSetDailyLimit() *cobra.Command {
	return newTxCmd("set-daily-limit [asset] [limit]", "Change the daily limit of the native coin or a token", 2,
		func(from chain.Address, args []string) (chain.Msg, error) {
			asset, err := chain.AddressFromHex(args[0])
			if err != nil {
				return nil, err
			}
			limit, err := sdkmath.ParseUint(args[1])
			if err != nil {
				return nil, err
			}
			return types.NewMsgSetDailyLimit(from, asset, limit), nil
		})
}

func CmdTransferCoin() *cobra.Command {
	return newTxCmd("transfer-coin [receiver] [amount]", "Send native coins to a remote account", 2,
		func(from chain.Address, args []string) (chain.Msg, error) {
			amount, err := sdkmath.ParseUint(args[1])
			if err != nil {
				return nil, err
			}
			return types.NewMsgTransferCoin(from, args[0], amount), nil
		})
}

func CmdTransferToken() *cobra.Command {
	return newTxCmd("transfer-token [receiver] [amount] [token]", "Burn tokens and send them to a remote account", 3,
		func(from chain.Address, args []string) (chain.Msg, error) {
			amount, err := sdkmath.ParseUint(args[1])
			if err != nil {
				return nil, err
			}
			token, err := chain.AddressFromHex(args[2])
			if err != nil {
				return nil, err
			}
			return types.NewMsgTransferToken(from, args[0], amount, token), nil
		})
}

func CmdRequestSwap() *cobra.Command {
	return newTxCmd(
		"request-swap [chain-id] [receiver] [sender] [timestamp] [amount] [asset] [transfer-nonce]",
		"Attest to a deposit observed on the remote chain", 7,
		func(from chain.Address, args []string) (chain.Msg, error) {
			message, err := parseSwapMessage(args)
			if err != nil {
				return nil, err
			}
			return types.NewMsgRequestSwap(from, message), nil
		})
}

func CmdRequestRewards() *cobra.Command {
	return newTxCmd("request-rewards", "Withdraw accrued validator rewards", 0,
		func(from chain.Address, _ []string) (chain.Msg, error) {
			return types.NewMsgRequestRewards(from), nil
		})
}

func CmdCleanRequestSwaps() *cobra.Command {
	return newTxCmd("clean-request-swaps", "Drop every pending swap", 0,
		func(from chain.Address, _ []string) (chain.Msg, error) {
			return types.NewMsgCleanRequestSwaps(from), nil
		})
}

func parseSwapMessage(args []string) (types.SwapMessage, error) {
	var (
		m   types.SwapMessage
		err error
	)
	if m.ChainID, err = cast.ToUint8E(args[0]); err != nil {
		return m, fmt.Errorf("chain id: %w", err)
	}
	if m.Receiver, err = chain.AddressFromHex(args[1]); err != nil {
		return m, fmt.Errorf("receiver: %w", err)
	}
	m.Sender = args[2]
	if m.Timestamp, err = cast.ToUint64E(args[3]); err != nil {
		return m, fmt.Errorf("timestamp: %w", err)
	}
	if m.Amount, err = sdkmath.ParseUint(args[4]); err != nil {
		return m, fmt.Errorf("amount: %w", err)
	}
	if m.Asset, err = chain.AddressFromHex(args[5]); err != nil {
		return m, fmt.Errorf("asset: %w", err)
	}
	if m.TransferNonce, err = sdkmath.ParseUint(args[6]); err != nil {
		return m, fmt.Errorf("transfer nonce: %w", err)
	}
	return m, nil
}
