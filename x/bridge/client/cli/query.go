package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/client"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

const FlagLimit = "limit"

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		CmdQueryConfig(),
		CmdQueryValidators(),
		CmdQueryIsValidator(),
		CmdQueryTokens(),
		CmdQueryDailyLimit(),
		CmdQueryPendingSwaps(),
		CmdQueryPendingSwap(),
		CmdQuerySwapHash(),
		CmdQueryTransferNonce(),
		CmdQueryReward(),
		CmdQueryTransfers(),
	)

	return cmd
}

func path(parts ...string) string {
	p := "/" + types.ModuleName
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func CmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the bridge configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Query(cmd, path("config"), &types.QueryConfigResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryValidators() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validators",
		Short: "List the validator set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Query(cmd, path("validators"), &types.QueryValidatorsResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryIsValidator() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-validator [address]",
		Short: "Check whether an account is a validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			return client.Query(cmd, path("validators", addr.Hex()), &types.QueryIsValidatorResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryTokens() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List registered tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Query(cmd, path("tokens"), &types.QueryTokensResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryDailyLimit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily-limit [asset]",
		Short: "Show the daily limit window of an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			return client.Query(cmd, path("daily_limits", asset.Hex()), &types.QueryDailyLimitResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryPendingSwaps() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending-swaps",
		Short: "List swaps waiting for more approvals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Query(cmd, path("pending_swaps"), &types.QueryPendingSwapsResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryPendingSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending-swap [hash]",
		Short: "Show the approvals collected for a swap hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := hexutil.Decode(args[0])
			if err != nil || len(bz) != common.HashLength {
				return fmt.Errorf("invalid swap hash %q", args[0])
			}
			return client.Query(cmd, path("pending_swaps", common.BytesToHash(bz).Hex()), &types.QueryPendingSwapResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQuerySwapHash() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-hash [chain-id] [receiver] [sender] [timestamp] [amount] [asset] [transfer-nonce]",
		Short: "Compute the hash validators attest to for a swap message",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := parseSwapMessage(args)
			if err != nil {
				return err
			}
			c, err := client.GetClient(cmd)
			if err != nil {
				return err
			}
			var resp types.QuerySwapHashResponse
			if err := c.Post(cmd.Context(), path("swap_hash"), types.QuerySwapHashRequest{Message: message}, &resp); err != nil {
				return err
			}
			return client.PrintJSON(cmd, resp)
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryTransferNonce() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-nonce",
		Short: "Show the last outbound transfer nonce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.Query(cmd, path("transfer_nonce"), &types.QueryTransferNonceResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward [validator]",
		Short: "Show the rewards a validator can withdraw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			return client.Query(cmd, path("rewards", validator.Hex()), &types.QueryRewardResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryTransfers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "List the most recent outbound transfers seen by the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt(FlagLimit)
			if err != nil {
				return err
			}
			var records []types.TransferRecord
			return client.Query(cmd, fmt.Sprintf("/transfers?limit=%d", limit), &records)
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	cmd.Flags().Int(FlagLimit, 20, "maximum number of transfers to show")
	return cmd
}
