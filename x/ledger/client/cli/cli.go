package cli

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/client"
	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: fmt.Sprintf("%s transactions subcommands", types.ModuleName),
	}
	cmd.AddCommand(CmdSend())
	return cmd
}

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   types.ModuleName,
		Short: fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
	}
	cmd.AddCommand(CmdQueryBalance(), CmdQueryTotalSupply())
	return cmd
}

func CmdSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [to] [asset] [amount]",
		Short: "Move coins or tokens to another account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, from, err := client.GetSigningKey(cmd)
			if err != nil {
				return err
			}
			to, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			asset, err := chain.AddressFromHex(args[1])
			if err != nil {
				return err
			}
			amount, err := sdkmath.ParseUint(args[2])
			if err != nil {
				return err
			}
			return client.BroadcastMsg(cmd, key, types.NewMsgSend(from, to, asset, amount))
		},
	}
	client.AddTxFlagsToCmd(cmd)
	return cmd
}

func CmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [asset] [account]",
		Short: "Show the balance of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			account, err := chain.AddressFromHex(args[1])
			if err != nil {
				return err
			}
			path := fmt.Sprintf("/%s/balances/%s/%s", types.ModuleName, asset.Hex(), account.Hex())
			return client.Query(cmd, path, &types.QueryBalanceResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}

func CmdQueryTotalSupply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply [asset]",
		Short: "Show the total supply of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := chain.AddressFromHex(args[0])
			if err != nil {
				return err
			}
			return client.Query(cmd, fmt.Sprintf("/%s/supply/%s", types.ModuleName, asset.Hex()), &types.QueryTotalSupplyResponse{})
		},
	}
	client.AddQueryFlagsToCmd(cmd)
	return cmd
}
