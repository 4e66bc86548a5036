package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage transaction signing keys",
	}
	cmd.AddCommand(keysAddCmd(), keysShowCmd())
	return cmd
}

func keysAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Generate a secp256k1 key, save it as hex and print its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolve(args[0])
			if force, _ := cmd.Flags().GetBool(flagForce); !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("key file %s already exists", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return err
			}

			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			if err := crypto.SaveECDSA(path, key); err != nil {
				return fmt.Errorf("failed to save key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), chain.PubKeyToAddress(key.PublicKey).Hex())
			return nil
		},
	}
	cmd.Flags().Bool(flagForce, false, "overwrite an existing key file")
	return cmd
}

func keysShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print the address controlled by a key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.LoadECDSA(resolve(args[0]))
			if err != nil {
				return fmt.Errorf("failed to load key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), chain.PubKeyToAddress(key.PublicKey).Hex())
			return nil
		},
	}
}
