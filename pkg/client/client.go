package client

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/manus-ai/quorum-bridge/pkg/api"
	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/config"
)

const (
	FlagNode    = "node"
	FlagKeyFile = "key-file"
	FlagRetries = "retries"
	FlagTimeout = "timeout"

	DefaultNode = "http://127.0.0.1:1317"
)

// AddQueryFlagsToCmd adds the flags every query command needs.
func AddQueryFlagsToCmd(cmd *cobra.Command) {
	cmd.Flags().String(FlagNode, DefaultNode, "node API endpoint")
	cmd.Flags().Uint64(FlagRetries, 3, "number of retries for failed reads")
	cmd.Flags().Duration(FlagTimeout, 30*time.Second, "request timeout")
}

// AddTxFlagsToCmd adds the query flags plus the signer.
func AddTxFlagsToCmd(cmd *cobra.Command) {
	AddQueryFlagsToCmd(cmd)
	cmd.Flags().String(FlagKeyFile, "", "file holding the hex secp256k1 key that signs the transaction")
}

// GetClient builds an API client from the command flags.
func GetClient(cmd *cobra.Command) (*api.Client, error) {
	node, err := cmd.Flags().GetString(FlagNode)
	if err != nil {
		return nil, err
	}
	retries, err := cmd.Flags().GetUint64(FlagRetries)
	if err != nil {
		return nil, err
	}
	timeout, err := cmd.Flags().GetDuration(FlagTimeout)
	if err != nil {
		return nil, err
	}
	return api.NewClient(config.ClientConfig{
		NodeURL:          node,
		RetryAttempts:    retries,
		RetryMaxInterval: 5 * time.Second,
		Timeout:          timeout,
	}), nil
}

// GetSigningKey loads the key named by --key-file and the account it controls.
func GetSigningKey(cmd *cobra.Command) (*ecdsa.PrivateKey, chain.Address, error) {
	file, err := cmd.Flags().GetString(FlagKeyFile)
	if err != nil {
		return nil, chain.Address{}, err
	}
	if file == "" {
		return nil, chain.Address{}, fmt.Errorf("--%s is required to sign transactions", FlagKeyFile)
	}
	key, err := crypto.LoadECDSA(file)
	if err != nil {
		return nil, chain.Address{}, fmt.Errorf("--%s: %w", FlagKeyFile, err)
	}
	return key, chain.PubKeyToAddress(key.PublicKey), nil
}

// ApplyConfig uses cfg for every client flag the user did not set.
func ApplyConfig(cmd *cobra.Command, cfg config.ClientConfig) error {
	flags := cmd.Flags()
	if f := flags.Lookup(FlagNode); f != nil && !f.Changed && cfg.NodeURL != "" {
		if err := flags.Set(FlagNode, cfg.NodeURL); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagKeyFile); f != nil && !f.Changed && cfg.KeyFile != "" {
		if err := flags.Set(FlagKeyFile, cfg.KeyFile); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagRetries); f != nil && !f.Changed {
		if err := flags.Set(FlagRetries, fmt.Sprint(cfg.RetryAttempts)); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagTimeout); f != nil && !f.Changed && cfg.Timeout > 0 {
		if err := flags.Set(FlagTimeout, cfg.Timeout.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes v to the command output as indented JSON.
func PrintJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

// BroadcastMsg validates msg, signs it with key, submits it and prints the
// node answer.
func BroadcastMsg(cmd *cobra.Command, key *ecdsa.PrivateKey, msg chain.Msg) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	c, err := GetClient(cmd)
	if err != nil {
		return err
	}
	resp, err := c.BroadcastTx(cmd.Context(), key, msg.Route(), msg.Type(), msg, nil)
	if err != nil {
		return err
	}
	return PrintJSON(cmd, resp)
}

// Query fetches path and prints the answer.
func Query(cmd *cobra.Command, path string, out any) error {
	c, err := GetClient(cmd)
	if err != nil {
		return err
	}
	if err := c.Get(cmd.Context(), path, out); err != nil {
		return err
	}
	return PrintJSON(cmd, out)
}
