package api

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/config"
	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
)

// Client talks to a node's HTTP API. Reads are retried with exponential
// backoff; transactions are sent exactly once.
type Client struct {
	baseURL    string
	httpClient *http.Client

	retryAttempts    uint64
	retryMaxInterval time.Duration
}

func NewClient(cfg config.ClientConfig) *Client {
	return &Client{
		baseURL:          strings.TrimRight(cfg.NodeURL, "/"),
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		retryAttempts:    cfg.RetryAttempts,
		retryMaxInterval: cfg.RetryMaxInterval,
	}
}

// BroadcastTx signs msg with key at the signer's current sequence and
// submits it. The handler result is decoded into result when it is non-nil.
func (c *Client) BroadcastTx(ctx context.Context, key *ecdsa.PrivateKey, route, msgType string, msg any, result any) (*TxResponse, error) {
	var account authtypes.QueryAccountResponse
	signer := chain.PubKeyToAddress(key.PublicKey)
	if err := c.Get(ctx, "/"+authtypes.ModuleName+"/accounts/"+signer.Hex(), &account); err != nil {
		return nil, fmt.Errorf("fetch sequence of %s: %w", signer, err)
	}

	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode msg: %w", err)
	}
	tx, err := authtypes.NewSignedTx(key, route, msgType, bz, account.Account.Sequence)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	return c.BroadcastSignedTx(ctx, tx, result)
}

// BroadcastSignedTx submits an already signed transaction once.
func (c *Client) BroadcastSignedTx(ctx context.Context, tx authtypes.SignedTx, result any) (*TxResponse, error) {
	var resp TxResponse
	if err := c.do(ctx, http.MethodPost, "/txs", tx, &resp); err != nil {
		return nil, err
	}
	if result != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return nil, fmt.Errorf("decode tx result: %w", err)
		}
	}
	return &resp, nil
}

// Get fetches path and decodes the JSON answer into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.retry(ctx, func() error {
		return c.do(ctx, http.MethodGet, path, nil, out)
	})
}

// Post sends a read-only request with a body, e.g. /bridge/swap_hash.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.retry(ctx, func() error {
		return c.do(ctx, http.MethodPost, path, in, out)
	})
}

func (c *Client) retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	if c.retryMaxInterval > 0 {
		b.MaxInterval = c.retryMaxInterval
	}

	return backoff.Retry(func() error {
		err := op()
		if apiErr, ok := err.(*APIError); ok && apiErr.Status < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(b, c.retryAttempts), ctx))
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		bz, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(bz)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr.ErrorResponse); err != nil {
			apiErr.ErrorResponse.Error = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
