package api

import (
	"encoding/json"
	"io"
	"net/http"

	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
	bridgetypes "github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

func (s *Server) queryAccount(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r, "address")
	if !ok {
		return
	}
	respond(s, w, r, s.app.AuthQuerier.Account, &authtypes.QueryAccountRequest{Address: addr})
}

func (s *Server) queryConfig(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.app.BridgeQuerier.Config, &bridgetypes.QueryConfigRequest{})
}

func (s *Server) queryValidators(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.app.BridgeQuerier.Validators, &bridgetypes.QueryValidatorsRequest{})
}

func (s *Server) queryIsValidator(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r, "address")
	if !ok {
		return
	}
	respond(s, w, r, s.app.BridgeQuerier.IsValidator, &bridgetypes.QueryIsValidatorRequest{Address: addr})
}

func (s *Server) queryTokens(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.app.BridgeQuerier.Tokens, &bridgetypes.QueryTokensRequest{})
}

func (s *Server) queryDailyLimit(w http.ResponseWriter, r *http.Request) {
	asset, ok := pathAddress(w, r, "asset")
	if !ok {
		return
	}
	respond(s, w, r, s.app.BridgeQuerier.DailyLimit, &bridgetypes.QueryDailyLimitRequest{Asset: asset})
}

func (s *Server) queryPendingSwaps(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.app.BridgeQuerier.PendingSwaps, &bridgetypes.QueryPendingSwapsRequest{})
}

func (s *Server) queryPendingSwap(w http.ResponseWriter, r *http.Request) {
	hash, ok := pathHash(w, r, "hash")
	if !ok {
		return
	}
	respond(s, w, r, s.app.BridgeQuerier.PendingSwap, &bridgetypes.QueryPendingSwapRequest{Hash: hash})
}

func (s *Server) querySwapHash(w http.ResponseWriter, r *http.Request) {
	var req bridgetypes.QuerySwapHashRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		badRequest(w, "decode swap message: %s", err)
		return
	}
	respond(s, w, r, s.app.BridgeQuerier.SwapHash, &req)
}

func (s *Server) queryTransferNonce(w http.ResponseWriter, r *http.Request) {
	respond(s, w, r, s.app.BridgeQuerier.TransferNonce, &bridgetypes.QueryTransferNonceRequest{})
}

func (s *Server) queryReward(w http.ResponseWriter, r *http.Request) {
	validator, ok := pathAddress(w, r, "validator")
	if !ok {
		return
	}
	respond(s, w, r, s.app.BridgeQuerier.Reward, &bridgetypes.QueryRewardRequest{Validator: validator})
}

func (s *Server) queryBalance(w http.ResponseWriter, r *http.Request) {
	asset, ok := pathAddress(w, r, "asset")
	if !ok {
		return
	}
	account, ok := pathAddress(w, r, "account")
	if !ok {
		return
	}
	respond(s, w, r, s.app.LedgerQuerier.Balance, &ledgertypes.QueryBalanceRequest{Asset: asset, Account: account})
}

func (s *Server) queryTotalSupply(w http.ResponseWriter, r *http.Request) {
	asset, ok := pathAddress(w, r, "asset")
	if !ok {
		return
	}
	respond(s, w, r, s.app.LedgerQuerier.TotalSupply, &ledgertypes.QueryTotalSupplyRequest{Asset: asset})
}
