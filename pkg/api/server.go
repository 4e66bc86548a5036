package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/manus-ai/quorum-bridge/app"
	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/config"
	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
	bridgetypes "github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

const (
	maxBodyBytes = 1 << 20
	wsWriteWait  = 10 * time.Second
)

// TxResponse is returned by POST /txs.
type TxResponse struct {
	Result json.RawMessage `json:"result"`
	Events sdk.Events      `json:"events"`
}

// Server exposes the app over HTTP.
type Server struct {
	app        *app.App
	router     *mux.Router
	httpServer *http.Server
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

func NewServer(a *app.App, cfg config.APIConfig, logger *zap.Logger) *Server {
	s := &Server{
		app:    a,
		router: mux.NewRouter(),
		logger: logger.Named("api"),
	}
	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Start serves in the background until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("address", s.httpServer.Addr))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server stopped", zap.Error(err))
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Stopping API server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerRoutes() {
	r := s.router

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.app.Metrics().Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/txs", s.handleTx).Methods(http.MethodPost)
	r.HandleFunc("/transfers", s.handleTransfers).Methods(http.MethodGet)
	r.HandleFunc("/ws/transfers", s.handleTransferStream).Methods(http.MethodGet)

	r.HandleFunc("/"+authtypes.ModuleName+"/accounts/{address}", s.queryAccount).Methods(http.MethodGet)

	b := r.PathPrefix("/" + bridgetypes.ModuleName).Subrouter()
	b.HandleFunc("/config", s.queryConfig).Methods(http.MethodGet)
	b.HandleFunc("/validators", s.queryValidators).Methods(http.MethodGet)
	b.HandleFunc("/validators/{address}", s.queryIsValidator).Methods(http.MethodGet)
	b.HandleFunc("/tokens", s.queryTokens).Methods(http.MethodGet)
	b.HandleFunc("/daily_limits/{asset}", s.queryDailyLimit).Methods(http.MethodGet)
	b.HandleFunc("/pending_swaps", s.queryPendingSwaps).Methods(http.MethodGet)
	b.HandleFunc("/pending_swaps/{hash}", s.queryPendingSwap).Methods(http.MethodGet)
	b.HandleFunc("/swap_hash", s.querySwapHash).Methods(http.MethodPost)
	b.HandleFunc("/transfer_nonce", s.queryTransferNonce).Methods(http.MethodGet)
	b.HandleFunc("/rewards/{validator}", s.queryReward).Methods(http.MethodGet)

	l := r.PathPrefix("/" + ledgertypes.ModuleName).Subrouter()
	l.HandleFunc("/balances/{asset}/{account}", s.queryBalance).Methods(http.MethodGet)
	l.HandleFunc("/supply/{asset}", s.queryTotalSupply).Methods(http.MethodGet)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	initialized, err := s.app.IsInitialized(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	commit := s.app.LastCommitID()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"initialized": initialized,
		"version":     app.Version,
		"height":      commit.Version,
		"app_hash":    hexutil.Encode(commit.Hash),
		"feed":        s.app.Feed().Stats(),
	})
}

func (s *Server) handleTx(w http.ResponseWriter, r *http.Request) {
	var tx authtypes.SignedTx
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&tx); err != nil {
		badRequest(w, "decode tx: %s", err)
		return
	}

	res, events, err := s.app.DeliverTx(r.Context(), tx)
	if err != nil {
		writeError(w, err)
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TxResponse{Result: raw, Events: events})
}

func (s *Server) handleTransfers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(w, "invalid limit %q", v)
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, s.app.Feed().History(limit))
}

// handleTransferStream pushes every committed outbound transfer to the
// websocket client until it disconnects or the feed stops.
func (s *Server) handleTransferStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	records, cancel := s.app.Feed().Subscribe()
	defer cancel()

	// the client never sends anything; reading only detects disconnects
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case record, ok := <-records:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed stopped"))
				return
			}
			if err := conn.WriteJSON(record); err != nil {
				s.logger.Debug("Websocket write failed", zap.Error(err))
				return
			}
		}
	}
}

func pathAddress(w http.ResponseWriter, r *http.Request, name string) (chain.Address, bool) {
	addr, err := chain.AddressFromHex(mux.Vars(r)[name])
	if err != nil {
		badRequest(w, "%s: %s", name, err)
		return chain.Address{}, false
	}
	return addr, true
}

func pathHash(w http.ResponseWriter, r *http.Request, name string) (common.Hash, bool) {
	bz, err := hexutil.Decode(mux.Vars(r)[name])
	if err != nil || len(bz) != common.HashLength {
		badRequest(w, "%s: expected 0x-prefixed 32-byte hex", name)
		return common.Hash{}, false
	}
	return common.BytesToHash(bz), true
}

// respond runs a single querier method and writes its answer.
func respond[Req, Resp any](s *Server, w http.ResponseWriter, r *http.Request, method func(context.Context, Req) (Resp, error), req Req) {
	resp, err := app.RunQuery(r.Context(), s.app, method, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
