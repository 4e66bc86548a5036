package app

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/metrics"
	"github.com/manus-ai/quorum-bridge/pkg/store"
	"github.com/manus-ai/quorum-bridge/pkg/transfer_feed"
	authkeeper "github.com/manus-ai/quorum-bridge/x/auth/keeper"
	authtypes "github.com/manus-ai/quorum-bridge/x/auth/types"
	"github.com/manus-ai/quorum-bridge/x/bridge"
	bridgekeeper "github.com/manus-ai/quorum-bridge/x/bridge/keeper"
	bridgetypes "github.com/manus-ai/quorum-bridge/x/bridge/types"
	"github.com/manus-ai/quorum-bridge/x/ledger"
	ledgerkeeper "github.com/manus-ai/quorum-bridge/x/ledger/keeper"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

const Name = "bridged"

// Version is set at build time.
var Version = "v0.1.0"

type msgDecoder func(msgType string, bz []byte) (chain.Msg, error)

// App wires the bridge module and its default collaborators over a single
// multistore. Calls are executed one at a time by the host.
type App struct {
	logger *zap.Logger
	cdc    *codec.LegacyAmino
	host   *chain.Host

	AuthKeeper   authkeeper.Keeper
	LedgerKeeper ledgerkeeper.Keeper
	BridgeKeeper bridgekeeper.Keeper

	AuthQuerier   authtypes.QueryServer
	BridgeQuerier bridgetypes.QueryServer
	LedgerQuerier ledgertypes.QueryServer

	handlers map[string]chain.Handler
	decoders map[string]msgDecoder

	feed    *transfer_feed.Manager
	metrics *metrics.Metrics
}

// ModuleAccountAddrs are the accounts user messages may never move funds from.
func ModuleAccountAddrs() map[chain.Address]bool {
	return map[chain.Address]bool{
		bridgetypes.ModuleAddress: true,
	}
}

func New(
	db dbm.DB,
	clock chain.Clock,
	feed *transfer_feed.Manager,
	m *metrics.Metrics,
	logger *zap.Logger,
) (*App, error) {
	keys := map[string]*storetypes.KVStoreKey{
		authtypes.StoreKey:   storetypes.NewKVStoreKey(authtypes.StoreKey),
		ledgertypes.StoreKey: storetypes.NewKVStoreKey(ledgertypes.StoreKey),
		bridgetypes.StoreKey: storetypes.NewKVStoreKey(bridgetypes.StoreKey),
	}

	cms, err := store.NewMultiStore(db, chain.NewLogger(logger.Named("store")),
		keys[authtypes.StoreKey], keys[ledgertypes.StoreKey], keys[bridgetypes.StoreKey])
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	a := &App{
		logger:  logger.Named("app"),
		cdc:     codec.NewLegacyAmino(),
		host:    chain.NewHost(cms, clock, logger),
		feed:    feed,
		metrics: m,
	}

	a.AuthKeeper = authkeeper.NewKeeper(keys[authtypes.StoreKey])
	// the bridge reserve lives in the ledger as the bridge module account
	a.LedgerKeeper = ledgerkeeper.NewKeeper(keys[ledgertypes.StoreKey], bridgetypes.ModuleAddress, ModuleAccountAddrs())
	a.BridgeKeeper = bridgekeeper.NewKeeper(a.cdc, keys[bridgetypes.StoreKey], a.LedgerKeeper, a.LedgerKeeper)

	a.AuthQuerier = authkeeper.NewQueryServerImpl(a.AuthKeeper)
	a.BridgeQuerier = bridgekeeper.NewQuerier(a.BridgeKeeper)
	a.LedgerQuerier = ledgerkeeper.NewQueryServerImpl(a.LedgerKeeper)

	a.handlers = map[string]chain.Handler{
		bridgetypes.RouterKey: bridge.NewHandler(a.BridgeKeeper),
		ledgertypes.RouterKey: ledger.NewHandler(a.LedgerKeeper),
	}
	a.decoders = map[string]msgDecoder{
		bridgetypes.RouterKey: bridgetypes.DecodeMsg,
		ledgertypes.RouterKey: ledgertypes.DecodeMsg,
	}
	return a, nil
}

func (a *App) Feed() *transfer_feed.Manager { return a.feed }

func (a *App) Metrics() *metrics.Metrics { return a.metrics }

// LastCommitID is the version and app hash after the latest committed call.
func (a *App) LastCommitID() storetypes.CommitID { return a.host.LastCommitID() }

// DecodeMsg builds the message registered under route and msgType from JSON.
func (a *App) DecodeMsg(route, msgType string, bz []byte) (chain.Msg, error) {
	decode, ok := a.decoders[route]
	if !ok {
		return nil, errorsmod.Wrapf(bridgetypes.ErrUnknownRequest, "unknown route %q", route)
	}
	msg, err := decode(msgType, bz)
	if err != nil {
		return nil, errorsmod.Wrap(bridgetypes.ErrUnknownRequest, err.Error())
	}
	return msg, nil
}

// DeliverTx authenticates a signed transaction and executes its message.
// The signer's sequence is consumed only when the message succeeds.
func (a *App) DeliverTx(goCtx context.Context, tx authtypes.SignedTx) (any, sdk.Events, error) {
	if err := tx.ValidateBasic(); err != nil {
		return nil, nil, err
	}
	msg, err := a.DecodeMsg(tx.Route, tx.Type, tx.Msg)
	if err != nil {
		return nil, nil, err
	}
	if msg.Route() != tx.Route || msg.Type() != tx.Type {
		return nil, nil, errorsmod.Wrapf(authtypes.ErrInvalidTx, "message is %s/%s", msg.Route(), msg.Type())
	}

	return a.deliver(goCtx, msg, func(ctx sdk.Context) error {
		return a.AuthKeeper.VerifyTx(ctx, tx, msg.GetSigner())
	})
}

// DeliverMsg executes msg atomically without authentication. It is meant
// for in-process callers that already trust the message signer.
func (a *App) DeliverMsg(goCtx context.Context, msg chain.Msg) (any, sdk.Events, error) {
	return a.deliver(goCtx, msg, nil)
}

// deliver runs ante and the message handler as one call. On success the
// committed events are returned and every outbound transfer is published to
// the feed.
func (a *App) deliver(goCtx context.Context, msg chain.Msg, ante func(ctx sdk.Context) error) (any, sdk.Events, error) {
	handler, ok := a.handlers[msg.Route()]
	if !ok {
		return nil, nil, errorsmod.Wrapf(bridgetypes.ErrUnknownRequest, "unknown route %q", msg.Route())
	}

	var res any
	events, err := a.host.Execute(goCtx, func(ctx sdk.Context) error {
		if ante != nil {
			if err := ante(ctx); err != nil {
				return err
			}
		}
		var err error
		res, err = handler(ctx, msg)
		return err
	})
	a.metrics.ReportCall(msg.Route(), msg.Type(), events, err)

	if err != nil {
		if bridgetypes.IsFatal(err) {
			a.logger.Error("call failed",
				zap.String("route", msg.Route()),
				zap.String("type", msg.Type()),
				zap.Error(err))
		} else {
			a.logger.Debug("call rejected",
				zap.String("route", msg.Route()),
				zap.String("type", msg.Type()),
				zap.Error(err))
		}
		return nil, nil, err
	}

	for _, ev := range events {
		if record, ok := bridgetypes.TransferRecordFromEvent(ev); ok {
			a.feed.Publish(record)
		}
	}
	return res, events, nil
}

// Query runs fn against a read-only view of the state. Queriers accept the
// context handed to fn.
func (a *App) Query(goCtx context.Context, fn func(ctx context.Context) error) error {
	return a.host.Query(goCtx, func(ctx sdk.Context) error {
		return fn(ctx)
	})
}

// RunQuery is a typed shortcut for App.Query with a single querier method.
func RunQuery[Req, Resp any](goCtx context.Context, a *App, method func(context.Context, Req) (Resp, error), req Req) (Resp, error) {
	var resp Resp
	err := a.Query(goCtx, func(ctx context.Context) error {
		var err error
		resp, err = method(ctx, req)
		return err
	})
	return resp, err
}

func (a *App) IsInitialized(goCtx context.Context) (bool, error) {
	var initialized bool
	err := a.host.Query(goCtx, func(ctx sdk.Context) error {
		initialized = a.BridgeKeeper.IsInitialized(ctx)
		return nil
	})
	return initialized, err
}

// InitChain validates gen and writes it to an empty state.
func (a *App) InitChain(goCtx context.Context, gen AppGenesis) error {
	if err := gen.Validate(); err != nil {
		return fmt.Errorf("invalid genesis: %w", err)
	}

	_, err := a.host.Execute(goCtx, func(ctx sdk.Context) error {
		if a.BridgeKeeper.IsInitialized(ctx) {
			return errorsmod.Wrap(bridgetypes.ErrAlreadyExists, "state is already initialized")
		}
		a.AuthKeeper.InitGenesis(ctx, gen.Auth)
		a.LedgerKeeper.InitGenesis(ctx, gen.Ledger)
		a.BridgeKeeper.InitGenesis(ctx, gen.Bridge)
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Info("initialized state",
		zap.String("owner", gen.Bridge.Config.Owner.Hex()),
		zap.Int("validators", len(gen.Bridge.Validators)),
		zap.Int("assets", len(gen.Bridge.Assets)))
	return nil
}

// ExportGenesis dumps the current state.
func (a *App) ExportGenesis(goCtx context.Context) (AppGenesis, error) {
	var gen AppGenesis
	err := a.host.Query(goCtx, func(ctx sdk.Context) error {
		gen.Auth = *a.AuthKeeper.ExportGenesis(ctx)
		gen.Bridge = *a.BridgeKeeper.ExportGenesis(ctx)
		gen.Ledger = *a.LedgerKeeper.ExportGenesis(ctx)
		return nil
	})
	return gen, err
}
