package chain

import (
	"context"
	"sync"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"
)

const codespace = "chain"

// ErrPanic wraps a panic recovered while running a call. It is always fatal.
var ErrPanic = errorsmod.Register(codespace, 2, "call panicked")

// Clock returns the current time in unix seconds.
type Clock func() uint64

// SystemClock reads the wall clock.
func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Host serializes calls against a CommitMultiStore. Each call runs on a
// cache branch; the branch is written and committed only when the call
// returns without error.
type Host struct {
	mu     sync.Mutex
	cms    storetypes.CommitMultiStore
	clock  Clock
	logger *zap.Logger
	ctxLog log.Logger
}

func NewHost(cms storetypes.CommitMultiStore, clock Clock, logger *zap.Logger) *Host {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{
		cms:    cms,
		clock:  clock,
		logger: logger.Named("host"),
		ctxLog: NewLogger(logger),
	}
}

func (h *Host) newContext(goCtx context.Context, ms storetypes.MultiStore) sdk.Context {
	header := cmtproto.Header{
		Height: h.cms.LastCommitID().Version + 1,
		Time:   time.Unix(int64(h.clock()), 0).UTC(),
	}
	return sdk.NewContext(ms, header, false, h.ctxLog).
		WithContext(goCtx).
		WithEventManager(sdk.NewEventManager())
}

// Execute runs fn atomically and returns the events it emitted.
func (h *Host) Execute(goCtx context.Context, fn func(ctx sdk.Context) error) (sdk.Events, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := h.newContext(goCtx, h.cms)
	cacheCtx, write := ctx.CacheContext()
	if err := h.run(cacheCtx, fn); err != nil {
		return nil, err
	}

	write()
	h.cms.Commit()
	return cacheCtx.EventManager().Events(), nil
}

// Query runs fn against a cache branch that is never written.
func (h *Host) Query(goCtx context.Context, fn func(ctx sdk.Context) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.run(h.newContext(goCtx, h.cms.CacheMultiStore()), fn)
}

func (h *Host) run(ctx sdk.Context, fn func(ctx sdk.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("recovered panic in call", zap.Any("panic", r))
			err = errorsmod.Wrapf(ErrPanic, "%v", r)
		}
	}()
	return fn(ctx)
}

// LastCommitID is the version and app hash of the latest committed call.
func (h *Host) LastCommitID() storetypes.CommitID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cms.LastCommitID()
}

// Now returns the time the next call would observe.
func (h *Host) Now() uint64 {
	return h.clock()
}

// BlockTime is the call time of ctx in unix seconds.
func BlockTime(ctx sdk.Context) uint64 {
	return uint64(ctx.BlockTime().Unix())
}
