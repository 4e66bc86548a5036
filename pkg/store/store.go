package store

import (
	"fmt"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	pruningtypes "cosmossdk.io/store/pruning/types"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
)

const dbName = "state"

// OpenDB opens the pebble-backed state database in dir.
func OpenDB(dir string) (dbm.DB, error) {
	db, err := dbm.NewDB(dbName, dbm.PebbleDBBackend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s database in %s: %w", dbm.PebbleDBBackend, dir, err)
	}
	return db, nil
}

// NewInMemory returns a database that lives only as long as the process.
func NewInMemory() dbm.DB {
	return dbm.NewMemDB()
}

// NewMultiStore mounts an IAVL store per key on db and loads the latest
// committed version. Only the most recent versions are retained.
func NewMultiStore(db dbm.DB, logger log.Logger, keys ...*storetypes.KVStoreKey) (storetypes.CommitMultiStore, error) {
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.SetPruning(pruningtypes.NewPruningOptions(pruningtypes.PruningEverything))

	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("load latest version: %w", err)
	}
	return cms, nil
}
