package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmath "cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/manus-ai/quorum-bridge/app"
	"github.com/manus-ai/quorum-bridge/pkg/api"
	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/client"
	"github.com/manus-ai/quorum-bridge/pkg/config"
	"github.com/manus-ai/quorum-bridge/pkg/metrics"
	"github.com/manus-ai/quorum-bridge/pkg/store"
	"github.com/manus-ai/quorum-bridge/pkg/transfer_feed"
	bridgecli "github.com/manus-ai/quorum-bridge/x/bridge/client/cli"
	ledgercli "github.com/manus-ai/quorum-bridge/x/ledger/client/cli"
)

const (
	flagOwner   = "owner"
	flagReserve = "reserve"
	flagOutput  = "output"
	flagForce   = "force"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Quorum bridge node",
	Long: `A bridge node that locks native coins and burns tokens for transfers to a remote chain,
and releases them when a quorum of validators attests to a remote deposit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if logger, err = cfg.Logging.NewLogger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return client.ApplyConfig(cmd, cfg.Client)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bridge node",
	Long:  "Open the state, apply the genesis file on first start, and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runNode,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default genesis file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerHex, _ := cmd.Flags().GetString(flagOwner)
		owner, err := chain.AddressFromHex(ownerHex)
		if err != nil {
			return fmt.Errorf("--%s: %w", flagOwner, err)
		}
		reserveStr, _ := cmd.Flags().GetString(flagReserve)
		reserve, err := sdkmath.ParseUint(reserveStr)
		if err != nil {
			return fmt.Errorf("--%s: %w", flagReserve, err)
		}

		path := genesisPath()
		if force, _ := cmd.Flags().GetBool(flagForce); !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("genesis file %s already exists", path)
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		gen := app.DefaultGenesis(owner, reserve)
		if err := gen.Validate(); err != nil {
			return err
		}
		if err := app.SaveGenesisFile(path, gen); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote genesis to %s\n", path)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current state as a genesis file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		feed := transfer_feed.NewManager(cfg.API.FeedHistorySize, logger)
		bridgeApp, err := app.New(db, chain.SystemClock, feed, metrics.New(), logger)
		if err != nil {
			return err
		}

		gen, err := bridgeApp.ExportGenesis(cmd.Context())
		if err != nil {
			return err
		}

		if output, _ := cmd.Flags().GetString(flagOutput); output != "" {
			return app.SaveGenesisFile(output, gen)
		}
		bz, err := yaml.Marshal(gen)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(bz)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Name, app.Version)
	},
}

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Transactions subcommands",
}

var queryCmd = &cobra.Command{
	Use:     "query",
	Aliases: []string{"q"},
	Short:   "Querying subcommands",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")

	initCmd.Flags().String(flagOwner, "", "hex address of the bridge owner")
	initCmd.Flags().String(flagReserve, "0", "native coins held by the bridge reserve at genesis")
	initCmd.Flags().Bool(flagForce, false, "overwrite an existing genesis file")
	_ = initCmd.MarkFlagRequired(flagOwner)

	exportCmd.Flags().String(flagOutput, "", "write the genesis to this file instead of stdout")

	txCmd.AddCommand(bridgecli.GetTxCmd(), ledgercli.GetTxCmd())
	queryCmd.AddCommand(bridgecli.GetQueryCmd(), ledgercli.GetQueryCmd())

	rootCmd.AddCommand(startCmd, initCmd, exportCmd, keysCmd(), versionCmd, txCmd, queryCmd)
}

func resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Node.Home, path)
}

func genesisPath() string {
	return resolve(cfg.Node.GenesisFile)
}

func openDB() (dbm.DB, error) {
	if cfg.Storage.InMemory {
		return store.NewInMemory(), nil
	}
	path := resolve(cfg.Storage.Path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}
	return store.OpenDB(path)
}

func runNode(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger.Info("Starting bridge node",
		zap.String("version", app.Version),
		zap.String("home", cfg.Node.Home),
		zap.Bool("in_memory", cfg.Storage.InMemory))

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	feed := transfer_feed.NewManager(cfg.API.FeedHistorySize, logger)
	bridgeApp, err := app.New(db, chain.SystemClock, feed, metrics.New(), logger)
	if err != nil {
		return err
	}

	initialized, err := bridgeApp.IsInitialized(ctx)
	if err != nil {
		return err
	}
	if !initialized {
		gen, err := app.LoadGenesisFile(genesisPath())
		if err != nil {
			return err
		}
		if err := bridgeApp.InitChain(ctx, gen); err != nil {
			return fmt.Errorf("failed to apply genesis: %w", err)
		}
	}

	if err := feed.Start(ctx); err != nil {
		return fmt.Errorf("failed to start transfer feed: %w", err)
	}
	server := api.NewServer(bridgeApp, cfg.API, logger)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down bridge node...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during API shutdown", zap.Error(err))
	}
	if err := feed.Stop(); err != nil {
		logger.Error("Failed to stop transfer feed", zap.Error(err))
	}

	commit := bridgeApp.LastCommitID()
	logger.Info("Bridge node stopped successfully", zap.Int64("height", commit.Version))
	return nil
}
