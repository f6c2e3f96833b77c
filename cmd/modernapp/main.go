package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/modernapp/internal/auth"
	"github.com/jask/modernapp/internal/config"
	"github.com/jask/modernapp/internal/database"
	"github.com/jask/modernapp/internal/database/repository"
	"github.com/jask/modernapp/internal/logging"
	"github.com/jask/modernapp/internal/nav"
	"github.com/jask/modernapp/internal/tui"
)

type options struct {
	configPath string
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "modernapp",
		Short:         "Terminal navigation demo with a sign-in flow and item grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.toml")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:   "catalog [id]",
		Short: "Print the grid catalog, or one item, and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd, opts, args)
		},
	})
	return root
}

// setup loads config and the logger with flag overrides applied.
func setup(opts options) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	if opts.logFile != "" {
		cfg.Log.Path = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, logger, nil
}

func openCatalog(ctx context.Context, cfg config.Config, logger *zap.Logger) (*sql.DB, *repository.CatalogRepo, error) {
	db, err := database.OpenCatalog(ctx, cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog: %w", err)
	}
	repo := repository.NewCatalogRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("count catalog: %w", err)
	}
	if n == 0 {
		_ = db.Close()
		return nil, nil, errors.New("catalog is empty")
	}
	logger.Info("catalog ready", zap.String("path", cfg.Catalog.Path), zap.Int("items", n))
	return db, repo, nil
}

func runUI(ctx context.Context, opts options) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, catalog, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	controller := nav.NewController(auth.NewGate(),
		nav.WithDelay(cfg.Login.Delay),
		nav.WithLogger(logger.Named("nav")),
	)
	app := tui.New(ctx, cfg, tui.Deps{
		Nav:     controller,
		Catalog: catalog,
		Logger:  logger.Named("tui"),
	})

	var popts []tea.ProgramOption
	if cfg.UI.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	logger.Info("starting", zap.String("title", cfg.UI.Title), zap.Duration("login_delay", cfg.Login.Delay))
	if _, err := tea.NewProgram(app, popts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func printCatalog(cmd *cobra.Command, opts options, args []string) error {
	ctx := cmd.Context()
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, catalog, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		it, err := catalog.Get(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("no catalog item with id %d", id)
		}
		if err != nil {
			return fmt.Errorf("get catalog item: %w", err)
		}
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", it.ID, it.Name, it.Description, it.ImageRef())
		return nil
	}

	items, err := catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}
	for _, it := range items {
		fmt.Fprintf(out, "%d\t%s\t%s\n", it.ID, it.Name, it.Description)
	}
	return nil
}
