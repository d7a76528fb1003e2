package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/murajaa/murajaa/internal/app"
	"github.com/murajaa/murajaa/internal/config"
	"github.com/murajaa/murajaa/internal/history"
	"github.com/murajaa/murajaa/internal/logging"
	"github.com/murajaa/murajaa/internal/quiz"
	"github.com/murajaa/murajaa/internal/quran"
	"github.com/murajaa/murajaa/internal/screens"
	"github.com/murajaa/murajaa/internal/selfupdate"
	"github.com/murajaa/murajaa/internal/store"
)

// env holds the services a command runs against.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	history *history.Store
	client  *quran.Client
}

// setup loads config, opens the log and the history database, and builds
// the content client.
func setup(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", zap.String("path", dbPath))

	client := quran.NewClient(
		quran.WithBaseURL(cfg.API.BaseURL),
		quran.WithEdition(cfg.API.Edition),
		quran.WithTimeout(cfg.API.Timeout),
		quran.WithLogger(log),
	)

	return &env{
		cfg:     cfg,
		log:     log,
		store:   st,
		history: history.New(st.KV(), log),
		client:  client,
	}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", zap.Error(err))
	}
	_ = e.log.Sync()
}

func (e *env) deps() screens.Deps {
	return screens.Deps{
		Starter:      quiz.NewStarter(e.client, nil, e.log),
		Surahs:       e.client,
		History:      e.history,
		Updates:      selfupdate.NewChecker(selfupdate.WithLogger(e.log)),
		Version:      version,
		Log:          e.log,
		DefaultCount: e.cfg.Quiz.DefaultCount,
	}
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.New(app.Options{Deps: e.deps()}))
}
