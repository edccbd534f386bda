package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/config"
	"github.com/abhisek/munhak/internal/llm"
	"github.com/abhisek/munhak/internal/logging"
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/store"
	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/tutor"
)

// deps holds everything a command needs, opened in dependency order.
type deps struct {
	cfg     config.Config
	log     *logrus.Logger
	logFile io.Closer
	store   *store.Store
	state   *studystate.Manager
	catalog *catalog.Catalog
	tutor   *tutor.Service // nil when no LLM provider is configured
}

// openDeps loads configuration, opens the log, the database and the study
// state, and builds the tutor when withTutor is set and a provider is
// configured.
func openDeps(cmd *cobra.Command, withTutor bool) (*deps, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if stderr, _ := cmd.Flags().GetBool("log-stderr"); stderr {
		cfg.Log.Stderr = true
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	log, logFile, err := logging.Open(cfg.Log, filepath.Dir(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	opts, err := cfg.Study.Options()
	if err != nil {
		st.Close()
		logFile.Close()
		return nil, fmt.Errorf("study config: %w", err)
	}
	opts = append(opts, studystate.WithLogger(log))

	cat, err := catalog.Default()
	if err != nil {
		st.Close()
		logFile.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	d := &deps{
		cfg:     cfg,
		log:     log,
		logFile: logFile,
		store:   st,
		state:   studystate.Open(ctx, st.KV(), opts...),
		catalog: cat,
	}
	log.WithField("db", dbPath).Debug("study state opened")

	if withTutor {
		d.tutor = d.openTutor(ctx)
	}
	return d, nil
}

// openTutor returns nil when no provider is configured or it fails to
// initialize; the app runs without AI explanations in that case.
func (d *deps) openTutor(ctx context.Context) *tutor.Service {
	llmCfg, ok := llm.Discover(d.cfg.LLM)
	if !ok {
		d.log.Debug("no LLM provider configured")
		return nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, d.log)
	if err != nil {
		d.log.WithError(err).Warn("LLM provider unavailable, AI explanations disabled")
		return nil
	}
	return tutor.NewService(provider, d.store.KV(), tutor.DefaultConfig(), d.log)
}

func (d *deps) env() screen.Env {
	return screen.Env{
		State:   d.state,
		Catalog: d.catalog,
		Tutor:   d.tutor,
		Log:     d.log,
		Now:     time.Now,
	}
}

// Close flushes pending writes and releases the database and log file.
func (d *deps) Close(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.state.Close(ctx); err != nil {
		d.log.WithError(err).Error("flush study state")
	}
	if err := d.store.Close(); err != nil {
		d.log.WithError(err).Error("close store")
	}
	d.logFile.Close()
}
