package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/SeamusWaldron/cubeview"
	"github.com/SeamusWaldron/cubeview/internal/logging"
	"github.com/SeamusWaldron/cubeview/internal/metrics"
	"github.com/SeamusWaldron/cubeview/internal/palette"
	"github.com/SeamusWaldron/cubeview/internal/solver"
	"github.com/SeamusWaldron/cubeview/internal/storage"
)

// env holds what a command built from the config, so it can be released.
type env struct {
	session *cubeview.Session
	log     zerolog.Logger
	db      *storage.DB
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

// newEnv builds a session from cfg. Front ends that own the terminal pass
// ownsTerminal so logs go to a file instead of stderr.
func newEnv(ownsTerminal bool) (*env, error) {
	e := &env{}

	logger, err := e.openLog(ownsTerminal)
	if err != nil {
		return nil, err
	}
	e.log = logger

	opts := []cubeview.Option{
		cubeview.WithAnimationDuration(cfg.Animation.Duration),
		cubeview.WithLogger(logger),
	}

	p, err := palette.New(cfg.Palette, nil)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("invalid palette: %w", err)
	}
	opts = append(opts, cubeview.WithPalette(p))

	if cfg.DB.Enabled {
		db, err := openDB()
		if err != nil {
			e.Close()
			return nil, err
		}
		e.db = db
		e.closers = append(e.closers, db)
		logger.Debug().Str("path", db.Path()).Msg("Journal open")
		opts = append(opts, cubeview.WithJournal(storage.NewBatchRepository(db)))
	}

	if cfg.Metrics.Addr != "" {
		m := metrics.New("cubeview")
		opts = append(opts, cubeview.WithMetrics(m))
		go func() {
			if err := m.Serve(cfg.Metrics.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("Metrics server stopped")
			}
		}()
		logger.Info().Str("addr", cfg.Metrics.Addr).Msg("Serving metrics")
	}

	client := solver.New(cfg.Server.URL, solver.WithTimeout(cfg.Server.Timeout))
	logger.Debug().Str("server", client.BaseURL()).Dur("timeout", cfg.Server.Timeout).Msg("Solving service")
	e.session = cubeview.New(client, opts...)
	return e, nil
}

func (e *env) openLog(ownsTerminal bool) (zerolog.Logger, error) {
	path := cfg.Log.File
	if path == "" && ownsTerminal {
		home, err := os.UserHomeDir()
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".cubeview", "cubeview.log")
	}
	if path == "" {
		return logging.New(os.Stderr, cfg.Log.Level), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to open log file: %w", err)
	}
	e.closers = append(e.closers, f)
	return logging.NewJSON(f, cfg.Log.Level), nil
}

func openDB() (*storage.DB, error) {
	path := cfg.DB.Path
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
