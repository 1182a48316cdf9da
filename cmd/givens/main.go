// SPDX-License-Identifier: MIT

// Command givens generates random complex linear systems with a known
// solution, solves them by plane rotations and back-substitution, and
// reports how closely the recovered solution matches.
//
// Every flag can also be set through a GIVENS_* environment variable.
// With --dsn (or GIVENS_DATABASE_URL) each run is recorded in PostgreSQL.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/givens/store"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Fatal:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "givens",
		Usage:  "solve random complex linear systems by plane rotations",
		Flags:  appFlags,
		Action: action,
	}
}

func action(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	logger := setupLogger(c.App.ErrWriter, cfg.Verbosity)

	var st store.Store
	if cfg.DSN != "" {
		pg, err := store.NewPostgres(c.Context, cfg.DSN)
		if err != nil {
			return err
		}
		logger.Info("Connected to database")
		st = pg
	} else {
		logger.Debug("No database configured, keeping runs in memory")
		st = store.NewMemory()
	}
	defer st.Close()

	return newRunner(cfg, st, c.App.Writer, logger).runAll(c.Context)
}

// setupLogger installs a terminal handler at the given legacy verbosity as
// the default logger and returns it. Colors are used on a real terminal only.
func setupLogger(w io.Writer, verbosity int) log.Logger {
	if w == nil {
		w = os.Stderr
	}
	useColor := false
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		useColor = (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
		if useColor {
			w = colorable.NewColorable(f)
		}
	}

	var logger log.Logger
	if verbosity <= 0 {
		logger = log.NewLogger(log.DiscardHandler())
	} else {
		logger = log.NewLogger(log.NewTerminalHandlerWithLevel(w, log.FromLegacyLevel(verbosity), useColor))
	}
	log.SetDefault(logger)

	return logger
}
