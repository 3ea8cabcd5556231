package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"github.com/utakatalp/league-ranking/internal/input"
	"github.com/utakatalp/league-ranking/internal/league"
	"github.com/utakatalp/league-ranking/internal/logging"
	"github.com/utakatalp/league-ranking/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		stop()
		os.Exit(code)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var logger *slog.Logger

	app := &cli.App{
		Name:      "league-ranking",
		Usage:     "rank teams from game results",
		UsageText: "league-ranking [--debug] [FILE|-]...\n   league-ranking serve [--addr ADDR]",
		Description: "With no arguments, ranks a built-in season and verifies the result.\n" +
			"With file arguments (\"-\" for stdin), prints the ranking of the games they contain.",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log skipped lines and requests",
				EnvVars: []string{"LEAGUE_RANKING_DEBUG"},
			},
		},
		Before: func(c *cli.Context) error {
			logger = logging.New(c.Bool("debug"), stderr)
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return selfCheck(c.App.Writer, logger)
			}
			return rankFiles(c.Args().Slice(), stdin, c.App.Writer, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve rankings over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":8080",
						Usage:   "listen address",
						EnvVars: []string{"LEAGUE_RANKING_ADDR"},
					},
				},
				Action: func(c *cli.Context) error {
					reg := prometheus.NewRegistry()
					reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
					return server.New(logger, reg).ListenAndServe(c.Context, c.String("addr"))
				},
			},
		},
		// main decides the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return app.RunContext(ctx, args)
}

func selfCheck(w io.Writer, logger *slog.Logger) error {
	if err := league.SelfCheck(); err != nil {
		logger.Error("self-check", "err", err)
		return cli.Exit(err.Error(), 1)
	}
	_, err := fmt.Fprintln(w, league.CheckPassed)
	return err
}

func rankFiles(names []string, stdin io.Reader, w io.Writer, logger *slog.Logger) error {
	text, err := input.Read(names, stdin)
	if err != nil {
		return err
	}

	games := league.NewParser(logger).Games(text)
	rankings := league.Rank(league.CalculatePoints(games))
	logger.Debug("ranked", "files", len(names), "teams", len(rankings))

	return league.WriteRankings(w, rankings)
}
