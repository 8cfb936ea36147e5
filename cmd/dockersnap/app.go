package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/dockersnap/internal/docker"
	"github.com/rusenback/dockersnap/internal/snapshot"
	"github.com/urfave/cli/v2"
)

const (
	exitOK         = 0
	exitUsage      = 1
	exitPersistErr = 2
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))

// run executes one snapshot and returns the process exit code.
func run(args []string, stderr io.Writer) int {
	code := exitOK

	app := &cli.App{
		Name:            "dockersnap",
		Usage:           "append a snapshot of all docker containers to logs/docker_monitor.log",
		HideHelpCommand: true,
		Writer:          stderr,
		ErrWriter:       stderr,
		Flags:           flags(),
		Action: func(c *cli.Context) error {
			if err := snap(c, stderr); err != nil {
				var perr *snapshot.PersistenceError
				if !errors.As(err, &perr) {
					return err
				}
				fmt.Fprintln(stderr, errorStyle.Render("Failed to write log: "+err.Error()))
				code = exitPersistErr
			}
			return nil
		},
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	return code
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "base-dir",
			Usage: "directory holding logs/ (default: parent of the executable's directory)",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "container runtime query source: cli or api",
			Value: "cli",
		},
		&cli.StringFlag{
			Name:  "docker",
			Usage: "docker executable name or path",
			Value: "docker",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Docker Engine API endpoint used with --source api",
			Value: docker.DefaultConfig().Host,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug diagnostics to stderr",
		},
	}
}

func snap(c *cli.Context, stderr io.Writer) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	base := c.String("base-dir")
	if base == "" {
		var err error
		if base, err = snapshot.BaseDir(); err != nil {
			return &snapshot.PersistenceError{Path: "logs", Err: err}
		}
	}

	var querier docker.Querier
	switch source := c.String("source"); source {
	case "cli":
		querier = docker.NewCLI(c.String("docker"))
	case "api":
		cfg := docker.DefaultConfig()
		cfg.Host = c.String("host")
		client, err := docker.NewClient(cfg)
		if err != nil {
			// invalid host etc. is a query failure like an unreachable daemon
			querier = failedQuerier{err: err}
			break
		}
		defer client.Close()
		querier = client
	default:
		return fmt.Errorf("unknown source %q, want cli or api", source)
	}

	l := &snapshot.Logger{
		BaseDir: base,
		Querier: querier,
		Log:     logger,
	}
	logger.Debug("taking snapshot", "base", base, "source", c.String("source"))
	return l.Run(context.Background())
}

// failedQuerier reports a client setup error as the query outcome.
type failedQuerier struct{ err error }

func (f failedQuerier) QueryContainers(context.Context) (string, error) {
	return "", &docker.QueryError{Message: f.err.Error()}
}
