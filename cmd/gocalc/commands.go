package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/averycrespi/gocalc/internal/logging"
	"github.com/averycrespi/gocalc/internal/repl"
	"github.com/averycrespi/gocalc/internal/server"
	"github.com/averycrespi/gocalc/pkg/project"
	"github.com/averycrespi/gocalc/pkg/types"

	"github.com/spf13/cobra"
)

// errEvalFailed marks an eval whose message has already been printed
var errEvalFailed = errors.New("calculation failed")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	config types.Config
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           project.Name,
		Short:         "Interactive command-line calculator",
		Long:          "Evaluates arithmetic commands of the form \"<operation> <a> <b>\" in an interactive loop.",
		Version:       project.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.Validate(); err != nil {
				return err
			}
			return logging.Setup(a.config.LogLevel, a.stderr)
		},
		RunE: a.runREPL,
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "warn",
		fmt.Sprintf("Log level (%s)", strings.Join(types.LogLevels, ", ")))

	cmd.AddCommand(newEvalCmd(a), newServeCmd(a))
	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eval <operation> <a> <b>",
		Short:   "Evaluate a single calculation and print the result",
		Example: "  gocalc eval add 10 5\n  gocalc eval power 2 10\n  gocalc eval subtract -4 6",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Evaluating calculation", "args", args)
			evaluated, err := repl.Evaluate(strings.Join(args, " "))
			if err != nil {
				fmt.Fprint(a.stderr, repl.ErrorMessage(err))
				return errEvalFailed
			}
			_, err = fmt.Fprint(a.stdout, repl.ResultMessage(evaluated))
			return err
		},
	}
	// Everything after the operation is an operand, so "-4" is not read as a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.NewCalcServer(&a.config, a.stdin, a.stdout).Start(cmd.Context())
		},
	}
}

func (a *app) runREPL(cmd *cobra.Command, args []string) error {
	source, err := a.lineSource()
	if err != nil {
		return err
	}
	defer source.Close()

	err = repl.NewSession(source, a.stdout).Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// lineSource uses readline only when reading the process's own terminal
func (a *app) lineSource() (types.LineSource, error) {
	if a.stdin == os.Stdin {
		return repl.NewStdinSource(repl.Prompt, a.stdout)
	}
	return repl.NewReaderSource(a.stdin, repl.Prompt, a.stdout), nil
}
