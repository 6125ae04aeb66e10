// Package repl implements the interactive read-evaluate-print loop of the calculator.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/averycrespi/gocalc/internal/history"
	"github.com/averycrespi/gocalc/pkg/types"
	"github.com/google/uuid"
)

// Session runs the calculator loop over a line source and owns its history
type Session struct {
	id      string
	source  types.LineSource
	out     io.Writer
	history *history.History
	logger  *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithHistory makes the session record into an existing history
func WithHistory(h *history.History) Option {
	return func(s *Session) {
		s.history = h
	}
}

// WithLogger overrides the default slog logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session that reads commands from source and writes output to out
func NewSession(source types.LineSource, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		source:  source,
		out:     out,
		history: history.New(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the unique session identifier
func (s *Session) ID() string {
	return s.id
}

// History returns the calculations evaluated in this session
func (s *Session) History() *history.History {
	return s.history
}

// Run prints the banner and processes lines until exit, end of input, or cancellation
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("Starting REPL session")

	if err := s.print(bannerMessage); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("REPL session cancelled", "error", err)
			return err
		}

		line, err := s.source.NextLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug("End of input")
			return s.print(exitMessage)
		}
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			s.logger.Debug("Input rejected", "error", err)
			if err := s.print(ErrorMessage(err)); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		done, err := s.handle(line)
		if err != nil {
			return err
		}
		if done {
			s.logger.Debug("REPL session finished", "calculations", s.history.Len())
			return nil
		}
	}
}

// handle processes one input line and reports whether the loop should stop
func (s *Session) handle(line string) (bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false, nil
	}

	switch strings.ToLower(trimmed) {
	case CommandExit:
		return true, s.print(exitMessage)
	case CommandHelp:
		return false, s.print(HelpText())
	case CommandHistory:
		return false, s.printHistory()
	}

	evaluated, err := Evaluate(trimmed)
	if err != nil {
		s.logger.Debug("Calculation rejected", "input", trimmed, "error", err)
		return false, s.print(ErrorMessage(err))
	}

	position := s.history.Append(evaluated)
	s.logger.Debug("Calculation evaluated",
		"operation", evaluated.Operation().Name(),
		"result", evaluated.Result(),
		"position", position,
	)
	return false, s.print(ResultMessage(evaluated))
}

func (s *Session) printHistory() error {
	lines := s.history.Lines()
	if len(lines) == 0 {
		return s.print(emptyHistoryMessage)
	}

	var b strings.Builder
	b.WriteString(historyHeader)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return s.print(b.String())
}

func (s *Session) print(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
