package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/averycrespi/gocalc/internal/operations"
	"github.com/averycrespi/gocalc/pkg/types"
	"github.com/chzyer/readline"
)

var (
	_ types.LineSource = &ReadlineSource{}
	_ types.LineSource = &ReaderSource{}
)

// ReadlineSource reads lines from an interactive terminal with line editing
// and completion of operation names and control commands
type ReadlineSource struct {
	instance *readline.Instance
}

// NewReadlineSource creates a terminal line source showing prompt before each line.
// Entered lines are kept in memory for recall only; nothing is written to disk.
func NewReadlineSource(prompt string) (*ReadlineSource, error) {
	return newReadlineSource(readlineConfig(prompt))
}

func newReadlineSource(cfg *readline.Config) (*ReadlineSource, error) {
	instance, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return &ReadlineSource{instance: instance}, nil
}

func readlineConfig(prompt string) *readline.Config {
	return &readline.Config{
		Prompt:          prompt,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       CommandExit,
	}
}

func newCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(operations.All())+3)
	for _, name := range operations.Names() {
		items = append(items, readline.PcItem(name))
	}
	items = append(items,
		readline.PcItem(CommandHelp),
		readline.PcItem(CommandHistory),
		readline.PcItem(CommandExit),
	)
	return readline.NewPrefixCompleter(items...)
}

// NextLine reads the next line. An interrupt on an empty line ends input
// with io.EOF; an interrupt on a partial line discards it.
func (s *ReadlineSource) NextLine() (string, error) {
	line, err := s.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Close restores the terminal
func (s *ReadlineSource) Close() error {
	return s.instance.Close()
}

// MaxLineLength is the longest line a ReaderSource accepts, in bytes
const MaxLineLength = 64 * 1024

// ReaderSource reads newline-delimited lines from a reader, optionally
// echoing a prompt before each read
type ReaderSource struct {
	reader    *bufio.Reader
	prompt    string
	echo      io.Writer
	maxLength int
}

// NewReaderSource creates a line source over r. When echo is non-nil the prompt is written to it before each line.
func NewReaderSource(r io.Reader, prompt string, echo io.Writer) *ReaderSource {
	return &ReaderSource{
		reader:    bufio.NewReader(r),
		prompt:    prompt,
		echo:      echo,
		maxLength: MaxLineLength,
	}
}

// NextLine returns the next line without its trailing newline, or io.EOF.
// A line longer than MaxLineLength is consumed and reported as a *ParseError.
func (s *ReaderSource) NextLine() (string, error) {
	if s.echo != nil && s.prompt != "" {
		if _, err := io.WriteString(s.echo, s.prompt); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := s.reader.ReadLine()
		if errors.Is(err, io.EOF) && (len(line) > 0 || tooLong) {
			break
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		if tooLong || len(line)+len(chunk) > s.maxLength {
			tooLong = true
		} else {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", &ParseError{
			Input:  truncate(string(line), 32),
			Reason: fmt.Sprintf("line exceeds %d bytes", s.maxLength),
		}
	}
	return string(line), nil
}

// Close is a no-op; the underlying reader is owned by the caller
func (s *ReaderSource) Close() error {
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// NewStdinSource picks a terminal source when stdin is a TTY and a reader source otherwise
func NewStdinSource(prompt string, out io.Writer) (types.LineSource, error) {
	if readline.IsTerminal(int(os.Stdin.Fd())) {
		return NewReadlineSource(prompt)
	}
	return NewReaderSource(os.Stdin, prompt, out), nil
}
