package types

// LineSource provides the next command line for the REPL.
// NextLine returns io.EOF when no more input is available.
type LineSource interface {
	NextLine() (string, error)
	Close() error
}
