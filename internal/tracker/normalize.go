package tracker

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// maxLineSize bounds a single output line; tracker snippets can be long.
const maxLineSize = 1 << 20

// Normalizer queries the index and converts its output into Results.
type Normalizer struct {
	runner  Runner
	guesser Guesser
	command string
	limit   int
	logger  *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithCommand overrides the query executable.
func WithCommand(command string) Option {
	return func(n *Normalizer) {
		if command != "" {
			n.command = command
		}
	}
}

// WithLimit overrides MaxResults. Non-positive values are ignored.
func WithLimit(limit int) Option {
	return func(n *Normalizer) {
		if limit > 0 {
			n.limit = limit
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// NewNormalizer creates a Normalizer. A nil runner uses ExecRunner.
func NewNormalizer(runner Runner, guesser Guesser, opts ...Option) *Normalizer {
	if guesser == nil {
		panic("guesser is required")
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	n := &Normalizer{
		runner:  runner,
		guesser: guesser,
		command: DefaultCommand,
		limit:   MaxResults,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Command returns the executable name and arguments used for terms.
func (n *Normalizer) Command(terms []string) (string, []string) {
	args := make([]string, 0, 3+len(terms))
	args = append(args, "-l", strconv.Itoa(n.limit), "-f")
	args = append(args, terms...)
	return n.command, args
}

// Limit returns the number of output lines consumed per query.
func (n *Normalizer) Limit() int {
	return n.limit
}

// Normalize runs one query for terms and returns at most Limit()-1 results
// in output order. The first output line is a header and is always skipped.
// Reading stops at the limit, at EOF or at the first empty line.
func (n *Normalizer) Normalize(ctx context.Context, terms []string) ([]Result, error) {
	name, args := n.Command(terms)
	n.logger.Debug("running query", "command", name, "terms", terms)

	out, err := n.runner.Start(ctx, name, args)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	defer out.Close()

	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	results := []Result{}
	for cnt := 0; cnt < n.limit && scanner.Scan(); cnt++ {
		line := scanner.Text()
		if line == "" {
			break
		}
		if cnt == 0 {
			continue
		}
		results = append(results, n.ParseLine(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s output: %w", name, err)
	}

	n.logger.Debug("query done", "command", name, "count", len(results))
	return results, nil
}

// ParseLine parses one output line with the Normalizer's guesser.
func (n *Normalizer) ParseLine(line string) Result {
	return ParseLine(line, n.guesser)
}
