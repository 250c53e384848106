// Package input turns text commands into player intents.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/vinom-ballmaze/game"
	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
	"github.com/beka-birhanu/vinom-ballmaze/service/i"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	errQuit           = errors.New("quit")
)

var _ i.InputSource = (*LineReader)(nil)

var aliases = map[string]string{
	"w": "up",
	"d": "right",
	"s": "down",
	"a": "left",
	"r": "restart",
	"q": "quit",
}

// LineReader reads whitespace separated commands (up, down, left, right,
// restart, quit, or w/a/s/d/r/q) from a reader.
type LineReader struct {
	reader  io.Reader
	intents chan game.Intent
	logger  i.Logger
}

// NewLineReader creates a LineReader over r. Unknown commands are logged and skipped.
func NewLineReader(r io.Reader, logger i.Logger) *LineReader {
	return &LineReader{
		reader:  r,
		intents: make(chan game.Intent),
		logger:  logger,
	}
}

// Intents streams parsed intents. The channel is closed when Run returns.
func (l *LineReader) Intents() <-chan game.Intent {
	return l.intents
}

// Run reads until EOF, a quit command or ctx is done. It returns as soon as ctx
// is done even while the reader is blocked; the blocked read is then abandoned.
func (l *LineReader) Run(ctx context.Context) error {
	defer close(l.intents)

	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(l.reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			quit, err := l.dispatch(ctx, line)
			if err != nil || quit {
				return err
			}
		}
	}
}

// dispatch sends the intents of one line. It reports quit when the line asks to stop.
func (l *LineReader) dispatch(ctx context.Context, line string) (bool, error) {
	for _, token := range strings.Fields(line) {
		intent, err := ParseIntent(token)
		if errors.Is(err, errQuit) {
			return true, nil
		}
		if err != nil {
			l.logger.Warn(err.Error())
			continue
		}

		select {
		case l.intents <- intent:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	return false, nil
}

// ParseIntent maps one command token to an intent.
func ParseIntent(token string) (game.Intent, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if full, ok := aliases[token]; ok {
		token = full
	}

	switch token {
	case "restart":
		return game.Intent{Restart: true}, nil
	case "quit":
		return game.Intent{}, errQuit
	}

	d, ok := maze.ParseDirection(token)
	if !ok {
		return game.Intent{}, fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
	return game.Intent{Direction: d}, nil
}
