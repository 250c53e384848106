package input

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-ballmaze/game"
	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	warnings []string
}

func (r *recordingLogger) Debug(string)    {}
func (r *recordingLogger) Info(string)     {}
func (r *recordingLogger) Warn(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingLogger) Error(string)    {}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		token string
		want  game.Intent
	}{
		{token: "up", want: game.Intent{Direction: maze.Up}},
		{token: "W", want: game.Intent{Direction: maze.Up}},
		{token: "right", want: game.Intent{Direction: maze.Right}},
		{token: "d", want: game.Intent{Direction: maze.Right}},
		{token: "down", want: game.Intent{Direction: maze.Down}},
		{token: "a", want: game.Intent{Direction: maze.Left}},
		{token: "restart", want: game.Intent{Restart: true}},
		{token: "r", want: game.Intent{Restart: true}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseIntent(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseIntent("jump")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func collect(l *LineReader) <-chan []game.Intent {
	out := make(chan []game.Intent, 1)
	go func() {
		var got []game.Intent
		for in := range l.Intents() {
			got = append(got, in)
		}
		out <- got
	}()
	return out
}

func TestLineReader(t *testing.T) {
	t.Run("Reads until EOF and skips unknown commands", func(t *testing.T) {
		logger := &recordingLogger{}
		l := NewLineReader(strings.NewReader("up left\njump\n  r  \ndown\n"), logger)
		got := collect(l)

		require.NoError(t, l.Run(context.Background()))
		assert.Equal(t, []game.Intent{
			{Direction: maze.Up},
			{Direction: maze.Left},
			{Restart: true},
			{Direction: maze.Down},
		}, <-got)
		assert.Len(t, logger.warnings, 1)
	})

	t.Run("Stops at quit", func(t *testing.T) {
		l := NewLineReader(strings.NewReader("right quit left\n"), &recordingLogger{})
		got := collect(l)

		require.NoError(t, l.Run(context.Background()))
		assert.Equal(t, []game.Intent{{Direction: maze.Right}}, <-got)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		l := NewLineReader(strings.NewReader("up\n"), &recordingLogger{})
		assert.ErrorIs(t, l.Run(ctx), context.Canceled)
	})

	t.Run("Stops while the reader is blocked", func(t *testing.T) {
		r, w := io.Pipe()
		t.Cleanup(func() { _ = w.Close() })

		l := NewLineReader(r, &recordingLogger{})
		ctx, cancel := context.WithCancel(context.Background())
		errs := make(chan error, 1)
		go func() { errs <- l.Run(ctx) }()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-errs:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancel")
		}
		_, open := <-l.Intents()
		assert.False(t, open)
	})

	t.Run("Reports read errors", func(t *testing.T) {
		r, w := io.Pipe()
		boom := errors.New("boom")
		require.NoError(t, w.CloseWithError(boom))

		l := NewLineReader(r, &recordingLogger{})
		assert.ErrorIs(t, l.Run(context.Background()), boom)
	})
}
