package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-ballmaze/game"
	"github.com/beka-birhanu/vinom-ballmaze/game/layout"
	"github.com/beka-birhanu/vinom-ballmaze/game/maze"
	"github.com/beka-birhanu/vinom-ballmaze/service/i"
	"github.com/google/uuid"
)

const defaultImpulse = 5

var (
	ErrNoRound           = errors.New("no active round")
	ErrMissingDependency = errors.New("missing dependency")
)

// Round is one maze and the bodies built from it.
type Round struct {
	ID        uuid.UUID
	Maze      *maze.Maze
	Scene     layout.Scene
	StartedAt time.Time
}

// RoundManager owns the active round: it generates mazes, hands their bodies
// to the physics world, routes contacts and player intents, and restarts.
type RoundManager struct {
	world   i.PhysicsWorld
	input   i.InputSource
	newRNG  func() maze.RNG
	rows    int
	cols    int
	layout  layout.Config
	impulse float64
	onWin   func(*Round)
	onStart func(*Round)
	logger  i.Logger
	current *Round
	win     game.WinDetector
	sync.RWMutex
}

type Config struct {
	World      i.PhysicsWorld  // Required
	Input      i.InputSource   // Optional; Run ends when its stream closes
	RNGFactory func() maze.RNG // Called once per round for fresh randomness
	Rows       int             // Maze rows
	Cols       int             // Maze columns
	Layout     layout.Config   // Scene geometry
	Impulse    float64         // Velocity delta per intent; defaults to 5
	OnStart    func(*Round)    // Called after every round's bodies are in the world
	OnWin      func(*Round)    // Called once per round when the ball reaches the goal
	Logger     i.Logger        // Required
}

func NewRoundManager(c *Config) (*RoundManager, error) {
	switch {
	case c.World == nil:
		return nil, fmt.Errorf("%w: physics world", ErrMissingDependency)
	case c.RNGFactory == nil:
		return nil, fmt.Errorf("%w: rng factory", ErrMissingDependency)
	case c.Logger == nil:
		return nil, fmt.Errorf("%w: logger", ErrMissingDependency)
	}

	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if err := c.Layout.Validate(); err != nil {
		return nil, err
	}

	impulse := c.Impulse
	if impulse <= 0 {
		impulse = defaultImpulse
	}

	return &RoundManager{
		world:   c.World,
		input:   c.Input,
		newRNG:  c.RNGFactory,
		rows:    c.Rows,
		cols:    c.Cols,
		layout:  c.Layout,
		impulse: impulse,
		onWin:   c.OnWin,
		onStart: c.OnStart,
		logger:  c.Logger,
	}, nil
}

// Start generates a maze with fresh randomness and adds every body to the world.
func (r *RoundManager) Start() (*Round, error) {
	r.Lock()
	defer r.Unlock()
	return r.start()
}

// Restart discards the active round and its bodies, then starts a new one
// with the same configuration.
func (r *RoundManager) Restart() (*Round, error) {
	r.Lock()
	defer r.Unlock()

	if err := r.world.Clear(); err != nil {
		r.logger.Error(fmt.Sprintf("clearing world for restart: %s", err))
		return nil, err
	}
	if r.current != nil {
		r.logger.Info(fmt.Sprintf("discarded round %s", r.current.ID))
	}
	r.current = nil
	return r.start()
}

func (r *RoundManager) start() (*Round, error) {
	m, err := maze.Generate(r.rows, r.cols, r.newRNG())
	if err != nil {
		r.logger.Error(fmt.Sprintf("generating maze: %s", err))
		return nil, err
	}

	scene, err := layout.Build(m, r.layout)
	if err != nil {
		r.logger.Error(fmt.Sprintf("laying out maze: %s", err))
		return nil, err
	}

	if err := r.world.Add(scene.Obstacles); err != nil {
		r.logger.Error(fmt.Sprintf("adding bodies to world: %s", err))
		return nil, err
	}

	round := &Round{
		ID:        uuid.New(),
		Maze:      m,
		Scene:     scene,
		StartedAt: time.Now(),
	}
	r.current = round
	r.win.Reset()

	r.logger.Info(fmt.Sprintf("started round %s: %dx%d maze, %d walls", round.ID, m.Rows, m.Cols, scene.WallCount()))
	if r.onStart != nil {
		r.onStart(round)
	}
	return round, nil
}

// Current returns the active round, or nil before the first Start.
func (r *RoundManager) Current() *Round {
	r.RLock()
	defer r.RUnlock()
	return r.current
}

// HandleContact reports whether c won the active round. It returns true at most once per round.
func (r *RoundManager) HandleContact(c game.Contact) bool {
	round := r.Current()
	if round == nil {
		return false
	}

	if !r.win.Observe(c) {
		r.logger.Debug(fmt.Sprintf("contact %s/%s", c.A, c.B))
		return false
	}

	r.logger.Info(fmt.Sprintf("round %s won after %s", round.ID, time.Since(round.StartedAt).Round(time.Millisecond)))
	if r.onWin != nil {
		r.onWin(round)
	}
	return true
}

// HandleIntent pushes the ball, or restarts the round for a restart intent.
func (r *RoundManager) HandleIntent(in game.Intent) error {
	if in.Restart {
		_, err := r.Restart()
		return err
	}

	if r.Current() == nil {
		return ErrNoRound
	}

	dx, dy := in.Velocity(r.impulse)
	return r.world.ApplyVelocity(layout.LabelBall, dx, dy)
}

// Run serves contacts and intents on the calling goroutine until ctx is done,
// the world's contact stream closes, or the input stream closes.
func (r *RoundManager) Run(ctx context.Context) error {
	contacts := r.world.Contacts()

	var intents <-chan game.Intent
	if r.input != nil {
		intents = r.input.Intents()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-contacts:
			if !ok {
				r.logger.Info("contact stream closed")
				return nil
			}
			r.HandleContact(c)
		case in, ok := <-intents:
			if !ok {
				r.logger.Info("input stream closed")
				return nil
			}
			if err := r.HandleIntent(in); err != nil {
				r.logger.Warn(fmt.Sprintf("handling intent: %s", err))
			}
		}
	}
}
