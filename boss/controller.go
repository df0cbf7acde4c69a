package boss

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/rs/zerolog"
)

// State is the controller's top-level state.
type State int

const (
	Dormant State = iota
	Idle
	Acting
	Defeated
)

func (s State) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Idle:
		return "idle"
	case Acting:
		return "acting"
	case Defeated:
		return "defeated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Hooks observe controller transitions. Any field may be nil.
type Hooks struct {
	OnWake     func()
	OnAction   func(Selection)
	OnDefeated func()
}

type Option func(*Controller)

func WithRand(rng Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log.With().Str("component", "boss").Logger()
	}
}

func WithHooks(h Hooks) Option {
	return func(c *Controller) {
		c.hooks = h
	}
}

var ErrNilSink = errors.New("boss: nil sink")

// Controller runs one boss through an encounter. It is advanced by Update
// once per frame and reacts to the three signal methods. It is not safe for
// concurrent use.
type Controller struct {
	cfg   Config
	sink  Sink
	rng   Rand
	log   zerolog.Logger
	hooks Hooks

	scheduler *Scheduler
	router    arena.Router

	state    State
	position arena.Position
	body     body
	weights  Weights

	active   sequence
	current  Selection
	cooldown float64
	idle     float64
}

func New(cfg Config, sink Sink, opts ...Option) (*Controller, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      cfg,
		sink:     sink,
		log:      zerolog.Nop(),
		router:   arena.Router{Style: cfg.RouteStyle},
		state:    Dormant,
		position: cfg.Start,
		weights:  NewWeights(),
		cooldown: cfg.Cooldown.Base,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.scheduler = NewScheduler(c.rng)
	c.body.pos = cfg.Layout.Coord(cfg.Start)
	return c, nil
}

// Update advances the controller by dt seconds.
func (c *Controller) Update(dt float64) {
	if !(dt >= 0) {
		dt = 0
	}

	switch c.state {
	case Acting:
		if c.active != nil && c.active.Step(dt) {
			c.finishAction()
		}
	case Idle:
		c.idle += dt
		if c.idle >= c.cooldown {
			sel, next := c.scheduler.Select(c.position, c.weights)
			c.weights = next
			c.begin(sel)
		}
	}
}

// OnDamage reports a hit and the boss's remaining health fraction.
func (c *Controller) OnDamage(amount, healthFraction float64) {
	if c.state == Defeated {
		return
	}
	c.sink.ReportHealthFraction(healthFraction)
	c.log.Debug().Float64("amount", amount).Float64("health", healthFraction).Str("state", c.state.String()).Msg("boss damaged")

	if healthFraction <= 0 {
		c.defeat()
		return
	}
	if c.state == Dormant {
		c.wake()
	}
}

// OnAnimationStateReached forwards an animator state to the running action.
func (c *Controller) OnAnimationStateReached(state string) {
	if l, ok := c.active.(animationListener); ok {
		l.animationStateReached(state)
	}
}

// OnChildEntitySpawned forwards a finished spawn-in to the running action.
func (c *Controller) OnChildEntitySpawned(id EntityID) {
	if l, ok := c.active.(spawnListener); ok {
		l.childSpawned(id)
	}
}

func (c *Controller) wake() {
	c.log.Info().Str("position", c.position.String()).Msg("boss woke")
	c.sink.PlayAudioCue(c.cfg.Audio.Wake)
	c.sink.SetBackgroundMusic("")
	if c.hooks.OnWake != nil {
		c.hooks.OnWake()
	}
	c.begin(Selection{Drawn: Move, Executed: Move, Forced: true})
}

func (c *Controller) begin(sel Selection) {
	c.state = Acting
	c.current = sel
	c.sink.SetAnimatorTrigger(TriggerAction)

	e := env{cfg: &c.cfg, sink: c.sink, rng: c.rng, body: &c.body}
	switch sel.Executed {
	case SummonDrones:
		c.active = newSummonSequence(e)
	case LaunchRockets:
		c.active = newBarrageSequence(e)
	case FireLaser:
		c.active = newLaserSequence(e, c.position)
	default:
		c.active = newMoveSequence(e, c.router, c.position, sel.Forced, c.commitPosition)
	}

	c.log.Debug().
		Str("drawn", sel.Drawn.String()).
		Str("executed", sel.Executed.String()).
		Str("position", c.position.String()).
		Str("weights", c.weights.String()).
		Msg("boss action")
	if c.hooks.OnAction != nil {
		c.hooks.OnAction(sel)
	}
}

func (c *Controller) commitPosition(p arena.Position) {
	c.position = p
}

func (c *Controller) finishAction() {
	c.active = nil
	c.state = Idle
	c.idle = 0
	c.cooldown = c.nextCooldown()
	c.sink.SetAnimatorTrigger(TriggerIdle)
}

func (c *Controller) nextCooldown() float64 {
	cd := c.cfg.Cooldown.Base + c.cfg.Cooldown.Variance*(2*c.rng.Float64()-1)
	if cd < 0 {
		return 0
	}
	return cd
}

func (c *Controller) defeat() {
	if c.active != nil {
		c.active.Abort()
		c.active = nil
	}
	c.state = Defeated
	c.log.Info().Str("position", c.position.String()).Msg("boss defeated")
	c.sink.SetAnimatorTrigger(TriggerExplode)
	c.sink.PlayAudioCue(c.cfg.Audio.Explode)
	c.sink.ReportDefeated()
	if c.hooks.OnDefeated != nil {
		c.hooks.OnDefeated()
	}
}

func (c *Controller) State() State {
	return c.state
}

// Position is the last station the boss arrived at.
func (c *Controller) Position() arena.Position {
	return c.position
}

// Coord is the boss's current world coordinate, including shake and travel.
func (c *Controller) Coord() cp.Vector {
	return c.body.pos
}

// Rotation is the boss's facing in degrees.
func (c *Controller) Rotation() float64 {
	return c.body.rotation
}

func (c *Controller) Weights() Weights {
	return c.weights
}

// CurrentAction returns the running selection while Acting.
func (c *Controller) CurrentAction() (Selection, bool) {
	if c.state != Acting {
		return Selection{}, false
	}
	return c.current, true
}

// Cooldown returns the idle time elapsed and the time until the next action.
func (c *Controller) Cooldown() (elapsed, period float64) {
	return c.idle, c.cooldown
}

func (c *Controller) Config() Config {
	return c.cfg
}
