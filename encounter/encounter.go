package encounter

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/ecs/entity"
	"github.com/milk9111/bossfight/ecs/system"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

const logLines = 12

var ErrNilSpec = errors.New("encounter: nil boss spec")

type Option func(*Encounter)

func WithLogger(log zerolog.Logger) Option {
	return func(e *Encounter) {
		e.log = log
	}
}

// WithSeed fixes the boss's random source. Zero picks a fresh seed on every
// restart.
func WithSeed(seed uint64) Option {
	return func(e *Encounter) {
		e.seed = seed
	}
}

func WithFrameTime(dt float64) Option {
	return func(e *Encounter) {
		e.frameTime = dt
	}
}

// WithScripting toggles the prefab's tengo hooks.
func WithScripting(enabled bool) Option {
	return func(e *Encounter) {
		e.scripting = enabled
	}
}

// WithEventSink receives every formatted event line as it is recorded.
func WithEventSink(fn func(line string)) Option {
	return func(e *Encounter) {
		e.sink = fn
	}
}

func WithMeter(meter metric.Meter) Option {
	return func(e *Encounter) {
		e.meter = meter
	}
}

// Encounter is one boss fight: a world, its systems, the boss, the player
// and the supporting audio entities. Both front-ends drive it one frame at a
// time; it is not safe for concurrent use.
type Encounter struct {
	spec      *prefabs.BossSpec
	source    string
	cfg       boss.Config
	log       zerolog.Logger
	seed      uint64
	frameTime float64
	scripting bool
	meter     metric.Meter
	sink      func(string)

	world    *ecs.World
	boss     ecs.Entity
	player   ecs.Entity
	script   *system.BossScript
	lines    []string
	restarts int
}

// Load reads the named boss prefab and starts an encounter with it.
func Load(prefab string, opts ...Option) (*Encounter, error) {
	spec, err := prefabs.LoadBossSpec(prefab)
	if err != nil {
		return nil, fmt.Errorf("encounter: %w", err)
	}
	return New(spec, append(opts, withSource(prefab))...)
}

func withSource(prefab string) Option {
	return func(e *Encounter) {
		e.source = prefab
	}
}

func New(spec *prefabs.BossSpec, opts ...Option) (*Encounter, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	e := &Encounter{
		log:       zerolog.Nop(),
		frameTime: ecs.DefaultFrameTime,
		scripting: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.setSpec(spec); err != nil {
		return nil, err
	}
	if err := e.Restart(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Encounter) setSpec(spec *prefabs.BossSpec) error {
	cfg, err := spec.Config()
	if err != nil {
		return fmt.Errorf("encounter: %w", err)
	}

	var script *system.BossScript
	if e.scripting && spec.Script != "" {
		script, err = system.LoadBossScript(spec.Script, e.log)
		if err != nil {
			return fmt.Errorf("encounter: %w", err)
		}
	}

	e.spec = spec
	e.cfg = cfg
	e.script = script
	return nil
}

// Restart throws the current world away and starts the fight from the top.
func (e *Encounter) Restart() error {
	w := ecs.NewWorld()
	w.SetFrameTime(e.frameTime)
	e.lines = nil

	rng := e.newRand()
	opts := []system.BossSystemOption{
		system.WithBossRand(rng),
		system.WithBossLogger(e.log),
		system.WithMeter(e.meter),
	}
	if e.script != nil {
		opts = append(opts, system.WithBossScript(e.script))
	}

	ecs.NewScheduler(
		system.NewDamageSystem(),
		system.NewBossSystem(opts...),
		system.NewAnimationSystem(),
		system.NewEnemySystem(e.log),
		system.NewRocketSystem(),
		system.NewLaserSystem(),
		system.NewTTLSystem(),
		system.NewAudioSystem(),
		system.NewMusicSystem(e.log),
		system.NewEventRecorder(e.record),
	).Install(w)

	if _, err := entity.NewMusicPlayer(w); err != nil {
		return fmt.Errorf("encounter: %w", err)
	}
	if _, err := entity.NewAudioMixer(w); err != nil {
		return fmt.Errorf("encounter: %w", err)
	}
	player, err := entity.NewPlayer(w)
	if err != nil {
		return fmt.Errorf("encounter: %w", err)
	}
	b, err := entity.NewBoss(w, e.spec, e.cfg)
	if err != nil {
		return fmt.Errorf("encounter: %w", err)
	}

	e.world = w
	e.player = player
	e.boss = b
	e.restarts++
	e.log.Info().Str("boss", e.spec.Name).Int("restarts", e.restarts).Msg("encounter started")
	return nil
}

// Reload swaps in a new prefab and restarts. On error the running fight is
// left untouched.
func (e *Encounter) Reload(spec *prefabs.BossSpec) error {
	if spec == nil {
		return ErrNilSpec
	}
	prevSpec, prevCfg, prevScript := e.spec, e.cfg, e.script
	if err := e.setSpec(spec); err != nil {
		return err
	}
	if err := e.Restart(); err != nil {
		e.spec, e.cfg, e.script = prevSpec, prevCfg, prevScript
		return err
	}
	return nil
}

func (e *Encounter) newRand() *rand.Rand {
	seed := e.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (e *Encounter) record(evt ecs.Event) {
	line := fmt.Sprintf("%6.2fs %s", e.world.Elapsed(), system.FormatEvent(evt))
	if e.sink != nil {
		e.sink(line)
	}
	e.lines = append(e.lines, line)
	if len(e.lines) > logLines {
		e.lines = e.lines[len(e.lines)-logLines:]
	}
}

// Update advances the fight by one fixed frame.
func (e *Encounter) Update() {
	e.world.Update()
}

// Damage hits the boss.
func (e *Encounter) Damage(amount float64) {
	system.RequestDamage(e.world, e.boss, amount)
}

// DamageAt hits whatever damageable enemy sits under pos, boss first. It
// reports whether anything was hit.
func (e *Encounter) DamageAt(pos cp.Vector, amount float64) bool {
	if e.hitTest(e.boss, pos) {
		e.Damage(amount)
		return true
	}

	hit := false
	ecs.ForEach(e.world, component.EnemyBehaviorComponent.Kind(), func(en ecs.Entity, b *component.EnemyBehavior) {
		if hit || !b.Alive || !e.hitTest(en, pos) {
			return
		}
		system.RequestDamage(e.world, en, amount)
		hit = true
	})
	return hit
}

func (e *Encounter) hitTest(en ecs.Entity, pos cp.Vector) bool {
	t, ok := ecs.Get(e.world, en, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	shape, ok := ecs.Get(e.world, en, component.ShapeComponent.Kind())
	if !ok {
		return false
	}
	return pos.Distance(cp.Vector{X: t.X, Y: t.Y}) <= shape.Radius
}

// MovePlayer nudges the player, keeping them inside the arena.
func (e *Encounter) MovePlayer(delta cp.Vector) {
	t, ok := ecs.Get(e.world, e.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if hp, ok := ecs.Get(e.world, e.player, component.HealthComponent.Kind()); ok && hp.Dead() {
		return
	}
	bounds := e.cfg.Layout.Bounds()
	t.X = cp.Clamp(t.X+delta.X, bounds.L, bounds.R)
	t.Y = cp.Clamp(t.Y+delta.Y, bounds.B, bounds.T)
}

func (e *Encounter) World() *ecs.World {
	return e.world
}

func (e *Encounter) Config() boss.Config {
	return e.cfg
}

func (e *Encounter) Spec() *prefabs.BossSpec {
	return e.spec
}

// Controller is nil until the first Update.
func (e *Encounter) Controller() *boss.Controller {
	enc, ok := ecs.Get(e.world, e.boss, component.BossEncounterComponent.Kind())
	if !ok {
		return nil
	}
	return enc.Controller
}
