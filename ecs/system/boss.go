package system

import (
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// BossSystem drives every BossEncounter: it builds the controller on first
// sight, forwards animation and damage signals, steps it, and copies its
// placement back onto the Transform.
type BossSystem struct {
	log     zerolog.Logger
	rng     boss.Rand
	script  *BossScript
	meter   metric.Meter
	metrics bossMetrics
}

type BossSystemOption func(*BossSystem)

// WithBossRand shares one random source across controllers.
func WithBossRand(rng boss.Rand) BossSystemOption {
	return func(s *BossSystem) {
		s.rng = rng
	}
}

func WithBossLogger(log zerolog.Logger) BossSystemOption {
	return func(s *BossSystem) {
		s.log = log
	}
}

func WithBossScript(script *BossScript) BossSystemOption {
	return func(s *BossSystem) {
		s.script = script
	}
}

func WithMeter(meter metric.Meter) BossSystemOption {
	return func(s *BossSystem) {
		s.meter = meter
	}
}

func NewBossSystem(opts ...BossSystemOption) *BossSystem {
	s := &BossSystem{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	m, err := newBossMetrics(s.meter)
	if err != nil {
		s.log.Warn().Err(err).Msg("boss metrics disabled")
	}
	s.metrics = m
	return s
}

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w,
		component.BossEncounterComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, enc *component.BossEncounter, t *component.Transform) {
			if enc.Controller == nil && !s.initialize(w, e, enc) {
				return
			}
			ctrl := enc.Controller

			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				for _, state := range anim.Reached {
					ctrl.OnAnimationStateReached(state)
				}
			}
			if hit, ok := ecs.Get(w, e, component.DamageTakenComponent.Kind()); ok {
				s.metrics.damaged(hit.Amount)
				ctrl.OnDamage(hit.Amount, hit.Fraction)
			}

			ctrl.Update(w.FrameTime())

			pos := ctrl.Coord()
			t.X = pos.X
			t.Y = pos.Y
			t.Rotation = ctrl.Rotation()
		})
}

func (s *BossSystem) initialize(w *ecs.World, e ecs.Entity, enc *component.BossEncounter) bool {
	log := s.log.With().Stringer("entity", e).Logger()
	sink := &WorldSink{World: w, Boss: e, Log: log}

	opts := []boss.Option{
		boss.WithLogger(log),
		boss.WithHooks(s.hooks(w, e, enc)),
	}
	if s.rng != nil {
		opts = append(opts, boss.WithRand(s.rng))
	}

	ctrl, err := boss.New(enc.Config, sink, opts...)
	if err != nil {
		log.Error().Err(err).Msg("boss controller not created")
		return false
	}
	enc.Controller = ctrl

	if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		sink.ReportHealthFraction(hp.Fraction())
	}
	if track := enc.Config.Music.Dormant; track != "" {
		sink.SetBackgroundMusic(track)
	}
	log.Info().Str("position", ctrl.Position().String()).Msg("boss ready")
	return true
}

func (s *BossSystem) hooks(w *ecs.World, e ecs.Entity, enc *component.BossEncounter) boss.Hooks {
	return boss.Hooks{
		OnWake: func() {
			pushEvent(w, EventBossWoke, nil)
			s.script.OnWake(w, e)
		},
		OnAction: func(sel boss.Selection) {
			enc.Actions++
			s.metrics.action(sel)
			pos := ""
			if enc.Controller != nil {
				pos = enc.Controller.Position().String()
			}
			pushEvent(w, EventBossAction, ActionEvent{
				Drawn:    sel.Drawn.String(),
				Executed: sel.Executed.String(),
				Position: pos,
			})
			s.script.OnAction(w, e, sel)
		},
		OnDefeated: func() {
			s.metrics.defeated()
			pushEvent(w, EventBossDefeated, nil)
			s.script.OnDefeated(w, e)
		},
	}
}
