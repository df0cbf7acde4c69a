package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
	"github.com/milk9111/bossfight/prefabs"
	"github.com/rs/zerolog"
)

const bossHookDispatchScript = `
if __hook == "wake" {
	on_wake(__engine)
} else if __hook == "action" {
	on_action(__engine, __drawn, __executed)
} else if __hook == "defeated" {
	on_defeated(__engine)
}
`

// BossScript runs the tengo hooks on_wake, on_action and on_defeated of a
// boss prefab. A script must define all three.
type BossScript struct {
	path     string
	compiled *tengo.Compiled
	log      zerolog.Logger
}

// LoadBossScript compiles the script at path. The scripts directory prefix
// may be omitted.
func LoadBossScript(path string, log zerolog.Logger) (*BossScript, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("boss script: empty path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("boss script: load %q: %w", path, err)
	}
	return compileBossScript(path, src, log)
}

func compileBossScript(path string, src []byte, log zerolog.Logger) (*BossScript, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + bossHookDispatchScript))
	_ = script.Add("__hook", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__drawn", "")
	_ = script.Add("__executed", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss script: compile %q: %w", path, err)
	}
	return &BossScript{
		path:     path,
		compiled: compiled,
		log:      log.With().Str("script", path).Logger(),
	}, nil
}

func (s *BossScript) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *BossScript) OnWake(w *ecs.World, e ecs.Entity) {
	s.run(w, e, "wake", boss.Selection{})
}

func (s *BossScript) OnAction(w *ecs.World, e ecs.Entity, sel boss.Selection) {
	s.run(w, e, "action", sel)
}

func (s *BossScript) OnDefeated(w *ecs.World, e ecs.Entity) {
	s.run(w, e, "defeated", boss.Selection{})
}

func (s *BossScript) run(w *ecs.World, e ecs.Entity, hook string, sel boss.Selection) {
	if s == nil || s.compiled == nil {
		return
	}
	if err := s.runHook(hook, s.buildEngine(w, e), sel); err != nil {
		s.log.Error().Err(err).Str("hook", hook).Msg("boss script failed")
		pushEvent(w, EventScriptFailed, hook)
	}
}

func (s *BossScript) runHook(hook string, engine *tengo.ImmutableMap, sel boss.Selection) error {
	if err := s.compiled.Set("__hook", hook); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__drawn", sel.Drawn.String()); err != nil {
		return err
	}
	if err := s.compiled.Set("__executed", sel.Executed.String()); err != nil {
		return err
	}
	return s.compiled.Run()
}

func (s *BossScript) buildEngine(w *ecs.World, e ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["play_audio"] = &tengo.UserFunction{Name: "play_audio", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		cue := strings.TrimSpace(objectAsString(args[0]))
		if cue == "" {
			return tengo.FalseValue, nil
		}
		PlayAudioCue(w, cue)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		s.log.Info().Msg(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["state"] = &tengo.UserFunction{Name: "state", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ctrl := controllerOf(w, e)
		if ctrl == nil {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: ctrl.State().String()}, nil
	}}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		ctrl := controllerOf(w, e)
		if ctrl == nil {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: ctrl.Position().String()}, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		hp, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok {
			return &tengo.Float{Value: 0}, nil
		}
		return &tengo.Float{Value: hp.Fraction()}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func controllerOf(w *ecs.World, e ecs.Entity) *boss.Controller {
	enc, ok := ecs.Get(w, e, component.BossEncounterComponent.Kind())
	if !ok {
		return nil
	}
	return enc.Controller
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
