package system

import (
	"context"

	"github.com/milk9111/bossfight/boss"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/milk9111/bossfight/ecs/system"

type bossMetrics struct {
	actions metric.Int64Counter
	defeats metric.Int64Counter
	damage  metric.Float64Counter
}

// newBossMetrics registers the encounter counters on meter. A nil meter uses
// the global provider, which records nothing until one is installed.
func newBossMetrics(meter metric.Meter) (bossMetrics, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	var m bossMetrics
	var err error
	if m.actions, err = meter.Int64Counter("boss.actions",
		metric.WithDescription("Boss actions started"),
		metric.WithUnit("{action}")); err != nil {
		return noopBossMetrics(), err
	}
	if m.defeats, err = meter.Int64Counter("boss.defeats",
		metric.WithDescription("Bosses defeated"),
		metric.WithUnit("{boss}")); err != nil {
		return noopBossMetrics(), err
	}
	if m.damage, err = meter.Float64Counter("boss.damage",
		metric.WithDescription("Damage dealt to bosses")); err != nil {
		return noopBossMetrics(), err
	}
	return m, nil
}

func noopBossMetrics() bossMetrics {
	m, _ := newBossMetrics(noop.NewMeterProvider().Meter(meterName))
	return m
}

func (m bossMetrics) action(sel boss.Selection) {
	m.actions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("drawn", sel.Drawn.String()),
		attribute.String("executed", sel.Executed.String()),
		attribute.Bool("forced", sel.Forced),
	))
}

func (m bossMetrics) defeated() {
	m.defeats.Add(context.Background(), 1)
}

func (m bossMetrics) damaged(amount float64) {
	m.damage.Add(context.Background(), amount)
}
