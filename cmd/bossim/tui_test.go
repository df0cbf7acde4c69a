package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/encounter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func testEncounter(t *testing.T, opts ...encounter.Option) *encounter.Encounter {
	t.Helper()
	opts = append([]encounter.Option{
		encounter.WithSeed(7),
		encounter.WithMeter(noop.NewMeterProvider().Meter("test")),
	}, opts...)
	enc, err := encounter.Load("boss.yaml", opts...)
	require.NoError(t, err)
	return enc
}

func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModelTicksAdvanceEncounter(t *testing.T) {
	enc := testEncounter(t)
	m := send(newModel(enc, time.Millisecond), tickMsg{}, tickMsg{})

	assert.Equal(t, uint64(2), enc.Snapshot().Frame)

	view := m.View()
	assert.Contains(t, view, "SENTINEL")
	assert.Contains(t, view, "dormant")
	assert.Contains(t, view, "B")
	assert.Contains(t, view, "@")
}

func TestModelHitWakesBoss(t *testing.T) {
	enc := testEncounter(t)
	m := send(newModel(enc, time.Millisecond), tickMsg{}, key(" "), tickMsg{}, tickMsg{})

	assert.NotEqual(t, boss.Dormant, enc.Snapshot().State)
	assert.Contains(t, m.View(), "boss_woke")
}

func TestModelPauseAndStep(t *testing.T) {
	enc := testEncounter(t)
	m := send(newModel(enc, time.Millisecond), key("p"), tickMsg{}, tickMsg{})
	assert.Zero(t, enc.Snapshot().Frame)

	send(m, key("n"))
	assert.Equal(t, uint64(1), enc.Snapshot().Frame)
}

func TestModelSpeed(t *testing.T) {
	enc := testEncounter(t)
	m := send(newModel(enc, time.Millisecond), key("+"), key("+"), tickMsg{})
	assert.Equal(t, uint64(4), enc.Snapshot().Frame)

	for i := 0; i < 10; i++ {
		m = send(m, key("+"))
	}
	assert.Equal(t, maxSpeed, m.(model).speed)
}

func TestModelQuit(t *testing.T) {
	_, cmd := newModel(testEncounter(t), time.Millisecond).Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderGridPlacesStations(t *testing.T) {
	enc := testEncounter(t)
	grid := renderGrid(enc.Snapshot())
	lines := strings.Split(grid, "\n")
	require.Len(t, lines, gridRows)

	assert.Equal(t, 'B', []rune(lines[0])[0], "boss starts top left")
	assert.Equal(t, '+', []rune(lines[0])[gridCols-1])
	assert.Equal(t, '+', []rune(lines[gridRows-1])[0])
	assert.Equal(t, '+', []rune(lines[gridRows/2])[gridCols/2])
}

func TestRunHeadlessStreamsEvents(t *testing.T) {
	var lines []string
	enc := testEncounter(t, encounter.WithEventSink(func(line string) {
		lines = append(lines, line)
	}))

	runHeadless(enc, 600, 30)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "music_changed")

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "boss_woke")
	assert.Contains(t, joined, "boss_action")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", bar(0.5, 10))
	assert.Equal(t, "░░░░", bar(-1, 4))
	assert.Equal(t, "████", bar(2, 4))
}
