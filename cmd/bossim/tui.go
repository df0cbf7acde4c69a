package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bossfight/arena"
	"github.com/milk9111/bossfight/boss"
	"github.com/milk9111/bossfight/encounter"
)

const (
	gridCols = 49
	gridRows = 17

	playerStep = 0.5
	hitDamage  = 1.0
	maxSpeed   = 8
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	arenaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C"))

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	healthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B03A48"))

	logStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type tickMsg time.Time

type model struct {
	enc      *encounter.Encounter
	interval time.Duration
	speed    int
	paused   bool
	err      error

	log    viewport.Model
	width  int
	height int
}

func newModel(enc *encounter.Encounter, interval time.Duration) model {
	return model{
		enc:      enc,
		interval: interval,
		speed:    1,
		log:      viewport.New(gridCols+2, 8),
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case " ":
			m.enc.Damage(hitDamage)
		case "r":
			if err := m.enc.Restart(); err != nil {
				m.err = err
			}
		case "p":
			m.paused = !m.paused
		case "n":
			if m.paused {
				m.enc.Update()
			}
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-":
			m.speed = max(m.speed/2, 1)
		case "up", "w":
			m.enc.MovePlayer(cp.Vector{Y: playerStep})
		case "down", "s":
			m.enc.MovePlayer(cp.Vector{Y: -playerStep})
		case "left", "a":
			m.enc.MovePlayer(cp.Vector{X: -playerStep})
		case "right", "d":
			m.enc.MovePlayer(cp.Vector{X: playerStep})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Height = max(msg.Height-gridRows-8, 4)

	case tickMsg:
		if !m.paused {
			for i := 0; i < m.speed; i++ {
				m.enc.Update()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	s := m.enc.Snapshot()

	m.log.SetContent(logStyle.Render(strings.Join(s.Log, "\n")))
	m.log.GotoBottom()

	board := arenaStyle.Render(renderGrid(s))
	main := lipgloss.JoinHorizontal(lipgloss.Top, board, renderState(m.enc.Spec().Name, s, m.speed, m.paused))

	help := helpStyle.Render("space: hit  arrows: move  r: restart  p: pause  n: step  +/-: speed  q: quit")
	parts := []string{main, titleStyle.Render("EVENTS"), m.log.View(), help}
	if m.err != nil {
		parts = append(parts, healthStyle.Render("error: "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderState(name string, s encounter.Snapshot, speed int, paused bool) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(name)) + "\n")
	fmt.Fprintf(&b, "%s\n", healthStyle.Render(bar(s.BossHealth, 20)))
	fmt.Fprintf(&b, "state    %s\n", stateLabel(s))
	fmt.Fprintf(&b, "station  %s\n", s.Position)
	fmt.Fprintf(&b, "rotation %.0f\n", s.Rotation)
	fmt.Fprintf(&b, "actions  %d\n\n", s.Actions)

	b.WriteString(titleStyle.Render("WEIGHTS") + "\n")
	total := s.Weights.Total()
	for i, w := range s.Weights {
		share := 0.0
		if total > 0 {
			share = float64(w) / float64(total)
		}
		fmt.Fprintf(&b, "%-15s %2d %s\n", boss.ActionKind(i), w, bar(share, 10))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("PLAYER") + "\n")
	fmt.Fprintf(&b, "health   %.0f/%.0f\n", s.PlayerHealth, s.PlayerMax)
	fmt.Fprintf(&b, "enemies  %d\n", s.Enemies)
	fmt.Fprintf(&b, "music    %s\n", orNone(s.Music))
	fmt.Fprintf(&b, "sounds   %s\n\n", orNone(strings.Join(s.Sounds, ",")))

	clock := fmt.Sprintf("frame %d  %.1fs  x%d", s.Frame, s.Elapsed, speed)
	if paused {
		clock += "  paused"
	}
	b.WriteString(clock)
	return stateStyle.Render(b.String())
}

func stateLabel(s encounter.Snapshot) string {
	switch {
	case !s.Ready:
		return "starting"
	case s.Acting:
		label := "acting " + s.Action.Executed.String()
		if s.Action.Masked() {
			label += " (drew " + s.Action.Drawn.String() + ")"
		}
		return label
	case s.State == boss.Idle:
		return fmt.Sprintf("idle %.1f/%.1f", s.Idle, s.Cooldown)
	default:
		return s.State.String()
	}
}

func bar(fraction float64, width int) string {
	filled := int(math.Round(cp.Clamp01(fraction) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// renderGrid draws the arena as a character grid with +Y up.
func renderGrid(s encounter.Snapshot) string {
	grid := make([][]rune, gridRows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", gridCols))
	}

	bb := s.Layout.Bounds()
	cell := func(p cp.Vector) (int, int, bool) {
		fx := (p.X - bb.L) / (bb.R - bb.L)
		fy := (bb.T - p.Y) / (bb.T - bb.B)
		col := int(math.Round(fx * float64(gridCols-1)))
		row := int(math.Round(fy * float64(gridRows-1)))
		if col < 0 || col >= gridCols || row < 0 || row >= gridRows {
			return 0, 0, false
		}
		return col, row, true
	}
	plot := func(p cp.Vector, ch rune) {
		if col, row, ok := cell(p); ok {
			grid[row][col] = ch
		}
	}

	for _, p := range arena.Positions() {
		plot(s.Layout.Coord(p), '+')
	}
	for _, beam := range s.Beams {
		const samples = 40
		for i := 0; i <= samples; i++ {
			plot(beam.Start.Lerp(beam.End, float64(i)/samples), '|')
		}
	}
	for _, e := range s.Entities {
		plot(e.Pos, glyph(e))
	}

	lines := make([]string, gridRows)
	for r, row := range grid {
		lines[r] = string(row)
	}
	return strings.Join(lines, "\n")
}

func glyph(e encounter.EntityView) rune {
	switch e.Kind {
	case encounter.KindBoss:
		if !e.Alive {
			return 'X'
		}
		return 'B'
	case encounter.KindPlayer:
		return '@'
	case encounter.KindRocket:
		if !e.Alive {
			return '*'
		}
		return '^'
	default:
		if !e.Alive {
			return 'o'
		}
		return 'd'
	}
}
