package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/epiforge/episim/internal/epi"
	"github.com/epiforge/episim/internal/integrators"
	"github.com/epiforge/episim/internal/scenario"
	"github.com/epiforge/episim/internal/sim"
)

const (
	graphWidth    = 80
	graphHeight   = 14
	historyWindow = 240
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// LiveModel steps the perturbed scenario in the terminal, plotting the
// infected curve as it evolves.
type LiveModel struct {
	sc           Scenario
	sys          *epi.SIR
	integ        sim.Integrator
	pulse        *scenario.Pulse
	x            sim.State
	t            float64
	stepsPerTick int
	history      []float64
	paused       bool
	done         bool
}

// Scenario is re-exported so the CLI does not need a second import just for
// the live view constructor.
type Scenario = scenario.Scenario

func NewLive(sc Scenario) (*LiveModel, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sys, err := epi.NewSIR(sc.Params)
	if err != nil {
		return nil, err
	}

	extra := sc.Delta
	var pulse *scenario.Pulse
	if sc.InjectAt > 0 {
		extra = 0
		pulse = &scenario.Pulse{Amount: sc.Delta, At: sc.InjectAt}
	}
	i0, s0, err := epi.Seeding(sc.Params, sc.Rate, extra)
	if err != nil {
		return nil, err
	}

	return &LiveModel{
		sc:           sc,
		sys:          sys,
		integ:        integrators.NewLagged(),
		pulse:        pulse,
		x:            sim.State{epi.IdxInfected: i0, epi.IdxSusceptible: s0},
		stepsPerTick: int(0.02/sc.Dt) + 1, // ~0.02 time units per frame
		history:      []float64{i0},
	}, nil
}

func (m *LiveModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			m.stepsPerTick *= 2
		case "-":
			if m.stepsPerTick > 1 {
				m.stepsPerTick /= 2
			}
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

func (m *LiveModel) advance() {
	for k := 0; k < m.stepsPerTick && !m.done; k++ {
		if m.pulse != nil {
			m.x = m.pulse.Apply(m.x, m.t)
		}
		m.x = m.integ.Step(m.sys, m.x, m.t, m.sc.Dt)
		m.t += m.sc.Dt
		if m.t >= m.sc.Horizon {
			m.done = true
		}
	}
	m.history = append(m.history, m.x[epi.IdxInfected])
	if len(m.history) > historyWindow {
		m.history = m.history[len(m.history)-historyWindow:]
	}
}

func (m *LiveModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("episim live: infected"))
	b.WriteString("\n")

	graph := asciigraph.Plot(m.history,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n\n")

	i := m.x[epi.IdxInfected]
	s := m.x[epi.IdxSusceptible]
	severe := i * m.sc.Capacity.Severe
	capacity := m.sc.Params.Pop * m.sc.Capacity.Threshold

	rows := []struct {
		label string
		value string
	}{
		{"time", fmt.Sprintf("%.2f / %.0f", m.t, m.sc.Horizon)},
		{"infected", fmt.Sprintf("%.0f", i)},
		{"susceptible", fmt.Sprintf("%.0f", s)},
		{"recovered", fmt.Sprintf("%.0f", m.sys.Recovered(m.x))},
		{"severe load", fmt.Sprintf("%.0f / %.0f", severe, capacity)},
		{"speed", fmt.Sprintf("%d steps/frame", m.stepsPerTick)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if severe >= capacity {
		b.WriteString(alertStyle.Render("hospital capacity exceeded"))
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(valueStyle.Render("run complete"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · +/- speed · q quit"))
	b.WriteString("\n")

	return b.String()
}

// RunLive drives the live view until the user quits.
func RunLive(sc Scenario) error {
	m, err := NewLive(sc)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
