package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrInterrupted = errors.New("factbot setup interrupted")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single interactive screen of the setup wizard.
// Update returns nil once the step is complete.
type Step interface {
	Init(state *InstallState) tea.Cmd
	Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd)
	View(state *InstallState) string
}

// Skipper is implemented by steps that only apply to some providers.
type Skipper interface {
	Skip(state *InstallState) bool
}

// Action is a non-interactive step executed as soon as the wizard reaches it.
type Action interface {
	Run(state *InstallState) error
}

func getSteps(runtimePath string) []Step {
	return []Step{
		NewProviderStep(),
		NewBaseURLStep(),
		NewAPIKeyStep(),
		NewModelStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(runtimePath),
	}
}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	done        bool
	err         error
}

func newModel(steps []Step) model {
	return model{
		steps: steps,
		state: NewInstallState(),
	}
}

func (m model) Init() tea.Cmd {
	return m.enter()
}

// enter runs skipped and automatic steps until an interactive one is
// reached, then initializes it.
func (m *model) enter() tea.Cmd {
	for m.currentStep < len(m.steps) {
		step := m.steps[m.currentStep]

		if s, ok := step.(Skipper); ok && s.Skip(m.state) {
			m.currentStep++
			continue
		}
		if a, ok := step.(Action); ok {
			if err := a.Run(m.state); err != nil {
				m.err = err
				return nil
			}
			m.currentStep++
			continue
		}
		return step.Init(m.state)
	}

	m.done = true
	return tea.Quit
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting || m.done {
		return m, tea.Quit
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.err != nil || m.currentStep >= len(m.steps) {
		return m, nil
	}

	next, cmd := m.steps[m.currentStep].Update(msg, m.state)
	if next == nil {
		m.currentStep++
		return m, m.enter()
	}

	m.steps[m.currentStep] = next
	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return "Setup cancelled.\n"
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(press ctrl+c to quit)\n"
	}

	if m.done || m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("FactBot setup") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and writes the collected settings to
// <runtimePath>/.env.
func RunWizard(runtimePath string) (*InstallState, error) {
	p := tea.NewProgram(newModel(getSteps(runtimePath)), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	final := m.(model)
	if final.quitting {
		return nil, ErrInterrupted
	}
	if final.err != nil {
		return nil, final.err
	}

	return final.state, nil
}
