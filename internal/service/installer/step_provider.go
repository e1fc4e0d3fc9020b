package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type providerChoice struct {
	id    string
	title string
}

var providerChoices = []providerChoice{
	{"openai", "OpenAI"},
	{"anthropic", "Anthropic"},
	{"openrouter", "OpenRouter"},
	{"ollama", "Ollama"},
	{"custom", "Custom (OpenAI compatible)"},
}

// ProviderStep allows selection of the LLM provider used to generate facts
type ProviderStep struct {
	cursor int
}

func NewProviderStep() Step {
	return &ProviderStep{}
}

func (s *ProviderStep) Init(state *InstallState) tea.Cmd {
	return nil
}

func (s *ProviderStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(providerChoices)-1 {
				s.cursor++
			}
		case "enter":
			state.Provider = providerChoices[s.cursor].id
			state.EnvVars["LLM_PROVIDER"] = state.Provider
			return nil, nil
		}
	}
	return s, nil
}

func (s *ProviderStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the provider used to generate fun facts:\n\n")
	for i, choice := range providerChoices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice.title)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice.title)) + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("(press ctrl+c to quit)") + "\n")
	return b.String()
}
