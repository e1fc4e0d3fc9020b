package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultOllamaURL = "http://localhost:11434"

var defaultModels = map[string]string{
	"openai":     "gpt-4o-mini",
	"anthropic":  "claude-3-5-haiku-latest",
	"openrouter": "openai/gpt-4o-mini",
	"ollama":     "llama3.1",
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 50
	ti.Placeholder = placeholder
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func inputView(prompt string, input textinput.Model, hint string) string {
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", prompt, input.View(), hintStyle.Render(hint))
}

// BaseURLStep asks for the server address of self-hosted providers.
type BaseURLStep struct {
	input  textinput.Model
	envKey string
	def    string
}

func NewBaseURLStep() Step {
	return &BaseURLStep{}
}

func (s *BaseURLStep) Skip(state *InstallState) bool {
	return state.Provider != "ollama" && state.Provider != "custom"
}

func (s *BaseURLStep) Init(state *InstallState) tea.Cmd {
	if state.Provider == "ollama" {
		s.envKey = "OLLAMA_BASE_URL"
		s.def = defaultOllamaURL
		s.input = newInput(defaultOllamaURL, false)
	} else {
		s.envKey = "CUSTOM_OPENAI_BASE_URL"
		s.def = ""
		s.input = newInput("https://api.example.com/v1", false)
	}
	return textinput.Blink
}

func (s *BaseURLStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.def
		}
		if val == "" {
			return s, nil
		}
		state.EnvVars[s.envKey] = strings.TrimRight(val, "/")
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *BaseURLStep) View(state *InstallState) string {
	hint := "(press enter to confirm)"
	if s.def != "" {
		hint = "(press enter to keep " + s.def + ")"
	}
	return inputView("Enter the provider base URL:", s.input, hint)
}

// APIKeyStep collects the provider API key. The key is optional for
// Ollama and custom servers.
type APIKeyStep struct {
	input    textinput.Model
	envKey   string
	title    string
	optional bool
}

func NewAPIKeyStep() Step {
	return &APIKeyStep{}
}

func (s *APIKeyStep) Init(state *InstallState) tea.Cmd {
	placeholder := "sk-..."
	s.optional = false

	switch state.Provider {
	case "anthropic":
		s.envKey, s.title = "ANTHROPIC_API_KEY", "Anthropic API Key"
		placeholder = "sk-ant-..."
	case "openrouter":
		s.envKey, s.title = "OPENROUTER_API_KEY", "OpenRouter API Key"
		placeholder = "sk-or-v1-..."
	case "ollama":
		s.envKey, s.title, s.optional = "OLLAMA_API_KEY", "Ollama API Key", true
		placeholder = "optional"
	case "custom":
		s.envKey, s.title, s.optional = "CUSTOM_OPENAI_API_KEY", "API Key", true
		placeholder = "optional"
	default:
		s.envKey, s.title = "OPENAI_API_KEY", "OpenAI API Key"
	}

	s.input = newInput(placeholder, true)
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" && !s.optional {
			return s, nil
		}
		if val != "" {
			state.EnvVars[s.envKey] = val
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *APIKeyStep) View(state *InstallState) string {
	hint := "(press enter to confirm)"
	if s.optional {
		hint = "(optional, press enter to skip)"
	}
	return inputView(fmt.Sprintf("Enter your %s:", s.title), s.input, hint)
}

// ModelStep asks for the model name, suggesting a default per provider.
type ModelStep struct {
	input textinput.Model
	def   string
}

func NewModelStep() Step {
	return &ModelStep{}
}

func (s *ModelStep) Init(state *InstallState) tea.Cmd {
	s.def = defaultModels[state.Provider]
	placeholder := s.def
	if placeholder == "" {
		placeholder = "model name"
	}
	s.input = newInput(placeholder, false)
	return textinput.Blink
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		val := strings.TrimSpace(s.input.Value())
		if val == "" {
			val = s.def
		}
		if val == "" {
			return s, nil
		}
		state.EnvVars["LLM_MODEL"] = val
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	hint := "(press enter to confirm)"
	if s.def != "" {
		hint = "(press enter to use " + s.def + ")"
	}
	return inputView("Which model should write the facts?", s.input, hint)
}
