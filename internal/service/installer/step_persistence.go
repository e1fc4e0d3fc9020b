package installer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

const sessionSecretBytes = 32

// FinalizationStep fills in derived values such as the session signing secret.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Run(state *InstallState) error {
	if state.EnvVars["FACTBOT_SESSION_SECRET"] != "" {
		return nil
	}

	buf := make([]byte, sessionSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate session secret: %w", err)
	}
	state.EnvVars["FACTBOT_SESSION_SECRET"] = hex.EncodeToString(buf)
	return nil
}

func (s *FinalizationStep) Init(state *InstallState) tea.Cmd { return nil }

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}

// SaveEnvStep writes the collected configuration to <runtime>/.env. An
// existing file is never overwritten.
type SaveEnvStep struct {
	runtimePath string
}

func NewSaveEnvStep(runtimePath string) Step {
	return &SaveEnvStep{runtimePath: runtimePath}
}

func (s *SaveEnvStep) Run(state *InstallState) error {
	if err := os.MkdirAll(s.runtimePath, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(s.runtimePath, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	content, err := godotenv.Marshal(state.EnvVars)
	if err != nil {
		return fmt.Errorf("render .env: %w", err)
	}

	if err := os.WriteFile(envPath, []byte(content+"\n"), 0600); err != nil {
		return fmt.Errorf("write %s: %w", envPath, err)
	}
	return nil
}

func (s *SaveEnvStep) Init(state *InstallState) tea.Cmd { return nil }

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	return "Saving configuration...\n"
}
