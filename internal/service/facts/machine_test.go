package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_Transitions(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		max  int
		want []string
	}{
		{
			name: "fresh",
			mode: ModeFresh,
			max:  4,
			want: []string{"try_stored", "generate#1", "generate#2", "generate#3", "generate#4", "fail"},
		},
		{
			name: "previous",
			mode: ModePrevious,
			max:  2,
			want: []string{"try_previous", "try_stored", "generate#1", "generate#2", "fail"},
		},
		{
			name: "no attempts",
			mode: ModeFresh,
			max:  0,
			want: []string{"try_stored", "fail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(tt.mode, tt.max)

			var got []string
			for step := 0; step < 20; step++ {
				label := m.Phase.String()
				if m.Phase == PhaseGenerate {
					label += "#" + string(rune('0'+m.Attempt))
				}
				got = append(got, label)
				if m.Phase == PhaseFail {
					break
				}
				m = m.advance()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMachine_FailIsTerminal(t *testing.T) {
	m := machine{Phase: PhaseFail, MaxAttempts: 4}
	assert.Equal(t, m, m.advance())
}
