package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Limit int `env:"NESTED_LIMIT"`
}

type sample struct {
	Name    string        `env:"SAMPLE_NAME,required"`
	Secret  string        `env:"SAMPLE_SECRET" mask:"true"`
	Ratio   float64       `env:"SAMPLE_RATIO"`
	Enabled bool          `env:"SAMPLE_ENABLED"`
	Timeout time.Duration `env:"SAMPLE_TIMEOUT"`
	Empty   string        `env:"SAMPLE_EMPTY"`
	Nested  nested
	ignored string
}

func TestMarshalEnv(t *testing.T) {
	out, err := MarshalEnv(&sample{
		Name:    "factbot",
		Secret:  "hunter2",
		Ratio:   0.6,
		Enabled: true,
		Timeout: 30 * time.Second,
		Nested:  nested{Limit: 25},
		ignored: "x",
	})
	require.NoError(t, err)

	want := "NESTED_LIMIT=25\n" +
		"SAMPLE_ENABLED=true\n" +
		"SAMPLE_NAME=factbot\n" +
		"SAMPLE_RATIO=0.6\n" +
		"SAMPLE_SECRET=********\n" +
		"SAMPLE_TIMEOUT=30s\n"
	assert.Equal(t, want, out)
}

func TestMarshalEnv_RejectsNonStruct(t *testing.T) {
	_, err := MarshalEnv(sample{})
	assert.Error(t, err)

	_, err = MarshalEnv(new(int))
	assert.Error(t, err)
}

func TestMarshalEnv_Empty(t *testing.T) {
	out, err := MarshalEnv(&sample{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
