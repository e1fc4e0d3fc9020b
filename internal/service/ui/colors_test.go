package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFuncs(t *testing.T) {
	funcs := TemplateFuncs()

	for _, name := range []string{"StyleTitle", "StyleUsage", "StyleFlag", "StyleDesc"} {
		fn, ok := funcs[name].(func(string) string)
		if assert.True(t, ok, name) {
			assert.Contains(t, fn("serve"), "serve")
		}
	}
}
