package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestHelpTextIsPlainASCII(t *testing.T) {
	var walk func(cmd *cobra.Command)
	walk = func(cmd *cobra.Command) {
		for _, text := range []string{cmd.Short, cmd.Long} {
			for _, r := range text {
				if r > 0x7e {
					assert.Failf(t, "non-ASCII help text", "%s: %q", cmd.CommandPath(), text)
					break
				}
			}
		}
		for _, sub := range cmd.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func TestCatalogCommandsRegistered(t *testing.T) {
	for _, path := range [][]string{{"movie", "add"}, {"user", "add"}, {"shell"}, {"install"}} {
		cmd, _, err := rootCmd.Find(path)
		if assert.NoError(t, err, path) {
			assert.Equal(t, path[len(path)-1], cmd.Name())
		}
	}
}
