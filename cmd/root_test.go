package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	t.Parallel()
	root := NewRootCmd()

	for _, name := range []string{"tui", "technology", "quadrant", "ring", "project", "radar", "dataset", "serve", "tutorial"} {
		cmd, _, err := root.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, cmd.Name())
		}
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("data"))
	assert.NotNil(t, root.PersistentFlags().Lookup("export"))
}
