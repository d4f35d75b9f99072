package tutorial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorial_PipedOutputIsRawMarkdown(t *testing.T) {
	t.Parallel()
	cmd := TutorialCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, tutorialContent, out.String())
	assert.Contains(t, out.String(), "# techradar workflow")
	assert.Contains(t, out.String(), "radar render")
}
