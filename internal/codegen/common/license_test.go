package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderComment(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	h, err := HeaderComment()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "/*\n"))
	assert.Contains(t, h, "flowstub 1.2.3")
	assert.True(t, strings.HasSuffix(h, " */\n\n"))

	Version = "broken"
	_, err = HeaderComment()
	assert.Error(t, err)
}
