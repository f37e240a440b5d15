package configpaths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("custom.yml")
	assert.Equal(t, "custom.yml", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "custom.yml")

	_, _, tomlPaths = ConfigCandidatePaths("custom.toml")
	assert.Equal(t, "custom.toml", tomlPaths[0])

	jsonPaths, _, _ = ConfigCandidatePaths("custom.conf")
	assert.Equal(t, "custom.conf", jsonPaths[0])
}

func TestDefaultConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := DefaultConfigDir()
	if err != nil {
		t.Skip("no config dir on this platform")
	}
	assert.Contains(t, dir, "flowstub")
}
