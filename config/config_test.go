package config

import (
	"testing"

	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, "java", cfg.Format)
	assert.False(t, cfg.Verify)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, descriptor.DefaultKnownImports, cfg.Resolver.KnownImports)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `
output = "src/main/java"
verify = true

[log]
verbosity = 2

[resolver]
known_imports = ["java.util.List", "java.time.LocalDate"]
`
	require.NoError(t, afero.WriteFile(fs, FileName, []byte(content), 0o644))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, "src/main/java", cfg.Output)
	assert.True(t, cfg.Verify)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.Equal(t, "    ", cfg.Indent)
	assert.Equal(t, []string{"java.util.List", "java.time.LocalDate"}, cfg.Resolver.KnownImports)
}

func TestEnvOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "custom.toml", []byte("output = \"gen\"\n"), 0o644))
	t.Setenv("CHECKTHAT_OUTPUT", "env-out")
	t.Setenv("CHECKTHAT_LOG_VERBOSITY", "1")

	cfg, err := Load(fs, "custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.Output)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "nope.toml")
	assert.Error(t, err)
}
