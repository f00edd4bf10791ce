package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaheed/ctrldoc/internal/docgen"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := Flags()
	require.NoError(t, fs.Parse(args))
	v := NewViper()
	require.NoError(t, v.BindPFlags(fs))
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, docgen.Abort, cfg.OnMalformed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.TypesFile)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, "--on-malformed=skip", "--workers=2", "--log-level=DEBUG", "--metrics-textfile=/tmp/m.prom")
	require.NoError(t, err)
	assert.Equal(t, docgen.Skip, cfg.OnMalformed)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/m.prom", cfg.MetricsTextfile)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CTRLDOC_ON_MALFORMED", "skip")
	t.Setenv("CTRLDOC_WORKERS", "7")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, docgen.Skip, cfg.OnMalformed)
	assert.Equal(t, 7, cfg.Workers)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string][]string{
		"policy":    {"--on-malformed=ignore"},
		"workers":   {"--workers=0"},
		"log level": {"--log-level=trace"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := load(t, args...)
			require.Error(t, err)
		})
	}
}

func TestTypeTableDefault(t *testing.T) {
	t.Parallel()

	got, err := (&Config{}).TypeTable()
	require.NoError(t, err)
	assert.Equal(t, docgen.DefaultTypeTable(), got)
}

func TestTypeTableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simple: [Token]\nwrappers:\n  - Page\n"), 0o600))

	got, err := (&Config{TypesFile: path}).TypeTable()
	require.NoError(t, err)
	assert.Equal(t, docgen.TypeTable{Simple: []string{"Token"}, Wrappers: []string{"Page"}}, got)
}

func TestParseTypeTableInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown key": "simple: [A]\nextra: [B]\n",
		"not a list":  "wrappers: Page\n",
		"bad name":    "simple: [\"Not A Type\"]\n",
		"duplicate":   "wrappers: [Page, Page]\n",
		"broken yaml": "simple: [A\n",
	}
	for name, src := range tests {
		src := src
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseTypeTable([]byte(src))
			require.Error(t, err)
		})
	}
}

func TestParseTypeTableEmpty(t *testing.T) {
	t.Parallel()

	got, err := ParseTypeTable(nil)
	require.NoError(t, err)
	assert.Empty(t, got.Simple)
	assert.Empty(t, got.Wrappers)
}

func TestBlockTemplate(t *testing.T) {
	t.Parallel()

	got, err := (&Config{}).BlockTemplate()
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(t.TempDir(), "block.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("## {{ .Path }}\n"), 0o600))
	got, err = (&Config{TemplateFile: path}).BlockTemplate()
	require.NoError(t, err)
	assert.Equal(t, "## {{ .Path }}\n", got)

	_, err = (&Config{TemplateFile: filepath.Join(t.TempDir(), "missing")}).BlockTemplate()
	require.Error(t, err)
}
