package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/vaheed/ctrldoc/internal/docgen"
)

// EnvPrefix namespaces the environment variables bound to every flag,
// e.g. CTRLDOC_ON_MALFORMED for --on-malformed.
const EnvPrefix = "CTRLDOC"

const (
	KeyTypes           = "types"
	KeyTemplate        = "template"
	KeyOnMalformed     = "on-malformed"
	KeyWorkers         = "workers"
	KeyLogLevel        = "log-level"
	KeyLogFile         = "log-file"
	KeyMetricsTextfile = "metrics-textfile"
)

type Config struct {
	TypesFile       string
	TemplateFile    string
	OnMalformed     docgen.Policy
	Workers         int
	LogLevel        string
	LogFile         string
	MetricsTextfile string
}

// Flags returns the flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ctrldoc", pflag.ContinueOnError)
	fs.String(KeyTypes, "", "YAML file listing simple and wrapper return types to link")
	fs.String(KeyTemplate, "", "text/template file used to render each handler block")
	fs.String(KeyOnMalformed, string(docgen.Abort), "abort or skip when a wrapper return type has no <Inner> type")
	fs.Int(KeyWorkers, 4, "handlers rendered concurrently")
	fs.String(KeyLogLevel, getenv("LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.String(KeyLogFile, "", "write logs to this rotated file instead of stderr")
	fs.String(KeyMetricsTextfile, "", "write Prometheus text-format metrics here after the run")
	return fs
}

// NewViper returns a viper instance reading CTRLDOC_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load builds a Config from v, which should have Flags bound.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TypesFile:       v.GetString(KeyTypes),
		TemplateFile:    v.GetString(KeyTemplate),
		OnMalformed:     docgen.Policy(strings.ToLower(v.GetString(KeyOnMalformed))),
		Workers:         v.GetInt(KeyWorkers),
		LogLevel:        strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:         v.GetString(KeyLogFile),
		MetricsTextfile: v.GetString(KeyMetricsTextfile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.OnMalformed {
	case docgen.Abort, docgen.Skip:
	default:
		return fmt.Errorf("--%s must be %q or %q, got %q", KeyOnMalformed, docgen.Abort, docgen.Skip, c.OnMalformed)
	}
	if c.Workers < 1 {
		return errors.New("--workers must be at least 1")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// TypeTable returns the configured type table, or the default one when no
// types file is set.
func (c *Config) TypeTable() (docgen.TypeTable, error) {
	if c.TypesFile == "" {
		return docgen.DefaultTypeTable(), nil
	}
	return LoadTypeTable(c.TypesFile)
}

// BlockTemplate returns the custom block template text, or "" for the default.
func (c *Config) BlockTemplate() (string, error) {
	if c.TemplateFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return "", xerrors.Errorf("read template: %w", err)
	}
	return string(b), nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
