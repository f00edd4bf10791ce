package main

import (
	"strings"
	"testing"

	"github.com/vaheed/ctrldoc/internal/config"
	"github.com/vaheed/ctrldoc/internal/docgen"
)

func TestEnvName(t *testing.T) {
	if got := envName("on-malformed"); got != "CTRLDOC_ON_MALFORMED" {
		t.Fatalf("envName = %q", got)
	}
}

func TestRenderConfigListsEveryFlag(t *testing.T) {
	out := renderConfig(config.Flags())
	for _, key := range []string{config.KeyTypes, config.KeyTemplate, config.KeyOnMalformed, config.KeyWorkers,
		config.KeyLogLevel, config.KeyLogFile, config.KeyMetricsTextfile} {
		if !strings.Contains(out, "`--"+key+"`") {
			t.Fatalf("flag %s missing from:\n%s", key, out)
		}
	}
	if !strings.Contains(out, "| `--workers` | `CTRLDOC_WORKERS` | `4` |") {
		t.Fatalf("workers row malformed:\n%s", out)
	}
}

func TestRenderTypes(t *testing.T) {
	out := renderTypes(docgen.DefaultTypeTable())
	for _, want := range []string{
		"- [LoginResponse](../com/foodmobile/server/datamodels/LoginResponse.html)",
		"- `MultiDataModelResponse<T>` renders",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
