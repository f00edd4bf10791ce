// Command docsgen regenerates the configuration reference from the flag set
// ctrldoc actually registers.
//
//	go run ./tools/docsgen
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vaheed/ctrldoc/internal/config"
	"github.com/vaheed/ctrldoc/internal/docfile"
	"github.com/vaheed/ctrldoc/internal/docgen"
)

func main() {
	must(os.MkdirAll("docs", 0o755))
	write("docs/config.md", renderConfig(config.Flags()))
	write("docs/types.md", renderTypes(docgen.DefaultTypeTable()))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func write(path, s string) {
	must(os.MkdirAll(filepath.Dir(path), 0o755))
	must(docfile.Write(path, strings.TrimSpace(s)+"\n"))
}

func envName(flag string) string {
	return config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func renderConfig(fs *pflag.FlagSet) string {
	var b strings.Builder
	b.WriteString("# Configuration\n\n")
	b.WriteString("Every flag can also be set through its environment variable; flags win.\n\n")
	b.WriteString("| Flag | Environment | Default | Description |\n|---|---|---|---|\n")
	fs.VisitAll(func(f *pflag.Flag) {
		def := f.DefValue
		if def == "" {
			def = "-"
		}
		b.WriteString("| `--" + f.Name + "` | `" + envName(f.Name) + "` | `" + def + "` | " + f.Usage + " |\n")
	})
	b.WriteString("\n`LOG_LEVEL` seeds the default of `--log-level`.\n")
	return b.String()
}

func renderTypes(t docgen.TypeTable) string {
	var b strings.Builder
	b.WriteString("# Linked return types\n\n")
	b.WriteString("Links point at `" + docgen.DocBase + "<Type>.html`.\n\n## Simple\n\n")
	for _, s := range t.Simple {
		b.WriteString("- " + docgen.Link(s) + "\n")
	}
	b.WriteString("\n## Wrappers\n\n")
	for _, w := range t.Wrappers {
		b.WriteString("- `" + w + "<T>` renders " + docgen.Link(w) + " " + docgen.Link("T") + "\n")
	}
	return b.String()
}
