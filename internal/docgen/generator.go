// Package docgen turns extracted handler records into a Markdown document.
package docgen

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/vaheed/ctrldoc/internal/metrics"
	"github.com/vaheed/ctrldoc/internal/scan"
)

// Policy decides what happens to a handler with a malformed wrapper return type.
type Policy string

const (
	// Abort fails the whole run.
	Abort Policy = "abort"
	// Skip keeps the handler and leaves its link empty.
	Skip Policy = "skip"
)

// Result is a fully assembled document plus run counters.
type Result struct {
	Document   string
	Handlers   int
	Params     int
	Unresolved int
	Skipped    int
}

type Generator struct {
	Resolver    *Resolver
	Assembler   *Assembler
	Workers     int
	OnMalformed Policy
	Log         *zap.Logger
}

// New returns a Generator with the default type table, block template and
// abort policy.
func New(log *zap.Logger) *Generator {
	a, _ := NewAssembler("")
	return &Generator{
		Resolver:    NewResolver(DefaultTypeTable()),
		Assembler:   a,
		Workers:     1,
		OnMalformed: Abort,
		Log:         log,
	}
}

type blockStats struct {
	params     int
	unresolved bool
	skipped    bool
}

// Generate extracts every handler from text and renders the document.
// Records are rendered concurrently but blocks keep extraction order.
// On error no document is returned.
func (g *Generator) Generate(ctx context.Context, text string) (Result, error) {
	recs := scan.Extract(text)
	g.Log.Debug("extracted handlers", zap.Int("count", len(recs)))

	blocks := make([]string, len(recs))
	stats := make([]blockStats, len(recs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.Workers, 1))
	for i := range recs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, st, err := g.render(recs[i])
			if err != nil {
				return err
			}
			blocks[i], stats[i] = b, st
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Document: Join(blocks), Handlers: len(recs)}
	for _, st := range stats {
		res.Params += st.params
		if st.unresolved {
			res.Unresolved++
		}
		if st.skipped {
			res.Skipped++
		}
	}
	return res, nil
}

func (g *Generator) render(rec scan.HandlerRecord) (string, blockStats, error) {
	var st blockStats
	metrics.IncHandler(string(rec.Method))

	entries := Params(rec.ParamsRaw)
	st.params = len(entries)
	metrics.AddParams(st.params)

	link, err := g.Resolver.Resolve(rec.ReturnType)
	switch {
	case errors.Is(err, ErrMalformedReturnType):
		metrics.IncReturnType(metrics.Malformed)
		if g.OnMalformed != Skip {
			return "", st, xerrors.Errorf("%s %s (line %d): %w", rec.Method, rec.Path, rec.Line, err)
		}
		g.Log.Warn("skipping malformed return type",
			zap.String("method", string(rec.Method)),
			zap.String("path", rec.Path),
			zap.String("return_type", rec.ReturnType),
			zap.Int("line", rec.Line),
		)
		st.skipped = true
	case err != nil:
		return "", st, err
	case link == "":
		metrics.IncReturnType(metrics.Unresolved)
		st.unresolved = true
	default:
		metrics.IncReturnType(metrics.Linked)
	}

	block, err := g.Assembler.Render(Block{
		Method:     string(rec.Method),
		Path:       rec.Path,
		Params:     renderEntries(entries),
		Link:       link,
		ReturnType: rec.ReturnType,
		FuncName:   rec.FuncName,
		Line:       rec.Line,
	})
	if err != nil {
		return "", st, err
	}
	g.Log.Debug("rendered handler",
		zap.String("method", string(rec.Method)),
		zap.String("path", rec.Path),
		zap.String("func", rec.FuncName),
		zap.Int("params", st.params),
	)
	return block, st, nil
}
