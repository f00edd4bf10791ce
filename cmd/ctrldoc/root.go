package main

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/vaheed/ctrldoc/internal/config"
	"github.com/vaheed/ctrldoc/internal/docfile"
	"github.com/vaheed/ctrldoc/internal/docgen"
	"github.com/vaheed/ctrldoc/internal/logging"
	"github.com/vaheed/ctrldoc/internal/metrics"
	"github.com/vaheed/ctrldoc/internal/version"
)

// configError marks failures that happen before the input is touched.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	v := config.NewViper()
	cmd := &cobra.Command{
		Use:   "ctrldoc <controller-file>",
		Short: "Document the HTTP handlers of a controller source file",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				cmd.SilenceUsage = false
				return &configError{err}
			}
			return nil
		},
		Version:       version.String(),
		SilenceErrors: false,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoc(cmd.Context(), v, args[0])
		},
	}
	cmd.Flags().AddFlagSet(config.Flags())
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.SilenceUsage = false
		return &configError{err}
	})
	return cmd
}

func runDoc(ctx context.Context, v *viper.Viper, input string) (err error) {
	cfg, err := config.Load(v)
	if err != nil {
		return &configError{err}
	}
	lg := logging.NewWithOptions("ctrldoc", logging.Options{Level: cfg.LogLevel, File: cfg.LogFile}).
		With(zap.String("run_id", uuid.NewString()), zap.String("input", input))
	defer func() { _ = lg.Sync() }()

	gen, err := newGenerator(cfg, lg)
	if err != nil {
		lg.Error("config", zap.Error(err))
		return &configError{err}
	}

	start := time.Now()
	defer func() {
		metrics.ObserveRun(err == nil, time.Since(start))
		if cfg.MetricsTextfile == "" {
			return
		}
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			lg.Warn("metrics textfile", zap.String("path", cfg.MetricsTextfile), zap.Error(werr))
		}
	}()

	text, err := docfile.Read(input)
	if err != nil {
		lg.Error("read input", zap.Error(err))
		return err
	}
	res, err := gen.Generate(ctx, text)
	if err != nil {
		lg.Error("generate", zap.Error(err))
		return err
	}
	out := docfile.OutputPath(input)
	if err := docfile.Write(out, res.Document); err != nil {
		lg.Error("write output", zap.Error(err))
		return err
	}
	metrics.SetDocumentBytes(len(res.Document))
	lg.Info("document written",
		zap.String("output", out),
		zap.Int("handlers", res.Handlers),
		zap.Int("params", res.Params),
		zap.Int("unresolved", res.Unresolved),
		zap.Int("skipped", res.Skipped),
		zap.String("size", humanize.Bytes(uint64(len(res.Document)))),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func newGenerator(cfg *config.Config, lg *zap.Logger) (*docgen.Generator, error) {
	table, err := cfg.TypeTable()
	if err != nil {
		return nil, err
	}
	tmpl, err := cfg.BlockTemplate()
	if err != nil {
		return nil, err
	}
	asm, err := docgen.NewAssembler(tmpl)
	if err != nil {
		return nil, xerrors.Errorf("block template %s: %w", cfg.TemplateFile, err)
	}
	return &docgen.Generator{
		Resolver:    docgen.NewResolver(table),
		Assembler:   asm,
		Workers:     cfg.Workers,
		OnMalformed: cfg.OnMalformed,
		Log:         lg,
	}, nil
}
