package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/version"
)

const (
	serviceName = "seqdemo"
	envPrefix   = "SEQ"
)

type options struct {
	configFile string
	envFile    string
	only       []string
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configFile, "config", "c", "", "path to config.yml (searched for when empty)")
	fs.StringVar(&o.envFile, "env-file", "", "path to a .env file (searched for when empty)")
	fs.StringSliceVar(&o.only, "only", nil, "run only the named demos: "+strings.Join(sortedNames(), ", "))
}

func (o *options) loaderOptions() []config.LoaderOption {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if o.configFile != "" {
		opts = append(opts, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		opts = append(opts, config.WithEnvFile(o.envFile))
	}
	return opts
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Run the seqkit demonstration pipelines",
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), out, opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(out)
	cmd.CompletionOptions.DisableDefaultCmd = true
	opts.bind(cmd.Flags())
	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	cfg, err := config.LoadService(serviceName, opts.loaderOptions()...)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging, cfg.Name)
	logger.RegisterDefaults(serviceName)
	log := logger.Get(serviceName).WithFields(logger.Fields("run_id", cfg.RunID))
	log.Info("starting", version.Get().Fields())

	selected, err := selectDemos(opts.only)
	if err != nil {
		return err
	}

	env := &demoEnv{log: log, inspect: cfg.Inspect}
	if cfg.Telemetry.Enabled {
		shutdown, err := setupTelemetry(ctx, cfg, env)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	for _, d := range selected {
		result, err := d.run(env)
		if err != nil {
			log.WithError(err).Error("demo failed", logger.Fields(logger.FieldPipeline, d.name))
			return errors.Internal(err).WithDetail("demo", d.name)
		}
		fmt.Fprintf(out, "%-18s %s\n", d.name, result)
	}
	log.Info("done", logger.Fields(logger.FieldCount, len(selected)))
	return nil
}

// setupTelemetry installs the OTLP tracer and meter providers and points
// env at them. The returned function flushes and stops both.
func setupTelemetry(ctx context.Context, cfg *config.ServiceConfig, env *demoEnv) (func(), error) {
	tp, err := observability.InitTracer(ctx, cfg.Telemetry.TracerConfig(cfg.Name, cfg.Version, cfg.Environment))
	if err != nil {
		return nil, err
	}
	mp, err := observability.InitMeter(ctx, cfg.Telemetry.MeterConfig(cfg.Name, cfg.Version, cfg.Environment))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	env.tracer = observability.Tracer(serviceName)
	env.metrics = metrics
	return func() {
		// The run context may already be cancelled.
		ctx := context.WithoutCancel(ctx)
		if err := mp.Shutdown(ctx); err != nil {
			env.log.WithError(err).Warn("meter shutdown failed")
		}
		if err := tp.Shutdown(ctx); err != nil {
			env.log.WithError(err).Warn("tracer shutdown failed")
		}
	}, nil
}

func selectDemos(names []string) ([]demo, error) {
	if len(names) == 0 {
		return demos, nil
	}
	var out []demo
	for _, name := range names {
		i := slices.IndexFunc(demos, func(d demo) bool { return d.name == name })
		if i < 0 {
			return nil, errors.InvalidInput("only", fmt.Sprintf("unknown demo %q", name))
		}
		out = append(out, demos[i])
	}
	return out, nil
}
