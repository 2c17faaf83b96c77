package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/dime/internal/adapters/console"
	"github.com/okian/dime/internal/adapters/inputfile"
	service "github.com/okian/dime/internal/app"
	"github.com/okian/dime/internal/config"
	"github.com/okian/dime/internal/domain/projection"
	"github.com/okian/dime/internal/report"
	"github.com/okian/dime/pkg/logger"
	"github.com/okian/dime/pkg/metrics"
)

// baseWeightDrift is how far the base weights may stray from summing to 1.0
// before a warning is logged.
const baseWeightDrift = 0.05

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inputPath   = fs.String("input", "", "YAML/JSON file with a players list (interactive prompts when empty)")
		format      = fs.String("format", "", "Report format: text or json (default from config)")
		metricsFile = fs.String("metrics-file", "", "Write Prometheus textfile metrics here after the run")
		help        = fs.Bool("help", false, "Show help")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *help {
		fs.Usage()
		return 0
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't configured yet
		fmt.Fprintln(stderr, "failed to load config: "+err.Error())
		return 1
	}
	if *format != "" {
		cfg.Output = *format
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "invalid flags: "+err.Error())
		return 2
	}

	if err := logger.Init(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
		return 1
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Named("dime")

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	params := cfg.Model.Params()
	if sum := params.Base.Sum(); math.Abs(sum-1.0) > baseWeightDrift {
		log.Warn(ctx, "base weights do not sum to 1.0", logger.Float64("sum", sum))
	}

	svc := service.New(
		service.WithParams(params),
		service.WithLogger(log),
	)

	ins, err := collect(ctx, *inputPath, stdin, stdout, log)
	if errors.Is(err, console.ErrNoInput) {
		return 0
	}
	if err != nil {
		log.Error(ctx, "failed to collect inputs", logger.Error(err))
		return 1
	}

	ps, err := svc.ProjectAll(ctx, ins)
	if err != nil {
		log.Error(ctx, "projection interrupted", logger.Error(err), logger.Int("completed", len(ps)))
		return 1
	}

	if err := report.Write(stdout, cfg.Output, ps); err != nil {
		log.Error(ctx, "failed to write report", logger.Error(err))
		return 1
	}

	if cfg.MetricsFile != "" {
		if err := metrics.Default().WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(ctx, "failed to write metrics", logger.Error(err))
			return 1
		}
		log.Debug(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
	}
	return 0
}

// collect reads inputs from path, or prompts for a single player when path is empty.
func collect(ctx context.Context, path string, stdin io.Reader, stdout io.Writer, log logger.Logger) ([]projection.Inputs, error) {
	if path != "" {
		ins, err := inputfile.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "loaded input file", logger.String("path", path), logger.Int("players", len(ins)))
		return ins, nil
	}

	in, err := console.New(stdin, stdout, console.WithLogger(log)).Collect(ctx)
	if err != nil {
		return nil, err
	}
	return []projection.Inputs{in}, nil
}

