package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lgtm-migrator/mecj-demo/internal/config"
	"github.com/lgtm-migrator/mecj-demo/internal/logging"
)

// rootFlags holds the config file path and the flag layer. Unset flags stay
// zero and therefore never override file values in Merge.
type rootFlags struct {
	configPath string
	overrides  config.Config
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "mecjd",
		Short: "Prediction gateway for the diabetes and protein-sequence classifiers",
		Long: `mecjd binds its HTTP listener, then trains the tabular classifier in the
background. /predict answers "Classifier not ready" until training finishes;
/predict-ps and the static front-end under /public work immediately.

Settings come from defaults, then the --config file, then MECJD_* environment
variables and flags. A .env file in the working directory is loaded first.`,
		SilenceUsage: true,
		Version:      Version,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", envStr("MECJD_CONFIG", ""), "config file (.yaml, .yml, .json or .toml)")
	o := &f.overrides
	fl.StringVar(&o.Addr, "addr", envStr("MECJD_ADDR", ""), "HTTP listen address (default :8080)")
	fl.StringVar(&o.PublicDir, "public-dir", envStr("MECJD_PUBLIC_DIR", ""), "static asset root (default src/main/public)")
	fl.StringVar(&o.PublicPrefix, "public-prefix", envStr("MECJD_PUBLIC_PREFIX", ""), "URL prefix for static assets (default /public)")
	fl.StringVar(&o.DatasetPath, "dataset", envStr("MECJD_DATASET", ""), "training CSV; empty uses the embedded dataset")
	fl.IntVar(&o.Neighbors, "neighbors", envInt("MECJD_NEIGHBORS", 0), "k for the tabular classifier (default 5)")
	fl.Float64Var(&o.MinkowskiP, "minkowski-p", envFloat("MECJD_MINKOWSKI_P", 0), "Minkowski distance exponent (default 3)")
	fl.IntVar(&o.PredictionCacheSize, "cache-size", envInt("MECJD_CACHE_SIZE", 0), "tabular prediction cache entries (default 1024)")
	fl.StringVar(&o.LogLevel, "log-level", envStr("MECJD_LOG_LEVEL", ""), "debug|info|warn|error (default info)")
	fl.StringVar(&o.LogFormat, "log-format", envStr("MECJD_LOG_FORMAT", ""), "console|json (default console)")
	fl.StringVar(&o.LogFile, "log-file", envStr("MECJD_LOG_FILE", ""), "also write JSON logs to this rotated file")
	fl.IntVar(&o.ShutdownTimeoutSeconds, "shutdown-timeout", envInt("MECJD_SHUTDOWN_TIMEOUT", 0), "graceful shutdown timeout in seconds (default 5)")
	fl.BoolVar(&o.CORSEnabled, "cors", envBool("MECJD_CORS", false), "enable CORS")
	fl.StringSliceVar(&o.CORSAllowedOrigins, "cors-origins", splitCSV(envStr("MECJD_CORS_ORIGINS", "")), "allowed CORS origins")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveConfig layers defaults, the config file and the flag overrides.
func resolveConfig(f *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		fileCfg, err := config.Load(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = cfg.Merge(fileCfg)
	}
	cfg = cfg.Merge(f.overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := resolveConfig(f)
	if err != nil {
		return err
	}
	log, closer, err := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return serve(ctx, cfg, log, ln)
}
