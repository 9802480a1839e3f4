package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"matbm.net/watercolor/config"
	"matbm.net/watercolor/imagery/raster"
	"matbm.net/watercolor/internal/logging"
)

const usage = `Usage: watercolor <command> [flags]

Commands:
  classify  classify a single U,R,G,B reflectance tuple
  scene     calculate and render the water colour layer of one scene
  series    extract the water colour time series at a point

Run "watercolor <command> -h" for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1], os.Args[2:], os.Stdout)
	stop()
	raster.ShutdownVips()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "classify":
		return runClassify(args, out)
	case "scene":
		return runScene(ctx, args, out)
	case "series":
		return runSeries(ctx, args, out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

// commonFlags are shared by the scene and series commands.
type commonFlags struct {
	configPath string
	logLevel   string
	pretty     bool
	workers    int
	backend    string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to a JSON config file")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&c.pretty, "pretty", false, "Human readable log output")
	fs.IntVar(&c.workers, "workers", 0, "Worker goroutines, defaults to the config value")
	fs.StringVar(&c.backend, "backend", "", "Raster backend: auto, vips or native")
}

// load reads the config, applies flag overrides and builds the logger.
func (c *commonFlags) load() (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return cfg, zerolog.Nop(), err
		}
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.pretty {
		cfg.LogPretty = true
	}
	if c.workers > 0 {
		cfg.Workers = c.workers
	}
	if c.backend != "" {
		cfg.RasterBackend = c.backend
	}
	if err := cfg.Validate(); err != nil {
		return cfg, zerolog.Nop(), err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stderr)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	if raster.Backend(cfg.RasterBackend) != raster.BackendNative {
		raster.StartVips(log, cfg.Workers)
	}
	return cfg, log, nil
}
