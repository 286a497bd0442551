// cmd/satcheck/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/ecs"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-sat/pkg/collision"
	"github.com/opd-ai/go-sat/pkg/config"
	"github.com/opd-ai/go-sat/pkg/event"
	"github.com/opd-ai/go-sat/pkg/logging"
	"github.com/opd-ai/go-sat/pkg/physics"
	"github.com/opd-ai/go-sat/pkg/scene"
)

// report is the document written to stdout
type report struct {
	Scene    string        `yaml:"scene"`
	Digest   string        `yaml:"digest"`
	Contacts []contactLine `yaml:"contacts"`
	Hulls    []scene.Shape `yaml:"hulls,omitempty"`
}

type contactLine struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code. Logs go to
// stderr so stdout carries nothing but the report.
func execute(args []string, stdout, stderr io.Writer) int {
	logger := logging.NewLoggerTo(stderr,
		logging.ParseLevel(os.Getenv(logging.EnvLogLevel)),
		os.Getenv(logging.EnvLogFormat),
	)
	ctx := logging.WithCorrelationID(context.Background(), "")

	flags := flag.NewFlagSet("satcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "satcheck.yaml", "Path to configuration file")
	createDefault := flags.Bool("default", false, "Create default configuration file")
	scenePath := flags.String("scene", "", "Scene file to check (overrides configuration)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			return 1
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return 0
	}

	// Load configuration
	var cfg *config.CheckerConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Debug(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			return 1
		}
	}

	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		return 1
	}

	if cfg.Output.LogLevel != "" {
		logger = logging.NewLoggerTo(stderr, logging.ParseLevel(cfg.Output.LogLevel), os.Getenv(logging.EnvLogFormat))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, stdout); err != nil {
		logger.Error(ctx, "Collision check failed", err, "scene", cfg.Scene)
		return 1
	}
	return 0
}

// run loads the scene, checks every pair and writes the report to out
func run(ctx context.Context, cfg *config.CheckerConfig, logger *logging.Logger, out io.Writer) error {
	sc, err := scene.Load(cfg.Scene)
	if err != nil {
		return err
	}

	digest, err := sc.Digest()
	if err != nil {
		return err
	}

	bus := event.NewEventBus()
	rep := report{Scene: cfg.Scene, Digest: digest}
	sub := bus.Subscribe(event.ShapeCollision, func(e event.Event) {
		c := e.(*event.CollisionEvent)
		rep.Contacts = append(rep.Contacts, contactLine{A: c.NameA, B: c.NameB})
		logger.Debug(ctx, "Shapes overlap", "a", c.NameA, "b", c.NameB)
	})
	defer sub.Cancel()

	system := collision.NewSystem(cfg.Collision, bus, logger)

	for _, entry := range sc.Shapes {
		shape, err := entry.Build()
		if err != nil {
			return err
		}
		basic := ecs.NewBasic()
		system.Add(&basic, &collision.ShapeComponent{Name: entry.Name, Shape: shape})

		if cfg.Output.Hulls {
			hulls, err := hullEntries(entry.Name, shape)
			if err != nil {
				return err
			}
			rep.Hulls = append(rep.Hulls, hulls...)
		}
	}

	if _, err := system.Check(ctx); err != nil {
		return err
	}

	stats := system.Stats()
	logger.Info(ctx, "Collision check completed",
		"scene", cfg.Scene,
		"digest", digest,
		"shapes", stats.Shapes,
		"pairs", stats.Pairs,
		"culled", stats.Culled,
		"skipped", stats.Skipped,
		"contacts", stats.Contacts,
	)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return enc.Close()
}

// hullEntries describes both hulls of a shape as scene entries
func hullEntries(name string, shape physics.Hulled) ([]scene.Shape, error) {
	rect, err := scene.FromShape(name+".rectangle_hull", shape.RectangleHull())
	if err != nil {
		return nil, err
	}
	circle, err := scene.FromShape(name+".circle_hull", shape.CircleHull())
	if err != nil {
		return nil, err
	}
	return []scene.Shape{rect, circle}, nil
}
