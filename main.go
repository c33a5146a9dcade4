package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/df07/go-parallel-pathtracer/pkg/config"
	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"github.com/df07/go-parallel-pathtracer/pkg/export"
	"github.com/df07/go-parallel-pathtracer/pkg/geometry"
	"github.com/df07/go-parallel-pathtracer/pkg/integrator"
	"github.com/df07/go-parallel-pathtracer/pkg/renderer"
	"github.com/df07/go-parallel-pathtracer/pkg/scene"
	"github.com/df07/go-parallel-pathtracer/pkg/scheduler"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the command line settings that are not part of the render config
type options struct {
	configPath  string
	verbose     bool
	traceHits   bool
	listScenes  bool
	printConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, config.RenderConfig, error) {
	var opts options
	var overrides config.RenderConfig

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (.toml, .yaml or .yml)")
	fs.BoolVar(&opts.verbose, "v", false, "Log debug output")
	fs.BoolVar(&opts.traceHits, "trace-hits", false, "Log every primary and bounce ray that hits the world")
	fs.BoolVar(&opts.listScenes, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective config as TOML and exit")

	fs.StringVar(&overrides.Scene, "scene", "", "Scene name (see -list)")
	fs.IntVar(&overrides.Width, "width", 0, "Image width in pixels")
	fs.Float64Var(&overrides.AspectRatio, "aspect", 0, "Image width / height")
	fs.IntVar(&overrides.SamplesPerPixel, "spp", 0, "Samples per pixel")
	fs.IntVar(&overrides.MaxDepth, "depth", 0, "Maximum bounces per path")
	fs.IntVar(&overrides.BatchSize, "batch", 0, "Pixels per work unit (0 = one row)")
	fs.StringVar(&overrides.Scheduler, "scheduler", "", "Scheduler: "+strings.Join(scheduler.Kinds(), ", "))
	fs.IntVar(&overrides.Workers, "workers", 0, "Worker count (0 = one per CPU)")
	fs.Int64Var(&overrides.Seed, "seed", 0, "Base random seed")
	fs.StringVar(&overrides.Output, "o", "", "Output file (.png, .ppm, .bmp, .tiff); {scene} and {time} are expanded")
	fs.StringVar(&overrides.Texture, "texture", "", "Texture image for textured scenes")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Parallel Path Tracer")
		fmt.Fprintln(stderr, "Usage: pathtracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "Available scenes: %s\n", strings.Join(scene.Names(), ", "))
	}

	if err := fs.Parse(args); err != nil {
		return opts, overrides, err
	}
	return opts, overrides, nil
}

// resolveConfig layers defaults, the scene's preferred sampling, the config file and flags, in that order
func resolveConfig(fromFile, overrides config.RenderConfig, preferred scene.SamplingConfig) (config.RenderConfig, error) {
	layers := []config.RenderConfig{
		{AspectRatio: preferred.AspectRatio, SamplesPerPixel: preferred.SamplesPerPixel, MaxDepth: preferred.MaxDepth},
		fromFile,
		overrides,
	}

	cfg := config.Default()
	for _, layer := range layers {
		var err error
		if cfg, err = config.Merge(cfg, layer); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, overrides, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	core.SetLogger(newLogger(stderr, opts.verbose))
	defer core.SetLogger(nil)

	if opts.listScenes {
		for _, name := range scene.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	var fromFile config.RenderConfig
	if opts.configPath != "" {
		if fromFile, err = config.Read(opts.configPath); err != nil {
			return err
		}
	}

	// The scene is chosen before its preferences can be layered in
	base, err := resolveConfig(fromFile, overrides, scene.SamplingConfig{})
	if err != nil {
		return err
	}
	s, err := scene.Create(base.Scene, scene.Options{Seed: base.Seed, Texture: base.Texture})
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(fromFile, overrides, s.Sampling)
	if err != nil {
		return err
	}

	if opts.printConfig {
		data, err := cfg.TOML()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	return render(ctx, cfg, s, opts, stdout)
}

// worldHook picks the hook the world is wrapped in; nil leaves the world unwrapped
func worldHook(name string, opts options) (geometry.Hook, *geometry.CountingHook) {
	counter := &geometry.CountingHook{}
	switch {
	case opts.traceHits:
		log := geometry.LogHook{Tag: name, Level: slog.LevelInfo}
		return geometry.HookFunc(func(ray core.Ray, hit geometry.HitContext, ok bool) {
			counter.OnHit(ray, hit, ok)
			log.OnHit(ray, hit, ok)
		}), counter
	case opts.verbose:
		return counter, counter
	}
	return nil, nil
}

func render(ctx context.Context, cfg config.RenderConfig, s *scene.Scene, opts options, stdout io.Writer) error {
	width, height := cfg.Width, cfg.Height()
	camera, err := renderer.NewCamera(s.Camera, width, height)
	if err != nil {
		return err
	}

	sched, err := scheduler.New(scheduler.Config{Kind: cfg.Scheduler, Workers: cfg.Workers, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	defer sched.Close()

	r := renderer.NewRenderer(camera, integrator.NewPathTracingIntegrator(s.Background), renderer.Config{
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		BatchSize:       cfg.BatchSize,
	})

	world := s.World
	hook, counter := worldHook(s.Name, opts)
	if hook != nil {
		world = geometry.NewDebugObject(world, hook)
	}

	img := renderer.NewMemoryImage(width, height)
	stats, err := r.Render(ctx, sched, world, img)
	if err != nil {
		return err
	}
	if counter != nil {
		core.Logger().Debug("world queries", "scene", s.Name, "queries", counter.Queries(), "hits", counter.Hits())
	}

	path, err := export.Save(cfg.OutputPath(time.Now()), img)
	if err != nil {
		return err
	}

	printSummary(stdout, s.Name, stats, path)
	return nil
}

func printSummary(w io.Writer, name string, stats renderer.RenderStats, path string) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Rendered %s: %d pixels, %d samples (%.1f per pixel)\n",
		name, stats.Pixels, stats.Samples, stats.AverageSamples())
	p.Fprintf(w, "%d work units on %d workers in %v (%.0f samples/s)\n",
		stats.Units, stats.Workers, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())
	p.Fprintf(w, "Saved %s\n", path)
}
