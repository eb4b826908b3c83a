package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/sampler"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/storage"
)

// config holds the parsed command line
type config struct {
	Scenes    []string
	OutDir    string
	Format    output.Format
	Seed      uint64
	SeedSet   bool
	Samples   int
	Sets      int
	Flip      bool
	Parallel  int
	SceneDir  string
	List      bool
	JSON      bool
	Verbose   bool
	Timestamp string
}

func main() {
	cfg, help, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if help {
		printHelp(os.Stdout, flag.CommandLine)
		return
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.List {
		if err := listScenes(ctx, os.Stdout, cfg.SceneDir, cfg.JSON, logger); err != nil {
			logger.Error("listing scenes failed", "err", err)
			os.Exit(1)
		}
		return
	}

	written, err := run(ctx, cfg, logger)
	for _, dest := range written {
		fmt.Printf("Render saved as %s\n", dest)
	}
	if err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (config, bool, error) {
	var cfg config
	sceneList := fs.String("scene", "shading", "Comma-separated built-in scene names or description files (.yaml, .json, local or blob URL)")
	fs.StringVar(&cfg.OutDir, "out", "output", "Output directory or blob URL prefix (file://, gs://)")
	format := fs.String("format", "bmp", "Image format: bmp or png")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Sampler seed; entropy-seeded when not given")
	fs.IntVar(&cfg.Samples, "samples", 0, "Override samples per pixel (0 keeps the scene's value)")
	fs.IntVar(&cfg.Sets, "sets", 0, "Override number of sample sets (0 keeps the scene's value)")
	fs.BoolVar(&cfg.Flip, "flip", false, "Write buffer row 0 at the bottom of the image")
	fs.IntVar(&cfg.Parallel, "parallel", runtime.GOMAXPROCS(0), "Maximum scenes rendered at once")
	fs.StringVar(&cfg.SceneDir, "scenes", "scenes", "Directory searched by -list for scene descriptions")
	fs.BoolVar(&cfg.List, "list", false, "List available scenes and exit")
	fs.BoolVar(&cfg.JSON, "json", false, "With -list, print the scenes as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return cfg, false, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.SeedSet = true
		}
	})

	seen := make(map[string]bool)
	for _, name := range strings.Split(*sceneList, ",") {
		if name = strings.TrimSpace(name); name != "" && !seen[name] {
			seen[name] = true
			cfg.Scenes = append(cfg.Scenes, name)
		}
	}
	if len(cfg.Scenes) == 0 && !cfg.List && !*help {
		return cfg, false, errors.New("no scene given")
	}

	f, err := output.ParseFormat(*format)
	if err != nil {
		return cfg, false, err
	}
	cfg.Format = f

	// mem:// buckets vanish when closed, so renders written there are lost
	if strings.HasPrefix(cfg.OutDir, "mem://") {
		return cfg, false, errors.Errorf("-out %s: mem:// output is not kept", cfg.OutDir)
	}
	if cfg.Samples < 0 || cfg.Sets < 0 {
		return cfg, false, errors.New("-samples and -sets must not be negative")
	}
	if cfg.Parallel < 1 {
		cfg.Parallel = 1
	}
	cfg.Timestamp = time.Now().Format("20060102_150405")
	return cfg, *help, nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range scene.ListBuiltins() {
		fmt.Fprintf(w, "  %-16s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
}

func listScenes(ctx context.Context, w io.Writer, dir string, asJSON bool, logger *slog.Logger) error {
	builtins := scene.ListBuiltins()
	infos, failed, err := scene.ListFiles(ctx, dir)
	if err != nil {
		return err
	}
	for file, ferr := range failed {
		logger.Warn("skipping scene description", "file", file, "err", ferr)
	}

	if asJSON {
		data, err := json.Marshal(append(builtins, infos...), json.Deterministic(true))
		if err != nil {
			return errors.Wrap(err, "encoding scene list")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	fmt.Fprintln(w, "Built-in scenes:")
	for _, info := range builtins {
		fmt.Fprintf(w, "  %-16s %s\n", info.ID, info.Description)
	}
	if len(infos) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nScene files in %s:\n", dir)
	for _, info := range infos {
		fmt.Fprintf(w, "  %-32s %s\n", info.ID, info.Description)
	}
	return nil
}

// createScene resolves a scene by built-in name or description location
func createScene(ctx context.Context, name string, cfg config) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("empty scene name")
	}
	rng := sampler.NewEntropyRNG()
	if cfg.SeedSet {
		rng = sampler.NewRNG(cfg.Seed)
	}
	return scene.Resolve(ctx, name, scene.Options{
		RNG:     rng,
		Samples: cfg.Samples,
		Sets:    cfg.Sets,
	})
}

// outputPath returns where the render of sceneName is written
func outputPath(outDir, sceneName, timestamp string, format output.Format) string {
	file := fmt.Sprintf("render_%s.%s", timestamp, format)
	if storage.IsURL(outDir) {
		base, query, _ := strings.Cut(outDir, "?")
		dest := strings.TrimSuffix(base, "/") + "/" + path.Join(sceneName, file)
		if query != "" {
			dest += "?" + query
		}
		return dest
	}
	return filepath.Join(outDir, sceneName, file)
}

// destinations hands out output locations. A scene name seen again gets a
// numbered file so two renders never share a location.
type destinations struct {
	outDir    string
	timestamp string
	format    output.Format

	mu   sync.Mutex
	seen map[string]int
}

func newDestinations(cfg config) *destinations {
	return &destinations{
		outDir:    cfg.OutDir,
		timestamp: cfg.Timestamp,
		format:    cfg.Format,
		seen:      make(map[string]int),
	}
}

func (d *destinations) claim(sceneName string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.seen[sceneName] + 1
	d.seen[sceneName] = n

	ts := d.timestamp
	if n > 1 {
		ts = fmt.Sprintf("%s_%d", ts, n)
	}
	return outputPath(d.outDir, sceneName, ts, d.format)
}

// run renders every configured scene, at most cfg.Parallel at a time, and
// returns the locations written. The first failure cancels the remaining
// renders.
func run(ctx context.Context, cfg config, logger *slog.Logger) ([]string, error) {
	written := make([]string, len(cfg.Scenes))
	dests := newDestinations(cfg)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, name := range cfg.Scenes {
		i, name := i, name
		g.Go(func() error {
			dest, err := renderOne(ctx, name, cfg, dests, logger)
			if err != nil {
				return errors.Wrapf(err, "scene %s", name)
			}
			written[i] = dest
			return nil
		})
	}
	err := g.Wait()

	var done []string
	for _, dest := range written {
		if dest != "" {
			done = append(done, dest)
		}
	}
	return done, err
}

func renderOne(ctx context.Context, name string, cfg config, dests *destinations, logger *slog.Logger) (string, error) {
	s, err := createScene(ctx, name, cfg)
	if err != nil {
		return "", err
	}

	log := logger.With("render", uuid.NewString(), "scene", s.Name)
	log.Info("rendering",
		"width", s.World.Width, "height", s.World.Height,
		"spp", s.World.Sampler.NumSamples())

	stats, err := s.Render(ctx, log)
	if err != nil {
		return "", err
	}
	log.Info("render completed", "stats", stats)

	img, err := output.ToImage(s.World.Width, s.World.Height, s.World.Image, cfg.Flip)
	if err != nil {
		return "", err
	}

	dest := dests.claim(s.Name)
	if err := output.Write(ctx, dest, img, cfg.Format); err != nil {
		return "", err
	}
	log.Debug("image written", "dest", dest)
	return dest, nil
}
