// Command texloc finds textures on a map and writes a marker file.
//
// Usage:
//
//	texloc [flags] texture...
//	texloc [flags] -i markers.json
//
// The map is named in a run configuration file (-c) or given directly with
// -map-path. Map and output locations may be local paths, s3://bucket/prefix
// or minio://host/bucket/prefix URLs.
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

	"github.com/hupe1980/texloc"
	"github.com/hupe1980/texloc/blobstore"
	"github.com/hupe1980/texloc/blobstore/minio"
	"github.com/hupe1980/texloc/blobstore/s3"
	"github.com/hupe1980/texloc/internal/config"
	"github.com/hupe1980/texloc/internal/resource"
	"github.com/hupe1980/texloc/marker"
	"github.com/hupe1980/texloc/model"
	"github.com/hupe1980/texloc/texindex"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	conf        string
	mapName     string
	mapPath     string
	input       string
	output      string
	parallel    int
	zoomLimit   int
	cacheBytes  int64
	maxReads    int64
	ioLimit     int64
	logLevel    string
	logFormat   string
	textures    []string
	explicitSet map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("texloc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: texloc [flags] texture...")
		fs.PrintDefaults()
	}

	fs.StringVar(&f.conf, "c", "", "run configuration file (.json)")
	fs.StringVar(&f.conf, "conf", "", "run configuration file (.json)")
	fs.StringVar(&f.mapName, "map", config.DefaultMapName, "map name in the configuration file")
	fs.StringVar(&f.mapPath, "map-path", "", "map location, overrides -map")
	fs.StringVar(&f.input, "i", "", "JSON file containing marker definitions with textures")
	fs.StringVar(&f.input, "input", "", "JSON file containing marker definitions with textures")
	fs.StringVar(&f.output, "o", "./output.json", "output location (.json, .json.gz, .json.zst)")
	fs.StringVar(&f.output, "output", "./output.json", "output location (.json, .json.gz, .json.zst)")
	fs.IntVar(&f.parallel, "p", texloc.DefaultParallelism, "number of cells scanned in parallel")
	fs.IntVar(&f.parallel, "parallel", texloc.DefaultParallelism, "number of cells scanned in parallel")
	fs.IntVar(&f.zoomLimit, "z", texloc.DefaultVisibilityThreshold, "total markers at which zoom visibility is limited (0 disables)")
	fs.IntVar(&f.zoomLimit, "no-zoom-limit", texloc.DefaultVisibilityThreshold, "total markers at which zoom visibility is limited (0 disables)")
	fs.Int64Var(&f.cacheBytes, "cache-bytes", 0, "block cache size for map reads (0 disables)")
	fs.Int64Var(&f.maxReads, "max-reads", 0, "maximum concurrent blob reads (0 is unlimited)")
	fs.Int64Var(&f.ioLimit, "io-limit", 0, "map read bandwidth in bytes/sec (0 is unlimited)")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.textures = fs.Args()
	f.explicitSet = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.explicitSet[fl.Name] = true })
	return f, nil
}

func (f *flags) set(names ...string) bool {
	for _, n := range names {
		if f.explicitSet[n] {
			return true
		}
	}
	return false
}

// merge applies explicitly set flags on top of cfg.
func (f *flags) merge(cfg *config.Config) {
	if f.set("o", "output") {
		cfg.Output = &f.output
	}
	if f.set("p", "parallel") {
		cfg.Parallelism = &f.parallel
	}
	if f.set("z", "no-zoom-limit") {
		cfg.VisibilityThreshold = &f.zoomLimit
	}
	if f.set("cache-bytes") {
		cfg.CacheBytes = &f.cacheBytes
	}
	if f.set("max-reads") {
		cfg.MaxConcurrentReads = &f.maxReads
	}
	if f.set("io-limit") {
		cfg.IOLimitBytesPerSec = &f.ioLimit
	}
	if f.set("log-level") {
		cfg.LogLevel = &f.logLevel
	}
	if f.set("log-format") {
		cfg.LogFormat = &f.logFormat
	}
	if f.mapPath != "" {
		if cfg.Maps == nil {
			cfg.Maps = make(map[string]string)
		}
		cfg.Maps[f.mapName] = f.mapPath
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Empty()
	if f.conf != "" {
		if cfg, err = config.Load(f.conf); err != nil {
			fmt.Fprintf(stderr, "texloc: %v\n", err)
			return 1
		}
	}
	f.merge(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "texloc: %v\n", err)
		return 2
	}

	logger := newLogger(cfg, stderr)
	if err := locate(ctx, f, cfg, logger, stdout); err != nil {
		logger.Error("texloc failed", "error", err)
		return 1
	}
	return 0
}

func locate(ctx context.Context, f *flags, cfg *config.Config, logger *texloc.Logger, stdout io.Writer) error {
	ix, err := buildIndex(f, logger)
	if err != nil {
		return err
	}
	if ix.Len() == 0 {
		return texloc.ErrNoTargets
	}
	logger.Info("textures to locate", "textures", ix.Textures())

	mapLoc, err := cfg.MapLocation(f.mapName)
	if err != nil {
		return fmt.Errorf("%w (use -map-path or -c)", err)
	}
	loc, err := config.ParseLocation(mapLoc)
	if err != nil {
		return err
	}
	if loc.Kind == config.LocationLocal {
		if fi, err := os.Stat(loc.Path); err != nil {
			return fmt.Errorf("map: %w", err)
		} else if !fi.IsDir() {
			return fmt.Errorf("map: %s is not a directory", loc.Path)
		}
	}
	store, err := openStore(ctx, loc)
	if err != nil {
		return err
	}
	logger.Info("loading cell headers", "map", mapLoc)

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.GetCacheBytes(),
		MaxConcurrentReads: cfg.GetMaxConcurrentReads(),
		IOLimitBytesPerSec: cfg.GetIOLimitBytesPerSec(),
	})
	locator, err := texloc.New(store,
		texloc.WithParallelism(cfg.GetParallelism()),
		texloc.WithVisibilityThreshold(cfg.GetVisibilityThreshold()),
		texloc.WithCache(cfg.GetCacheBytes()),
		texloc.WithResourceController(rc),
		texloc.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	markers, report, err := locator.Locate(ctx, ix)
	if err != nil {
		return err
	}

	if err := writeOutput(ctx, cfg.GetOutput(), markers); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d marker type(s) with %d total location(s) saved to [%s]\n",
		len(markers), report.Kept, cfg.GetOutput())
	if n := len(report.FailedJobs); n > 0 {
		fmt.Fprintf(stdout, "%d cell(s) could not be scanned, see log\n", n)
	}
	return nil
}

func buildIndex(f *flags, logger *texloc.Logger) (*texindex.Index, error) {
	if f.input == "" {
		return texindex.Identity(f.textures), nil
	}
	logger.Info("loading marker definitions", "path", f.input)
	defs, err := texindex.LoadDefinitions(f.input)
	if err != nil {
		return nil, err
	}
	logger.Info("marker definitions loaded", "markers", len(defs), "textures", defs.TextureCount())
	return texindex.FromDefinitions(defs), nil
}

func openStore(ctx context.Context, loc config.Location) (blobstore.BlobStore, error) {
	switch loc.Kind {
	case config.LocationS3:
		store, err := s3.New(ctx, loc.Bucket, s3.WithPrefix(loc.Prefix))
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.LocationMinIO:
		store, err := minio.NewFromEnv(loc.Endpoint, loc.Bucket, loc.Prefix, loc.Secure)
		if err != nil {
			return nil, fmt.Errorf("minio: %w", err)
		}
		return store, nil
	default:
		return blobstore.NewLocalStore(loc.Path), nil
	}
}

// writeOutput stores markers at output. Local files and object stores are
// both written atomically.
func writeOutput(ctx context.Context, output string, markers model.MarkerSet) error {
	loc, err := config.ParseLocation(output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if loc.Kind == config.LocationLocal {
		return marker.WriteFile(ctx, loc.Path, markers)
	}
	parent, name := loc.Split()
	if name == "" {
		return fmt.Errorf("output: %q does not name a file", output)
	}
	store, err := openStore(ctx, parent)
	if err != nil {
		return err
	}
	return marker.Put(ctx, store, name, markers)
}

func newLogger(cfg *config.Config, w io.Writer) *texloc.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.GetLogLevel()) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.GetLogFormat() == "json" {
		return texloc.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return texloc.NewLogger(slog.NewTextHandler(w, opts))
}
