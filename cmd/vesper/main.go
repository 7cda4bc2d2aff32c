package main

import (
	"flag"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ianagbip1oti/vesper/internal/engine"
	"github.com/ianagbip1oti/vesper/internal/storage"
	"github.com/ianagbip1oti/vesper/internal/uci"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	depth      = flag.Int("depth", -1, "default search depth, -1 for VESPER_DEPTH or the engine default")
	cacheDir   = flag.String("cache", "", "analysis cache directory, \"default\" for the user cache dir, empty for memory only")
	hashMB     = flag.Int("hash", 16, "in-memory result table size in MB")
	logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error, disabled")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run is main without os.Exit, so deferred cleanup always happens.
func run() int {
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			logger.Error().Err(err).Msg("could not create CPU profile")
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error().Err(err).Msg("could not start CPU profile")
			return 1
		}
		defer pprof.StopCPUProfile()
		logger.Info().Str("path", profilePath).Msg("cpu-profile")
	}

	var backing engine.Cache
	if store := openStore(logger); store != nil {
		defer store.Close()
		backing = store
	}

	eng := engine.New(engine.Options{
		Cache:  engine.NewResultTable(*hashMB, backing),
		Logger: &logger,
	})
	if d, ok := startDepth(*depth, os.Getenv("VESPER_DEPTH")); ok {
		eng.SetDepth(d)
	}

	protocol := uci.New(eng, os.Stdin, os.Stdout)
	protocol.SetLogger(logger)
	if err := protocol.Run(); err != nil {
		logger.Error().Err(err).Msg("protocol")
		return 1
	}
	return 0
}

// startDepth picks the starting search depth: the flag when it is not
// negative, otherwise a non-negative VESPER_DEPTH. ok is false when neither
// is set and the engine default applies. Depth 0 is a valid choice.
func startDepth(flagDepth int, env string) (depth int, ok bool) {
	if flagDepth >= 0 {
		return flagDepth, true
	}
	if v, err := strconv.Atoi(env); err == nil && v >= 0 {
		return v, true
	}
	return 0, false
}

// openStore opens the persistent analysis cache named by -cache. A store
// that fails to open is logged and the engine runs with memory only.
func openStore(logger zerolog.Logger) *storage.Store {
	var (
		store *storage.Store
		err   error
	)
	switch *cacheDir {
	case "":
		return nil
	case "default":
		store, err = storage.OpenDefault()
	default:
		store, err = storage.Open(*cacheDir)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("analysis cache disabled")
		return nil
	}

	n, err := store.Count()
	if err != nil {
		logger.Warn().Err(err).Msg("count cached results")
	}
	logger.Info().Int("entries", n).Msg("analysis-cache")
	return store
}
