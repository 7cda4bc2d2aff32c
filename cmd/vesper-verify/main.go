package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ianagbip1oti/vesper/internal/board"
	"github.com/ianagbip1oti/vesper/internal/verify"
)

var (
	fenFile  = flag.String("fen-file", "", "file with one position per line")
	workers  = flag.Int("workers", runtime.NumCPU(), "parallel checkers")
	random   = flag.Int("random", 0, "also check this many random playouts")
	plies    = flag.Int("plies", 80, "maximum length of a random playout")
	seed     = flag.Int64("seed", 1, "random playout seed")
	logLevel = flag.String("log-level", "info", "log level")
)

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	fens := []string{board.StartLayout}
	if *fenFile != "" {
		fromFile, err := readPositions(*fenFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("read positions")
		}
		fens = fromFile
	}
	if *random > 0 {
		fens = append(fens, verify.RandomPositions(*random, *plies, *seed)...)
	}

	ctx := logger.WithContext(context.Background())
	report, err := verify.Run(ctx, fens, *workers)
	if err != nil {
		logger.Fatal().Err(err).Msg("verify")
	}

	for _, m := range report.Mismatches {
		fmt.Println(m)
	}
	fmt.Printf("positions %d moves %d sliders %d mismatches %d\n",
		report.Positions, report.Moves, report.Sliders, len(report.Mismatches))
	if !report.OK() {
		os.Exit(1)
	}
}

// readPositions returns the non-empty, non-comment lines of path.
func readPositions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return fens, nil
}
