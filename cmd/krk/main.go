// krk 读入一个残局局面，写出到将死的最少步数或 INF。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
)

func main() {
	in := flag.String("in", "zad1_input.txt", "input file with one position")
	out := flag.String("out", "zad1_output.txt", "output file")
	maxNodes := flag.Int("max-nodes", 0, "node budget (0 = unlimited)")
	limit := flag.Duration("time", 0, "time limit (0 = unlimited)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	cfg := engine.SolveConfig{MaxNodes: *maxNodes, TimeLimit: *limit}
	result, err := run(context.Background(), engine.NewEngine(engine.WithLogger(log)), *in, *out, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("krk failed")
	}
	log.Info().Str("result", result).Str("out", *out).Msg("done")
}

// run 读 in 的第一行，求解后把结果写进 out，返回写入的内容
func run(ctx context.Context, e *engine.Engine, in, out string, cfg engine.SolveConfig) (string, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	pos, err := krk.Parse(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("%s: %w", in, err)
	}

	outcome, err := e.Solve(ctx, pos, cfg)
	if err != nil {
		return "", err
	}
	result := outcome.String()
	if err := os.WriteFile(out, []byte(result), 0o644); err != nil {
		return "", err
	}
	return result, nil
}
