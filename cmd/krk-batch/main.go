// krk-batch 并发求解一个文件里的多个局面（每行一个），输出 JSON。
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
)

type Result struct {
	Line      int    `json:"line"`
	Position  string `json:"position"`
	Result    string `json:"result"`
	Plies     int    `json:"plies"`
	Nodes     int    `json:"nodes"`
	TimeMs    int64  `json:"time_ms"`
	Truncated bool   `json:"truncated"`
}

func main() {
	in := flag.String("in", "", "input file, one position per line (default stdin)")
	out := flag.String("out", "", "output JSON file (default stdout)")
	workers := flag.Int("workers", 0, "parallel searches (0 = number of CPUs)")
	maxNodes := flag.Int("max-nodes", 0, "node budget per position (0 = unlimited)")
	limit := flag.Duration("time", 0, "time limit per position (0 = unlimited)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var r io.Reader = os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal().Err(err).Msg("open input")
		}
		defer f.Close()
		r = f
	}

	e := engine.NewEngine(engine.WithLogger(log))
	cfg := engine.SolveConfig{MaxNodes: *maxNodes, TimeLimit: *limit}
	start := time.Now()
	results, err := solveLines(ctx, e, r, cfg, *workers)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("create output")
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
	log.Info().Int("positions", len(results)).Dur("took", time.Since(start)).Msg("done")
}

// solveLines 空行和 # 开头的行跳过，Line 是输入里的行号
func solveLines(ctx context.Context, e *engine.Engine, r io.Reader, cfg engine.SolveConfig, workers int) ([]Result, error) {
	var (
		positions []krk.Position
		lines     []int
	)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pos, err := krk.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		positions = append(positions, pos)
		lines = append(lines, n)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	outcomes, err := e.SolveAll(ctx, positions, cfg, workers)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(outcomes))
	for i, o := range outcomes {
		results[i] = Result{
			Line:      lines[i],
			Position:  positions[i].String(),
			Result:    o.String(),
			Plies:     o.Plies(),
			Nodes:     o.Nodes,
			TimeMs:    o.TimeUsed.Milliseconds(),
			Truncated: o.Truncated,
		}
	}
	return results, nil
}
