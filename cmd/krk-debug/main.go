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
	"krkmate/internal/notation"
)

func main() {
	maxNodes := flag.Int("max-nodes", 0, "node budget (0 = unlimited)")
	limit := flag.Duration("time", 30*time.Second, "time limit")
	noSolve := flag.Bool("moves-only", false, "only list successors")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()

	input := strings.Join(flag.Args(), " ")
	if input == "" {
		input = "white c4 g4 e4"
	}
	pos, err := krk.Parse(input)
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}

	fmt.Println("Position:", pos)
	fmt.Println("Tuple:   ", pos.Format())
	fmt.Println("FEN:     ", pos.FEN())

	succ := pos.Successors()
	fmt.Printf("In check: %v, checkmate: %v, stalemate: %v\n",
		pos.BlackInCheck(), pos.IsCheckmate(len(succ)), pos.IsStalemate(len(succ)))
	fmt.Println("Successors:", len(succ))
	for _, s := range succ {
		fmt.Println("  ", s.Format())
	}
	if *noSolve {
		return
	}

	e := engine.NewEngine(engine.WithLogger(log))
	out, err := e.Solve(context.Background(), pos, engine.SolveConfig{MaxNodes: *maxNodes, TimeLimit: *limit})
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
	fmt.Printf("Result: %s (nodes %d, %v, truncated %v)\n", out, out.Nodes, out.TimeUsed, out.Truncated)
	for i, p := range out.Path {
		fmt.Printf("%3d  %s\n", i, p)
	}
	if len(out.Path) > 1 {
		replay, err := notation.Line(out.Path)
		if err != nil {
			log.Warn().Err(err).Msg("san replay failed")
			return
		}
		fmt.Println("SAN:", notation.Movetext(pos.SideToMove, replay.SAN))
		fmt.Println("Chess checkmate:", replay.Checkmate)
	}
}
