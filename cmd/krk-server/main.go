package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"krkmate/internal/engine"
	httpserver "krkmate/internal/server/http"
	"krkmate/internal/server/job"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	maxNodes := flag.Int("max-nodes", 0, "default node budget per request (0 = unlimited)")
	limit := flag.Duration("time", 10*time.Second, "default time limit per request")
	cacheSize := flag.Int("cache", 4096, "solved positions kept in memory (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	eng := engine.NewEngine(engine.WithLogger(log), engine.WithCacheSize(*cacheSize))
	defaults := engine.SolveConfig{MaxNodes: *maxNodes, TimeLimit: *limit}
	h := httpserver.NewHandler(eng, job.NewManager(), log, defaults)

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer(h, log))

	log.Info().Str("addr", *addr).Dur("time_limit", *limit).Msg("listening")
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
