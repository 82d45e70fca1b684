// Package mobile 给 gomobile bind 用，只暴露 string / int / error 这类简单类型。
package mobile

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
	httpserver "krkmate/internal/server/http"
	"krkmate/internal/server/job"
)

var (
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	eng    = engine.NewEngine(engine.WithLogger(logger))
)

// StartServer 在本机起 HTTP 服务，port 例如 "2888"。
// 放到后台跑，不阻塞调用方的 UI 线程。
func StartServer(port string, timeLimitMs int) {
	defaults := engine.SolveConfig{TimeLimit: time.Duration(timeLimitMs) * time.Millisecond}
	h := httpserver.NewHandler(eng, job.NewManager(), logger, defaults)

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer(h, logger))

	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			logger.Error().Err(err).Msg("server stopped")
		}
	}()
}

// Solve 直接求解，返回 "INF" 或步数。timeLimitMs <= 0 表示不限时
func Solve(position string, timeLimitMs int) (string, error) {
	pos, err := krk.Parse(position)
	if err != nil {
		return "", err
	}
	cfg := engine.SolveConfig{}
	if timeLimitMs > 0 {
		cfg.TimeLimit = time.Duration(timeLimitMs) * time.Millisecond
	}
	out, err := eng.Solve(context.Background(), pos, cfg)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}
