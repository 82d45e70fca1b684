package httpserver

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Server 在 Handler 外面包一层访问日志
type Server struct {
	h   http.Handler
	log zerolog.Logger
}

func NewServer(h *Handler, log zerolog.Logger) *Server {
	return &Server{h: h, log: log}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	s.h.ServeHTTP(sw, r)
	s.log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", sw.status).
		Dur("took", time.Since(start)).
		Msg("request")
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
