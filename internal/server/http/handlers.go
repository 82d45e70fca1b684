package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
	"krkmate/internal/notation"
	"krkmate/internal/server/job"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	eng      *engine.Engine
	jobs     *job.Manager
	log      zerolog.Logger
	defaults engine.SolveConfig
}

// NewHandler defaults 是请求里没给限制时用的搜索配置
func NewHandler(eng *engine.Engine, jobs *job.Manager, log zerolog.Logger, defaults engine.SolveConfig) *Handler {
	return &Handler{eng: eng, jobs: jobs, log: log, defaults: defaults}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/solve":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleSolve(w, r)

	case "/api/job":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleJob(w, r)

	case "/api/moves":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMoves(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	pos, err := krk.Parse(req.Position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	j := h.jobs.Create(pos)
	out, solveErr := h.eng.Solve(r.Context(), pos, requestConfig(req, h.defaults))
	j, err = h.jobs.Finish(j.ID, out, solveErr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if solveErr != nil {
		h.log.Error().Err(solveErr).Str("job", j.ID).Msg("solve failed")
		http.Error(w, solveErr.Error(), statusFor(solveErr))
		return
	}

	h.log.Info().
		Str("job", j.ID).
		Str("position", pos.String()).
		Str("result", out.String()).
		Int("nodes", out.Nodes).
		Msg("solved")
	h.writeJSON(w, h.render(j))
}

func (h *Handler) handleJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	j, err := h.jobs.Get(req.JobID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.writeJSON(w, h.render(j))
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	pos, err := krk.Parse(req.Position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	succ := pos.Successors()
	resp := MovesResponse{
		Position:   pos.String(),
		FEN:        pos.FEN(),
		Successors: positionsToDTO(succ),
		InCheck:    pos.BlackInCheck(),
		Checkmate:  pos.IsCheckmate(len(succ)),
		Stalemate:  pos.IsStalemate(len(succ)),
	}
	h.writeJSON(w, resp)
}

// render 在 job 的基础上补上 SAN
func (h *Handler) render(j job.Job) SolveResponse {
	resp := jobToDTO(j)
	if j.Status != job.Done || len(j.Outcome.Path) < 2 {
		return resp
	}
	replay, err := notation.Line(j.Outcome.Path)
	if err != nil {
		h.log.Warn().Err(err).Str("job", j.ID).Msg("san replay failed")
		return resp
	}
	resp.SAN = replay.SAN
	resp.Movetext = notation.Movetext(j.Pos.SideToMove, replay.SAN)
	return resp
}

// 输入错误 400，其余（包括走法生成的不变量被破坏）500
func statusFor(err error) int {
	var ie *krk.InputError
	if errors.As(err, &ie) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("writeJSON")
	}
}
