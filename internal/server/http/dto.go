package httpserver

import (
	"krkmate/internal/engine"
	"krkmate/internal/krk"
	"krkmate/internal/server/job"
)

// SolveRequest 提交一个局面求解。position 可以是 "white c4 g4 e4" 这种格式，也可以是 FEN
type SolveRequest struct {
	Position string `json:"position"`
	MaxNodes int    `json:"max_nodes"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"` // 0 用服务端默认
}

// JobRequest 按 job_id 取回之前的结果
type JobRequest struct {
	JobID string `json:"job_id"`
}

type SolveResponse struct {
	JobID     string   `json:"job_id"`
	Position  string   `json:"position"`
	FEN       string   `json:"fen"`
	Result    string   `json:"result"` // "INF" 或步数
	Plies     int      `json:"plies"`  // INF 时为 -1
	Line      []string `json:"line"`
	SAN       []string `json:"san,omitempty"`
	Movetext  string   `json:"movetext,omitempty"`
	Nodes     int      `json:"nodes"`
	TimeMs    int64    `json:"time_ms"`
	Truncated bool     `json:"truncated"`
	Status    string   `json:"status"` // pending / done / failed
	Error     string   `json:"error,omitempty"`
}

type MovesRequest struct {
	Position string `json:"position"`
}

type MovesResponse struct {
	Position   string   `json:"position"`
	FEN        string   `json:"fen"`
	Successors []string `json:"successors"`
	InCheck    bool     `json:"in_check"`
	Checkmate  bool     `json:"checkmate"`
	Stalemate  bool     `json:"stalemate"`
}

func positionsToDTO(ps []krk.Position) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func jobToDTO(j job.Job) SolveResponse {
	resp := SolveResponse{
		JobID:    j.ID,
		Position: j.Pos.String(),
		FEN:      j.Pos.FEN(),
		Status:   string(j.Status),
		Error:    j.Err,
	}
	if j.Status != job.Done {
		resp.Plies = -1
		return resp
	}
	out := j.Outcome
	resp.Result = out.String()
	resp.Plies = out.Plies()
	resp.Line = positionsToDTO(out.Path)
	resp.Nodes = out.Nodes
	resp.TimeMs = out.TimeUsed.Milliseconds()
	resp.Truncated = out.Truncated
	return resp
}

func requestConfig(req SolveRequest, def engine.SolveConfig) engine.SolveConfig {
	cfg := def
	if req.MaxNodes > 0 {
		cfg.MaxNodes = req.MaxNodes
	}
	if req.MaxDepth > 0 {
		cfg.MaxDepth = req.MaxDepth
	}
	if req.TimeMs > 0 {
		cfg.TimeLimit = msToDuration(req.TimeMs)
	}
	return cfg
}
