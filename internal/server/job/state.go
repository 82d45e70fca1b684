package job

import (
	"time"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
)

type Status string

const (
	Pending Status = "pending"
	Done    Status = "done"
	Failed  Status = "failed"
)

// Job 一次求解任务。Manager 之外只拿到副本。
type Job struct {
	ID        string
	Pos       krk.Position
	Status    Status
	Outcome   engine.Outcome
	Err       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
