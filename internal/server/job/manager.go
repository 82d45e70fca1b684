package job

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
)

var ErrNotFound = errors.New("job not found")

type Manager struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewManager() *Manager {
	return &Manager{jobs: make(map[string]*Job)}
}

// Create 登记一个新任务，状态为 pending
func (m *Manager) Create(pos krk.Position) Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	j := &Job{
		ID:        uuid.NewString(),
		Pos:       pos,
		Status:    Pending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.jobs[j.ID] = j
	return *j
}

func (m *Manager) Get(id string) (Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return snapshot(j), nil
}

// Finish 记录结果；err 非空时任务标为 failed
func (m *Manager) Finish(id string, out engine.Outcome, err error) (Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	if err != nil {
		j.Status = Failed
		j.Err = err.Error()
	} else {
		j.Status = Done
		j.Outcome = out
		j.Outcome.Path = slices.Clone(out.Path)
	}
	j.UpdatedAt = time.Now()
	return snapshot(j), nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.jobs)
}

func snapshot(j *Job) Job {
	c := *j
	c.Outcome.Path = slices.Clone(j.Outcome.Path)
	return c
}
