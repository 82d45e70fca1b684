package job

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krkmate/internal/engine"
	"krkmate/internal/krk"
)

func testPosition(t *testing.T) krk.Position {
	t.Helper()
	pos, err := krk.ParsePosition("white g6 a1 h8")
	require.NoError(t, err)
	return pos
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	pos := testPosition(t)

	j := m.Create(pos)
	_, err := uuid.Parse(j.ID)
	require.NoError(t, err)
	assert.Equal(t, Pending, j.Status)
	assert.Equal(t, pos, j.Pos)

	out := engine.Outcome{Kind: engine.ForcedMate, Path: []krk.Position{pos}, Nodes: 1}
	done, err := m.Finish(j.ID, out, nil)
	require.NoError(t, err)
	assert.Equal(t, Done, done.Status)
	assert.False(t, done.UpdatedAt.Before(j.CreatedAt))

	// 调用方改自己的切片不影响存储
	out.Path[0] = krk.Position{}
	got, err := m.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, pos, got.Outcome.Path[0])
	got.Outcome.Path[0] = krk.Position{}
	again, err := m.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, pos, again.Outcome.Path[0])
}

func TestManagerFailed(t *testing.T) {
	m := NewManager()
	j := m.Create(testPosition(t))
	failed, err := m.Finish(j.ID, engine.Outcome{}, errors.New("boom"))
	require.NoError(t, err)
	assert.Equal(t, Failed, failed.Status)
	assert.Equal(t, "boom", failed.Err)
}

func TestManagerNotFound(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Finish("nope", engine.Outcome{}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerConcurrent(t *testing.T) {
	m := NewManager()
	pos := testPosition(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j := m.Create(pos)
			_, err := m.Finish(j.ID, engine.Outcome{}, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
}
