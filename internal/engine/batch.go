package engine

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"krkmate/internal/krk"
)

// SolveAll 并发求解一批局面，结果顺序和输入一致。
// 任何一个出错都会取消其余的搜索。workers <= 0 时用 CPU 核数。
func (e *Engine) SolveAll(ctx context.Context, positions []krk.Position, cfg SolveConfig, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Outcome, len(positions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pos := range positions {
		i, pos := i, pos
		g.Go(func() error {
			out, err := e.Solve(ctx, pos, cfg)
			if err != nil {
				return fmt.Errorf("position %d: %w", i+1, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.log.Info().
		Int("positions", len(positions)).
		Int("workers", workers).
		Int64("total_nodes", e.Nodes()).
		Msg("batch finished")
	return results, nil
}
