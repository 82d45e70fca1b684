package engine

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"krkmate/internal/krk"
)

// 多少个节点检查一次取消 / 超时
const checkInterval = 1024

const noParent = ^uint32(0)

// 搜索配置，0 表示不限制
type SolveConfig struct {
	MaxNodes  int           // 最多展开多少个节点
	MaxDepth  int           // 最深多少 ply
	TimeLimit time.Duration // 时间上限
}

type Kind int8

const (
	// Unbounded 整个可达空间搜完也没找到将死（或者被预算截断，见 Truncated）
	Unbounded Kind = iota
	// ForcedMate Path 从初始局面一直到第一个将死局面
	ForcedMate
)

func (k Kind) String() string {
	if k == ForcedMate {
		return "mate"
	}
	return "unbounded"
}

// 搜索结果
type Outcome struct {
	Kind      Kind
	Path      []krk.Position // 含初始局面，最后一个是将死局面
	Nodes     int            // 出队的节点数
	TimeUsed  time.Duration
	Truncated bool // 预算 / 深度 / 取消导致提前结束
}

// Plies 到将死的步数；Unbounded 时为 -1
func (o Outcome) Plies() int {
	if o.Kind != ForcedMate {
		return -1
	}
	return len(o.Path) - 1
}

// String 文件输出格式："INF" 或者步数
func (o Outcome) String() string {
	if o.Kind != ForcedMate {
		return "INF"
	}
	return strconv.Itoa(o.Plies())
}

// Solve 广度优先找最短的将死路线。先出队的将死一定层数最少。
// 初始局面有子重叠时返回 *krk.InputError；走法生成里发现的不变量错误会被 recover 成 error。
func (e *Engine) Solve(ctx context.Context, pos krk.Position, cfg SolveConfig) (out Outcome, err error) {
	if err := pos.Validate(); err != nil {
		return Outcome{}, err
	}
	// 缓存里的杀法比深度上限还长时重新搜，让结果按上限截断
	if cached, ok := e.lookup(pos); ok && (cfg.MaxDepth <= 0 || cached.Plies() <= cfg.MaxDepth) {
		return cached, nil
	}

	out, err = e.solve(ctx, pos, cfg)
	if err != nil {
		return Outcome{}, err
	}
	e.store(pos, out)
	return out, nil
}

// solve 真正跑一次广度优先，走法生成里的 *krk.InvariantError 在这里转成 error
func (e *Engine) solve(ctx context.Context, pos krk.Position, cfg SolveConfig) (out Outcome, err error) {
	start := time.Now()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*krk.InvariantError)
		if !ok {
			panic(r)
		}
		e.log.Error().Err(ie).Str("position", pos.String()).Msg("search aborted")
		out, err = Outcome{}, fmt.Errorf("solve %s: %w", pos, ie)
	}()

	e.log.Debug().
		Str("position", pos.String()).
		Int("max_nodes", cfg.MaxNodes).
		Int("max_depth", cfg.MaxDepth).
		Dur("time_limit", cfg.TimeLimit).
		Msg("search started")

	s := newSearch()
	out = s.run(ctx, pos, cfg)
	out.TimeUsed = time.Since(start)
	atomic.AddInt64(&e.nodes, int64(out.Nodes))

	e.log.Debug().
		Str("position", pos.String()).
		Str("result", out.String()).
		Int("nodes", out.Nodes).
		Int("visited", s.visited.count()).
		Bool("truncated", out.Truncated).
		Dur("took", out.TimeUsed).
		Msg("search finished")

	return out, nil
}

type queueEntry struct {
	key   uint32
	depth int
}

// 一次搜索独占的状态：去重集合、父指针、FIFO 队列
type search struct {
	visited bitSet
	parent  []uint32
	queue   []queueEntry
	buf     []krk.Position
}

func newSearch() *search {
	return &search{
		visited: newBitSet(krk.NumKeys),
		parent:  make([]uint32, krk.NumKeys),
		queue:   make([]queueEntry, 0, 1<<12),
		buf:     make([]krk.Position, 0, 32),
	}
}

func (s *search) run(ctx context.Context, root krk.Position, cfg SolveConfig) Outcome {
	var deadline time.Time
	if cfg.TimeLimit > 0 {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	rootKey := root.Key()
	s.visited.set(rootKey)
	s.parent[rootKey] = noParent
	s.queue = append(s.queue, queueEntry{key: rootKey})

	nodes := 0
	cut := false
	for head := 0; head < len(s.queue); head++ {
		if cfg.MaxNodes > 0 && nodes >= cfg.MaxNodes {
			return Outcome{Kind: Unbounded, Nodes: nodes, Truncated: true}
		}
		if nodes%checkInterval == 0 {
			if ctx.Err() != nil || (!deadline.IsZero() && time.Now().After(deadline)) {
				return Outcome{Kind: Unbounded, Nodes: nodes, Truncated: true}
			}
		}
		nodes++

		cur := s.queue[head]
		pos := krk.KeyPosition(cur.key)
		s.buf = pos.AppendSuccessors(s.buf[:0])
		if pos.IsCheckmate(len(s.buf)) {
			return Outcome{Kind: ForcedMate, Path: s.path(cur.key), Nodes: nodes}
		}
		if cfg.MaxDepth > 0 && cur.depth >= cfg.MaxDepth {
			cut = true
			continue
		}

		for _, next := range s.buf {
			k := next.Key()
			if s.visited.test(k) {
				continue
			}
			s.visited.set(k)
			s.parent[k] = cur.key
			s.queue = append(s.queue, queueEntry{key: k, depth: cur.depth + 1})
		}
	}
	return Outcome{Kind: Unbounded, Nodes: nodes, Truncated: cut}
}

// path 顺着父指针回到根，再倒过来
func (s *search) path(key uint32) []krk.Position {
	var rev []krk.Position
	for k := key; k != noParent; k = s.parent[k] {
		rev = append(rev, krk.KeyPosition(k))
	}
	out := make([]krk.Position, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}
