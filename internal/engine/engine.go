package engine

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"krkmate/internal/krk"
)

const defaultCacheCap = 1 << 12

// 已解出的局面缓存，只存完整搜索（没被预算截断）的结果
type outcomeCache struct {
	mu  sync.RWMutex
	m   map[krk.Position]Outcome
	cap int
}

type Engine struct {
	log   zerolog.Logger
	cache *outcomeCache

	// 所有搜索累计的节点数
	nodes int64
}

type Option func(*Engine)

// WithLogger 搜索开始 / 结束在 debug 级别打日志
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithCacheSize n <= 0 时关闭结果缓存
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n <= 0 {
			e.cache = nil
			return
		}
		e.cache = &outcomeCache{m: make(map[krk.Position]Outcome, n), cap: n}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log: zerolog.Nop(),
		cache: &outcomeCache{
			m:   make(map[krk.Position]Outcome, defaultCacheCap),
			cap: defaultCacheCap,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Nodes 引擎创建以来展开过的节点总数
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}
