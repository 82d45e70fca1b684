package engine

import (
	"golang.org/x/exp/slices"

	"krkmate/internal/krk"
)

func (e *Engine) lookup(pos krk.Position) (Outcome, bool) {
	if e.cache == nil {
		return Outcome{}, false
	}
	e.cache.mu.RLock()
	out, ok := e.cache.m[pos]
	e.cache.mu.RUnlock()
	if !ok {
		return Outcome{}, false
	}
	// 路径复制一份，调用方改了也不影响缓存
	out.Path = slices.Clone(out.Path)
	return out, true
}

// 存入缓存；满了就整个清掉（和置换表一样的简单策略）
func (e *Engine) store(pos krk.Position, out Outcome) {
	if e.cache == nil || out.Truncated {
		return
	}
	out.Path = slices.Clone(out.Path)
	e.cache.mu.Lock()
	if len(e.cache.m) >= e.cache.cap {
		e.cache.m = make(map[krk.Position]Outcome, e.cache.cap)
	}
	e.cache.m[pos] = out
	e.cache.mu.Unlock()
}

// CacheLen 当前缓存条目数
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	e.cache.mu.RLock()
	defer e.cache.mu.RUnlock()
	return len(e.cache.m)
}
