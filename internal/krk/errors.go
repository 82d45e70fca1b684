package krk

import (
	"errors"
	"fmt"
)

var (
	ErrBadSide        = errors.New("invalid side")
	ErrBadSquare      = errors.New("invalid square")
	ErrTokenCount     = errors.New("expected 4 tokens")
	ErrSquareConflict = errors.New("two pieces share a square")
	ErrBadFEN         = errors.New("invalid FEN")

	// ErrInvariant 走法生成时发现子重叠：输入构造有问题，搜索必须中止。
	ErrInvariant = errors.New("position invariant violated")
)

// InputError 输入边界上的解析 / 校验错误。
type InputError struct {
	Token string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("bad position input %q: %v", e.Token, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// InvariantError 生成走法时以 panic 抛出，engine.Solve 会 recover 成普通 error。
type InvariantError struct {
	Pos    Position
	Square Square
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: %s at %s", ErrInvariant, e.Pos, e.Square)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }
