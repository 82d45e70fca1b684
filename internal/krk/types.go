package krk

import "fmt"

type Side int8

const (
	White Side = 0
	Black Side = 1
)

// Flip 换边，Flip(Flip(s)) == s
func (s Side) Flip() Side {
	if s == White {
		return Black
	}
	return White
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// ParseSide 只认小写的 "white" / "black"。
func ParseSide(token string) (Side, error) {
	switch token {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return White, &InputError{Token: token, Err: ErrBadSide}
}

// Position = 白王 + 白车 + 黑王 + 轮到谁走。
// 值类型，可以直接当 map key：相等和哈希只看这四个字段。
type Position struct {
	WhiteKing  Square
	WhiteRook  Square
	BlackKing  Square
	SideToMove Side
}

func NewPosition(whiteKing, whiteRook, blackKing Square, side Side) Position {
	return Position{
		WhiteKing:  whiteKing,
		WhiteRook:  whiteRook,
		BlackKing:  blackKing,
		SideToMove: side,
	}
}

// Validate 只检查三个子是否重叠，其余（比如两王相邻）不管。
func (p Position) Validate() error {
	if p.WhiteKing == p.WhiteRook || p.WhiteKing == p.BlackKing || p.WhiteRook == p.BlackKing {
		return &InputError{Token: p.String(), Err: ErrSquareConflict}
	}
	return nil
}

// Format 调试输出
func (p Position) Format() string {
	return fmt.Sprintf("Position{white king: %s, rook: %s, black king: %s, turn: %s}",
		p.WhiteKing.Format(), p.WhiteRook.Format(), p.BlackKing.Format(), p.SideToMove)
}
