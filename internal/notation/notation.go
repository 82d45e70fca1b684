// Package notation 把求解出的路线放进完整规则的棋局里重放，输出标准代数记谱（SAN）。
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"krkmate/internal/krk"
)

var ErrIllegalPly = errors.New("ply not legal under full chess rules")

// Replay 重放结果
type Replay struct {
	SAN       []string
	Checkmate bool // 完整规则下最后一个局面是否将死
}

// Line 逐步匹配 notnil/chess 的合法着法并记谱。
// 路线里的每一步在完整规则下都应当合法，找不到对应着法时返回 ErrIllegalPly。
func Line(path []krk.Position) (Replay, error) {
	if len(path) == 0 {
		return Replay{}, nil
	}
	opt, err := chess.FEN(path[0].FEN())
	if err != nil {
		return Replay{}, fmt.Errorf("load %s: %w", path[0], err)
	}
	game := chess.NewGame(opt)

	var r Replay
	for i := 1; i < len(path); i++ {
		from, to := changedSquares(path[i-1], path[i])
		mv := findMove(game.ValidMoves(), from, to)
		if mv == nil {
			return r, fmt.Errorf("%w: ply %d %s -> %s", ErrIllegalPly, i, path[i-1], path[i])
		}
		r.SAN = append(r.SAN, chess.AlgebraicNotation{}.Encode(game.Position(), mv))
		if err := game.Move(mv); err != nil {
			return r, fmt.Errorf("ply %d: %w", i, err)
		}
	}
	r.Checkmate = game.Method() == chess.Checkmate
	return r, nil
}

// Movetext 带回合号的记谱，例如 "1... Kg8 2. Ra8#"
func Movetext(first krk.Side, san []string) string {
	var sb strings.Builder
	move := 1
	side := first
	for i, s := range san {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case side == krk.White:
			fmt.Fprintf(&sb, "%d. ", move)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", move)
		}
		sb.WriteString(s)
		if side == krk.Black {
			move++
		}
		side = side.Flip()
	}
	return sb.String()
}

// changedSquares 找出两个相邻局面之间动的那个子
func changedSquares(prev, next krk.Position) (chess.Square, chess.Square) {
	switch {
	case prev.WhiteKing != next.WhiteKing:
		return toChess(prev.WhiteKing), toChess(next.WhiteKing)
	case prev.WhiteRook != next.WhiteRook:
		return toChess(prev.WhiteRook), toChess(next.WhiteRook)
	default:
		return toChess(prev.BlackKing), toChess(next.BlackKing)
	}
}

func toChess(sq krk.Square) chess.Square {
	return chess.Square(sq.Index())
}

func findMove(moves []*chess.Move, from, to chess.Square) *chess.Move {
	for _, m := range moves {
		if m.S1() == from && m.S2() == to {
			return m
		}
	}
	return nil
}
