package krk

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

type fromTo struct{ from, to int }

// movedPiece 找出从 p 到 s 动了哪个子
func movedPiece(p, s Position) fromTo {
	switch {
	case p.WhiteKing != s.WhiteKing:
		return fromTo{p.WhiteKing.Index(), s.WhiteKing.Index()}
	case p.WhiteRook != s.WhiteRook:
		return fromTo{p.WhiteRook.Index(), s.WhiteRook.Index()}
	default:
		return fromTo{p.BlackKing.Index(), s.BlackKing.Index()}
	}
}

// 规则是国际象棋的子集：生成的每一步都必须是完整规则下的合法着法
func TestSuccessorsAreLegalChessMoves(t *testing.T) {
	rooks := []Square{EncodeSquare(0, 0), EncodeSquare(3, 3), EncodeSquare(4, 6), EncodeSquare(7, 7)}
	checked := 0
	for _, wr := range rooks {
		for wk := Square(0); wk < NumSquares; wk++ {
			for bk := Square(0); bk < NumSquares; bk++ {
				if wk == wr || bk == wr || bk == wk {
					continue
				}
				for _, side := range []Side{White, Black} {
					p := NewPosition(wk, wr, bk, side)
					// 非法局面：两王相邻，或者白方走棋时黑王已被将
					if p.KingsAdjacent() || (side == White && p.BlackInCheck()) {
						continue
					}
					b := dragontoothmg.ParseFen(p.FEN())
					legal := make(map[fromTo]bool)
					for _, mv := range b.GenerateLegalMoves() {
						legal[fromTo{int(mv.From()), int(mv.To())}] = true
					}
					for _, s := range p.Successors() {
						if !legal[movedPiece(p, s)] {
							t.Fatalf("%s -> %s is not a legal chess move (fen %s)", p, s, p.FEN())
						}
					}
					checked++
				}
			}
		}
	}
	if checked == 0 {
		t.Fatal("no positions checked")
	}
}

// 车不贴黑王、白王也不挡车线时，简化规则下的将死就是完整规则下的将死
func TestCheckmatesAgreeWithChessRules(t *testing.T) {
	mates := 0
	forEachPosition(func(p Position) {
		if p.SideToMove != Black || p.KingsAdjacent() {
			return
		}
		if !p.IsCheckmate(len(p.Successors())) {
			return
		}
		if near(p.WhiteRook.Col(), p.WhiteRook.Row(), p.BlackKing.Col(), p.BlackKing.Row()) ||
			between(p.WhiteRook, p.BlackKing, p.WhiteKing) {
			return
		}
		b := dragontoothmg.ParseFen(p.FEN())
		if !b.OurKingInCheck() || len(b.GenerateLegalMoves()) != 0 {
			t.Fatalf("%s is mate here but not under full rules (fen %s)", p, p.FEN())
		}
		mates++
	})
	if mates == 0 {
		t.Fatal("expected some checkmates")
	}
}
