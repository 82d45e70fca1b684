package krk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Position {
	t.Helper()
	pos, err := ParsePosition(s)
	require.NoError(t, err, s)
	return pos
}

func mustParseAll(t *testing.T, ss ...string) []Position {
	t.Helper()
	out := make([]Position, 0, len(ss))
	for _, s := range ss {
		out = append(out, mustParse(t, s))
	}
	return out
}

func TestBlackKingMoves(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		want []string
	}{
		{
			name: "edge",
			pos:  "black c4 c8 h3",
			want: []string{"white c4 c8 g2", "white c4 c8 g3", "white c4 c8 g4", "white c4 c8 h4", "white c4 c8 h2"},
		},
		{
			name: "corner",
			pos:  "black c4 c8 a1",
			want: []string{"white c4 c8 a2", "white c4 c8 b1", "white c4 c8 b2"},
		},
		{
			name: "unobstructed",
			pos:  "black a1 b2 f4",
			want: []string{
				"white a1 b2 e3", "white a1 b2 e4", "white a1 b2 e5",
				"white a1 b2 f3", "white a1 b2 f5",
				"white a1 b2 g3", "white a1 b2 g4", "white a1 b2 g5",
			},
		},
		{
			// g6 盖住 g7/h7，车在 a 列和第 1 行
			name: "boxed in",
			pos:  "black g6 a1 h8",
			want: []string{"white g6 a1 g8"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParse(t, tt.pos)
			assert.ElementsMatch(t, mustParseAll(t, tt.want...), pos.Successors())
			assert.ElementsMatch(t, pos.BlackKingMoves(), pos.Successors())
		})
	}
}

func TestRookMoves(t *testing.T) {
	t.Run("unobstructed", func(t *testing.T) {
		pos := mustParse(t, "white a1 e4 h8")
		want := mustParseAll(t,
			"black a1 a4 h8", "black a1 b4 h8", "black a1 c4 h8", "black a1 d4 h8",
			"black a1 f4 h8", "black a1 g4 h8", "black a1 h4 h8",
			"black a1 e1 h8", "black a1 e2 h8", "black a1 e3 h8",
			"black a1 e5 h8", "black a1 e6 h8", "black a1 e7 h8", "black a1 e8 h8",
		)
		assert.ElementsMatch(t, want, pos.RookMoves())
		// 王 a1 还有 a2 b1 b2
		assert.Len(t, pos.Successors(), len(want)+3)
	})

	t.Run("blocked by own king", func(t *testing.T) {
		pos := mustParse(t, "white c4 c8 h4")
		want := mustParseAll(t,
			"black c4 a8 h4", "black c4 b8 h4", "black c4 d8 h4", "black c4 e8 h4",
			"black c4 f8 h4", "black c4 g8 h4", "black c4 h8 h4",
			"black c4 c5 h4", "black c4 c6 h4", "black c4 c7 h4",
		)
		assert.ElementsMatch(t, want, pos.RookMoves())
	})

	t.Run("blocked by black king", func(t *testing.T) {
		pos := mustParse(t, "white a8 b4 f4")
		got := pos.RookMoves()
		for _, s := range got {
			c, _ := s.WhiteRook.Decode()
			// 不能越过 / 停在 f4，也不能停到 e4（贴着黑王）
			assert.Less(t, c, 4, s.String())
		}
		// 横向 a4 c4 d4，纵向 b1..b8 除 b4
		assert.Len(t, got, 3+7)
	})

	t.Run("never next to black king", func(t *testing.T) {
		pos := mustParse(t, "white a1 e7 h8")
		want := mustParseAll(t,
			"black a1 a7 h8", "black a1 b7 h8", "black a1 c7 h8", "black a1 d7 h8", "black a1 f7 h8",
			"black a1 e1 h8", "black a1 e2 h8", "black a1 e3 h8", "black a1 e4 h8",
			"black a1 e5 h8", "black a1 e6 h8", "black a1 e8 h8",
		)
		assert.ElementsMatch(t, want, pos.RookMoves())
	})
}

func TestWhiteKingMoves(t *testing.T) {
	pos := mustParse(t, "white d4 e5 f4")
	want := mustParseAll(t,
		"black c3 e5 f4", "black c4 e5 f4", "black c5 e5 f4", "black d3 e5 f4", "black d5 e5 f4",
	)
	assert.ElementsMatch(t, want, pos.WhiteKingMoves())
}

func TestRookOverlapPanics(t *testing.T) {
	pos := NewPosition(EncodeSquare(0, 0), EncodeSquare(3, 3), EncodeSquare(3, 3), White)
	require.PanicsWithError(t, (&InvariantError{Pos: pos, Square: pos.BlackKing}).Error(), func() {
		pos.RookMoves()
	})
}

func TestSuccessorsRestartable(t *testing.T) {
	pos := mustParse(t, "white c4 g4 e4")
	first := pos.Successors()
	second := pos.Successors()
	assert.Equal(t, first, second)
	for _, s := range first {
		assert.Equal(t, Black, s.SideToMove)
	}
}

// 遍历所有不重叠的局面
func forEachPosition(fn func(Position)) {
	for wk := Square(0); wk < NumSquares; wk++ {
		for wr := Square(0); wr < NumSquares; wr++ {
			if wr == wk {
				continue
			}
			for bk := Square(0); bk < NumSquares; bk++ {
				if bk == wk || bk == wr {
					continue
				}
				fn(NewPosition(wk, wr, bk, White))
				fn(NewPosition(wk, wr, bk, Black))
			}
		}
	}
}

func TestKingsNeverMoveAdjacent(t *testing.T) {
	if testing.Short() {
		t.Skip("full sweep")
	}
	buf := make([]Position, 0, 32)
	forEachPosition(func(p Position) {
		buf = p.AppendSuccessors(buf[:0])
		for _, s := range buf {
			if s.KingsAdjacent() && (s.WhiteKing != p.WhiteKing || s.BlackKing != p.BlackKing) {
				t.Fatalf("%s -> %s puts kings next to each other", p, s)
			}
			if s.SideToMove != p.SideToMove.Flip() {
				t.Fatalf("%s -> %s did not flip side", p, s)
			}
		}
	})
}

func TestRookNeverPassesPieces(t *testing.T) {
	if testing.Short() {
		t.Skip("full sweep")
	}
	forEachPosition(func(p Position) {
		if p.SideToMove != White {
			return
		}
		from := p.WhiteRook
		for _, s := range p.RookMoves() {
			to := s.WhiteRook
			require.NotEqual(t, from, to)
			require.True(t, from.Col() == to.Col() || from.Row() == to.Row(), "%s -> %s", p, s)
			for _, other := range []Square{p.WhiteKing, p.BlackKing} {
				if between(from, to, other) {
					t.Fatalf("%s -> %s jumps over or lands on %s", p, s, other)
				}
			}
		}
	})
}

// between 判断 sq 是否在 from(不含) 到 to(含) 的直线上
func between(from, to, sq Square) bool {
	fc, fr := from.Decode()
	tc, tr := to.Decode()
	c, r := sq.Decode()
	if fc == tc && c == fc {
		return (r > fr && r <= tr) || (r < fr && r >= tr)
	}
	if fr == tr && r == fr {
		return (c > fc && c <= tc) || (c < fc && c >= tc)
	}
	return false
}
