package krk

// Successors 返回当前走子方的全部合法后继局面（走子方已翻转）。
// 每次调用都重新生成，可以反复调用。
func (p Position) Successors() []Position {
	return p.AppendSuccessors(make([]Position, 0, 24))
}

// AppendSuccessors 把后继局面追加到 dst，搜索里复用同一块缓冲区。
func (p Position) AppendSuccessors(dst []Position) []Position {
	if p.SideToMove == Black {
		genBlackKingMoves(p, &dst)
		return dst
	}
	genWhiteKingMoves(p, &dst)
	genRookMoves(p, &dst)
	return dst
}

func (p Position) BlackKingMoves() []Position {
	var moves []Position
	genBlackKingMoves(p, &moves)
	return moves
}

func (p Position) WhiteKingMoves() []Position {
	var moves []Position
	genWhiteKingMoves(p, &moves)
	return moves
}

// RookMoves 只生成车的走法；子重叠时 panic(*InvariantError)。
func (p Position) RookMoves() []Position {
	var moves []Position
	genRookMoves(p, &moves)
	return moves
}
