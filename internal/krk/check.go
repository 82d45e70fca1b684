package krk

// BlackInCheck 黑王被将：贴着白王，或者和车同行 / 同列。
// 和走法生成一致，不考虑白王挡在车线上的情况。
func (p Position) BlackInCheck() bool {
	bkCol, bkRow := p.BlackKing.Decode()
	wkCol, wkRow := p.WhiteKing.Decode()
	rCol, rRow := p.WhiteRook.Decode()
	kingCheck := near(bkCol, bkRow, wkCol, wkRow)
	rookCheck := bkCol == rCol || bkRow == rRow
	return kingCheck || rookCheck
}

// IsCheckmate 只对黑方走棋的局面有意义：被将且无路可走。
// successorCount 由调用方先算好（通常就是 len(p.Successors())）。
func (p Position) IsCheckmate(successorCount int) bool {
	if p.SideToMove != Black {
		return false
	}
	return successorCount == 0 && p.BlackInCheck()
}

// IsStalemate 黑方无子可动但没被将
func (p Position) IsStalemate(successorCount int) bool {
	if p.SideToMove != Black {
		return false
	}
	return successorCount == 0 && !p.BlackInCheck()
}

// KingsAdjacent 两王相邻，真实棋局里不可能出现
func (p Position) KingsAdjacent() bool {
	bkCol, bkRow := p.BlackKing.Decode()
	wkCol, wkRow := p.WhiteKing.Decode()
	return near(bkCol, bkRow, wkCol, wkRow)
}
