package krk

// 黑王：八方向一格，不能出界、不能贴白王、不能走到车所在的行或列
func genBlackKingMoves(p Position, moves *[]Position) {
	col, row := p.BlackKing.Decode()
	wkCol, wkRow := p.WhiteKing.Decode()
	rCol, rRow := p.WhiteRook.Decode()
	for _, d := range kingSteps {
		c, r := col+d[0], row+d[1]
		if !onBoard(c, r) {
			continue
		}
		if near(c, r, wkCol, wkRow) {
			continue
		}
		if c == rCol || r == rRow {
			continue
		}
		*moves = append(*moves, Position{
			WhiteKing:  p.WhiteKing,
			WhiteRook:  p.WhiteRook,
			BlackKing:  EncodeSquare(c, r),
			SideToMove: White,
		})
	}
}

// 白王：八方向一格，不能贴黑王（也就排除了落在黑王上），不能落在自己车上
func genWhiteKingMoves(p Position, moves *[]Position) {
	col, row := p.WhiteKing.Decode()
	bkCol, bkRow := p.BlackKing.Decode()
	rCol, rRow := p.WhiteRook.Decode()
	for _, d := range kingSteps {
		c, r := col+d[0], row+d[1]
		if !onBoard(c, r) {
			continue
		}
		if near(c, r, bkCol, bkRow) {
			continue
		}
		if c == rCol && r == rRow {
			continue
		}
		*moves = append(*moves, Position{
			WhiteKing:  EncodeSquare(c, r),
			WhiteRook:  p.WhiteRook,
			BlackKing:  p.BlackKing,
			SideToMove: Black,
		})
	}
}

// 车：横竖滑动，先按同行 / 同列的两个王截断范围，再逐格枚举。
// 不允许停在黑王身边（车会被吃），横竖两个方向用同一条规则。
func genRookMoves(p Position, moves *[]Position) {
	rCol, rRow := p.WhiteRook.Decode()
	bkCol, bkRow := p.BlackKing.Decode()

	left, right := minCoord, maxCoord
	bottom, top := minCoord, maxCoord
	for _, other := range [2]Square{p.BlackKing, p.WhiteKing} {
		oCol, oRow := other.Decode()
		if oRow == rRow {
			switch {
			case oCol > rCol:
				right = min(right, oCol-1)
			case oCol < rCol:
				left = max(left, oCol+1)
			default:
				panic(&InvariantError{Pos: p, Square: other})
			}
		}
		if oCol == rCol {
			switch {
			case oRow > rRow:
				top = min(top, oRow-1)
			case oRow < rRow:
				bottom = max(bottom, oRow+1)
			default:
				panic(&InvariantError{Pos: p, Square: other})
			}
		}
	}

	// 横向
	for c := left; c <= right; c++ {
		if c == rCol || near(c, rRow, bkCol, bkRow) {
			continue
		}
		*moves = append(*moves, Position{
			WhiteKing:  p.WhiteKing,
			WhiteRook:  EncodeSquare(c, rRow),
			BlackKing:  p.BlackKing,
			SideToMove: Black,
		})
	}
	// 纵向
	for r := bottom; r <= top; r++ {
		if r == rRow || near(rCol, r, bkCol, bkRow) {
			continue
		}
		*moves = append(*moves, Position{
			WhiteKing:  p.WhiteKing,
			WhiteRook:  EncodeSquare(rCol, r),
			BlackKing:  p.BlackKing,
			SideToMove: Black,
		})
	}
}
