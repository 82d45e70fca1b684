package krk

import (
	"fmt"
	"strings"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols

	minCoord = 0
	maxCoord = 7
)

// 格子压缩：列放高 3 位，行放低 3 位
const (
	squareOffset = 3
	rowMask      = 1<<squareOffset - 1
	colMask      = rowMask << squareOffset
)

// Square 一个格子的压缩表示，col<<3 | row。
type Square uint8

// EncodeSquare 把 (col,row) 压成 Square。调用方保证坐标在棋盘内。
func EncodeSquare(col, row int) Square {
	return Square(col<<squareOffset&colMask | row&rowMask)
}

// Decode 拆回 (col,row)，和 EncodeSquare 互逆。
func (s Square) Decode() (col, row int) {
	return int(s) >> squareOffset, int(s) & rowMask
}

func (s Square) Col() int { return int(s) >> squareOffset }
func (s Square) Row() int { return int(s) & rowMask }

// Index 按 a1=0, b1=1 ... h8=63 的常规编号，给 FEN / 外部棋盘库用。
func (s Square) Index() int {
	col, row := s.Decode()
	return row*Cols + col
}

func squareFromIndex(idx int) Square {
	return EncodeSquare(idx%Cols, idx/Cols)
}

func (s Square) String() string {
	col, row := s.Decode()
	return string([]byte{byte('a' + col), byte('1' + row)})
}

func onBoard(col, row int) bool {
	return col >= minCoord && col <= maxCoord && row >= minCoord && row <= maxCoord
}

// 王的八个方向
var kingSteps = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// near 判断两格切比雪夫距离 < 2（相邻或重合）
func near(col1, row1, col2, row2 int) bool {
	return abs(col1-col2) < 2 && abs(row1-row2) < 2
}

// ParseSquare 解析 "e4" 这样的格子，列字母不区分大小写。
func ParseSquare(token string) (Square, error) {
	t := strings.ToLower(token)
	if len(t) != 2 || t[0] < 'a' || t[0] > 'h' || t[1] < '1' || t[1] > '8' {
		return 0, &InputError{Token: token, Err: ErrBadSquare}
	}
	return EncodeSquare(int(t[0]-'a'), int(t[1]-'1')), nil
}

// Format 调试用的坐标形式，例如 (4,3)
func (s Square) Format() string {
	col, row := s.Decode()
	return fmt.Sprintf("(%d,%d)", col, row)
}
