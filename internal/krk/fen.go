package krk

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// 简单格式：<side> <白王> <白车> <黑王>，例如 "white c4 g4 e4"
func ParsePosition(line string) (Position, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 4 {
		return Position{}, &InputError{Token: line, Err: ErrTokenCount}
	}
	side, err := ParseSide(tokens[0])
	if err != nil {
		return Position{}, err
	}
	var sq [3]Square
	for i, tok := range tokens[1:] {
		if sq[i], err = ParseSquare(tok); err != nil {
			return Position{}, err
		}
	}
	pos := NewPosition(sq[0], sq[1], sq[2], side)
	if err := pos.Validate(); err != nil {
		return Position{}, err
	}
	return pos, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%s %s %s %s", p.SideToMove, p.WhiteKing, p.WhiteRook, p.BlackKing)
}

// FEN 导出标准 FEN，给外部棋盘库 / 前端用
func (p Position) FEN() string {
	var sb strings.Builder
	for r := maxCoord; r >= minCoord; r-- {
		if r < maxCoord {
			sb.WriteByte('/')
		}
		empty := 0
		for c := minCoord; c <= maxCoord; c++ {
			var ch byte
			switch EncodeSquare(c, r) {
			case p.WhiteKing:
				ch = 'K'
			case p.WhiteRook:
				ch = 'R'
			case p.BlackKing:
				ch = 'k'
			default:
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if p.SideToMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// ParseFEN 用 dragontoothmg 解析棋盘，只接受 白王 + 白车 + 黑王 三个子。
// dragontoothmg 对坏输入会直接越界 panic，所以先自己把结构检查一遍。
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || !validPlacement(fields[0]) {
		return Position{}, &InputError{Token: fen, Err: ErrBadFEN}
	}
	if fields[1] != "w" && fields[1] != "b" {
		return Position{}, &InputError{Token: fen, Err: ErrBadSide}
	}

	b := dragontoothmg.ParseFen(fields[0] + " " + fields[1] + " - - 0 1")
	w, k := b.White, b.Black
	if bits.OnesCount64(w.Kings) != 1 || bits.OnesCount64(w.Rooks) != 1 || bits.OnesCount64(k.Kings) != 1 ||
		w.All != w.Kings|w.Rooks || k.All != k.Kings {
		return Position{}, &InputError{Token: fen, Err: ErrBadFEN}
	}

	side := Black
	if b.Wtomove {
		side = White
	}
	pos := NewPosition(
		squareFromIndex(bits.TrailingZeros64(w.Kings)),
		squareFromIndex(bits.TrailingZeros64(w.Rooks)),
		squareFromIndex(bits.TrailingZeros64(k.Kings)),
		side,
	)
	return pos, nil
}

func validPlacement(placement string) bool {
	ranks := strings.Split(placement, "/")
	if len(ranks) != Rows {
		return false
	}
	for _, rank := range ranks {
		n := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				n += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				n++
			default:
				return false
			}
		}
		if n != Cols {
			return false
		}
	}
	return true
}

// Parse 两种格式都收：含 '/' 的按 FEN，否则按简单格式
func Parse(input string) (Position, error) {
	if strings.Contains(input, "/") {
		return ParseFEN(input)
	}
	return ParsePosition(input)
}
