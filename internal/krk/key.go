package krk

// 局面键：三个格子各 6 位 + 走子方 1 位，一共 19 位，可以直接当稠密数组下标。
const (
	keySquareBits = 2 * squareOffset
	keySquareMask = 1<<keySquareBits - 1

	NumKeys = 1 << (3*keySquareBits + 1)
)

// Key 局面的压缩键，和 Position 一一对应。
func (p Position) Key() uint32 {
	return uint32(p.WhiteKing)<<(2*keySquareBits+1) |
		uint32(p.WhiteRook)<<(keySquareBits+1) |
		uint32(p.BlackKing)<<1 |
		uint32(p.SideToMove)
}

// KeyPosition Key 的逆
func KeyPosition(key uint32) Position {
	return Position{
		WhiteKing:  Square(key >> (2*keySquareBits + 1) & keySquareMask),
		WhiteRook:  Square(key >> (keySquareBits + 1) & keySquareMask),
		BlackKing:  Square(key >> 1 & keySquareMask),
		SideToMove: Side(key & 1),
	}
}
