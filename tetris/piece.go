package tetris

// Kind identifies a tetromino. Its value doubles as the colour index stored in
// the board.
type Kind uint8

const (
	I Kind = iota + 1
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// Matrix is a square shape whose cells are 0 or a colour index.
type Matrix [][]uint8

var shapes = [KindCount + 1]Matrix{
	{},
	I: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	J: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	L: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	O: {
		{4, 4},
		{4, 4},
	},
	S: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	T: {
		{0, 6, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	Z: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// Shape returns a fresh copy of the spawn orientation of k.
func Shape(k Kind) Matrix {
	return shapes[k].Clone()
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Rotate returns m turned 90 degrees clockwise.
func Rotate(m Matrix) Matrix {
	n := len(m)
	out := make(Matrix, n)
	for i := range out {
		out[i] = make([]uint8, n)
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x][n-1-y] = m[y][x]
		}
	}
	return out
}

// Piece is a tetromino placed at an origin in the well.
type Piece struct {
	Shape Matrix
	Color uint8
	X, Y  int
}

// NewPiece returns k at its spawn origin for a well cols wide: horizontally
// centred, top row at y = 0.
func NewPiece(k Kind, cols int) Piece {
	shape := Shape(k)
	return Piece{
		Shape: shape,
		Color: uint8(k),
		X:     (cols - len(shape[0])) / 2,
		Y:     0,
	}
}
