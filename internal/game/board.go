package game

import "fmt"

// WinningSquare is the final square; landing exactly on it wins.
const WinningSquare = 100

// Board maps teleport source squares to their targets. Snakes go down,
// ladders go up. Squares are 1..100; position 0 means not yet entered.
type Board struct {
	Snakes  map[int]int
	Ladders map[int]int
}

// DefaultBoard returns the fixed classic layout. It is shared by every
// room for the life of the process and must never be mutated.
func DefaultBoard() Board {
	return Board{
		Snakes: map[int]int{
			16: 6, 47: 26, 49: 11, 56: 53, 62: 19,
			64: 60, 87: 24, 93: 73, 95: 75, 98: 78,
		},
		Ladders: map[int]int{
			1: 38, 4: 14, 9: 31, 21: 42, 28: 84,
			36: 44, 51: 67, 71: 91, 80: 100,
		},
	}
}

// Validate checks the board invariants: no square is both a snake and
// a ladder source, every snake goes strictly down, every ladder goes
// strictly up, and the winning square is never a teleport source.
func (b Board) Validate() error {
	for src, dst := range b.Snakes {
		if src < 1 || src > WinningSquare || dst < 1 || dst > WinningSquare {
			return fmt.Errorf("snake %d->%d out of range", src, dst)
		}
		if src == WinningSquare {
			return fmt.Errorf("snake source on winning square %d", src)
		}
		if dst >= src {
			return fmt.Errorf("snake %d->%d does not go down", src, dst)
		}
		if _, ok := b.Ladders[src]; ok {
			return fmt.Errorf("square %d is both snake and ladder source", src)
		}
	}
	for src, dst := range b.Ladders {
		if src < 1 || src > WinningSquare || dst < 1 || dst > WinningSquare {
			return fmt.Errorf("ladder %d->%d out of range", src, dst)
		}
		if src == WinningSquare {
			return fmt.Errorf("ladder source on winning square %d", src)
		}
		if dst <= src {
			return fmt.Errorf("ladder %d->%d does not go up", src, dst)
		}
	}
	return nil
}

// playerColors is the seat palette. Room capacity is four, so in
// practice each seat gets a distinct color; the modulo keeps the
// assignment total anyway.
var playerColors = []string{"#3498db", "#e74c3c", "#2ecc71", "#f39c12"}

// SystemColor is the chat color used for server-generated messages.
const SystemColor = "#6c757d"

// PlayerColor returns the color for a seat index.
func PlayerColor(seat int) string {
	return playerColors[seat%len(playerColors)]
}
