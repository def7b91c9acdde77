package game

import (
	"math/rand"
	"time"
)

// Roller produces dice values. Rooms take it as an interface so tests
// can feed fixed rolls.
type Roller interface {
	Roll() int
}

type randRoller struct {
	r *rand.Rand
}

// NewRoller returns a Roller drawing uniformly from 1..6.
func NewRoller() Roller {
	return &randRoller{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *randRoller) Roll() int {
	return d.r.Intn(6) + 1
}
