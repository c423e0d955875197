package model

// Rand is the slice of math/rand the adversaries draw from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Adversary struct {
	Mover
	Tag int

	spawn Position
	rnd   Rand
}

func NewAdversary(spawn Spawn, rnd Rand) *Adversary {
	a := &Adversary{Tag: spawn.Tag, spawn: spawn.Cell.Position(), rnd: rnd}
	a.Reset()
	return a
}

func (a *Adversary) Reset() {
	a.Mover = Mover{Pos: a.spawn, Dir: Right, Speed: AdversarySpeed}
}

// Update wanders: a chance to re-roll on every exact cell boundary, and a
// forced re-roll whenever the way ahead is blocked.
func (a *Adversary) Update(m Maze) {
	if a.Snapped() && a.rnd.Float64() < TurnChance {
		a.Dir = a.roll()
	}
	if !a.Step(m) {
		a.Dir = a.roll()
	}
}

func (a *Adversary) roll() Direction {
	return Directions[a.rnd.Intn(len(Directions))]
}
