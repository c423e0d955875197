package model

type Player struct {
	Mover
	// Desired is the last direction asked for by input; it becomes Dir at the
	// next aligned tick where it is open.
	Desired  Direction
	Openness float64

	opening float64
	spawn   Position
}

func NewPlayer(spawn Cell) *Player {
	p := &Player{spawn: spawn.Position()}
	p.Reset()
	return p
}

func (p *Player) Reset() {
	p.Mover = Mover{Pos: p.spawn, Dir: Right, Speed: PlayerSpeed}
	p.Desired = Right
	p.Openness = 0
	p.opening = OpennessStep
}

func (p *Player) Steer(d Direction) {
	p.Desired = d
}

func (p *Player) Update(m Maze) {
	p.turn(m)
	p.Step(m)
	p.animate()
}

func (p *Player) turn(m Maze) {
	if p.Desired == p.Dir || !p.Aligned() {
		return
	}
	aligned := p.AlignedPosition()
	if Collides(m, aligned.Step(p.Desired, p.Speed)) {
		return
	}
	p.Dir = p.Desired
	p.Pos = aligned
}

func (p *Player) animate() {
	p.Openness += p.opening
	if p.Openness > OpennessMax || p.Openness < 0 {
		p.opening = -p.opening
	}
}
