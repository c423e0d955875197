package session

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/chaser/model"
)

const (
	PickupScore = 10
	StartLives  = 3
)

type Mode int

const (
	MODE_MENU Mode = iota + 1
	MODE_PLAYING
)

type Outcome int

const (
	OUTCOME_NONE Outcome = iota
	OUTCOME_WON
	OUTCOME_LOST
)

type Event int

const (
	EVENT_PICKUP Event = iota + 1
	EVENT_LIFE_LOST
	EVENT_GAME_OVER
	EVENT_WON
)

// Session owns everything that changes while playing. It is driven by a
// single loop and is not safe for concurrent use.
type Session struct {
	id          uuid.UUID
	mode        Mode
	layout      *model.Layout
	rnd         model.Rand
	player      *model.Player
	adversaries []*model.Adversary
	pickups     map[model.Cell]struct{}
	score       int
	lives       int

	outcome   Outcome
	lastScore int
}

func New(layout *model.Layout, rnd model.Rand) *Session {
	s := &Session{
		mode:   MODE_MENU,
		layout: layout,
		rnd:    rnd,
	}
	s.reset()
	return s
}

// NewGame throws away whatever was in progress and starts playing.
func (s *Session) NewGame() {
	s.reset()
	s.mode = MODE_PLAYING
	s.logger().Info("new game")
}

// Continue resumes exactly where Cancel left off.
func (s *Session) Continue() {
	if s.mode == MODE_PLAYING {
		return
	}
	s.mode = MODE_PLAYING
	s.logger().Info("continue")
}

func (s *Session) Cancel() {
	if s.mode != MODE_PLAYING {
		return
	}
	s.mode = MODE_MENU
	s.logger().Info("paused")
}

func (s *Session) Steer(d model.Direction) {
	if s.mode != MODE_PLAYING {
		return
	}
	s.player.Steer(d)
}

// Tick advances one frame: movement first, then pickups, then the win
// check, then adversary contact in spawn order. A life lost puts everyone
// back on their spawn before the next adversary is checked.
func (s *Session) Tick() []Event {
	if s.mode != MODE_PLAYING {
		return nil
	}
	events := make([]Event, 0)

	grid := s.layout.Grid
	s.player.Update(grid)
	for _, a := range s.adversaries {
		a.Update(grid)
	}

	cell := s.player.Cell()
	if _, found := s.pickups[cell]; found {
		delete(s.pickups, cell)
		s.score += PickupScore
		events = append(events, EVENT_PICKUP)
		log.WithFields(log.Fields{"col": cell.Col, "row": cell.Row, "score": s.score}).Debug("pickup")
	}

	if len(s.pickups) == 0 {
		s.finish(OUTCOME_WON)
		return append(events, EVENT_WON)
	}

	// indexed so a reset mid-loop is seen by the remaining checks
	for i := 0; i < len(s.adversaries); i++ {
		a := s.adversaries[i]
		if s.player.Pos.Distance(a.Pos) >= model.CellSize {
			continue
		}
		s.lives--
		if s.lives <= 0 {
			s.finish(OUTCOME_LOST)
			events = append(events, EVENT_GAME_OVER)
			continue
		}
		s.logger().WithField("adversary", a.Tag).Info("life lost")
		s.resetPositions()
		events = append(events, EVENT_LIFE_LOST)
	}
	return events
}

func (s *Session) finish(outcome Outcome) {
	s.logger().WithField("outcome", outcome.Name()).Info("game finished")
	s.outcome = outcome
	s.lastScore = s.score
	s.reset()
	s.mode = MODE_MENU
}

func (s *Session) reset() {
	s.id = uuid.New()
	s.score = 0
	s.lives = StartLives
	s.pickups = make(map[model.Cell]struct{})
	for _, c := range s.layout.Grid.OpenCells() {
		s.pickups[c] = struct{}{}
	}
	s.player = model.NewPlayer(s.layout.Player)
	s.adversaries = make([]*model.Adversary, 0, len(s.layout.Adversaries))
	for _, spawn := range s.layout.Adversaries {
		s.adversaries = append(s.adversaries, model.NewAdversary(spawn, s.rnd))
	}
}

func (s *Session) resetPositions() {
	s.player.Reset()
	for _, a := range s.adversaries {
		a.Reset()
	}
}

func (s *Session) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"session": s.id,
		"score":   s.score,
		"lives":   s.lives,
		"pickups": len(s.pickups),
	})
}

func (s *Session) ID() uuid.UUID    { return s.id }
func (s *Session) Mode() Mode       { return s.mode }
func (s *Session) Score() int       { return s.score }
func (s *Session) Lives() int       { return s.lives }
func (s *Session) Outcome() Outcome { return s.outcome }

// LastScore is the final score of the most recently finished game.
func (s *Session) LastScore() int { return s.lastScore }

func (s *Session) Layout() *model.Layout { return s.layout }

func (s *Session) Player() *model.Player { return s.player }

func (s *Session) Adversaries() []*model.Adversary { return s.adversaries }

func (s *Session) HasPickup(c model.Cell) bool {
	_, found := s.pickups[c]
	return found
}

// Pickups lists the remaining pickups, row by row.
func (s *Session) Pickups() []model.Cell {
	cells := make([]model.Cell, 0, len(s.pickups))
	for _, c := range s.layout.Grid.OpenCells() {
		if s.HasPickup(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

func (s *Session) PickupCount() int { return len(s.pickups) }

// InitialPickups is how many pickups a fresh game starts with.
func (s *Session) InitialPickups() int { return len(s.layout.Grid.OpenCells()) }
