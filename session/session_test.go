package session

import (
	"io/ioutil"
	"math/rand"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/chaser/model"
)

func init() {
	log.SetOutput(ioutil.Discard)
}

// calm never turns on its own and re-rolls to Right when blocked.
type calm struct{}

func (calm) Float64() float64 { return 1 }
func (calm) Intn(n int) int   { return 0 }

func newSession(t *testing.T, rows ...string) *Session {
	t.Helper()
	l, err := model.ParseLayout(strings.NewReader(strings.Join(rows, "\n")))
	require.NoError(t, err)
	return New(l, calm{})
}

func TestNewSessionStartsInMenu(t *testing.T) {
	s := New(model.Arcade, calm{})

	assert.Equal(t, MODE_MENU, s.Mode())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, StartLives, s.Lives())
	assert.Equal(t, 609, s.PickupCount())
	assert.Equal(t, s.InitialPickups(), s.PickupCount())
	assert.Equal(t, OUTCOME_NONE, s.Outcome())
	assert.Len(t, s.Adversaries(), 4)
	assert.Equal(t, model.Arcade.Player.Position(), s.Player().Pos)
}

func TestTickIsIdleInMenu(t *testing.T) {
	s := New(model.Arcade, calm{})
	before := s.Player().Pos

	assert.Empty(t, s.Tick())
	assert.Equal(t, before, s.Player().Pos)
	assert.Equal(t, 609, s.PickupCount())
}

func TestFirstTickCollectsSpawnPickup(t *testing.T) {
	s := New(model.Arcade, calm{})
	s.NewGame()

	events := s.Tick()

	assert.Equal(t, []Event{EVENT_PICKUP}, events)
	assert.Equal(t, PickupScore, s.Score())
	assert.False(t, s.HasPickup(model.Arcade.Player))
	assert.Equal(t, model.Position{X: 282, Y: 340}, s.Player().Pos)
}

func TestCollectingLastPickupWins(t *testing.T) {
	s := newSession(t,
		"#####",
		"#P..#",
		"#####",
	)
	s.NewGame()
	s.pickups = map[model.Cell]struct{}{{Col: 2, Row: 1}: {}}
	s.score = 2 * PickupScore

	var events []Event
	for i := 0; i < 20 && s.Mode() == MODE_PLAYING; i++ {
		events = s.Tick()
	}

	assert.Equal(t, []Event{EVENT_PICKUP, EVENT_WON}, events)
	assert.Equal(t, MODE_MENU, s.Mode())
	assert.Equal(t, OUTCOME_WON, s.Outcome())
	assert.Equal(t, 3*PickupScore, s.LastScore())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.PickupCount())
	assert.Equal(t, model.Position{X: 20, Y: 20}, s.Player().Pos)

	assert.Empty(t, s.Tick(), "win fires once")
}

func TestLastLifeLostResetsToMenu(t *testing.T) {
	s := newSession(t,
		"########",
		"#P....1#",
		"########",
	)
	s.NewGame()
	s.lives = 1
	s.adversaries[0].Pos = s.player.Pos

	events := s.Tick()

	assert.Equal(t, []Event{EVENT_PICKUP, EVENT_GAME_OVER}, events)
	assert.Equal(t, MODE_MENU, s.Mode())
	assert.Equal(t, OUTCOME_LOST, s.Outcome())
	assert.Equal(t, StartLives, s.Lives())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, PickupScore, s.LastScore())
	assert.Equal(t, 6, s.PickupCount())
	assert.Equal(t, model.Position{X: 20, Y: 20}, s.Player().Pos)
	assert.Equal(t, model.Position{X: 120, Y: 20}, s.Adversaries()[0].Pos)
}

func TestLifeLostResetsOnlyPositions(t *testing.T) {
	s := newSession(t,
		"########",
		"#P....1#",
		"########",
	)
	s.NewGame()
	s.adversaries[0].Pos = s.player.Pos

	events := s.Tick()

	assert.Equal(t, []Event{EVENT_PICKUP, EVENT_LIFE_LOST}, events)
	assert.Equal(t, MODE_PLAYING, s.Mode())
	assert.Equal(t, StartLives-1, s.Lives())
	assert.Equal(t, PickupScore, s.Score())
	assert.Equal(t, 5, s.PickupCount())
	assert.Equal(t, model.Position{X: 20, Y: 20}, s.Player().Pos)
	assert.Equal(t, model.Right, s.Player().Dir)
	assert.Equal(t, model.Position{X: 120, Y: 20}, s.Adversaries()[0].Pos)
}

func TestOnlyFirstContactCountsAfterReset(t *testing.T) {
	s := newSession(t,
		"#########",
		"#P....12#",
		"#########",
	)
	s.NewGame()
	for _, a := range s.adversaries {
		a.Pos = s.player.Pos
	}

	events := s.Tick()

	assert.Equal(t, []Event{EVENT_PICKUP, EVENT_LIFE_LOST}, events)
	assert.Equal(t, StartLives-1, s.Lives())
	assert.Equal(t, model.Position{X: 140, Y: 20}, s.Adversaries()[1].Pos)
}

func TestCancelAndContinuePreserveState(t *testing.T) {
	s := New(model.Arcade, calm{})
	s.NewGame()
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	id := s.ID()
	pos := s.Player().Pos
	score := s.Score()
	pickups := s.PickupCount()
	adversary := s.Adversaries()[0].Pos

	s.Cancel()
	assert.Equal(t, MODE_MENU, s.Mode())
	s.Tick()
	s.Steer(model.Up)

	s.Continue()
	assert.Equal(t, MODE_PLAYING, s.Mode())
	assert.Equal(t, id, s.ID())
	assert.Equal(t, pos, s.Player().Pos)
	assert.Equal(t, model.Right, s.Player().Desired)
	assert.Equal(t, score, s.Score())
	assert.Equal(t, pickups, s.PickupCount())
	assert.Equal(t, adversary, s.Adversaries()[0].Pos)
}

func TestNewGameResetsProgress(t *testing.T) {
	s := New(model.Arcade, calm{})
	s.NewGame()
	first := s.ID()
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	s.lives = 1
	s.Cancel()

	s.NewGame()

	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, MODE_PLAYING, s.Mode())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, StartLives, s.Lives())
	assert.Equal(t, 609, s.PickupCount())
	assert.Equal(t, model.Arcade.Player.Position(), s.Player().Pos)
}

func TestSteer(t *testing.T) {
	s := New(model.Arcade, calm{})
	s.Steer(model.Up)
	assert.Equal(t, model.Right, s.Player().Desired)

	s.NewGame()
	s.Steer(model.Up)
	assert.Equal(t, model.Up, s.Player().Desired)
}

func TestPickupsRowMajor(t *testing.T) {
	s := newSession(t,
		"####",
		"#P.#",
		"#..#",
		"####",
	)
	delete(s.pickups, model.Cell{Col: 2, Row: 1})

	assert.Equal(t, []model.Cell{{Col: 1, Row: 1}, {Col: 1, Row: 2}, {Col: 2, Row: 2}}, s.Pickups())
	assert.True(t, s.HasPickup(model.Cell{Col: 1, Row: 2}))
	assert.False(t, s.HasPickup(model.Cell{Col: 0, Row: 0}))
}

func TestScoreTracksCollectedPickups(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	s := New(model.Arcade, rnd)
	s.NewGame()
	initial := s.InitialPickups()
	pickups, lives := s.PickupCount(), s.Lives()

	for tick := 0; tick < 20000; tick++ {
		if tick%20 == 0 {
			s.Steer(model.Directions[rnd.Intn(4)])
		}
		events := s.Tick()
		if s.Mode() == MODE_MENU {
			assert.Contains(t, []Outcome{OUTCOME_WON, OUTCOME_LOST}, s.Outcome())
			assert.True(t, len(events) > 0)
			s.NewGame()
			pickups, lives = s.PickupCount(), s.Lives()
			continue
		}
		assert.Equal(t, PickupScore*(initial-s.PickupCount()), s.Score())
		assert.LessOrEqual(t, s.PickupCount(), pickups)
		assert.LessOrEqual(t, s.Lives(), lives)
		assert.Greater(t, s.Lives(), 0)
		pickups, lives = s.PickupCount(), s.Lives()
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "MENU", MODE_MENU.Name())
	assert.Equal(t, "PLAYING", MODE_PLAYING.Name())
	assert.Equal(t, "N/A(0)", Mode(0).Name())
	assert.Equal(t, "You win!", OUTCOME_WON.Banner())
	assert.Equal(t, "Game Over", OUTCOME_LOST.Banner())
	assert.Equal(t, "", OUTCOME_NONE.Banner())
	assert.Equal(t, "LIFE_LOST", EVENT_LIFE_LOST.Name())
}
