package session

import "fmt"

func (m Mode) Name() string {
	switch m {
	case MODE_MENU:
		return "MENU"
	case MODE_PLAYING:
		return "PLAYING"
	default:
		return fmt.Sprintf("N/A(%d)", m)
	}
}

func (o Outcome) Name() string {
	switch o {
	case OUTCOME_NONE:
		return "NONE"
	case OUTCOME_WON:
		return "WON"
	case OUTCOME_LOST:
		return "LOST"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Banner is the menu headline for how the last game ended.
func (o Outcome) Banner() string {
	switch o {
	case OUTCOME_WON:
		return "You win!"
	case OUTCOME_LOST:
		return "Game Over"
	default:
		return ""
	}
}

func (e Event) Name() string {
	switch e {
	case EVENT_PICKUP:
		return "PICKUP"
	case EVENT_LIFE_LOST:
		return "LIFE_LOST"
	case EVENT_GAME_OVER:
		return "GAME_OVER"
	case EVENT_WON:
		return "WON"
	default:
		return fmt.Sprintf("N/A(%d)", e)
	}
}
