package main

import "github.com/tanema/gween"

// Action is what happens while a tween runs and once it is done. nexts
// start follow-up tweens on the game.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start when this action's tween finishes and returns the
// action for t so it can be filled in.
func (a *Action) next(t *gween.Tween) *Action {
	action := Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return &action
}

// updateTweens advances every running tween by dt. Tweens queued with next
// start on the following call.
func (g *Game) updateTweens(dt float32) {
	nexts := make([]func(g *Game), 0)
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			nexts = append(nexts, a.nexts...)
			delete(g.Tweens, t)
		}
	}
	for _, next := range nexts {
		next(g)
	}
}
