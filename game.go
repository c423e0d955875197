package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/chaser/config"
	"github.com/zucenko/chaser/model"
	"github.com/zucenko/chaser/scene"
	"github.com/zucenko/chaser/session"
	"golang.org/x/image/font"
)

const (
	tickSeconds  = float32(1) / 60
	overlayAlpha = 0.9
	flashAlpha   = 0.5
)

var errQuit = errors.New("quit")

var KEYS = map[ebiten.Key]model.Direction{
	ebiten.KeyRight: model.Right,
	ebiten.KeyDown:  model.Down,
	ebiten.KeyLeft:  model.Left,
	ebiten.KeyUp:    model.Up,
}

type Game struct {
	Session *session.Session
	Tweens  map[*gween.Tween]Action
	Faces   *Faces

	walls, body, dot *ebiten.Image
	mouths           []*ebiten.Image
	button           *Nine

	overlay float64
	flash   float64
}

func NewGame(s *session.Session) (*Game, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	g := &Game{
		Session: s,
		Tweens:  make(map[*gween.Tween]Action),
		Faces:   faces,
	}
	if g.walls, err = ebiten.NewImageFromImage(scene.Walls(s.Layout().Grid), ebiten.FilterDefault); err != nil {
		return nil, err
	}
	if g.body, err = ebiten.NewImageFromImage(scene.Body(), ebiten.FilterDefault); err != nil {
		return nil, err
	}
	if g.dot, err = ebiten.NewImageFromImage(scene.Dot(), ebiten.FilterDefault); err != nil {
		return nil, err
	}
	for _, frame := range scene.Mouths() {
		img, err := ebiten.NewImageFromImage(frame, ebiten.FilterDefault)
		if err != nil {
			return nil, err
		}
		g.mouths = append(g.mouths, img)
	}
	panel, err := ebiten.NewImageFromImage(scene.Panel(), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	g.button = NewNine(panel, scene.PanelCuts, 1)
	g.showMenu()
	return g, nil
}

func (g *Game) update(screen *ebiten.Image) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	g.input()
	for _, e := range g.Session.Tick() {
		g.react(e)
	}
	g.updateTweens(tickSeconds)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) input() {
	if g.Session.Mode() == session.MODE_MENU {
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return
		}
		switch scene.Hit(ebiten.CursorPosition()) {
		case scene.ACTION_NEW_GAME:
			g.Session.NewGame()
		case scene.ACTION_CONTINUE:
			g.Session.Continue()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Session.Cancel()
		g.showMenu()
		return
	}
	for key, dir := range KEYS {
		if inpututil.IsKeyJustPressed(key) {
			g.Session.Steer(dir)
		}
	}
}

func (g *Game) react(e session.Event) {
	switch e {
	case session.EVENT_LIFE_LOST:
		g.flashRed()
	case session.EVENT_GAME_OVER:
		g.flashRed()
		g.showMenu()
	case session.EVENT_WON:
		g.showMenu()
	}
}

// showMenu fades the overlay in; it only shows while the session is in the menu.
func (g *Game) showMenu() {
	g.overlay = 0
	fade := gween.New(0, overlayAlpha, 0.25, ease.OutQuad)
	g.Tweens[fade] = Action{onChange: func(v float32) {
		g.overlay = float64(v)
	}}
}

func (g *Game) flashRed() {
	in := gween.New(0, flashAlpha, 0.08, ease.Linear)
	out := gween.New(flashAlpha, 0, 0.4, ease.InQuad)
	action := Action{onChange: func(v float32) { g.flash = float64(v) }}
	action.next(out).onChange = func(v float32) { g.flash = float64(v) }
	action.addOnFinish(func() { g.flash = flashAlpha })
	g.Tweens[in] = action
}

func (g *Game) draw(screen *ebiten.Image) {
	if err := screen.Fill(scene.COLOR_BACKGROUND); err != nil {
		log.Printf("%v", err)
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", g.Session.Score()), g.Faces.HUD, 20, 40, color.White)
	text.Draw(screen, fmt.Sprintf("Lives: %d", g.Session.Lives()), g.Faces.HUD, scene.Width-100, 40, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, scene.ScoreHeight)
	screen.DrawImage(g.walls, op)

	for _, c := range g.Session.Pickups() {
		x, y := scene.CellOrigin(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x+model.CellSize/2-scene.DotRadius, y+model.CellSize/2-scene.DotRadius)
		screen.DrawImage(g.dot, op)
	}

	g.drawPlayer(screen, g.Session.Player())
	for _, a := range g.Session.Adversaries() {
		g.drawAdversary(screen, a)
	}

	if g.flash > 0 {
		ebitenutil.DrawRect(screen, 0, scene.ScoreHeight, scene.Width, scene.MazeHeight,
			color.NRGBA{255, 0, 0, uint8(g.flash * 255)})
	}

	if g.Session.Mode() == session.MODE_MENU {
		g.drawMenu(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.Session.Mode().Name(), scene.Width/2-24, 0)
}

func (g *Game) drawPlayer(screen *ebiten.Image, p *model.Player) {
	half := float64(model.CellSize) / 2
	x, y := scene.Origin(p.Pos)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(p.Dir.Angle())
	op.GeoM.Translate(x+half, y+half)
	screen.DrawImage(g.mouths[scene.MouthFrame(p.Openness)], op)
}

func (g *Game) drawAdversary(screen *ebiten.Image, a *model.Adversary) {
	c := colorFor(a.Tag)
	x, y := scene.Origin(a.Pos)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	screen.DrawImage(g.body, op)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, scene.Width, scene.Height, color.NRGBA{0, 0, 0, uint8(g.overlay * 255)})

	centered(screen, "Chaser", g.Faces.Title, scene.Width/2, scene.TitleY, color.RGBA{255, 255, 0, 255})
	if banner := g.Session.Outcome().Banner(); banner != "" {
		line := fmt.Sprintf("%s  Score: %d", banner, g.Session.LastScore())
		centered(screen, line, g.Faces.HUD, scene.Width/2, scene.BannerY, color.White)
	}

	cx, cy := ebiten.CursorPosition()
	g.drawButton(screen, scene.NewGameButton, "New Game", image.Pt(cx, cy))
	g.drawButton(screen, scene.ContinueButton, "Continue", image.Pt(cx, cy))
}

func (g *Game) drawButton(screen *ebiten.Image, r image.Rectangle, caption string, cursor image.Point) {
	if cursor.In(r) {
		g.button.Tint(COLOR_BUTTON_HOVER)
	} else {
		g.button.Tint(COLOR_BUTTON)
	}
	g.button.Place(r)
	g.button.Draw(screen)

	m := font.MeasureString(g.Faces.Button, caption).Ceil()
	metrics := g.Faces.Button.Metrics()
	baseline := r.Min.Y + (r.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	text.Draw(screen, caption, g.Faces.Button, r.Min.X+(r.Dx()-m)/2, baseline, color.White)
}

// centered draws s with its baseline at y, horizontally centred on x.
func centered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, x-w/2, y, clr)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	s := session.New(model.Arcade, rand.New(rand.NewSource(cfg.Seed)))
	game, err := NewGame(s)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{"seed": cfg.Seed, "scale": cfg.Scale}).Info("starting")

	if err := ebiten.Run(game.update, scene.Width, scene.Height, cfg.Scale, cfg.Title); err != nil && err != errQuit {
		log.Fatal(err)
	}
	log.Info("bye")
}
