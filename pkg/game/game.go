package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/models/car"
	"github.com/golangdaddy/swerve/pkg/ui"
)

// Default logical screen size.
const (
	ScreenWidth  = 1024
	ScreenHeight = 600
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// resizer is implemented by screens that cache size-dependent images.
type resizer interface {
	Resize(width, height int)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           config.Config
	log           *zap.Logger
	currentScreen Screen
	width, height int
	best          int
}

// NewGame creates a new game instance on the title screen
func NewGame(cfg config.Config, log *zap.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		log:    log,
		width:  ScreenWidth,
		height: ScreenHeight,
	}
	g.showTitle()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout keeps the logical size equal to the window so the road widens
// with it. Size changes are passed on to the current screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if r, ok := g.currentScreen.(resizer); ok {
			r.Resize(g.width, g.height)
		}
	}
	return g.width, g.height
}

func (g *Game) setScreen(s Screen) {
	g.currentScreen = s
	if r, ok := s.(resizer); ok {
		r.Resize(g.width, g.height)
	}
}

func (g *Game) showTitle() {
	g.setScreen(ui.NewTitleScreen(g.showGarage))
}

func (g *Game) showGarage() {
	g.setScreen(ui.NewGarageScreen(g.cfg.Car, g.startGameplay))
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay(selected *car.Car) {
	g.cfg.Car = selected.Model
	g.log.Info("start", zap.String("car", selected.Name()))
	g.setScreen(NewGameplayScreen(g.cfg, selected, g.log, g.showGameOver, g.showGarage))
}

func (g *Game) showGameOver(gp *GameplayScreen) {
	s := gp.Session()
	score := s.Score()
	best := g.best
	g.best = max(g.best, score)
	g.setScreen(ui.NewGameOverScreen(score, s.Distance(), best,
		func() {
			gp.Restart()
			g.setScreen(gp)
		},
		g.showGarage,
	))
}
