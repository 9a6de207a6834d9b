package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/models/car"
	"github.com/golangdaddy/swerve/pkg/sim"
	"github.com/golangdaddy/swerve/pkg/ui"
	"github.com/golangdaddy/swerve/pkg/vehicle"
	"github.com/golangdaddy/swerve/pkg/view"
)

// crashHold is how long the wreck stays on screen before the game over
// screen appears.
const crashHold = 1200 * time.Millisecond

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	session   *sim.Session
	model     *car.Car
	camera    *view.Camera
	renderer  *Renderer
	pause     *ui.PauseOverlay
	paused    bool
	autopilot *sim.Autopilot

	lastTick  time.Time
	crashedAt time.Time

	onGameOver func(*GameplayScreen)
	onQuit     func()
	log        *zap.Logger
}

// NewGameplayScreen creates a new gameplay screen
func NewGameplayScreen(cfg config.Config, model *car.Car, log *zap.Logger, onGameOver func(*GameplayScreen), onQuit func()) *GameplayScreen {
	gs := &GameplayScreen{
		session:    sim.NewSession(cfg, model.Stats(), nil, log),
		model:      model,
		camera:     view.NewCamera(),
		renderer:   NewRenderer(model.Color),
		onGameOver: onGameOver,
		onQuit:     onQuit,
		log:        log,
	}
	gs.pause = ui.NewPauseOverlay(
		func() { gs.paused = false; gs.lastTick = time.Time{} },
		onQuit,
	)
	return gs
}

func (gs *GameplayScreen) Session() *sim.Session { return gs.session }

// Restart begins a fresh run with the same car.
func (gs *GameplayScreen) Restart() {
	gs.session.Restart()
	gs.camera.Reset()
	gs.paused = false
	gs.lastTick = time.Time{}
	gs.crashedAt = time.Time{}
}

// Resize drops cached sprites sized for the old screen.
func (gs *GameplayScreen) Resize(width, height int) {
	gs.renderer.Resize(width, height)
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	if gs.paused {
		return gs.pause.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		gs.paused = true
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if gs.autopilot == nil {
			gs.autopilot = sim.NewAutopilot()
		} else {
			gs.autopilot = nil
		}
	}

	now := time.Now()
	dt := 1000.0 / float64(ebiten.TPS())
	if !gs.lastTick.IsZero() {
		dt = float64(now.Sub(gs.lastTick)) / float64(time.Millisecond)
	}
	gs.lastTick = now

	if gs.session.GameOver() {
		if gs.crashedAt.IsZero() {
			gs.crashedAt = now
		}
		gs.session.Settle(dt)
		if now.Sub(gs.crashedAt) >= crashHold && gs.onGameOver != nil {
			gs.onGameOver(gs)
		}
		return nil
	}

	gs.session.Update(gs.controls(), dt)

	car := gs.session.Car()
	gs.camera.Follow(car.X(), car.Y())
	return nil
}

// controls reads the arrow keys, or asks the autopilot when it is engaged.
func (gs *GameplayScreen) controls() vehicle.Controls {
	if gs.autopilot != nil {
		return gs.autopilot.Controls(gs.session)
	}
	return vehicle.Controls{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.session, gs.camera)
	drawHUD(screen, view.HUDFor(gs.session), gs.autopilot != nil)
	if gs.paused {
		gs.pause.Draw(screen)
	}
}
