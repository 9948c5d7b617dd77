// Package screen runs the game in a window using ebiten.
package screen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/mikenye/torus-snake/game"
)

// pacer spreads tps game ticks over rate ebiten updates per second
type pacer struct {
	tps, rate int
	acc       int
}

// steps returns how many game ticks fall in this update
func (p *pacer) steps() int {
	p.acc += p.tps
	n := p.acc / p.rate
	p.acc %= p.rate
	return n
}

// Display is the ebiten.Game that drives a game.Controller
type Display struct {
	cfg   game.Config
	ctrl  *game.Controller
	frame *Frame
	keys  *Keyboard
	pacer pacer

	// draw the tick rate and snake length in the corner
	Debug bool
}

// New creates a display and the controller it drives. rng may be nil.
func New(cfg game.Config, rng *rand.Rand) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Display{
		cfg:   cfg,
		frame: NewFrame(cfg.Grid(), cfg.Palette.Border, cfg.Palette.Background),
		keys:  &Keyboard{},
		pacer: pacer{tps: cfg.TPS, rate: ebiten.DefaultTPS},
	}
	ctrl, err := game.New(cfg, game.Frontend{Surface: d.frame, Input: d.keys}, rng)
	if err != nil {
		return nil, err
	}
	d.ctrl = ctrl
	return d, nil
}

// Controller returns the controller driven by the display
func (d *Display) Controller() *game.Controller {
	return d.ctrl
}

// update function, ebiten calls this every tick (60 times per second)
func (d *Display) Update() error {
	d.keys.Collect()
	for range d.pacer.steps() {
		if err := d.ctrl.Step(); err != nil {
			if errors.Is(err, game.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

// draw function, ebiten calls this every frame to render the screen
func (d *Display) Draw(screen *ebiten.Image) {
	d.frame.Render(screen)
	if d.Debug {
		snake := d.ctrl.Snake()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nlength: %d/%d",
			ebiten.ActualTPS(), snake.Len(), snake.TargetLength()))
	}
}

// layout function, called by Ebiten to size window & content
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.cfg.ScreenSize()
}

// Run opens the window and blocks until the player quits
func (d *Display) Run() error {
	w, h := d.cfg.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowClosingHandled(true)

	glog.Infof("opening %dx%d window, %d ticks per second", w, h, d.cfg.TPS)
	return ebiten.RunGame(d)
}
