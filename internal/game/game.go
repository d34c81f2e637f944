package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/gravity-squares/internal/config"
	"github.com/iburimskiy/gravity-squares/internal/sim"
	"github.com/iburimskiy/gravity-squares/internal/synth"
)

// Audio is the sound output the game drives. synth.Player is the live one.
type Audio interface {
	Strike(voices []int)
	ToggleMute() bool
	Tap() *synth.Tap
	Swap(bank *synth.Bank) error
}

type Game struct {
	cfg   *config.Config
	world *sim.World
	audio Audio // nil when running silent

	sounds []int
	scope  [][2]float64

	// state
	running bool
	paused  bool
	muted   bool
	frames  int
	lastErr error

	// input edge detection
	prevKey map[ebiten.Key]bool

	// pickScene asks the user for a scene file; "" means canceled.
	pickScene func() (string, error)
	// resize sets the outer window size.
	resize func(width, height int)
}

// New creates a game for cfg. audio may be nil.
func New(cfg *config.Config, audio Audio) *Game {
	return &Game{
		cfg:       cfg,
		world:     BuildWorld(cfg),
		audio:     audio,
		muted:     cfg.Audio.Muted,
		prevKey:   map[ebiten.Key]bool{},
		pickScene: selectSceneFile,
		resize:    ebiten.SetWindowSize,
	}
}

func (g *Game) World() *sim.World { return g.world }

// SetAudio attaches a sound output built for the current world.
func (g *Game) SetAudio(audio Audio) { g.audio = audio }

func (g *Game) Running() bool { return g.running }

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.Click(float64(x), float64(y))
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if justPressed(ebiten.KeyR) {
		g.Reset()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openScene(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.Tick()
	return nil
}

// Click spawns particles at (x, y) on the first click and toggles every
// square on later ones.
func (g *Game) Click(x, y float64) {
	if !g.running {
		g.world.Spawn(sim.Vec2{X: x, Y: y})
		g.running = true
		return
	}
	g.world.ToggleSquares()
}

// Tick advances the world one frame and sounds the squares that were hit.
func (g *Game) Tick() {
	if !g.running || g.paused {
		return
	}
	g.sounds = g.world.Step(g.sounds)
	g.frames++
	if g.audio != nil {
		g.audio.Strike(g.sounds)
	}
}

// Reset clears all particles and waits for a new first click.
func (g *Game) Reset() {
	g.world.Reset()
	g.running = false
	g.frames = 0
	g.lastErr = nil
}

func (g *Game) toggleMute() {
	if g.audio == nil {
		return
	}
	g.muted = g.audio.ToggleMute()
}

// Apply replaces the scene with one built from cfg, resizing the window
// and swapping the voice bank. The mute state carries over.
func (g *Game) Apply(cfg *config.Config) error {
	cfg.Audio.Muted = g.muted
	if cfg.Window.Width != g.cfg.Window.Width || cfg.Window.Height != g.cfg.Window.Height {
		g.resize(cfg.Window.Width, cfg.Window.Height)
	}
	g.cfg = cfg
	g.world = BuildWorld(cfg)
	g.running = false
	g.frames = 0
	g.lastErr = nil
	if g.audio != nil {
		if err := g.audio.Swap(BuildBank(cfg, g.world)); err != nil {
			return fmt.Errorf("scene audio: %w", err)
		}
	}
	return nil
}

func (g *Game) openScene() error {
	path, err := g.pickScene()
	if err != nil || path == "" {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Printf("scene: loaded %s (%d squares)", path, len(cfg.Squares.Chord))
	return g.Apply(cfg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetTPS(g.cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
