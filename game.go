package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/milk9111/convoy/config"
	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/sim"
)

// maxFeed is how many recent scene events the HUD shows.
const maxFeed = 6

type Game struct {
	cfg *config.Config
	log zerolog.Logger

	session *sim.Session
	keymap  *input.Keymap[ebiten.Key]
	ui      *input.State
	keys    []ebiten.Key

	start       time.Time
	steps       int
	pausedAt    time.Time
	pausedTotal time.Duration

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	feed          []string
	width, height float64
}

func NewGame(cfg *config.Config, log zerolog.Logger) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		log:    log,
		keymap: newKeymap(),
		ui:     input.NewState(input.Pause),
		start:  time.Now(),
		width:  float64(cfg.Window.Width),
		height: float64(cfg.Window.Height),
	}
	if err := g.loadScene(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Scene.HotReload {
		w, err := prefabs.NewWatcher(cfg.Scene.Dir)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.Scene.Dir).Msg("hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// loadScene (re)builds the session from the scene spec, keeping the clock.
func (g *Game) loadScene() error {
	spec, err := prefabs.LoadSceneSpec(g.cfg.Scene.File)
	if err != nil {
		return err
	}
	session, err := sim.New(spec, g.log)
	if err != nil {
		return err
	}
	session.Resize(g.width, g.height)
	if g.session != nil {
		session.Input().CarryLevels(g.session.Input())
	}
	g.session = session
	g.feed = g.feed[:0]
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollReload()
	g.feedKeys()

	if g.ui.JustPressed(input.Pause) {
		g.setPaused(!g.paused)
	}
	g.ui.EndFrame()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.steps++
	for _, evt := range g.session.Step(g.now()) {
		g.pushFeed(describe(evt))
	}
	return nil
}

func (g *Game) feedKeys() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.keymap.Apply(g.session.Input(), k, true)
		g.keymap.Apply(g.ui, k, true)
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.keymap.Apply(g.session.Input(), k, false)
		g.keymap.Apply(g.ui, k, false)
	}
}

// now is the sim time in seconds. Time spent paused does not count.
func (g *Game) now() float64 {
	if step := g.cfg.Scene.FixedStep; step > 0 {
		return float64(g.steps) * step
	}
	return (time.Since(g.start) - g.pausedTotal).Seconds()
}

func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	g.paused = paused
	if paused {
		g.pausedAt = time.Now()
		return
	}
	g.pausedTotal += time.Since(g.pausedAt)
}

func (g *Game) restart() {
	if err := g.loadScene(); err != nil {
		g.log.Error().Err(err).Msg("restart scene")
		return
	}
	g.start = time.Now()
	g.steps = 0
	g.pausedTotal = 0
	g.pausedAt = g.start
	g.setPaused(false)
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			return
		}
		if err := g.loadScene(); err != nil {
			g.log.Error().Err(err).Str("file", name).Msg("reload scene")
			g.pushFeed("reload failed: " + err.Error())
			return
		}
		g.log.Info().Str("file", name).Msg("scene reloaded")
		g.pushFeed("scene reloaded")
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn().Err(err).Msg("scene watcher")
		}
	default:
	}
}

func (g *Game) pushFeed(line string) {
	g.feed = append(g.feed, line)
	if len(g.feed) > maxFeed {
		g.feed = g.feed[len(g.feed)-maxFeed:]
	}
}

func describe(evt ecs.Event) string {
	switch evt.Kind {
	case ecs.EventFollowerReady:
		return fmt.Sprintf("follower %v on trail", evt.Data)
	case ecs.EventCameraChanged:
		return fmt.Sprintf("camera %v", evt.Data)
	case ecs.EventLightToggled:
		return fmt.Sprintf("light on=%v", evt.Data)
	case ecs.EventMaterialCycle:
		return fmt.Sprintf("material %v", evt.Data)
	case ecs.EventStateChanged:
		return fmt.Sprintf("player %v", evt.Data)
	}
	return string(evt.Kind)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen, g.session.View())
	g.drawHUD(screen, g.session.State())
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
