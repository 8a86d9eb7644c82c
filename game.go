package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/boids/common"
	"github.com/milk9111/boids/ecs"
	"github.com/milk9111/boids/ecs/component"
	"github.com/milk9111/boids/ecs/render"
	ecssys "github.com/milk9111/boids/ecs/system"
	"github.com/milk9111/boids/prefabs"
	"github.com/milk9111/boids/system"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

// scriptsDir holds on-disk scenario scripts that take precedence over the
// embedded ones.
const scriptsDir = "prefabs/scripts"

// Overrides are command line values applied on top of every loaded spec.
type Overrides func(spec *prefabs.FlockSpec)

type Game struct {
	configPath string
	overrides  Overrides

	world    *system.World
	renderer *render.FlockRenderer
	snapshot []component.Agent
	watcher  *prefabs.Watcher

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	debug   bool

	clipboardOK bool
	clock       system.Clock
	bounces     int
	status      string
	statusUntil time.Time
}

func NewGame(configPath string, overrides Overrides, watch, debug bool) (*Game, error) {
	g := &Game{
		configPath: configPath,
		overrides:  overrides,
		debug:      debug,
	}

	spec, err := g.loadSpec()
	if err != nil {
		return nil, err
	}
	world, err := system.NewWorld(spec)
	if err != nil {
		return nil, err
	}
	g.setWorld(world)
	log.Printf("loaded flock: config=%q n=%d seed=%d scenario=%q", configPath, spec.Count, spec.Seed, spec.Scenario)

	if watch {
		var paths []string
		if configPath != "" {
			paths = append(paths, configPath)
		}
		if info, err := os.Stat(scriptsDir); err == nil && info.IsDir() {
			paths = append(paths, scriptsDir)
		}
		w, err := prefabs.NewWatcher(paths...)
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) loadSpec() (*prefabs.FlockSpec, error) {
	spec, err := prefabs.LoadSpec(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.overrides != nil {
		g.overrides(spec)
		if err := spec.Validate(); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

func (g *Game) setWorld(world *system.World) {
	g.world = world
	spec := world.Spec
	view := common.View{
		HalfWidth:  spec.Arena.HalfWidth,
		HalfHeight: spec.Arena.HalfHeight,
		ScreenW:    float64(spec.Window.Width),
		ScreenH:    float64(spec.Window.Height),
		Margin:     0.05,
	}
	if g.renderer == nil {
		g.renderer = render.NewFlockRenderer(view)
	} else {
		g.renderer.View = view
	}
	ebiten.SetTPS(spec.Window.TPS)
	g.bounces = 0
	g.clock = system.Clock{MaxDt: spec.MaxDt, Fallback: 1 / float64(spec.Window.TPS)}
}

// reload rebuilds the world from the config file. A bad spec keeps the
// running flock.
func (g *Game) reload() {
	spec, err := g.loadSpec()
	if err != nil {
		log.Printf("reload %s: %v", g.configPath, err)
		g.flash(fmt.Sprintf("reload failed: %v", err))
		return
	}
	world, err := system.NewWorld(spec)
	if err != nil {
		log.Printf("reload %s: %v", g.configPath, err)
		g.flash(fmt.Sprintf("reload failed: %v", err))
		return
	}
	g.setWorld(world)
	log.Printf("reloaded flock: config=%q n=%d seed=%d scenario=%q", g.configPath, spec.Count, spec.Seed, spec.Scenario)
	g.flash("reloaded")
}

func (g *Game) restart() {
	if err := g.world.Reset(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	g.setWorld(g.world)
}

func (g *Game) flash(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(2 * time.Second)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("config changed: %s", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("config watcher: %v", err)
		default:
			break drain
		}
	}
	if changed {
		g.reload()
	}
}

// pause stops the update tick. resume restarts the clock so the time spent
// paused is never fed to the world.
func (g *Game) pause() {
	g.paused = true
}

func (g *Game) resume() {
	g.paused = false
	g.clock.Reset()
}

func (g *Game) step(dt float64) {
	if err := g.world.Step(dt); err != nil {
		log.Printf("step: %v", err)
		return
	}
	for _, evt := range g.world.ECS.Events().Drain() {
		if evt.Type != ecs.EventBoundary {
			continue
		}
		g.bounces++
		if g.debug {
			if b, ok := evt.Data.(ecs.BoundaryEvent); ok {
				log.Printf("tick %d: agent %s bounced on %s", g.world.ECS.Ticks(), b.Entity, b.Axis)
			}
		}
	}
}

func (g *Game) copySnapshot() {
	if !g.clipboardOK {
		g.flash("clipboard unavailable")
		return
	}
	data, err := yaml.Marshal(g.world.Frame())
	if err != nil {
		log.Printf("copy snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.flash(fmt.Sprintf("copied %d agents", g.world.ECS.Len()))
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.paused {
			g.resume()
		} else {
			g.pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.step(1 / float64(ebiten.TPS()))
		}
		g.pauseUI.Update()
		return nil
	}

	g.step(g.clock.Tick(time.Now()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.snapshot = g.world.ECS.SnapshotInto(g.snapshot)
	g.renderer.Draw(screen, g.snapshot)

	spec := g.world.Spec
	hud := fmt.Sprintf("FPS: %.1f  TPS: %.1f  agents: %d  seed: %d  tick: %d  bounces: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.snapshot), spec.Seed, g.world.ECS.Ticks(), g.bounces)
	if g.debug {
		st := ecssys.ComputeStats(g.snapshot)
		hud += fmt.Sprintf("\npolarization: %.3f  nearest: %.1f", st.Polarization, st.NearestNeighbor)
	}
	if g.paused {
		hud += "\nPAUSED (Right: step)"
	}
	if g.status != "" && time.Now().Before(g.statusUntil) {
		hud += "\n" + g.status
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.world.Spec.Window.Width), float64(g.world.Spec.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
