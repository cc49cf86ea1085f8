package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/skyline/config"
	"github.com/milk9111/skyline/ecs/component"
	"github.com/milk9111/skyline/ecs/render"
	"github.com/milk9111/skyline/nav"
	"github.com/milk9111/skyline/scene"
	"github.com/milk9111/skyline/watch"
)

type Game struct {
	frames int
	debug  bool

	cfg       config.Config
	cfgMod    time.Time
	scene     *scene.Scene
	navigator *nav.Navigator
	input     *Input
	overlay   *Overlay
	painter   *render.Painter
	cmds      []render.Command

	cfgWatch *watch.Watcher
	dirWatch *watch.Watcher
	watched  string

	clipboardOK bool
}

func NewGame(cfg config.Config, startPath string, debug bool) (*Game, error) {
	sc, err := scene.New(cfg)
	if err != nil {
		return nil, err
	}
	km, err := ParseKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	painter, err := render.NewPainter()
	if err != nil {
		log.Printf("labels disabled: %v", err)
	}

	g := &Game{
		debug:     debug,
		cfg:       cfg,
		scene:     sc,
		navigator: nav.New(cfg.ShowFiles, loadFilter(cfg)),
		input:     NewInput(km, cfg.KeyRepeat),
		painter:   painter,
	}
	g.overlay = NewOverlay(g.back)
	g.overlay.SetHelp(cfg.Keys)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if cfg.Path != "" {
		if mod, ok := config.ModTime(cfg.Path); ok {
			g.cfgMod = mod
		}
		w, err := watch.NewWatcher(watch.Any(watch.File(cfg.Path), watch.Ext(".tengo")), filepath.Dir(cfg.Path))
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			g.cfgWatch = w
			if cfg.FilterScript != "" && !filepath.IsAbs(cfg.FilterScript) {
				// Watches are not recursive; follow the script's own directory too.
				scriptDir := filepath.Dir(filepath.Join(filepath.Dir(cfg.Path), filepath.FromSlash(cfg.FilterScript)))
				if scriptDir != filepath.Dir(cfg.Path) {
					_ = w.Add(scriptDir)
				}
			}
		}
	}
	dirWatch, err := watch.NewWatcher(nil)
	if err != nil {
		log.Printf("directory watch disabled: %v", err)
	}
	g.dirWatch = dirWatch

	g.show(g.navigator.Load(startPath))
	return g, nil
}

func loadFilter(cfg config.Config) nav.Filter {
	if cfg.FilterScript == "" {
		return nil
	}
	src, err := config.LoadScript(cfg.Path, cfg.FilterScript)
	if err != nil {
		log.Printf("filter %s: %v", cfg.FilterScript, err)
		return nil
	}
	f, err := nav.NewScriptFilter(src)
	if err != nil {
		log.Printf("filter %s: %v", cfg.FilterScript, err)
		return nil
	}
	return f
}

// show rebuilds the skyline for listing and follows it with the directory watch.
func (g *Game) show(listing nav.Listing) {
	if err := g.scene.Populate(entriesFromListing(listing)); err != nil {
		log.Printf("populate: %v", err)
	}
	g.overlay.SetPath(g.navigator.Breadcrumb())
	g.overlay.SetStatus("")
	g.watchDir(listing)
}

func (g *Game) watchDir(listing nav.Listing) {
	if g.dirWatch == nil {
		return
	}
	next := ""
	if !listing.Denied {
		next = listing.Path
	}
	if next == g.watched {
		return
	}
	if g.watched != "" {
		_ = g.dirWatch.Remove(g.watched)
	}
	g.watched = ""
	if next == "" {
		return
	}
	if err := g.dirWatch.Add(next); err != nil {
		log.Printf("watch %s: %v", next, err)
		return
	}
	g.watched = next
}

func (g *Game) back() {
	g.show(g.navigator.Back())
}

func (g *Game) open(t component.Tower) {
	if t.Kind != component.TowerDirectory || t.Path == "" {
		return
	}
	g.show(g.navigator.NavigateTo(t.Path))
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatchers()

	for _, cmd := range g.input.Commands() {
		g.scene.Dispatch(cmd)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if t, ok := g.scene.Selected(); ok {
			g.open(t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrlPressed() {
		g.copySelected()
	}

	g.overlay.ui.Update()
	g.handlePointer()

	for _, evt := range g.scene.Events() {
		if evt.Selected {
			g.overlay.SetStatus(fmt.Sprintf("%s: %s", evt.Kind, evt.Label))
		} else {
			g.overlay.SetStatus("")
		}
	}
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.overlay.Contains(x, y) {
		g.scene.PointerPressed(float64(x), float64(y))
		t, ok := g.scene.Selected()
		if !ok {
			// A press on empty space breaks any pending double click.
			g.input.DoubleClick("")
		} else if g.input.DoubleClick(t.Path) {
			g.open(t)
			return
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && !g.overlay.Contains(x, y) {
		g.scene.PointerReleased(float64(x), float64(y))
	}
}

func (g *Game) copySelected() {
	t, ok := g.scene.Selected()
	if !ok || t.Path == "" || !g.clipboardOK {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(t.Path))
	g.overlay.SetStatus("copied " + t.Path)
}

func (g *Game) drainWatchers() {
	if err := g.cfgWatch.Err(); err != nil {
		log.Printf("config watch: %v", err)
	}
	if err := g.dirWatch.Err(); err != nil {
		log.Printf("directory watch: %v", err)
	}
	if len(g.cfgWatch.Drain()) > 0 {
		g.reloadConfig()
	}
	if len(g.dirWatch.Drain()) > 0 {
		g.show(g.navigator.Refresh())
	}
}

// reloadConfig re-reads the config file. The camera pose survives; the
// registry is rebuilt so listing rules and spacing take effect.
func (g *Game) reloadConfig() {
	if mod, ok := config.ModTime(g.cfg.Path); ok && mod.Equal(g.cfgMod) {
		// Only a script changed.
		g.navigator.Filter = loadFilter(g.cfg)
		g.show(g.navigator.Refresh())
		return
	}
	cfg, err := config.LoadConfig(g.cfg.Path)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	km, err := ParseKeymap(cfg.Keys)
	if err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	if err := g.scene.ApplyConfig(cfg); err != nil {
		log.Printf("reload config: %v", err)
		return
	}
	g.cfg = cfg
	g.cfgMod, _ = config.ModTime(cfg.Path)
	g.input.Keymap = km
	g.input.Delay = cfg.KeyRepeat.Delay
	g.input.Interval = cfg.KeyRepeat.Interval
	g.overlay.SetHelp(cfg.Keys)

	g.navigator.ShowFiles = cfg.ShowFiles
	g.navigator.Filter = loadFilter(cfg)
	g.show(g.navigator.Refresh())
	log.Printf("reloaded config %s", cfg.Path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.scene.Dirty() || g.cmds == nil {
		g.cmds = g.scene.Draw()
	}
	g.painter.Paint(screen, g.cmds)
	g.overlay.ui.Draw(screen)

	if g.debug {
		cam := g.scene.Camera()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  cam x=%.1f z=%.1f yaw=%.3f  towers=%d",
			ebiten.ActualFPS(), cam.X, cam.Z, cam.Yaw, len(g.scene.Towers())), 8, topBarHeight+4)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.scene.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	_ = g.cfgWatch.Close()
	_ = g.dirWatch.Close()
}
