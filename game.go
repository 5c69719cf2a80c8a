package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/preset"
	"github.com/milk9111/scenedemo/routes"
	"golang.design/x/clipboard"
)

const panelRefreshFrames = 10

var routeKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9, ebiten.KeyDigit0,
}

type Options struct {
	Route     string
	PresetDir string
	Policy    string
	Watch     bool
	Debug     bool
}

type Game struct {
	*App

	panel     *Panel
	showPanel bool
	watcher   *routes.Watcher
	clipboard bool
	debug     bool
	frames    int
}

func NewGame(opts Options) (*Game, error) {
	table, err := routes.LoadTable()
	if err != nil {
		return nil, err
	}
	store, err := preset.NewFileStore(opts.PresetDir)
	if err != nil {
		return nil, err
	}

	session := anim.NewSession(time.Now, anim.ParsePolicy(opts.Policy))
	g := &Game{
		App:   NewApp(session, table, store),
		debug: opts.Debug,
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if opts.Watch {
		w, err := routes.NewWatcher(routes.Dir)
		if err != nil {
			log.Printf("failed to watch %s: %v", routes.Dir, err)
		} else {
			g.watcher = w
		}
	}

	route := opts.Route
	if route == "" {
		route = routes.RootRoute
	}
	g.Navigate(route)
	g.panel = NewPanel(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showPanel = !g.showPanel
	}
	if !g.showPanel || !g.panel.Typing() {
		g.handleKeys()
	}

	g.Tick()

	if g.showPanel {
		if g.frames%panelRefreshFrames == 0 {
			g.panel.Refresh(Entries(g.session.List()), g.Status())
		}
		g.panel.ui.Update()
	}
	return nil
}

func (g *Game) handleKeys() {
	paths := g.controller.Table().Routes()
	for i, key := range routeKeys {
		if i < len(paths) && inpututil.IsKeyJustPressed(key) {
			g.Navigate(paths[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.PauseAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ResumeAll()
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.CopyPreset()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.PastePreset()
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if t, ok := routes.ModTime(routes.TableFile); ok {
				log.Printf("routes: %s changed (mod %s)", name, t.Format(time.TimeOnly))
			}
			table, err := routes.LoadTable()
			if err != nil {
				g.notice(fmt.Sprintf("reload failed: %v", err))
				continue
			}
			g.Reload(table)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("routes: watcher error: %v", err)
		default:
			return
		}
	}
}

// CopyPreset writes the running descriptors to the clipboard as preset JSON.
func (g *Game) CopyPreset() {
	if !g.clipboard {
		g.notice("clipboard unavailable")
		return
	}
	data, err := g.ExportPreset()
	if err != nil {
		g.notice(fmt.Sprintf("copy failed: %v", err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.notice(fmt.Sprintf("copied %d animations", len(g.session.List())))
}

// PastePreset replaces the running set with preset JSON from the clipboard.
func (g *Game) PastePreset() {
	if !g.clipboard {
		g.notice("clipboard unavailable")
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		g.notice("clipboard is empty")
		return
	}
	g.ImportPreset(data)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	if g.showPanel {
		g.panel.ui.Draw(screen)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  [1-0] routes  [F1] panel", g.controller.Current()), baseWidth-320, baseHeight-20)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    animations: %d    targets: %d",
			g.frames, ebiten.ActualFPS(), len(g.session.List()), g.session.Targets().Len()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
