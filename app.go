package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/preset"
	"github.com/milk9111/scenedemo/routes"
	"github.com/milk9111/scenedemo/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tps        = 60
)

// App is the demo without any window: the session, the route controller,
// the current scene and the preset store. Game drives it from ebiten.
type App struct {
	session    *anim.Session
	controller *routes.Controller
	store      preset.Store
	scene      *scene.Scene

	status string
}

func NewApp(session *anim.Session, table *routes.Table, store preset.Store) *App {
	a := &App{
		session:    session,
		controller: routes.NewController(session, table),
		store:      store,
	}
	a.controller.OnComplete = func(id string) {
		a.status = fmt.Sprintf("%s finished", id)
	}
	return a
}

// Navigate rebuilds the scene for path and loads its default animations.
func (a *App) Navigate(path string) routes.Config {
	prev := a.scene
	prev.Teardown()
	cfg := a.controller.Navigate(path)
	a.scene = scene.Build(a.session.Targets(), a.controller.Table().Objects(), cfg, baseWidth, baseHeight)
	if prev != nil {
		a.scene.FlyFrom(prev.Camera.Position)
	}
	log.Printf("route %s -> %s (%d animations)", path, cfg.Route, len(cfg.Animations))
	return cfg
}

// Reload swaps in a freshly parsed route table.
func (a *App) Reload(table *routes.Table) {
	a.scene.Teardown()
	cfg := a.controller.Reload(table)
	a.scene = scene.Build(a.session.Targets(), table.Objects(), cfg, baseWidth, baseHeight)
	a.notice("routes reloaded")
}

func (a *App) Tick() {
	a.session.Update()
	a.scene.Step(1.0 / tps)
}

func (a *App) Status() string { return a.status }

func (a *App) notice(msg string) {
	a.status = msg
	log.Print(msg)
}

// NewRotation builds the descriptor the panel's create button adds.
func NewRotation(name string) anim.Descriptor {
	id := "anim-" + slug(name)
	return anim.Descriptor{
		Base:   anim.Base{ID: id, Name: name, Duration: 3000, Loop: true},
		Motion: anim.Rotation{Axis: anim.AxisY, Speed: 0.5, From: 0, To: 2 * math.Pi},
	}
}

func (a *App) Create(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		a.notice("enter a name first")
		return
	}
	d := NewRotation(name)
	if _, exists := a.session.Get(d.ID); exists {
		a.notice(fmt.Sprintf("%s already exists", d.ID))
		return
	}
	a.session.Add(d)
	a.notice(fmt.Sprintf("created %s", d.ID))
}

// Duplicate copies id under a fresh "-copy" id.
func (a *App) Duplicate(id string) {
	newID := id + "-copy"
	for n := 2; ; n++ {
		if _, taken := a.session.Get(newID); !taken {
			break
		}
		newID = fmt.Sprintf("%s-copy%d", id, n)
	}
	if a.session.Duplicate(id, newID) {
		a.notice(fmt.Sprintf("duplicated %s as %s", id, newID))
	}
}

// Toggle pauses an active entry or resumes a paused one.
func (a *App) Toggle(id string) {
	st, ok := a.session.Get(id)
	if !ok {
		return
	}
	if st.Active {
		a.session.Pause(id)
	} else {
		a.session.Resume(id)
	}
}

func (a *App) SavePreset(name string) {
	warnInvalid(a.session.Descriptors())
	if err := preset.Save(a.store, strings.TrimSpace(name), a.session.Descriptors()); err != nil {
		a.notice(fmt.Sprintf("save failed: %v", err))
		return
	}
	a.notice(fmt.Sprintf("Preset %q saved", name))
}

func (a *App) LoadPreset(name string) {
	err := preset.Load(a.store, strings.TrimSpace(name), a.session)
	switch {
	case errors.Is(err, preset.ErrPresetNotFound):
		a.notice(fmt.Sprintf("Preset %q not found", name))
	case err != nil:
		a.notice(fmt.Sprintf("Error loading preset %q: %v", name, err))
	default:
		a.notice(fmt.Sprintf("Preset %q loaded", name))
	}
}

// ExportPreset encodes the running descriptors for the clipboard.
func (a *App) ExportPreset() ([]byte, error) {
	return preset.Encode(a.session.Descriptors())
}

// ImportPreset replaces the running set with a pasted preset.
func (a *App) ImportPreset(data []byte) {
	ds, err := preset.Decode(data)
	if err != nil {
		a.notice(fmt.Sprintf("paste failed: %v", err))
		return
	}
	warnInvalid(ds)
	preset.Apply(a.session, ds)
	a.notice(fmt.Sprintf("pasted %d animations", len(ds)))
}

// Entry is one row of the panel's run-state list.
type Entry struct {
	ID    string
	Label string
}

func Entries(states []anim.RunState) []Entry {
	out := make([]Entry, 0, len(states))
	for _, st := range states {
		state := "playing"
		if !st.Active {
			state = "paused"
			if st.Progress >= 1 {
				state = "done"
			}
		}
		name := st.Descriptor.Name
		if name == "" {
			name = st.ID
		}
		out = append(out, Entry{
			ID:    st.ID,
			Label: fmt.Sprintf("%s [%s] %s %3.0f%%", name, st.Descriptor.Kind(), state, st.Progress*100),
		})
	}
	return out
}

func warnInvalid(ds []anim.Descriptor) {
	for _, d := range ds {
		if err := d.Validate(); err != nil {
			log.Printf("warning: animation %s: %v", d.ID, err)
		}
	}
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}
