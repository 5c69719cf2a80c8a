package routes

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/common"
	"gopkg.in/yaml.v3"
)

const RootRoute = "/"

var (
	ErrNoRootRoute    = errors.New("routes: table has no \"/\" route")
	ErrDuplicateRoute = errors.New("routes: duplicate route")
)

var defaultBackground = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}

type Lighting struct {
	AmbientIntensity     float64
	DirectionalIntensity float64
	PointLights          []PointLight
}

type PointLight struct {
	Position  common.Vec3
	Color     color.Color
	Intensity float64
}

// Config is one route's scene setup. Treat it as read-only.
type Config struct {
	Route      string
	Animations []anim.Descriptor

	CameraPosition *common.Vec3
	CameraTarget   *common.Vec3
	Background     color.Color
	Lighting       *Lighting
	Particles      int
}

// BackgroundOrDefault returns the configured background or the app default.
func (c Config) BackgroundOrDefault() color.Color {
	if c.Background == nil {
		return defaultBackground
	}
	return c.Background
}

// Object is a scene object shared by every route.
type Object struct {
	Name     string
	Shape    string
	Size     float64
	Tube     float64
	Height   float64
	Position common.Vec3
	Color    color.Color
}

type Table struct {
	configs map[string]Config
	order   []string
	objects []Object
}

func ParseTable(data []byte) (*Table, error) {
	var spec TableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("routes: unmarshal table: %w", err)
	}
	return NewTable(spec)
}

// LoadTable reads routes.yaml from Dir, falling back to the embedded copy.
func LoadTable() (*Table, error) {
	data, err := Load(TableFile)
	if err != nil {
		return nil, fmt.Errorf("routes: load %s: %w", TableFile, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("routes: parse %s: %w", TableFile, err)
	}
	return t, nil
}

func NewTable(spec TableSpec) (*Table, error) {
	t := &Table{configs: make(map[string]Config, len(spec.Routes))}

	for _, s := range spec.Routes {
		if _, dup := t.configs[s.Route]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, s.Route)
		}
		t.configs[s.Route] = configFromSpec(s)
		t.order = append(t.order, s.Route)
	}
	if _, ok := t.configs[RootRoute]; !ok {
		return nil, ErrNoRootRoute
	}

	for _, o := range spec.Objects {
		pos, _ := vec3(o.Position)
		t.objects = append(t.objects, Object{
			Name:     o.Name,
			Shape:    o.Shape,
			Size:     o.Size,
			Tube:     o.Tube,
			Height:   o.Height,
			Position: pos,
			Color:    colorOf(o.Color),
		})
	}
	return t, nil
}

func configFromSpec(s SceneSpec) Config {
	cfg := Config{
		Route:      s.Route,
		Animations: s.Animations,
		Background: colorOf(s.Background),
		Particles:  s.Particles,
	}
	if v, ok := vec3(s.CameraPosition); ok {
		cfg.CameraPosition = &v
	}
	if v, ok := vec3(s.CameraTarget); ok {
		cfg.CameraTarget = &v
	}
	if s.Lighting != nil {
		l := &Lighting{
			AmbientIntensity:     s.Lighting.AmbientIntensity,
			DirectionalIntensity: s.Lighting.DirectionalIntensity,
		}
		for _, p := range s.Lighting.PointLights {
			pos, _ := vec3(p.Position)
			l.PointLights = append(l.PointLights, PointLight{Position: pos, Color: colorOf(p.Color), Intensity: p.Intensity})
		}
		cfg.Lighting = l
	}
	return cfg
}

// Lookup resolves path to a config: exact key first, then the longest
// non-root key that is a string prefix of path, then "/".
func (t *Table) Lookup(path string) Config {
	if cfg, ok := t.configs[path]; ok {
		return cfg
	}

	best := ""
	for _, key := range t.order {
		if key == RootRoute || !strings.HasPrefix(path, key) {
			continue
		}
		if len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		return t.configs[best]
	}
	return t.configs[RootRoute]
}

// Routes returns route keys in file order.
func (t *Table) Routes() []string {
	return append([]string(nil), t.order...)
}

func (t *Table) Objects() []Object {
	return append([]Object(nil), t.objects...)
}
