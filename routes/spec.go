package routes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/scenedemo/anim"
	"github.com/milk9111/scenedemo/common"
	"gopkg.in/yaml.v3"
)

// TableSpec is the on-disk shape of routes.yaml.
type TableSpec struct {
	Objects []ObjectSpec `yaml:"objects"`
	Routes  []SceneSpec  `yaml:"routes"`
}

type ObjectSpec struct {
	Name     string     `yaml:"name"`
	Shape    string     `yaml:"shape"`
	Size     float64    `yaml:"size"`
	Tube     float64    `yaml:"tube"`
	Height   float64    `yaml:"height"`
	Position []float64  `yaml:"position,flow"`
	Color    *YAMLColor `yaml:"color"`
}

type SceneSpec struct {
	Route          string            `yaml:"route"`
	CameraPosition []float64         `yaml:"camera_position,flow"`
	CameraTarget   []float64         `yaml:"camera_target,flow"`
	Background     *YAMLColor        `yaml:"background"`
	Lighting       *LightingSpec     `yaml:"lighting"`
	Particles      int               `yaml:"particles"`
	Animations     []anim.Descriptor `yaml:"animations"`
}

type LightingSpec struct {
	AmbientIntensity     float64          `yaml:"ambient_intensity"`
	DirectionalIntensity float64          `yaml:"directional_intensity"`
	PointLights          []PointLightSpec `yaml:"point_lights"`
}

type PointLightSpec struct {
	Position  []float64  `yaml:"position,flow"`
	Color     *YAMLColor `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c [4]uint8
	c[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
		c[i] = v
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", value.Line)
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.Color = rgba
	return nil
}

func vec3(v []float64) (common.Vec3, bool) {
	if len(v) != 3 {
		return common.Vec3{}, false
	}
	return common.Vec3{X: v[0], Y: v[1], Z: v[2]}, true
}

func colorOf(c *YAMLColor) color.Color {
	if c == nil || c.Color == nil {
		return nil
	}
	return c.Color
}
