package preset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/scenedemo/anim"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a bundled preset script. The scripts/ prefix and the
// .tengo extension are optional.
func LoadScript(name string) ([]byte, error) {
	s := strings.TrimPrefix(path.Clean("/"+name), "/")
	s = strings.TrimPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return ScriptsFS.ReadFile("scripts/" + s)
}

// BundledScripts lists the embedded script names without extension.
func BundledScripts() []string {
	entries, err := ScriptsFS.ReadDir("scripts")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".tengo"))
	}
	return out
}

// FromScript runs a tengo script and collects every map passed to its
// add builtin as a wire-format descriptor.
func FromScript(ctx context.Context, src []byte) ([]anim.Descriptor, error) {
	var raw []map[string]any

	add := &tengo.UserFunction{Name: "add", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		m, ok := tengo.ToInterface(args[0]).(map[string]any)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "descriptor", Expected: "map", Found: args[0].TypeName()}
		}
		raw = append(raw, m)
		return tengo.TrueValue, nil
	}}

	script := tengo.NewScript(src)
	if err := script.Add("add", add); err != nil {
		return nil, fmt.Errorf("preset: script setup: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("preset: compile script: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("preset: run script: %w", err)
	}

	out := make([]anim.Descriptor, 0, len(raw))
	for i, m := range raw {
		data, err := json.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("preset: script descriptor %d: %w", i, err)
		}
		var d anim.Descriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("preset: script descriptor %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
