package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/scenedemo/anim"
)

const KeyPrefix = "animation-preset-"

var (
	ErrPresetNotFound = errors.New("preset: not found")
	ErrPresetCorrupt  = errors.New("preset: corrupt data")
	ErrEmptyName      = errors.New("preset: empty name")
)

func Key(name string) string {
	return KeyPrefix + name
}

// Encode renders descriptors in the preset wire format.
func Encode(descriptors []anim.Descriptor) ([]byte, error) {
	if descriptors == nil {
		descriptors = []anim.Descriptor{}
	}
	data, err := json.Marshal(descriptors)
	if err != nil {
		return nil, fmt.Errorf("preset: encode: %w", err)
	}
	return data, nil
}

// Decode parses a preset. Any failure is reported as ErrPresetCorrupt.
func Decode(data []byte) ([]anim.Descriptor, error) {
	var ds []anim.Descriptor
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPresetCorrupt, err)
	}
	return ds, nil
}

// Save overwrites the preset called name.
func Save(store Store, name string, descriptors []anim.Descriptor) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	data, err := Encode(descriptors)
	if err != nil {
		return err
	}
	if err := store.Put(Key(name), data); err != nil {
		return fmt.Errorf("preset: save %s: %w", name, err)
	}
	return nil
}

// Read fetches and decodes a preset without touching any session.
func Read(store Store, name string) ([]anim.Descriptor, error) {
	data, ok, err := store.Get(Key(name))
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", name, err)
	}
	return ds, nil
}

// Load replaces the session's run-states with the preset's descriptors.
// On error the session is left as it was.
func Load(store Store, name string, session *anim.Session) error {
	ds, err := Read(store, name)
	if err != nil {
		return err
	}
	Apply(session, ds)
	return nil
}

// Apply clears the session and adds every descriptor.
func Apply(session *anim.Session, descriptors []anim.Descriptor) {
	session.Clear()
	for _, d := range descriptors {
		session.Add(d)
	}
}

// Names lists saved presets, sorted.
func Names(store Store) ([]string, error) {
	keys, err := store.Keys()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, k := range keys {
		if name, ok := strings.CutPrefix(k, KeyPrefix); ok && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
