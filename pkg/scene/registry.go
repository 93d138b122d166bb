package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrUnknownScene is returned by Lookup for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
}

type builtin struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		description: "Lambertian, metal and glass spheres on a ground plane under a sphere light",
		build:       NewDefaultScene,
	},
	"cornell-box": {
		description: "Cornell box with two rotated blocks and a ceiling light",
		build:       NewCornellBox,
	},
	"cornell-smoke": {
		description: "Cornell box with the blocks replaced by dark and light smoke",
		build:       NewCornellSmoke,
	},
	"two-spheres": {
		description: "Two checkered spheres under a sky background",
		build:       NewTwoSpheres,
	},
	"light-only": {
		description: "A single white emitter filling the view",
		build: func() *Scene {
			return NewLightOnly(core.NewVec3(1, 1, 1))
		},
	},
}

// Names returns the IDs of all built-in scenes, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for id := range builtins {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// List returns metadata for all built-in scenes, sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, id := range Names() {
		infos = append(infos, SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: builtins[id].description,
		})
	}
	return infos
}

// Lookup builds the scene registered under id
func Lookup(id string) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("%w %q (known scenes: %s)", ErrUnknownScene, id, strings.Join(Names(), ", "))
	}
	return b.build(), nil
}

// titleCase converts "cornell-box" or "cornell_box" into "Cornell Box"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
