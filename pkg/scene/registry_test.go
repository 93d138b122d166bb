package scene

import (
	"errors"
	"sort"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-box", "Cornell Box"},
		{"two_spheres", "Two Spheres"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLookup_AllBuiltins(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names should be sorted, got %v", names)
	}
	if len(names) != len(List()) {
		t.Errorf("Names and List disagree: %d vs %d", len(names), len(List()))
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", name, err)
			}
			if s.World == nil || s.Camera == nil {
				t.Fatalf("Scene %q is missing a world or camera", name)
			}
			cfg := s.SamplingConfig
			if cfg.Width <= 0 || cfg.Height <= 0 || cfg.SamplesPerPixel <= 0 || cfg.MaxDepth <= 0 {
				t.Errorf("Scene %q has an invalid sampling config %+v", name, cfg)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("no-such-scene")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
