package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-mirrors", "Two Mirrors"},
		{"area_light", "Area Light"},
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

func TestNewBuiltinScene(t *testing.T) {
	for _, info := range ListBuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, camera, err := NewBuiltinScene(info.ID)
			if err != nil {
				t.Fatalf("Failed to build %s: %v", info.ID, err)
			}
			if camera == nil {
				t.Fatal("Expected a camera")
			}
			if len(s.Objects()) == 0 {
				t.Error("Expected objects in built-in scene")
			}
			if len(s.Lights()) == 0 {
				t.Error("Expected lights in built-in scene")
			}
			if info.Type != "builtin" {
				t.Errorf("Expected builtin type, got %q", info.Type)
			}
		})
	}
}

func TestNewBuiltinScene_Unknown(t *testing.T) {
	_, _, err := NewBuiltinScene("cornell-box")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestDefaultScene_CameraSeesSphere(t *testing.T) {
	s, camera := NewDefaultScene()
	forward, _, _ := camera.Basis()

	_, obj, ok := s.NearestHit(camera.Position, forward)
	if !ok {
		t.Fatal("Camera's forward ray should hit the sphere")
	}
	if obj.Shape.Type() != "sphere" {
		t.Errorf("Expected sphere under the image center, got %s", obj.Shape.Type())
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"two-mirrors.json": `{"objects": []}`,
		"custom.json":      `{"name": "A Custom Scene", "description": "hand written", "objects": []}`,
		"broken.json":      `{not json`,
		"notes.txt":        `ignored`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("Expected 3 json scenes, got %d: %+v", len(scenes), scenes)
	}

	// Sorted by name
	expected := []SceneInfo{
		{ID: "json:custom", Name: "A Custom Scene", Description: "hand written", Type: "json", FilePath: filepath.Join(dir, "custom.json")},
		{ID: "json:broken", Name: "Broken", Type: "json", FilePath: filepath.Join(dir, "broken.json")},
		{ID: "json:two-mirrors", Name: "Two Mirrors", Type: "json", FilePath: filepath.Join(dir, "two-mirrors.json")},
	}
	for i, want := range expected {
		if scenes[i] != want {
			t.Errorf("Scene %d: expected %+v, got %+v", i, want, scenes[i])
		}
	}
}

func TestListAllScenes_MissingDir(t *testing.T) {
	scenes, err := ListAllScenes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Missing directory should not be an error: %v", err)
	}
	if len(scenes) != len(ListBuiltinScenes()) {
		t.Errorf("Expected only built-in scenes, got %d", len(scenes))
	}
}
