package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	scenesDir := t.TempDir()
	s, camera := scene.NewLightsScene()
	if err := loaders.SaveScene(filepath.Join(scenesDir, "saved.json"), s, camera); err != nil {
		t.Fatalf("Failed to save scene: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"lights scene", "lights", false},
		{"mirrors scene", "mirrors", false},

		// JSON scenes
		{"scene by name", "saved", false},
		{"scene by path", filepath.Join(scenesDir, "saved.json"), false},
		{"bundled example", filepath.Join("scenes", "two-mirrors.json"), false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid json path", filepath.Join(scenesDir, "nonexistent.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, camera, err := createScene(tt.sceneType, scenesDir)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil || camera != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s == nil || camera == nil {
				t.Fatalf("Expected scene and camera for '%s'", tt.sceneType)
			}
		})
	}
}

func TestSceneDirName(t *testing.T) {
	tests := map[string]string{
		"default":                 "default",
		"scenes/two-mirrors.json": "two-mirrors",
		"/tmp/a/b.json":           "b",
	}
	for in, want := range tests {
		if got := sceneDirName(in); got != want {
			t.Errorf("sceneDirName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRun_RendersAndSaves(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "saved", "lights.json")

	err := run([]string{
		"-scene", "lights",
		"-size", "16",
		"-depth", "1",
		"-workers", "2",
		"-format", "bmp",
		"-out", dir,
		"-save-scene", scenePath,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	renders, err := filepath.Glob(filepath.Join(dir, "lights", "render_*.bmp"))
	if err != nil || len(renders) != 1 {
		t.Fatalf("Expected one render in %s, got %v (%v)", dir, renders, err)
	}
	img, err := loaders.LoadImage(renders[0])
	if err != nil {
		t.Fatalf("Failed to load render: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("Expected 16px render, got %v", img.Bounds())
	}

	if _, err := os.Stat(scenePath); err != nil {
		t.Errorf("Expected saved scene at %s: %v", scenePath, err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	if err := run([]string{"-format", "gif"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if err := run([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}); err == nil {
		t.Error("Expected error for missing config file")
	}
}
