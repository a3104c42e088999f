package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config file")
	sceneName := fs.String("scene", "", "Built-in scene name, scene name in the scenes directory, or path to a .json scene")
	outputDir := fs.String("out", "", "Output directory (default \"output\")")
	format := fs.String("format", "", "Output format: png, jpeg, bmp, tga or webp")
	size := fs.Int("size", 0, "Image width and height in pixels")
	depth := fs.Int("depth", 0, "Maximum reflection depth")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	seed := fs.Int64("seed", 0, "Base random seed")
	supersample := fs.Int("supersample", 0, "Render at N× resolution and scale down")
	saveScene := fs.String("save-scene", "", "Also write the scene to this .json file")
	list := fs.Bool("list", false, "List available scenes and exit")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListBuiltinScenes() {
			fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return nil
	}

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := config.Flags{
		Scene:       *sceneName,
		OutputDir:   *outputDir,
		Format:      *format,
		Size:        *size,
		Workers:     *workers,
		Supersample: *supersample,
	}
	// Depth and seed accept 0, so only explicitly given values override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			flags.MaxDepth = depth
		case "seed":
			flags.Seed = seed
		}
	})
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *list {
		return listScenes(cfg.ScenesDir)
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, camera, err := createScene(cfg.Scene, cfg.ScenesDir)
	if err != nil {
		return err
	}
	fmt.Printf("Using scene %s: %d objects, %d lights\n",
		cfg.Scene, len(selectedScene.Objects()), len(selectedScene.Lights()))

	if *saveScene != "" {
		if err := loaders.SaveScene(*saveScene, selectedScene, camera); err != nil {
			return err
		}
		fmt.Printf("Scene saved as %s\n", *saveScene)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := renderer.Render(ctx, selectedScene, camera, cfg.RendererConfig(), renderer.NewDefaultLogger())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Shaded %d rays for %d pixels in %v\n", stats.ShadeCalls, stats.TotalPixels, stats.Duration)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(cfg.SceneOutputDir(sceneDirName(cfg.Scene)),
		fmt.Sprintf("render_%s.%s", timestamp, cfg.OutputFormat))
	if err := loaders.SaveImage(filename, img); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene by built-in name, by name in scenesDir, or by .json path
func createScene(name, scenesDir string) (*scene.Scene, *geometry.Camera, error) {
	if name == "" {
		return nil, nil, errors.New("no scene given")
	}

	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return loaders.LoadScene(name)
	}

	s, camera, err := scene.NewBuiltinScene(name)
	if err == nil {
		return s, camera, nil
	}

	path := filepath.Join(scenesDir, name+".json")
	if _, statErr := os.Stat(path); statErr == nil {
		return loaders.LoadScene(path)
	}
	return nil, nil, err
}

// sceneDirName turns a scene name or path into an output directory name
func sceneDirName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

func listScenes(scenesDir string) error {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		id := info.ID
		if info.Type == "json" {
			id = info.FilePath
		}
		fmt.Printf("%-24s %-20s %s\n", id, info.Name, info.Description)
	}
	return nil
}
