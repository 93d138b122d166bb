package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var logger = log.New("pathtracer")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Render one of the built-in scenes. Width, height, samples and depth default to
the scene's recommended settings. Rendering with the same seed always produces
the same image, with or without multithreading.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path, 0 for the scene default",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "rows rendered in parallel, 0 for one per CPU",
				},
				cli.BoolFlag{
					Name:  "single-threaded",
					Usage: "render rows one at a time",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: renderer.DefaultConfig().Seed,
					Usage: "base seed for the per-row random streams",
				},
				cli.BoolFlag{
					Name:  "bvh",
					Usage: "wrap the scene in a bounding volume hierarchy",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename, defaults to output/<scene>/render_<timestamp>.png",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}
	return app
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// createScene looks up a built-in scene, optionally accelerated by a BVH
func createScene(name string, useBVH bool) (*scene.Scene, error) {
	s, err := scene.Lookup(name)
	if err != nil {
		return nil, err
	}
	if useBVH {
		return scene.WithBVH(s)
	}
	return s, nil
}

// renderConfig merges command line flags over the scene's recommended settings
func renderConfig(ctx *cli.Context, s *scene.Scene) (cfg renderer.Config, width, height int) {
	cfg = renderer.DefaultConfig()
	cfg.SamplesPerPixel = orDefault(ctx.Int("spp"), s.SamplingConfig.SamplesPerPixel)
	cfg.MaxDepth = orDefault(ctx.Int("depth"), s.SamplingConfig.MaxDepth)
	cfg.Workers = ctx.Int("workers")
	cfg.Multithreading = !ctx.Bool("single-threaded")
	cfg.Seed = ctx.Int64("seed")

	width = orDefault(ctx.Int("width"), s.SamplingConfig.Width)
	height = orDefault(ctx.Int("height"), s.SamplingConfig.Height)
	return cfg, width, height
}

func orDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

// Render a still frame.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	s, err := createScene(name, ctx.Bool("bvh"))
	if err != nil {
		return err
	}

	cfg, width, height := renderConfig(ctx, s)
	if width <= 0 || height <= 0 {
		return errors.New("frame width and height must be positive")
	}

	img, stats, err := renderer.New(cfg).Render(context.Background(), s, height, width)
	if err != nil {
		return fmt.Errorf("while rendering %s: %w", name, err)
	}

	out := ctx.String("out")
	if out == "" {
		timestamp := time.Now().Format("20060102_150405")
		out = filepath.Join("output", name, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := savePNG(out, img); err != nil {
		return err
	}

	fmt.Fprint(ctx.App.Writer, formatStats(name, cfg, stats))
	logger.Noticef("render saved as %s", out)
	return nil
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("while creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("while encoding %s: %w", path, err)
	}
	return file.Close()
}

func formatStats(name string, cfg renderer.Config, stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Samples/pixel", "Depth", "Workers", "Render time", "Samples/s", "Luminance"})
	table.Append([]string{
		name,
		fmt.Sprintf("%d", stats.Pixels),
		fmt.Sprintf("%d", cfg.SamplesPerPixel),
		fmt.Sprintf("%d", cfg.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		stats.Duration.Round(time.Millisecond).String(),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		fmt.Sprintf("%.3f", stats.AverageLuminance),
	})
	table.Render()

	return buf.String()
}

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
