package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leterax/go-viewer/pkg/config"
	"github.com/leterax/go-viewer/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

type options struct {
	configPath   string
	model        string
	texture      string
	mode         string
	width        int
	height       int
	vsync        bool
	watchShaders bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "viewer [flags]",
		Short: "Interactive 3D model viewer",
		Long: `viewer opens a window with a textured model (or a cube) and lets you move
around it with a free-look, first-person or orbit camera.

Keys: 1/2/3 or Tab switch camera, W/A/S/D move, R resets, C toggles mouse capture,
Esc quits. Orbit: left drag rotates, right or middle drag pans, scroll zooms.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	flags.StringVarP(&opts.model, "model", "m", "", "STL model to load (default: built-in cube)")
	flags.StringVarP(&opts.texture, "texture", "t", "", "texture image (png, jpeg, bmp)")
	flags.StringVar(&opts.mode, "mode", "", "start camera: freelook, firstperson or orbit")
	flags.IntVar(&opts.width, "width", 0, "window width")
	flags.IntVar(&opts.height, "height", 0, "window height")
	flags.BoolVar(&opts.vsync, "vsync", true, "enable vsync")
	flags.BoolVar(&opts.watchShaders, "watch-shaders", false, "reload shader files when they change")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// applyFlags overrides config values with the flags the user actually set
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Scene.Model = opts.model
	}
	if flags.Changed("texture") {
		cfg.Scene.Texture = opts.texture
	}
	if flags.Changed("mode") {
		cfg.Camera.Mode = opts.mode
	}
	if flags.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if flags.Changed("vsync") {
		cfg.Window.VSync = opts.vsync
	}
	if flags.Changed("watch-shaders") {
		cfg.Shaders.Watch = opts.watchShaders
	}
}

func run(cmd *cobra.Command, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.Debug("config loaded", "path", opts.configPath, "mode", cfg.Camera.Mode, "model", cfg.Scene.Model)

	viewer, err := render.NewViewer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize viewer: %w", err)
	}

	viewer.Run()
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
