package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/gravity-squares/internal/config"
	"github.com/iburimskiy/gravity-squares/internal/game"
	"github.com/iburimskiy/gravity-squares/internal/sim"
	"github.com/iburimskiy/gravity-squares/internal/synth"
)

var (
	configFile string
	width      int
	height     int
	tps        int
	seed       int64
	mute       bool
	noAudio    bool

	// render
	outFile     string
	seconds     float64
	spawnAt     []float64
	toggleEvery time.Duration
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("squares: ")

	rootCmd := &cobra.Command{
		Use:          "gravity-squares",
		Short:        "particles, gravity wells and tones",
		SilenceUsage: true,
		RunE:         runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "canvas width, overrides the scene")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "canvas height, overrides the scene")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for bounce jitter, overrides the scene")
	rootCmd.Flags().IntVar(&tps, "tps", 0, "simulation frames per second, overrides the scene")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start muted")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "do not open the speaker")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "simulate without a window and write the audio to a wav file",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "squares.wav", "output wav file")
	renderCmd.Flags().Float64Var(&seconds, "seconds", 20, "length of the render")
	renderCmd.Flags().Float64SliceVar(&spawnAt, "at", nil, "spawn point x,y (default: center of the top quarter)")
	renderCmd.Flags().DurationVar(&toggleEvery, "toggle-every", 0, "toggle all squares at this interval")
	renderCmd.Flags().IntVar(&tps, "tps", 0, "simulation frames per second, overrides the scene")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default scene as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the scene file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", configFile, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("tps") {
		cfg.Window.TPS = tps
	}
	if flags.Changed("mute") {
		cfg.Audio.Muted = mute
	}
	return cfg, cfg.Validate()
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g := game.New(cfg, nil)
	if !noAudio {
		player, err := synth.NewPlayer(game.BuildBank(cfg, g.World()), cfg.Audio.Buffer)
		if err != nil {
			// keep the toy running without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer player.Close()
			g.SetAudio(player)
		}
	}
	return game.Run(g)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	world := game.BuildWorld(cfg)
	at := sim.Vec2{X: world.Bounds.W / 2, Y: world.Bounds.H / 4}
	if len(spawnAt) > 0 {
		if len(spawnAt) != 2 {
			return fmt.Errorf("--at wants x,y, got %v", spawnAt)
		}
		at = sim.Vec2{X: spawnAt[0], Y: spawnAt[1]}
	}
	world.Spawn(at)

	bank := game.BuildBank(cfg, world)
	bank.SetMuted(false)

	toggleFrames := int(toggleEvery.Seconds() * float64(cfg.Window.TPS))
	opts := synth.RenderOptions{
		Duration: time.Duration(seconds * float64(time.Second)),
		FPS:      cfg.Window.TPS,
		OnFrame: func(frame int) {
			if toggleFrames > 0 && frame > 0 && frame%toggleFrames == 0 {
				world.ToggleSquares()
			}
		},
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	frames, err := synth.Render(ctx, f, world, bank, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", outFile, err)
	}
	log.Printf("rendered %s: %d frames, %v audio in %v", outFile, frames, opts.Duration, time.Since(start).Round(time.Millisecond))
	return f.Close()
}
