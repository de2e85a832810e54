package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/chaseview/config"
	"github.com/automoto/chaseview/diag"
	"github.com/automoto/chaseview/fonts"
	"github.com/automoto/chaseview/record"
	"github.com/automoto/chaseview/scenes"
	"github.com/automoto/chaseview/systems"
	"github.com/automoto/chaseview/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	fonts.LoadFont(fonts.Hud, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12)
	fonts.LoadFontWithSize(fonts.Toast, goregular.TTF, 24)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	replayPath := flag.String("replay", "", "Review a recorded drive instead of driving live")
	recordPath := flag.String("record", "", "Capture the drive to a CSV file")
	coursePath := flag.String("course", "", "Course TMX file (default: embedded figure eight)")
	noSound := flag.Bool("nosound", false, "Start with the engine sound muted")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	verbose := flag.Bool("verbose", false, "Log diagnostics at debug level")
	flag.Parse()

	diag.Setup(os.Stderr, *verbose)

	ebiten.SetWindowTitle("chaseview")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings := factory.DefaultSettings()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		settings = systems.ApplySavedSettings(settings, saved)
	}
	if *noSound {
		settings.Sound = false
	}
	if *fullscreen {
		settings.Fullscreen = true
	}
	ebiten.SetFullscreen(settings.Fullscreen)

	var (
		scene    Scene
		recorder *record.Recorder
	)
	if *replayPath != "" {
		if *recordPath != "" {
			log.Printf("Warning: -record is ignored while replaying")
		}
		player, err := record.Open(*replayPath)
		if err != nil {
			log.Fatalf("Failed to open recording: %v", err)
		}
		diag.Logger.Info().Str("path", *replayPath).Float64("seconds", player.Duration()).Msg("replaying")
		scene = scenes.NewReplayScene(player, *coursePath, settings)
	} else {
		if *recordPath != "" {
			r, err := record.Create(*recordPath)
			if err != nil {
				log.Fatalf("Failed to create recording: %v", err)
			}
			diag.Logger.Info().Str("path", *recordPath).Msg("recording")
			recorder = r
		}
		scene = scenes.NewViewerScene(recorder, *coursePath, settings)
	}

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
	if recorder != nil {
		if err := recorder.Close(); err != nil {
			log.Printf("Warning: Could not finish recording: %v", err)
		}
	}
}
