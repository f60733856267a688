// cmd/atom/main.go
package main

import (
	"fmt"
	"os"

	"go-atom-model/internal/app"
	"go-atom-model/internal/config"
	"go-atom-model/internal/logging"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/scene"
	"go-atom-model/internal/state"
	"go-atom-model/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/go-hclog"
)

func main() {
	log := logging.New("atom")
	if err := run(log); err != nil {
		log.Error("render loop failed", "error", err)
		os.Exit(1)
	}
}

func run(log hclog.Logger) error {
	collector := metrics.NewCollector()
	metrics.ServeDebug(os.Getenv(config.DebugAddrEnv), collector, log.Named("debug"))

	machine := state.NewMachine(scene.NewScene(), state.Options{
		Width:        config.ScreenWidth,
		Height:       config.ScreenHeight,
		MinWidth:     config.MinWidth,
		MinHeight:    config.MinHeight,
		RotationStep: config.RotationStep,
	}, log)

	renderer := render.NewAtomRenderer(render.Colors{
		Background: config.BackgroundColor,
		HUDText:    config.HUDTextColor,
	})
	atom := app.NewAtomApp(machine, renderer, collector, log)

	app.Configure(machine.Window())
	log.Info("starting render loop", "width", config.ScreenWidth, "height", config.ScreenHeight, "tps", config.TPS)
	if err := ebiten.RunGame(atom); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
