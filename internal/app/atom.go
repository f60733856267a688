// internal/app/atom.go
package app

import (
	"time"

	"go-atom-model/internal/config"
	"go-atom-model/internal/event"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/state"
	"go-atom-model/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hashicorp/go-hclog"
)

// AtomApp связывает ebiten.Game с машиной состояний цикла.
// Update разбирает накопленные события и двигает вращение,
// Draw строит и рисует кадр, Layout превращает изменение окна в событие.
type AtomApp struct {
	machine    *state.Machine
	dispatcher *event.Dispatcher
	renderer   *render.AtomRenderer
	metrics    *metrics.Collector
	log        hclog.Logger

	pending       []event.Event
	outsideWidth  int
	outsideHeight int
	showHUD       bool

	setWindowSize func(width, height int)
}

// NewAtomApp подписывает машину и метрики на общий диспетчер
func NewAtomApp(machine *state.Machine, renderer *render.AtomRenderer, collector *metrics.Collector, log hclog.Logger) *AtomApp {
	dispatcher := event.NewDispatcher()
	machine.Subscribe(dispatcher)
	collector.Subscribe(dispatcher)

	w := machine.Window()
	a := &AtomApp{
		machine:       machine,
		dispatcher:    dispatcher,
		renderer:      renderer,
		metrics:       collector,
		log:           log,
		outsideWidth:  w.Width,
		outsideHeight: w.Height,
		setWindowSize: ebiten.SetWindowSize,
	}
	collector.SetWindow(w.Width, w.Height)
	machine.OnResize(a.recreateSurface)
	return a
}

// recreateSurface возвращает окно к минимальному размеру, если
// пользователь сжал его сильнее
func (a *AtomApp) recreateSurface(w state.Window) {
	a.metrics.SetWindow(w.Width, w.Height)
	if w.Width != a.outsideWidth || w.Height != a.outsideHeight {
		a.setWindowSize(w.Width, w.Height)
		a.outsideWidth, a.outsideHeight = w.Width, w.Height
	}
}

// Post ставит событие в очередь до следующего Update
func (a *AtomApp) Post(e event.Event) {
	a.pending = append(a.pending, e)
}

func (a *AtomApp) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Post(event.NewQuit())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.showHUD = !a.showHUD
		a.log.Debug("debug overlay toggled", "visible", a.showHUD)
	}
	return a.step()
}

// step разбирает очередь событий и продвигает анимацию на кадр
func (a *AtomApp) step() error {
	a.dispatcher.Drain(a.pending)
	a.pending = a.pending[:0]

	if !a.machine.Running() {
		return ebiten.Termination
	}
	a.machine.Advance()
	return nil
}

func (a *AtomApp) Draw(screen *ebiten.Image) {
	start := time.Now()
	a.renderer.Draw(screen, a.machine.Frame())
	if a.showHUD {
		w := a.machine.Window()
		a.renderer.DrawHUD(screen, render.HUD{
			Rotation: a.machine.Rotation(),
			Width:    w.Width,
			Height:   w.Height,
			TPS:      ebiten.ActualTPS(),
			Frames:   a.machine.Frames(),
		})
	}
	a.metrics.RecordFrame(time.Since(start), a.machine.Rotation())
}

func (a *AtomApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.outsideWidth || outsideHeight != a.outsideHeight {
		a.outsideWidth, a.outsideHeight = outsideWidth, outsideHeight
		a.Post(event.NewResize(outsideWidth, outsideHeight))
	}
	w := a.machine.Window()
	return w.Width, w.Height
}

// Configure выставляет параметры окна до запуска RunGame
func Configure(w state.Window) {
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWidth, config.MinHeight, -1, -1)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)
}
