// internal/state/state.go
package state

import (
	"time"

	"go-atom-model/internal/event"
	"go-atom-model/internal/scene"
	"go-atom-model/internal/utils"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"
)

// Phase — фаза цикла отрисовки
type Phase int

const (
	Running Phase = iota
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Window — размер окна после применения минимума
type Window struct {
	Width  int
	Height int
}

// Options задаёт начальный размер, минимум и шаг вращения
type Options struct {
	Width, Height       int
	MinWidth, MinHeight int
	RotationStep        float64
}

// Machine владеет всем изменяемым состоянием цикла: фазой, размером окна
// и накопленным углом поворота. Вращение хранится явно и каждый кадр
// применяется к заново построенной model-view матрице; ресайз его обнуляет.
type Machine struct {
	phase     Phase
	window    Window
	minWidth  int
	minHeight int
	viewport  scene.Viewport
	rotation  float64
	step      float64
	frames    uint64

	scene    *scene.Scene
	onResize []func(Window)
	onQuit   []func()

	log       hclog.Logger
	resizeLog rate.Sometimes
}

// NewMachine создаёт машину в фазе Running
func NewMachine(sc *scene.Scene, opts Options, log hclog.Logger) *Machine {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Machine{
		phase:     Running,
		window:    Window{Width: opts.Width, Height: opts.Height},
		minWidth:  opts.MinWidth,
		minHeight: opts.MinHeight,
		viewport:  scene.Resize(opts.Width, opts.Height),
		step:      opts.RotationStep,
		scene:     sc,
		log:       log,
		resizeLog: rate.Sometimes{Interval: time.Second},
	}
}

// Subscribe подписывает машину на события выхода и ресайза
func (m *Machine) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.Quit, m)
	d.Subscribe(event.Resize, m)
}

// OnResize регистрирует обработчик пересоздания поверхности.
// Он получает уже ограниченный снизу размер.
func (m *Machine) OnResize(fn func(Window)) {
	m.onResize = append(m.onResize, fn)
}

// OnQuit регистрирует обработчик освобождения контекста
func (m *Machine) OnQuit(fn func()) {
	m.onQuit = append(m.onQuit, fn)
}

// OnEvent реализует event.Listener
func (m *Machine) OnEvent(e event.Event) {
	if m.phase == Terminated {
		return
	}
	switch e.Type {
	case event.Quit:
		m.terminate()
	case event.Resize:
		data, ok := e.Data.(event.ResizeData)
		if !ok {
			m.log.Warn("resize event without size", "data", e.Data)
			return
		}
		m.resize(data.Width, data.Height)
	}
}

func (m *Machine) terminate() {
	m.phase = Terminated
	m.log.Info("render loop terminated", "frames", m.frames)
	for _, fn := range m.onQuit {
		fn()
	}
}

func (m *Machine) resize(width, height int) {
	w, h := scene.ClampWindow(width, height, m.minWidth, m.minHeight)
	m.window = Window{Width: w, Height: h}
	m.viewport = scene.Resize(w, h)
	// model-view строится заново: накопленный поворот сбрасывается
	m.rotation = 0
	m.resizeLog.Do(func() {
		m.log.Debug("window resized", "requested_width", width, "requested_height", height, "width", w, "height", h)
	})
	for _, fn := range m.onResize {
		fn(m.window)
	}
}

// Advance добавляет шаг вращения. После выхода ничего не делает.
func (m *Machine) Advance() {
	if m.phase != Running {
		return
	}
	m.rotation = utils.NormalizeDegrees(m.rotation + m.step)
	m.frames++
}

// Frame собирает геометрию текущего кадра
func (m *Machine) Frame() scene.Frame {
	return m.scene.Build(m.viewport, m.rotation)
}

func (m *Machine) Phase() Phase { return m.phase }
func (m *Machine) Running() bool { return m.phase == Running }
func (m *Machine) Window() Window { return m.window }
func (m *Machine) Viewport() scene.Viewport { return m.viewport }
func (m *Machine) Rotation() float64 { return m.rotation }
func (m *Machine) Frames() uint64 { return m.frames }
