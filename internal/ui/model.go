// Package ui рисует атом в терминале через Bubble Tea.
package ui

import (
	"math"
	"time"

	"go-atom-model/internal/config"
	"go-atom-model/internal/event"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
)

// FrameMsg — тик кадра, приходит каждые config.FrameDelay
type FrameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameDelay, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// WindowFromCells переводит размер терминала в размер окна машины:
// по вертикали символ считается за aspect «пикселей»
func WindowFromCells(cols, rows int) (int, int) {
	return cols, int(math.Round(float64(rows) * config.TermCellAspect))
}

// CellsFromWindow — обратное преобразование для сетки символов
func CellsFromWindow(w state.Window) (int, int) {
	return w.Width, int(float64(w.Height) / config.TermCellAspect)
}

// Model — корневая модель терминального режима.
// Размер окна машины хранится в колонках и полустроках.
type Model struct {
	machine    *state.Machine
	dispatcher *event.Dispatcher
	metrics    *metrics.Collector
	canvas     *Canvas
	log        hclog.Logger

	// Реальный размер терминала; сетка может быть больше из-за минимума
	termCols, termRows int

	colored bool
	view    string
}

// New подписывает машину и метрики на свой диспетчер
func New(machine *state.Machine, collector *metrics.Collector, log hclog.Logger) *Model {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	dispatcher := event.NewDispatcher()
	machine.Subscribe(dispatcher)
	collector.Subscribe(dispatcher)

	cols, rows := CellsFromWindow(machine.Window())
	m := &Model{
		machine:    machine,
		dispatcher: dispatcher,
		metrics:    collector,
		canvas:     NewCanvas(cols, rows, config.TermCellAspect),
		log:        log,
		colored:    true,
		termCols:   cols,
		termRows:   rows,
	}
	collector.SetWindow(cols, rows)
	machine.OnResize(m.recreateSurface)
	return m
}

// recreateSurface подгоняет сетку под новый размер окна
func (m *Model) recreateSurface(w state.Window) {
	cols, rows := CellsFromWindow(w)
	m.canvas.Resize(cols, rows)
	m.metrics.SetWindow(cols, rows)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.dispatcher.Dispatch(event.NewQuit())
			return m, tea.Quit
		case "c":
			m.colored = !m.colored
			m.log.Debug("color output toggled", "colored", m.colored)
		}

	case tea.WindowSizeMsg:
		m.termCols, m.termRows = msg.Width, msg.Height
		w, h := WindowFromCells(msg.Width, msg.Height)
		m.dispatcher.Dispatch(event.NewResize(w, h))

	case FrameMsg:
		if !m.machine.Running() {
			return m, tea.Quit
		}
		m.step()
		return m, frameCmd()
	}
	return m, nil
}

// step продвигает вращение и перерисовывает сетку
func (m *Model) step() {
	start := time.Now()
	m.machine.Advance()
	m.canvas.DrawFrame(m.machine.Frame())
	m.view = m.canvas.Crop(m.termCols, m.termRows, m.colored)
	m.metrics.RecordFrame(time.Since(start), m.machine.Rotation())
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.view
}
