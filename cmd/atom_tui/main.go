// cmd/atom_tui/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"go-atom-model/internal/config"
	"go-atom-model/internal/logging"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/scene"
	"go-atom-model/internal/state"
	"go-atom-model/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
)

const logFile = "atom-tui.log"

// openLog — экран занят программой, поэтому лог пишем в файл и только по запросу
func openLog(level string) (io.WriteCloser, error) {
	if level == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logFile, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func main() {
	level := os.Getenv(config.LogLevelEnv)
	out, err := openLog(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.NewWithOutput("atom-tui", level, out)
	if err := run(log); err != nil {
		log.Error("render loop failed", "error", err)
		out.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out.Close()
}

func run(log hclog.Logger) error {
	collector := metrics.NewCollector()
	metrics.ServeDebug(os.Getenv(config.DebugAddrEnv), collector, log.Named("debug"))

	w, h := ui.WindowFromCells(config.MinTermCols*2, config.MinTermRows*2)
	minW, minH := ui.WindowFromCells(config.MinTermCols, config.MinTermRows)
	machine := state.NewMachine(scene.NewScene(), state.Options{
		Width:        w,
		Height:       h,
		MinWidth:     minW,
		MinHeight:    minH,
		RotationStep: config.RotationStep,
	}, log)

	p := tea.NewProgram(ui.New(machine, collector, log), tea.WithAltScreen())
	log.Info("starting render loop", "width", w, "height", h)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
