package ui

import (
	"strings"
	"testing"

	"go-atom-model/internal/config"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/scene"
	"go-atom-model/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	w, h := WindowFromCells(80, 24)
	minW, minH := WindowFromCells(config.MinTermCols, config.MinTermRows)
	machine := state.NewMachine(scene.NewScene(), state.Options{
		Width: w, Height: h, MinWidth: minW, MinHeight: minH, RotationStep: config.RotationStep,
	}, nil)
	return New(machine, metrics.NewCollector(), nil)
}

func TestCellConversion(t *testing.T) {
	w, h := WindowFromCells(80, 24)
	if w != 80 || h != 48 {
		t.Fatalf("WindowFromCells = %dx%d, want 80x48", w, h)
	}
	if cols, rows := CellsFromWindow(state.Window{Width: w, Height: h}); cols != 80 || rows != 24 {
		t.Errorf("CellsFromWindow = %dx%d, want 80x24", cols, rows)
	}
}

func TestWindowSizeResizesCanvas(t *testing.T) {
	tests := []struct {
		name               string
		cols, rows         int
		wantCols, wantRows int
	}{
		{"larger terminal", 120, 40, 120, 40},
		{"below minimum", 20, 5, config.MinTermCols, config.MinTermRows},
		{"zero height", 100, 0, 100, config.MinTermRows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.Update(tea.WindowSizeMsg{Width: tt.cols, Height: tt.rows})
			if cols, rows := m.canvas.Size(); cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("canvas = %dx%d, want %dx%d", cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestFrameAdvancesRotation(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		_, cmd := m.Update(FrameMsg{})
		if cmd == nil {
			t.Fatalf("frame %d did not schedule the next tick", i)
		}
	}
	if m.machine.Frames() != 3 {
		t.Errorf("frames = %d, want 3", m.machine.Frames())
	}
	if m.View() == "" {
		t.Error("empty view after drawing")
	}
}

func TestQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(t)
			_, cmd := m.Update(key)
			if cmd == nil {
				t.Fatal("no command returned")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quit key did not stop the program")
			}
			if m.machine.Phase() != state.Terminated {
				t.Errorf("phase = %v, want Terminated", m.machine.Phase())
			}

			_, cmd = m.Update(FrameMsg{})
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("frame after quit kept the loop alive")
			}
			if m.machine.Frames() != 0 {
				t.Error("rotation advanced after quit")
			}
		})
	}
}

func TestViewFitsSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m.Update(FrameMsg{})

	if cols, rows := m.canvas.Size(); cols != config.MinTermCols || rows != config.MinTermRows {
		t.Fatalf("canvas = %dx%d, want the minimum %dx%d", cols, rows, config.MinTermCols, config.MinTermRows)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d rows, want 5", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 20 {
			t.Errorf("row %d has %d cells, want 20", i, n)
		}
	}
	if strings.TrimSpace(m.View()) == "" {
		t.Error("cropped view lost the nucleus")
	}
}
