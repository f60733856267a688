package main

import (
	"os"
	"time"

	"go-atom-model/internal/config"
	"go-atom-model/internal/event"
	"go-atom-model/internal/logging"
	"go-atom-model/internal/metrics"
	"go-atom-model/internal/scene"
	"go-atom-model/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// toRLMatrix переводит матрицу mathgl в raylib (обе хранятся по столбцам)
func toRLMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

func vertexColor(c scene.Color) {
	rgba := c.RGBA()
	rl.Color4ub(rgba.R, rgba.G, rgba.B, rgba.A)
}

// drawNucleus рисует сферу в её собственной системе координат;
// цвета вершин уже посчитаны освещением кадра
func drawNucleus(sc *scene.Scene, f scene.Frame) {
	rl.Begin(rl.Triangles)
	for _, idx := range sc.Sphere.Indices {
		p := sc.Sphere.Positions[idx]
		vertexColor(f.Nucleus[idx].Color)
		rl.Vertex3f(float32(p.X()), float32(p.Y()), float32(p.Z()))
	}
	rl.End()
}

// drawOrbits повторяет glPushMatrix/glRotatef/glPopMatrix для каждой орбиты
func drawOrbits(sc *scene.Scene, f scene.Frame) {
	rl.SetLineWidth(float32(f.LineWidth))
	k := 0
	for _, tilt := range sc.TiltAngles {
		for _, o := range scene.Orbits(sc.OrbitRadius, sc.NumOrbits, tilt) {
			clr := f.Orbits[k].Color
			k++

			rl.PushMatrix()
			rl.Rotatef(float32(o.Spread), float32(config.OrbitSpreadAxis[0]), float32(config.OrbitSpreadAxis[1]), float32(config.OrbitSpreadAxis[2]))
			rl.Rotatef(float32(o.Tilt), float32(config.OrbitTiltAxis[0]), float32(config.OrbitTiltAxis[1]), float32(config.OrbitTiltAxis[2]))
			rl.Begin(rl.Lines)
			n := len(o.Points)
			for j := 0; j < n; j++ {
				a, b := o.Points[j], o.Points[(j+1)%n]
				vertexColor(clr)
				rl.Vertex3f(float32(a.X()), float32(a.Y()), float32(a.Z()))
				rl.Vertex3f(float32(b.X()), float32(b.Y()), float32(b.Z()))
			}
			rl.End()
			rl.PopMatrix()
		}
	}
}

// drawFrame загружает проекцию и model-view кадра в стек матриц rlgl
func drawFrame(sc *scene.Scene, f scene.Frame) {
	vp := f.Viewport
	rl.DrawRenderBatchActive()
	rl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))

	rl.MatrixMode(rl.Projection)
	rl.PushMatrix()
	rl.LoadIdentity()
	rl.MultMatrix(toRLMatrix(vp.Projection))

	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.MultMatrix(toRLMatrix(f.ModelView))

	rl.EnableDepthTest()
	drawNucleus(sc, f)
	drawOrbits(sc, f)
	rl.DrawRenderBatchActive()

	rl.MatrixMode(rl.Projection)
	rl.PopMatrix()
	rl.MatrixMode(rl.Modelview)
	rl.LoadIdentity()
	rl.DisableDepthTest()
}

func main() {
	log := logging.New("atom-raylib")

	collector := metrics.NewCollector()
	metrics.ServeDebug(os.Getenv(config.DebugAddrEnv), collector, log.Named("debug"))

	sc := scene.NewScene()
	machine := state.NewMachine(sc, state.Options{
		Width:        config.ScreenWidth,
		Height:       config.ScreenHeight,
		MinWidth:     config.MinWidth,
		MinHeight:    config.MinHeight,
		RotationStep: config.RotationStep,
	}, log)

	dispatcher := event.NewDispatcher()
	machine.Subscribe(dispatcher)
	collector.Subscribe(dispatcher)

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(config.ScreenWidth), int32(config.ScreenHeight), config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetWindowMinSize(config.MinWidth, config.MinHeight)
	rl.EnableBackfaceCulling()
	collector.SetWindow(config.ScreenWidth, config.ScreenHeight)

	machine.OnResize(func(w state.Window) {
		collector.SetWindow(w.Width, w.Height)
		if rl.GetScreenWidth() != w.Width || rl.GetScreenHeight() != w.Height {
			rl.SetWindowSize(w.Width, w.Height)
		}
	})

	log.Info("starting render loop", "width", config.ScreenWidth, "height", config.ScreenHeight)

	// --- Главный цикл ---
	var events []event.Event
	for machine.Running() {
		events = events[:0]
		if rl.WindowShouldClose() {
			events = append(events, event.NewQuit())
		}
		if rl.IsWindowResized() {
			events = append(events, event.NewResize(rl.GetScreenWidth(), rl.GetScreenHeight()))
		}
		dispatcher.Drain(events)
		if !machine.Running() {
			break
		}

		start := time.Now()
		machine.Advance()
		frame := machine.Frame()

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		drawFrame(sc, frame)
		rl.EndDrawing()

		collector.RecordFrame(time.Since(start), machine.Rotation())
		rl.WaitTime(config.FrameDelay.Seconds())
	}
}
