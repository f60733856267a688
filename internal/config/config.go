// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	WindowTitle  = "Atom Model"
	ScreenWidth  = 800
	ScreenHeight = 600
	MinWidth     = 400 // Минимальный размер окна
	MinHeight    = 300

	// Терминальный режим считает в символах, а не в пикселях
	MinTermCols = 40
	MinTermRows = 12
	// Символ терминала примерно вдвое выше своей ширины
	TermCellAspect = 2.0

	FieldOfView    = 45.0 // градусы, по вертикали
	NearPlane      = 0.5
	FarPlane       = 50.0
	CameraDistance = 5.0

	NucleusRadius = 0.5
	NucleusSlices = 50
	NucleusStacks = 50

	OrbitRadius    = 1.0
	NumOrbits      = 3
	OrbitSegments  = 100 // точек на одну орбиту
	OrbitLineWidth = 2.0

	RotationStep = 0.6 // градусов вокруг оси X за кадр
	FrameDelay   = 10 * time.Millisecond
	TPS          = int(time.Second / FrameDelay)

	// Альфа-канал задан у цветов, но смешивание никогда не включалось:
	// рисуем непрозрачно.
	BlendingEnabled = false

	DebugAddrEnv = "ATOM_DEBUG_ADDR"
	LogLevelEnv  = "ATOM_LOG_LEVEL"
)

var (
	LightAmbient  = [4]float64{0.2, 0.2, 0.2, 1.0}
	LightDiffuse  = [4]float64{0.8, 0.8, 0.8, 1.0}
	LightSpecular = [4]float64{1.0, 1.0, 1.0, 1.0}
	LightPosition = [4]float64{1.0, 1.0, 1.0, 0.0} // w=0 — направленный свет

	// Глобальный ambient и specular материала — значения fixed-function по умолчанию
	GlobalAmbient    = [4]float64{0.2, 0.2, 0.2, 1.0}
	MaterialSpecular = [4]float64{0.0, 0.0, 0.0, 1.0}

	NucleusColor = [4]float64{0.5, 0.5, 1.0, 0.5} // светло-голубой
	OrbitColor   = [4]float64{0.5, 0.5, 1.0, 0.5}
	TiltAngles   = []float64{-30, 30}

	// Оси поворотов орбит
	OrbitSpreadAxis = [3]float64{1, 1, 0}
	OrbitTiltAxis   = [3]float64{1, 0, 1}

	BackgroundColor = color.RGBA{0, 0, 0, 255}
	HUDTextColor    = color.RGBA{240, 240, 240, 255}
)
