package scene

import (
	"go-atom-model/internal/config"
	"go-atom-model/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport — область окна и проекция, пересчитываемые при каждом ресайзе
type Viewport struct {
	X, Y          int
	Width, Height int
	Projection    mgl64.Mat4
	// View — базовая model-view: только перенос камеры
	View mgl64.Mat4
}

// CameraView — перенос камеры назад по оси взгляда
func CameraView() mgl64.Mat4 {
	return mgl64.Translate3D(0, 0, -config.CameraDistance)
}

// Perspective строит проекцию с параметрами сцены для заданного соотношения сторон
func Perspective(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(utils.Radians(config.FieldOfView), aspect, config.NearPlane, config.FarPlane)
}

// Resize пересчитывает viewport и проекцию с нуля.
// Высота 0 заменяется на 1, чтобы не делить на ноль.
func Resize(width, height int) Viewport {
	if height == 0 {
		height = 1
	}
	return Viewport{
		X:          0,
		Y:          0,
		Width:      width,
		Height:     height,
		Projection: Perspective(float64(width) / float64(height)),
		View:       CameraView(),
	}
}

// ClampWindow применяет минимальный размер окна
func ClampWindow(width, height, minWidth, minHeight int) (int, int) {
	return utils.MaxInt(width, minWidth), utils.MaxInt(height, minHeight)
}

// Aspect возвращает соотношение сторон, по которому построена проекция
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// ModelView — базовый вид, повёрнутый на накопленный угол вокруг X
func (v Viewport) ModelView(rotation float64) mgl64.Mat4 {
	return v.View.Mul4(mgl64.HomogRotate3DX(utils.Radians(rotation)))
}

// Project переводит точку из координат глаза в координаты окна
// (начало в левом верхнем углу). depth лежит в [0, 1] для точек внутри
// пирамиды видимости. ok=false для точек позади камеры.
func (v Viewport) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := v.Projection.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, 0, false
	}
	ndcX, ndcY, ndcZ := clip.X()/w, clip.Y()/w, clip.Z()/w

	x = float64(v.X) + (ndcX+1)/2*float64(v.Width)
	yUp := float64(v.Y) + (ndcY+1)/2*float64(v.Height)
	y = float64(v.Height) - yUp
	depth = (ndcZ + 1) / 2
	return x, y, depth, true
}
