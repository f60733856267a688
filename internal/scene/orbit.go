package scene

import (
	"math"

	"go-atom-model/internal/config"
	"go-atom-model/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Orbit — одна электронная орбита в собственной системе координат.
// Замыкание контура неявное: последняя точка не дублирует первую.
type Orbit struct {
	Spread float64    // поворот вокруг оси разнесения, градусы
	Tilt   float64    // наклон вокруг оси наклона, градусы
	Frame  mgl64.Mat4 // локальная система орбиты относительно model-view
	Points []mgl64.Vec3
}

// CirclePoints возвращает n равномерных точек окружности в плоскости XY
func CirclePoints(radius float64, n int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, n)
	for j := 0; j < n; j++ {
		theta := 2.0 * math.Pi * float64(j) / float64(n)
		points[j] = mgl64.Vec3{radius * math.Cos(theta), radius * math.Sin(theta), 0}
	}
	return points
}

// Rotate — аналог glRotatef: угол в градусах, ось нормируется
func Rotate(angle float64, axis [3]float64) mgl64.Mat4 {
	a := mgl64.Vec3{axis[0], axis[1], axis[2]}
	if a.Len() == 0 {
		return mgl64.Ident4()
	}
	return mgl64.HomogRotate3D(utils.Radians(angle), a.Normalize())
}

// OrbitFrame — система координат орбиты index из count:
// сначала разнесение на index*360/count, затем наклон.
func OrbitFrame(index, count int, tilt float64) mgl64.Mat4 {
	spread := float64(index) * (360 / float64(count))
	return Rotate(spread, config.OrbitSpreadAxis).Mul4(Rotate(tilt, config.OrbitTiltAxis))
}

// Orbits строит count орбит одного наклона
func Orbits(radius float64, count int, tilt float64) []Orbit {
	if count <= 0 {
		return nil
	}
	points := CirclePoints(radius, config.OrbitSegments)
	orbits := make([]Orbit, count)
	for i := range orbits {
		orbits[i] = Orbit{
			Spread: float64(i) * (360 / float64(count)),
			Tilt:   tilt,
			Frame:  OrbitFrame(i, count, tilt),
			Points: points,
		}
	}
	return orbits
}
