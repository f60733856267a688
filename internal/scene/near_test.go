package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Абсолютные допуски: ApproxEqualThreshold у mathgl сравнивает с нулём по eps²
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func matNear(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}
