package core

import "math"

// Mat3 is a row-major 3x3 matrix
type Mat3 struct {
	M [3][3]float64
}

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// Mul returns the matrix product a·b
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += a.M[row][k] * b.M[k][col]
			}
			r.M[row][col] = sum
		}
	}
	return r
}

// MulVec returns a·v
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}

// Transpose returns aᵀ
func (a Mat3) Transpose() Mat3 {
	var r Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			r.M[row][col] = a.M[col][row]
		}
	}
	return r
}

// Determinant returns det(a)
func (a Mat3) Determinant() float64 {
	m := a.M
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns a⁻¹ using the adjugate. ok is false for a singular matrix.
func (a Mat3) Inverse() (inv Mat3, ok bool) {
	det := a.Determinant()
	if math.Abs(det) < 1e-12 {
		return Mat3{}, false
	}
	m := a.M
	invDet := 1.0 / det

	inv.M[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	inv.M[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	inv.M[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	inv.M[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	inv.M[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	inv.M[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	inv.M[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	inv.M[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	inv.M[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	return inv, true
}

// Transform is an affine map p -> Linear·p + Offset
type Transform struct {
	Linear Mat3
	Offset Vec3
}

// IdentityTransform returns the transform that leaves every point in place
func IdentityTransform() Transform {
	return Transform{Linear: Identity3()}
}

// ScaleTransform scales each axis independently
func ScaleTransform(sx, sy, sz float64) Transform {
	return Transform{Linear: Mat3{M: [3][3]float64{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, sz},
	}}}
}

// RotateXTransform rotates by theta radians about the X axis
func RotateXTransform(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{Linear: Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}}}
}

// RotateYTransform rotates by theta radians about the Y axis
func RotateYTransform(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{Linear: Mat3{M: [3][3]float64{
		{cos, 0, sin},
		{0, 1, 0},
		{-sin, 0, cos},
	}}}
}

// RotateZTransform rotates by theta radians about the Z axis
func RotateZTransform(theta float64) Transform {
	sin, cos := math.Sincos(theta)
	return Transform{Linear: Mat3{M: [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}}
}

// TranslateTransform moves every point by (dx, dy, dz)
func TranslateTransform(dx, dy, dz float64) Transform {
	return Transform{Linear: Identity3(), Offset: NewVec3(dx, dy, dz)}
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Linear: next.Linear.Mul(t.Linear),
		Offset: next.Linear.MulVec(t.Offset).Add(next.Offset),
	}
}

// Inverse returns t⁻¹. ok is false when the linear part is singular.
func (t Transform) Inverse() (Transform, bool) {
	inv, ok := t.Linear.Inverse()
	if !ok {
		return Transform{}, false
	}
	return Transform{Linear: inv, Offset: inv.MulVec(t.Offset).Negate()}, true
}

// Point maps a position
func (t Transform) Point(p Vec3) Vec3 {
	return t.Linear.MulVec(p).Add(t.Offset)
}

// Vector maps a direction; translation does not apply
func (t Transform) Vector(v Vec3) Vec3 {
	return t.Linear.MulVec(v)
}

// Ray maps both origin and direction, keeping the ray time
func (t Transform) Ray(r Ray) Ray {
	return NewRayAtTime(t.Point(r.Origin), t.Vector(r.Direction), r.Time)
}
