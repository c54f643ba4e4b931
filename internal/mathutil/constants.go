package mathutil

var (
	// DefaultCamera tilts the projected 3D frame so that no face of the cube
	// is seen edge-on: Rx(-15°) @ Ry(12°).
	DefaultCamera = Mat3Mul(RotX(Deg2Rad(-15)), RotY(Deg2Rad(12)))

	// FrontCamera looks straight down the Z axis.
	FrontCamera = Mat3Identity()
)
