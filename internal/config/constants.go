package config

import "github.com/go-gl/mathgl/mgl32"

// Room dimensions. The room is centred on the origin.
const (
	RoomSizeX = 256.0
	RoomSizeY = 128.0
	RoomSizeZ = 256.0

	RoomWallTileU    = 4.0
	RoomWallTileV    = 2.0
	RoomFloorTileU   = 4.0
	RoomFloorTileV   = 4.0
	RoomCeilingTileU = 4.0
	RoomCeilingTileV = 4.0

	roomSizeMax = RoomSizeX // max(RoomSizeX, RoomSizeY, RoomSizeZ)
)

// RoomHalfExtents returns the half size of the room along each axis.
func RoomHalfExtents() mgl32.Vec3 {
	return mgl32.Vec3{RoomSizeX * 0.5, RoomSizeY * 0.5, RoomSizeZ * 0.5}
}

// Camera projection and mouse sensitivities.
const (
	CameraFovY  = 45.0 // degrees
	CameraZNear = 0.01
	CameraZFar  = 1000.0

	MouseOrbitSpeed      = 0.3
	MouseDollySpeed      = 1.0
	MouseTrackSpeed      = 0.5
	MouseWheelDollySpeed = 0.25

	// WheelDelta is the number of wheel units reported for one notch.
	WheelDelta = 120.0

	DollyMin = CameraZNear
	DollyMax = roomSizeMax * 2.0

	CameraInitialOffset = RoomSizeZ
)

// Point light simulation.
const (
	LightObjectSlices      = 32
	LightObjectStacks      = 32
	LightObjectRadius      = 2.0
	LightObjectLaunchAngle = 45.0 // degrees above the horizon
	LightObjectSpeed       = 80.0

	LightRadiusMin     = 0.0
	LightRadiusMax     = roomSizeMax * 1.25
	LightRadiusInitial = 100.0
	LightRadiusStep    = 1.0

	MaxLightsTier2 = 2
	MaxLightsTier3 = 8
)
