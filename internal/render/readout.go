package render

import (
	"fmt"

	"gridcast/pkg/geom"
)

// Readouts returns the status lines printed under the minimap: cursor and
// player positions in both coordinate spaces, the heading and the frame rate.
func Readouts(m Minimap, mouse geom.Vec2, facing geom.Vec2, fps int) []string {
	mouseWorld := m.SceneToWorld(mouse)
	player := m.Camera
	scene := m.WorldToScene(player)
	angle := facing.Angle()
	return []string{
		fmt.Sprintf("mouse scene %d - %d", int(mouse.X), int(mouse.Y)),
		fmt.Sprintf("mouse world %d - %d", int(mouseWorld.X), int(mouseWorld.Y)),
		fmt.Sprintf("player world x:%.2f y:%.2f", player.X, player.Y),
		fmt.Sprintf("player scene x:%.2f y:%.2f", scene.X, scene.Y),
		fmt.Sprintf("player rot angle rad:%.2f deg:%.2f", angle, geom.Degrees(angle)),
		fmt.Sprintf("fps %d", fps),
	}
}

// ReadoutOrigin returns the baseline of the first readout line; each further
// line sits ReadoutSpacing pixels lower.
func ReadoutOrigin(m Minimap) geom.Vec2 {
	return geom.V(m.Offset.X, m.Offset.Y+m.Size.Y+ReadoutSpacing)
}

// ReadoutSpacing is the distance between readout baselines.
const ReadoutSpacing = 15
