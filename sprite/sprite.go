// Package sprite holds the fixed pose tables of every drawable entity
// Coordinates are LCD pixels of the original 320x240 board
package sprite

import "github.com/lixenwraith/firemen/constants"

// Asset identifies a bitmap drawn at a pose
type Asset uint8

const (
	AssetFiremen Asset = iota
	AssetCrash
	AssetDummy0
	AssetDummy90
	AssetDummy180
	AssetDummy270
	AssetLife
	assetCount
)

var assetNames = [assetCount]string{
	AssetFiremen:  "Firemen",
	AssetCrash:    "Crash",
	AssetDummy0:   "Dummy0",
	AssetDummy90:  "Dummy90",
	AssetDummy180: "Dummy180",
	AssetDummy270: "Dummy270",
	AssetLife:     "Life",
}

func (a Asset) String() string {
	if a < assetCount {
		return assetNames[a]
	}
	return "Unknown"
}

// Pose is a precomputed screen position plus the asset drawn there
type Pose struct {
	X, Y  int
	Asset Asset
}

// Sprite is a fixed-size bitmap with the list of poses it can occupy
type Sprite struct {
	Width, Height int
	Poses         []Pose
}

// Count returns the number of poses
func (s *Sprite) Count() int {
	return len(s.Poses)
}

// Last returns the index of the final pose
func (s *Sprite) Last() int {
	return len(s.Poses) - 1
}

// Entity names a sprite table
type Entity uint8

const (
	EntityDummy Entity = iota
	EntityFiremen
	EntityCrash
	EntityLife
	entityCount
)

var entityNames = [entityCount]string{
	EntityDummy:   "Dummy",
	EntityFiremen: "Firemen",
	EntityCrash:   "Crash",
	EntityLife:    "Life",
}

func (e Entity) String() string {
	if e < entityCount {
		return entityNames[e]
	}
	return "Unknown"
}

// Firemen: 64x32, three lateral rescue positions
var Firemen = &Sprite{
	Width: 64, Height: 32,
	Poses: []Pose{
		{32, 176, AssetFiremen},
		{128, 176, AssetFiremen},
		{224, 176, AssetFiremen},
	},
}

// Dummy: 32x32, a bouncing fall trajectory cycling four rotations
var Dummy = &Sprite{
	Width: 32, Height: 32,
	Poses: []Pose{
		{0, 64, AssetDummy0},
		{16, 96, AssetDummy90},
		{32, 128, AssetDummy180},
		{48, 160, AssetDummy270},
		{64, 128, AssetDummy0},
		{80, 96, AssetDummy90},
		{96, 64, AssetDummy180},
		{112, 96, AssetDummy270},
		{128, 128, AssetDummy0},
		{144, 160, AssetDummy90},
		{160, 128, AssetDummy180},
		{176, 96, AssetDummy270},
		{192, 64, AssetDummy0},
		{208, 96, AssetDummy90},
		{224, 128, AssetDummy180},
		{240, 160, AssetDummy270},
		{256, 128, AssetDummy0},
		{272, 96, AssetDummy90},
		{288, 64, AssetDummy180},
	},
}

// Crash: 64x32 marks on the ground, one per screen third
var Crash = &Sprite{
	Width: 64, Height: 32,
	Poses: []Pose{
		{32, 208, AssetCrash},
		{128, 208, AssetCrash},
		{224, 208, AssetCrash},
	},
}

// Life: 16x16 heart icons, one per remaining life
var Life = &Sprite{
	Width: 16, Height: 16,
	Poses: []Pose{
		{8, 8, AssetLife},
		{24, 8, AssetLife},
		{40, 8, AssetLife},
	},
}

// Of returns the sprite table of an entity, nil for an unknown entity
func Of(e Entity) *Sprite {
	switch e {
	case EntityDummy:
		return Dummy
	case EntityFiremen:
		return Firemen
	case EntityCrash:
		return Crash
	case EntityLife:
		return Life
	default:
		return nil
	}
}

// CheckpointZone reports the firemen position required at a dummy pose
// ok is false for poses that are not danger checkpoints
func CheckpointZone(pose int) (zone int, ok bool) {
	for i, p := range constants.CheckpointPoses {
		if p == pose {
			return i, true
		}
	}
	return 0, false
}

// CrashZone returns the screen third (0, 1 or 2) a dummy pose falls in
func CrashZone(pose int) uint8 {
	var zone uint8
	if pose >= constants.CheckpointPoses[1] {
		zone++
	}
	if pose >= constants.CheckpointPoses[2] {
		zone++
	}
	return zone
}
