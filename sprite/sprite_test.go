package sprite

import (
	"testing"

	"github.com/lixenwraith/firemen/constants"
)

func TestPoseTableSizes(t *testing.T) {
	tests := []struct {
		entity Entity
		count  int
	}{
		{EntityDummy, 19},
		{EntityFiremen, 3},
		{EntityCrash, 3},
		{EntityLife, constants.InitialLives},
	}
	for _, tt := range tests {
		t.Run(tt.entity.String(), func(t *testing.T) {
			s := Of(tt.entity)
			if s == nil {
				t.Fatal("Of returned nil")
			}
			if s.Count() != tt.count {
				t.Errorf("Count = %d, want %d", s.Count(), tt.count)
			}
			if s.Last() != tt.count-1 {
				t.Errorf("Last = %d, want %d", s.Last(), tt.count-1)
			}
		})
	}
	if Of(Entity(99)) != nil {
		t.Error("Of(unknown) should be nil")
	}
}

func TestPosesFitOnScreen(t *testing.T) {
	for e := EntityDummy; e < entityCount; e++ {
		s := Of(e)
		for i, p := range s.Poses {
			if p.X < 0 || p.Y < 0 || p.X+s.Width > constants.LCDWidth || p.Y+s.Height > constants.LCDHeight {
				t.Errorf("%v pose %d at (%d,%d) leaves the %dx%d screen", e, i, p.X, p.Y, constants.LCDWidth, constants.LCDHeight)
			}
		}
	}
}

// TestCheckpointZoneMatchesCrashZone: the zone a checkpoint demands is the third it sits in
func TestCheckpointZoneMatchesCrashZone(t *testing.T) {
	checkpoints := 0
	for pose := 0; pose < Dummy.Count(); pose++ {
		zone, ok := CheckpointZone(pose)
		if !ok {
			continue
		}
		checkpoints++
		if uint8(zone) != CrashZone(pose) {
			t.Errorf("pose %d: checkpoint zone %d, crash zone %d", pose, zone, CrashZone(pose))
		}
		// The required firemen pose sits under the same third as the crash mark
		if Firemen.Poses[zone].X != Crash.Poses[zone].X {
			t.Errorf("zone %d: firemen x %d != crash x %d", zone, Firemen.Poses[zone].X, Crash.Poses[zone].X)
		}
	}
	if checkpoints != 3 {
		t.Errorf("found %d checkpoints, want 3", checkpoints)
	}
}

func TestCrashZone(t *testing.T) {
	tests := []struct {
		pose int
		want uint8
	}{
		{0, 0}, {4, 0}, {9, 0},
		{10, 1}, {15, 1},
		{16, 2}, {18, 2},
	}
	for _, tt := range tests {
		if got := CrashZone(tt.pose); got != tt.want {
			t.Errorf("CrashZone(%d) = %d, want %d", tt.pose, got, tt.want)
		}
	}
}
