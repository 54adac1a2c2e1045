package tiles

import "math/rand"

// Spawner picks lanes for new tiles.
//
// A lane is valid when it differs from the previous spawn's last lane and
// holds no unresolved tile. Lanes are sampled from the valid set directly, so
// a tick with no valid lane simply produces nothing.
type Spawner struct {
	rng          *rand.Rand
	doubleChance float64
	lastLane     int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, doubleChance float64) *Spawner {
	return &Spawner{
		rng:          rng,
		doubleChance: doubleChance,
		lastLane:     NoLane,
	}
}

// Reset forgets the previous spawn lane.
func (sp *Spawner) Reset() {
	sp.lastLane = NoLane
}

// LastLane returns the last lane chosen, or NoLane.
func (sp *Spawner) LastLane() int {
	return sp.lastLane
}

// Choose returns the lanes for one spawn tick: none, one, or (with
// doubleChance probability) two distinct lanes.
func (sp *Spawner) Choose(occupied [LaneCount]bool) []int {
	valid := validLanes(occupied, sp.lastLane)
	if len(valid) == 0 {
		return nil
	}

	first := valid[sp.rng.Intn(len(valid))]
	lanes := []int{first}

	if sp.rng.Float64() < sp.doubleChance {
		rest := make([]int, 0, len(valid)-1)
		for _, lane := range valid {
			if lane != first {
				rest = append(rest, lane)
			}
		}
		if len(rest) > 0 {
			lanes = append(lanes, rest[sp.rng.Intn(len(rest))])
		}
	}

	sp.lastLane = lanes[len(lanes)-1]
	return lanes
}

// validLanes returns {0..LaneCount-1} minus occupied lanes and lastLane, in order.
func validLanes(occupied [LaneCount]bool, lastLane int) []int {
	lanes := make([]int, 0, LaneCount)
	for lane := 0; lane < LaneCount; lane++ {
		if occupied[lane] || lane == lastLane {
			continue
		}
		lanes = append(lanes, lane)
	}
	return lanes
}
