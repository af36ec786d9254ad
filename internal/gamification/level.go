// Package gamification holds the pure progress rules: levels, streaks,
// badges and quiz scoring. Nothing here touches storage.
package gamification

// MaxLevel is the highest reachable level
const MaxLevel = 10

// levelFloors[i] is the minimum XP for level i+1, up to level 6
var levelFloors = []int{0, 50, 150, 300, 500, 750}

const (
	extendedFloor = 1000 // level 6 tier continues from here
	extendedStep  = 300  // XP per level past extendedFloor
)

// Level returns the level for a cumulative XP total.
func Level(xp int) int {
	if xp >= extendedFloor {
		level := 6 + (xp-extendedFloor)/extendedStep
		if level > MaxLevel {
			return MaxLevel
		}
		return level
	}
	level := 1
	for i, floor := range levelFloors {
		if xp >= floor {
			level = i + 1
		}
	}
	return level
}
