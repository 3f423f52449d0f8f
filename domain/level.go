package domain

import "math"

// LevelDefinition is one bracket of the fixed leveling table.
type LevelDefinition struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"minPoints"`
	MaxPoints int    `json:"maxPoints"`
}

// Levels partitions the non-negative integers: ascending, no gaps, no
// overlaps. The top bracket is unbounded.
var Levels = []LevelDefinition{
	{Level: 1, Name: "Beginner", MinPoints: 0, MaxPoints: 99},
	{Level: 2, Name: "Novice", MinPoints: 100, MaxPoints: 249},
	{Level: 3, Name: "Apprentice", MinPoints: 250, MaxPoints: 499},
	{Level: 4, Name: "Adept", MinPoints: 500, MaxPoints: 999},
	{Level: 5, Name: "Expert", MinPoints: 1000, MaxPoints: 1999},
	{Level: 6, Name: "Master", MinPoints: 2000, MaxPoints: math.MaxInt},
}

// LevelFor resolves the bracket containing the given point total. Total for
// all inputs: the unbounded top bracket catches everything, and anything
// that still slips through falls back to level 1.
func LevelFor(points int) LevelDefinition {
	for _, def := range Levels {
		if points >= def.MinPoints && points <= def.MaxPoints {
			return def
		}
	}
	return Levels[0]
}

// LevelProgress describes how far a point total is through its bracket.
type LevelProgress struct {
	Current    int `json:"current"`
	Next       int `json:"next"`
	Percentage int `json:"percentage"`
}

// ProgressFor reports progress through the current bracket. At the top
// bracket there is nothing left to earn, so the result pins to 100%.
func ProgressFor(points int) LevelProgress {
	def := LevelFor(points)

	if def.Level == Levels[len(Levels)-1].Level {
		return LevelProgress{Current: points, Next: points, Percentage: 100}
	}

	inLevel := points - def.MinPoints
	span := def.MaxPoints - def.MinPoints + 1
	percentage := int(math.Round(float64(inLevel) / float64(span) * 100))
	if percentage > 100 {
		percentage = 100
	}

	return LevelProgress{Current: inLevel, Next: span, Percentage: percentage}
}
