package maze

import "math/rand/v2"

// Theme is the cosmetic look of a round.
type Theme struct {
	Name    string
	Player  string // emoji for the player's vehicle
	Goal    string
	Palette string // key into the UI color palette
}

// Themes is the fixed list a round's theme is drawn from.
var Themes = []Theme{
	{Name: "Race Car", Player: "🏎️", Goal: "🏁", Palette: "red"},
	{Name: "Rocket", Player: "🚀", Goal: "🌙", Palette: "purple"},
	{Name: "Submarine", Player: "🐠", Goal: "🐚", Palette: "blue"},
	{Name: "Tractor", Player: "🚜", Goal: "🌽", Palette: "green"},
	{Name: "Bicycle", Player: "🚲", Goal: "🏠", Palette: "yellow"},
}

// PickTheme draws a theme uniformly at random.
func PickTheme(rng *rand.Rand) Theme {
	return Themes[rng.IntN(len(Themes))]
}
