package logic

// Color is a CSS hex color carried in view models. The front end applies
// it verbatim, so values here must stay byte-for-byte stable.
type Color string

const (
	colorWinrateAwful  Color = "#ff9999"
	colorWinrateBad    Color = "#ffcc99"
	colorWinrateEven   Color = "#ffff99"
	colorWinrateGood   Color = "#99ff99"
	colorWinrateGreat  Color = "#99ffff"
	colorWinrateInsane Color = "#cc99ff"

	colorGold   Color = "#cbb765"
	colorSilver Color = "#99b0cc"
	colorBronze Color = "#a86243"
	colorInk    Color = "#121009"

	colorDayLow     Color = "#f56565"
	colorNeutralBg  Color = "#2c3f52"
	colorNeutralFg  Color = "#ffffff"
	colorMispredict Color = "#f1ac9d"
)

// ColorPair is a background/foreground pair. An empty field means the
// default page color applies.
type ColorPair struct {
	Background Color `json:"background,omitempty"`
	Foreground Color `json:"foreground,omitempty"`
}

// WinrateColor maps a winrate to its bucket color. Values above 1 are
// treated as percentages and divided by 100, so 55 and 0.55 land in the
// same bucket.
func WinrateColor(winrate float64) Color {
	if winrate > 1 {
		winrate = winrate / 100
	}
	switch {
	case winrate < 0.46:
		return colorWinrateAwful
	case winrate < 0.50:
		return colorWinrateBad
	case winrate < 0.53:
		return colorWinrateEven
	case winrate < 0.58:
		return colorWinrateGood
	case winrate < 0.64:
		return colorWinrateGreat
	}
	return colorWinrateInsane
}

// DayPointsColor maps a league day's average points to a cell color.
// Scores in [1.71, 3] get no color at all.
func DayPointsColor(points float64) ColorPair {
	switch {
	case points < 1.71:
		return ColorPair{Background: colorDayLow, Foreground: colorInk}
	case points > 5:
		return ColorPair{Background: colorGold, Foreground: colorInk}
	case points > 4:
		return ColorPair{Background: colorSilver, Foreground: colorInk}
	case points > 3:
		return ColorPair{Background: colorBronze}
	}
	return ColorPair{}
}

// PerformanceColors maps a per-match performance rank to badge colors.
// Ranks 1..3 get medal colors, everything else the neutral badge.
func PerformanceColors(performance int) ColorPair {
	switch performance {
	case 1:
		return ColorPair{Background: colorGold, Foreground: colorInk}
	case 2:
		return ColorPair{Background: colorSilver, Foreground: colorInk}
	case 3:
		return ColorPair{Background: colorBronze}
	}
	return ColorPair{Background: colorNeutralBg, Foreground: colorNeutralFg}
}

// PlacementColor maps a tournament placement to a header accent.
// Tournaments after id 20 ran with a larger bracket, so the playoff cut
// moves from 7th to 13th.
func PlacementColor(tournamentID int64, placement int) Color {
	switch placement {
	case 1:
		return colorGold
	case 2:
		return colorSilver
	case 3:
		return colorBronze
	}
	cut := 7
	if tournamentID > 20 {
		cut = 13
	}
	if placement <= cut {
		return "#86efac" // playoff green
	}
	return ""
}

// PointsTrend classifies a rating delta for display: "down" renders
// green (the player was underrated), "up" renders red.
func PointsTrend(delta float64) string {
	switch {
	case delta <= -1:
		return "down"
	case delta >= 1:
		return "up"
	}
	return ""
}

// MispredictColor returns the row highlight for teams whose actual
// placement landed more than ten spots from the prediction.
func MispredictColor(placement, predicted int) Color {
	diff := placement - predicted
	if diff < 0 {
		diff = -diff
	}
	if diff > 10 {
		return colorMispredict
	}
	return ""
}
