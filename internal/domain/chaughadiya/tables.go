package chaughadiya

// The weekly rotation of muhurat qualities is fixed tradition. Weekdays are
// indexed 0=Monday through 6=Sunday; each weekday carries two 8-slot rows,
// row 0 anchored at sunrise (day) and row 1 anchored at sunset (night).

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var muhuratNames = [7]string{
	0: "Udveg",
	1: "Kaal",
	2: "Rog",
	3: "Chal",
	4: "Labh",
	5: "Amrit",
	6: "Shubh",
}

const (
	dayRow   = 0
	nightRow = 1
)

var rotation = [7][2][8]int{
	0: {{5, 1, 6, 2, 0, 3, 4, 5}, {3, 2, 1, 4, 0, 6, 5, 3}},
	1: {{2, 0, 3, 4, 5, 1, 6, 2}, {1, 4, 0, 6, 5, 3, 2, 1}},
	2: {{4, 5, 1, 6, 2, 0, 3, 4}, {0, 6, 5, 3, 2, 1, 4, 0}},
	3: {{6, 2, 0, 3, 4, 5, 1, 6}, {5, 3, 2, 1, 4, 0, 6, 5}},
	4: {{3, 4, 5, 1, 6, 2, 0, 3}, {2, 1, 4, 0, 6, 5, 3, 2}},
	5: {{1, 6, 2, 0, 3, 4, 5, 1}, {4, 0, 6, 5, 3, 2, 1, 4}},
	6: {{0, 3, 4, 5, 1, 6, 2, 0}, {6, 5, 3, 2, 1, 4, 0, 6}},
}

// WeekdayIndex maps a Go weekday onto the Monday-based table index.
func WeekdayIndex(d int) int {
	return (d + 6) % 7
}

// WeekdayName returns the English name for a Monday-based weekday index.
func WeekdayName(weekday int) string {
	return weekdayNames[weekday]
}

// MuhuratName resolves a muhurat id (0-6) to its canonical name.
func MuhuratName(id int) string {
	return muhuratNames[id]
}
