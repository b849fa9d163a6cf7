package tithi

import "time"

// Paksha labels for the waxing and waning lunar fortnights.
const (
	PakshaShukla  = "Shukla Paksha (Waxing)"
	PakshaKrishna = "Krishna Paksha (Waning)"
)

// State is the computed lunar day at an instant: which tithi is running, how
// far along it is, and the solved boundary instants.
type State struct {
	Number            int
	Name              string
	Paksha            string
	ElongationDegrees float64
	Progress          float64
	Start             time.Time
	End               time.Time
	NextNumber        int
	NextName          string
	Significance      string
	CalculatedAt      time.Time
}
