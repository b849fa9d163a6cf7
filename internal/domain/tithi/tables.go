package tithi

// The 30 tithis of a lunar month, ordered Shukla 1-15 then Krishna 16-30.
// Purnima (full moon) closes the waxing fortnight, Amavasya (new moon) the
// waning one.
var tithiNames = [30]string{
	"Pratipada (Shukla)",
	"Dwitiya (Shukla)",
	"Tritiya (Shukla)",
	"Chaturthi (Shukla)",
	"Panchami (Shukla)",
	"Shashthi (Shukla)",
	"Saptami (Shukla)",
	"Ashtami (Shukla)",
	"Navami (Shukla)",
	"Dashami (Shukla)",
	"Ekadashi (Shukla)",
	"Dwadashi (Shukla)",
	"Trayodashi (Shukla)",
	"Chaturdashi (Shukla)",
	"Purnima",
	"Pratipada (Krishna)",
	"Dwitiya (Krishna)",
	"Tritiya (Krishna)",
	"Chaturthi (Krishna)",
	"Panchami (Krishna)",
	"Shashthi (Krishna)",
	"Saptami (Krishna)",
	"Ashtami (Krishna)",
	"Navami (Krishna)",
	"Dashami (Krishna)",
	"Ekadashi (Krishna)",
	"Dwadashi (Krishna)",
	"Trayodashi (Krishna)",
	"Chaturdashi (Krishna)",
	"Amavasya",
}

var tithiSignificance = map[string]string{
	"Pratipada (Shukla)":   "Beginning, new ventures",
	"Dwitiya (Shukla)":     "Worship of deities",
	"Tritiya (Shukla)":     "Auspicious for spiritual activities",
	"Chaturthi (Shukla)":   "Worship of Ganesha",
	"Panchami (Shukla)":    "Worship of Saraswati",
	"Shashthi (Shukla)":    "Worship of Kartikeya",
	"Saptami (Shukla)":     "Worship of Sun",
	"Ashtami (Shukla)":     "Worship of Durga",
	"Navami (Shukla)":      "Worship of Durga",
	"Dashami (Shukla)":     "Auspicious for ceremonies",
	"Ekadashi (Shukla)":    "Fasting and spiritual practices",
	"Dwadashi (Shukla)":    "Worship of Vishnu",
	"Trayodashi (Shukla)":  "Auspicious for religious activities",
	"Chaturdashi (Shukla)": "Worship of Shiva",
	"Purnima":              "Full Moon - highly auspicious",
	"Pratipada (Krishna)":  "Beginning of waning phase",
	"Dwitiya (Krishna)":    "Second day of waning",
	"Tritiya (Krishna)":    "Third day of waning",
	"Chaturthi (Krishna)":  "Fourth day of waning",
	"Panchami (Krishna)":   "Fifth day of waning",
	"Shashthi (Krishna)":   "Sixth day of waning",
	"Saptami (Krishna)":    "Seventh day of waning",
	"Ashtami (Krishna)":    "Worship of Krishna",
	"Navami (Krishna)":     "Ninth day of waning",
	"Dashami (Krishna)":    "Tenth day of waning",
	"Ekadashi (Krishna)":   "Fasting and spiritual practices",
	"Dwadashi (Krishna)":   "Twelfth day of waning",
	"Trayodashi (Krishna)": "Thirteenth day of waning",
	"Chaturdashi (Krishna)": "Worship of Shiva",
	"Amavasya":             "New Moon - for ancestor worship",
}

const defaultSignificance = "Traditional lunar day"

// Name returns the canonical name for a tithi number in [1,30].
func Name(number int) string {
	return tithiNames[number-1]
}

// Significance looks up the traditional meaning of a tithi.
func Significance(name string) string {
	if s, ok := tithiSignificance[name]; ok {
		return s
	}
	return defaultSignificance
}
