package flights

import (
	"strings"

	"github.com/Domenick1991/kiosk/internal/domain"
)

// Any disables a criterion, as does the empty string.
const Any = "all"

type Criteria struct {
	Origin      string `json:"origin" form:"origin"`
	Destination string `json:"destination" form:"destination"`
	Airline     string `json:"airline" form:"airline"`
}

// Search returns the flights matching every set criterion exactly. The input
// slice is never modified.
func Search(list []domain.Flight, c Criteria) []domain.Flight {
	results := make([]domain.Flight, 0, len(list))
	for _, f := range list {
		if matches(c.Origin, f.OriginCode) && matches(c.Destination, f.DestinationCode) && matches(c.Airline, f.Airline) {
			results = append(results, f)
		}
	}
	return results
}

func matches(want, got string) bool {
	if want == "" || strings.EqualFold(want, Any) {
		return true
	}
	return want == got
}
