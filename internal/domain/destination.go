package domain

type Destination struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Country           string   `json:"country"`
	Category          string   `json:"category"`
	ImageURL          string   `json:"imageUrl"`
	Description       string   `json:"description"`
	Activities        []string `json:"activities"`
	HasAnimalTracking bool     `json:"hasAnimalTracking"`
}
