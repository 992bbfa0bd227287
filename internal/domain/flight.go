package domain

type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "On Time"
	FlightStatusBoarding  FlightStatus = "Boarding"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

type Flight struct {
	ID              string       `json:"id"`
	Airline         string       `json:"airline"`
	FlightNumber    string       `json:"flight_number"`
	OriginCode      string       `json:"origin_code"`
	OriginName      string       `json:"origin_name"`
	DestinationCode string       `json:"destination_code"`
	DestinationName string       `json:"destination_name"`
	DepartureTime   string       `json:"departure_time"`
	Duration        string       `json:"duration"`
	Status          FlightStatus `json:"status"`
	PriceRand       int          `json:"price"`
}

type Airport struct {
	Code string `json:"code"`
	City string `json:"city"`
	Name string `json:"name"`
}
