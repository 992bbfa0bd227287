package domain

type View string

const (
	ViewHome        View = "home"
	ViewDestination View = "destination"
	ViewFlights     View = "flights"
	ViewRoute       View = "route"
)

func (v View) Valid() bool {
	switch v {
	case ViewHome, ViewDestination, ViewFlights, ViewRoute:
		return true
	}
	return false
}
