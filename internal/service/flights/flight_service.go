package flights

import (
	"context"
	"errors"
	"slices"

	"github.com/Domenick1991/kiosk/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, criteria Criteria) ([]domain.Flight, error)
	FindByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Options(ctx context.Context) (Options, error)
}

// Options are the choices offered by the flight search filters.
type Options struct {
	Airports []domain.Airport `json:"airports"`
	Airlines []string         `json:"airlines"`
}

type FlightService struct {
	flights []domain.Flight
	options Options
}

func NewFlightService(flights []domain.Flight) *FlightService {
	return &FlightService{
		flights: slices.Clone(flights),
		options: Options{Airports: Airports(), Airlines: Airlines()},
	}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return slices.Clone(s.flights), nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	for _, f := range s.flights {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, ErrFlightNotFound
}

func (s *FlightService) FindByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	for _, f := range s.flights {
		if f.FlightNumber == number {
			return &f, nil
		}
	}
	return nil, ErrFlightNotFound
}

func (s *FlightService) Search(ctx context.Context, criteria Criteria) ([]domain.Flight, error) {
	return Search(s.flights, criteria), nil
}

func (s *FlightService) Options(ctx context.Context) (Options, error) {
	return Options{
		Airports: slices.Clone(s.options.Airports),
		Airlines: slices.Clone(s.options.Airlines),
	}, nil
}

var _ FlightUseCase = (*FlightService)(nil)
