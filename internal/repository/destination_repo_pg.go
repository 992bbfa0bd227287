package repository

import (
	"context"

	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/domain"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
}

type PGDestinationRepository struct {
	db database.Querier
}

func NewDestinationRepository(db database.Querier) DestinationRepository {
	return &PGDestinationRepository{db: db}
}

func (r *PGDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country, category, image_url, description, activities, has_animal_tracking FROM destinations ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Category, &d.ImageURL, &d.Description, &d.Activities, &d.HasAnimalTracking); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

var _ DestinationRepository = (*PGDestinationRepository)(nil)
