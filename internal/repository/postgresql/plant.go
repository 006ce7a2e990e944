package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/domain/employee"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
)

type plantRepositoryImpl struct {
	db *database.DB
}

func NewPlantRepository(db *database.DB) employee.PlantRepository {
	return &plantRepositoryImpl{db: db}
}

// List implements employee.PlantRepository.
func (p *plantRepositoryImpl) List(ctx context.Context) ([]employee.Plant, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM power_plants ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list power plants: %w", err)
	}
	defer rows.Close()

	var plants []employee.Plant
	for rows.Next() {
		var plant employee.Plant
		if err := rows.Scan(&plant.ID, &plant.Name); err != nil {
			return nil, err
		}
		plants = append(plants, plant)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plants, nil
}

// GetByID implements employee.PlantRepository.
func (p *plantRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Plant, error) {
	return p.getOne(ctx, `SELECT id, name FROM power_plants WHERE id = $1`, id)
}

// GetByName implements employee.PlantRepository.
func (p *plantRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Plant, error) {
	return p.getOne(ctx, `SELECT id, name FROM power_plants WHERE name = $1`, name)
}

func (p *plantRepositoryImpl) getOne(ctx context.Context, query string, arg interface{}) (employee.Plant, error) {
	q := GetQuerier(ctx, p.db)

	var plant employee.Plant
	if err := q.QueryRow(ctx, query, arg).Scan(&plant.ID, &plant.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Plant{}, employee.ErrPlantNotFound
		}
		return employee.Plant{}, fmt.Errorf("failed to get power plant: %w", err)
	}
	return plant, nil
}
