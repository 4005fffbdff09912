package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"stayhub/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// Repo is the MySQL-backed property catalog.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperty(ctx context.Context, p domain.Property) error {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	amen, err := json.Marshal(amenities)
	if err != nil {
		return fmt.Errorf("marshal amenities: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Title,
		p.Description,
		p.Price,
		p.Location,
		valStr(p.Image),
		valInt(p.Bedrooms),
		valInt(p.Bathrooms),
		valInt(p.Size),
		valInt(p.YearBuilt),
		string(amen),
	)
	return err
}

func (r *Repo) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx, getPropertySQL, id)

	var p domain.Property
	var image sql.NullString
	var bedrooms, bathrooms, size, yearBuilt sql.NullInt64
	var amenitiesJSON []byte

	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Location,
		&image,
		&bedrooms, &bathrooms,
		&size, &yearBuilt,
		&amenitiesJSON,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}

	if image.Valid {
		s := image.String
		p.Image = &s
	}
	p.Bedrooms = intPtr(bedrooms)
	p.Bathrooms = intPtr(bathrooms)
	p.Size = intPtr(size)
	p.YearBuilt = intPtr(yearBuilt)
	if err := json.Unmarshal(amenitiesJSON, &p.Amenities); err != nil {
		return domain.Property{}, fmt.Errorf("decode amenities for %s: %w", id, err)
	}
	return p, nil
}
