package centers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fithire-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, center Center) error {
	const query = `
INSERT INTO centers (id, owner_id, name, description, address, region, logo_url, contact_email, contact_phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		center.ID,
		center.OwnerID,
		center.Name,
		nullableString(center.Description),
		nullableString(center.Address),
		center.Region,
		nullableString(center.LogoURL),
		nullableString(center.ContactEmail),
		nullableString(center.ContactPhone),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Center, error) {
	const query = selectColumns + ` WHERE id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByOwner(ctx context.Context, ownerID string) (Center, error) {
	const query = selectColumns + ` WHERE owner_id = $1 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, ownerID))
}

func (r *PGRepo) Update(ctx context.Context, center Center) error {
	const query = `
UPDATE centers
SET name = $2, description = $3, address = $4, region = $5, logo_url = $6,
    contact_email = $7, contact_phone = $8, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		center.ID,
		center.Name,
		nullableString(center.Description),
		nullableString(center.Address),
		center.Region,
		nullableString(center.LogoURL),
		nullableString(center.ContactEmail),
		nullableString(center.ContactPhone),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `
SELECT id, owner_id, name, description, address, region, logo_url, contact_email, contact_phone, created_at, updated_at
FROM centers`

func (r *PGRepo) scanOne(row *sql.Row) (Center, error) {
	var center Center
	var description sql.NullString
	var address sql.NullString
	var logoURL sql.NullString
	var contactEmail sql.NullString
	var contactPhone sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&center.ID,
		&center.OwnerID,
		&center.Name,
		&description,
		&address,
		&center.Region,
		&logoURL,
		&contactEmail,
		&contactPhone,
		&center.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Center{}, ErrNotFound
		}
		return Center{}, err
	}
	if description.Valid {
		center.Description = description.String
	}
	if address.Valid {
		center.Address = address.String
	}
	if logoURL.Valid {
		center.LogoURL = logoURL.String
	}
	if contactEmail.Valid {
		center.ContactEmail = contactEmail.String
	}
	if contactPhone.Valid {
		center.ContactPhone = contactPhone.String
	}
	if updatedAt.Valid {
		center.UpdatedAt = updatedAt.Time
	} else {
		center.UpdatedAt = time.Now().UTC()
	}
	return center, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
