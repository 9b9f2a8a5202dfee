package accounts

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

func (r *PGRepo) Create(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, email, password_hash, name, phone, role, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		nullableString(profile.PasswordHash),
		profile.Name,
		nullableString(profile.Phone),
		profile.Role,
		nullableString(profile.AvatarURL),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Profile, error) {
	const query = `
SELECT id, email, password_hash, name, phone, role, avatar_url, created_at, updated_at
FROM profiles
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	const query = `
SELECT id, email, password_hash, name, phone, role, avatar_url, created_at, updated_at
FROM profiles
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) Update(ctx context.Context, profile Profile) error {
	const query = `
UPDATE profiles
SET name = $2, phone = $3, avatar_url = $4, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		nullableString(profile.Phone),
		nullableString(profile.AvatarURL),
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

func (r *PGRepo) scanOne(row *sql.Row) (Profile, error) {
	var profile Profile
	var passwordHash sql.NullString
	var phone sql.NullString
	var avatarURL sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&passwordHash,
		&profile.Name,
		&phone,
		&profile.Role,
		&avatarURL,
		&profile.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if passwordHash.Valid {
		profile.PasswordHash = passwordHash.String
	}
	if phone.Valid {
		profile.Phone = phone.String
	}
	if avatarURL.Valid {
		profile.AvatarURL = avatarURL.String
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	} else {
		profile.UpdatedAt = time.Now().UTC()
	}
	return profile, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
