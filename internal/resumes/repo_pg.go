package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/lib/pq"
)

type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `
SELECT id, user_id, title, categories, region, experience_level, gender, birth_year,
       introduction, certifications, career_history, education, is_primary, is_public,
       created_at, updated_at
FROM resumes`

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	career, education, err := marshalHistories(resume)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resumes (id, user_id, title, categories, region, experience_level, gender, birth_year,
                     introduction, certifications, career_history, education, is_primary, is_public,
                     created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.Title,
		pq.Array(resume.Categories),
		nullableString(resume.Region),
		nullableString(resume.ExperienceLevel),
		nullableString(resume.Gender),
		nullableInt(resume.BirthYear),
		nullableString(resume.Introduction),
		pq.Array(resume.Certifications),
		career,
		education,
		resume.IsPrimary,
		resume.IsPublic,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	row := r.DB.QueryRowContext(ctx, selectColumns+` WHERE id = $1 LIMIT 1`, id)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	rows, err := r.DB.QueryContext(ctx, selectColumns+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	career, education, err := marshalHistories(resume)
	if err != nil {
		return err
	}
	const query = `
UPDATE resumes
SET title = $2, categories = $3, region = $4, experience_level = $5, gender = $6,
    birth_year = $7, introduction = $8, certifications = $9, career_history = $10,
    education = $11, is_primary = $12, is_public = $13, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.Title,
		pq.Array(resume.Categories),
		nullableString(resume.Region),
		nullableString(resume.ExperienceLevel),
		nullableString(resume.Gender),
		nullableInt(resume.BirthYear),
		nullableString(resume.Introduction),
		pq.Array(resume.Certifications),
		career,
		education,
		resume.IsPrimary,
		resume.IsPublic,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM resumes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var region sql.NullString
	var experienceLevel sql.NullString
	var gender sql.NullString
	var birthYear sql.NullInt64
	var introduction sql.NullString
	var career []byte
	var education []byte
	var updatedAt sql.NullTime
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		pq.Array(&resume.Categories),
		&region,
		&experienceLevel,
		&gender,
		&birthYear,
		&introduction,
		pq.Array(&resume.Certifications),
		&career,
		&education,
		&resume.IsPrimary,
		&resume.IsPublic,
		&resume.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	if region.Valid {
		resume.Region = region.String
	}
	if experienceLevel.Valid {
		resume.ExperienceLevel = experienceLevel.String
	}
	if gender.Valid {
		resume.Gender = gender.String
	}
	if birthYear.Valid {
		resume.BirthYear = int(birthYear.Int64)
	}
	if introduction.Valid {
		resume.Introduction = introduction.String
	}
	if len(career) > 0 {
		if err := json.Unmarshal(career, &resume.CareerHistory); err != nil {
			return Resume{}, err
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &resume.Education); err != nil {
			return Resume{}, err
		}
	}
	if updatedAt.Valid {
		resume.UpdatedAt = updatedAt.Time
	} else {
		resume.UpdatedAt = time.Now().UTC()
	}
	return resume, nil
}

func marshalHistories(resume Resume) ([]byte, []byte, error) {
	career, err := json.Marshal(emptyIfNilCareer(resume.CareerHistory))
	if err != nil {
		return nil, nil, err
	}
	education, err := json.Marshal(emptyIfNilEducation(resume.Education))
	if err != nil {
		return nil, nil, err
	}
	return career, education, nil
}

func emptyIfNilCareer(entries []CareerEntry) []CareerEntry {
	if entries == nil {
		return []CareerEntry{}
	}
	return entries
}

func emptyIfNilEducation(entries []EducationEntry) []EducationEntry {
	if entries == nil {
		return []EducationEntry{}
	}
	return entries
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
