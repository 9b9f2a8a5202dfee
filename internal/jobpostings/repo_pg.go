package jobpostings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `
SELECT id, center_id, title, description, region, categories, gender,
       employment_type, experience_level, salary_type, salary_min, salary_max,
       deadline, is_active, view_count, created_at, updated_at
FROM job_postings`

func (r *PGRepo) Create(ctx context.Context, posting JobPosting) error {
	const query = `
INSERT INTO job_postings (id, center_id, title, description, region, categories, gender,
                          employment_type, experience_level, salary_type, salary_min, salary_max,
                          deadline, is_active, view_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 0, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		posting.ID,
		posting.CenterID,
		posting.Title,
		nullableString(posting.Description),
		posting.Region,
		pq.Array(posting.Categories),
		posting.Gender,
		posting.EmploymentType,
		posting.ExperienceLevel,
		nullableString(posting.SalaryType),
		posting.SalaryMin,
		posting.SalaryMax,
		posting.Deadline,
		posting.IsActive,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (JobPosting, error) {
	row := r.DB.QueryRowContext(ctx, selectColumns+` WHERE id = $1 LIMIT 1`, id)
	posting, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobPosting{}, ErrNotFound
		}
		return JobPosting{}, err
	}
	return posting, nil
}

// List returns active postings matching the filter, newest first. Each
// present filter field appends one conjunct; absent fields add none.
func (r *PGRepo) List(ctx context.Context, filter Filter) ([]JobPosting, error) {
	conds := []string{"is_active = TRUE"}
	args := []any{}

	add := func(format string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if filter.Region != "" {
		add("region = $%d", filter.Region)
	}
	if len(filter.Categories) > 0 {
		add("categories && $%d", pq.Array(filter.Categories))
	}
	if filter.Gender != "" {
		// A posting open to anyone matches every gender filter.
		add("gender IN ($%d, 'any')", filter.Gender)
	}
	if filter.EmploymentType != "" {
		add("employment_type = $%d", filter.EmploymentType)
	}
	if filter.ExperienceLevel != "" {
		add("experience_level = $%d", filter.ExperienceLevel)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := selectColumns + "\nWHERE " + strings.Join(conds, " AND ") + "\nORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

func (r *PGRepo) ListByCenter(ctx context.Context, centerID string) ([]JobPosting, error) {
	rows, err := r.DB.QueryContext(ctx, selectColumns+` WHERE center_id = $1 ORDER BY created_at DESC`, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

func (r *PGRepo) Update(ctx context.Context, posting JobPosting) error {
	const query = `
UPDATE job_postings
SET title = $2, description = $3, region = $4, categories = $5, gender = $6,
    employment_type = $7, experience_level = $8, salary_type = $9,
    salary_min = $10, salary_max = $11, deadline = $12, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		posting.ID,
		posting.Title,
		nullableString(posting.Description),
		posting.Region,
		pq.Array(posting.Categories),
		posting.Gender,
		posting.EmploymentType,
		posting.ExperienceLevel,
		nullableString(posting.SalaryType),
		posting.SalaryMin,
		posting.SalaryMax,
		posting.Deadline,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE job_postings SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) IncrementView(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE job_postings SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *PGRepo) CountByCenter(ctx context.Context, centerID string) (int, int, error) {
	const query = `
SELECT count(*), count(*) FILTER (WHERE is_active)
FROM job_postings
WHERE center_id = $1`
	var total, active int
	if err := r.DB.QueryRowContext(ctx, query, centerID).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (JobPosting, error) {
	var posting JobPosting
	var description sql.NullString
	var salaryType sql.NullString
	var salaryMin sql.NullInt64
	var salaryMax sql.NullInt64
	var deadline sql.NullTime
	var updatedAt sql.NullTime
	err := row.Scan(
		&posting.ID,
		&posting.CenterID,
		&posting.Title,
		&description,
		&posting.Region,
		pq.Array(&posting.Categories),
		&posting.Gender,
		&posting.EmploymentType,
		&posting.ExperienceLevel,
		&salaryType,
		&salaryMin,
		&salaryMax,
		&deadline,
		&posting.IsActive,
		&posting.ViewCount,
		&posting.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return JobPosting{}, err
	}
	if description.Valid {
		posting.Description = description.String
	}
	if salaryType.Valid {
		posting.SalaryType = salaryType.String
	}
	if salaryMin.Valid {
		v := salaryMin.Int64
		posting.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := salaryMax.Int64
		posting.SalaryMax = &v
	}
	if deadline.Valid {
		d := deadline.Time
		posting.Deadline = &d
	}
	if updatedAt.Valid {
		posting.UpdatedAt = updatedAt.Time
	} else {
		posting.UpdatedAt = time.Now().UTC()
	}
	return posting, nil
}

func scanPostings(rows *sql.Rows) ([]JobPosting, error) {
	postings := []JobPosting{}
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, rows.Err()
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

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
