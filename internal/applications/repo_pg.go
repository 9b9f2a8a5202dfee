package applications

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"fithire-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, job_posting_id, user_id, resume_id, status, message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.JobPostingID,
		app.UserID,
		app.ResumeID,
		app.Status,
		nullableString(app.Message),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `
SELECT id, job_posting_id, user_id, resume_id, status, message, created_at, updated_at
FROM applications
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

func (r *PGRepo) GetDetail(ctx context.Context, id string) (Detail, error) {
	const query = `
SELECT a.id, a.job_posting_id, a.user_id, a.resume_id, a.status, a.message, a.created_at, a.updated_at,
       p.id, p.name, p.email, p.phone, p.avatar_url,
       r.id, r.title, r.categories, r.region, r.experience_level,
       j.id, j.title, j.region, j.center_id, c.name
FROM applications a
JOIN profiles p ON p.id = a.user_id
JOIN resumes r ON r.id = a.resume_id
JOIN job_postings j ON j.id = a.job_posting_id
JOIN centers c ON c.id = j.center_id
WHERE a.id = $1
LIMIT 1`
	var detail Detail
	var message sql.NullString
	var updatedAt sql.NullTime
	var phone sql.NullString
	var avatarURL sql.NullString
	var resumeRegion sql.NullString
	var resumeExperience sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.JobPostingID,
		&detail.UserID,
		&detail.ResumeID,
		&detail.Status,
		&message,
		&detail.CreatedAt,
		&updatedAt,
		&detail.Applicant.ID,
		&detail.Applicant.Name,
		&detail.Applicant.Email,
		&phone,
		&avatarURL,
		&detail.Resume.ID,
		&detail.Resume.Title,
		pq.Array(&detail.Resume.Categories),
		&resumeRegion,
		&resumeExperience,
		&detail.Posting.ID,
		&detail.Posting.Title,
		&detail.Posting.Region,
		&detail.Posting.CenterID,
		&detail.Posting.CenterName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}
	if message.Valid {
		detail.Message = message.String
	}
	if updatedAt.Valid {
		detail.UpdatedAt = updatedAt.Time
	}
	if phone.Valid {
		detail.Applicant.Phone = phone.String
	}
	if avatarURL.Valid {
		detail.Applicant.AvatarURL = avatarURL.String
	}
	if resumeRegion.Valid {
		detail.Resume.Region = resumeRegion.String
	}
	if resumeExperience.Valid {
		detail.Resume.ExperienceLevel = resumeExperience.String
	}
	return detail, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]UserApplication, error) {
	const query = `
SELECT a.id, a.job_posting_id, a.user_id, a.resume_id, a.status, a.message, a.created_at, a.updated_at,
       j.title, c.name
FROM applications a
JOIN job_postings j ON j.id = a.job_posting_id
JOIN centers c ON c.id = j.center_id
WHERE a.user_id = $1
ORDER BY a.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []UserApplication{}
	for rows.Next() {
		var app UserApplication
		var message sql.NullString
		var updatedAt sql.NullTime
		err := rows.Scan(
			&app.ID,
			&app.JobPostingID,
			&app.UserID,
			&app.ResumeID,
			&app.Status,
			&message,
			&app.CreatedAt,
			&updatedAt,
			&app.PostingTitle,
			&app.CenterName,
		)
		if err != nil {
			return nil, err
		}
		if message.Valid {
			app.Message = message.String
		}
		if updatedAt.Valid {
			app.UpdatedAt = updatedAt.Time
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *PGRepo) ListByPosting(ctx context.Context, postingID string) ([]PostingApplication, error) {
	const query = `
SELECT a.id, a.job_posting_id, a.user_id, a.resume_id, a.status, a.message, a.created_at, a.updated_at,
       p.name, p.email, r.title
FROM applications a
JOIN profiles p ON p.id = a.user_id
JOIN resumes r ON r.id = a.resume_id
WHERE a.job_posting_id = $1
ORDER BY a.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, postingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []PostingApplication{}
	for rows.Next() {
		var app PostingApplication
		var message sql.NullString
		var updatedAt sql.NullTime
		err := rows.Scan(
			&app.ID,
			&app.JobPostingID,
			&app.UserID,
			&app.ResumeID,
			&app.Status,
			&message,
			&app.CreatedAt,
			&updatedAt,
			&app.ApplicantName,
			&app.ApplicantEmail,
			&app.ResumeTitle,
		)
		if err != nil {
			return nil, err
		}
		if message.Valid {
			app.Message = message.String
		}
		if updatedAt.Valid {
			app.UpdatedAt = updatedAt.Time
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateStatus moves an application only while it still holds fromStatus.
// Concurrent movers race on the guard; losers see ErrNotFound.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, fromStatus, toStatus, message string) error {
	const query = `
UPDATE applications
SET status = $2, message = $3, updated_at = now()
WHERE id = $1 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, id, toStatus, nullableString(message), fromStatus)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, int, error) {
	const query = `
SELECT count(*), count(*) FILTER (WHERE status = 'pending')
FROM applications
WHERE user_id = $1`
	var total, pending int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&total, &pending); err != nil {
		return 0, 0, err
	}
	return total, pending, nil
}

func (r *PGRepo) CountByCenter(ctx context.Context, centerID string) (CenterStats, error) {
	const query = `
SELECT count(*),
       count(*) FILTER (WHERE a.created_at >= date_trunc('day', now())),
       count(*) FILTER (WHERE a.created_at >= now() - interval '7 days')
FROM applications a
JOIN job_postings j ON j.id = a.job_posting_id
WHERE j.center_id = $1`
	var stats CenterStats
	if err := r.DB.QueryRowContext(ctx, query, centerID).Scan(&stats.Total, &stats.Today, &stats.Week); err != nil {
		return CenterStats{}, err
	}
	return stats, nil
}

func (r *PGRepo) ListRecentByCenter(ctx context.Context, centerID string, limit int) ([]RecentApplicant, error) {
	const query = `
SELECT a.id, a.status, a.created_at,
       p.name, p.email,
       r.id, r.title,
       j.id, j.title
FROM applications a
JOIN profiles p ON p.id = a.user_id
JOIN resumes r ON r.id = a.resume_id
JOIN job_postings j ON j.id = a.job_posting_id
WHERE j.center_id = $1
ORDER BY a.created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, centerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := []RecentApplicant{}
	for rows.Next() {
		var row RecentApplicant
		err := rows.Scan(
			&row.ID,
			&row.Status,
			&row.CreatedAt,
			&row.ApplicantName,
			&row.ApplicantEmail,
			&row.ResumeID,
			&row.ResumeTitle,
			&row.JobPostingID,
			&row.PostingTitle,
		)
		if err != nil {
			return nil, err
		}
		recent = append(recent, row)
	}
	return recent, rows.Err()
}

func scanApplication(row *sql.Row) (Application, error) {
	var app Application
	var message sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&app.ID,
		&app.JobPostingID,
		&app.UserID,
		&app.ResumeID,
		&app.Status,
		&message,
		&app.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return Application{}, err
	}
	if message.Valid {
		app.Message = message.String
	}
	if updatedAt.Valid {
		app.UpdatedAt = updatedAt.Time
	} else {
		app.UpdatedAt = time.Now().UTC()
	}
	return app, nil
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
