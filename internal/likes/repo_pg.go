package likes

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"fithire-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

// Toggle removes an existing like, or inserts one when none was there. The
// unique index resolves concurrent inserts; losing that race still leaves
// the row in the liked state, so it is reported as such.
func (r *PGRepo) Toggle(ctx context.Context, userID, postingID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND job_posting_id = $2`, userID, postingID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO likes (id, user_id, job_posting_id, created_at) VALUES ($1, $2, $3, now())`,
		uuid.NewString(), userID, postingID)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PGRepo) IsLiked(ctx context.Context, userID, postingID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND job_posting_id = $2)`
	var liked bool
	if err := r.DB.QueryRowContext(ctx, query, userID, postingID).Scan(&liked); err != nil {
		return false, err
	}
	return liked, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]LikedPosting, error) {
	const query = `
SELECT l.job_posting_id, j.title, j.region, c.name, j.is_active, l.created_at
FROM likes l
JOIN job_postings j ON j.id = l.job_posting_id
JOIN centers c ON c.id = j.center_id
WHERE l.user_id = $1
ORDER BY l.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	liked := []LikedPosting{}
	for rows.Next() {
		var row LikedPosting
		err := rows.Scan(
			&row.JobPostingID,
			&row.Title,
			&row.Region,
			&row.CenterName,
			&row.IsActive,
			&row.LikedAt,
		)
		if err != nil {
			return nil, err
		}
		liked = append(liked, row)
	}
	return liked, rows.Err()
}

func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM likes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
