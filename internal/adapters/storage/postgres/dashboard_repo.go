package postgres

import (
	"context"
	"database/sql"

	"patient-registry/internal/domain/dashboard"
	"patient-registry/internal/domain/patients"
)

// DashboardRepo consulta las dos tablas del registro; no tiene estado propio.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) dashboard.Repository {
	return &DashboardRepo{db: db}
}

func (r *DashboardRepo) CountPatients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM patients`)
}

func (r *DashboardRepo) CountPatientsByOwner(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM patients WHERE user_id = $1`, userID)
}

func (r *DashboardRepo) CountComments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM comments`)
}

func (r *DashboardRepo) CountCommentsByAuthor(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM comments WHERE user_id = $1`, userID)
}

func (r *DashboardRepo) RecentPatients(ctx context.Context, n int) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0, n)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *DashboardRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}
