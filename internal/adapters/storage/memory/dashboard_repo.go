package memory

import (
	"context"

	"patient-registry/internal/domain/dashboard"
	"patient-registry/internal/domain/patients"
)

type dashboardRepo struct {
	store *Store
}

func NewDashboardRepo(store *Store) dashboard.Repository {
	return &dashboardRepo{store: store}
}

func (r *dashboardRepo) CountPatients(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patientsByID), nil
}

func (r *dashboardRepo) CountPatientsByOwner(ctx context.Context, userID string) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.patientsByID {
		if p.OwnerUserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepo) CountComments(ctx context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.commentsByID), nil
}

func (r *dashboardRepo) CountCommentsByAuthor(ctx context.Context, userID string) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, c := range s.commentsByID {
		if c.AuthorUserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *dashboardRepo) RecentPatients(ctx context.Context, n int) ([]patients.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.patientsSorted() // asc; los más recientes quedan al final
	out := make([]patients.Patient, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
