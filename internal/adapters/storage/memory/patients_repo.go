package memory

import (
	"context"
	"errors"
	"strings"

	"patient-registry/internal/domain/patients"
)

type patientsRepo struct {
	store *Store
}

func NewPatientsRepo(store *Store) patients.Repository {
	return &patientsRepo{store: store}
}

func (r *patientsRepo) Create(ctx context.Context, p patients.Patient) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("patient id required")
	}
	if _, exists := s.patientsByID[p.ID]; exists {
		return errors.New("patient already exists")
	}
	// Unicidad la garantiza el store, bajo el mismo lock que la escritura
	// (equivale al unique constraint de Postgres).
	if s.emailTakenBy(p.Email, p.ID) {
		return patients.ErrEmailTaken
	}

	s.patientsByID[p.ID] = p
	return nil
}

func (r *patientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patientsByID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

func (r *patientsRepo) List(ctx context.Context, page, pageSize int) ([]patients.Patient, int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.patientsSorted()
	total := len(all)

	start := (page - 1) * pageSize
	if start >= total {
		return []patients.Patient{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	out := make([]patients.Patient, end-start)
	copy(out, all[start:end])
	return out, total, nil
}

func (r *patientsRepo) Update(ctx context.Context, p patients.Patient) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.patientsByID[p.ID]; !exists {
		return patients.ErrNotFound
	}
	// Auto-exclusión: el propio registro no cuenta como conflicto.
	if s.emailTakenBy(p.Email, p.ID) {
		return patients.ErrEmailTaken
	}

	s.patientsByID[p.ID] = p
	return nil
}

func (r *patientsRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.patientsByID[id]; !exists {
		return patients.ErrNotFound
	}

	// Cascada bajo un solo lock: sin ventana en la que el paciente ya no
	// exista pero sus comentarios sí.
	for cid, c := range s.commentsByID {
		if c.PatientID == id {
			delete(s.commentsByID, cid)
		}
	}
	delete(s.patientsByID, id)
	return nil
}
