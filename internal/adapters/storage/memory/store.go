package memory

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"patient-registry/internal/domain/comments"
	"patient-registry/internal/domain/patients"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store es el estado compartido de los repos in-memory. Un solo mutex para
// las tres tablas: la cascada paciente->comentarios y el chequeo de unicidad
// de email necesitan ser atómicos entre sí, igual que lo serían en una
// transacción de Postgres.
type Store struct {
	mu sync.RWMutex

	patientsByID map[string]patients.Patient
	commentsByID map[string]comments.Comment

	// users replica la tabla externa de usuarios, solo para resolver la
	// identidad del autor en los listados (en dev/tests se siembra a mano).
	usersByID map[string]comments.Author
}

func NewStore() *Store {
	return &Store{
		patientsByID: make(map[string]patients.Patient),
		commentsByID: make(map[string]comments.Comment),
		usersByID:    make(map[string]comments.Author),
	}
}

// SeedUser registra la identidad de un usuario para los joins de autor.
func (s *Store) SeedUser(id, name, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByID[id] = comments.Author{ID: id, Name: name, Email: email}
}

func (s *Store) authorFor(userID string) comments.Author {
	if a, ok := s.usersByID[userID]; ok {
		return a
	}
	// Usuario no sembrado (típico en modo dev con X-Debug-User-ID):
	// devolvemos al menos el ID.
	return comments.Author{ID: userID}
}

// patientsSorted devuelve todos los pacientes en orden de creación
// (created_at asc, id asc como desempate estable). Caller debe tener el lock.
func (s *Store) patientsSorted() []patients.Patient {
	out := make([]patients.Patient, 0, len(s.patientsByID))
	for _, p := range s.patientsByID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// emailTakenBy indica si otro paciente (distinto de selfID) ya usa el email.
// Caller debe tener el lock.
func (s *Store) emailTakenBy(email, selfID string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, p := range s.patientsByID {
		if p.ID == selfID {
			continue
		}
		if strings.ToLower(p.Email) == email {
			return true
		}
	}
	return false
}
