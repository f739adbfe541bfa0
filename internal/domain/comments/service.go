package comments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("comment not found")
	ErrPatientNotFound = errors.New("patient not found")

	// ErrContentRequired: el único campo del comentario no puede quedar vacío.
	ErrContentRequired = errors.New("content is required")

	ErrAuthorRequired = errors.New("author is required")

	// ErrNotAuthor: el actor no es el autor del comentario. Es un rechazo
	// "blando": el comentario se conserva y el caller decide cómo mostrarlo
	// (el handler lo reporta como mensaje, no como error HTTP).
	ErrNotAuthor = errors.New("not the comment author")
)

// PatientDirectory es lo mínimo que comments necesita saber de patients.
// La implementa *patients.Service; la interface vive aquí para no
// importar el módulo patients desde este paquete.
type PatientDirectory interface {
	Exists(ctx context.Context, patientID string) error
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	now      func() time.Time
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		now:      time.Now,
	}
}

// Add registra un comentario del actor sobre el paciente.
// Cualquier usuario autenticado puede comentar cualquier paciente.
func (s *Service) Add(ctx context.Context, patientID, actorUserID, content string) (Comment, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return Comment{}, ErrAuthorRequired
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, ErrContentRequired
	}

	if err := s.patients.Exists(ctx, patientID); err != nil {
		return Comment{}, ErrPatientNotFound
	}

	c := Comment{
		ID:           uuid.NewString(),
		PatientID:    patientID,
		AuthorUserID: actorUserID,
		Content:      content,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]CommentWithAuthor, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// Delete elimina el comentario solo si el actor es su autor.
// Si no lo es, devuelve ErrNotAuthor y no toca el store.
// Devuelve el comentario (para que el caller sepa a qué paciente volver).
func (s *Service) Delete(ctx context.Context, commentID, actorUserID string) (Comment, error) {
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return Comment{}, ErrNotFound
	}

	c, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return Comment{}, err
	}

	if c.AuthorUserID != actorUserID {
		return c, ErrNotAuthor
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return Comment{}, err
	}
	return c, nil
}
