package comments

import "context"

type Repository interface {
	Create(ctx context.Context, c Comment) error
	GetByID(ctx context.Context, id string) (Comment, error)

	// ListByPatient devuelve los comentarios del paciente en orden de creación,
	// cada uno con la identidad de su autor (join con users).
	ListByPatient(ctx context.Context, patientID string) ([]CommentWithAuthor, error)

	Delete(ctx context.Context, id string) error
}
