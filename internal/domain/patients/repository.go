package patients

import "context"

type Repository interface {
	// Create persiste el paciente. Devuelve ErrEmailTaken si el email ya existe
	// (la unicidad la garantiza el store, no un pre-check de la app).
	Create(ctx context.Context, p Patient) error

	GetByID(ctx context.Context, id string) (Patient, error)

	// List devuelve una página en orden de creación y el total de pacientes.
	List(ctx context.Context, page, pageSize int) ([]Patient, int, error)

	// Update reemplaza la ficha completa. ErrNotFound si no existe,
	// ErrEmailTaken si el email pertenece a otro paciente (auto-exclusión).
	Update(ctx context.Context, p Patient) error

	// Delete elimina el paciente y sus comentarios en una sola operación atómica.
	Delete(ctx context.Context, id string) error
}
