package dashboard

import (
	"context"

	"patient-registry/internal/domain/patients"
)

// Repository son las lecturas agregadas que necesita el dashboard.
// No hay mutaciones ni estado propio: todo deriva de patients y comments.
type Repository interface {
	CountPatients(ctx context.Context) (int, error)
	CountPatientsByOwner(ctx context.Context, userID string) (int, error)
	CountComments(ctx context.Context) (int, error)
	CountCommentsByAuthor(ctx context.Context, userID string) (int, error)

	// RecentPatients devuelve hasta n pacientes, el más reciente primero.
	RecentPatients(ctx context.Context, n int) ([]patients.Patient, error)
}

// Summary es la vista agregada para el usuario actual.
type Summary struct {
	TotalPatients  int
	YourPatients   int
	TotalComments  int
	YourComments   int
	RecentPatients []patients.Patient
}

const recentLimit = 5

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary arma los contadores globales y los del actor. Los errores del
// store se propagan tal cual (no hay retry ni degradación parcial).
func (s *Service) Summary(ctx context.Context, actorUserID string) (Summary, error) {
	totalPatients, err := s.repo.CountPatients(ctx)
	if err != nil {
		return Summary{}, err
	}
	yourPatients, err := s.repo.CountPatientsByOwner(ctx, actorUserID)
	if err != nil {
		return Summary{}, err
	}
	totalComments, err := s.repo.CountComments(ctx)
	if err != nil {
		return Summary{}, err
	}
	yourComments, err := s.repo.CountCommentsByAuthor(ctx, actorUserID)
	if err != nil {
		return Summary{}, err
	}
	recent, err := s.repo.RecentPatients(ctx, recentLimit)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalPatients:  totalPatients,
		YourPatients:   yourPatients,
		TotalComments:  totalComments,
		YourComments:   yourComments,
		RecentPatients: recent,
	}, nil
}
