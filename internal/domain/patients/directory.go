package patients

import "context"

// Exists verifica que el paciente exista (ErrNotFound si no).
// Lo consume el módulo de comments vía interface propia,
// para evitar ciclos de imports entre módulos (patients <-> comments).
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.GetByID(ctx, id)
	return err
}
