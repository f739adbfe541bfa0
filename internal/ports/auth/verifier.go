package auth

import "context"

// AuthVerifier valida un token de sesión y devuelve sus claims o error.
// La implementación concreta vive en adapters (JWT local en este servicio).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
