package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"patient-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard", summaryHandler(svc))
}

type recentPatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type summaryResponse struct {
	TotalPatients  int                     `json:"total_patients"`
	YourPatients   int                     `json:"your_patients"`
	TotalComments  int                     `json:"total_comments"`
	YourComments   int                     `json:"your_comments"`
	RecentPatients []recentPatientResponse `json:"recent_patients"`
}

// summaryHandler godoc
// @Summary Dashboard
// @Description Contadores globales y del usuario actual, más los 5 pacientes registrados más recientemente.
// @Tags dashboard
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /dashboard [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		s, err := svc.Summary(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		recent := make([]recentPatientResponse, 0, len(s.RecentPatients))
		for _, p := range s.RecentPatients {
			recent = append(recent, recentPatientResponse{
				ID:        p.ID,
				Name:      p.Name,
				Email:     p.Email,
				CreatedAt: p.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			TotalPatients:  s.TotalPatients,
			YourPatients:   s.YourPatients,
			TotalComments:  s.TotalComments,
			YourComments:   s.YourComments,
			RecentPatients: recent,
		})
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en patients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
