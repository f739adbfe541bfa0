package comments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"patient-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/patients/{patientID}/comments", addCommentHandler(svc))
	r.Delete("/comments/{commentID}", deleteCommentHandler(svc))
}

type addCommentRequest struct {
	Content string `json:"content"`
}

type commentResponse struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	AuthorUserID string    `json:"author_user_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

// statusResponse replica el mensaje flash del flujo original:
// el borrado no autorizado responde 200 con status=error, no 403.
type statusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	PatientID string `json:"patient_id,omitempty"`
}

// addCommentHandler godoc
// @Summary Agregar comentario
// @Description Registra un comentario de texto libre sobre el paciente, autoría del usuario actual.
// @Tags comments
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body addCommentRequest true "Contenido del comentario"
// @Success 201 {object} commentResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "patient not found"
// @Failure 422 {object} validationResponse
// @Router /patients/{patientID}/comments [post]
func addCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		patientID := chi.URLParam(r, "patientID")
		c, err := svc.Add(r.Context(), patientID, claims.UserID, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, ErrContentRequired):
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
					Errors: map[string]string{"content": "is required"},
				})
			case errors.Is(err, ErrPatientNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toCommentResponse(c))
	}
}

// deleteCommentHandler godoc
// @Summary Eliminar comentario
// @Description Solo el autor puede eliminar. Si el actor no es el autor, la respuesta es 200 con status=error y el comentario se conserva (rechazo blando, como el redirect-con-mensaje original).
// @Tags comments
// @Produce json
// @Param commentID path string true "ID del comentario"
// @Success 200 {object} statusResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "comment not found"
// @Router /comments/{commentID} [delete]
func deleteCommentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		commentID := chi.URLParam(r, "commentID")
		c, err := svc.Delete(r.Context(), commentID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotAuthor):
				writeJSON(w, http.StatusOK, statusResponse{
					Status:    "error",
					Message:   "You are not authorized to delete this comment",
					PatientID: c.PatientID,
				})
			case errors.Is(err, ErrNotFound):
				http.Error(w, "comment not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Status:    "success",
			Message:   "Comment deleted successfully",
			PatientID: c.PatientID,
		})
	}
}

func toCommentResponse(c Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		PatientID:    c.PatientID,
		AuthorUserID: c.AuthorUserID,
		Content:      c.Content,
		CreatedAt:    c.CreatedAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en patients/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
