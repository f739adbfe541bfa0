package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"patient-registry/internal/domain/comments"
	"patient-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, commentsSvc *comments.Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Get("/", listPatientsHandler(svc))
		pr.Post("/", createPatientHandler(svc))

		pr.Get("/{patientID}", showPatientHandler(svc, commentsSvc))

		// PUT y PATCH hacen lo mismo: reemplazo completo validado.
		pr.Put("/{patientID}", updatePatientHandler(svc))
		pr.Patch("/{patientID}", updatePatientHandler(svc))

		pr.Delete("/{patientID}", deletePatientHandler(svc))
	})
}

// patientRequest es la ficha completa tal como llega en create/update.
type patientRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"date_of_birth"` // YYYY-MM-DD opcional
	Gender         string `json:"gender" enums:"male,female,other"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

type patientResponse struct {
	ID             string     `json:"id"`
	OwnerUserID    string     `json:"owner_user_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Gender         string     `json:"gender"`
	Address        string     `json:"address"`
	MedicalHistory string     `json:"medical_history"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type patientListResponse struct {
	Items    []patientResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type commentAuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type patientCommentResponse struct {
	ID        string                `json:"id"`
	Content   string                `json:"content"`
	Author    commentAuthorResponse `json:"author"`
	CreatedAt time.Time             `json:"created_at"`
}

type showPatientResponse struct {
	Patient  patientResponse          `json:"patient"`
	Comments []patientCommentResponse `json:"comments"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Lista paginada de pacientes en orden de creación. Defaults: page=1, page_size=10.
// @Tags patients
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Param page_size query int false "Tamaño de página (1..100)"
// @Success 200 {object} patientListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		page := parseIntOr(r.URL.Query().Get("page"), 1)
		pageSize := parseIntOr(r.URL.Query().Get("page_size"), 10)

		items, total, err := svc.List(r.Context(), page, pageSize)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		if page < 1 {
			page = 1
		}
		if pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		writeJSON(w, http.StatusOK, patientListResponse{
			Items:    out,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Crea una ficha de paciente validada. El email debe ser único entre pacientes. Errores de campo => 422 con mensajes por campo.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body patientRequest true "Ficha del paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 422 {object} validationResponse
// @Router /patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, toInput(req))
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verr.Fields})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

// showPatientHandler godoc
// @Summary Ver paciente
// @Description Devuelve la ficha del paciente junto con sus comentarios (cada uno con la identidad del autor).
// @Tags patients
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} showPatientResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [get]
func showPatientHandler(svc *Service, commentsSvc *comments.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		patientID := chi.URLParam(r, "patientID")
		p, err := svc.GetByID(r.Context(), patientID)
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		cs, err := commentsSvc.ListByPatient(r.Context(), patientID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		outComments := make([]patientCommentResponse, 0, len(cs))
		for _, c := range cs {
			outComments = append(outComments, patientCommentResponse{
				ID:      c.ID,
				Content: c.Content,
				Author: commentAuthorResponse{
					ID:    c.Author.ID,
					Name:  c.Author.Name,
					Email: c.Author.Email,
				},
				CreatedAt: c.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, showPatientResponse{
			Patient:  toPatientResponse(p),
			Comments: outComments,
		})
	}
}

// updatePatientHandler godoc
// @Summary Actualizar paciente
// @Description Reemplazo completo validado de la ficha. La unicidad de email excluye al propio registro. Sin restricción de ownership.
// @Tags patients
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body patientRequest true "Ficha completa"
// @Success 200 {object} patientResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "patient not found"
// @Failure 422 {object} validationResponse
// @Router /patients/{patientID} [put]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		patientID := chi.URLParam(r, "patientID")
		p, err := svc.Update(r.Context(), patientID, toInput(req))
		if err != nil {
			var verr *ValidationError
			switch {
			case errors.As(err, &verr):
				writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verr.Fields})
			case errors.Is(err, ErrNotFound):
				http.Error(w, "patient not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

// deletePatientHandler godoc
// @Summary Eliminar paciente
// @Description Elimina la ficha y, en cascada atómica, todos sus comentarios. Sin restricción de ownership.
// @Tags patients
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Success 200 {object} statusResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID} [delete]
func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		patientID := chi.URLParam(r, "patientID")
		if err := svc.Delete(r.Context(), patientID); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "patient not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Status:  "success",
			Message: "Patient record deleted successfully",
		})
	}
}

func toInput(req patientRequest) Input {
	return Input{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:             p.ID,
		OwnerUserID:    p.OwnerUserID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		DateOfBirth:    p.DateOfBirth,
		Gender:         string(p.Gender),
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func parseIntOr(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (patients/comments/dashboard) para no extraer helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
