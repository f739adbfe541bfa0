package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "patient-registry/internal/adapters/storage/memory"
	"patient-registry/internal/platform/logger"
	"patient-registry/internal/router"
)

func newTestServer(t *testing.T, store *mem.Store) *httptest.Server {
	t.Helper()
	h := router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		MemStore:     store,
		Logger:       logger.New(logger.Options{Level: logger.Error, Format: logger.FormatJSON, Out: io.Discard}),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

func createPatient(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/patients", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating patient, got %d body=%s", st, string(body))
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.ID == "" {
		t.Fatalf("cannot read created patient: %v body=%s", err, string(body))
	}
	return out.ID
}

func TestHTTP_EndToEnd_RegistryFlow(t *testing.T) {
	store := mem.NewStore()
	store.SeedUser("u1", "Ana Li", "ana.li@clinic.example")
	store.SeedUser("u2", "Benito Kim", "benito@clinic.example")
	ts := newTestServer(t, store)

	// 1) u1 registra un paciente con los campos mínimos
	patientID := createPatient(t, ts.URL, "u1", map[string]any{
		"name":  "Ana Li",
		"email": "ana@example.com",
	})

	// 2) Ver paciente: opcionales vacíos, sin comentarios aún
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID, "u1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 show, got %d body=%s", st, string(body))
		}
		var out struct {
			Patient struct {
				Name   string `json:"name"`
				Email  string `json:"email"`
				Phone  string `json:"phone"`
				Gender string `json:"gender"`
			} `json:"patient"`
			Comments []any `json:"comments"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("bad show body: %v", err)
		}
		if out.Patient.Name != "Ana Li" || out.Patient.Email != "ana@example.com" {
			t.Fatalf("round-trip mismatch: %#v", out.Patient)
		}
		if out.Patient.Phone != "" || out.Patient.Gender != "" {
			t.Fatalf("expected default-empty optionals, got %#v", out.Patient)
		}
		if len(out.Comments) != 0 {
			t.Fatalf("expected no comments, got %d", len(out.Comments))
		}
	}

	// 3) Email duplicado => 422 con error en el campo email
	{
		st, body := doReq(t, ts.URL, "POST", "/patients", "u2", map[string]any{
			"name":  "Otra Persona",
			"email": "ana@example.com",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 duplicate email, got %d body=%s", st, string(body))
		}
		var out struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.Errors["email"] == "" {
			t.Fatalf("expected email field error, body=%s", string(body))
		}
	}

	// 4) u1 comenta al paciente
	var commentID string
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/comments", "u1", map[string]any{
			"content": "Follow-up needed",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 comment, got %d body=%s", st, string(body))
		}
		var out struct {
			ID           string `json:"id"`
			AuthorUserID string `json:"author_user_id"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.ID == "" {
			t.Fatalf("cannot read comment: %v body=%s", err, string(body))
		}
		if out.AuthorUserID != "u1" {
			t.Fatalf("expected author u1, got %q", out.AuthorUserID)
		}
		commentID = out.ID
	}

	// 5) El comentario aparece en el show con identidad del autor
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID, "u2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 show, got %d", st)
		}
		var out struct {
			Comments []struct {
				Content string `json:"content"`
				Author  struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"author"`
			} `json:"comments"`
		}
		if err := json.Unmarshal(body, &out); err != nil || len(out.Comments) != 1 {
			t.Fatalf("expected 1 comment, body=%s", string(body))
		}
		if out.Comments[0].Author.ID != "u1" || out.Comments[0].Author.Name != "Ana Li" {
			t.Fatalf("expected author identity, got %#v", out.Comments[0].Author)
		}
	}

	// 6) u2 intenta borrar el comentario de u1: rechazo blando, 200 + status=error
	{
		st, body := doReq(t, ts.URL, "DELETE", "/comments/"+commentID, "u2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 soft refusal, got %d body=%s", st, string(body))
		}
		var out struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.Status != "error" {
			t.Fatalf("expected status=error, body=%s", string(body))
		}

		// el comentario sigue ahí
		st, body = doReq(t, ts.URL, "GET", "/patients/"+patientID, "u1", nil)
		if st != http.StatusOK || !bytes.Contains(body, []byte("Follow-up needed")) {
			t.Fatalf("comment must be retained, body=%s", string(body))
		}
	}

	// 7) u1 (autor) sí puede borrarlo
	{
		st, body := doReq(t, ts.URL, "DELETE", "/comments/"+commentID, "u1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 author delete, got %d", st)
		}
		var out struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(body, &out); err != nil || out.Status != "success" {
			t.Fatalf("expected status=success, body=%s", string(body))
		}
	}

	// 8) u2 vuelve a comentar; borrar el paciente (u2, sin ownership) arrastra el comentario
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/comments", "u2", map[string]any{
			"content": "Segunda nota",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 comment, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "DELETE", "/patients/"+patientID, "u2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 patient delete by non-owner, got %d body=%s", st, string(body))
		}

		st, _ = doReq(t, ts.URL, "GET", "/patients/"+patientID, "u1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}

	// 9) Dashboard: la cascada dejó el registro vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", "u1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d", st)
		}
		var out struct {
			TotalPatients int `json:"total_patients"`
			TotalComments int `json:"total_comments"`
		}
		if err := json.Unmarshal(body, &out); err != nil {
			t.Fatalf("bad dashboard body: %v", err)
		}
		if out.TotalPatients != 0 || out.TotalComments != 0 {
			t.Fatalf("expected empty registry after cascade, got %#v", out)
		}
	}
}

func TestHTTP_RequiresAuth(t *testing.T) {
	ts := newTestServer(t, nil)

	paths := []struct {
		method, path string
	}{
		{"GET", "/patients"},
		{"POST", "/patients"},
		{"GET", "/dashboard"},
		{"DELETE", "/comments/x"},
	}
	for _, p := range paths {
		st, _ := doReq(t, ts.URL, p.method, p.path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("%s %s without user: expected 401, got %d", p.method, p.path, st)
		}
	}

	// health queda abierto
	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected open health, got %d", st)
	}
}

func TestHTTP_UpdateAndValidation(t *testing.T) {
	store := mem.NewStore()
	ts := newTestServer(t, store)

	patientID := createPatient(t, ts.URL, "u1", map[string]any{
		"name":  "Carla Ruiz",
		"email": "carla@example.com",
	})

	// PUT con la ficha completa, mismo email (auto-exclusión)
	{
		st, body := doReq(t, ts.URL, "PUT", "/patients/"+patientID, "u2", map[string]any{
			"name":          "Carla Ruiz",
			"email":         "carla@example.com",
			"phone":         "555-0101",
			"date_of_birth": "1985-03-15",
			"gender":        "female",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
	}

	// PATCH con gender inválido => 422
	{
		st, body := doReq(t, ts.URL, "PATCH", "/patients/"+patientID, "u1", map[string]any{
			"name":   "Carla Ruiz",
			"email":  "carla@example.com",
			"gender": "unknown",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d body=%s", st, string(body))
		}
	}

	// update de paciente inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/patients/nope", "u1", map[string]any{
			"name":  "X",
			"email": "x@example.com",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}

	// comentario vacío => 422; paciente inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/comments", "u1", map[string]any{
			"content": "   ",
		})
		if st != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422 empty content, got %d", st)
		}

		st, _ = doReq(t, ts.URL, "POST", "/patients/nope/comments", "u1", map[string]any{
			"content": "hola",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 absent patient, got %d", st)
		}
	}
}

func TestHTTP_ListPagination(t *testing.T) {
	store := mem.NewStore()
	ts := newTestServer(t, store)

	for i := 0; i < 12; i++ {
		createPatient(t, ts.URL, "u1", map[string]any{
			"name":  "Paciente",
			"email": string(rune('a'+i)) + "@example.com",
		})
	}

	st, body := doReq(t, ts.URL, "GET", "/patients?page=2&page_size=10", "u1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var out struct {
		Items    []any `json:"items"`
		Total    int   `json:"total"`
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	if out.Total != 12 || len(out.Items) != 2 || out.Page != 2 || out.PageSize != 10 {
		t.Fatalf("unexpected page: %#v", out)
	}
}
