package patients

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Patient
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Patient{}}
}

func (r *testRepo) emailTaken(email, selfID string) bool {
	for _, p := range r.byID {
		if p.ID != selfID && strings.EqualFold(p.Email, email) {
			return true
		}
	}
	return false
}

func (r *testRepo) Create(ctx context.Context, p Patient) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	if r.emailTaken(p.Email, p.ID) {
		return ErrEmailTaken
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, page, pageSize int) ([]Patient, int, error) {
	all := make([]Patient, 0, len(r.byID))
	for _, p := range r.byID {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	total := len(all)
	start := (page - 1) * pageSize
	if start >= total {
		return []Patient{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *testRepo) Update(ctx context.Context, p Patient) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	if r.emailTaken(p.Email, p.ID) {
		return ErrEmailTaken
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func validInput() Input {
	return Input{
		Name:  "Ana Li",
		Email: "ana@example.com",
	}
}

func TestService_Create_RoundTrip(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	created, err := svc.Create(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if created.OwnerUserID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", created.OwnerUserID)
	}
	if created.CreatedAt != now || created.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got != created {
		t.Fatalf("round-trip mismatch: %#v vs %#v", got, created)
	}
	// opcionales quedan en cero
	if got.Phone != "" || got.Gender != "" || got.DateOfBirth != nil {
		t.Fatalf("expected empty optional fields, got %#v", got)
	}
}

func TestService_Create_FieldValidation(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*Input)
		field string
	}{
		{"name required", func(in *Input) { in.Name = "  " }, "name"},
		{"name too long", func(in *Input) { in.Name = strings.Repeat("a", 256) }, "name"},
		{"email required", func(in *Input) { in.Email = "" }, "email"},
		{"email invalid", func(in *Input) { in.Email = "not-an-email" }, "email"},
		{"phone too long", func(in *Input) { in.Phone = strings.Repeat("9", 21) }, "phone"},
		{"dob invalid", func(in *Input) { in.DateOfBirth = "31-12-1990" }, "date_of_birth"},
		{"dob impossible", func(in *Input) { in.DateOfBirth = "1990-02-30" }, "date_of_birth"},
		{"gender unknown", func(in *Input) { in.Gender = "x" }, "gender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewService(repo)

			in := validInput()
			tc.mod(&in)

			_, err := svc.Create(context.Background(), "user-1", in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %#v", tc.field, verr.Fields)
			}
			if len(repo.byID) != 0 {
				t.Fatalf("expected no partial write")
			}
		})
	}
}

func TestService_Create_AccumulatesFieldErrors(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "user-1", Input{
		Name:   "",
		Email:  "bad",
		Gender: "?",
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"name", "email", "gender"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Fatalf("expected error on %q, got %#v", f, verr.Fields)
		}
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "user-1", validInput()); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := svc.Create(context.Background(), "user-2", validInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError on duplicate email, got %v", err)
	}
	if verr.Fields["email"] == "" {
		t.Fatalf("expected email field error, got %#v", verr.Fields)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected exactly one patient in store, got %d", len(repo.byID))
	}
}

func TestService_Create_ParsesOptionalFields(t *testing.T) {
	svc := NewService(newTestRepo())

	in := validInput()
	in.Phone = "555-0100"
	in.DateOfBirth = "1990-12-31"
	in.Gender = "female"
	in.Address = "Av. Siempre Viva 742"
	in.MedicalHistory = "none"

	p, err := svc.Create(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.DateOfBirth == nil || p.DateOfBirth.Format("2006-01-02") != "1990-12-31" {
		t.Fatalf("expected parsed date_of_birth, got %v", p.DateOfBirth)
	}
	if p.Gender != GenderFemale {
		t.Fatalf("expected gender female, got %q", p.Gender)
	}
}

func TestService_Update_KeepsOwnEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// mismo email, otro nombre: la auto-exclusión debe dejar pasar
	in := validInput()
	in.Name = "Ana Li Updated"

	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("Update with own email returned error: %v", err)
	}
	if updated.Name != "Ana Li Updated" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.OwnerUserID != "user-1" {
		t.Fatalf("owner must not change on update")
	}
}

func TestService_Update_RejectsTakenEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "user-1", validInput()); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	other := validInput()
	other.Email = "otro@example.com"
	p2, err := svc.Create(context.Background(), "user-1", other)
	if err != nil {
		t.Fatalf("Create #2 error: %v", err)
	}

	in := validInput() // email de p1
	_, err = svc.Update(context.Background(), p2.ID, in)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["email"] == "" {
		t.Fatalf("expected email ValidationError, got %v", err)
	}

	// p2 no debe haber cambiado
	got, _ := svc.GetByID(context.Background(), p2.ID)
	if got.Email != "otro@example.com" {
		t.Fatalf("expected p2 untouched, got email %q", got.Email)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_List_ClampsPaging(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		svc.now = func() time.Time { return tick }
		in := validInput()
		in.Email = string(rune('a'+i)) + "@example.com"
		if _, err := svc.Create(context.Background(), "user-1", in); err != nil {
			t.Fatalf("Create #%d error: %v", i, err)
		}
	}

	items, total, err := svc.List(context.Background(), 0, -5)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("expected 3/3 with clamped defaults, got %d/%d", len(items), total)
	}

	items, total, err = svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List page 2 error: %v", err)
	}
	if total != 3 || len(items) != 1 {
		t.Fatalf("expected 1 item on page 2, got %d (total %d)", len(items), total)
	}
}
