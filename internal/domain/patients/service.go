package patients

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("patient not found")

	// ErrEmailTaken lo devuelven los repos cuando el store rechaza el email
	// por unicidad. El service lo traduce al mismo ValidationError que
	// produciría la validación de campos.
	ErrEmailTaken = errors.New("email already taken")
)

// ValidationError acumula mensajes por campo. Sin escritura parcial:
// si hay algún campo inválido no se toca el store.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const (
	maxNameLen  = 255
	maxPhoneLen = 20

	dateLayout = "2006-01-02"

	msgRequired     = "is required"
	msgEmailInvalid = "must be a valid email address"
	msgEmailTaken   = "has already been taken"
	msgDateInvalid  = "must be a valid date (YYYY-MM-DD)"
	msgGenderOneOf  = "must be one of: male, female, other"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input es la ficha completa tal como llega del caller. Create y Update
// validan lo mismo (full replace, como el recurso original).
type Input struct {
	Name           string
	Email          string
	Phone          string
	DateOfBirth    string // YYYY-MM-DD, opcional
	Gender         string // male|female|other, opcional
	Address        string
	MedicalHistory string
}

// validate aplica todas las reglas y junta los errores por campo.
// Devuelve también el date_of_birth ya parseado para no parsear dos veces.
func validate(in Input) (*time.Time, *ValidationError) {
	fields := map[string]string{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fields["name"] = msgRequired
	} else if len(name) > maxNameLen {
		fields["name"] = fmt.Sprintf("must not be longer than %d characters", maxNameLen)
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = msgRequired
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = msgEmailInvalid
	}

	if phone := strings.TrimSpace(in.Phone); len(phone) > maxPhoneLen {
		fields["phone"] = fmt.Sprintf("must not be longer than %d characters", maxPhoneLen)
	}

	var dob *time.Time
	if s := strings.TrimSpace(in.DateOfBirth); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			fields["date_of_birth"] = msgDateInvalid
		} else {
			dob = &t
		}
	}

	if g := strings.TrimSpace(in.Gender); g != "" {
		switch Gender(g) {
		case GenderMale, GenderFemale, GenderOther:
		default:
			fields["gender"] = msgGenderOneOf
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return dob, nil
}

func emailTakenError() *ValidationError {
	return &ValidationError{Fields: map[string]string{"email": msgEmailTaken}}
}

func (s *Service) Create(ctx context.Context, actorUserID string, in Input) (Patient, error) {
	if strings.TrimSpace(actorUserID) == "" {
		return Patient{}, &ValidationError{Fields: map[string]string{"user": msgRequired}}
	}

	dob, verr := validate(in)
	if verr != nil {
		return Patient{}, verr
	}

	now := s.now()
	p := Patient{
		ID:             uuid.NewString(),
		OwnerUserID:    actorUserID,
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		DateOfBirth:    dob,
		Gender:         Gender(strings.TrimSpace(in.Gender)),
		Address:        strings.TrimSpace(in.Address),
		MedicalHistory: strings.TrimSpace(in.MedicalHistory),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Patient{}, emailTakenError()
		}
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve una página de pacientes en orden de creación más el total.
// page < 1 => 1; pageSize fuera de [1,100] => default 10.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]Patient, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return s.repo.List(ctx, page, pageSize)
}

// Update valida la ficha completa y la reemplaza. La unicidad de email
// excluye al propio registro (puede conservar su email sin cambio).
// Sin restricción de ownership: cualquier usuario autenticado puede editar.
func (s *Service) Update(ctx context.Context, id string, in Input) (Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Patient{}, ErrNotFound
	}

	dob, verr := validate(in)
	if verr != nil {
		return Patient{}, verr
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	updated := current
	updated.Name = strings.TrimSpace(in.Name)
	updated.Email = strings.TrimSpace(in.Email)
	updated.Phone = strings.TrimSpace(in.Phone)
	updated.DateOfBirth = dob
	updated.Gender = Gender(strings.TrimSpace(in.Gender))
	updated.Address = strings.TrimSpace(in.Address)
	updated.MedicalHistory = strings.TrimSpace(in.MedicalHistory)
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Patient{}, emailTakenError()
		}
		return Patient{}, err
	}
	return updated, nil
}

// Delete elimina el paciente junto con todos sus comentarios (cascada
// atómica en el repo). Sin restricción de ownership, como Update.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
