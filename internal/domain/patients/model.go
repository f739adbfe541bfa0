package patients

import "time"

// Gender define los valores aceptados para el campo gender.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient representa una ficha de paciente registrada en el sistema.
// OwnerUserID es el usuario que la creó; se registra pero no restringe
// edición/borrado (ver notas de diseño).
type Patient struct {
	ID          string
	OwnerUserID string

	Name  string
	Email string // único entre pacientes
	Phone string

	DateOfBirth *time.Time
	Gender      Gender

	Address        string
	MedicalHistory string

	CreatedAt time.Time
	UpdatedAt time.Time
}
