package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateContactRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	Email         string `json:"email"          validate:"omitempty,email,max=120"`
	Phone         string `json:"phone"          validate:"max=20"`
	Address       string `json:"address"`
	ContactType   string `json:"contact_type"   validate:"omitempty,oneof=client fournisseur supplier both"`
	ContactNature string `json:"contact_nature" validate:"omitempty,oneof=person enterprise"`
	Status        string `json:"status"         validate:"max=20"`
	Notes         string `json:"notes"`

	MatriculeFiscal  string         `json:"matricule_fiscal"  validate:"max=50"`
	CodeTVA          string         `json:"code_tva"          validate:"max=50"`
	CodeDouane       string         `json:"code_douane"       validate:"max=50"`
	RegistreCommerce string         `json:"registre_commerce" validate:"max=50"`
	LegalForm        string         `json:"legal_form"        validate:"max=50"`
	Capital          OptionalAmount `json:"capital"`
	Website          string         `json:"website"           validate:"max=200"`

	EnterpriseID *uint  `json:"enterprise_id"`
	Position     string `json:"position" validate:"max=100"`

	ContactPerson string `json:"contact_person" validate:"max=100"`
	Company       string `json:"company"        validate:"max=100"`
	Speciality    string `json:"speciality"     validate:"max=200"`
}

// UpdateContactRequest only touches the fields present in the body.
type UpdateContactRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email"          validate:"omitempty,email,max=120"`
	Phone         *string `json:"phone"          validate:"omitempty,max=20"`
	Address       *string `json:"address"`
	ContactType   *string `json:"contact_type"   validate:"omitempty,oneof=client fournisseur supplier both"`
	ContactNature *string `json:"contact_nature" validate:"omitempty,oneof=person enterprise"`
	Status        *string `json:"status"         validate:"omitempty,max=20"`
	Notes         *string `json:"notes"`

	MatriculeFiscal  *string         `json:"matricule_fiscal"`
	CodeTVA          *string         `json:"code_tva"`
	CodeDouane       *string         `json:"code_douane"`
	RegistreCommerce *string         `json:"registre_commerce"`
	LegalForm        *string         `json:"legal_form"`
	Capital          *OptionalAmount `json:"capital"`
	Website          *string         `json:"website"`

	EnterpriseID *uint   `json:"enterprise_id"`
	Position     *string `json:"position"`

	ContactPerson *string `json:"contact_person"`
	Company       *string `json:"company"`
	Speciality    *string `json:"speciality"`
}

// ContactFilter narrows GET /api/contacts. "all" or empty disables a filter.
type ContactFilter struct {
	Type   string `form:"type"`
	Nature string `form:"nature"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ContactResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	ContactType   string     `json:"contact_type"`
	ContactNature string     `json:"contact_nature"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     *time.Time `json:"created_at"`

	ContactPerson string `json:"contact_person"`
	Company       string `json:"company"`
	Speciality    string `json:"speciality"`

	// Exactly one of these is set, depending on the contact nature.
	*EnterpriseDetails
	*PersonDetails
}

type EnterpriseDetails struct {
	MatriculeFiscal  string           `json:"matricule_fiscal"`
	CodeTVA          string           `json:"code_tva"`
	CodeDouane       string           `json:"code_douane"`
	RegistreCommerce string           `json:"registre_commerce"`
	LegalForm        string           `json:"legal_form"`
	Capital          *decimal.Decimal `json:"capital"`
	Website          string           `json:"website"`
	EmployeesCount   int64            `json:"employees_count"`
}

type PersonDetails struct {
	EnterpriseID   *uint   `json:"enterprise_id"`
	Position       string  `json:"position"`
	EnterpriseName *string `json:"enterprise_name"`
}

type EmployeeResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BackfillResult reports what the one-time contacts backfill did.
type BackfillResult struct {
	Clients   int `json:"clients"`
	Suppliers int `json:"suppliers"`
	Merged    int `json:"merged"`
	Skipped   int `json:"skipped"`
}
