package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ContactNaturePerson     = "person"
	ContactNatureEnterprise = "enterprise"

	ContactTypeClient   = "client"
	ContactTypeSupplier = "fournisseur"
	ContactTypeBoth     = "both"

	ContactStatusActive = "Actif"
)

// Contact unifies clients and suppliers. Nature selects which of the two
// field groups below is meaningful: persons may belong to an enterprise
// contact and carry a position, enterprises carry the tax/registry ids.
type Contact struct {
	ID            uint   `gorm:"primaryKey"`
	ContactNature string `gorm:"size:20;not null;default:person;index"`
	ContactType   string `gorm:"size:20;not null;default:client;index"`
	Name          string `gorm:"size:100;not null"`
	Email         string `gorm:"size:120"`
	Phone         string `gorm:"size:20"`
	Address       string `gorm:"type:text"`
	Status        string `gorm:"size:20;not null;default:Actif"`
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	CreatedBy     *uint

	// enterprise
	MatriculeFiscal  string           `gorm:"size:50"`
	CodeTVA          string           `gorm:"column:code_tva;size:50"`
	CodeDouane       string           `gorm:"size:50"`
	RegistreCommerce string           `gorm:"size:50"`
	LegalForm        string           `gorm:"size:50"`
	Capital          *decimal.Decimal `gorm:"type:numeric"`
	Website          string           `gorm:"size:200"`

	// person
	EnterpriseID *uint    `gorm:"index"`
	Enterprise   *Contact `gorm:"foreignKey:EnterpriseID"`
	Position     string   `gorm:"size:100"`

	// carried over from the legacy client/supplier records
	ContactPerson string `gorm:"size:100"`
	Company       string `gorm:"size:100"`
	Speciality    string `gorm:"size:200"`
}

func (Contact) TableName() string { return "contacts" }

func (c *Contact) IsEnterprise() bool { return c.ContactNature == ContactNatureEnterprise }
