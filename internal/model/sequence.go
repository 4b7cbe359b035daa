package model

// Sequence names used for human-readable document numbers.
const (
	SequencePurchase = "purchase"
	SequenceInvoice  = "invoice"
)

// DocumentSequence is a per-prefix monotonic counter. Value is the last
// number handed out.
type DocumentSequence struct {
	Name  string `gorm:"primaryKey;size:40"`
	Value int64  `gorm:"not null;default:0"`
}

func (DocumentSequence) TableName() string { return "document_sequences" }

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Contact{},
		&Client{},
		&Supplier{},
		&Category{},
		&Product{},
		&Stand{},
		&StandItem{},
		&Purchase{},
		&PurchaseItem{},
		&Invoice{},
		&InvoiceItem{},
		&DocumentSequence{},
	}
}
