package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are emitted as JSON numbers, matching what the frontend expects.
	decimal.MarshalJSONWithoutQuotes = true
}

// MessageResponse is the body of every mutation that has nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id,omitempty"`
}

// OptionalAmount decodes null, "", a JSON number or a numeric string.
// Empty input yields a nil Value.
type OptionalAmount struct {
	Value *decimal.Decimal
}

func (o *OptionalAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		o.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

func (o OptionalAmount) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return o.Value.MarshalJSON()
}

// NullableID tells an absent key (Set false) from an explicit null
// (Set true, Value nil).
type NullableID struct {
	Set   bool
	Value *uint
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// LineItemInput is one product line of a stand or a purchase. The line
// total is always computed server-side.
type LineItemInput struct {
	ProductID uint            `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	Days      int             `json:"days"       validate:"omitempty,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
}

// SendDocumentRequest overrides the recipient of an emailed document.
type SendDocumentRequest struct {
	To string `json:"to" validate:"omitempty,email"`
}
