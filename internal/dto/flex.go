package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The legacy UI submits form-shaped JSON: numbers may arrive as strings,
// checkboxes as "on", and numeric fields may be missing entirely. The types
// below centralize that coercion so handlers and services stay typed.

// Bandera is a tolerant boolean. Bare true, bare 1, "on" and "true" decode to
// true; every other value decodes to false. The string "1" is falsy: the
// legacy checkbox comparison was strict about the numeric form, and quoting a
// number must not flip a flag on.
type Bandera bool

func (b *Bandera) UnmarshalJSON(data []byte) error {
	tok := bytes.TrimSpace(data)
	if len(tok) > 0 && tok[0] == '"' {
		s := strings.Trim(string(tok), `"`)
		*b = s == "on" || s == "true"
		return nil
	}
	s := string(tok)
	*b = s == "true" || s == "1"
	return nil
}

// Monto is a decimal amount that decodes from a JSON number or numeric string.
// Absent, null, empty and non-numeric inputs all normalize to zero — a bad
// weight or stock figure must not fail the whole request.
type Monto struct {
	decimal.Decimal
}

func (m *Monto) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// Codigo is a required integer reference that also accepts its JSON string
// encoding ("12"). Non-numeric input is a coercion failure and rejects the
// request with a validation error rather than a server fault.
type Codigo int

func (c *Codigo) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %q", s)
	}
	*c = Codigo(n)
	return nil
}

func (c Codigo) Int() int { return int(c) }

// CodigoNulo is an optional Codigo: null, absent and "" decode to no value,
// anything else must be numeric.
type CodigoNulo struct {
	Valido bool
	Valor  int
}

func (c *CodigoNulo) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*c = CodigoNulo{}
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %q", s)
	}
	*c = CodigoNulo{Valido: true, Valor: n}
	return nil
}

// Ptr returns the value as *int for nullable model columns.
func (c CodigoNulo) Ptr() *int {
	if !c.Valido {
		return nil
	}
	v := c.Valor
	return &v
}
