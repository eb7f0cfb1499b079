package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// Next-code derivation for the entities whose primary keys are assigned by the
// application instead of the store. These are pure: the repositories call them
// inside a transaction and retry on duplicate-key, so two concurrent creates
// can never both commit the same code.

// maxIntentosCodigo bounds the insert-retry loop when a concurrent create wins
// the race for the same computed code.
const maxIntentosCodigo = 3

// ProximoCodigoProveedor derives the next 4-digit zero-padded supplier code
// from the current maximum. Empty or unparsable input starts the sequence at
// "0001".
func ProximoCodigoProveedor(ultimo string) string {
	n, _ := strconv.Atoi(strings.TrimSpace(ultimo))
	return fmt.Sprintf("%04d", n+1)
}

// ProximoCodigoEmpleado derives the next employee code; zero means the table
// is empty and the sequence starts at 1.
func ProximoCodigoEmpleado(ultimo int) int {
	return ultimo + 1
}

// ProximoCodigoProducto derives the next product code from the current maximum
// ("T000123" → "T000124"). All non-digit characters are stripped before
// parsing; an empty or unparsable maximum starts the sequence at "T000001".
func ProximoCodigoProducto(ultimo string) string {
	var digitos strings.Builder
	for _, r := range ultimo {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digitos.String())
	if err != nil {
		n = 0
	}
	return fmt.Sprintf("T%06d", n+1)
}
