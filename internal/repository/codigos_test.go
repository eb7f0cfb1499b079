package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProximoCodigoProveedor(t *testing.T) {
	assert.Equal(t, "0001", ProximoCodigoProveedor(""))
	assert.Equal(t, "0001", ProximoCodigoProveedor("  "))
	assert.Equal(t, "0002", ProximoCodigoProveedor("0001"))
	assert.Equal(t, "0043", ProximoCodigoProveedor("0042"))
	assert.Equal(t, "1000", ProximoCodigoProveedor("0999"))
}

func TestProximoCodigoEmpleado(t *testing.T) {
	assert.Equal(t, 1, ProximoCodigoEmpleado(0))
	assert.Equal(t, 8, ProximoCodigoEmpleado(7))
}

func TestProximoCodigoProducto(t *testing.T) {
	assert.Equal(t, "T000001", ProximoCodigoProducto(""))
	assert.Equal(t, "T000002", ProximoCodigoProducto("T000001"))
	assert.Equal(t, "T000124", ProximoCodigoProducto("T000123"))
	// Non-digit noise is stripped before parsing
	assert.Equal(t, "T000124", ProximoCodigoProducto(" T-000123 "))
	// Unparsable maximum restarts the sequence
	assert.Equal(t, "T000001", ProximoCodigoProducto("XXXX"))
}
