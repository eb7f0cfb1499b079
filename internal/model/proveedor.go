package model

// Proveedor represents a supplier. The primary key is application-assigned:
// a 4-character zero-padded sequential code ("0001", "0002", …) computed by
// the repository inside a transaction.
type Proveedor struct {
	CodProv   string `gorm:"column:cod_prov;type:char(4);primaryKey"`
	TipoDoc   string `gorm:"type:char(1)"`
	Documento string `gorm:"type:char(12);index"`
	Razon     string `gorm:"type:varchar(60);index"`
	Direccion string `gorm:"type:varchar(60)"`
	Telefono  string `gorm:"type:varchar(10)"`
	Email     string `gorm:"type:varchar(30)"`
	Eliminado bool   `gorm:"not null;default:false"`
}

func (Proveedor) TableName() string { return "proveedores" }
