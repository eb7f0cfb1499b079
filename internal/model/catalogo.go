package model

// Linea is a product line, the top level of the catalog hierarchy.
type Linea struct {
	CodLinea int    `gorm:"column:cod_linea;primaryKey;autoIncrement"`
	Nombre   string `gorm:"type:varchar(50);index;not null"`
	Activo   bool   `gorm:"not null;default:true"`
}

func (Linea) TableName() string { return "lineas" }

// Clase is a product class; every class belongs to exactly one line.
type Clase struct {
	CodClase int    `gorm:"column:cod_clase;primaryKey;autoIncrement"`
	Nombre   string `gorm:"type:varchar(50);index;not null"`
	CodLinea int    `gorm:"column:cod_linea;not null;index"`
	Activo   bool   `gorm:"not null;default:true"`

	Linea *Linea `gorm:"foreignKey:CodLinea;references:CodLinea"`
}

func (Clase) TableName() string { return "clases" }
