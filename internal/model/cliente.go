package model

import "time"

// Cliente represents a customer identified by a DB-assigned sequential code.
type Cliente struct {
	Codclie   int    `gorm:"column:codclie;primaryKey;autoIncrement"`
	TipoDoc   string `gorm:"type:char(1)"`
	Documento string `gorm:"type:varchar(12);index"`
	Razon     string `gorm:"type:varchar(200);index"`
	Direccion string `gorm:"type:varchar(200)"`
	Celular   string `gorm:"type:varchar(10)"`
	Email     string `gorm:"type:varchar(100)"`
	Activo    bool   `gorm:"not null;default:true"`
	Fecha     time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Cliente) TableName() string { return "clientes" }
