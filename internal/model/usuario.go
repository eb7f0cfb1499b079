package model

// Usuario stores system users. Rol is free-form ("administrador", "vendedor", …);
// routes do not branch on it but the session principal carries it to the UI.
type Usuario struct {
	ID             int    `gorm:"primaryKey;autoIncrement"`
	Usuario        string `gorm:"type:varchar(30);uniqueIndex;not null"`
	NombreCompleto string `gorm:"type:varchar(100);not null"`
	ClaveHash      string `gorm:"type:varchar(100);not null"`
	Rol            string `gorm:"type:varchar(20);not null"`
	Activo         bool   `gorm:"not null;default:true"`
}

func (Usuario) TableName() string { return "usuarios" }
