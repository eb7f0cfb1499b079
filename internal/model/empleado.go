package model

// TipoEmpleado is the reference list of employee types.
type TipoEmpleado struct {
	IDTipo      int    `gorm:"column:id_tipo;primaryKey;autoIncrement"`
	Descripcion string `gorm:"type:varchar(50);not null"`
}

func (TipoEmpleado) TableName() string { return "tipo_empleado" }

// Empleado represents an employee. The code is application-assigned
// (COALESCE(MAX(codemp),0)+1); Tipo is an optional reference to TipoEmpleado.
type Empleado struct {
	Codemp    int    `gorm:"column:codemp;primaryKey;autoIncrement:false"`
	Documento string `gorm:"type:char(12);index"`
	Nombre    string `gorm:"type:varchar(50);index"`
	Celular   string `gorm:"type:varchar(10)"`
	Tipo      *int   `gorm:"column:tipo"`
	Direccion string `gorm:"type:varchar(60)"`
	Email     string `gorm:"type:varchar(100)"`
	Activo    bool   `gorm:"not null;default:true"`

	TipoEmpleado *TipoEmpleado `gorm:"foreignKey:Tipo;references:IDTipo"`
}

func (Empleado) TableName() string { return "empleados" }
