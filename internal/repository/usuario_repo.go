package repository

import (
	"context"

	"github.com/Odenfis/taytaApp/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	FindByUsername(ctx context.Context, usuario string) (*model.Usuario, error)
	FindByID(ctx context.Context, id int) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) FindByUsername(ctx context.Context, usuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("usuario = ? AND activo = true", usuario).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id int) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}
