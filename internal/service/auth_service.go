package service

import (
	"context"
	"errors"

	"github.com/Odenfis/taytaApp/internal/dto"
	"github.com/Odenfis/taytaApp/internal/repository"
	"github.com/Odenfis/taytaApp/internal/session"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login verifies credentials and opens a session; it returns the session
	// identifier to be set as the cookie value.
	Login(ctx context.Context, req dto.LoginRequest) (string, *dto.Principal, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	repo     repository.UsuarioRepository
	sesiones *session.Store
}

func NewAuthService(repo repository.UsuarioRepository, sesiones *session.Store) AuthService {
	return &authService{repo: repo, sesiones: sesiones}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, *dto.Principal, error) {
	user, err := s.repo.FindByUsername(ctx, req.Usuario)
	if err != nil {
		return "", nil, errors.New("usuario o contraseña incorrectos")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.ClaveHash), []byte(req.Clave)); err != nil {
		return "", nil, errors.New("usuario o contraseña incorrectos")
	}

	principal := dto.Principal{
		ID:             user.ID,
		Usuario:        user.Usuario,
		NombreCompleto: user.NombreCompleto,
		Rol:            user.Rol,
	}
	id, err := s.sesiones.Create(ctx, principal)
	if err != nil {
		return "", nil, err
	}
	return id, &principal, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sesiones.Destroy(ctx, sessionID)
}
