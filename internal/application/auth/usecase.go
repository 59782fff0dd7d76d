package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	pkgjwt "github.com/credimovil/backoffice-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase maneja registro y login de usuarios del back-office.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con la contraseña hasheada (bcrypt) y devuelve un
// token de sesión.
func (uc *UseCase) Register(ctx context.Context, email, name, password, role string) (token string, err error) {
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// Login verifica credenciales y devuelve token y rol.
func (uc *UseCase) Login(ctx context.Context, email, password string) (token, role string, err error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", domain.ErrUnauthorized
	}
	token, err = pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ListUsers lista usuarios con paginación (solo lectura, ruta admin).
func (uc *UseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return uc.userRepo.List(ctx, limit, offset)
}
