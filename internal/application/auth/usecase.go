package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/superandes-api/internal/application/dto"
	"github.com/jhoicas/superandes-api/internal/domain"
	"github.com/jhoicas/superandes-api/internal/domain/entity"
	"github.com/jhoicas/superandes-api/internal/domain/repository"
	"github.com/jhoicas/superandes-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	userRepo repository.UserRepository
	seq      repository.Sequence
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, seq repository.Sequence, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, seq: seq, jwtCfg: jwtCfg}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleCashier:
		return true
	}
	return false
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el email ya está registrado.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if strings.TrimSpace(in.Email) == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCashier
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id, err := uc.seq.NextID()
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           id,
		Email:        in.Email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password, genera JWT y retorna token + rol.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Email: user.Email, Role: user.Role}, nil
}
