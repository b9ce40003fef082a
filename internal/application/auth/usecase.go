package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
	"github.com/jhoicas/carry-ledger-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra las cuentas configuradas.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/contraseña, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID:   account.UserID,
		Username: account.Username,
		FullName: account.FullName,
		Role:     account.Role,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      ToUserResponse(account),
	}, nil
}

// Accounts lista las cuentas configuradas (página de usuarios, solo admin).
func (uc *AuthUseCase) Accounts(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToUserResponse(a))
	}
	return out, nil
}

// SessionFromIdentity reconstruye la sesión a partir del token validado.
func SessionFromIdentity(id jwt.Identity) *entity.Session {
	return &entity.Session{UserID: id.UserID, Username: id.Username, FullName: id.FullName, Role: id.Role}
}

// ToUserResponse proyecta la cuenta sin credenciales.
func ToUserResponse(a *entity.Account) dto.UserResponse {
	return dto.UserResponse{ID: a.UserID, Username: a.Username, FullName: a.FullName, Role: a.Role}
}
