package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carry-ledger-api/internal/domain/entity"
	"github.com/jhoicas/carry-ledger-api/internal/domain/repository"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
)

var _ repository.UserRepository = (*AccountRepository)(nil)

// AccountRepository cuentas fijas leídas de configuración; las contraseñas se guardan con bcrypt.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*entity.Account
}

// NewAccountRepository hashea las credenciales configuradas (admin y staff).
func NewAccountRepository(cfg config.AuthConfig) (*AccountRepository, error) {
	seeds := []struct {
		id, username, fullName, password, role string
	}{
		{"1", cfg.AdminUser, "ADMINISTRATOR", cfg.AdminPassword, entity.RoleAdmin},
		{"2", cfg.StaffUser, "STAFF OPERATOR", cfg.StaffPassword, entity.RoleStaff},
	}
	repo := &AccountRepository{}
	for _, s := range seeds {
		if s.username == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password %s: %w", s.username, err)
		}
		repo.accounts = append(repo.accounts, &entity.Account{
			UserID:       s.id,
			Username:     strings.ToLower(s.username),
			FullName:     s.fullName,
			PasswordHash: string(hash),
			Role:         s.role,
		})
	}
	return repo, nil
}

// FindByUsername busca sin distinguir mayúsculas. nil, nil si no existe.
func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	username = strings.ToLower(strings.TrimSpace(username))
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las cuentas configuradas.
func (r *AccountRepository) List(_ context.Context) ([]*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}
