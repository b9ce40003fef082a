package entity

// Roles válidos de una sesión.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Account es un usuario configurado (credenciales fijas por configuración).
type Account struct {
	UserID       string
	Username     string
	FullName     string
	PasswordHash string // bcrypt
	Role         string
}

// Session identidad explícita del operador autenticado; se pasa por referencia a los casos de uso.
type Session struct {
	UserID   string
	Username string
	FullName string
	Role     string
}

// IsAdmin indica si la sesión tiene rol admin.
func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

// CanManage indica si la sesión puede modificar o eliminar partners (admin o manager).
func (s *Session) CanManage() bool {
	return s != nil && (s.Role == RoleAdmin || s.Role == RoleManager)
}
