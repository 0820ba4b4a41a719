package auth

import (
	"errors"
	"time"

	"github.com/tu-usuario/survey-pro/internal/application/dto"
	"github.com/tu-usuario/survey-pro/internal/domain"
	"github.com/tu-usuario/survey-pro/internal/domain/entity"
	"github.com/tu-usuario/survey-pro/internal/domain/repository"
	"github.com/tu-usuario/survey-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros del autenticador: firma de tokens y costo de hashing.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	BcryptCost int
}

// AuthUseCase casos de uso de autenticación: login y aprovisionamiento de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg Config) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica username/password y emite un JWT con la identidad embebida.
// Usuario inexistente, password incorrecto y cuenta inactiva devuelven el
// mismo domain.ErrInvalidCredentials: la respuesta no distingue la causa.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación dummy para igualar el tiempo de respuesta entre
		// usuario inexistente y password incorrecto.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$000000000000000000000uGyUvPMYXYRSarpWFRbLrX4ax1fJW2fm"), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != "active" {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Username, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Register aprovisiona un usuario: hashea el password con bcrypt y persiste.
// Devuelve domain.ErrUsernameTaken si el username ya existe y
// domain.ErrInvalidInput si el rol no es válido.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// EnsureDefaultAdmin aprovisiona el admin inicial si no existe. Es idempotente:
// si el username ya está registrado no hace nada. Devuelve true si creó la cuenta,
// para que el arranque pueda advertir cuando el password por defecto queda activo.
func (uc *AuthUseCase) EnsureDefaultAdmin(username, password string) (bool, error) {
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.Register(dto.RegisterRequest{
		Username: username,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		// Carrera con otra instancia arrancando a la vez: otro ya lo creó.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListUsers lista usuarios para la vista de administración.
func (uc *AuthUseCase) ListUsers(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
