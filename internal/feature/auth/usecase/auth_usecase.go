package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"receitas_backend/internal/feature/auth/domain/entity"
	"receitas_backend/internal/shared/apperr"
)

const (
	// defaultMinSenhaLen is the fallback minimum password length.
	defaultMinSenhaLen = 3

	// defaultBcryptCost is the fallback bcrypt cost factor.
	defaultBcryptCost = bcrypt.DefaultCost
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// Options tunes the password policy. Zero values fall back to the defaults,
// so the struct can be filled straight from config.
type Options struct {
	// MinSenhaLen is the minimum accepted password length.
	MinSenhaLen int

	// BcryptCost is the bcrypt cost factor used when hashing passwords.
	BcryptCost int
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users       UserRepository
	sessions    SessionRepository
	minSenhaLen int
	bcryptCost  int
	validate    *validator.Validate
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, opts Options) *authUsecase {
	if opts.MinSenhaLen <= 0 {
		opts.MinSenhaLen = defaultMinSenhaLen
	}
	if opts.BcryptCost <= 0 {
		opts.BcryptCost = defaultBcryptCost
	}
	return &authUsecase{
		users:       users,
		sessions:    sessions,
		minSenhaLen: opts.MinSenhaLen,
		bcryptCost:  opts.BcryptCost,
		validate:    validator.New(),
	}
}

// SignUp registers a new user with a hashed password.
// Every violated field is reported at once via apperr.ValidationError.
// A duplicate email surfaces as ErrEmailAlreadyExists from the repository,
// backed by the storage-level unique index.
func (u *authUsecase) SignUp(ctx context.Context, nome, email, senha string) error {
	var msgs []string
	if strings.TrimSpace(nome) == "" {
		msgs = append(msgs, "nome é obrigatório")
	}
	if err := u.validate.Var(email, "required,email"); err != nil {
		msgs = append(msgs, "email inválido")
	}
	if len(senha) < u.minSenhaLen {
		msgs = append(msgs, fmt.Sprintf("senha deve ter pelo menos %d caracteres", u.minSenhaLen))
	}
	if len(msgs) > 0 {
		return &apperr.ValidationError{Messages: msgs}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Nome: nome, Email: email, Senha: string(hashed)}
	return u.users.Create(ctx, user)
}

// SignIn authenticates a user and issues an opaque session token on success.
// To mitigate timing attacks, a bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) SignIn(ctx context.Context, email, senha string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword always runs.
	senhaHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		senhaHash = user.Senha
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(senhaHash), []byte(senha))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.issue(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session: %w", err)
	}
	return token, nil
}

// issue generates a cryptographically random token and persists the session.
// Multiple concurrent sessions per user are allowed.
func (u *authUsecase) issue(ctx context.Context, userID uint) (string, error) {
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return session.Token, nil
}

// Resolve maps a bearer token to the user it authenticates.
// An absent or unknown token returns ErrSessionNotFound; tokens never expire,
// so a resolved token keeps resolving to the same user.
func (u *authUsecase) Resolve(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}
	session, err := u.sessions.FindByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	return session.UserID, nil
}
