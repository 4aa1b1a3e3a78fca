package idp

import (
	"context"

	"github.com/parasuram-clad/hrsuite-core/identity"
	interrors "github.com/parasuram-clad/hrsuite-core/internal/errors"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Shared sentinels re-exported so callers only import this package.
var (
	ErrInvalidCredentials = interrors.ErrInvalidCredentials
	ErrAccountBlocked     = interrors.ErrAccountBlocked
)

// Account is a directory entry: the identity the session core consumes
// plus the authentication material that never leaves this package.
type Account struct {
	Identity     identity.Identity
	PasswordHash string
	Blocked      bool
}

// DirectoryRepo is the account store behind the password provider.
type DirectoryRepo interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Upsert(ctx context.Context, account *Account) error
}

// PasswordProvider authenticates email/password credentials against the
// directory and yields the Identity handed to the session.
type PasswordProvider struct {
	repo DirectoryRepo
}

func NewPasswordProvider(repo DirectoryRepo) (*PasswordProvider, error) {
	if repo == nil {
		return nil, errors.New("[NewPasswordProvider] directory repo is required")
	}
	return &PasswordProvider{repo: repo}, nil
}

// Authenticate verifies the credentials and returns the account's identity.
// A missing account and a wrong password are indistinguishable to callers.
func (p *PasswordProvider) Authenticate(ctx context.Context, email, password string) (*identity.Identity, error) {
	account, err := p.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidCredentials, "[Authenticate] lookup")
	}
	if account.Blocked {
		return nil, ErrAccountBlocked
	}
	if !CheckPasswordHash(password, account.PasswordHash) {
		return nil, errors.Wrap(ErrInvalidCredentials, "[Authenticate] password mismatch")
	}
	id := account.Identity
	return &id, nil
}

// HashPassword returns the bcrypt hash stored on an Account.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash checks a password against a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
