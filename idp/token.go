package idp

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/parasuram-clad/hrsuite-core/identity"
	interrors "github.com/parasuram-clad/hrsuite-core/internal/errors"
	"github.com/pkg/errors"
)

var (
	ErrInvalidToken = interrors.ErrInvalidToken
	ErrTokenExpired = interrors.ErrTokenExpired
)

// Claims is the JWT payload carrying an Identity between requests.
type Claims struct {
	jwt.RegisteredClaims
	Name        string        `json:"name,omitempty"`
	Email       string        `json:"email,omitempty"`
	Role        identity.Role `json:"role,omitempty"`
	EmployeeID  string        `json:"employee_id,omitempty"`
	Department  string        `json:"department,omitempty"`
	Designation string        `json:"designation,omitempty"`
	SuperAdmin  bool          `json:"super_admin,omitempty"`
}

// TokenCodec issues and parses the signed HS256 session token the HTTP
// facade stores in the session cookie.
type TokenCodec struct {
	secret  []byte
	ttl     time.Duration
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// TokenCodecOption modifies a TokenCodec at construction time.
type TokenCodecOption func(*TokenCodec)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) TokenCodecOption {
	return func(tc *TokenCodec) {
		tc.nowTime = nowFunc
	}
}

func NewTokenCodec(secret []byte, ttl time.Duration, options ...TokenCodecOption) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, errors.New("[NewTokenCodec] secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("[NewTokenCodec] ttl must be positive")
	}
	tc := &TokenCodec{secret: secret, ttl: ttl, nowTime: time.Now}
	for _, opt := range options {
		opt(tc)
	}
	return tc, nil
}

// Issue signs a token for the identity.
func (tc *TokenCodec) Issue(id identity.Identity) (string, error) {
	now := tc.nowTime()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   id.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
		Name:        id.Name,
		Email:       id.Email,
		Role:        id.Role,
		EmployeeID:  id.EmployeeID,
		Department:  id.Department,
		Designation: id.Designation,
		SuperAdmin:  id.SuperAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", errors.Wrap(err, "[Issue] signing failed")
	}
	return signed, nil
}

// Parse validates the token and reconstructs the Identity it carries.
func (tc *TokenCodec) Parse(tokenString string) (*identity.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tc.secret, nil
	}, jwt.WithTimeFunc(tc.nowTime))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &identity.Identity{
		ID:          claims.Subject,
		Name:        claims.Name,
		Email:       claims.Email,
		Role:        claims.Role,
		EmployeeID:  claims.EmployeeID,
		Department:  claims.Department,
		Designation: claims.Designation,
		SuperAdmin:  claims.SuperAdmin,
	}, nil
}
