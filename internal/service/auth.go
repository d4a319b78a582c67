package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/Skotchmaster/petcute_backend/internal/hash"
	"github.com/Skotchmaster/petcute_backend/internal/logging"
	"github.com/Skotchmaster/petcute_backend/internal/models"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
)

var (
	// ErrInvalidCredentials is deliberately the only error a failed login
	// produces, whether the account is missing or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

const (
	tokenLength   = 40
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenName     = "auth-token"
)

type AuthService struct {
	Repo *repo.GormRepo
}

type LoginResult struct {
	Token string
	User  *models.User
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register failed", "reason", "duplicate email")
			return nil, repo.ErrDuplicateEmail
		}
		return nil, err
	}

	l.Info("user registered", "user_id", user.ID)
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			// Burn a bcrypt round so a missing account takes as long
			// as a wrong password.
			hash.CheckDummy(password)
			l.Warn("login failed")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed")
		return nil, ErrInvalidCredentials
	}

	plain, err := newOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	token := models.AccessToken{
		UserID:    user.ID,
		Name:      tokenName,
		TokenHash: Sha256Hex(plain),
		Abilities: "*",
	}
	if err := s.Repo.IssueToken(ctx, &token); err != nil {
		return nil, err
	}

	l.Info("user logged in", "user_id", user.ID)
	return &LoginResult{
		Token: fmt.Sprintf("%d|%s", user.ID, plain),
		User:  user,
	}, nil
}

// Resolve authenticates a presented "{id}|{opaque}" credential. The id
// prefix is a routing hint only: the decision rests on the digest lookup
// plus the owner check.
func (s *AuthService) Resolve(ctx context.Context, credential string) (*models.User, *models.AccessToken, error) {
	idHint, plain, found := strings.Cut(credential, "|")
	if !found || plain == "" {
		return nil, nil, ErrUnauthenticated
	}

	ownerID, err := strconv.ParseUint(idHint, 10, 64)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}

	digest := Sha256Hex(plain)
	token, err := s.Repo.FindTokenByHash(ctx, digest)
	if err != nil {
		if errors.Is(err, repo.ErrTokenNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, err
	}

	if token.UserID != uint(ownerID) {
		return nil, nil, ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(token.TokenHash), []byte(digest)) != 1 {
		return nil, nil, ErrUnauthenticated
	}

	user, err := s.Repo.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, err
	}

	return user, token, nil
}

// Logout revokes the presented token only, other sessions of the same
// user stay valid.
func (s *AuthService) Logout(ctx context.Context, token *models.AccessToken) error {
	return s.Repo.RevokeToken(ctx, token.ID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newOpaqueToken() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	b := make([]byte, tokenLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
