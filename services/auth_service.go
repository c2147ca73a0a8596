package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"questionnaire/forms"
	"questionnaire/models"
	"questionnaire/validation"
)

var (
	ErrBadCredentials   = errors.New("incorrect username or password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

type AuthService struct {
	db         *gorm.DB
	sessions   SessionStore
	access     *AccessService
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(db *gorm.DB, sessions SessionStore, access *AccessService, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		db:         db,
		sessions:   sessions,
		access:     access,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// Register creates a user with a bcrypt-hashed password and runs the
// access-control bootstrap that fires on every user creation.
func (s *AuthService) Register(ctx context.Context, form *forms.RegisterForm) (*models.User, validation.Errors, error) {
	errs := form.Validate()
	if !errs.IsValid() {
		return nil, errs, nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", form.Username).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		errs.Add("username", "A user with that username already exists.")
		return nil, errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{Username: form.Username, Password: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, nil, err
	}

	if err := s.access.OnUserCreated(ctx); err != nil {
		return nil, nil, fmt.Errorf("access bootstrap: %w", err)
	}

	return &user, nil, nil
}

// Login checks the credentials and, on success, opens a session: a signed JWT
// whose ID is registered in the session store for the session's lifetime.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	sessionID := uuid.NewString()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if err := s.sessions.Save(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		return "", err
	}

	return token, nil
}

// Authenticate resolves a session token to its user. The token must carry a
// valid signature and its session ID must still be registered.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	userID, ok, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthenticated
	}

	var user models.User
	err = s.db.WithContext(ctx).Preload("Groups.Permissions").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Logout drops the token's session from the registry.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return ErrNotAuthenticated
	}
	return s.sessions.Delete(ctx, claims.ID)
}

func (s *AuthService) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrNotAuthenticated
	}
	return claims, nil
}
