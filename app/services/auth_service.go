package services

import (
	"errors"
	"strconv"
	"time"

	"inkwell/app/models"
	"inkwell/app/policy"
	"inkwell/app/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidToken marks a bearer token that failed to parse or verify.
var ErrInvalidToken = errors.New("invalid token")

const resetTokenTTL = time.Hour

// Claims are the JWT claims carried by an access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles registration, login and the password-reset token flow,
// and turns bearer tokens into actors for the policy layer.
type AuthService struct {
	userRepo repositories.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account with the user role.
func (s *AuthService) Register(input RegisterInput) (*UserView, error) {
	if input.Name == "" || input.Surname == "" || input.Email == "" || input.Password == "" {
		return nil, newValidationError("name, surname, email and password required")
	}

	user := &models.User{
		Name:    input.Name,
		Surname: input.Surname,
		Email:   input.Email,
		Blogs:   []int{},
	}
	user.BeforeCreate()
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, newValidationError("invalid user: " + err.Error())
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, newValidationError("email already registered")
		}
		return nil, err
	}
	return newUserView(user), nil
}

// Login verifies credentials and issues an access token. Bad email and bad
// password answer identically.
func (s *AuthService) Login(email, password string) (string, *UserView, error) {
	if email == "" || password == "" {
		return "", nil, newValidationError("email and password required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, newValidationError("invalid email or password")
		}
		return "", nil, err
	}
	if !user.CheckPassword(password) {
		return "", nil, newValidationError("invalid email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, newUserView(user), nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ActorFromToken parses and verifies a bearer token and returns the actor it
// represents.
func (s *AuthService) ActorFromToken(token string) (*policy.Actor, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id < 1 {
		return nil, ErrInvalidToken
	}
	return &policy.Actor{ID: id, Role: claims.Role}, nil
}

// ForgotPassword generates a reset token for the account and returns it to
// the caller. Delivering the token to the user is someone else's job.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	if email == "" {
		return "", newValidationError("email required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}

	user.ResetToken = uuid.NewString()
	user.ResetExpires = time.Now().Add(resetTokenTTL)
	if err := s.userRepo.Update(user); err != nil {
		return "", err
	}
	return user.ResetToken, nil
}

// ResetPassword sets a new password for the account holding the given reset
// token and invalidates the token.
func (s *AuthService) ResetPassword(token, password string) error {
	if token == "" || password == "" {
		return newValidationError("token and password required")
	}

	user, err := s.userRepo.GetByResetToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newValidationError("invalid or expired reset token")
		}
		return err
	}
	if time.Now().After(user.ResetExpires) {
		return newValidationError("invalid or expired reset token")
	}

	if err := user.SetPassword(password); err != nil {
		return err
	}
	user.ResetToken = ""
	user.ResetExpires = time.Time{}
	return s.userRepo.Update(user)
}
