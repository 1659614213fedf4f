package usecase

import (
	"errors"
	"regexp"
	"strings"

	authdomain "taskdeck-backend/internal/auth/domain"
	authdto "taskdeck-backend/internal/auth/dto"
	"taskdeck-backend/internal/auth/repository"
	"taskdeck-backend/internal/auth/token"
	"taskdeck-backend/pkg/apperror"
	"taskdeck-backend/pkg/config"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Compared against when the email is unknown so that a miss costs the same
// bcrypt work as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := authdomain.NormalizeEmail(req.Email)

	var fields []apperror.FieldError
	if name == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "is required"})
	} else if len(name) > 100 {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "must be at most 100 characters"})
	}
	if !emailPattern.MatchString(email) {
		fields = append(fields, apperror.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(req.Password) < 6 {
		fields = append(fields, apperror.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return nil, apperror.Validation("validation failed", fields...)
	}

	hash, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &authdomain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.respondWithToken(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.AuthResponse, error) {
	user := u.verify(req.Email, req.Password)
	if user == nil {
		return nil, apperror.Authentication("invalid email or password")
	}
	return u.respondWithToken(user)
}

// verify looks up the credential record by normalized email and checks the
// password. Unknown email and wrong password are indistinguishable: both
// return nil, and the bcrypt comparison runs in either case.
func (u *authUsecase) verify(email, password string) *authdomain.User {
	user, err := u.userRepo.FindByEmail(authdomain.NormalizeEmail(email))
	if err != nil || user == nil {
		repository.CheckPasswordHash(password, dummyHash)
		return nil
	}
	if !repository.CheckPasswordHash(password, user.PasswordHash) {
		return nil
	}
	return user
}

func (u *authUsecase) Authenticate(tokenString string) (*authdomain.PublicUser, error) {
	claims, err := token.Parse(tokenString, []byte(u.config.JWTSecret))
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return nil, apperror.Authentication("token expired")
		}
		return nil, apperror.Authentication("invalid token")
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		// A token must never resolve to a record that no longer exists.
		return nil, apperror.Authentication("user not found")
	}

	return user.Public(), nil
}

func (u *authUsecase) Profile(userID string) (*authdomain.PublicUser, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user.Public(), nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.PublicUser, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	var fields []apperror.FieldError
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			fields = append(fields, apperror.FieldError{Field: "name", Message: "is required"})
		} else if len(name) > 100 {
			fields = append(fields, apperror.FieldError{Field: "name", Message: "must be at most 100 characters"})
		} else {
			user.Name = name
		}
	}
	if req.Email != nil {
		email := authdomain.NormalizeEmail(*req.Email)
		if !emailPattern.MatchString(email) {
			fields = append(fields, apperror.FieldError{Field: "email", Message: "must be a valid email address"})
		} else {
			user.Email = email
		}
	}
	if len(fields) > 0 {
		return nil, apperror.Validation("validation failed", fields...)
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (u *authUsecase) respondWithToken(user *authdomain.User) (*authdto.AuthResponse, error) {
	signed, err := token.Issue(user.ID, []byte(u.config.JWTSecret), u.config.TokenExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &authdto.AuthResponse{Token: signed, User: user.Public()}, nil
}
