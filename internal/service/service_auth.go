package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elparchetipk/go-auth-api/internal/config"
	"github.com/elparchetipk/go-auth-api/internal/logger"
	"github.com/elparchetipk/go-auth-api/internal/store"
	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
)

// authService is the concrete implementation of [AuthService]. It composes
// the user repository, bcrypt hashing, and the JWT helpers into the
// registration, login, and token flows.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Flow: validate every field (collecting all problems into one
// *ValidationError) → normalize the email → fast-path existence check →
// hash the password → insert. The existence check is a UX optimization
// only; a racing registration that slips past it still fails on the
// database uniqueness constraint, and both paths surface
// [store.ErrEmailAlreadyExists].
//
// The plaintext password never leaves this function: the stored record
// carries only the bcrypt digest.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(req); err != nil {
		log.Error().Strs("problems", AsValidationError(err).Fields).Msg("registration input rejected")
		return models.User{}, err
	}

	email := models.NormalizeEmail(req.Email)

	// fast path: report the conflict before paying for a bcrypt hash
	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("existence pre-check failed")
		return models.User{}, fmt.Errorf("existence pre-check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		GivenNames:   req.GivenNames,
		Surname:      req.Surname,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing user.
//
// It validates the input shape, looks up the account by normalized email,
// and compares the supplied password against the stored bcrypt digest.
// An unknown email and a wrong password both return
// [ErrInvalidCredentials]; on the unknown-email path a dummy bcrypt
// comparison runs first so the two failures also take the same time.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateLoginRequest(req); err != nil {
		log.Error().Msg("login input rejected")
		return models.User{}, err
	}

	email := models.NormalizeEmail(req.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.DummyCheckPassword(req.Password)
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(req.Password, foundUser.PasswordHash) {
		log.Error().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// Profile returns the current record of the given subject. The record is
// re-fetched by ID so a stale token cannot resurrect deleted or changed
// account data.
func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}

		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// Update applies a partial update to the subject's record. A new email is
// normalized and validated; a new password is strength-checked and hashed
// before it reaches the store.
func (a *authService) Update(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	var fields []string
	if patch.Email != nil {
		normalized := models.NormalizeEmail(*patch.Email)
		fields = append(fields, validateEmail(normalized)...)
		patch.Email = &normalized
	}
	if patch.GivenNames != nil {
		fields = append(fields, validateName("givenNames", *patch.GivenNames)...)
	}
	if patch.Surname != nil {
		fields = append(fields, validateName("surname", *patch.Surname)...)
	}
	if len(fields) > 0 {
		return models.User{}, &ValidationError{Fields: fields}
	}

	updated, err := a.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrEmailAlreadyExists) || errors.Is(err, store.ErrEmptyPatch) {
			return models.User{}, err
		}

		log.Err(err).Int64("id", userID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

// Delete removes the subject's record.
func (a *authService) Delete(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}

		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration. Tokens are bearer credentials: not single-use, and not
// revocable before expiry.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to [utils.ValidateAndParseJWTToken] and maps the two failure
// kinds onto service-level sentinels so callers never inspect low-level JWT
// errors: expiry becomes [ErrTokenIsExpired], everything else
// [ErrTokenIsInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
