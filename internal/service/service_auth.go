// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/logger"
	"github.com/taskdesk/taskdesk/internal/store"
	"github.com/taskdesk/taskdesk/internal/utils"
	"github.com/taskdesk/taskdesk/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The configuration is validated before the process reaches this point:
// a missing sign key or duration aborts startup (fail closed), so the
// service never has to handle an unsigned-token state at request time.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account with the default role.
//
// The flow is look-up-then-insert: an existing account with the same email
// short-circuits to [store.ErrEmailAlreadyExists] without side effects. The
// check is not atomic on its own; a racing duplicate registration is caught
// by the unique constraint on the email column and surfaces as the same
// error. The plaintext password is bcrypt-hashed before the user record is
// handed to the repository and is not retained afterwards.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", req.Email).Msg("registration attempt with existing email")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", req.Email).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed bearer token
// with claims {sub: user id, email}.
//
// Returns [ErrInvalidCredentials] for an unknown email AND for a wrong
// password: the two failures are content-equal so the response cannot be
// used to probe which emails are registered. Any repository failure other
// than not-found is propagated wrapped.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")
			return models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", req.Email).Msg("user lookup by email failed")
		return models.Token{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	if !utils.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Msg("login attempt with wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveIdentity validates a raw JWT string and resolves the caller's
// current identity.
//
// Verification (signature, expiry, issuer) is delegated to the JWT library;
// any failure is normalised to [ErrTokenIsExpiredOrInvalid] so that callers
// do not need to inspect low-level JWT errors. On success, the user is
// re-fetched by the subject id: the token is not trusted as the source of
// truth for current role or email, and a deleted account resolves to the
// same error. The operation is read-only.
func (a *authService) ResolveIdentity(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Int64("id", token.UserID).Msg("valid token references a deleted account")
			return models.Identity{}, ErrTokenIsExpiredOrInvalid
		}

		log.Err(err).Int64("id", token.UserID).Msg("user lookup by id failed")
		return models.Identity{}, fmt.Errorf("user lookup by id failed: %w", err)
	}

	return models.Identity{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// UpdateProfile applies a partial profile change for the calling user.
// The target user id always comes from the resolved identity, never from
// the request body.
func (a *authService) UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	update.UserID = identity.ID

	updatedUser, err := a.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", identity.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// ListUsers returns every registered account. Role gating happens in the
// HTTP layer before this method runs.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
