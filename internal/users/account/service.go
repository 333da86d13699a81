// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages account records.

Accounts are never exposed over HTTP; the operator CLI creates them. Passwords
are stored as bcrypt hashes, never as plain text.
*/
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/sec"
	"github.com/taibuivan/sanaa/internal/platform/validate"
)

// Credential rules.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

// # Service Layer

// Service orchestrates account registration and lookup.
type Service struct {
	repository directory.AccountRepository
	hash       func(string) (string, error)
	logger     *slog.Logger
}

// NewService constructs a new [Service] hashing with bcrypt's default cost.
func NewService(repository directory.AccountRepository, logger *slog.Logger) *Service {
	return &Service{repository: repository, hash: sec.HashPassword, logger: logger}
}

/*
Register creates an account after validating the credentials.

Parameters:
  - ctx: context.Context
  - username: 3 to 50 characters, unique
  - password: at least 8 characters, stored hashed

Returns:
  - *directory.Account: the stored account (Password holds the hash)
  - error: VALIDATION_ERROR, CONFLICT for a taken username, storage faults
*/
func (service *Service) Register(ctx context.Context, username, password string) (*directory.Account, error) {
	v := &validate.Validator{}
	v.Required("username", username).
		MinLen("username", username, MinUsernameLength).
		MaxLen("username", username, MaxUsernameLength).
		MinLen("password", password, MinPasswordLength)

	if err := v.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repository.FindAccountByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("account_service_lookup_failed: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashed, err := service.hash(password)
	if errors.Is(err, sec.ErrPasswordTooLong) {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "password",
			Message: "Maximum 72 bytes",
		})
	}
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	// The store enforces uniqueness again, closing the race with a concurrent Register.
	account, err := service.repository.CreateAccount(ctx, directory.NewAccount{Username: username, Password: hashed})
	if err != nil {
		if apperr.HasCode(err, "CONFLICT") {
			return nil, err
		}
		return nil, fmt.Errorf("account_service_create_failed: %w", err)
	}

	service.logger.Info("account_registered",
		slog.String("account_id", account.ID),
		slog.String("username", account.Username),
	)
	return account, nil
}

// Get returns the account with id, mapping absence to apperr NOT_FOUND.
func (service *Service) Get(ctx context.Context, id string) (*directory.Account, error) {
	account, err := service.repository.FindAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}
	if account == nil {
		return nil, apperr.NotFound("Account")
	}
	return account, nil
}

// GetByUsername returns the account with username, mapping absence to apperr NOT_FOUND.
func (service *Service) GetByUsername(ctx context.Context, username string) (*directory.Account, error) {
	account, err := service.repository.FindAccountByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_by_username_failed: %w", err)
	}
	if account == nil {
		return nil, apperr.NotFound("Account")
	}
	return account, nil
}

// Authenticate reports whether password matches the stored hash for username.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (service *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	account, err := service.repository.FindAccountByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("account_service_authenticate_failed: %w", err)
	}
	if account == nil {
		return false, nil
	}
	return sec.CheckPasswordHash(password, account.Password), nil
}
