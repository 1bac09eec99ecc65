// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
	"github.com/GavrielAldrich/PI-Inne/internal/store"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNoUser           = errors.New("no user found")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// AuthenticateUser 比對密碼；不符時回傳 ErrPasswordMismatch
func AuthenticateUser(user model.User, password string) error {
	err := ComparePassword(user.PasswordHash, password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("AuthenticateUser: %w", err)
	}
}

// Login looks the user up by username or email and verifies the password.
func Login(ctx context.Context, db database.Querier, login, password string) (*model.User, error) {
	user, err := store.GetUserByLogin(ctx, db, login)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoUser
	}
	if err != nil {
		return nil, err
	}
	if err := AuthenticateUser(*user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// Register hashes the password and stores a new account with the user role.
func Register(ctx context.Context, db database.Querier, u model.User, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	u.PasswordHash = hash
	u.Role = model.RoleUser
	return store.CreateUser(ctx, db, &u)
}

// EnsureAdmin creates or promotes the bootstrap admin account.
func EnsureAdmin(ctx context.Context, db database.Querier, username, email, password string) (*model.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("EnsureAdmin: %w", err)
	}
	return store.UpsertAdmin(ctx, db, &model.User{
		Fullname:     username,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	})
}
