package store

import (
	"context"

	"github.com/GavrielAldrich/PI-Inne/internal/database"
	"github.com/GavrielAldrich/PI-Inne/internal/model"
)

const userColumns = `id, fullname, email, username, password_hash, address, role, created_at`

func scanUser(row scanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Fullname,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Address,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByLogin matches login against username or email.
func GetUserByLogin(ctx context.Context, db database.Querier, login string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE username = $1 OR email = $1
		 ORDER BY id
		 LIMIT 1`,
		login,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByLogin", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (fullname, email, username, password_hash, address, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Fullname,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Address,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

// UpsertAdmin creates u as an admin, or promotes the existing row with the
// same username and resets its password.
func UpsertAdmin(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	u.Role = model.RoleAdmin
	row := db.QueryRow(ctx,
		`INSERT INTO users (fullname, email, username, password_hash, address, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (username) DO UPDATE
		 SET role = EXCLUDED.role, password_hash = EXCLUDED.password_hash
		 RETURNING id, created_at`,
		u.Fullname,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.Address,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrap("UpsertAdmin", err)
	}
	return u, nil
}
