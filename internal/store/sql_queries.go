package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/elparchetipk/go-auth-api/models"
)

const (
	createUser = `INSERT INTO users (email, given_names, surname, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, given_names, surname, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, given_names, surname, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, given_names, surname, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

// buildUpdateUserQuery produces an UPDATE statement covering exactly the
// non-nil fields of patch. The column set is fixed by [models.UserPatch];
// arbitrary input keys can never reach the statement. updated_at is always
// refreshed.
func buildUpdateUserQuery(id int64, patch models.UserPatch) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, given_names, surname, password_hash, created_at, updated_at")

	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.GivenNames != nil {
		builder = builder.Set("given_names", *patch.GivenNames)
	}
	if patch.Surname != nil {
		builder = builder.Set("surname", *patch.Surname)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}

	return builder.ToSql()
}
