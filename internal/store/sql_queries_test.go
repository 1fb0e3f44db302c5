package store

import (
	"strings"
	"testing"

	"github.com/elparchetipk/go-auth-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildUpdateUserQuery_SingleField(t *testing.T) {
	query, args, err := buildUpdateUserQuery(1, models.UserPatch{Surname: strPtr("Diaz")})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users")
	assert.Contains(t, query, "surname = $")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "RETURNING")
	assert.Equal(t, []any{"Diaz", int64(1)}, args)
}

func TestBuildUpdateUserQuery_AllFields(t *testing.T) {
	patch := models.UserPatch{
		Email:        strPtr("new@x.com"),
		GivenNames:   strPtr("Ana Maria"),
		Surname:      strPtr("Diaz"),
		PasswordHash: strPtr("$2a$12$hash"),
	}

	query, args, err := buildUpdateUserQuery(7, patch)
	require.NoError(t, err)

	for _, col := range []string{"email", "given_names", "surname", "password_hash"} {
		assert.Contains(t, query, col+" = $")
	}
	assert.Len(t, args, 5) // four columns plus the id
}

func TestBuildUpdateUserQuery_NoArbitraryColumns(t *testing.T) {
	// the builder covers a fixed column list; nothing else may appear
	query, _, err := buildUpdateUserQuery(1, models.UserPatch{Email: strPtr("a@x.com")})
	require.NoError(t, err)

	assert.False(t, strings.Contains(query, "given_names"))
	assert.False(t, strings.Contains(query, "surname ="))
	assert.False(t, strings.Contains(query, "password_hash"))
}
