package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied when hashing passwords unless
// the configuration overrides it. Cost 12 keeps a single hash in the tens of
// milliseconds on current hardware.
const DefaultBcryptCost = 12

// HashPassword derives a bcrypt digest from the given plaintext password.
//
// bcrypt embeds a per-hash random salt in the digest, so hashing the same
// password twice yields two different digests. A hashing failure is
// unexpected (invalid cost or a password longer than 72 bytes) and is fatal
// to the calling operation.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
// A mismatch is not an error condition; the function simply returns false.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// dummyDigest is a valid bcrypt digest of a random throwaway value. It is
// compared against when a login targets a non-existent account so that the
// request spends the same time as a real password check.
const dummyDigest = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// DummyCheckPassword burns one bcrypt comparison without revealing anything.
// Used to equalize response timing between "unknown email" and "wrong
// password" login failures.
func DummyCheckPassword(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyDigest), []byte(plaintext))
}
