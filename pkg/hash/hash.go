// Package hash provides bcrypt password hashing.
package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plaintext password with bcrypt.
func Password(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Verify reports whether plain matches the bcrypt hash.
func Verify(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
