// Package service defines interfaces for core, stateless domain logic.
// These services keep the usecases free of infrastructure details.
package service

// PasswordHasher defines the interface for hashing and verifying the
// back-office account passwords. The hashing algorithm stays behind it.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
