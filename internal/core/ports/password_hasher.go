package ports

// PasswordHasher performs one-way password hashing and verification.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hash. A malformed hash and a wrong
	// password are indistinguishable to the caller.
	Verify(plain, hash string) bool
}
