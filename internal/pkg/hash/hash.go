package hash

// Hash abstracts one-way hashing of credentials.
type Hash interface {
	// Hash hashes plaintext and returns the encoded digest.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
