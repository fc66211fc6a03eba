package matcher

import "golang.org/x/crypto/bcrypt"

// BcryptVerifier verifies candidates against bcrypt hashes in modular-crypt
// encoding ($2a$, $2b$, ...). The embedded salt and cost drive the rehash,
// and the underlying compare is constant-time in the hash length.
type BcryptVerifier struct{}

// Verify reports whether candidate's bcrypt hash equals the stored hash.
// CompareHashAndPassword returns an error for both a mismatch and a hash
// that fails to parse; both fold into false here, so a malformed stored
// hash reads as "no match" instead of failing the document.
func (BcryptVerifier) Verify(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
