package utils

import "golang.org/x/crypto/bcrypt"

// HashPassphrase returns the bcrypt hash of the admin passphrase using
// the given cost. The hash is computed once at startup so the plaintext
// never lives on the engine.
func HashPassphrase(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassphrase compares a login attempt against the stored hash in
// constant time. Only an exact match of the configured passphrase passes.
func VerifyPassphrase(hash, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(attempt)) == nil
}
