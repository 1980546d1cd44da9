// Package auth implements password hashing for account credentials.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of plain. bcrypt salts every call, so
// hashing the same password twice yields different stored values that both
// verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain is the password the stored hash was
// derived from. The comparison runs in constant time.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DummyHash is a throwaway bcrypt hash computed at startup. Login compares
// against it when the email is unknown and discards the result, so the
// unknown-email and wrong-password paths cost the same.
var DummyHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("rango-amigo-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()
