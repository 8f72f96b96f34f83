package util

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor applied to stored credentials.
var PasswordCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash kept in the credential store.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// PasswordMatches reports whether password produces the stored hash.
func PasswordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
