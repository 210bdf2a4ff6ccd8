package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost is a fixed bcrypt work factor; changing it only affects newly
// stored hashes, existing ones keep the cost embedded in the hash itself.
const passwordCost = 10

// HashPassword hashes a plaintext password with bcrypt. The plaintext is
// never persisted anywhere.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
