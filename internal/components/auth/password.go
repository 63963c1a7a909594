package auth

import "golang.org/x/crypto/bcrypt"

type (
	// Hasher produces and verifies salted one-way password hashes.
	Hasher struct {
		cost int
	}
)

func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. A malformed
// stored hash verifies as false rather than erroring.
func (h Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
