package password

import "golang.org/x/crypto/bcrypt"

// bcrypt only looks at the first 72 bytes of input; longer passwords must be
// truncated before hashing, otherwise GenerateFromPassword rejects them.
const maxInputBytes = 72

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxInputBytes {
		b = b[:maxInputBytes]
	}
	return b
}

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns a non-nil error on any mismatch, including malformed
// stored hashes.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain))
}
