package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword salts per call, so two hashes of the same password differ but
// both verify. bcrypt caps its input at 72 bytes; anything longer surfaces as
// an error instead of an empty digest.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword fails closed: a malformed stored digest verifies as false.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
