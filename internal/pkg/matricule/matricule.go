// Package matricule generates the public student identifier handed out at
// registration. It is distinct from the internal numeric record ID.
package matricule

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Prefix precedes the numeric part of every matricule.
const Prefix = "IUG-"

const (
	numberMin = 100000
	numberMax = 999999
)

// Pattern matches a well-formed matricule.
var Pattern = regexp.MustCompile(`^IUG-\d{6}$`)

// Generate returns a new matricule of the form "IUG-" followed by a six
// digit number drawn uniformly from [100000, 999999]. Each call is
// independent; uniqueness is enforced by the store, not here.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(numberMax-numberMin+1))
	if err != nil {
		return "", fmt.Errorf("matricule: random source failed: %w", err)
	}
	return fmt.Sprintf("%s%d", Prefix, numberMin+n.Int64()), nil
}
