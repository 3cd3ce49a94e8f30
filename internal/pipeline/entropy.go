package pipeline

import (
	"crypto/rand"
	"encoding/hex"
)

// randomEntropy generates the optional info-dictionary entropy field used
// to perturb the info-hash for cross-seeding.
func randomEntropy() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
