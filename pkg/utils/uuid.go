package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReference creates a short human-facing reference code used
// on tickets and trailer requests.
func GenerateReference() (string, error) {
	return gonanoid.Generate(characters, 8)
}
