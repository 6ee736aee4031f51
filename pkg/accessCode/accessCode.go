package accessCode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

// ErrMalformed is returned when a share code cannot be decoded.
var ErrMalformed = errors.New("malformed share code")

// NewSecret returns a fresh random share secret.
func NewSecret() string {
	return uuidv7.New().String()
}

// GenerateCode builds the public share code for a tournament.
func GenerateCode(tournamentID, secret string) string {
	code := fmt.Sprintf("%s|%s", tournamentID, secret)

	return base64.RawURLEncoding.EncodeToString([]byte(code))
}

// Decode splits a share code back into tournament id and secret.
func Decode(code string) (tournamentID, secret string, err error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 || res[0] == "" || res[1] == "" {
		return "", "", ErrMalformed
	}
	return res[0], res[1], nil
}
