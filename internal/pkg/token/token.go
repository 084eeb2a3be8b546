package token

import (
	"crypto/rand"
	"encoding/base64"

	"seminar-booking/internal/pkg/errs"
)

// 256-bit tokens; the token is a capability credential for the booking
// status page and must not be derivable from any booking attribute.
const tokenBytes = 32

func NewBookingToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate booking token")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
