package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fixed presentation parameters: 200px, PG-rated, "mystery man" fallback.
const (
	gravatarSize    = "200"
	gravatarRating  = "pg"
	gravatarDefault = "mm"
)

// GravatarURL derives the avatar URL for an email address. The same email
// always yields the same URL; the address is trimmed and lowercased before
// hashing per the Gravatar spec.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%s&r=%s&d=%s",
		hex.EncodeToString(sum[:]), gravatarSize, gravatarRating, gravatarDefault)
}
