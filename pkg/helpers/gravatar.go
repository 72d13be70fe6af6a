package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

// GravatarOptions controls the rendered avatar image.
type GravatarOptions struct {
	Size    int    // pixel size, e.g. 200
	Rating  string // g, pg, r, x
	Default string // fallback image, e.g. "mm" (mystery man)
}

// GravatarURL derives the avatar URL for an email address. The derivation is
// deterministic: the email is trimmed, lowercased and md5-hashed per the
// gravatar spec, so the same email always maps to the same URL.
func GravatarURL(email string, opts GravatarOptions) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	q := url.Values{}
	if opts.Size > 0 {
		q.Set("s", strconv.Itoa(opts.Size))
	}
	if opts.Rating != "" {
		q.Set("r", opts.Rating)
	}
	if opts.Default != "" {
		q.Set("d", opts.Default)
	}

	u := "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
