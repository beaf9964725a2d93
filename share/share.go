// Package share encodes calculator settings into URL-safe tokens so a
// recipe travels between darkrooms as a plain link, no account or upload.
package share

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/darkroomtools/easeld/border"
)

// tokenVersion is bumped whenever the encoded shape changes; old tokens
// keep decoding as long as their version is still listed here.
const tokenVersion = "v1"

var ErrBadToken = errors.New("malformed share token")

// Encode packs the input into a versioned URL-safe token.
func Encode(in border.Input) (string, error) {
	payload, err := sonic.Marshal(in)
	if err != nil {
		return "", err
	}
	return tokenVersion + "." + base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode is the inverse of Encode. Any deviation from the expected shape
// comes back as ErrBadToken, never a panic: tokens arrive from the
// outside world.
func Decode(token string) (border.Input, error) {
	version, body, found := strings.Cut(token, ".")
	if !found || version != tokenVersion || body == "" {
		return border.Input{}, fmt.Errorf("%w: unknown version", ErrBadToken)
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return border.Input{}, fmt.Errorf("%w: %v", ErrBadToken, err)
	}

	var in border.Input
	if err := sonic.Unmarshal(payload, &in); err != nil {
		return border.Input{}, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	return in, nil
}

// URL renders the absolute share link when a base URL is configured;
// otherwise it returns the bare token.
func URL(baseURL, token string) string {
	if baseURL == "" {
		return token
	}
	return strings.TrimSuffix(baseURL, "/") + "/api/v1/share/" + token
}
