package sofse

import (
	"encoding/base64"
	"net/url"
	"strings"
	"time"
)

// Credentials is the username/password pair the auth endpoint expects.
// Both values are derived from the current date and never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// The two substitution tables cover exactly the characters {a,e,i,o,u,=}.
// Replacement sequences never contain a source character, so substitution
// order does not matter; any deviation from the tables breaks authentication
// against the real service.
var (
	cipherStep0 = strings.NewReplacer(
		"a", "#t",
		"e", "#x",
		"i", "#f",
		"o", "#l",
		"u", "#7",
		"=", "#g",
	)
	cipherStep1 = strings.NewReplacer(
		"a", "#j",
		"e", "#p",
		"i", "#w",
		"o", "#8",
		"u", "#0",
		"=", "#v",
	)
)

// DeriveUsername returns the API username for the given instant: base64 of
// "YYYYMMDDsofse" using the UTC date.
func DeriveUsername(now time.Time) string {
	seed := now.UTC().Format("20060102") + "sofse"
	return base64.StdEncoding.EncodeToString([]byte(seed))
}

// EncodePassword computes the API password from a username:
// base64, table-0 substitution, reverse, base64, table-1 substitution,
// reverse, percent-encode.
func EncodePassword(username string) string {
	v := base64.StdEncoding.EncodeToString([]byte(username))
	v = cipherStep0.Replace(v)
	v = reverseString(v)
	v = base64.StdEncoding.EncodeToString([]byte(v))
	v = cipherStep1.Replace(v)
	v = reverseString(v)
	return url.QueryEscape(v)
}

// DeriveCredentials returns a fresh credential pair for the given instant.
func DeriveCredentials(now time.Time) Credentials {
	username := DeriveUsername(now)
	return Credentials{
		Username: username,
		Password: EncodePassword(username),
	}
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
