package logging

import (
	"log/slog"
	"regexp"
	"slices"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names that carry
// credentials. The request logging middleware and the masq attribute filter
// both read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// ContentFields are attribute names that would carry what a user typed into
// a draft. Log property names instead; an attribute with one of these names
// is replaced by RedactedValue whatever its type.
var ContentFields = []string{"values", "changes", "title", "description"}

// RedactedValue replaces masked content. It matches what masq writes.
const RedactedValue = masq.DefaultRedactMessage

// credentialFields are masked wherever they appear, as are fields starting
// with one of credentialPrefixes.
var (
	credentialFields   = []string{"password", "secret", "token"}
	credentialPrefixes = []string{"secret_", "api_key"}
)

var (
	// bearerPattern matches "Bearer <token>" in any string value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern matches header.payload.signature with at least 10
	// characters per segment, so version strings and hostnames survive.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// apiKeyInlinePattern matches "api_key=<value>" or "apikey:<value>".
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// newRedactAttr returns the ReplaceAttr function installed by New. Top-level
// content fields become a RedactedValue string, since masq renders a masked
// map or slice as null; everything else, including content fields nested in
// structs, goes through masq.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	redact := newMasq()
	return func(groups []string, a slog.Attr) slog.Attr {
		if slices.Contains(ContentFields, a.Key) {
			return slog.String(a.Key, RedactedValue)
		}
		return redact(groups, a)
	}
}

func newMasq() func([]string, slog.Attr) slog.Attr {
	names := len(SensitiveHeaders) + len(ContentFields) + len(credentialFields)
	opts := make([]masq.Option, 0, names+len(credentialPrefixes)+3)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range ContentFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range credentialFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range credentialPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
