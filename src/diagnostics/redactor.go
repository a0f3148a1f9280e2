package diagnostics

import (
	"net/url"
	"sort"
	"strings"

	"investments-api/src/database"
)

const Mask = "***"

// Redactor masks every literal occurrence of its secrets. It is a plain
// substring replace: unrelated text equal to a secret is masked too.
// Each secret is masked in every spelling it can take inside a connection
// string: raw, percent-encoded (query, path and userinfo rules) and libpq
// quoted.
type Redactor struct {
	secrets []string
}

func NewRedactor(secrets ...string) Redactor {
	seen := map[string]bool{}
	var forms []string
	for _, secret := range secrets {
		for _, form := range spellings(secret) {
			if form != "" && !seen[form] {
				seen[form] = true
				forms = append(forms, form)
			}
		}
	}
	// longest first, so an encoded form is not half-masked by a shorter one
	sort.SliceStable(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })
	return Redactor{secrets: forms}
}

// NewConnectionRedactor masks the password of connectionString, both as
// parsed and as literally written. A non-empty override replaces the parsed
// password.
func NewConnectionRedactor(connectionString, override string) Redactor {
	if override != "" {
		return NewRedactor(override)
	}
	var secrets []string
	if cfg, err := database.ParseConnConfig(connectionString); err == nil {
		secrets = append(secrets, cfg.Password)
	}
	return NewRedactor(append(secrets, passwordLiteral(connectionString))...)
}

func (r Redactor) Redact(s string) string {
	for _, secret := range r.secrets {
		s = strings.ReplaceAll(s, secret, Mask)
	}
	return s
}

func spellings(secret string) []string {
	if secret == "" {
		return nil
	}
	quoted := quote(secret)
	if strings.HasPrefix(quoted, "'") {
		quoted = quoted[1 : len(quoted)-1]
	}
	return []string{
		secret,
		url.QueryEscape(secret),
		url.PathEscape(secret),
		strings.TrimPrefix(url.UserPassword("", secret).String(), ":"),
		quoted,
	}
}

// passwordLiteral returns the password exactly as written in the userinfo
// of a URL-form connection string, or "" for any other form.
func passwordLiteral(connectionString string) string {
	_, rest, found := strings.Cut(connectionString, "://")
	if !found {
		return ""
	}
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		rest = rest[:end]
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return ""
	}
	_, password, _ := strings.Cut(rest[:at], ":")
	return password
}
