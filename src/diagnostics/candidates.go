package diagnostics

import (
	"fmt"
	"strings"

	"investments-api/src/database"
)

// Supabase exposes the transaction pooler on 6543 and the session pooler on 5432.
var probePorts = []uint16{6543, 5432}

// DeriveCandidates builds the connection string variants tried by the
// format probe: each pooler port with the configured user name, then each
// port with the user name stripped of its ".<project-ref>" suffix.
func DeriveCandidates(connectionString string) ([]string, error) {
	cfg, err := database.ParseConnConfig(connectionString)
	if err != nil {
		return nil, err
	}

	users := []string{cfg.User}
	if base, _, found := strings.Cut(cfg.User, "."); found && base != "" {
		users = append(users, base)
	}

	sslMode := "disable"
	if cfg.TLSConfig != nil {
		sslMode = "require"
	}

	seen := map[string]bool{}
	var candidates []string
	for _, user := range users {
		for _, port := range probePorts {
			candidate := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
				quote(cfg.Host), port, quote(cfg.Database), quote(user), quote(cfg.Password), sslMode)
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
	}

	return candidates, nil
}

// quote follows libpq keyword/value quoting rules.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
