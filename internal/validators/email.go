package validators

import "strings"

// NormalizeEmail deja el email en la forma en que se guarda y se busca.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
