package validators

import (
	"net"
	"strings"
)

// NormalizeEmail aplica a forma canônica usada em todo o namespace de
// e-mails: minúsculas, sem espaços nas bordas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid aceita domínios que resolvem via MX ou, na falta
// deste, via A/AAAA. A sintaxe já foi validada no binding.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
