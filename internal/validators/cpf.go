package validators

import "strings"

// NormalizeCPF remove pontuação, mantendo apenas os dígitos.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCPFFormatValid aceita 11 dígitos que não sejam todos iguais.
// A unicidade é verificada no banco, não aqui.
func IsCPFFormatValid(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 {
		return false
	}

	first := digits[0]
	for i := 1; i < len(digits); i++ {
		if digits[i] != first {
			return true
		}
	}
	return false
}
