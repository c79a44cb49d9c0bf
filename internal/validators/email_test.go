package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Joao@Example.COM", "joao@example.com"},
		{"  joao@example.com  ", "joao@example.com"},
		{"joao@example.com", "joao@example.com"},
	}

	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// Casos que falham antes de qualquer consulta DNS.
	for _, email := range []string{"sem-arroba", "termina-em-arroba@", ""} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true", email)
		}
	}
}
