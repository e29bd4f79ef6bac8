package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		email  string
		domain string
		ok     bool
	}{
		{"maria@salao.com.br", "salao.com.br", true},
		{"Maria@SALAO.COM.BR", "salao.com.br", true},
		{"a@b@c.com", "c.com", true}, // último @ manda
		{"semarroba", "", false},
		{"termina-em@", "", false},
		{"@sem-local-part.com", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		domain, ok := emailDomain(tc.email)
		assert.Equal(t, tc.ok, ok, tc.email)
		assert.Equal(t, tc.domain, domain, tc.email)
	}
}

func TestIsEmailDomainValid_SyntaxShortCircuit(t *testing.T) {
	// Sem domínio extraível nem chega no DNS.
	assert.False(t, IsEmailDomainValid("semarroba"))
	assert.False(t, IsEmailDomainValid("termina-em@"))
	assert.False(t, IsEmailDomainValid(""))
}
