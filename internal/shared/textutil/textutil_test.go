package textutil_test

import (
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/shared/textutil"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLogin(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "accent", in: "Traoré", want: "traore"},
		{name: "apostrophe kept", in: "N'Diaye", want: "n'diaye"},
		{name: "cedilla and circumflex", in: "Françoîs", want: "francois"},
		{name: "eszett", in: "Straße", want: "strasse"},
		{name: "ligature", in: "Lætitia", want: "laetitia"},
		{name: "non latin dropped", in: "Keïta中", want: "keita"},
		{name: "plain", in: "Coulibaly", want: "coulibaly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textutil.NormalizeLogin(tt.in))
		})
	}
}

func TestDisplayLastName(t *testing.T) {
	assert.Equal(t, "TRAORE", textutil.DisplayLastName("Traoré"))
	assert.Equal(t, "N'DIAYE", textutil.DisplayLastName("N'Diaye"))
}
