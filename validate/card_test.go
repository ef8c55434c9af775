package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardTypeOf(t *testing.T) {
	tests := []struct {
		cardNum string
		want    CardType
	}{
		{"378282246310005", CardTypeAmex},
		{"371449635398431", CardTypeAmex},
		{"5105105105105100", CardTypeMC},
		{"4111111111111111", CardTypeVisa},
		{"4222222222222", CardTypeVisa},
		{"6011111111111117", CardTypeDiscover},
		{"6511111111111119", CardTypeDiscover},
		{"1234567890123456", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CardTypeOf(tt.cardNum), "card %q", tt.cardNum)
	}
}

func TestLuhnCheck(t *testing.T) {
	assert.True(t, LuhnCheck("378282246310005"))
	assert.True(t, LuhnCheck("4111111111111111"))
	assert.True(t, LuhnCheck("5105105105105100"))
	assert.False(t, LuhnCheck("4111111111111112"))
}

func TestCardNumberInString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain text", "John Smith", false},
		{"bare visa number", "4111111111111111", true},
		{"number inside text", "my card is 4111111111111111 thanks", true},
		{"dashed number", "4111-1111-1111-1111", true},
		{"spaced number", "4111 1111 1111 1111", true},
		{"luhn-invalid digits", "4111111111111112", false},
		{"short digit run", "94104", false},
		{"non-luhn china union pay shape", "6212345678901234", true},
		{"street address", "548 Market St.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardNumberInString(tt.value))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("donor@example.org"))
	assert.False(t, IsEmail("not-an-address"))
	assert.False(t, IsEmail("4111111111111111@example.org"))
}

func TestNotJustPunctuation(t *testing.T) {
	assert.True(t, NotJustPunctuation("548 Market St."))
	assert.False(t, NotJustPunctuation("..."))
	assert.False(t, NotJustPunctuation("  -- ?! "))
	assert.False(t, NotJustPunctuation(""))
}
