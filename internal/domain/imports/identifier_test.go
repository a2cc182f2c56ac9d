package imports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "starts94_SR000731088",
		Identifier(ProviderStarts94, "SR000731088", ""))

	assert.Equal(t, "peugeot_0070139042",
		Identifier(ProviderPeugeot, "0070139042", ""))

	assert.Equal(t, "nalichnosti_04/09/2025",
		Identifier(ProviderNalichnosti, "", "04/09/2025"))
}

func TestIdentifier_TimestampFallback(t *testing.T) {
	// Unknown provider, or a known one missing its key field, falls
	// back to "<provider>_YYYYMMDD_HHMMSS".
	got := Identifier("unknown", "", "")
	assert.True(t, strings.HasPrefix(got, "unknown_"), got)

	stamp := strings.TrimPrefix(got, "unknown_")
	_, err := time.Parse("20060102_150405", stamp)
	assert.NoError(t, err, "timestamp part: %s", stamp)

	got = Identifier(ProviderStarts94, "", "")
	assert.True(t, strings.HasPrefix(got, "starts94_"), got)
	assert.NotEqual(t, "starts94_", got)
}

func TestExtractInvoiceInfo_Starts94(t *testing.T) {
	content := "Приемо-предавателен протокол за даване на стокa № SR000731088\nдоставчик Стартс94"
	number, date := ExtractInvoiceInfo(content, ProviderStarts94)
	assert.Equal(t, "SR000731088", number)
	assert.Empty(t, date)
}

func TestExtractInvoiceInfo_Peugeot(t *testing.T) {
	content := "ФАКТУРА No: 0070139042\nдата 01.09.2025"
	number, date := ExtractInvoiceInfo(content, ProviderPeugeot)
	assert.Equal(t, "0070139042", number)
	assert.Empty(t, date)
}

func TestExtractInvoiceInfo_Nalichnosti(t *testing.T) {
	content := "Наличности Към дата 04/09/2025"
	number, date := ExtractInvoiceInfo(content, ProviderNalichnosti)
	assert.Empty(t, number)
	assert.Equal(t, "04/09/2025", date)
}

func TestExtractInvoiceInfo_NoMatch(t *testing.T) {
	number, date := ExtractInvoiceInfo("нищо полезно", ProviderStarts94)
	assert.Empty(t, number)
	assert.Empty(t, date)
}
