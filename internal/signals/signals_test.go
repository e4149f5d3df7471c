package signals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleInvoice = `ACME SUPPLY CO
123 Harbor Street
Seattle, WA 98101
Phone: (206) 555-0147
billing@acmesupply.com
www.acmesupply.com

Bill To: Joe's Diner
INVOICE # 4417
Date: 2024-03-01
`

func TestExtractAllSignals(t *testing.T) {
	s := Extract(sampleInvoice)

	assert.Equal(t, "billing@acmesupply.com", s.Email)
	assert.Equal(t, "(206) 555-0147", s.Phone)
	// The email line precedes the www line, so the domain of the email is
	// the first URL-shaped token with a known TLD.
	assert.Equal(t, "acmesupply.com", s.Website)
	assert.Equal(t, "ACME SUPPLY CO", s.Name)
	assert.Contains(t, s.Address, "123 Harbor Street")
	assert.False(t, s.Empty())
}

func TestExtractEmptyText(t *testing.T) {
	s := Extract("")
	assert.True(t, s.Empty())
}

func TestExtractNoSignals(t *testing.T) {
	s := Extract("quantity description price\n1 widget 2.00\n")
	assert.True(t, s.Empty())
}

func TestPhonePrefersLabelledNumber(t *testing.T) {
	text := "555-123-4567\nTel: 800-555-0199\n"
	s := Extract(text)
	assert.Equal(t, "800-555-0199", s.Phone)
}

func TestPhoneSkipsDateLikeSequences(t *testing.T) {
	// 2024-03-0155 shaped runs must not be mistaken for phone numbers.
	text := "issued 2024-031-0155 somewhere\ncall 425-555-0100 anytime\n"
	s := Extract(text)
	assert.Equal(t, "425-555-0100", s.Phone)
}

func TestNameExplicitLabelWins(t *testing.T) {
	text := "Sold by: Northwest Produce Inc\n"
	s := Extract(text)
	assert.Equal(t, "Northwest Produce Inc", s.Name)
}

func TestNameLegalSuffixSkipsBillTo(t *testing.T) {
	text := strings.Join([]string{
		"invoice",
		"Bill To: Customer Holdings LLC",
		"Evergreen Foods Ltd, 44 Dock Rd",
		"",
	}, "\n")
	s := Extract(text)
	assert.Equal(t, "Evergreen Foods Ltd", s.Name)
}

func TestNameUppercaseFallbackSkipsKeywords(t *testing.T) {
	text := "INVOICE\nGOLDEN GATE MEATS\nitem qty price\n"
	s := Extract(text)
	assert.Equal(t, "GOLDEN GATE MEATS", s.Name)
}

func TestWebsiteRequiresKnownTLD(t *testing.T) {
	s := Extract("visit portal.internal\n")
	assert.Equal(t, "", s.Website)

	s = Extract("visit acme.io today\n")
	assert.Equal(t, "acme.io", s.Website)
}

func TestAddressTwoLineBlock(t *testing.T) {
	text := "Fresh Farms\n900 Orchard Avenue\nPortland OR 97201\n"
	s := Extract(text)
	assert.Equal(t, "900 Orchard Avenue, Portland OR 97201", s.Address)
}
