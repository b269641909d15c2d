package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Join our channel"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle("   "))
	assert.Error(t, ValidateTitle(strings.Repeat("x", MaxTitleLength+1)))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription("short"))
	assert.Error(t, ValidateDescription(strings.Repeat("x", MaxDescriptionLength+1)))
}

func TestValidateChannelHandle(t *testing.T) {
	valid := []string{"skyton", "@skyton", "sky_ton_2024", " @skyton "}
	for _, h := range valid {
		assert.NoError(t, ValidateChannelHandle(h), h)
	}

	invalid := []string{"", "@", "abc", "has space", "has-dash", strings.Repeat("a", 33)}
	for _, h := range invalid {
		assert.Error(t, ValidateChannelHandle(h), h)
	}
}

func TestValidateWalletAddress(t *testing.T) {
	// User-friendly bounceable form.
	assert.NoError(t, ValidateWalletAddress("EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N"))
	assert.NoError(t, ValidateWalletAddress("  EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N  "))

	invalid := []string{"", "   ", "not-an-address", "EQshort"}
	for _, a := range invalid {
		assert.Error(t, ValidateWalletAddress(a), a)
	}
}
