package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	valid := []string{"529.982.247-25", "52998224725", "111.444.777-35"}
	for _, s := range valid {
		assert.True(t, IsValidCPF(s), s)
	}
	invalid := []string{"", "123", "529.982.247-26", "111.111.111-11", "5299822472a", "529982247250"}
	for _, s := range invalid {
		assert.False(t, IsValidCPF(s), s)
	}
}
