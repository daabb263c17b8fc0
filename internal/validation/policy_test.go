package validation

import (
	"strings"
	"testing"

	"wisenotes-be/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	policy := NewPolicy(25, 500)

	testCases := []struct {
		name      string
		title     string
		wantErr   bool
		wantField string
	}{
		{name: "valid title", title: "Groceries", wantErr: false},
		{name: "empty title", title: "", wantErr: true, wantField: "title"},
		{name: "whitespace only title", title: "   \t  ", wantErr: true, wantField: "title"},
		{name: "title at limit", title: strings.Repeat("a", 25), wantErr: false},
		{name: "title one over limit", title: strings.Repeat("a", 26), wantErr: true, wantField: "title"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.ValidateTitle(tc.title)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			fieldErr, ok := apperr.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantField, fieldErr.Field)
			assert.NotEmpty(t, fieldErr.Message)
		})
	}
}

func TestValidateContent(t *testing.T) {
	policy := NewPolicy(25, 500)

	testCases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid content", content: "buy milk", wantErr: false},
		{name: "empty content", content: "", wantErr: true},
		{name: "whitespace only content", content: " \n ", wantErr: true},
		{name: "content at limit", content: strings.Repeat("x", 500), wantErr: false},
		{name: "content one over limit", content: strings.Repeat("x", 501), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.ValidateContent(tc.content)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			fieldErr, ok := apperr.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, "content", fieldErr.Field)
		})
	}
}

func TestLimitsCountRunesNotBytes(t *testing.T) {
	policy := NewPolicy(3, 3)

	assert.NoError(t, policy.ValidateTitle("日本語"))
	assert.Error(t, policy.ValidateTitle("日本語で"))
}

func TestConfiguredLimitsAreHonored(t *testing.T) {
	policy := NewPolicy(10, 20)

	assert.NoError(t, policy.ValidateTitle(strings.Repeat("a", 10)))
	assert.Error(t, policy.ValidateTitle(strings.Repeat("a", 11)))
	assert.NoError(t, policy.ValidateContent(strings.Repeat("b", 20)))
	assert.Error(t, policy.ValidateContent(strings.Repeat("b", 21)))
}
