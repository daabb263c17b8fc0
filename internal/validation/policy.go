package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"wisenotes-be/internal/pkg/apperr"
)

// Policy holds the deployment-tunable input limits. Limits come from
// configuration, not compile-time constants.
type Policy struct {
	TitleMaxLength   int
	ContentMaxLength int
}

func NewPolicy(titleMaxLength, contentMaxLength int) *Policy {
	return &Policy{
		TitleMaxLength:   titleMaxLength,
		ContentMaxLength: contentMaxLength,
	}
}

// ValidateTitle checks a notebook title. Whitespace-only input is
// rejected regardless of the length limit.
func (p *Policy) ValidateTitle(title string) error {
	return p.validate("title", title, p.TitleMaxLength)
}

// ValidateContent checks note content under the content limit.
func (p *Policy) ValidateContent(content string) error {
	return p.validate("content", content, p.ContentMaxLength)
}

func (p *Policy) validate(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return apperr.NewFieldError(field, fmt.Sprintf("%s is required", field))
	}
	if utf8.RuneCountInString(value) > maxLength {
		return apperr.NewFieldError(field, fmt.Sprintf("%s must be at most %d characters", field, maxLength))
	}
	return nil
}
