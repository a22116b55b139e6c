package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownField is returned when a field name is outside the record.
var ErrUnknownField = errors.New("unknown card field")

// Field names one field of a Record.
type Field string

const (
	FieldName            Field = "name"
	FieldTitle           Field = "title"
	FieldCompany         Field = "company"
	FieldPhone           Field = "phone"
	FieldEmail           Field = "email"
	FieldWebsite         Field = "website"
	FieldBackgroundColor Field = "backgroundColor"
	FieldTextColor       Field = "textColor"
	FieldAccentColor     Field = "accentColor"
	FieldFontFamily      Field = "fontFamily"
)

var allFields = []Field{
	FieldName,
	FieldTitle,
	FieldCompany,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldBackgroundColor,
	FieldTextColor,
	FieldAccentColor,
	FieldFontFamily,
}

type fieldMeta struct {
	label       string
	placeholder string
}

var contactMeta = map[Field]fieldMeta{
	FieldName:    {"Full Name", "Enter your full name"},
	FieldTitle:   {"Job Title", "Enter your job title"},
	FieldCompany: {"Company", "Enter your company name"},
	FieldPhone:   {"Phone", "Enter your phone number"},
	FieldEmail:   {"Email", "Enter your email"},
	FieldWebsite: {"Website", "Enter your website"},
}

// Fields returns every field in form order.
func Fields() []Field {
	return slices.Clone(allFields)
}

// ContactFields returns the six free-text fields shown in the form.
func ContactFields() []Field {
	return slices.Clone(allFields[:6])
}

// ParseField resolves a field name. Matching ignores case so that CLI input
// like "backgroundcolor" works.
func ParseField(name string) (Field, error) {
	for _, f := range allFields {
		if strings.EqualFold(string(f), strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Label is the human-readable form label.
func (f Field) Label() string {
	if m, ok := contactMeta[f]; ok {
		return m.label
	}
	switch f {
	case FieldBackgroundColor:
		return "Background"
	case FieldTextColor:
		return "Text"
	case FieldAccentColor:
		return "Accent"
	case FieldFontFamily:
		return "Font Family"
	}
	return string(f)
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	return contactMeta[f].placeholder
}

func (f Field) String() string {
	return string(f)
}
