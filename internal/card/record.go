// Package card holds the business card record and the fixed presets that style it.
package card

// FontFamily is the typographic preset token stored on a record.
type FontFamily string

const (
	FontSans  FontFamily = "font-sans"
	FontSerif FontFamily = "font-serif"
	FontMono  FontFamily = "font-mono"
)

// Record is the complete set of editable fields describing one card.
type Record struct {
	Name    string
	Title   string
	Company string
	Phone   string
	Email   string
	Website string

	BackgroundColor string
	TextColor       string
	AccentColor     string
	FontFamily      FontFamily
}

// DefaultRecord returns the sample card every session starts with.
func DefaultRecord() Record {
	return Record{
		Name:            "John Doe",
		Title:           "Software Engineer",
		Company:         "Tech Solutions Inc.",
		Phone:           "+1 (555) 123-4567",
		Email:           "john.doe@techsolutions.com",
		Website:         "www.techsolutions.com",
		BackgroundColor: "#1e40af",
		TextColor:       "#ffffff",
		AccentColor:     "#3b82f6",
		FontFamily:      FontSans,
	}
}

// Get returns the value of the named field.
func (r Record) Get(f Field) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldTitle:
		return r.Title
	case FieldCompany:
		return r.Company
	case FieldPhone:
		return r.Phone
	case FieldEmail:
		return r.Email
	case FieldWebsite:
		return r.Website
	case FieldBackgroundColor:
		return r.BackgroundColor
	case FieldTextColor:
		return r.TextColor
	case FieldAccentColor:
		return r.AccentColor
	case FieldFontFamily:
		return string(r.FontFamily)
	}
	return ""
}

// set assigns value to f and reports whether f named a field.
func (r *Record) set(f Field, value string) bool {
	switch f {
	case FieldName:
		r.Name = value
	case FieldTitle:
		r.Title = value
	case FieldCompany:
		r.Company = value
	case FieldPhone:
		r.Phone = value
	case FieldEmail:
		r.Email = value
	case FieldWebsite:
		r.Website = value
	case FieldBackgroundColor:
		r.BackgroundColor = value
	case FieldTextColor:
		r.TextColor = value
	case FieldAccentColor:
		r.AccentColor = value
	case FieldFontFamily:
		r.FontFamily = FontFamily(value)
	default:
		return false
	}
	return true
}

// ContactLines returns the phone, email and website lines in display order.
func (r Record) ContactLines() []string {
	return []string{r.Phone, r.Email, r.Website}
}
