// internal/intake/form.go
package intake

// Field identifies one question of the intake form.
type Field string

const (
	FieldBrandName        Field = "brandName"
	FieldIndustry         Field = "industry"
	FieldBrandDescription Field = "brandDescription"
	FieldTargetAudience   Field = "targetAudience"
	FieldWebsiteLink      Field = "websiteLink"
)

// IntakeForm holds the brand details collected by the wizard.
type IntakeForm struct {
	BrandName        string `json:"brandName"`
	BrandDescription string `json:"brandDescription"`
	Industry         string `json:"industry"`
	TargetAudience   string `json:"targetAudience"`
	WebsiteLink      string `json:"websiteLink"`
}

func (f IntakeForm) Value(field Field) string {
	switch field {
	case FieldBrandName:
		return f.BrandName
	case FieldIndustry:
		return f.Industry
	case FieldBrandDescription:
		return f.BrandDescription
	case FieldTargetAudience:
		return f.TargetAudience
	case FieldWebsiteLink:
		return f.WebsiteLink
	}
	return ""
}

// With returns a copy of the form with field set to value.
func (f IntakeForm) With(field Field, value string) IntakeForm {
	switch field {
	case FieldBrandName:
		f.BrandName = value
	case FieldIndustry:
		f.Industry = value
	case FieldBrandDescription:
		f.BrandDescription = value
	case FieldTargetAudience:
		f.TargetAudience = value
	case FieldWebsiteLink:
		f.WebsiteLink = value
	}
	return f
}

type Question struct {
	Field       Field  `json:"field"`
	Prompt      string `json:"prompt"`
	Placeholder string `json:"placeholder"`
	Multiline   bool   `json:"multiline"`
	Required    bool   `json:"required"`
}

// Questions is the fixed order of the form sub-steps.
var Questions = []Question{
	{
		Field:       FieldBrandName,
		Prompt:      "What's your brand's name?",
		Placeholder: "Enter your brand's name",
		Required:    true,
	},
	{
		Field:       FieldIndustry,
		Prompt:      "What industry is your business in?",
		Placeholder: "e.g., Technology, Healthcare, Consulting...",
		Required:    true,
	},
	{
		Field:       FieldBrandDescription,
		Prompt:      "How would you describe what your brand does?",
		Placeholder: "Tell us about your brand in a few sentences...",
		Multiline:   true,
		Required:    true,
	},
	{
		Field:       FieldTargetAudience,
		Prompt:      "Who is your ideal customer?",
		Placeholder: "Describe your target audience",
		Required:    true,
	},
	{
		Field:       FieldWebsiteLink,
		Prompt:      "What's your website URL?",
		Placeholder: "https://yourwebsite.com",
		Required:    false,
	},
}

// LastSubStep is the index of the final question.
var LastSubStep = len(Questions) - 1

// QuestionFor returns the question definition for field.
func QuestionFor(field Field) (Question, bool) {
	for _, q := range Questions {
		if q.Field == field {
			return q, true
		}
	}
	return Question{}, false
}
