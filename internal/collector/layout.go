package collector

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"maternal-screening-server/internal/models"
)

// HealthRiskPageSize is the number of fields per health-risk page.
const HealthRiskPageSize = 4

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validator: %v", err))
	}
	return v
}

// Section is one page of a form.
type Section[F any] struct {
	Title  string            `json:"title"`
	Fields []models.Field[F] `json:"fields"`
}

// Layout is the fixed, ordered partition of a form's fields into sections.
type Layout[F any] struct {
	Kind     models.Kind  `json:"kind"`
	Title    string       `json:"title"`
	Sections []Section[F] `json:"sections"`
}

// HealthRiskLayout pages the flat health-risk field list in groups of four.
func HealthRiskLayout() Layout[models.HealthRiskForm] {
	return Layout[models.HealthRiskForm]{
		Kind:     models.KindMaternalRisk,
		Title:    models.KindMaternalRisk.Title(),
		Sections: Paginate(models.HealthRiskFields, HealthRiskPageSize),
	}
}

// DepressionLayout returns the three fixed screening sections.
func DepressionLayout() Layout[models.DepressionForm] {
	return Layout[models.DepressionForm]{
		Kind:  models.KindDepressionRisk,
		Title: models.KindDepressionRisk.Title(),
		Sections: []Section[models.DepressionForm]{
			{Title: "Demographic Information", Fields: models.DepressionDemographicFields},
			{Title: "Social and Health Background", Fields: models.DepressionBackgroundFields},
			{Title: "PHQ-9 Depression Screening (Past 2 Weeks)", Fields: models.DepressionPHQ9Fields},
		},
	}
}

// Paginate splits fields into consecutive pages of at most perPage fields.
func Paginate[F any](fields []models.Field[F], perPage int) []Section[F] {
	if perPage <= 0 {
		perPage = len(fields)
	}
	var pages []Section[F]
	for start := 0; start < len(fields); start += perPage {
		end := min(start+perPage, len(fields))
		pages = append(pages, Section[F]{
			Title:  fmt.Sprintf("Page %d", len(pages)+1),
			Fields: fields[start:end],
		})
	}
	return pages
}

// TotalSections returns the number of sections.
func (l Layout[F]) TotalSections() int {
	return len(l.Sections)
}

// Fields returns every field in section order.
func (l Layout[F]) Fields() []models.Field[F] {
	var out []models.Field[F]
	for _, s := range l.Sections {
		out = append(out, s.Fields...)
	}
	return out
}

// IsSectionValid reports whether every field of the 1-based section holds a
// non-blank value. Sections outside the layout are never valid.
func (l Layout[F]) IsSectionValid(form *F, section int) bool {
	if section < 1 || section > len(l.Sections) {
		return false
	}
	fields := l.Sections[section-1].Fields
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return validate.StructPartial(form, names...) == nil
}

// IncompleteSections lists the 1-based sections that are not yet valid.
func (l Layout[F]) IncompleteSections(form *F) []int {
	var out []int
	for i := range l.Sections {
		if !l.IsSectionValid(form, i+1) {
			out = append(out, i+1)
		}
	}
	return out
}

// IsComplete reports whether all sections are valid.
func (l Layout[F]) IsComplete(form *F) bool {
	return len(l.IncompleteSections(form)) == 0
}

// Check returns an *IncompleteError when any section is invalid.
func (l Layout[F]) Check(form *F) error {
	if missing := l.IncompleteSections(form); len(missing) > 0 {
		return &IncompleteError{Sections: missing}
	}
	return nil
}
