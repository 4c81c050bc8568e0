package models

import "fmt"

// Kind identifies an assessment type. The value doubles as the path segment
// of the external prediction endpoint.
type Kind string

const (
	KindMaternalRisk   Kind = "maternal-risk"
	KindDepressionRisk Kind = "depression-risk"
)

// Kinds lists the supported assessment types.
var Kinds = []Kind{KindMaternalRisk, KindDepressionRisk}

// ParseKind converts a path or claim value into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown assessment kind %q", s)
}

// Title returns the human readable name of the assessment.
func (k Kind) Title() string {
	switch k {
	case KindMaternalRisk:
		return "Maternal Health Assessment"
	case KindDepressionRisk:
		return "Maternal Depression Screening"
	}
	return string(k)
}
