package prediction

import (
	"bytes"
	"encoding/json"
	"fmt"

	"maternal-screening-server/internal/models"
)

// Result is the display-ready answer plus the untouched service response.
type Result struct {
	RiskLevel string          `json:"riskLevel"`
	Message   string          `json:"message"`
	Raw       json.RawMessage `json:"raw"`
	HighRisk  bool            `json:"-"`
}

type wording struct {
	fallbackField string
	highLabel     string
	highMessage   string
	lowLabel      string
	lowMessage    string
}

var wordings = map[models.Kind]wording{
	models.KindMaternalRisk: {
		fallbackField: "risk_level",
		highLabel:     "High Risk",
		highMessage:   "Your maternal health risk assessment indicates a HIGH RISK status. Please consult with your healthcare provider for further evaluation and guidance.",
		lowLabel:      "Low Risk",
		lowMessage:    "Your maternal health risk assessment indicates a LOW RISK status. Continue with regular prenatal care and monitoring.",
	},
	models.KindDepressionRisk: {
		fallbackField: "depression_status",
		highLabel:     "Depressed",
		highMessage:   "Your depression screening indicates signs of depression. Please reach out to a mental health professional for support and guidance.",
		lowLabel:      "Not Depressed",
		lowMessage:    "Your depression screening indicates no significant signs of depression. Maintain your mental health with regular self-care practices.",
	},
}

// Interpret reads the service response for kind.
//
// The outcome is the first truthy value among "prediction" and the kind's
// fallback field ("risk_level" or "depression_status"), else 0. Truthy means
// a non-zero number, a non-empty string, true, or any object or array, so a
// prediction of 0 defers to the fallback field. Only the number 1 is high
// risk. A response that is valid JSON but not an object carries no fields and
// reads as low risk, except a null body, which is rejected with ErrDecode.
func Interpret(kind models.Kind, raw []byte) (*Result, error) {
	w, ok := wordings[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !json.Valid(raw) || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, ErrDecode
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = nil
	}

	value := Resolve(fields, "prediction", w.fallbackField)
	high := isOne(value)

	result := &Result{
		RiskLevel: w.lowLabel,
		Message:   w.lowMessage,
		Raw:       json.RawMessage(raw),
		HighRisk:  high,
	}
	if high {
		result.RiskLevel = w.highLabel
		result.Message = w.highMessage
	}
	return result, nil
}

// Resolve returns the first truthy value among keys, or 0.
func Resolve(fields map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := fields[k]; ok && truthy(v) {
			return v
		}
	}
	return float64(0)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

func isOne(v any) bool {
	f, ok := v.(float64)
	return ok && f == 1
}
