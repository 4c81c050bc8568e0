// Package mapper converts collected survey answers into the numeric and
// categorical schema of the prediction service. Conversions are total: bad
// input degrades to 0 or null instead of failing.
package mapper

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"maternal-screening-server/internal/models"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?(?:0[xX][0-9a-fA-F]+|\d+)`)
)

// StringToBoolean returns 1 for a case-insensitive "yes" and 0 for anything else.
func StringToBoolean(value string) int {
	if strings.ToLower(value) == "yes" {
		return 1
	}
	return 0
}

// PHQ9ResponseToNumber scores a PHQ-9 answer. The first scale phrase contained
// in the answer wins; unknown answers score 0.
func PHQ9ResponseToNumber(response string) int {
	for score, phrase := range models.PHQ9Scale {
		if strings.Contains(response, phrase) {
			return score
		}
	}
	return 0
}

// ParseFloat parses the longest leading decimal number of s, ignoring leading
// whitespace and trailing garbage. It returns nil when s has no numeric prefix
// or the value is not finite.
func ParseFloat(s string) *float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// ParseInt parses the leading integer of s, so "2.9" yields 2. A "0x" prefix
// selects base 16, anything else is base 10. It returns nil when s has no
// integer prefix or the value does not fit in an int.
func ParseInt(s string) *int {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return nil
	}
	sign, digits, base := "", m, 10
	if digits[0] == '+' || digits[0] == '-' {
		sign, digits = digits[:1], digits[1:]
	}
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits, base = digits[2:], 16
	}
	v, err := strconv.ParseInt(sign+digits, base, strconv.IntSize)
	if err != nil {
		return nil
	}
	n := int(v)
	return &n
}

// ConvertHealthRisk maps a maternal health form onto the maternal-risk payload.
func ConvertHealthRisk(form models.HealthRiskForm) models.HealthRiskPayload {
	return models.HealthRiskPayload{
		Age:                   ParseFloat(form.Age),
		SystolicBP:            ParseFloat(form.SystolicBP),
		Diastolic:             ParseFloat(form.DiastolicBP),
		BS:                    ParseFloat(form.BloodSugar),
		BodyTemp:              ParseFloat(form.BodyTemp),
		BMI:                   ParseFloat(form.BMI),
		PreviousComplications: StringToBoolean(form.PreviousComplications),
		PreexistingDiabetes:   StringToBoolean(form.PreexistingDiabetes),
		GestationalDiabetes:   StringToBoolean(form.GestationalDiabetes),
		MentalHealth:          StringToBoolean(form.MentalHealth),
		HeartRate:             ParseFloat(form.HeartRate),
		HighBP:                StringToBoolean(form.HighBP),
		HighBS:                StringToBoolean(form.HighBS),
		Obese:                 StringToBoolean(form.Obese),
	}
}

// ConvertDepression maps a depression screening form onto the depression-risk
// payload. Categorical answers pass through unchanged.
func ConvertDepression(form models.DepressionForm) models.DepressionPayload {
	return models.DepressionPayload{
		Age:                         ParseFloat(form.Age),
		NumberOfSons:                ParseInt(form.NumberOfSons),
		NumberOfDaughters:           ParseInt(form.NumberOfDaughters),
		Gravida:                     form.Gravida,
		FemaleEducation:             form.FemaleEducation,
		HusbandEducation:            form.HusbandEducation,
		WorkingStatus:               form.WorkingStatus,
		PhysicalHealth:              form.PhysicalHealth,
		PreviousMiscarriage:         form.PreviousMiscarriage,
		SufficientMoney:             form.SufficientMoney,
		AppearanceAcceptance:        form.AppearanceAcceptance,
		FamilySystem:                form.FamilySystem,
		MaleGenderPreference:        form.MaleGenderPreference,
		RelationshipWithMotherInLaw: form.RelationshipWithMotherInLaw,

		LittleInterest:       PHQ9ResponseToNumber(form.LittleInterest),
		FeelingDown:          PHQ9ResponseToNumber(form.FeelingDown),
		TroubleSleeping:      PHQ9ResponseToNumber(form.TroubleSleeping),
		FeelingTired:         PHQ9ResponseToNumber(form.FeelingTired),
		PoorAppetite:         PHQ9ResponseToNumber(form.PoorAppetite),
		FeelingBadAboutSelf:  PHQ9ResponseToNumber(form.FeelingBadAboutSelf),
		TroubleConcentrating: PHQ9ResponseToNumber(form.TroubleConcentrating),
		MovingOrSpeaking:     PHQ9ResponseToNumber(form.MovingOrSpeaking),
		ThoughtsOfHurt:       PHQ9ResponseToNumber(form.ThoughtsOfHurt),
	}
}
