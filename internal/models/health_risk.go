package models

// HealthRiskForm is the maternal health risk record as collected from the user.
type HealthRiskForm struct {
	Age                   string `json:"age" validate:"notblank"`
	SystolicBP            string `json:"systolicBP" validate:"notblank"`
	DiastolicBP           string `json:"diastolicBP" validate:"notblank"`
	BloodSugar            string `json:"bloodSugar" validate:"notblank"`
	BodyTemp              string `json:"bodyTemp" validate:"notblank"`
	BMI                   string `json:"bmi" validate:"notblank"`
	PreviousComplications string `json:"previousComplications" validate:"notblank"`
	PreexistingDiabetes   string `json:"preexistingDiabetes" validate:"notblank"`
	GestationalDiabetes   string `json:"gestationalDiabetes" validate:"notblank"`
	MentalHealth          string `json:"mentalHealth" validate:"notblank"`
	HeartRate             string `json:"heartRate" validate:"notblank"`
	HighBP                string `json:"highBP" validate:"notblank"`
	HighBS                string `json:"highBS" validate:"notblank"`
	Obese                 string `json:"obese" validate:"notblank"`
}

// HealthRiskPayload is the record sent to the maternal-risk prediction endpoint.
// A nil measurement could not be parsed and is sent as null.
type HealthRiskPayload struct {
	Age                   *float64 `json:"age"`
	SystolicBP            *float64 `json:"systolic_bp"`
	Diastolic             *float64 `json:"diastolic"`
	BS                    *float64 `json:"bs"`
	BodyTemp              *float64 `json:"body_temp"`
	BMI                   *float64 `json:"bmi"`
	PreviousComplications int      `json:"previous_complications"`
	PreexistingDiabetes   int      `json:"preexisting_diabetes"`
	GestationalDiabetes   int      `json:"gestational_diabetes"`
	MentalHealth          int      `json:"mental_health"`
	HeartRate             *float64 `json:"heart_rate"`
	HighBP                int      `json:"high_bp"`
	HighBS                int      `json:"high_bs"`
	Obese                 int      `json:"obese"`
}

// HealthRiskMeasurementFields are the numeric inputs, in display order.
var HealthRiskMeasurementFields = []Field[HealthRiskForm]{
	{
		Key: "age", Name: "Age", Label: "Age (years)", Input: InputNumber,
		Placeholder: "Enter age", Min: "15", Max: "50",
		Get: func(f *HealthRiskForm) string { return f.Age },
		Set: func(f *HealthRiskForm, v string) { f.Age = v },
	},
	{
		Key: "systolicBP", Name: "SystolicBP", Label: "Systolic BP (mmHg)", Input: InputNumber,
		Placeholder: "e.g., 120", Min: "60", Max: "200",
		Get: func(f *HealthRiskForm) string { return f.SystolicBP },
		Set: func(f *HealthRiskForm, v string) { f.SystolicBP = v },
	},
	{
		Key: "diastolicBP", Name: "DiastolicBP", Label: "Diastolic BP (mmHg)", Input: InputNumber,
		Placeholder: "e.g., 80", Min: "40", Max: "130",
		Get: func(f *HealthRiskForm) string { return f.DiastolicBP },
		Set: func(f *HealthRiskForm, v string) { f.DiastolicBP = v },
	},
	{
		Key: "bloodSugar", Name: "BloodSugar", Label: "Blood Sugar (mg/dL)", Input: InputNumber,
		Placeholder: "e.g., 100", Min: "50", Max: "500",
		Get: func(f *HealthRiskForm) string { return f.BloodSugar },
		Set: func(f *HealthRiskForm, v string) { f.BloodSugar = v },
	},
	{
		Key: "bodyTemp", Name: "BodyTemp", Label: "Body Temperature (°C)", Input: InputNumber,
		Placeholder: "e.g., 37", Min: "35", Max: "42", Step: "0.1",
		Get: func(f *HealthRiskForm) string { return f.BodyTemp },
		Set: func(f *HealthRiskForm, v string) { f.BodyTemp = v },
	},
	{
		Key: "bmi", Name: "BMI", Label: "BMI", Input: InputNumber,
		Placeholder: "e.g., 24.5", Min: "10", Max: "60", Step: "0.1",
		Get: func(f *HealthRiskForm) string { return f.BMI },
		Set: func(f *HealthRiskForm, v string) { f.BMI = v },
	},
	{
		Key: "heartRate", Name: "HeartRate", Label: "Heart Rate (bpm)", Input: InputNumber,
		Placeholder: "e.g., 72", Min: "40", Max: "150",
		Get: func(f *HealthRiskForm) string { return f.HeartRate },
		Set: func(f *HealthRiskForm, v string) { f.HeartRate = v },
	},
}

// HealthRiskFlagFields are the yes/no inputs, in display order.
var HealthRiskFlagFields = []Field[HealthRiskForm]{
	healthRiskFlag("previousComplications", "PreviousComplications", "Previous Complications?",
		func(f *HealthRiskForm) *string { return &f.PreviousComplications }),
	healthRiskFlag("preexistingDiabetes", "PreexistingDiabetes", "Preexisting Diabetes?",
		func(f *HealthRiskForm) *string { return &f.PreexistingDiabetes }),
	healthRiskFlag("gestationalDiabetes", "GestationalDiabetes", "Gestational Diabetes?",
		func(f *HealthRiskForm) *string { return &f.GestationalDiabetes }),
	healthRiskFlag("mentalHealth", "MentalHealth", "Mental Health Concerns?",
		func(f *HealthRiskForm) *string { return &f.MentalHealth }),
	healthRiskFlag("highBP", "HighBP", "High Blood Pressure?",
		func(f *HealthRiskForm) *string { return &f.HighBP }),
	healthRiskFlag("highBS", "HighBS", "High Blood Sugar?",
		func(f *HealthRiskForm) *string { return &f.HighBS }),
	healthRiskFlag("obese", "Obese", "Obesity?",
		func(f *HealthRiskForm) *string { return &f.Obese }),
}

// HealthRiskFields is the flat field list: measurements first, then flags.
var HealthRiskFields = concatFields(HealthRiskMeasurementFields, HealthRiskFlagFields)

func healthRiskFlag(key, name, label string, ref func(*HealthRiskForm) *string) Field[HealthRiskForm] {
	return Field[HealthRiskForm]{
		Key:     key,
		Name:    name,
		Label:   label,
		Input:   InputSelect,
		Options: yesNoOptions,
		Get:     func(f *HealthRiskForm) string { return *ref(f) },
		Set:     func(f *HealthRiskForm, v string) { *ref(f) = v },
	}
}
