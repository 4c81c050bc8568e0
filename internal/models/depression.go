package models

// PHQ9Scale lists the answer phrases of a PHQ-9 item, from score 0 to 3.
var PHQ9Scale = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}

// DepressionForm is the depression screening record as collected from the user.
type DepressionForm struct {
	// demographics
	Age               string `json:"age" validate:"notblank"`
	NumberOfSons      string `json:"numberOfSons" validate:"notblank"`
	NumberOfDaughters string `json:"numberOfDaughters" validate:"notblank"`
	Gravida           string `json:"gravida" validate:"notblank"`
	FemaleEducation   string `json:"femaleEducation" validate:"notblank"`
	HusbandEducation  string `json:"husbandEducation" validate:"notblank"`

	// social and health background
	WorkingStatus               string `json:"workingStatus" validate:"notblank"`
	PhysicalHealth              string `json:"physicalHealth" validate:"notblank"`
	PreviousMiscarriage         string `json:"previousMiscarriage" validate:"notblank"`
	SufficientMoney             string `json:"sufficientMoney" validate:"notblank"`
	AppearanceAcceptance        string `json:"appearanceAcceptance" validate:"notblank"`
	FamilySystem                string `json:"familySystem" validate:"notblank"`
	MaleGenderPreference        string `json:"maleGenderPreference" validate:"notblank"`
	RelationshipWithMotherInLaw string `json:"relationshipWithMotherInLaw" validate:"notblank"`

	// PHQ-9
	LittleInterest       string `json:"littleInterest" validate:"notblank"`
	FeelingDown          string `json:"feelingDown" validate:"notblank"`
	TroubleSleeping      string `json:"troubleSleeping" validate:"notblank"`
	FeelingTired         string `json:"feelingTired" validate:"notblank"`
	PoorAppetite         string `json:"poorAppetite" validate:"notblank"`
	FeelingBadAboutSelf  string `json:"feelingBadAboutSelf" validate:"notblank"`
	TroubleConcentrating string `json:"troubleConcentrating" validate:"notblank"`
	MovingOrSpeaking     string `json:"movingOrSpeaking" validate:"notblank"`
	ThoughtsOfHurt       string `json:"thoughtsOfHurt" validate:"notblank"`
}

// DepressionPayload is the record sent to the depression-risk prediction
// endpoint. Categorical answers are forwarded verbatim.
type DepressionPayload struct {
	Age                         *float64 `json:"age"`
	NumberOfSons                *int     `json:"number_of_sons"`
	NumberOfDaughters           *int     `json:"number_of_daughters"`
	Gravida                     string   `json:"gravida"`
	FemaleEducation             string   `json:"female_education"`
	HusbandEducation            string   `json:"husband_education"`
	WorkingStatus               string   `json:"working_status"`
	PhysicalHealth              string   `json:"physical_health"`
	PreviousMiscarriage         string   `json:"previous_miscarriage"`
	SufficientMoney             string   `json:"sufficient_money"`
	AppearanceAcceptance        string   `json:"appearance_acceptance"`
	FamilySystem                string   `json:"family_system"`
	MaleGenderPreference        string   `json:"male_gender_preference"`
	RelationshipWithMotherInLaw string   `json:"relationship_with_mother_in_law"`

	LittleInterest       int `json:"little_interest"`
	FeelingDown          int `json:"feeling_down"`
	TroubleSleeping      int `json:"trouble_sleeping"`
	FeelingTired         int `json:"feeling_tired"`
	PoorAppetite         int `json:"poor_appetite"`
	FeelingBadAboutSelf  int `json:"feeling_bad_about_self"`
	TroubleConcentrating int `json:"trouble_concentrating"`
	MovingOrSpeaking     int `json:"moving_or_speaking"`
	ThoughtsOfHurt       int `json:"thoughts_of_hurt"`
}

var educationOptions = optionsOf("Graduation", "Intermediate", "Middle", "Matric", "Primary", "Uneducated")

// DepressionDemographicFields is the first screening section.
var DepressionDemographicFields = []Field[DepressionForm]{
	depressionNumber("age", "Age", "Age (years)", "Enter age", "15", "50",
		func(f *DepressionForm) *string { return &f.Age }),
	depressionNumber("numberOfSons", "NumberOfSons", "Number of Sons", "0", "0", "",
		func(f *DepressionForm) *string { return &f.NumberOfSons }),
	depressionNumber("numberOfDaughters", "NumberOfDaughters", "Number of Daughters", "0", "0", "",
		func(f *DepressionForm) *string { return &f.NumberOfDaughters }),
	depressionSelect("gravida", "Gravida", "Gravida (pregnancies)", optionsOf("Primigravida", "Multigravida"),
		func(f *DepressionForm) *string { return &f.Gravida }),
	depressionSelect("femaleEducation", "FemaleEducation", "Your Education", educationOptions,
		func(f *DepressionForm) *string { return &f.FemaleEducation }),
	depressionSelect("husbandEducation", "HusbandEducation", "Husband/Partner Education", educationOptions,
		func(f *DepressionForm) *string { return &f.HusbandEducation }),
}

// DepressionBackgroundFields is the second screening section.
var DepressionBackgroundFields = []Field[DepressionForm]{
	depressionSelect("workingStatus", "WorkingStatus", "Working Status",
		[]Option{{Value: "working", Label: "Working Lady"}, {Value: "housewife", Label: "Housewife"}},
		func(f *DepressionForm) *string { return &f.WorkingStatus }),
	depressionSelect("physicalHealth", "PhysicalHealth", "Physical Health",
		[]Option{{Value: "healthy", Label: "Healthy"}, {Value: "disability", Label: "Disability"}},
		func(f *DepressionForm) *string { return &f.PhysicalHealth }),
	depressionSelect("previousMiscarriage", "PreviousMiscarriage", "Previous Miscarriage?", yesNoOptions,
		func(f *DepressionForm) *string { return &f.PreviousMiscarriage }),
	depressionSelect("sufficientMoney", "SufficientMoney", "Sufficient Money for Basic Needs?", yesNoOptions,
		func(f *DepressionForm) *string { return &f.SufficientMoney }),
	depressionSelect("appearanceAcceptance", "AppearanceAcceptance", "Acceptance of Current Appearance?", yesNoOptions,
		func(f *DepressionForm) *string { return &f.AppearanceAcceptance }),
	depressionSelect("familySystem", "FamilySystem", "Family System",
		[]Option{{Value: "nuclear", Label: "Nuclear"}, {Value: "joint", Label: "Joint"}},
		func(f *DepressionForm) *string { return &f.FamilySystem }),
	depressionSelect("maleGenderPreference", "MaleGenderPreference", "Preference for Male Child?", yesNoOptions,
		func(f *DepressionForm) *string { return &f.MaleGenderPreference }),
	depressionSelect("relationshipWithMotherInLaw", "RelationshipWithMotherInLaw", "Relationship with Mother-in-Law",
		[]Option{{Value: "good", Label: "Good"}, {Value: "moderate", Label: "Moderate"}, {Value: "poor", Label: "Poor"}},
		func(f *DepressionForm) *string { return &f.RelationshipWithMotherInLaw }),
}

// DepressionPHQ9Fields is the third screening section, one field per PHQ-9 item.
var DepressionPHQ9Fields = []Field[DepressionForm]{
	phq9Item("littleInterest", "LittleInterest", "Little interest or pleasure in doing things",
		func(f *DepressionForm) *string { return &f.LittleInterest }),
	phq9Item("feelingDown", "FeelingDown", "Feeling down, depressed, or hopeless",
		func(f *DepressionForm) *string { return &f.FeelingDown }),
	phq9Item("troubleSleeping", "TroubleSleeping", "Trouble falling or staying asleep, or sleeping too much",
		func(f *DepressionForm) *string { return &f.TroubleSleeping }),
	phq9Item("feelingTired", "FeelingTired", "Feeling tired or having little energy",
		func(f *DepressionForm) *string { return &f.FeelingTired }),
	phq9Item("poorAppetite", "PoorAppetite", "Poor appetite or overeating",
		func(f *DepressionForm) *string { return &f.PoorAppetite }),
	phq9Item("feelingBadAboutSelf", "FeelingBadAboutSelf", "Feeling bad about yourself or that you are a failure",
		func(f *DepressionForm) *string { return &f.FeelingBadAboutSelf }),
	phq9Item("troubleConcentrating", "TroubleConcentrating", "Trouble concentrating on things",
		func(f *DepressionForm) *string { return &f.TroubleConcentrating }),
	phq9Item("movingOrSpeaking", "MovingOrSpeaking", "Moving or speaking so slowly (or the opposite - being restless)",
		func(f *DepressionForm) *string { return &f.MovingOrSpeaking }),
	phq9Item("thoughtsOfHurt", "ThoughtsOfHurt", "Thoughts that you would be better off dead",
		func(f *DepressionForm) *string { return &f.ThoughtsOfHurt }),
}

// DepressionFields is every screening field, in section order.
var DepressionFields = concatFields(DepressionDemographicFields, DepressionBackgroundFields, DepressionPHQ9Fields)

func depressionNumber(key, name, label, placeholder, lo, hi string, ref func(*DepressionForm) *string) Field[DepressionForm] {
	return Field[DepressionForm]{
		Key: key, Name: name, Label: label, Input: InputNumber,
		Placeholder: placeholder, Min: lo, Max: hi,
		Get: func(f *DepressionForm) string { return *ref(f) },
		Set: func(f *DepressionForm, v string) { *ref(f) = v },
	}
}

func depressionSelect(key, name, label string, options []Option, ref func(*DepressionForm) *string) Field[DepressionForm] {
	return Field[DepressionForm]{
		Key: key, Name: name, Label: label, Input: InputSelect, Options: options,
		Get: func(f *DepressionForm) string { return *ref(f) },
		Set: func(f *DepressionForm, v string) { *ref(f) = v },
	}
}

func phq9Item(key, name, label string, ref func(*DepressionForm) *string) Field[DepressionForm] {
	return depressionSelect(key, name, label, optionsOf(PHQ9Scale...), ref)
}

func concatFields[F any](groups ...[]Field[F]) []Field[F] {
	var out []Field[F]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
