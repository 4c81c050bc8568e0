package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("maternal-risk")
	require.NoError(t, err)
	assert.Equal(t, KindMaternalRisk, k)

	k, err = ParseKind("depression-risk")
	require.NoError(t, err)
	assert.Equal(t, KindDepressionRisk, k)

	_, err = ParseKind("anxiety")
	assert.Error(t, err)
}

func TestHealthRiskFieldsCoverForm(t *testing.T) {
	assert.Len(t, HealthRiskFields, 14)
	assert.Len(t, HealthRiskMeasurementFields, 7)
	assert.Len(t, HealthRiskFlagFields, 7)

	var form HealthRiskForm
	for _, f := range HealthRiskFields {
		f.Set(&form, f.Key+"-value")
	}
	for _, f := range HealthRiskFields {
		assert.Equal(t, f.Key+"-value", f.Get(&form), f.Key)
	}
	assert.Equal(t, "obese-value", form.Obese)
	assert.Equal(t, "systolicBP-value", form.SystolicBP)
}

func TestDepressionFieldsCoverForm(t *testing.T) {
	assert.Len(t, DepressionDemographicFields, 6)
	assert.Len(t, DepressionBackgroundFields, 8)
	assert.Len(t, DepressionPHQ9Fields, 9)
	require.Len(t, DepressionFields, 23)

	var form DepressionForm
	for _, f := range DepressionFields {
		f.Set(&form, f.Key)
	}
	values := Values(&form, DepressionFields)
	assert.Len(t, values, 23)
	for key, v := range values {
		assert.Equal(t, key, v)
	}
	assert.Equal(t, "relationshipWithMotherInLaw", form.RelationshipWithMotherInLaw)
	assert.Equal(t, "thoughtsOfHurt", form.ThoughtsOfHurt)
}

func TestFieldByKey(t *testing.T) {
	f, ok := FieldByKey(DepressionFields, "feelingDown")
	require.True(t, ok)
	assert.Equal(t, "FeelingDown", f.Name)
	assert.Len(t, f.Options, len(PHQ9Scale))

	_, ok = FieldByKey(DepressionFields, "missing")
	assert.False(t, ok)
}
