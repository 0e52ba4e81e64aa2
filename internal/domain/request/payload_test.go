package request

import (
	"testing"

	"github.com/kimce-studio/workday-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload_TimeOff(t *testing.T) {
	payload, err := ParsePayload(TypeVacation, map[string]string{
		"inicio": "2026-03-02T00:00:00Z",
		"fin":    "2026-03-06T00:00:00Z",
	})
	require.NoError(t, err)

	timeOff, ok := payload.(TimeOffPayload)
	require.True(t, ok)
	assert.True(t, timeOff.End.After(timeOff.Start))
}

func TestParsePayload_TimeOffMissingSpan(t *testing.T) {
	for _, typ := range []Type{TypeVacation, TypeCompDay, TypePermit} {
		_, err := ParsePayload(typ, map[string]string{})
		require.Error(t, err, "type %s", typ)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "inicio")
		assert.Contains(t, details, "fin")
	}
}

func TestParsePayload_TimeOffInvertedSpan(t *testing.T) {
	_, err := ParsePayload(TypePermit, map[string]string{
		"inicio": "2026-03-06T00:00:00Z",
		"fin":    "2026-03-02T00:00:00Z",
	})
	require.Error(t, err)
}

func TestParsePayload_Hours(t *testing.T) {
	payload, err := ParsePayload(TypeOvertime, map[string]string{
		"horas":  "2.5",
		"motivo": "Evento",
	})
	require.NoError(t, err)

	hours, ok := payload.(HoursPayload)
	require.True(t, ok)
	assert.Equal(t, 2.5, hours.Hours)
	assert.Equal(t, "Evento", hours.Reason)
}

func TestParsePayload_HoursRejectsNonPositive(t *testing.T) {
	cases := []string{"", "0", "-1", "abc"}
	for _, raw := range cases {
		_, err := ParsePayload(TypeCreditUsage, map[string]string{"horas": raw})
		assert.Error(t, err, "horas=%q", raw)
	}
}

func TestParsePayload_SpecialActivity(t *testing.T) {
	payload, err := ParsePayload(TypeSpecialActivity, map[string]string{
		"inicio":    "2026-03-02T10:00:00Z",
		"fin":       "2026-03-02T14:00:00Z",
		"actividad": "Workshop",
		"proyecto":  "interno",
		"horas":     "4",
	})
	require.NoError(t, err)

	activity, ok := payload.(ActivityPayload)
	require.True(t, ok)
	assert.Equal(t, "Workshop", activity.Activity)
	assert.Equal(t, "interno", activity.Project)
	assert.Equal(t, 4.0, activity.Hours)
}

func TestParsePayload_SpecialActivityRequiresActivity(t *testing.T) {
	_, err := ParsePayload(TypeSpecialActivity, map[string]string{
		"inicio": "2026-03-02T10:00:00Z",
		"fin":    "2026-03-02T14:00:00Z",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "actividad")
}

func TestParsePayload_UnknownType(t *testing.T) {
	_, err := ParsePayload(Type("sabatico"), map[string]string{})
	assert.ErrorIs(t, err, ErrUnknownType)
}
