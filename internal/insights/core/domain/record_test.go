package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow() map[string]string {
	return map[string]string{
		ColRegion:                 "North",
		ColGender:                 "Female",
		ColPreferredDevice:        "Laptop",
		ColSignupStatus:           "Yes",
		ColCourseEnrolled:         "Yes",
		ColSatisfactionScore:      "7",
		ColCourseInterested:       "Data Science",
		ColAdChannel:              "Google Ads",
		ColPlanType:               "Premium",
		ColCourseCompletionStatus: "",
		ColInterestScore:          "81.5",
		ColReferralCount:          "2",
		ColSignupDate:             "2024-03-05",
		ColMonthlyFee:             "29.99",
	}
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord(rawRow())
	require.NoError(t, err)

	assert.Equal(t, "North", r.Region)
	assert.Equal(t, 7.0, r.SatisfactionScore)
	assert.Equal(t, 81.5, r.InterestScore)
	assert.Equal(t, NotApplicable, r.CourseCompletionStatus)
	assert.Equal(t, NotApplicable, r.EducationLevel, "optional column absent")
	require.NotNil(t, r.SignupDate)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *r.SignupDate)

	text, ok := r.Text(ColMonthlyFee)
	assert.True(t, ok)
	assert.Equal(t, "29.99", text)
	text, _ = r.Text(ColSignupDate)
	assert.Equal(t, "2024-03-05", text)
}

func TestParseRecord_DateSentinel(t *testing.T) {
	raw := rawRow()
	raw[ColSignupDate] = "Not Applicable"

	r, err := ParseRecord(raw)
	require.NoError(t, err)

	assert.Nil(t, r.SignupDate)
	text, _ := r.Text(ColSignupDate)
	assert.Equal(t, NotApplicable, text)
}

func TestParseRecord_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]string)
		column string
		want   error
	}{
		{"bad number", func(m map[string]string) { m[ColSatisfactionScore] = "high" }, ColSatisfactionScore, ErrInvalidNumber},
		{"nan number", func(m map[string]string) { m[ColMonthlyFee] = "NaN" }, ColMonthlyFee, ErrInvalidNumber},
		{"empty number", func(m map[string]string) { m[ColInterestScore] = "" }, ColInterestScore, ErrInvalidNumber},
		{"bad date", func(m map[string]string) { m[ColSignupDate] = "yesterday" }, ColSignupDate, ErrInvalidDate},
		{"missing column", func(m map[string]string) { delete(m, ColGender) }, ColGender, ErrMissingColumn},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := rawRow()
			tc.mutate(raw)

			_, err := ParseRecord(raw)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.column, fe.Column)
		})
	}
}

func TestRecord_NumberRejectsCategorical(t *testing.T) {
	r, err := ParseRecord(rawRow())
	require.NoError(t, err)

	_, ok := r.Number(ColRegion)
	assert.False(t, ok)
	_, ok = r.Text("Customer_ID")
	assert.False(t, ok)
	assert.Len(t, r.Row(), len(Columns()))
}
