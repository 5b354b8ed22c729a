package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is one customer row. Values are immutable once the dataset is built.
type Record struct {
	Region                 string
	Gender                 string
	PreferredDevice        string
	SignupStatus           string
	CourseEnrolled         string
	CourseInterested       string
	AdChannel              string
	PlanType               string
	CourseCompletionStatus string
	EducationLevel         string

	SatisfactionScore float64
	InterestScore     float64
	ReferralCount     float64
	MonthlyFee        float64

	// SignupDate is nil when the dataset holds the Not Applicable sentinel.
	SignupDate *time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02-01-2006",
}

var missingTokens = map[string]bool{
	"":               true,
	"nan":            true,
	"na":             true,
	"n/a":            true,
	"null":           true,
	"<nil>":          true,
	"not applicable": true,
}

// ParseRecord builds a Record from raw cell text keyed by column name.
// Optional columns that are absent from raw get the Not Applicable sentinel.
func ParseRecord(raw map[string]string) (Record, error) {
	var r Record
	for _, c := range columns {
		text, ok := raw[c.Name]
		if !ok && c.Required {
			return Record{}, &FieldError{Column: c.Name, Err: ErrMissingColumn}
		}
		if err := r.set(c, strings.TrimSpace(text)); err != nil {
			return Record{}, &FieldError{Column: c.Name, Value: text, Err: err}
		}
	}
	return r, nil
}

func (r *Record) set(c Column, text string) error {
	switch c.Kind {
	case KindCategorical:
		if missingTokens[strings.ToLower(text)] {
			text = NotApplicable
		}
		*r.category(c.Name) = text
	case KindNumeric:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ErrInvalidNumber
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidNumber
		}
		*r.number(c.Name) = v
	case KindDate:
		if missingTokens[strings.ToLower(text)] {
			r.SignupDate = nil
			return nil
		}
		t, err := parseDate(text)
		if err != nil {
			return err
		}
		r.SignupDate = &t
	}
	return nil
}

func parseDate(text string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func (r *Record) category(name string) *string {
	switch name {
	case ColRegion:
		return &r.Region
	case ColGender:
		return &r.Gender
	case ColPreferredDevice:
		return &r.PreferredDevice
	case ColSignupStatus:
		return &r.SignupStatus
	case ColCourseEnrolled:
		return &r.CourseEnrolled
	case ColCourseInterested:
		return &r.CourseInterested
	case ColAdChannel:
		return &r.AdChannel
	case ColPlanType:
		return &r.PlanType
	case ColCourseCompletionStatus:
		return &r.CourseCompletionStatus
	case ColEducationLevel:
		return &r.EducationLevel
	}
	panic(fmt.Sprintf("domain: %q is not a categorical column", name))
}

func (r *Record) number(name string) *float64 {
	switch name {
	case ColSatisfactionScore:
		return &r.SatisfactionScore
	case ColInterestScore:
		return &r.InterestScore
	case ColReferralCount:
		return &r.ReferralCount
	case ColMonthlyFee:
		return &r.MonthlyFee
	}
	panic(fmt.Sprintf("domain: %q is not a numeric column", name))
}

// Text returns the value of any recognized column as display text.
// Numbers use the shortest exact decimal form; dates use YYYY-MM-DD.
func (r Record) Text(name string) (string, bool) {
	c, ok := columnIndex[name]
	if !ok {
		return "", false
	}
	switch c.Kind {
	case KindCategorical:
		return *r.category(name), true
	case KindNumeric:
		return strconv.FormatFloat(*r.number(name), 'f', -1, 64), true
	default:
		if r.SignupDate == nil {
			return NotApplicable, true
		}
		return r.SignupDate.Format("2006-01-02"), true
	}
}

// Number returns the value of a numeric column.
func (r Record) Number(name string) (float64, bool) {
	c, ok := columnIndex[name]
	if !ok || c.Kind != KindNumeric {
		return 0, false
	}
	return *r.number(name), true
}

// Row renders the record in Columns() order.
func (r Record) Row() []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i], _ = r.Text(c.Name)
	}
	return row
}
