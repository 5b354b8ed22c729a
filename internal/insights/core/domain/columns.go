package domain

// Column names as they appear in the dataset header.
const (
	ColRegion                 = "Region"
	ColGender                 = "Gender"
	ColPreferredDevice        = "Preferred_Device"
	ColSignupStatus           = "Signup_Status"
	ColCourseEnrolled         = "Course_Enrolled"
	ColSatisfactionScore      = "Satisfaction_Score"
	ColCourseInterested       = "Course_Interested"
	ColAdChannel              = "Ad_Channel"
	ColPlanType               = "Plan_Type"
	ColCourseCompletionStatus = "Course_Completion_Status"
	ColInterestScore          = "Interest_Score"
	ColReferralCount          = "Referral_Count"
	ColSignupDate             = "Signup_Date"
	ColMonthlyFee             = "Monthly_Fee"
	ColEducationLevel         = "Education_Level"
)

// NotApplicable is stored for missing categorical cells and for signup
// dates of customers who never signed up.
const NotApplicable = "Not Applicable"

type ColumnKind string

const (
	KindCategorical ColumnKind = "categorical"
	KindNumeric     ColumnKind = "numeric"
	KindDate        ColumnKind = "date"
)

type Column struct {
	Name     string
	Kind     ColumnKind
	Required bool
}

// Filterable reports whether the column can appear in a FilterSpec.
func (c Column) Filterable() bool {
	return c.Kind == KindCategorical
}

// Groupable reports whether the column can partition a view.
// Referral_Count is numeric but takes few distinct values, so it groups too.
func (c Column) Groupable() bool {
	return c.Kind != KindNumeric || c.Name == ColReferralCount
}

var columns = []Column{
	{Name: ColRegion, Kind: KindCategorical, Required: true},
	{Name: ColGender, Kind: KindCategorical, Required: true},
	{Name: ColPreferredDevice, Kind: KindCategorical, Required: true},
	{Name: ColSignupStatus, Kind: KindCategorical, Required: true},
	{Name: ColCourseEnrolled, Kind: KindCategorical, Required: true},
	{Name: ColSatisfactionScore, Kind: KindNumeric, Required: true},
	{Name: ColCourseInterested, Kind: KindCategorical, Required: true},
	{Name: ColAdChannel, Kind: KindCategorical, Required: true},
	{Name: ColPlanType, Kind: KindCategorical, Required: true},
	{Name: ColCourseCompletionStatus, Kind: KindCategorical, Required: true},
	{Name: ColInterestScore, Kind: KindNumeric, Required: true},
	{Name: ColReferralCount, Kind: KindNumeric, Required: true},
	{Name: ColSignupDate, Kind: KindDate, Required: true},
	{Name: ColMonthlyFee, Kind: KindNumeric, Required: true},
	{Name: ColEducationLevel, Kind: KindCategorical},
}

var columnIndex = func() map[string]Column {
	m := make(map[string]Column, len(columns))
	for _, c := range columns {
		m[c.Name] = c
	}
	return m
}()

// Columns returns the recognized columns in dataset order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// LookupColumn finds a recognized column by its header name.
func LookupColumn(name string) (Column, bool) {
	c, ok := columnIndex[name]
	return c, ok
}

// NumericColumns lists every numeric column, the default input of a
// correlation matrix.
func NumericColumns() []string {
	var out []string
	for _, c := range columns {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// FilterableColumns lists every column a FilterSpec may constrain.
func FilterableColumns() []string {
	var out []string
	for _, c := range columns {
		if c.Filterable() {
			out = append(out, c.Name)
		}
	}
	return out
}
