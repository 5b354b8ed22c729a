package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_PageAndWhere(t *testing.T) {
	ds := NewDataset("test", []Record{{Region: "A"}, {Region: "B"}, {Region: "C"}})

	page := ds.All().Page(1, 5)
	require.Equal(t, 2, page.Len())
	assert.Equal(t, "B", page.At(0).Region)

	assert.Equal(t, 0, ds.All().Page(10, 5).Len())
	assert.Equal(t, 1, ds.All().Page(0, 1).Len())

	onlyC := ds.All().Where(func(r Record) bool { return r.Region == "C" })
	assert.Equal(t, []Record{{Region: "C"}}, onlyC.Records())
	assert.Equal(t, 0, View{}.Len())
}

func TestDataset_IsDetachedFromInput(t *testing.T) {
	in := []Record{{Region: "A"}}
	ds := NewDataset("test", in)
	in[0].Region = "Z"

	assert.Equal(t, "A", ds.All().At(0).Region)
	assert.Equal(t, "test", ds.Source())
}

func TestFilterSpec(t *testing.T) {
	base := NewFilterSpec().Allow(ColRegion, "North")
	wider := base.Allow(ColRegion, "South")

	assert.Equal(t, []string{"North"}, base.Values(ColRegion), "Allow must not mutate the receiver")
	assert.Equal(t, []string{"North", "South"}, wider.Values(ColRegion))
	assert.True(t, wider.Permits(ColRegion, "South"))
	assert.True(t, wider.Permits(ColGender, "anything"))
	assert.False(t, wider.Permits(ColRegion, "East"))

	fromMap := FilterSpecFromMap(map[string][]string{ColGender: {}})
	assert.True(t, fromMap.Constrains(ColGender))
	assert.False(t, fromMap.Permits(ColGender, "Male"))
	assert.False(t, fromMap.IsEmpty())
	assert.True(t, FilterSpec{}.IsEmpty())
}

func TestCheckHeader(t *testing.T) {
	var header []string
	for _, c := range Columns() {
		if c.Required {
			header = append(header, c.Name)
		}
	}

	assert.NoError(t, CheckHeader(header, true))
	assert.NoError(t, CheckHeader(append(header, "Customer_ID"), false))

	err := CheckHeader(append(header, "Customer_ID"), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedColumn))
	assert.True(t, errors.Is(err, ErrDataLoad))

	err = CheckHeader(header[1:], false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	var le *DataLoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, []string{ColRegion}, le.Columns)

	err = CheckHeader(append(header, ColRegion), false)
	assert.True(t, errors.Is(err, ErrDuplicateColumn))
}

func TestDataLoadError_Message(t *testing.T) {
	err := &DataLoadError{Source: "customers.csv", Row: 3, Err: &FieldError{Column: ColMonthlyFee, Value: "x", Err: ErrInvalidNumber}}

	assert.Equal(t, `load customers.csv row 3: column Monthly_Fee: invalid number "x"`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidNumber))
}
