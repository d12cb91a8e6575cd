package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	"github.com/msto63/termio/foundation/core/validation"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/internal/console"
	"github.com/msto63/termio/internal/console/consoletest"
	"github.com/msto63/termio/pkg/core/config"
)

var sample = Employee{
	ID:         123456,
	Name:       "Ann",
	Department: "QA",
	Salary:     12000,
	BirthDate:  timex.Date(1990, time.May, 17),
}

func TestEmployeeString(t *testing.T) {
	assert.Equal(t,
		"Employee[id=123456, name=Ann, department=QA, salary=12000, birthDate=1990-05-17]",
		sample.String())
}

func TestParseRecord(t *testing.T) {
	e, err := ParseRecord("123456#Ann#QA#12000#1990-05-17")
	require.NoError(t, err)
	assert.Equal(t, sample, e)
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"four fields", "1#Ann#QA#100", "expected 5 fields separated by '#', got 4"},
		{"six fields", "1#Ann#QA#100#1990-05-17#x", "expected 5 fields separated by '#', got 6"},
		{"trailing separator", "1#Ann#QA#100#1990-05-17#", "expected 5 fields separated by '#', got 6"},
		{"empty line", "", "expected 5 fields separated by '#', got 1"},
		{"bad id", "x#Ann#QA#100#1990-05-17", `id: strconv.ParseInt: parsing "x": invalid syntax`},
		{"salary overflow", "1#Ann#QA#3000000000#1990-05-17", `salary: strconv.ParseInt: parsing "3000000000": value out of range`},
		{"bad date", "1#Ann#QA#100#1990-02-30", `birthDate: parsing time "1990-02-30": day out of range`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))
		})
	}
}

func TestParseRecordKeepsRawText(t *testing.T) {
	e, err := ParseRecord("1# Ann ##-5#2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, " Ann ", e.Name)
	assert.Equal(t, "", e.Department)
	assert.Equal(t, -5, e.Salary)
}

func TestReadRecord(t *testing.T) {
	src := consoletest.New("123456#Ann#QA", "123456#Ann#QA#12000#1990-05-17")
	r := console.NewReader(src)

	e, err := ReadRecord(r)

	require.NoError(t, err)
	assert.Equal(t, sample, e)
	assert.Equal(t, []string{RecordPrompt, RecordPrompt}, src.Prompts)
	assert.Equal(t, []string{
		"Wrong format for Employee data: expected 5 fields separated by '#', got 3",
		"You are entered the following Employee data",
		"Employee[id=123456, name=Ann, department=QA, salary=12000, birthDate=1990-05-17]",
	}, src.Lines)
}

func TestReadRecordEndOfInput(t *testing.T) {
	src := consoletest.New()
	_, err := ReadRecord(console.NewReader(src))

	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDeviceError))
	assert.Empty(t, src.Lines)
}

var now = timex.Date(2024, time.June, 15)

func TestReadFields(t *testing.T) {
	src := consoletest.New(
		"99999", "123456",
		"ann", "Ann",
		"qa", "QA",
		"30001", "12000",
		"2010-01-01", "1990-05-17",
	)
	r := console.NewReader(src)

	e, err := ReadFields(r, DefaultPolicy(), now)

	require.NoError(t, err)
	assert.Equal(t, sample, e)
	assert.Equal(t, []string{
		PromptID, PromptID,
		PromptName, PromptName,
		PromptDepartment, PromptDepartment,
		PromptSalary, PromptSalary,
		PromptBirthDate, PromptBirthDate,
	}, src.Prompts)
	assert.Equal(t, []string{
		"Wrong format for ID: the number should be in range between 100000 and 999999",
		"Wrong format for name: the entered data doesn't match the required format",
		"Wrong format for department: the entered data doesn't match the required format",
		"Wrong format for salary: the number should be in range between 5000 and 30000",
		"Wrong format for birth date: the date should be in range between 1954-06-15 and 2006-06-15",
		"Entered employee data",
		sample.String(),
	}, src.Lines)
}

func TestReadFieldsMatchesRecordMode(t *testing.T) {
	fromFields, err := ReadFields(
		console.NewReader(consoletest.New("123456", "Ann", "QA", "12000", "1990-05-17")),
		DefaultPolicy(), now)
	require.NoError(t, err)

	fromRecord, err := ReadRecord(console.NewReader(consoletest.New("123456#Ann#QA#12000#1990-05-17")))
	require.NoError(t, err)

	assert.Equal(t, fromRecord, fromFields)
}

func TestReadFieldsAgeBounds(t *testing.T) {
	tests := []struct {
		name string
		date string
		ok   bool
	}{
		{"exactly 18", "2006-06-15", true},
		{"one day short of 18", "2006-06-16", false},
		{"exactly 70", "1954-06-15", true},
		{"older than 70", "1954-06-14", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := consoletest.New("123456", "Ann", "QA", "12000", tt.date, "1990-05-17")
			e, err := ReadFields(console.NewReader(src), DefaultPolicy(), now)
			require.NoError(t, err)

			if tt.ok {
				assert.Equal(t, tt.date, timex.FormatISODate(e.BirthDate))
			} else {
				assert.Equal(t, "1990-05-17", timex.FormatISODate(e.BirthDate))
			}
		})
	}
}

func TestReadFieldsTruncatesFractions(t *testing.T) {
	src := consoletest.New("123456.9", "Ann", "QA", "12000.5", "1990-05-17")

	e, err := ReadFields(console.NewReader(src), DefaultPolicy(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(123456), e.ID)
	assert.Equal(t, 12000, e.Salary)
}

func TestReadFieldsStopsOnDeviceError(t *testing.T) {
	src := consoletest.New("123456", "Ann")

	_, err := ReadFields(console.NewReader(src), DefaultPolicy(), now)

	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDeviceError))
	assert.Equal(t, PromptDepartment, src.Prompts[len(src.Prompts)-1])
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.Default().Employee)
	assert.Equal(t, DefaultPolicy(), p)

	from, to := p.BirthDateRange(now)
	assert.Equal(t, timex.Date(1954, time.June, 15), from)
	assert.Equal(t, timex.Date(2006, time.June, 15), to)
}

func TestValidName(t *testing.T) {
	p := DefaultPolicy()
	for name, want := range map[string]bool{
		"Ann": true, "Bob": true, "Maximilian": true,
		"ann": false, "A1": false, "An": false, "ANN": false, "Ann ": false, "": false,
	} {
		assert.Equal(t, want, p.ValidName(name), name)
	}
}

func TestNameRuleLengthLimit(t *testing.T) {
	p := DefaultPolicy()
	p.MaxNameLength = 5

	assert.True(t, p.ValidName("Annie"))
	assert.False(t, p.ValidName("Maximilian"))

	result := p.NameRule().Validate("Maximilian")
	assert.True(t, result.HasError(validation.CodeFormat))
	assert.False(t, result.HasError(validation.CodePattern), "chain stops at the length check")
}

func TestReadFieldsNameTooLong(t *testing.T) {
	p := DefaultPolicy()
	p.MaxNameLength = 5
	src := consoletest.New("123456", "Maximilian", "Annie", "QA", "12000", "1990-05-17")

	e, err := ReadFields(console.NewReader(src), p, now)

	require.NoError(t, err)
	assert.Equal(t, "Annie", e.Name)
	assert.Contains(t, src.Lines, ErrorPromptName+": the entered data doesn't match the required format")
}
