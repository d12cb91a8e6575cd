package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/pkg/core/config"
	"github.com/msto63/termio/pkg/core/version"
)

// resetFlags restores every flag to its default between executions
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Get().String()+"\n", out)
}

func TestEmployeeRecordMode(t *testing.T) {
	out, err := execute(t, "bad\n123456#Ann#QA#12000#1990-05-17\n", "employee")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrong format for Employee data: expected 5 fields separated by '#', got 1\n")
	assert.True(t, strings.HasSuffix(out,
		"You are entered the following Employee data\n"+
			"Employee[id=123456, name=Ann, department=QA, salary=12000, birthDate=1990-05-17]\n"), out)
}

func TestEmployeeFieldMode(t *testing.T) {
	birth := timex.FormatISODate(timex.YearsBefore(timex.Today(), 30))
	input := strings.Join([]string{"123456", "Ann", "QA", "12000", birth}, "\n") + "\n"

	out, err := execute(t, input, "employee", "--fields")

	require.NoError(t, err)
	assert.Equal(t,
		"Enter ID:Enter name:Enter department:Enter salary:Enter birth date:"+
			"Entered employee data\n"+
			"Employee[id=123456, name=Ann, department=QA, salary=12000, birthDate="+birth+"]\n",
		out)
}

func TestEmployeeEndOfInput(t *testing.T) {
	_, err := execute(t, "", "employee")

	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeDeviceError))
}

func TestReadInt(t *testing.T) {
	out, err := execute(t, "x\n5\n", "read", "int")

	require.NoError(t, err)
	assert.Equal(t,
		"Enter value: Wrong input: strconv.ParseInt: parsing \"x\": invalid syntax\nEnter value: 5\n",
		out)
}

func TestReadKinds(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		last  string
		lines []string
	}{
		{
			name:  "long",
			stdin: "9223372036854775807\n",
			args:  []string{"read", "long"},
			last:  "9223372036854775807",
		},
		{
			name:  "double",
			stdin: "abc\n2.50\n",
			args:  []string{"read", "double", "--error-prompt", "Bad"},
			last:  "2.5",
			lines: []string{`Bad: strconv.ParseFloat: parsing "abc": invalid syntax`},
		},
		{
			name:  "range",
			stdin: "30001\n30000\n",
			args:  []string{"read", "range", "--min", "5000", "--max", "30000"},
			last:  "30000",
			lines: []string{"Wrong input: the number should be in range between 5000 and 30000"},
		},
		{
			name:  "range legacy",
			stdin: "30001\n30000\n",
			args:  []string{"read", "range", "--min", "5000", "--max", "30000", "--legacy-messages"},
			last:  "30000",
			lines: []string{"Wrong input: The number should be in range between5000.0and30000.0"},
		},
		{
			name:  "range german",
			stdin: "1\n5000\n",
			args:  []string{"read", "range", "--min", "5000", "--max", "30000", "--locale", "de"},
			last:  "5000",
			lines: []string{"Wrong input: die Zahl sollte im Bereich zwischen 5000 und 30000 liegen"},
		},
		{
			name:  "date",
			stdin: "2001-5-1\n2001-05-01\n",
			args:  []string{"read", "date"},
			last:  "2001-05-01",
		},
		{
			name:  "daterange",
			stdin: "2006-01-01\n2005-12-31\n",
			args:  []string{"read", "daterange", "--from", "2000-01-01", "--to", "2005-12-31"},
			last:  "2005-12-31",
			lines: []string{"Wrong input: the date should be in range between 2000-01-01 and 2005-12-31"},
		},
		{
			name:  "options",
			stdin: "qa\nQA\n",
			args:  []string{"read", "options", "--option", "QA", "--option", "Audit"},
			last:  "QA",
			lines: []string{"Wrong input: the entered data doesn't match the required format"},
		},
		{
			name:  "pattern",
			stdin: "A1\nAnn\n",
			args:  []string{"read", "pattern", "--pattern", "^[A-Z][a-z]{2,}$", "--prompt", "Name? "},
			last:  "Ann",
			lines: []string{"Wrong input: the entered data doesn't match the required format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(out, tt.last+"\n"), out)
			for _, line := range tt.lines {
				assert.Contains(t, out, line+"\n")
			}
		})
	}
}

func TestReadUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"range without max", []string{"read", "range", "--min", "1"}},
		{"range inverted", []string{"read", "range", "--min", "9", "--max", "1"}},
		{"daterange without to", []string{"read", "daterange", "--from", "2000-01-01"}},
		{"daterange bad date", []string{"read", "daterange", "--from", "2000-13-01", "--to", "2001-01-01"}},
		{"options without option", []string{"read", "options"}},
		{"pattern without pattern", []string{"read", "pattern"}},
		{"pattern does not compile", []string{"read", "pattern", "--pattern", "("}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "1\n", tt.args...)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput), err.Error())
			assert.Empty(t, out)
		})
	}
}

func TestReadRejectsUnknownKind(t *testing.T) {
	_, err := execute(t, "", "read", "bogus")
	assert.Error(t, err)
}

func TestInvalidSessionFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"ui", []string{"read", "int", "--ui", "gui"}},
		{"locale", []string{"read", "int", "--locale", "xx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "1\n", tt.args...)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig), err.Error())
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termio.toml")
	require.NoError(t, os.WriteFile(path, []byte("[console]\nlegacy_messages = true\n\n[employee]\nmax_salary = 8000\n"), 0o600))

	out, err := execute(t, "9000\n8000\n", "read", "range", "--min", "5000", "--max", "30000", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "The number should be in range between5000.0and30000.0")
}
