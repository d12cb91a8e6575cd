package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/termio/foundation/utils/timex"
	"github.com/msto63/termio/internal/employee"
)

var employeeFields bool

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Read an employee record",
	Long: `Reads an employee and prints it.

By default the employee is entered as one line:
  <id>#<name>#<department>#<salary>#<yyyy-MM-DD>

With --fields every field is asked for separately and checked against the
[employee] limits of the configuration.

Examples:
  termio employee
  termio employee --fields
  echo "123456#Ann#QA#12000#1990-05-17" | termio employee`,
	Args: cobra.NoArgs,
	RunE: runEmployee,
}

func init() {
	rootCmd.AddCommand(employeeCmd)

	employeeCmd.Flags().BoolVar(&employeeFields, "fields", false, "ask for each field separately")
}

func runEmployee(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}

	if employeeFields {
		policy := employee.PolicyFromConfig(s.cfg.Employee)
		_, err = employee.ReadFields(s.reader, policy, timex.Today())
	} else {
		_, err = employee.ReadRecord(s.reader)
	}

	return s.finish(err)
}
