// Package cli wires the cobra command tree for pgload.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `              _                 _
  _ __   __ _| | ___   __ _  __| |
 | '_ \ / _` + "`" + ` | |/ _ \ / _` + "`" + ` |/ _` + "`" + ` |
 | |_) | (_| | | (_) | (_| | (_| |
 | .__/ \__, |_|\___/ \__,_|\__,_|
 |_|    |___/`

var rootCmd = &cobra.Command{
	Use:   "pgload",
	Short: "One-shot CSV to PostgreSQL loader",
	Long: asciiLogo + `

pgload reads a CREATE TABLE schema file and a CSV data file, creates the
destination table if needed, normalizes the data against the declared
column types, and bulk loads it with COPY.

Missing values ("Not Provided" or empty cells) and unparseable cells load
as NULL; the row count of the CSV is always preserved.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - User denied truncate approval
  13 - Table creation or bulk copy failed
  14 - Schema file not found
  15 - Schema file contains no usable CREATE TABLE
  16 - CSV data is missing schema columns`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pgload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
