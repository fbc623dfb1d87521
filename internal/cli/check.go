package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vvka-141/pgload/internal/config"
	"github.com/vvka-141/pgload/internal/db"
	"github.com/vvka-141/pgload/internal/files/filesystem"
	"github.com/vvka-141/pgload/internal/logging"
	"github.com/vvka-141/pgload/internal/services"
	"github.com/vvka-141/pgload/internal/ui"
	"github.com/vvka-141/pgload/pkg/pgload"
)

var checkCmd = &cobra.Command{
	Use:   "check <project_path>",
	Short: "Validate schema and data files without loading",
	Long: `Check parses the schema and data files and reports what a load would do,
without connecting to the database.

It reports the destination table name, the columns with their declared
types and classification, the row count, and per-column NULL counts after
normalization. Use it to catch schema or data problems before a load.

Examples:
  pgload check ./employees
  pgload check ./exports --schema emp.sql --data emp.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

type checkFlagValues struct {
	schemaFile, dataFile string
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.schemaFile, "schema", "",
		"Schema file name (default: schema.sql, or schema_file from pgload.yaml)")
	checkCmd.Flags().StringVar(&checkFlags.dataFile, "data", "",
		"CSV data file name (default: data.csv, or data_file from pgload.yaml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)

	projectCfg, err := config.Load(sourcePath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmt.Errorf("failed to load pgload.yaml: %w", err)
	}

	schemaFile, dataFile := resolveFileNames(checkFlags.schemaFile, checkFlags.dataFile, projectCfg)

	loader := services.NewLoadService(
		db.NewConnector,
		ui.NewInteractiveApprover(),
		logging.NewConsoleLogger(verbose),
		filesystem.NewOSFileSystem(),
	)

	report, err := loader.Check(pgload.LoadConfig{
		SourcePath: sourcePath,
		SchemaFile: schemaFile,
		DataFile:   dataFile,
	})
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	fmt.Printf("Table: %s\n", report.Table)
	fmt.Printf("Rows:  %d\n\n", report.Rows)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tTYPE\tCLASS\tNULLS")
	for _, col := range report.Columns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", col.Name, col.Type, col.Class, col.Nulls)
	}
	return w.Flush()
}
