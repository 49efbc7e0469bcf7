package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli"
	"github.com/thenoetrevino/tasklist/internal/models"
)

// utf8BOM lets spreadsheet tools detect the encoding
const utf8BOM = "\ufeff"

var exportHeader = []string{"ID", "Title", "Notes", "Deadline", "Status", "Category"}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as CSV",
		Long: `Export every task as CSV, in list order. The delimiter comes from the
export_delimiter config setting unless --delimiter is given.

Examples:
  # Write to stdout
  tasklist export

  # Write to a file
  tasklist export --output=tasks.csv
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().String("delimiter", "", "Field delimiter (a single character)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	output, _ := cmd.Flags().GetString("output")
	delimiter, _ := cmd.Flags().GetString("delimiter")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cli.CloseCLI(cmd, cliInstance)

	if delimiter == "" {
		delimiter = cliInstance.Config.ExportDelimiter
	}
	comma, err := parseDelimiter(delimiter)
	if err != nil {
		return cli.Usage(formatter, "INVALID_DELIMITER", err, "Use a single character such as ';' or ','")
	}

	tasks, err := cliInstance.App.TaskService.ExportTasks(ctx)
	if err != nil {
		return cli.Fail(formatter, "TASK_FETCH_ERROR", err)
	}

	if output == "" {
		if err := WriteCSV(os.Stdout, tasks, comma); err != nil {
			return cli.Fail(formatter, "EXPORT_WRITE_ERROR", err)
		}
		return nil
	}

	if err := writeCSVFile(output, tasks, comma); err != nil {
		if fmtErr := formatter.Error("EXPORT_WRITE_ERROR", err.Error()); fmtErr != nil {
			return fmt.Errorf("error formatting error message: %w (original: %w)", fmtErr, err)
		}
		return &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
	}

	if formatter.Quiet {
		fmt.Println(len(tasks))
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]interface{}{
			"path":     output,
			"exported": len(tasks),
		})
	}

	fmt.Printf("✓ Exported %d tasks to %s\n", len(tasks), output)
	return nil
}

// WriteCSV writes tasks with a BOM and header row, separated by comma
func WriteCSV(w io.Writer, tasks []*models.Task, comma rune) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = comma

	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		record := []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Notes,
			t.Deadline,
			t.Status.String(),
			t.Category,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeCSVFile(path string, tasks []*models.Task, comma rune) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := WriteCSV(f, tasks, comma); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func parseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("delimiter %q is not allowed", s)
	}
	return r, nil
}
