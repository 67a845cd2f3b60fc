// Package main provides the CLI entry point for investidata.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/investidata-go/internal/config"
	"github.com/ukaji3/investidata-go/internal/logging"
	"github.com/ukaji3/investidata-go/internal/session"
	"github.com/ukaji3/investidata-go/pkg/investidata"
	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
	"github.com/ukaji3/investidata-go/pkg/investidata/output"
)

var (
	configPath string
	outputPath string
	pretty     bool
	jsonOut    bool
	csvPath    string
	xlsxPath   string
	width      int

	cfg config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "investidata",
		Short: "Triage mobile-forensics spreadsheet exports",
		Long: `investidata classifies the sheets and columns of a UFED-style Excel
export, scans message bodies for alert keywords and summarizes phones,
e-mails, device identity, interlocutors and activity over time.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: ./investidata.yaml or user config dir)")
	pf.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error")
	pf.String(config.KeyTables, "", "YAML keyword tables merged over the defaults")
	pf.Int(config.KeyTopN, 10, "Length of ranked tables")
	pf.Bool(config.KeyFoldAccents, false, "Ignore accents when matching sheet and column names")
	pf.String(config.KeyTimezone, "", "Zone for timestamps without one (default: UTC)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [input.xlsx]",
		Short: "Analyze a workbook and render a report",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	af := analyzeCmd.Flags()
	af.StringVarP(&outputPath, "output", "o", "", "Write run metadata JSON to this file")
	af.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	af.BoolVar(&jsonOut, "json", false, "Print the full report as JSON instead of rendering it")
	af.StringVar(&csvPath, "csv", "", "Export keyword-hit message rows as CSV (- for stdout)")
	af.StringVar(&xlsxPath, "xlsx", "", "Export keyword-hit message rows as XLSX (- for stdout)")
	af.String(config.KeyTopic, "", "View to render: summary, device, messages, contacts, locations, apps, accounts, calls, web")
	af.IntVar(&width, "width", 0, "Table width (default: terminal width)")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List sheets and their detected categories",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	tablesCmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the effective keyword tables as YAML",
		Args:  cobra.NoArgs,
		RunE:  runTables,
	}

	rootCmd.AddCommand(analyzeCmd, sheetsCmd, tablesCmd)
	return rootCmd
}

// setup resolves the configuration and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(configPath)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg = config.FromViper(v)
	logging.Init(jsonOut, logging.ParseLevel(cfg.LogLevel))
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, key := range []string{
		config.KeyLogLevel, config.KeyTables, config.KeyTopN,
		config.KeyFoldAccents, config.KeyTimezone, config.KeyTopic,
	} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func load(path string) (*models.Workbook, investidata.Options, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, opts, err
	}
	wb, err := investidata.Load(path, opts)
	if err != nil {
		return nil, opts, fmt.Errorf("load failed: %w", err)
	}
	return wb, opts, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	wb, opts, err := load(inputPath)
	if err != nil {
		return err
	}
	rep := investidata.Analyze(wb, opts)
	slog.Info("analysis complete", "book", wb.BookName, "sections", len(rep.Sections), "unavailable", len(rep.Unavailable))

	// Write run metadata
	if outputPath != "" {
		data, err := output.MetadataToJSON(&rep.Metadata, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if csvPath != "" || xlsxPath != "" {
		if err := exportHits(cmd.OutOrStdout(), wb, rep); err != nil {
			return err
		}
		// An export streamed to stdout replaces the report.
		if csvPath == stdoutPath || xlsxPath == stdoutPath {
			return nil
		}
	}

	if jsonOut {
		data, err := output.ToJSON(rep, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	st := session.New(inputPath, rep)
	if err := st.SetTopic(cfg.Topic); err != nil {
		return err
	}
	return st.Render(cmd.OutOrStdout(), output.RenderOptions{
		Width: width,
		Color: output.ShouldUseColor(),
	})
}

// stdoutPath selects stdout for an export flag.
const stdoutPath = "-"

// exportHits writes the message rows that hit any alert category.
func exportHits(stdout io.Writer, wb *models.Workbook, rep *models.Report) error {
	if csvPath == stdoutPath && xlsxPath == stdoutPath {
		return fmt.Errorf("export failed: --csv and --xlsx cannot both write to stdout")
	}
	sec, ok := rep.Section(models.CategoryMessages)
	if !ok || sec.Result == nil {
		return fmt.Errorf("export failed: %w", &models.MissingCategoryError{Category: models.CategoryMessages})
	}
	t := wb.Table(sec.Sheet)
	mask := sec.Result.AnyHit
	if mask == nil {
		// No keyword scan means no hit rows, not every row.
		mask = []bool{}
	}

	switch csvPath {
	case "":
	case stdoutPath:
		if err := output.WriteRowsCSV(stdout, t, mask); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	default:
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", csvPath, err)
		}
		if err := output.WriteRowsCSV(f, t, mask); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", csvPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	switch xlsxPath {
	case "":
	case stdoutPath:
		if err := output.WriteRowsXLSXTo(stdout, t, mask); err != nil {
			return fmt.Errorf("failed to write xlsx: %w", err)
		}
	default:
		if err := output.WriteRowsXLSX(xlsxPath, t, mask); err != nil {
			return fmt.Errorf("failed to write %s: %w", xlsxPath, err)
		}
	}
	slog.Info("exported alert rows", "sheet", sec.Sheet, "rows", sec.Result.HitRows)
	return nil
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, opts, err := load(args[0])
	if err != nil {
		return err
	}
	mapping := investidata.Classify(wb, opts)

	byName := make(map[string][]string)
	for _, c := range models.Categories {
		if sheet, ok := mapping.Sheet(c); ok {
			byName[sheet] = append(byName[sheet], string(c))
		}
	}

	out := cmd.OutOrStdout()
	for _, name := range wb.SheetNames {
		t := wb.Table(name)
		fmt.Fprintf(out, "%s\t%d rows\t%v\n", name, t.Len(), byName[name])
	}
	for _, w := range wb.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return nil
}

func runTables(cmd *cobra.Command, args []string) error {
	tables, err := cfg.Tables()
	if err != nil {
		return err
	}
	data, err := lexicon.Marshal(tables)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
