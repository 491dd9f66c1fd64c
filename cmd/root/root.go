// Package root contains the root command for the application
package root

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"fjacquet/gnc-reports/cmd/common"
	"fjacquet/gnc-reports/internal/config"
	"fjacquet/gnc-reports/internal/container"
	"fjacquet/gnc-reports/internal/dateutils"
	"fjacquet/gnc-reports/internal/logging"
	"fjacquet/gnc-reports/internal/models"
	"fjacquet/gnc-reports/internal/parser"
	"fjacquet/gnc-reports/internal/report"
	"fjacquet/gnc-reports/internal/validation"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Format     string
	Validate   bool
	ConfigFile string
	LogLevel   string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any command runs.
	AppConfig *config.Config
	// AppContainer holds the dependencies built from AppConfig.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "gnc-reports <ledger-file> [year [month]]",
		Short: "Financial reports from GnuCash books",
		Long: `gnc-reports reads a GnuCash book (gzip-compressed or plain XML) and prints
account registers, balance sheets and income statements.

Called with a ledger file only, it prints the monthly income statement of the
current year. A year selects another year and a month narrows the statement to
that single month.`,
		Args:              cobra.MaximumNArgs(3),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initializeApp,
		RunE:              runLedger,
	}

	// SharedFlags holds the values of the persistent flags.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input GnuCash file")
	flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: standard output)")
	flags.StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: text, html, json, yaml or csv (default from report.format)")
	flags.BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate the file structure before parsing")
	flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Configuration file (default: config.yaml in $HOME/.gnc-reports, .gnc-reports or .)")
	flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level overriding log.level")
}

func initializeApp(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	var (
		cfg *config.Config
		err error
	)
	if SharedFlags.ConfigFile != "" {
		cfg, err = config.LoadFromFile(SharedFlags.ConfigFile)
	} else {
		cfg, err = config.InitializeConfig()
	}
	if err != nil {
		return err
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetConfig returns the loaded configuration, or the defaults before loading.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.DefaultConfig()
	}
	return AppConfig
}

// GetContainer returns the application container, building one from GetConfig
// when no command initialized it.
func GetContainer() *container.Container {
	if AppContainer == nil {
		c, err := container.NewContainerWithLogger(GetConfig(), Log)
		if err != nil {
			Log.Fatalf("Failed to initialize container: %v", err)
		}
		AppContainer = c
	}
	return AppContainer
}

// GetLogrusAdapter returns the shared logger.
func GetLogrusAdapter() logging.Logger {
	return Log
}

// LoadBook parses the ledger at path with the configured parser.
func LoadBook(path string) (*models.Book, error) {
	c := GetContainer()
	return common.LoadBook(c.GetBookParser(), path, SharedFlags.Validate, Log)
}

// Emit renders r in the selected format to the -o file or to w.
func Emit(w io.Writer, r report.Report, caption string, allowed ...string) error {
	format := common.ResolveFormat(SharedFlags.Format, GetConfig().Report.Format)
	if err := validation.IsValidOutputFormat(format, allowed...); err != nil {
		return err
	}
	return common.WriteReport(w, GetContainer().GetReportGenerator(), r, format, caption, SharedFlags.Output, Log)
}

func runLedger(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	c := GetContainer()
	return ledgerStatement(cmd.OutOrStdout(), c.GetBookParser(), c.GetReportGenerator(), args,
		GetConfig().Report.IncludeZero, time.Now().Year())
}

// ledgerStatement implements the positional form: the monthly income statement
// of currentYear, of the given year, or of one month of that year.
func ledgerStatement(w io.Writer, p parser.FullParser, gen *report.ReportGenerator, args []string, includeAll bool, currentYear int) error {
	path := args[0]

	year := currentYear
	if len(args) > 1 {
		y, err := strconv.Atoi(args[1])
		if err != nil || validation.IsValidYear(y) != nil || y == 0 {
			return fmt.Errorf("invalid year '%s'", args[1])
		}
		year = y
	}
	month := 0
	if len(args) > 2 {
		m, err := strconv.Atoi(args[2])
		if err != nil || validation.IsValidMonth(m) != nil {
			return fmt.Errorf("invalid month '%s'", args[2])
		}
		month = m
	}

	book, err := common.LoadBook(p, path, false, Log)
	if err != nil {
		Log.WithError(err).Debug("Failed to load ledger", logging.F(logging.FieldFile, path))
		return fmt.Errorf("cannot open file '%s'", path)
	}

	var stm *report.IncomeStatement
	if month == 0 {
		stm = report.NewMonthlyIncomeStatement(book, year, includeAll)
	} else {
		period := dateutils.Month(year, time.Month(month))
		stm = report.NewPeriodIncomeStatement(book, period.Start, period.End, includeAll)
	}

	format := common.ResolveFormat(SharedFlags.Format, report.FormatText)
	return common.WriteReport(w, gen, stm, format, "Income Statement "+strconv.Itoa(year), SharedFlags.Output, Log)
}
