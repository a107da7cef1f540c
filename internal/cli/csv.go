package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/csvconv"
	"github.com/mrz1836/rcli/internal/errors"
	"github.com/mrz1836/rcli/internal/input"
	"github.com/mrz1836/rcli/internal/tui"
)

type csvOptions struct {
	input     string
	out       string
	format    string
	delimiter string
	header    bool
}

// AddCSVCommand adds the csv command to the root command.
func AddCSVCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &csvOptions{}

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Convert CSV to JSON, YAML or a table",
		Long: `Convert a CSV file to JSON or YAML, or render it as a table.

With a header row each record becomes an object keyed by column name;
without one each record is a list of fields. JSON and YAML are written to
--out (default output.json / output.yaml); tables go to stdout.`,
		Example: `  rcli csv -i assets/juventus.csv
  rcli csv -i data.csv --format yaml --out data.yaml
  rcli csv -i data.tsv -d '\t' --header=false --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCSV(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "CSV file, or - for stdin")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (defaults to output.<format>)")
	cmd.Flags().StringVar(&opts.format, "format", constants.DefaultCSVFormat, "output format (json|yaml|table)")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", constants.DefaultCSVDelimiter, "field delimiter")
	cmd.Flags().BoolVar(&opts.header, "header", true, "treat the first row as column names")
	_ = cmd.MarkFlagRequired("input")

	root.AddCommand(cmd)
}

func runCSV(cmd *cobra.Command, flags *GlobalFlags, opts *csvOptions) error {
	ctx := cmd.Context()
	logger := GetLogger()

	if err := validateInputPath("input", opts.input); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	format, err := csvconv.ParseFormat(stringFlag(cmd, "format", opts.format, cfg.CSV.Format))
	if err != nil {
		return err
	}
	header := cfg.CSV.Header
	if cmd.Flags().Changed("header") {
		header = opts.header
	}
	parseOpts := csvconv.Options{
		Delimiter: unescapeDelimiter(stringFlag(cmd, "delimiter", opts.delimiter, cfg.CSV.Delimiter)),
		Header:    header,
	}

	src, err := input.NewResolver(cmd.InOrStdin()).Open(opts.input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	doc, err := csvconv.Read(src, parseOpts)
	if err != nil {
		return errors.Wrapf(err, "reading %s", src.Name())
	}

	data, err := csvconv.Encode(doc, format)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("input", src.Name()).
		Str("format", string(format)).
		Int("records", len(doc.Rows)).
		Msg("csv converted")

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

	if format == csvconv.FormatTable {
		if flags.Output == OutputJSON {
			return out.JSON(doc.Records())
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dest := opts.out
	if dest == "" {
		dest = format.DefaultOutput()
	}
	if err := os.WriteFile(dest, data, constants.PublicFileMode); err != nil {
		return errors.WithKind(errors.ErrIO, err, "writing %s", dest)
	}

	if flags.Output == OutputJSON {
		return out.JSON(map[string]any{
			"input":   src.Name(),
			"output":  dest,
			"format":  string(format),
			"records": len(doc.Rows),
		})
	}
	out.Success(fmt.Sprintf("wrote %d records to %s", len(doc.Rows), dest))
	return nil
}

// unescapeDelimiter lets a tab be passed as the two characters \t.
func unescapeDelimiter(d string) string {
	if d == `\t` {
		return "\t"
	}
	return d
}
