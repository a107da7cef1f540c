package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/b64"
	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/input"
	"github.com/mrz1836/rcli/internal/tui"
)

type base64Options struct {
	input  string
	format string
}

// AddBase64Command adds the base64 command group to the root command.
func AddBase64Command(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode and decode base64",
	}

	addBase64Cmd(cmd, flags, "encode", "Encode a file or stdin as base64", runBase64Encode)
	addBase64Cmd(cmd, flags, "decode", "Decode base64 from a file or stdin", runBase64Decode)

	root.AddCommand(cmd)
}

type base64Runner func(cmd *cobra.Command, flags *GlobalFlags, format b64.Format, data []byte) error

func addBase64Cmd(parent *cobra.Command, flags *GlobalFlags, use, short string, run base64Runner) {
	opts := &base64Options{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateInputPath("input", opts.input); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			format, err := b64.ParseFormat(stringFlag(cmd, "format", opts.format, cfg.Base64.Format))
			if err != nil {
				return err
			}
			data, err := input.NewResolver(cmd.InOrStdin()).ReadAll(opts.input)
			if err != nil {
				return err
			}
			return run(cmd, flags, format, data)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", constants.StdinDesignator, "input file, or - for stdin")
	cmd.Flags().StringVar(&opts.format, "format", constants.DefaultBase64Format, "alphabet (standard|urlsafe)")

	parent.AddCommand(cmd)
}

func runBase64Encode(cmd *cobra.Command, flags *GlobalFlags, format b64.Format, data []byte) error {
	encoded, err := b64.Encode(data, format)
	if err != nil {
		return err
	}

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(map[string]string{"format": string(format), "encoded": encoded})
	}
	out.Value(encoded)
	return nil
}

func runBase64Decode(cmd *cobra.Command, flags *GlobalFlags, format b64.Format, data []byte) error {
	decoded, err := b64.Decode(data, format)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return tui.NewOutput(cmd.OutOrStdout(), flags.Output).
			JSON(map[string]string{"format": string(format), "decoded": string(decoded)})
	}
	// Decoded bytes are written raw so binary data survives piping.
	_, err = cmd.OutOrStdout().Write(decoded)
	return err
}
