package cli

import (
	"crypto/rand"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/passgen"
	"github.com/mrz1836/rcli/internal/tui"
)

type genPassOptions struct {
	length    int
	uppercase bool
	lowercase bool
	number    bool
	symbol    bool
}

// passwordSource supplies randomness for genpass. Tests replace it.
//
//nolint:gochecknoglobals // Test injection point
var passwordSource io.Reader = rand.Reader

// AddGenPassCommand adds the genpass command to the root command.
func AddGenPassCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &genPassOptions{}

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Long: `Generate a random password from the enabled character classes.

Every enabled class contributes at least one character. Disable a class
with e.g. --symbol=false.`,
		Example: `  rcli genpass
  rcli genpass -l 32 --symbol=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenPass(cmd, flags, opts)
		},
	}

	defaults := passgen.DefaultOptions()
	cmd.Flags().IntVarP(&opts.length, "length", "l", defaults.Length, "password length")
	cmd.Flags().BoolVar(&opts.uppercase, "uppercase", defaults.Uppercase, "include uppercase letters")
	cmd.Flags().BoolVar(&opts.lowercase, "lowercase", defaults.Lowercase, "include lowercase letters")
	cmd.Flags().BoolVar(&opts.number, "number", defaults.Number, "include digits")
	cmd.Flags().BoolVar(&opts.symbol, "symbol", defaults.Symbol, "include symbols")

	root.AddCommand(cmd)
}

func runGenPass(cmd *cobra.Command, flags *GlobalFlags, opts *genPassOptions) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	p := passgen.Options{
		Length:    cfg.GenPass.Length,
		Uppercase: cfg.GenPass.Uppercase,
		Lowercase: cfg.GenPass.Lowercase,
		Number:    cfg.GenPass.Number,
		Symbol:    cfg.GenPass.Symbol,
	}
	f := cmd.Flags()
	if f.Changed("length") {
		p.Length = opts.length
	}
	if f.Changed("uppercase") {
		p.Uppercase = opts.uppercase
	}
	if f.Changed("lowercase") {
		p.Lowercase = opts.lowercase
	}
	if f.Changed("number") {
		p.Number = opts.number
	}
	if f.Changed("symbol") {
		p.Symbol = opts.symbol
	}

	password, err := passgen.Generate(passwordSource, p)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Debug().Int("length", p.Length).Msg("password generated")

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(map[string]string{"password": password})
	}
	out.Value(password)
	return nil
}
