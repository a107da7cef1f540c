package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/crypto"
	"github.com/mrz1836/rcli/internal/text"
	"github.com/mrz1836/rcli/internal/tui"
)

// AddTextCommand adds the text command group to the root command.
func AddTextCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign and verify text",
		Long: `Sign and verify text with a BLAKE3 keyed hash or an Ed25519 key.

Signatures are printed as unpadded URL-safe base64.`,
	}

	addTextSignCmd(cmd, flags)
	addTextVerifyCmd(cmd, flags)
	addTextGenerateCmd(cmd, flags)

	root.AddCommand(cmd)
}

type textSignOptions struct {
	input  string
	key    string
	scheme string
}

func addTextSignCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textSignOptions{}

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign text read from a file or stdin",
		Example: `  rcli text sign -k blake3.txt -i message.txt
  echo -n "hello" | rcli text sign -k ed25519.sk --format ed25519`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextSign(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", constants.StdinDesignator, "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "signing key file")
	cmd.Flags().StringVar(&opts.scheme, "format", "", "signing scheme (blake3|ed25519)")
	_ = cmd.MarkFlagRequired("key")

	parent.AddCommand(cmd)
}

func runTextSign(cmd *cobra.Command, flags *GlobalFlags, opts *textSignOptions) error {
	ctx := cmd.Context()
	logger := GetLogger()

	if err := validateInputPath("input", opts.input); err != nil {
		return err
	}
	if err := validateInputPath("key", opts.key); err != nil {
		return err
	}

	scheme, err := resolveScheme(cmd, opts.scheme)
	if err != nil {
		return err
	}

	svc := text.NewService(cmd.InOrStdin(), text.WithLogger(logger))
	sig, err := svc.Sign(ctx, text.SignRequest{
		Input:   opts.input,
		KeyPath: opts.key,
		Scheme:  scheme,
	})
	if err != nil {
		return err
	}

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(map[string]string{
			"scheme":    scheme.String(),
			"signature": sig,
		})
	}
	out.Value(sig)
	return nil
}

type textVerifyOptions struct {
	textSignOptions

	sig     string
	sigFile string
}

func addTextVerifyCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textVerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over text read from a file or stdin",
		Long: `Verify a signature produced by "rcli text sign".

Prints true when the signature matches and false otherwise. Pass the
signature inline with --sig or from a file with --sig-file.

For ed25519 the key is the public key file. A seed file ending in .sk,
as written by "rcli text generate", is also accepted.`,
		Example: `  rcli text verify -k blake3.txt -i message.txt --sig 9w1nUwM4JGplIurp2q2SwN_UvPTlEWAtlumv0dIhBHk
  rcli text verify -k ed25519.pk --format ed25519 -i message.txt --sig-file message.sig`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextVerify(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", constants.StdinDesignator, "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.key, "key", "k", "", "verifying key file (an Ed25519 seed file ending in .sk is also accepted)")
	cmd.Flags().StringVar(&opts.scheme, "format", "", "signing scheme (blake3|ed25519)")
	cmd.Flags().StringVar(&opts.sig, "sig", "", "signature text")
	cmd.Flags().StringVar(&opts.sigFile, "sig-file", "", "file holding the signature text, or - for stdin")
	_ = cmd.MarkFlagRequired("key")
	cmd.MarkFlagsMutuallyExclusive("sig", "sig-file")
	cmd.MarkFlagsOneRequired("sig", "sig-file")

	parent.AddCommand(cmd)
}

func runTextVerify(cmd *cobra.Command, flags *GlobalFlags, opts *textVerifyOptions) error {
	ctx := cmd.Context()
	logger := GetLogger()

	if err := validateInputPath("input", opts.input); err != nil {
		return err
	}
	if err := validateInputPath("key", opts.key); err != nil {
		return err
	}
	if opts.sigFile != "" {
		if err := validateInputPath("sig-file", opts.sigFile); err != nil {
			return err
		}
	}

	scheme, err := resolveScheme(cmd, opts.scheme)
	if err != nil {
		return err
	}

	svc := text.NewService(cmd.InOrStdin(), text.WithLogger(logger))
	valid, err := svc.Verify(ctx, text.VerifyRequest{
		Input:         opts.input,
		KeyPath:       opts.key,
		Scheme:        scheme,
		Signature:     opts.sig,
		SignatureFile: opts.sigFile,
	})
	if err != nil {
		return err
	}

	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(map[string]any{
			"scheme": scheme.String(),
			"valid":  valid,
		})
	}
	out.Value(strconv.FormatBool(valid))
	return nil
}

type textGenerateOptions struct {
	scheme string
	dir    string
	force  bool
}

func addTextGenerateCmd(parent *cobra.Command, flags *GlobalFlags) {
	opts := &textGenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate signing keys",
		Long: `Generate key material for a signing scheme.

blake3 writes blake3.txt, a 32-character secret.
ed25519 writes ed25519.sk (seed) and ed25519.pk (public key).

Existing files are only replaced after confirmation or with --force.`,
		Example: `  rcli text generate --dir keys
  rcli text generate --format ed25519 --dir keys --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTextGenerate(cmd, cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scheme, "format", "", "signing scheme (blake3|ed25519)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "output directory")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing key files without asking")

	parent.AddCommand(cmd)
}

func runTextGenerate(cmd *cobra.Command, w io.Writer, flags *GlobalFlags, opts *textGenerateOptions) error {
	ctx := cmd.Context()
	logger := GetLogger()

	scheme, err := resolveScheme(cmd, opts.scheme)
	if err != nil {
		return err
	}

	force := opts.force
	if !force {
		existing, existErr := text.ExistingKeyFiles(scheme, opts.dir)
		if existErr != nil {
			return existErr
		}
		if len(existing) > 0 {
			if err := confirmOverwrite(existing); err != nil {
				return err
			}
			force = true
		}
	}

	svc := text.NewService(cmd.InOrStdin(), text.WithLogger(logger))
	paths, err := svc.Generate(ctx, text.GenerateRequest{
		Scheme: scheme,
		Dir:    opts.dir,
		Force:  force,
	})
	if err != nil {
		return err
	}

	out := tui.NewOutput(w, flags.Output)
	if flags.Output == OutputJSON {
		return out.JSON(map[string]any{
			"scheme": scheme.String(),
			"files":  paths,
		})
	}
	out.Info(tui.SchemeTitle(scheme.String()) + " keys generated")
	for _, p := range paths {
		out.Success("wrote " + p)
	}
	return nil
}

// resolveScheme parses --format, falling back to the configured default.
func resolveScheme(cmd *cobra.Command, flagValue string) (crypto.Scheme, error) {
	if cmd.Flags().Changed("format") {
		return crypto.ParseScheme(flagValue)
	}

	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return 0, err
	}
	return crypto.ParseScheme(cfg.Text.Scheme)
}
