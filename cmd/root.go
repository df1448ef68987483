// Package cmd provides the root command and CLI setup for reext.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reext/internal/adapter"
	"github.com/mouse-blink/reext/internal/controller"
	"github.com/mouse-blink/reext/internal/domain"
	m "github.com/mouse-blink/reext/internal/model"
)

var fsAdapter adapter.SourceFSAdapter = adapter.NewLocalSourceFSAdapter()

// newUI binds the UI to the output of the running command.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd)
}

var newWorkflow = func(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, ui)
}

var pathFlag string
var modeFlag m.Mode
var regexFlag string
var extensionFlag string
var dryRunFlag bool
var excludeFlags []string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reext --path DIR (--modo MODE | --regex RE --extension-nueva EXT)",
		Short: "Rename files by extension, gated by their contents",
		Long: `reext walks a directory tree and changes the extension of the files that
pass an extension filter and, when required, contain a line matching a
regular expression.

Modes:
  js-a-jsx   .js files containing a closing tag such as </div> become .jsx
  jsx-a-js   every .jsx file becomes .js, without reading it

Without --modo, --regex and --extension-nueva select any file with a
matching line and give it the new extension.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogger(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := resolvePlan(cmd)
			if err != nil {
				return err
			}

			_, err = newWorkflow(newUI(cmd)).Run(cmd.Context(), plan)

			return err
		},
	}

	modeFlag = m.ModeNone

	flags := cmd.PersistentFlags()
	flags.StringVar(&pathFlag, "path", "", "base path to search for files")
	flags.Var(&modeFlag, "modo", "predefined mode (js-a-jsx or jsx-a-js)")
	flags.StringVar(&regexFlag, "regex", "", "custom regular expression (not with --modo)")
	flags.StringVar(&extensionFlag, "extension-nueva", "", "new extension without the dot (not with --modo)")
	flags.StringArrayVarP(&excludeFlags, "exclude", "x", nil, "skip paths matching a glob relative to --path (can be repeated)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log traversal details to stderr")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "d", false, "only show which files would be renamed")

	_ = cmd.MarkPersistentFlagRequired("path")
	_ = cmd.RegisterFlagCompletionFunc("modo", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(m.Modes))
		for _, mode := range m.Modes {
			names = append(names, string(mode))
		}

		return names, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newListCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// resolvePlan reads the flags of cmd. Unset --regex and --extension-nueva
// stay nil so that an explicit empty value still conflicts with --modo.
func resolvePlan(cmd *cobra.Command) (m.Plan, error) {
	opts := domain.Options{
		Root:    m.Path(pathFlag),
		Mode:    modeFlag,
		DryRun:  dryRunFlag,
		Exclude: excludeFlags,
	}

	if cmd.Flags().Changed("regex") {
		opts.Regex = &regexFlag
	}

	if cmd.Flags().Changed("extension-nueva") {
		opts.Extension = &extensionFlag
	}

	return domain.Resolve(opts)
}

func setupLogger(cmd *cobra.Command) {
	level := zerolog.WarnLevel
	if verboseFlag {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cmd.SetContext(logger.WithContext(cmd.Context()))
}
