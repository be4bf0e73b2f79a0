// Package cmd provides the root command and CLI setup for bladegen.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bladegen.dev/pkg/bladegen/internal/adapter"
	"bladegen.dev/pkg/bladegen/internal/controller"
	"bladegen.dev/pkg/bladegen/internal/domain"
)

// recursiveFlag makes the run descend into every subfolder of the target.
var recursiveFlag bool

var (
	rootDirFlag  string
	logFileFlag  string
	verboseFlag  bool
	parallelFlag int
)

// newGenerator wires the generator for one run. Tests replace it.
var newGenerator = wireGenerator

const rootLongDescription = `Bladegen writes a Blade BUILD file into a C++ source folder.

It classifies the files of the folder into headers, library sources, tests,
entry points and proto definitions, infers each rule's dependencies from its
#include and import lines, and renders proto_library, cc_library, cc_test and
cc_binary rules.

Folders holding Python files, or protos mixed with C++ sources, are skipped.
Folders under the vendored thirdparty directory are never generated and abort
the run, so a recursive run started at a workspace root that holds the
thirdparty directory fails: target the source subtrees instead.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bladegen [flags] <folder>",
		Short:   "Blade BUILD file generator for C++ folders",
		Long:    rootLongDescription,
		Version: buildVersion(),
		Args:    cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			logger, closeLog := configureLogger(cmd.ErrOrStderr(), viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			defer closeLog()

			generator, err := newGenerator(cmd, logger)
			if err != nil {
				logger.Error("Failed to set up generator", "error", err)
				return err
			}

			_, err = generator.Generate(cmd.Context(), domain.GenerateArgs{
				Target:    args[0],
				Recursive: recursiveFlag,
				Parallel:  viper.GetInt(parallelConfigKey),
			})
			if err != nil {
				logger.Error("Generation aborted", "target", args[0], "error", err)
				return err
			}

			return nil
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&recursiveFlag, recursiveFlagName, "r", false, "generate BUILD files for every subfolder as well")

	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, defaultWorkspaceRoot, "workspace root that dependency references are relative to")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), workspaceRootKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the debug log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "print debug logs to the console")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", defaultParallel, "number of folders generated at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

// wireGenerator builds the generator and its collaborators from the loaded
// configuration.
func wireGenerator(cmd *cobra.Command, logger *slog.Logger) (domain.Generator, error) {
	rules, err := loadRules(viper.GetString(rulesFileKey))
	if err != nil {
		return nil, err
	}

	vendorRoot := viper.GetString(thirdpartyDirKey)
	fsAdapter := adapter.NewLocalSourceFSAdapter(viper.GetString(workspaceRootKey), logger)

	return domain.NewGenerator(
		fsAdapter,
		adapter.NewDescriptorStore(fsAdapter, logger),
		controller.NewSimpleUI(cmd),
		domain.NewClassifier(fsAdapter, logger),
		domain.NewInferencer(fsAdapter, rules, vendorRoot, logger),
		vendorRoot,
		logger,
	), nil
}

// buildVersion reports the module version recorded in the binary.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
