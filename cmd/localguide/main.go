package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/infrastructure/controllers"
)

// flagAdder is implemented by controllers that own command-specific flags.
type flagAdder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand(generateController *controllers.GenerateController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "localguide [github-url]",
		Short: "Turn a GitHub repository into a local setup guide",
		Long: `Reads a handful of source and documentation files from a public GitHub
repository and asks a local language model (Ollama by default) for a
step-by-step guide: project summary, requirements, installation,
configuration and execution.

Usage modes:
  localguide https://github.com/owner/repo   Generate and print a guide
  localguide generate <url> -o ./guides      Also write {repo}_guide.md
  localguide serve                           Single-page web interface`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			generateController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect config.json)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	generateController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, controllerList []entities.Controller) {
	for _, controller := range controllerList {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		if adder, ok := ctrl.(flagAdder); ok {
			adder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)

	if err := godotenv.Load(); err == nil {
		logger.Debug("Loaded environment from .env")
	}
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.GetGenerateController())
	addSubcommands(cobraRoot, appContext.GetControllers())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'localguide': %s", err)
	}
}

