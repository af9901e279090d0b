package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// noColor disables styled output.
	noColor bool
	// ErrNoTasksFound is returned when an interactive selection is attempted
	// but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands.
// Tasks live in memory for the duration of one run, so the root command
// goes straight into the interactive menu instead of expecting one-shot
// subcommands per operation.
var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "TaskDeck is a menu-driven console todo manager.",
	Long: `TaskDeck manages a single todo list from an interactive console menu:
add, view, update and delete tasks, and toggle their completion status.

The list is held in memory only; everything is discarded when the
program exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMenuLoop()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.taskdeck.yaml or $HOME/.taskdeck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
}
