package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/taskdeck/taskdeck/types"
)

// HandleFatalError handles unrecoverable errors that should terminate the
// application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints a user-friendly message by default. If the --verbose
// flag is set, it prints the full technical error instead.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// userFacingMessage translates a service error into the text shown at the
// menu. Validation and not-found errors carry their own display message;
// anything else is a programming defect surfaced as unexpected.
func userFacingMessage(err error) string {
	if types.IsValidationError(err) || types.IsTaskNotFound(err) {
		return err.Error()
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
