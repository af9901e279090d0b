package types

// AppConfig holds the application configuration, populated by viper from
// flags, environment variables (TASKDECK_*) and the optional .taskdeck.yaml
// config file.
type AppConfig struct {
	// Verbose enables technical error output in addition to the
	// user-friendly messages.
	Verbose bool `mapstructure:"verbose"`

	// NoColor disables lipgloss styling for terminals (or pipes) that
	// cannot render ANSI colors.
	NoColor bool `mapstructure:"no-color"`

	// Demo configures the scripted walkthrough command.
	Demo DemoConfig `mapstructure:"demo"`
}

// DemoConfig controls the `taskdeck demo` walkthrough.
type DemoConfig struct {
	// PauseMs is the delay between demo sections in milliseconds.
	PauseMs int `mapstructure:"pauseMs" validate:"gte=0,lte=5000"`
}
