package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/gubarz/mdparse/internal/render"
)

// Config holds the application configuration
type Config struct {
	Output          string `mapstructure:"output"`
	OutputFile      string `mapstructure:"output_file"`
	LogLevel        string `mapstructure:"log_level"`
	BlockquoteStyle string `mapstructure:"blockquote_style"`
	DocumentWrapper bool   `mapstructure:"document_wrapper"`
	ColorHeading    string `mapstructure:"color_heading"`
	ColorEmphasis   string `mapstructure:"color_emphasis"`
	ColorLink       string `mapstructure:"color_link"`
	ColorDim        string `mapstructure:"color_dim"`
	ColorBorder     string `mapstructure:"color_border"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output", "print")
	viper.SetDefault("output_file", "result.html")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("blockquote_style", render.DefaultBlockquoteStyle)
	viper.SetDefault("document_wrapper", true)
	viper.SetDefault("color_heading", "36")  // Cyan
	viper.SetDefault("color_emphasis", "33") // Yellow
	viper.SetDefault("color_link", "34")     // Blue
	viper.SetDefault("color_dim", "90")      // Gray
	viper.SetDefault("color_border", "8")    // Dark gray

	viper.SetConfigName("mdparse")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "mdparse"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MDPARSE")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// UsedFile returns the config file that was read, or "" when running on
// defaults.
func UsedFile() string {
	return viper.ConfigFileUsed()
}

// GetOutput returns the output mode
func GetOutput() string {
	return viper.GetString("output")
}

// GetOutputFile returns the destination of file output with tilde expansion
func GetOutputFile() string {
	return expandTilde(viper.GetString("output_file"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetLogLevel returns the configured log level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetBlockquoteStyle returns the inline style for rendered blockquotes
func GetBlockquoteStyle() string {
	return viper.GetString("blockquote_style")
}

// GetDocumentWrapper returns whether to wrap output in <!DOCTYPE html><html>
func GetDocumentWrapper() bool {
	return viper.GetBool("document_wrapper")
}

// GetColorHeading returns ANSI color code for headings in the preview
func GetColorHeading() string {
	return viper.GetString("color_heading")
}

// GetColorEmphasis returns ANSI color code for bold and italic runs
func GetColorEmphasis() string {
	return viper.GetString("color_emphasis")
}

// GetColorLink returns ANSI color code for links and images
func GetColorLink() string {
	return viper.GetString("color_link")
}

// GetColorDim returns ANSI color code for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorBorder returns ANSI color code for borders
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// RenderOptions returns the renderer options from the current settings
func RenderOptions() render.Options {
	return render.Options{
		Wrap:            GetDocumentWrapper(),
		BlockquoteStyle: GetBlockquoteStyle(),
	}
}

// SetOutput sets output mode at runtime
func SetOutput(mode string) {
	viper.Set("output", mode)
	C.Output = mode
}

// SetOutputFile sets the file output destination at runtime
func SetOutputFile(path string) {
	viper.Set("output_file", path)
	C.OutputFile = path
}

// SetLogLevel sets the log level at runtime
func SetLogLevel(level string) {
	viper.Set("log_level", level)
	C.LogLevel = level
}

// SetDocumentWrapper toggles the html wrapper at runtime
func SetDocumentWrapper(wrap bool) {
	viper.Set("document_wrapper", wrap)
	C.DocumentWrapper = wrap
}
