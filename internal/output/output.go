package output

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gubarz/mdparse/internal/config"
	"github.com/gubarz/mdparse/internal/logger"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		_, err := fmt.Fprintln(c.fallback, text)
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Modes
// ============================================================================

// Mode represents where the rendered document goes
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
	ModeFile  Mode = "file"
)

// ParseMode validates a configured mode name
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(name))); m {
	case ModePrint, ModeCopy, ModeFile:
		return m, nil
	case "":
		return ModePrint, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (supported: print, copy, file)", name)
	}
}

// ============================================================================
// Sink
// ============================================================================

// Sink delivers rendered output to stdout, the clipboard or a file
type Sink struct {
	stdout    io.Writer
	clipboard Clipboard
	file      string
	log       *logger.Logger
}

// NewSink creates a sink using the configured output file
func NewSink() *Sink {
	return &Sink{
		stdout:    os.Stdout,
		clipboard: &systemClipboard{fallback: os.Stdout},
		file:      config.GetOutputFile(),
		log:       logger.Discard(),
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Sink) WithClipboard(c Clipboard) *Sink {
	s.clipboard = c
	return s
}

// WithStdout redirects print output
func (s *Sink) WithStdout(w io.Writer) *Sink {
	s.stdout = w
	if sc, ok := s.clipboard.(*systemClipboard); ok {
		sc.fallback = w
	}
	return s
}

// WithFile overrides the file used by ModeFile
func (s *Sink) WithFile(path string) *Sink {
	s.file = path
	return s
}

// WithLogger sets the logger that records each delivery
func (s *Sink) WithLogger(l *logger.Logger) *Sink {
	s.log = l
	return s
}

// Write delivers content using the configured mode
func (s *Sink) Write(content string) error {
	mode, err := ParseMode(config.GetOutput())
	if err != nil {
		return err
	}
	return s.WriteWithMode(content, mode)
}

// WriteWithMode delivers content with an explicit mode
func (s *Sink) WriteWithMode(content string, mode Mode) error {
	dest := "stdout"
	switch mode {
	case ModeCopy:
		dest = "clipboard"
		if err := s.clipboard.Copy(content); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	case ModeFile:
		dest = s.file
		if dir := filepath.Dir(dest); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	default: // print
		if _, err := fmt.Fprintln(s.stdout, content); err != nil {
			return err
		}
	}
	s.log.OutputWritten(string(mode), dest, len(content))
	return nil
}
