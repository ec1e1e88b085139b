package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (incompatible operand shapes)
	ExitCommandError = 2 // Command error (missing file, malformed encoding, bad flags)
)

// Error codes reported in CLI responses.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeNotFound     = "E002" // Input file not found or unreadable
	ErrCodeFormat       = "E003" // Malformed matrix encoding
	ErrCodeDimension    = "E004" // Operand dimensions incompatible
	ErrCodeWriteFailed  = "E005" // Output write error
	ErrCodeTooLarge     = "E006" // Dense rendering refused
	ErrCodeInvalidInput = "E007" // Bad flag or argument
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders results as text, JSON or YAML.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // text-mode errors (defaults to Writer)
}

// CLIResponse is the standard structured response for json/yaml output.
type CLIResponse struct {
	Status string    `json:"status"          yaml:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"  yaml:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"    yaml:"code"`    // "E001", "E002", etc.
	Message string `json:"message" yaml:"message"` // human-readable message
}

// Success outputs a successful result in the configured format.
// Text output prints data with fmt.Fprint, so payloads should implement
// fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	return f.emit(CLIResponse{Status: "ok", Data: data}, func() error {
		_, err := fmt.Fprintln(f.Writer, data)
		return err
	})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	return f.emit(CLIResponse{Status: "error", Error: &CLIError{Code: code, Message: message}}, func() error {
		_, err := fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
		return err
	})
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) emit(resp CLIResponse, text func() error) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text()
	}
}

// fail reports an error through the formatter and returns the matching ExitError.
func fail(f *OutputFormatter, exitCode int, code string, err error) error {
	_ = f.Error(code, err.Error())
	return WrapExitError(exitCode, code, err)
}
