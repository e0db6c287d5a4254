package domain

import "fmt"

// ListError is returned when a directory cannot be read
type ListError struct {
	Path string
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Path, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// TerminalError is returned when the terminal cannot be set up or restored
type TerminalError struct {
	Op  string // "start" or "teardown"
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// ConfigError is returned when the config file exists but cannot be used
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
