package budget

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level is the severity of a Message.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Message is a single human readable outcome of an operation.
type Message struct {
	Level Level  `json:"level" example:"info"`
	Text  string `json:"text" example:"Envelope Groceries has been deposited $100.00"`
}

// Ticket collects the messages an operation produces, in order.
//
// Expected business conditions like insufficient funds are reported as
// error messages on the ticket, never as Go errors.
type Ticket struct {
	Messages []Message
}

// Info appends an informational message.
func (t *Ticket) Info(format string, args ...any) {
	t.Messages = append(t.Messages, Message{Level: LevelInfo, Text: fmt.Sprintf(format, args...)})
}

// Error appends an error message.
func (t *Ticket) Error(format string, args ...any) {
	t.Messages = append(t.Messages, Message{Level: LevelError, Text: fmt.Sprintf(format, args...)})
}

// Merge appends all messages of o.
func (t *Ticket) Merge(o Ticket) {
	t.Messages = append(t.Messages, o.Messages...)
}

// HasErrors reports whether any error message was added.
func (t Ticket) HasErrors() bool {
	for _, m := range t.Messages {
		if m.Level == LevelError {
			return true
		}
	}
	return false
}

// Errors returns the texts of all error messages.
func (t Ticket) Errors() []string {
	var errs []string
	for _, m := range t.Messages {
		if m.Level == LevelError {
			errs = append(errs, m.Text)
		}
	}
	return errs
}

// Err returns nil if the ticket has no errors and an error wrapping
// ErrRejected with all error messages otherwise.
func (t Ticket) Err() error {
	if !t.HasErrors() {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRejected, strings.Join(t.Errors(), "; "))
}

// Log writes all messages to the logger. Info messages are logged
// at debug level, errors at info level since they are expected outcomes.
func (t Ticket) Log(logger zerolog.Logger, operation string) {
	for _, m := range t.Messages {
		event := logger.Debug()
		if m.Level == LevelError {
			event = logger.Info()
		}

		event.Str("operation", operation).Str("outcome", string(m.Level)).Msg(m.Text)
	}
}
