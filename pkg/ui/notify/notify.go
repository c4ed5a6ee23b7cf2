// Package notify provides formatted notifications for CLI users.
//
// [WriteMessage] displays messages with type-specific symbols and colors:
// success (✔), error (✗), warning (⚠), info (ℹ), activity (►), and bold
// titles with a customizable emoji. [OnceNotifier] emits a message at most
// once per process, for footnotes that should not repeat across renders.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	fcolor "github.com/fatih/color"
)

// MessageType defines the type of notification message.
type MessageType int

// Message type constants. Each type determines the message styling.
const (
	// ErrorType represents an error message (red, with ✗ symbol).
	ErrorType MessageType = iota
	// WarningType represents a warning message (yellow, with ⚠ symbol).
	WarningType
	// ActivityType represents an activity/progress message (default color, with ► symbol).
	ActivityType
	// SuccessType represents a success message (green, with ✔ symbol).
	SuccessType
	// InfoType represents an informational message (blue, with ℹ symbol).
	InfoType
	// TitleType represents a title/header message (bold, with emoji).
	TitleType
)

// Message represents a notification message to be displayed to the user.
type Message struct {
	// Type determines the message styling (color, symbol).
	Type MessageType
	// Content is the main message text to display.
	Content string
	// Emoji is used only for TitleType messages to customize the title icon.
	Emoji string
	// Writer is the output destination. If nil, defaults to os.Stdout.
	Writer io.Writer
	// Args are format arguments for Content if it contains format specifiers.
	Args []any
}

// Errorf writes an error message to the writer.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message to the writer.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes an activity/progress message to the writer.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message to the writer.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message to the writer.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a title/header message with an emoji to the writer.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{
		Type:    TitleType,
		Content: fmt.Sprintf(format, args...),
		Emoji:   emoji,
		Writer:  writer,
	})
}

// WriteMessage writes a formatted notification message to its writer.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	config := getMessageConfig(msg.Type)

	content = indentMultilineContent(content, config.symbol)

	// TitleType uses an emoji instead of a symbol.
	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = "ℹ️"
		}

		_, err := config.color.Fprintf(msg.Writer, "%s %s\n", emoji, content)
		handleNotifyError(err)

		return
	}

	_, err := config.color.Fprintf(msg.Writer, "%s%s\n", config.symbol, content)
	handleNotifyError(err)
}

// OnceNotifier emits a notification at most once per instance. The zero value
// is ready to use. Instances intended to fire once per process should be
// package-level variables.
type OnceNotifier struct {
	once sync.Once
}

// Infof writes an informational message the first time it is called and does
// nothing on subsequent calls.
func (n *OnceNotifier) Infof(writer io.Writer, format string, args ...any) {
	n.once.Do(func() {
		Infof(writer, format, args...)
	})
}

// messageConfig holds the styling configuration for each message type.
type messageConfig struct {
	symbol string
	color  *fcolor.Color
}

// getMessageConfig returns the styling configuration for a given message type.
func getMessageConfig(msgType MessageType) messageConfig {
	switch msgType {
	case ErrorType:
		return messageConfig{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return messageConfig{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return messageConfig{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return messageConfig{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return messageConfig{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return messageConfig{symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return messageConfig{symbol: "", color: fcolor.New(fcolor.Reset)}
	}
}

// indentMultilineContent indents continuation lines so multi-line content
// aligns under the message symbol.
func indentMultilineContent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	indent := strings.Repeat(" ", len([]rune(symbol)))

	return strings.ReplaceAll(content, "\n", "\n"+indent)
}

// handleNotifyError reports printing failures to stderr rather than returning
// them, to avoid disrupting the user experience.
func handleNotifyError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}
