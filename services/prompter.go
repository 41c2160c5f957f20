package services

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldKind is the closed set of input kinds a form field can have. The
// console resolves each kind to one prompt routine; there is no runtime
// type-name dispatch.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInteger
	FieldDecimal
	FieldBool
	FieldDate
	FieldTimestamp
	FieldEnum
)

// Field describes one input of a form. Forms are declared next to the
// service that consumes them and resolved once, at startup.
type Field struct {
	Name    string // key in the collected map
	Label   string
	Kind    FieldKind
	Options []string // FieldEnum only
}

// Prompter is the interaction boundary. Services own no rendering; they call
// these hooks and get typed values back. Implementations keep re-prompting
// until the operator enters something valid.
type Prompter interface {
	PromptInt(prompt string) int
	PromptDecimal(prompt string) decimal.Decimal
	PromptString(prompt string) string
	PromptBool(prompt string) bool
	PromptDate(prompt string) time.Time
	PromptTimestamp(prompt string) time.Time
	PromptEnum(prompt string, options []string) string

	ConfirmYesNo(prompt string) bool
	// PresentMenu returns the zero-based index of the chosen option.
	PresentMenu(title string, options []string) int
	RenderTable(title string, headers []string, rows [][]string)
	Say(format string, args ...any)

	// CollectForm walks the fields in order and returns the entered values
	// keyed by Field.Name, each typed per its kind.
	CollectForm(title string, fields []Field) map[string]any
}
