package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Shenile/cafe-crm/services"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// Terminal implements services.Prompter on stdin/stdout. Every prompt
// re-asks until the operator enters something parseable, so services always
// get a valid typed value back.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool

	title *color.Color
	ask   *color.Color
	warn  *color.Color
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    bufio.NewScanner(in),
		out:   out,
		title: color.New(color.FgCyan, color.Bold),
		ask:   color.New(color.FgYellow),
		warn:  color.New(color.FgRed),
	}
}

// readLine returns the next trimmed input line. After EOF it keeps
// returning "", and every prompt loop bails out on its zero value instead of
// re-asking a closed stream.
func (t *Terminal) readLine(prompt string) string {
	if t.eof {
		return ""
	}
	t.ask.Fprint(t.out, prompt)
	if !t.in.Scan() {
		t.eof = true
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

func (t *Terminal) PromptInt(prompt string) int {
	for {
		raw := t.readLine(prompt)
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v
		}
		if t.eof {
			return 0
		}
		t.warn.Fprintln(t.out, "Invalid input. Please enter a valid integer.")
	}
}

func (t *Terminal) PromptDecimal(prompt string) decimal.Decimal {
	for {
		raw := t.readLine(prompt)
		v, err := decimal.NewFromString(raw)
		if err == nil {
			return v
		}
		if t.eof {
			return decimal.Zero
		}
		t.warn.Fprintln(t.out, "Invalid input. Please enter a valid number.")
	}
}

func (t *Terminal) PromptString(prompt string) string {
	return t.readLine(prompt)
}

func (t *Terminal) PromptBool(prompt string) bool {
	for {
		switch strings.ToLower(t.readLine(prompt)) {
		case "true", "1", "yes", "y":
			return true
		case "false", "0", "no", "n":
			return false
		}
		if t.eof {
			return false
		}
		t.warn.Fprintln(t.out, "Invalid input. Enter 'yes' or 'no'.")
	}
}

func (t *Terminal) PromptDate(prompt string) time.Time {
	for {
		raw := t.readLine(prompt)
		v, err := time.Parse(dateLayout, raw)
		if err == nil {
			return v
		}
		if t.eof {
			return time.Time{}
		}
		t.warn.Fprintln(t.out, "Invalid date format. Please enter YYYY-MM-DD.")
	}
}

// PromptTimestamp accepts an empty line as "now".
func (t *Terminal) PromptTimestamp(prompt string) time.Time {
	for {
		raw := t.readLine(prompt + " (press Enter for current time): ")
		if raw == "" {
			return time.Now()
		}
		v, err := time.Parse(timestampLayout, raw)
		if err == nil {
			return v
		}
		if t.eof {
			return time.Now()
		}
		t.warn.Fprintln(t.out, "Invalid timestamp format. Use YYYY-MM-DD HH:MM:SS.")
	}
}

func (t *Terminal) PromptEnum(prompt string, options []string) string {
	for {
		fmt.Fprintf(t.out, "Available options: %s\n", strings.Join(options, ", "))
		raw := t.readLine(prompt + " (choose one from above): ")
		for _, opt := range options {
			if raw == opt {
				return raw
			}
		}
		if t.eof {
			return options[0]
		}
		t.warn.Fprintf(t.out, "Invalid choice. Please choose from: %s\n", strings.Join(options, ", "))
	}
}

func (t *Terminal) ConfirmYesNo(prompt string) bool {
	t.ask.Fprintln(t.out, prompt)
	return t.PromptBool("(Y/N): ")
}

func (t *Terminal) PresentMenu(title string, options []string) int {
	rows := make([][]string, 0, len(options))
	for i, opt := range options {
		rows = append(rows, []string{strconv.Itoa(i + 1), opt})
	}
	t.RenderTable(title, []string{"Choice", "Action"}, rows)

	for {
		choice := t.PromptInt("Enter your choice: ")
		if choice >= 1 && choice <= len(options) {
			return choice - 1
		}
		if t.eof {
			return len(options) - 1
		}
		t.warn.Fprintln(t.out, "Invalid choice. Please select a valid option.")
	}
}

func (t *Terminal) RenderTable(title string, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(t.out, "No data available to display.")
		return
	}
	t.title.Fprintln(t.out, title)
	table := tablewriter.NewWriter(t.out)
	table.SetHeader(headers)
	table.AppendBulk(rows)
	table.Render()
}

func (t *Terminal) Say(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// CollectForm resolves each field's kind to its prompt routine. The kind set
// is closed; adding a kind means extending this switch.
func (t *Terminal) CollectForm(title string, fields []services.Field) map[string]any {
	t.title.Fprintln(t.out, title)
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		prompt := fmt.Sprintf("Enter value for %s: ", f.Label)
		switch f.Kind {
		case services.FieldString:
			out[f.Name] = t.PromptString(prompt)
		case services.FieldInteger:
			out[f.Name] = t.PromptInt(prompt)
		case services.FieldDecimal:
			out[f.Name] = t.PromptDecimal(prompt)
		case services.FieldBool:
			out[f.Name] = t.PromptBool(prompt)
		case services.FieldDate:
			out[f.Name] = t.PromptDate(prompt)
		case services.FieldTimestamp:
			out[f.Name] = t.PromptTimestamp(prompt)
		case services.FieldEnum:
			out[f.Name] = t.PromptEnum(prompt, f.Options)
		}
	}
	return out
}
