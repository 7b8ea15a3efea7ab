package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gamebot-io/gamebot/internal/dashboard"
)

// formField is a single field in a Form.
type formField struct {
	ID          int
	Label       string
	Value       string
	Placeholder string
	Secret      bool
	Multiline   bool
}

// Form is a vertical list of text fields edited inline one at a time.
// Single-line fields use a textinput, multiline fields a textarea.
type Form struct {
	fields   []formField
	cursor   int
	editing  bool
	input    textinput.Model
	area     textarea.Model
	validate func(id int, value string) error
	width    int
}

// NewForm creates a form over the given fields.
func NewForm(fields []formField, validate func(id int, value string) error) *Form {
	ti := textinput.New()
	ti.CharLimit = 200

	ta := textarea.New()
	ta.SetHeight(6)
	ta.CharLimit = 2000

	return &Form{
		fields:   fields,
		input:    ti,
		area:     ta,
		validate: validate,
	}
}

// SetWidth updates the rendering width.
func (f *Form) SetWidth(width int) {
	f.width = width
	inner := width - lipgloss.Width(formLabelStyle.Render("")) - 2
	if inner < 10 {
		inner = 10
	}
	f.input.Width = inner
	f.area.SetWidth(inner)
}

// MoveUp moves cursor up.
func (f *Form) MoveUp() {
	if !f.editing && f.cursor > 0 {
		f.cursor--
	}
}

// MoveDown moves cursor down.
func (f *Form) MoveDown() {
	if !f.editing && f.cursor < len(f.fields)-1 {
		f.cursor++
	}
}

// Cursor returns the selected field index.
func (f *Form) Cursor() int {
	return f.cursor
}

// Value returns the value of the field with the given id.
func (f *Form) Value(id int) string {
	for _, fld := range f.fields {
		if fld.ID == id {
			return fld.Value
		}
	}
	return ""
}

// SetValue replaces the value of the field with the given id.
func (f *Form) SetValue(id int, value string) {
	for i := range f.fields {
		if f.fields[i].ID == id {
			f.fields[i].Value = value
		}
	}
}

// StartEdit begins inline editing of the current field.
func (f *Form) StartEdit() bool {
	if f.cursor < 0 || f.cursor >= len(f.fields) {
		return false
	}
	fld := f.fields[f.cursor]
	f.editing = true
	if fld.Multiline {
		f.area.SetValue(fld.Value)
		f.area.Focus()
	} else {
		f.input.SetValue(fld.Value)
		f.input.Placeholder = fld.Placeholder
		f.input.EchoMode = textinput.EchoNormal
		if fld.Secret {
			f.input.EchoMode = textinput.EchoPassword
		}
		f.input.Focus()
	}
	return true
}

// EditingMultiline reports whether the field being edited is multiline.
func (f *Form) EditingMultiline() bool {
	return f.editing && f.fields[f.cursor].Multiline
}

// FinishEdit validates and commits the current edit. A validation error
// leaves the field unchanged and ends the edit.
func (f *Form) FinishEdit() (changed bool, id int, value string, err error) {
	if !f.editing {
		return false, 0, "", nil
	}
	f.editing = false

	fld := &f.fields[f.cursor]
	if fld.Multiline {
		value = f.area.Value()
		f.area.Blur()
	} else {
		value = f.input.Value()
		f.input.Blur()
	}

	if f.validate != nil {
		if err := f.validate(fld.ID, value); err != nil {
			return false, fld.ID, "", err
		}
	}
	if value == fld.Value {
		return false, fld.ID, value, nil
	}
	fld.Value = value
	return true, fld.ID, value, nil
}

// CancelEdit cancels the current edit.
func (f *Form) CancelEdit() {
	f.editing = false
	f.input.Blur()
	f.area.Blur()
}

// IsEditing returns whether a field is being edited.
func (f *Form) IsEditing() bool {
	return f.editing
}

// Update forwards a key to whichever editor is focused.
func (f *Form) Update(msg tea.KeyMsg) tea.Cmd {
	if !f.editing {
		return nil
	}
	var cmd tea.Cmd
	if f.fields[f.cursor].Multiline {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

// View renders the form.
func (f *Form) View() string {
	var lines []string
	for i, fld := range f.fields {
		label := formLabelStyle.Render(fld.Label + ":")

		var line string
		switch {
		case f.editing && i == f.cursor && fld.Multiline:
			line = label + "\n" + f.area.View()
		case f.editing && i == f.cursor:
			line = label + " " + f.input.View()
		default:
			line = label + " " + renderFieldValue(fld)
		}

		if i == f.cursor && !f.editing {
			line = formCursorStyle.Width(f.width).Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderFieldValue(fld formField) string {
	val := fld.Value
	if val == "" {
		placeholder := fld.Placeholder
		if placeholder == "" {
			placeholder = "(empty)"
		}
		return lipgloss.NewStyle().Foreground(colorDim).Render(placeholder)
	}
	if fld.Secret {
		val = dashboard.MaskToken(val)
	}
	if fld.Multiline {
		// Only the first line fits in the list.
		first, _, more := strings.Cut(val, "\n")
		if more {
			first += " …"
		}
		val = first
	}
	return formValueStyle.Render(val)
}
