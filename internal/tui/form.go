package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/taigrr/folder-archiver/internal/types"
)

var errMissingFields = errors.New("please specify source, destination folders, and year")

const (
	fieldSource = iota
	fieldDestination
	fieldYear
	fieldLimit
	fieldExclude
	fieldModified // checkbox, not a text input
	fieldCount
)

var fieldLabels = [...]string{
	"Source Folder:",
	"Destination Folder:",
	"Year of Folders to Move:",
	"Move Limit (0 = No Limit):",
	"Folders to Exclude:",
}

type formModel struct {
	inputs   []textinput.Model
	modified bool
	focus    int
	base     types.MoveRequest
}

func newFormModel(defaults types.MoveRequest) formModel {
	inputs := make([]textinput.Model, fieldModified)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldYear].CharLimit = 4
	inputs[fieldLimit].Placeholder = "0"
	inputs[fieldExclude].Placeholder = "comma separated"

	inputs[fieldSource].SetValue(defaults.Source)
	inputs[fieldDestination].SetValue(defaults.Destination)
	if defaults.Year > 0 {
		inputs[fieldYear].SetValue(strconv.Itoa(defaults.Year))
	}
	inputs[fieldLimit].SetValue(strconv.Itoa(defaults.Limit))
	inputs[fieldExclude].SetValue(strings.Join(defaults.Exclude, ", "))
	inputs[fieldSource].Focus()

	return formModel{
		inputs:   inputs,
		modified: defaults.UseModifiedDate,
		base:     defaults,
	}
}

func (m *formModel) setFocus(i int) {
	m.focus = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// request converts the form into a MoveRequest. Settings the form does not
// show (patterns, dry run) come from the defaults it was opened with.
func (m formModel) request() (types.MoveRequest, error) {
	req := m.base
	req.Source = strings.TrimSpace(m.inputs[fieldSource].Value())
	req.Destination = strings.TrimSpace(m.inputs[fieldDestination].Value())
	yearText := strings.TrimSpace(m.inputs[fieldYear].Value())
	if req.Source == "" || req.Destination == "" || yearText == "" {
		return types.MoveRequest{}, errMissingFields
	}

	year, err := strconv.Atoi(yearText)
	if err != nil || year <= 0 {
		return types.MoveRequest{}, errors.New("year must be a number")
	}
	req.Year = year

	req.Limit = 0
	if limitText := strings.TrimSpace(m.inputs[fieldLimit].Value()); limitText != "" {
		limit, err := strconv.Atoi(limitText)
		if err != nil || limit < 0 {
			return types.MoveRequest{}, errors.New("move limit must be a non-negative number")
		}
		req.Limit = limit
	}

	req.Exclude = types.ParseNameList(m.inputs[fieldExclude].Value())
	req.UseModifiedDate = m.modified
	return req, nil
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Folder Archiver") + "\n\n")
	for i, input := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = focusedStyle.Inherit(labelStyle).Render(fieldLabels[i])
		}
		b.WriteString(label + "[" + input.View() + "]\n")
	}

	box := "[ ]"
	if m.modified {
		box = "[x]"
	}
	line := box + " Use Last Modified Date Instead of Creation Date"
	if m.focus == fieldModified {
		line = focusedStyle.Render(line)
	}
	b.WriteString("\n" + line + "\n\n")
	b.WriteString(helpStyle.Render("tab next field  space toggle  enter start moving  ctrl+c quit"))
	return b.String()
}
