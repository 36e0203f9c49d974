// Package ui provides the terminal property panel for a video component and
// the styles shared with CLI output.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vidembed/internal/video"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle/edit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "done")),
}

// Editor is a bubbletea model that edits one video component through its
// traits, the way a page builder's property panel does.
type Editor struct {
	video   *video.Video
	styles  Styles
	cursor  int
	editing bool
	input   textinput.Model
	err     error

	cancelled bool
}

// NewEditor creates an editor for v.
func NewEditor(v *video.Video, styles Styles) Editor {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 512
	return Editor{video: v, styles: styles, input: in}
}

// Video returns the component being edited.
func (e Editor) Video() *video.Video { return e.video }

// Cancelled reports whether the editor was left with esc.
func (e Editor) Cancelled() bool { return e.cancelled }

func (e Editor) Init() tea.Cmd { return nil }

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if e.editing {
			var cmd tea.Cmd
			e.input, cmd = e.input.Update(msg)
			return e, cmd
		}
		return e, nil
	}

	if e.editing {
		return e.updateEditing(km)
	}

	traits := e.video.Traits()
	switch {
	case key.Matches(km, keys.Quit):
		return e, tea.Quit
	case key.Matches(km, keys.Cancel):
		e.cancelled = true
		return e, tea.Quit
	case key.Matches(km, keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(km, keys.Down):
		if e.cursor < len(traits)-1 {
			e.cursor++
		}
	case key.Matches(km, keys.Left):
		e.err = e.cycle(traits[e.cursor], -1)
	case key.Matches(km, keys.Right):
		e.err = e.cycle(traits[e.cursor], 1)
	case key.Matches(km, keys.Toggle):
		return e.activate(traits[e.cursor])
	}
	return e, nil
}

func (e Editor) updateEditing(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch km.Type {
	case tea.KeyEnter:
		name := e.video.Traits()[e.cursor].Name
		e.err = e.video.Set(name, strings.TrimSpace(e.input.Value()))
		e.stopEditing()
		return e, nil
	case tea.KeyEsc:
		e.stopEditing()
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(km)
	return e, cmd
}

func (e Editor) activate(t video.Trait) (tea.Model, tea.Cmd) {
	e.err = nil
	switch t.Kind {
	case video.KindCheckbox:
		e.err = e.video.Toggle(t.Name)
	case video.KindSelect:
		e.err = e.cycle(t, 1)
	case video.KindText:
		e.editing = true
		e.input.Placeholder = t.Placeholder
		e.input.SetValue(e.video.Value(t.Name))
		e.input.CursorEnd()
		return e, e.input.Focus()
	}
	return e, nil
}

// cycle moves a select trait to the neighbouring option.
func (e *Editor) cycle(t video.Trait, delta int) error {
	if t.Kind != video.KindSelect || len(t.Options) == 0 {
		return nil
	}
	cur := 0
	for i, o := range t.Options {
		if o.Value == e.video.Value(t.Name) {
			cur = i
			break
		}
	}
	n := len(t.Options)
	next := t.Options[((cur+delta)%n+n)%n]
	if err := e.video.Set(t.Name, next.Value); err != nil {
		return err
	}
	if e.cursor >= len(e.video.Traits()) {
		e.cursor = len(e.video.Traits()) - 1
	}
	return nil
}

func (e *Editor) stopEditing() {
	e.editing = false
	e.input.Blur()
	e.input.Reset()
}

func (e Editor) View() string {
	s := e.styles
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", s.Title.Render("Video settings"))

	for i, t := range e.video.Traits() {
		marker := "  "
		label := s.Label.Render(fmt.Sprintf("%-10s", t.Label))
		if i == e.cursor {
			marker = s.Selected.Render("> ")
			label = s.Selected.Render(fmt.Sprintf("%-10s", t.Label))
		}

		value := e.traitValue(t)
		if e.editing && i == e.cursor {
			value = e.input.View()
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, label, value)
	}

	fields := e.video.Fields()
	fmt.Fprintf(&b, "\n%s %s\n", s.Label.Render("Element:"), s.Value.Render("<"+string(e.video.Hint())+">"))
	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("Embed:  "), s.URL.Render(fields.SourceURL))

	if e.err != nil {
		fmt.Fprintf(&b, "\n%s\n", s.Error.Render(e.err.Error()))
	}

	help := "↑/↓ move • space toggle/edit • ←/→ provider • q done • esc cancel"
	if e.editing {
		help = "enter save • esc cancel"
	}
	fmt.Fprintf(&b, "\n%s\n", s.Muted.Render(help))
	return b.String()
}

func (e Editor) traitValue(t video.Trait) string {
	s := e.styles
	v := e.video.Value(t.Name)

	switch t.Kind {
	case video.KindCheckbox:
		if v == "true" {
			return s.Value.Render("[x]")
		}
		return s.Value.Render("[ ]")
	case video.KindSelect:
		for _, o := range t.Options {
			if o.Value == v {
				return s.Value.Render("‹ " + o.Name + " ›")
			}
		}
	}
	if v == "" {
		return s.Muted.Render(t.Placeholder)
	}
	return s.Value.Render(v)
}
