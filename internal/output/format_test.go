package output

import (
	"bytes"
	"testing"

	"todo/internal/service"
)

func plainTheme(ascii bool) *Theme {
	return NewTheme(&bytes.Buffer{}, true, ascii)
}

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	th := plainTheme(false)

	FormatTask(&buf, th, 1, service.Task{Title: "Buy milk"})
	FormatTask(&buf, th, 2, service.Task{Title: "Pay bills", Done: true})

	expected := "1. Buy milk [❌]\n2. Pay bills [✅]\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTask_ASCII(t *testing.T) {
	var buf bytes.Buffer
	th := plainTheme(true)

	FormatTask(&buf, th, 1, service.Task{Title: "Buy milk"})
	FormatTask(&buf, th, 2, service.Task{Title: "Pay bills", Done: true})

	expected := "1. Buy milk [ ]\n2. Pay bills [x]\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTask_NormalizesTitle(t *testing.T) {
	var buf bytes.Buffer
	th := plainTheme(true)

	FormatTask(&buf, th, 1, service.Task{Title: "two\nlines"})
	FormatTask(&buf, th, 2, service.Task{Title: "   "})

	expected := "1. two lines [ ]\n2. (untitled) [ ]\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTaskList_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskList(&buf, plainTheme(false), nil)

	expected := "\nNo tasks yet. 🎉\n\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	buf.Reset()
	FormatTaskList(&buf, plainTheme(true), nil)
	if buf.String() != "\nNo tasks yet.\n\n" {
		t.Errorf("unexpected ascii output %q", buf.String())
	}
}

func TestFormatTaskList(t *testing.T) {
	var buf bytes.Buffer
	tasks := []service.Task{{Title: "a"}, {Title: "b", Done: true}}

	FormatTaskList(&buf, plainTheme(false), tasks)

	expected := "\nYour To-Do List:\n1. a [❌]\n2. b [✅]\n\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatMenu(t *testing.T) {
	var buf bytes.Buffer
	entries := []MenuEntry{{Key: "1", Label: "View tasks"}, {Key: "2", Label: "Add task"}}

	FormatMenu(&buf, plainTheme(false), entries)

	expected := "=== To-Do List App ===\n1. View tasks\n2. Add task\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestThemeState(t *testing.T) {
	emoji := plainTheme(false)
	if got := emoji.State(true); got != "done ✅" {
		t.Errorf("unexpected %q", got)
	}
	if got := emoji.State(false); got != "not done ❌" {
		t.Errorf("unexpected %q", got)
	}
	ascii := plainTheme(true)
	if got := ascii.State(true); got != "done" {
		t.Errorf("unexpected %q", got)
	}
	if got := ascii.Emoji("🎉"); got != "" {
		t.Errorf("expected no emoji, got %q", got)
	}
}
