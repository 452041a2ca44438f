package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

// ParsePosition parses a 1-based task number typed by the user.
// Surrounding whitespace is ignored; anything that is not a base-10
// integer is an invalid selection. Range is checked by the service.
func ParsePosition(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidSelection, s)
	}
	return n, nil
}

// selectTask shows the current list, asks for a task number, and checks it
// against the list as it is now.
func selectTask(cfg *config.Config, svc *service.Service, in Prompter, out io.Writer, label string) (int, error) {
	output.FormatTaskList(out, output.ThemeFor(out, cfg), svc.Tasks())

	input, err := prompt(in, label)
	if err != nil {
		return 0, err
	}
	pos, err := ParsePosition(input)
	if err != nil {
		return 0, err
	}
	if err := svc.Validate(pos); err != nil {
		return 0, err
	}
	return pos, nil
}
