package validate

import "fmt"

// message is the text of a failed check: either a fixed default or a
// caller-supplied template with arguments.
type message interface {
	resolve() (string, error)
}

type defaultMessage string

func (m defaultMessage) resolve() (string, error) {
	return string(m), nil
}

type templateMessage struct {
	format string
	args   []any
}

func (m templateMessage) resolve() (string, error) {
	out := fmt.Sprintf(m.format, m.args...)
	if !checkTemplate(m.format, m.args) {
		return "", &FormatError{Format: m.format, Output: out}
	}
	return out, nil
}

// fail builds the error for a failed check of the given kind.
func fail(kind error, msg message) error {
	text, err := msg.resolve()
	if err != nil {
		return err
	}
	return &ArgumentError{Kind: kind, Message: text}
}
