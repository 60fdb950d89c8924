package observer

import (
	"fmt"
	"io"
	"os"
)

// Support is the support department; it reports every status change it hears about.
type Support struct {
	out io.Writer
}

// NewSupport creates a Support observer writing to out. A nil writer means stdout.
func NewSupport(out io.Writer) *Support {
	if out == nil {
		out = os.Stdout
	}
	return &Support{out: out}
}

// Notify writes a notification line for the subject's current state
func (s *Support) Notify(subject *Equipment) {
	fmt.Fprintln(s.out, FormatNotification(subject.Name(), subject.Status()))
}

// FormatNotification builds the message Support prints
func FormatNotification(name, status string) string {
	return fmt.Sprintf("Support notified: equipment %q changed status to %q", name, status)
}
