//go:build !windows

package msg

import "fmt"

// ANSI color codes for terminal output.
const (
	Blue   = "0;34"
	Red    = "0;31"
	Green  = "0;32"
	Yellow = "0;33"
	Cyan   = "0;36"
	Pink   = "1;35"
)

// Color wraps msg in the escape sequence for code, one of the constants
// above. It returns msg unchanged when NoColor is set.
//
//	msg.Puts(msg.Color(msg.Yellow, "io.quarkus:quarkus-agroal"))
func (m *Messenger) Color(code, msg string) string {
	if m.NoColor {
		return msg
	}
	return fmt.Sprintf("\033[%sm%s\033[m", code, msg)
}
