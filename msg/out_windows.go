//go:build windows

package msg

// Color codes are empty on Windows so callers can use them unconditionally.
const (
	Blue   = ""
	Red    = ""
	Green  = ""
	Yellow = ""
	Cyan   = ""
	Pink   = ""
)

// Color on windows returns the message unchanged.
func (m *Messenger) Color(code, msg string) string {
	return msg
}
