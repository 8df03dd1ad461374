package action

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Masterminds/gradlefile/mirrors"
	"github.com/Masterminds/gradlefile/msg"
)

// DefaultInfoFormat is the layout Info uses when none is given.
const DefaultInfoFormat = "group: %g\nversion: %v\nplugins: %p\nrepositories: %r\ntasks: %t\ndependencies: %n"

// Info prints information about a project based on a passed in format.
//
// The format understands %g (group), %v (version), %p (plugins), %r
// (repositories), %m (repositories with mirrors applied), %t (tasks), %n
// (number of dependencies), %f (build script path) and %% (a literal percent
// sign).
func Info(format string) {
	conf := EnsureConfig()
	m, p, _ := EnsureManifest(conf)

	var buffer bytes.Buffer
	varInit := false
	for _, varfmt := range format {
		if varInit {
			switch varfmt {
			case 'g':
				buffer.WriteString(m.Group())
			case 'v':
				buffer.WriteString(m.Version())
			case 'p':
				ids := []string{}
				for _, pl := range m.Plugins() {
					if pl.Version != "" {
						ids = append(ids, pl.ID+"@"+pl.Version)
					} else {
						ids = append(ids, pl.ID)
					}
				}
				buffer.WriteString(strings.Join(ids, ", "))
			case 'r':
				buffer.WriteString(strings.Join(m.Repositories(), ", "))
			case 'm':
				if err := mirrors.Load(); err != nil {
					msg.Die("%s", err)
				}
				buffer.WriteString(strings.Join(mirrors.Apply(m.Repositories()), ", "))
			case 't':
				names := []string{}
				for _, t := range m.Tasks() {
					names = append(names, t.Name)
				}
				buffer.WriteString(strings.Join(names, ", "))
			case 'n':
				buffer.WriteString(strconv.Itoa(m.Len()))
			case 'f':
				buffer.WriteString(p)
			case '%':
				buffer.WriteRune('%')
			default:
				msg.Die("Invalid format %s", string(varfmt))
			}
		} else {
			switch varfmt {
			case '%':
				varInit = true
				continue
			default:
				buffer.WriteRune(varfmt)
			}
		}
		varInit = false
	}
	msg.Puts("%s", buffer.String())
}
