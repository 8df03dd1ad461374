package action

import "testing"

func TestAnnotated(t *testing.T) {
	tests := []struct {
		file, marker, expect string
	}{
		{quarkusFixture, "", "implementation\tlog4j:log4j:1.2.17\t(line 24)\n"},
		{quarkusFixture, "EXHORTIGNORE", "implementation\tlog4j:log4j:1.2.17\t(line 24)\n"},
		{quarkusFixture, "ignore", ""},
		{catalogFixture, "", "implementation\tio.quarkus:quarkus-resteasy:2.13.5.Final\t(line 18)\n"},
	}
	for _, tt := range tests {
		out, errs, died := run(t, tt.file, func() { Annotated(tt.marker) })
		if died {
			t.Errorf("Annotated(%q) died: %s", tt.marker, errs)
			continue
		}
		if out != tt.expect {
			t.Errorf("Annotated(%q): expected %q, got %q", tt.marker, tt.expect, out)
		}
	}
}
