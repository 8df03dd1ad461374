package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLockfileSorts(t *testing.T) {
	m := mustParse(t, `
dependencies {
    implementation("org.b:b:1")
    testImplementation("Org.A:a:1")
    implementation("org.a:a:1")
}
`)
	lf := NewLockfile(m, "abc")
	var got []string
	for _, l := range lf.Dependencies {
		got = append(got, l.Configuration+" "+l.Name())
	}
	expected := []string{"implementation org.a:a", "testImplementation Org.A:a", "implementation org.b:b"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
			break
		}
	}
}

func TestLockfileFingerprint(t *testing.T) {
	a := mustParse(t, exampleScript)
	b := mustParse(t, "// reordered\ndependencies {\n implementation(group: \"e\", name: \"f\", version: \"3.0\")\n implementation(\"c:d:2.0\")\n implementation(\"a:b:1.0\")\n}\n")

	la := NewLockfile(a, Hash(exampleScript))
	lb := NewLockfile(b, "other")
	lb.Updated = time.Now().Add(time.Hour)

	fa, err := la.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fb, err := lb.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	if fa != fb {
		t.Error("Fingerprints should ignore order, hash and time")
	}

	c := mustParse(t, "dependencies {\n implementation(\"a:b:1.1\")\n}\n")
	fc, _ := NewLockfile(c, "").Fingerprint()
	if fa == fc {
		t.Error("Fingerprints of different dependencies should differ")
	}
}

func TestLockfileWriteAndRead(t *testing.T) {
	m := mustParse(t, exampleScript)
	lf := NewLockfile(m, Hash(exampleScript))
	p := filepath.Join(t.TempDir(), "gradlefile.lock")
	if err := lf.WriteFile(p); err != nil {
		t.Fatalf("WriteFile failed: %s", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	read, err := LockfileFromYaml(b)
	if err != nil {
		t.Fatalf("LockfileFromYaml failed: %s", err)
	}
	if read.Hash != Hash(exampleScript) {
		t.Errorf("Hash not preserved: %s", read.Hash)
	}
	if len(read.Dependencies) != 3 {
		t.Errorf("Expected 3 locks, got %d", len(read.Dependencies))
	}
}

func TestHash(t *testing.T) {
	if Hash("a") == Hash("b") {
		t.Error("Different text should hash differently")
	}
	if len(Hash("")) != 64 {
		t.Errorf("Expected a hex sha256, got %q", Hash(""))
	}
}
