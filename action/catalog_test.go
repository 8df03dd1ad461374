package action

import "testing"

func TestCatalog(t *testing.T) {
	out, errs, died := run(t, catalogFixture, func() { Catalog() })
	if died {
		t.Fatalf("Catalog died: %s", errs)
	}
	expect := "libs.junit.jupiter\torg.junit.jupiter:junit-jupiter:5.9.1\n" +
		"libs.quarkus.agroal\tio.quarkus:quarkus-agroal:2.13.5.Final\n" +
		"libs.quarkus.resteasy\tio.quarkus:quarkus-resteasy:2.13.5.Final\n"
	if out != expect {
		t.Errorf("Unexpected catalog listing %q", out)
	}
}

func TestCatalogMissing(t *testing.T) {
	if _, _, died := run(t, quarkusFixture, func() { Catalog() }); !died {
		t.Error("Expected a project without a catalog to stop the program")
	}
}
