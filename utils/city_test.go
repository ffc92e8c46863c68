package utils

import "testing"

func brandExists(slugs ...string) func(string) bool {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(s string) bool { return set[s] }
}

func TestSplitCitySlugExtractsCity(t *testing.T) {
	gdb := testDB(t)
	gdb.Exec("INSERT INTO cities (name, slug, status) VALUES ('Pune', 'pune', 'active')")

	base, city := SplitCitySlug(gdb, "bosch-pune", brandExists("bosch"))
	if base != "bosch" {
		t.Errorf("base = %q, want bosch", base)
	}
	if city == nil || city.Slug != "pune" {
		t.Errorf("city = %+v, want pune", city)
	}
}

func TestSplitCitySlugEntityWins(t *testing.T) {
	gdb := testDB(t)
	// "x" is an active city but "make-x" is a real brand slug.
	gdb.Exec("INSERT INTO cities (name, slug, status) VALUES ('X', 'x', 'active')")

	base, city := SplitCitySlug(gdb, "make-x", brandExists("make-x"))
	if base != "make-x" || city != nil {
		t.Errorf("got (%q, %+v), want (make-x, nil)", base, city)
	}
}

func TestSplitCitySlugUnknownCity(t *testing.T) {
	gdb := testDB(t)

	base, city := SplitCitySlug(gdb, "bosch-nowhere", brandExists("bosch"))
	if base != "bosch-nowhere" || city != nil {
		t.Errorf("got (%q, %+v), want segment untouched", base, city)
	}
}

func TestSplitCitySlugInactiveCityIgnored(t *testing.T) {
	gdb := testDB(t)
	gdb.Exec("INSERT INTO cities (name, slug, status) VALUES ('Pune', 'pune', 'inactive')")

	base, city := SplitCitySlug(gdb, "bosch-pune", brandExists("bosch"))
	if base != "bosch-pune" || city != nil {
		t.Errorf("got (%q, %+v), want segment untouched for inactive city", base, city)
	}
}

func TestSplitCitySlugBaseMustExist(t *testing.T) {
	gdb := testDB(t)
	gdb.Exec("INSERT INTO cities (name, slug, status) VALUES ('Pune', 'pune', 'active')")

	base, city := SplitCitySlug(gdb, "ghost-pune", brandExists("bosch"))
	if base != "ghost-pune" || city != nil {
		t.Errorf("got (%q, %+v), want segment untouched when base is unknown", base, city)
	}
}

func TestSplitCitySlugNoHyphen(t *testing.T) {
	gdb := testDB(t)

	base, city := SplitCitySlug(gdb, "bosch", brandExists())
	if base != "bosch" || city != nil {
		t.Errorf("got (%q, %+v), want (bosch, nil)", base, city)
	}
}
