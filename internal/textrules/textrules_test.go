package textrules

import "testing"

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Hello World  ", "Hello World"},
		{"Hello\n\tWorld", "Hello World"},
		{"linia\r\n  druga", "linia druga"},
		{"already normal", "already normal"},
		{"", ""},
		{"   \n\t ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  Zapisz   zmiany ", "Name:", "ączka", "Hello\nWorld"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeAppliesNFC(t *testing.T) {
	// "a" + combining ogonek must yield the precomposed "ą".
	decomposed := "ączka"
	precomposed := "ączka"
	if got := Normalize(decomposed); got != precomposed {
		t.Fatalf("Normalize(%q) = %q, want %q", decomposed, got, precomposed)
	}
}

func TestTranslatableRejectsTemplateMarkers(t *testing.T) {
	for _, s := range []string{
		"{{someVar}}",
		"Witaj {{name}}",
		"{% if ok %}tak{% endif %}",
		"prefix @{expr} suffix",
		"cena: %{price}",
	} {
		if Translatable(s) {
			t.Fatalf("expected %q to be rejected (template marker)", s)
		}
	}
}

func TestTranslatableRejectsShortStrings(t *testing.T) {
	for _, s := range []string{"", " ", "X", "  ż  ", "-"} {
		if Translatable(s) {
			t.Fatalf("expected %q to be rejected (too short)", s)
		}
	}
}

func TestTranslatableRequiresLetters(t *testing.T) {
	for _, s := range []string{"1234", "-- ::", "42%", "…"} {
		if Translatable(s) {
			t.Fatalf("expected %q to be rejected (no letters)", s)
		}
	}
	for _, s := range []string{"Hello World", "Zażółć gęślą jaźń", "ok?", "Name:"} {
		if !Translatable(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
}
