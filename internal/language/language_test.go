package language

import "testing"

func TestFromBookLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"eng", "en", true},
		{"ENG", "en", true},
		{"zho", "zh", true},
		{"chi", "zh", true}, // bibliographic alternate
		{"fre", "fr", true},
		{"fra", "fr", true},
		{"ja", "ja", true}, // already a lemma code
		{"und", "", false},
		{"xx", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		lang, ok := FromBookLanguage(tc.input)
		if ok != tc.ok || lang.Code != tc.want {
			t.Errorf("FromBookLanguage(%q) = (%q, %v), want (%q, %v)", tc.input, lang.Code, ok, tc.want, tc.ok)
		}
	}
}

func TestIsEnglish(t *testing.T) {
	if !IsEnglish("eng") {
		t.Fatal("eng should be English")
	}
	if IsEnglish("jpn") {
		t.Fatal("jpn should not be English")
	}
	if IsEnglish("unknown") {
		t.Fatal("unknown code should not be English")
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("eng"); got != "English" {
		t.Fatalf("Display(eng) = %q", got)
	}
	if got := Display("not-a-tag!"); got != "not-a-tag!" {
		t.Fatalf("Display fallback = %q", got)
	}
}
