package i18n

import (
	"testing"
	"testing/fstest"
)

func TestDetectFromAcceptLanguage(t *testing.T) {
	manager := mustManager(t)

	tests := []struct {
		header string
		want   string
	}{
		{header: "th-TH,th;q=0.9,en;q=0.8", want: LangTH},
		{header: "fr-FR, en-US;q=0.7", want: LangEN},
		{header: "de", want: LangEN},
		{header: "en;q=0.4, th;q=0.9", want: LangTH},
		{header: "not a header;;", want: LangEN},
		{header: "", want: LangEN},
	}

	for _, testCase := range tests {
		if got := manager.DetectFromAcceptLanguage(testCase.header); got != testCase.want {
			t.Fatalf("DetectFromAcceptLanguage(%q) = %q, want %q", testCase.header, got, testCase.want)
		}
	}
}

func TestTranslateFallsBackToDefaultThenKey(t *testing.T) {
	localesFS := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello","only.en":"English only","named":"Hi %s"}`)},
		"th.json": {Data: []byte(`{"greeting":"สวัสดี","only.en":" "}`)},
	}
	manager, err := NewManagerFromFS("th", localesFS)
	if err != nil {
		t.Fatalf("NewManagerFromFS() unexpected error: %v", err)
	}

	if manager.DefaultLanguage() != LangTH {
		t.Fatalf("DefaultLanguage() = %q, want th", manager.DefaultLanguage())
	}
	if got := manager.Translate("th", "greeting"); got != "สวัสดี" {
		t.Fatalf("Translate(th, greeting) = %q", got)
	}
	if got := manager.Translate("en", "greeting"); got != "Hello" {
		t.Fatalf("Translate(en, greeting) = %q", got)
	}
	if got := manager.Translate("th", "missing.key"); got != "missing.key" {
		t.Fatalf("Translate(th, missing.key) = %q, want key", got)
	}
	if got := manager.Translatef("en", "named", "Ann"); got != "Hi Ann" {
		t.Fatalf("Translatef() = %q, want Hi Ann", got)
	}
}

func TestNewManagerFromFSRequiresEnglishAndThai(t *testing.T) {
	localesFS := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"Hello"}`)},
	}
	if _, err := NewManagerFromFS("en", localesFS); err == nil {
		t.Fatalf("expected error when th locale is missing")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	manager := mustManager(t)

	if got := manager.NormalizeLanguage("TH_th"); got != LangTH {
		t.Fatalf("NormalizeLanguage(TH_th) = %q, want th", got)
	}
	if got := manager.NormalizeLanguage("ru"); got != LangEN {
		t.Fatalf("NormalizeLanguage(ru) = %q, want en", got)
	}
	if manager.IsSupported("ru") {
		t.Fatalf("IsSupported(ru) = true, want false")
	}
}
