package i18n

import (
	"sort"
	"strings"
	"testing"
)

func TestLocaleKeysParity(t *testing.T) {
	manager := mustManager(t)

	en := manager.locales[LangEN]
	th := manager.locales[LangTH]

	if missing := missingKeys(en, th); len(missing) > 0 {
		t.Errorf("keys missing in th locale: %s", strings.Join(missing, ", "))
	}
	if missing := missingKeys(th, en); len(missing) > 0 {
		t.Errorf("keys missing in en locale: %s", strings.Join(missing, ", "))
	}
}

func TestLocalePlaceholderParity(t *testing.T) {
	manager := mustManager(t)

	for key, english := range manager.locales[LangEN] {
		thai := manager.locales[LangTH][key]
		if strings.Count(english, "%") != strings.Count(thai, "%") {
			t.Errorf("placeholder count differs for %q: en=%q th=%q", key, english, thai)
		}
	}
}

func mustManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := NewManager(LangEN)
	if err != nil {
		t.Fatalf("NewManager() unexpected error: %v", err)
	}
	return manager
}

func missingKeys(source map[string]string, target map[string]string) []string {
	missing := make([]string, 0)
	for key := range source {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
