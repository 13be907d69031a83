package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangEN = "en"
	LangTH = "th"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
	matcher         language.Matcher
}

// NewManager loads the locales compiled into the binary.
func NewManager(defaultLanguage string) (*Manager, error) {
	localesFS, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewManagerFromFS(defaultLanguage, localesFS)
}

// NewManagerFromFS loads every *.json file at the root of localesFS.
func NewManagerFromFS(defaultLanguage string, localesFS fs.FS) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := fs.ReadDir(localesFS, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		code := strings.TrimSuffix(strings.ToLower(entry.Name()), path.Ext(entry.Name()))
		messages, err := loadLocale(localesFS, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		manager.locales[code] = messages
		manager.supported = append(manager.supported, code)
	}

	for _, required := range []string{LangEN, LangTH} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	slices.Sort(manager.supported)
	tags := make([]language.Tag, 0, len(manager.supported))
	for _, code := range manager.supported {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		tags = append(tags, tag)
	}
	manager.matcher = language.NewMatcher(tags)

	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func loadLocale(localesFS fs.FS, name string) (map[string]string, error) {
	content, err := fs.ReadFile(localesFS, name)
	if err != nil {
		return nil, err
	}
	messages := map[string]string{}
	if err := json.Unmarshal(content, &messages); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages")
	}
	return messages, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

func (manager *Manager) IsSupported(raw string) bool {
	return manager.isSupported(normalizeLanguageTag(raw))
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	normalized := normalizeLanguageTag(raw)
	if manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage honours q-values and falls back to the default
// language when nothing in the header is supported.
func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	preferred, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(preferred) == 0 {
		return manager.defaultLanguage
	}
	_, index, confidence := manager.matcher.Match(preferred...)
	if confidence == language.No {
		return manager.defaultLanguage
	}
	return manager.supported[index]
}

func (manager *Manager) Translate(language string, key string) string {
	targetLanguage := manager.NormalizeLanguage(language)
	if value, ok := manager.locales[targetLanguage][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	if value, ok := manager.locales[manager.defaultLanguage][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func (manager *Manager) isSupported(language string) bool {
	if language == "" {
		return false
	}
	_, ok := manager.locales[language]
	return ok
}

func normalizeLanguageTag(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	if language == "" {
		return ""
	}
	language = strings.ReplaceAll(language, "_", "-")
	if separator := strings.Index(language, "-"); separator >= 0 {
		language = language[:separator]
	}
	return language
}
