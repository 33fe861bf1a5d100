// Package locale provides the user-visible texts of the application in the
// supported languages.
package locale

import (
	"sync"

	golocale "github.com/jeandeaual/go-locale"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ytget/url-shortener/internal/logger"
)

// LanguageSystem resolves to the OS language when supported
const LanguageSystem = "system"

// Localization manages UI text translations
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyShorten          = "shorten"
	KeyGetStats         = "get_stats"
	KeyCopy             = "copy"
	KeyCopied           = "copied"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyAPIBaseURL       = "api_base_url"
	KeyEnterURL         = "enter_url"
	KeyEnterShortCode   = "enter_short_code"
	KeyShortURL         = "short_url"
	KeyOriginalURL      = "original_url"
	KeyShortCode        = "short_code"
	KeyAccessCount      = "access_count"
	KeyCreatedAt        = "created_at"
	KeyUpdatedAt        = "updated_at"
	KeyExpiresAt        = "expires_at"
	KeyShortenTitle     = "shorten_title"
	KeyStatsTitle       = "stats_title"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyWelcome          = "welcome"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidURL       = "invalid_url"
	KeyShortenSuccess   = "shorten_success"
	KeyShortenFailed    = "shorten_failed"
	KeyNetworkError     = "network_error"
	KeyPleaseEnterCode  = "please_enter_code"
	KeyStatsSuccess     = "stats_success"
	KeyStatsNotFound    = "stats_not_found"
	KeyStatsFailed      = "stats_failed"
	KeyCopySuccess      = "copy_success"
	KeyCopyFailed       = "copy_failed"
	KeyNothingToCopy    = "nothing_to_copy"
	KeyAPIUnavailable   = "api_unavailable"
	KeyLoading          = "loading"
	KeyDismissToastHint = "dismiss_toast_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unsupported codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem || lang == "" {
		lang = DetectSystemLanguage()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

var (
	supportedTags  = []language.Tag{language.English, language.Russian, language.Portuguese}
	supportedCodes = []string{"en", "ru", "pt"}
	matcher        = language.NewMatcher(supportedTags)
)

// MatchLanguage maps a BCP 47 tag such as "pt-BR" to a supported language code
func MatchLanguage(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return "en"
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return "en"
	}
	return supportedCodes[index]
}

// DetectSystemLanguage returns the supported language closest to the OS locale
func DetectSystemLanguage() string {
	tag, err := golocale.GetLocale()
	if err != nil || tag == "" {
		logger.Log.Debug("system locale unavailable, using English", zap.Error(err))
		return "en"
	}
	return MatchLanguage(tag)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "URL Shortener",
		KeyShorten:          "Shorten",
		KeyGetStats:         "Get Stats",
		KeyCopy:             "Copy",
		KeyCopied:           "Copied!",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyAPIBaseURL:       "API Base URL",
		KeyEnterURL:         "Enter a long URL (https://example.com/...)",
		KeyEnterShortCode:   "Enter a short code",
		KeyShortURL:         "Short URL",
		KeyOriginalURL:      "Original URL",
		KeyShortCode:        "Short Code",
		KeyAccessCount:      "Access Count",
		KeyCreatedAt:        "Created",
		KeyUpdatedAt:        "Updated",
		KeyExpiresAt:        "Expires",
		KeyShortenTitle:     "Shorten a URL",
		KeyStatsTitle:       "URL Statistics",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "The new API address is used after restart",
		KeyWelcome:          "Welcome to URL Shortener! Start by entering a URL to shorten.",
		KeyPleaseEnterURL:   "Please enter a URL to shorten",
		KeyInvalidURL:       "Please enter a valid URL (must include http:// or https://)",
		KeyShortenSuccess:   "URL shortened successfully!",
		KeyShortenFailed:    "Failed to shorten URL",
		KeyNetworkError:     "Network error. Please try again.",
		KeyPleaseEnterCode:  "Please enter a short code",
		KeyStatsSuccess:     "Statistics retrieved successfully!",
		KeyStatsNotFound:    "Short code not found or has expired",
		KeyStatsFailed:      "Failed to retrieve statistics",
		KeyCopySuccess:      "Short URL copied to clipboard!",
		KeyCopyFailed:       "Failed to copy. Please copy manually.",
		KeyNothingToCopy:    "No URL to copy",
		KeyAPIUnavailable:   "Warning: API might not be available",
		KeyLoading:          "Loading...",
		KeyDismissToastHint: "Click to dismiss",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Сокращатель ссылок",
		KeyShorten:          "Сократить",
		KeyGetStats:         "Статистика",
		KeyCopy:             "Копировать",
		KeyCopied:           "Скопировано!",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyAPIBaseURL:       "Адрес API",
		KeyEnterURL:         "Введите длинный URL (https://example.com/...)",
		KeyEnterShortCode:   "Введите короткий код",
		KeyShortURL:         "Короткая ссылка",
		KeyOriginalURL:      "Исходный URL",
		KeyShortCode:        "Короткий код",
		KeyAccessCount:      "Переходов",
		KeyCreatedAt:        "Создано",
		KeyUpdatedAt:        "Обновлено",
		KeyExpiresAt:        "Истекает",
		KeyShortenTitle:     "Сократить ссылку",
		KeyStatsTitle:       "Статистика ссылки",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Новый адрес API будет использован после перезапуска",
		KeyWelcome:          "Добро пожаловать! Введите URL, чтобы сократить его.",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL",
		KeyInvalidURL:       "Введите корректный URL (с http:// или https://)",
		KeyShortenSuccess:   "Ссылка успешно сокращена!",
		KeyShortenFailed:    "Не удалось сократить ссылку",
		KeyNetworkError:     "Ошибка сети. Попробуйте ещё раз.",
		KeyPleaseEnterCode:  "Пожалуйста, введите короткий код",
		KeyStatsSuccess:     "Статистика получена!",
		KeyStatsNotFound:    "Код не найден или срок его действия истёк",
		KeyStatsFailed:      "Не удалось получить статистику",
		KeyCopySuccess:      "Короткая ссылка скопирована!",
		KeyCopyFailed:       "Не удалось скопировать. Скопируйте вручную.",
		KeyNothingToCopy:    "Нечего копировать",
		KeyAPIUnavailable:   "Внимание: API может быть недоступен",
		KeyLoading:          "Загрузка...",
		KeyDismissToastHint: "Нажмите, чтобы закрыть",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Encurtador de URL",
		KeyShorten:          "Encurtar",
		KeyGetStats:         "Estatísticas",
		KeyCopy:             "Copiar",
		KeyCopied:           "Copiado!",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyAPIBaseURL:       "URL base da API",
		KeyEnterURL:         "Digite uma URL longa (https://example.com/...)",
		KeyEnterShortCode:   "Digite um código curto",
		KeyShortURL:         "URL curta",
		KeyOriginalURL:      "URL original",
		KeyShortCode:        "Código curto",
		KeyAccessCount:      "Acessos",
		KeyCreatedAt:        "Criado",
		KeyUpdatedAt:        "Atualizado",
		KeyExpiresAt:        "Expira",
		KeyShortenTitle:     "Encurtar uma URL",
		KeyStatsTitle:       "Estatísticas da URL",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "O novo endereço da API será usado após reiniciar",
		KeyWelcome:          "Bem-vindo! Comece digitando uma URL para encurtar.",
		KeyPleaseEnterURL:   "Por favor, digite uma URL",
		KeyInvalidURL:       "Digite uma URL válida (com http:// ou https://)",
		KeyShortenSuccess:   "URL encurtada com sucesso!",
		KeyShortenFailed:    "Falha ao encurtar a URL",
		KeyNetworkError:     "Erro de rede. Tente novamente.",
		KeyPleaseEnterCode:  "Por favor, digite um código curto",
		KeyStatsSuccess:     "Estatísticas obtidas com sucesso!",
		KeyStatsNotFound:    "Código não encontrado ou expirado",
		KeyStatsFailed:      "Falha ao obter estatísticas",
		KeyCopySuccess:      "URL curta copiada!",
		KeyCopyFailed:       "Falha ao copiar. Copie manualmente.",
		KeyNothingToCopy:    "Nenhuma URL para copiar",
		KeyAPIUnavailable:   "Aviso: a API pode não estar disponível",
		KeyLoading:          "Carregando...",
		KeyDismissToastHint: "Clique para fechar",
	}
}
