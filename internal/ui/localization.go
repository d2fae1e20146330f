package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyStartLoad        = "start_load"
	KeyWash             = "wash"
	KeyDry              = "dry"
	KeyLocation         = "location"
	KeyCategory         = "category"
	KeyDurationMinutes  = "duration_minutes"
	KeyNotes            = "notes"
	KeyActiveLoads      = "active_loads"
	KeyHistory          = "history"
	KeyStatistics       = "statistics"
	KeyPause            = "pause"
	KeyResume           = "resume"
	KeyComplete         = "complete"
	KeyCancelLoad       = "cancel_load"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyExport           = "export"
	KeyClearHistory     = "clear_history"
	KeyNotifyMe         = "notify_me"
	KeyEmail            = "email"
	KeyLoadStarted      = "load_started"
	KeyLoadCompleted    = "load_completed"
	KeyLoadCancelled    = "load_cancelled"
	KeyHistoryCleared   = "history_cleared"
	KeyExportDone       = "export_done"
	KeyExportFailed     = "export_failed"
	KeySaveFailed       = "save_failed"
	KeySignupSaved      = "signup_saved"
	KeyInvalidDuration  = "invalid_duration"
	KeyInvalidEmail     = "invalid_email"
	KeyConfirmCancel    = "confirm_cancel"
	KeyConfirmCancelMsg = "confirm_cancel_msg"
	KeyConfirmClear     = "confirm_clear"
	KeyConfirmClearMsg  = "confirm_clear_msg"
	KeyStatsActive      = "stats_active"
	KeyStatsToday       = "stats_today"
	KeyStatsWeek        = "stats_week"
	KeyStatsTotal       = "stats_total"
	KeyStatsAvg         = "stats_avg"
	KeyStatsCategory    = "stats_category"
	KeyStatusRunning    = "status_running"
	KeyStatusPaused     = "status_paused"
	KeyStatusCompleted  = "status_completed"
	KeyStatusCancelled  = "status_cancelled"
	KeySettingsSaved    = "settings_saved"
	KeyDefaultDuration  = "default_duration"
	KeyNotifications    = "notifications"
	KeyConfirmations    = "confirmations"
	KeyExportDirectory  = "export_directory"
	KeyBrowse           = "browse"
	KeyNoActiveLoads    = "no_active_loads"
	KeyNoHistory        = "no_history"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
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

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
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

// StatusText returns the localized label for a load status string
func (l *Localization) StatusText(status string) string {
	switch status {
	case "running":
		return l.GetText(KeyStatusRunning)
	case "paused":
		return l.GetText(KeyStatusPaused)
	case "completed":
		return l.GetText(KeyStatusCompleted)
	case "cancelled":
		return l.GetText(KeyStatusCancelled)
	default:
		return status
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "WashWatch",
		KeyStartLoad:        "Start Load",
		KeyWash:             "Wash",
		KeyDry:              "Dry",
		KeyLocation:         "Location",
		KeyCategory:         "Category",
		KeyDurationMinutes:  "Duration (minutes)",
		KeyNotes:            "Notes",
		KeyActiveLoads:      "Active Loads",
		KeyHistory:          "History",
		KeyStatistics:       "Statistics",
		KeyPause:            "Pause",
		KeyResume:           "Resume",
		KeyComplete:         "Done",
		KeyCancelLoad:       "Cancel",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyExport:           "Export History",
		KeyClearHistory:     "Clear History",
		KeyNotifyMe:         "Notify Me",
		KeyEmail:            "Email",
		KeyLoadStarted:      "Load started",
		KeyLoadCompleted:    "Load completed",
		KeyLoadCancelled:    "Load cancelled",
		KeyHistoryCleared:   "History cleared",
		KeyExportDone:       "History exported",
		KeyExportFailed:     "Export failed",
		KeySaveFailed:       "Could not save your loads",
		KeySignupSaved:      "We will keep you posted",
		KeyInvalidDuration:  "Duration must be a positive number of minutes",
		KeyInvalidEmail:     "Please enter a valid email address",
		KeyConfirmCancel:    "Cancel load",
		KeyConfirmCancelMsg: "Cancel this load? The cycle will stop for good.",
		KeyConfirmClear:     "Clear history",
		KeyConfirmClearMsg:  "Remove all completed and cancelled loads? Active loads are kept.",
		KeyStatsActive:      "Active",
		KeyStatsToday:       "Today",
		KeyStatsWeek:        "Last 7 days",
		KeyStatsTotal:       "Total",
		KeyStatsAvg:         "Avg duration",
		KeyStatsCategory:    "Top category",
		KeyStatusRunning:    "Running",
		KeyStatusPaused:     "Paused",
		KeyStatusCompleted:  "Completed",
		KeyStatusCancelled:  "Cancelled",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyDefaultDuration:  "Default duration (minutes)",
		KeyNotifications:    "Notify when a load completes",
		KeyConfirmations:    "Confirm destructive actions",
		KeyExportDirectory:  "Export Directory",
		KeyBrowse:           "Browse",
		KeyNoActiveLoads:    "No active loads. Start one above.",
		KeyNoHistory:        "No finished loads yet.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "WashWatch",
		KeyStartLoad:        "Запустить загрузку",
		KeyWash:             "Стирка",
		KeyDry:              "Сушка",
		KeyLocation:         "Место",
		KeyCategory:         "Категория",
		KeyDurationMinutes:  "Длительность (мин)",
		KeyNotes:            "Заметки",
		KeyActiveLoads:      "Активные загрузки",
		KeyHistory:          "История",
		KeyStatistics:       "Статистика",
		KeyPause:            "Пауза",
		KeyResume:           "Продолжить",
		KeyComplete:         "Готово",
		KeyCancelLoad:       "Отменить",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyExport:           "Экспорт истории",
		KeyClearHistory:     "Очистить историю",
		KeyNotifyMe:         "Уведомить меня",
		KeyEmail:            "Email",
		KeyLoadStarted:      "Загрузка запущена",
		KeyLoadCompleted:    "Загрузка завершена",
		KeyLoadCancelled:    "Загрузка отменена",
		KeyHistoryCleared:   "История очищена",
		KeyExportDone:       "История экспортирована",
		KeyExportFailed:     "Ошибка экспорта",
		KeySaveFailed:       "Не удалось сохранить загрузки",
		KeySignupSaved:      "Мы сообщим вам",
		KeyInvalidDuration:  "Длительность должна быть положительным числом минут",
		KeyInvalidEmail:     "Введите корректный адрес почты",
		KeyConfirmCancel:    "Отменить загрузку",
		KeyConfirmCancelMsg: "Отменить эту загрузку? Цикл остановится навсегда.",
		KeyConfirmClear:     "Очистить историю",
		KeyConfirmClearMsg:  "Удалить все завершённые и отменённые загрузки? Активные останутся.",
		KeyStatsActive:      "Активные",
		KeyStatsToday:       "Сегодня",
		KeyStatsWeek:        "За 7 дней",
		KeyStatsTotal:       "Всего",
		KeyStatsAvg:         "Средняя длительность",
		KeyStatsCategory:    "Частая категория",
		KeyStatusRunning:    "Идёт",
		KeyStatusPaused:     "Пауза",
		KeyStatusCompleted:  "Завершена",
		KeyStatusCancelled:  "Отменена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyDefaultDuration:  "Длительность по умолчанию (мин)",
		KeyNotifications:    "Уведомлять о завершении",
		KeyConfirmations:    "Подтверждать опасные действия",
		KeyExportDirectory:  "Папка экспорта",
		KeyBrowse:           "Обзор",
		KeyNoActiveLoads:    "Нет активных загрузок. Запустите выше.",
		KeyNoHistory:        "Завершённых загрузок пока нет.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "WashWatch",
		KeyStartLoad:        "Iniciar Carga",
		KeyWash:             "Lavar",
		KeyDry:              "Secar",
		KeyLocation:         "Local",
		KeyCategory:         "Categoria",
		KeyDurationMinutes:  "Duração (minutos)",
		KeyNotes:            "Notas",
		KeyActiveLoads:      "Cargas Ativas",
		KeyHistory:          "Histórico",
		KeyStatistics:       "Estatísticas",
		KeyPause:            "Pausar",
		KeyResume:           "Retomar",
		KeyComplete:         "Concluir",
		KeyCancelLoad:       "Cancelar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyExport:           "Exportar Histórico",
		KeyClearHistory:     "Limpar Histórico",
		KeyNotifyMe:         "Avise-me",
		KeyEmail:            "Email",
		KeyLoadStarted:      "Carga iniciada",
		KeyLoadCompleted:    "Carga concluída",
		KeyLoadCancelled:    "Carga cancelada",
		KeyHistoryCleared:   "Histórico limpo",
		KeyExportDone:       "Histórico exportado",
		KeyExportFailed:     "Falha na exportação",
		KeySaveFailed:       "Não foi possível salvar as cargas",
		KeySignupSaved:      "Vamos avisar você",
		KeyInvalidDuration:  "A duração deve ser um número positivo de minutos",
		KeyInvalidEmail:     "Digite um endereço de email válido",
		KeyConfirmCancel:    "Cancelar carga",
		KeyConfirmCancelMsg: "Cancelar esta carga? O ciclo será interrompido.",
		KeyConfirmClear:     "Limpar histórico",
		KeyConfirmClearMsg:  "Remover todas as cargas concluídas e canceladas? As ativas permanecem.",
		KeyStatsActive:      "Ativas",
		KeyStatsToday:       "Hoje",
		KeyStatsWeek:        "Últimos 7 dias",
		KeyStatsTotal:       "Total",
		KeyStatsAvg:         "Duração média",
		KeyStatsCategory:    "Categoria principal",
		KeyStatusRunning:    "Em andamento",
		KeyStatusPaused:     "Pausada",
		KeyStatusCompleted:  "Concluída",
		KeyStatusCancelled:  "Cancelada",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyDefaultDuration:  "Duração padrão (minutos)",
		KeyNotifications:    "Notificar ao concluir",
		KeyConfirmations:    "Confirmar ações destrutivas",
		KeyExportDirectory:  "Diretório de Exportação",
		KeyBrowse:           "Navegar",
		KeyNoActiveLoads:    "Nenhuma carga ativa. Inicie uma acima.",
		KeyNoHistory:        "Nenhuma carga finalizada ainda.",
	}
}
