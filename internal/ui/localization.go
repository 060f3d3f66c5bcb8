package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyTheme              = "theme"
	KeyThemeDefault       = "theme_default"
	KeyThemeMaterial      = "theme_material"
	KeyEnterURL           = "enter_url"
	KeyCheckURL           = "check_url"
	KeyChecking           = "checking"
	KeyDownloadVideo      = "download_video"
	KeyDownloadAudio      = "download_audio"
	KeyBatchVideo         = "batch_video"
	KeyBatchAudio         = "batch_audio"
	KeyStop               = "stop"
	KeyOpenFolder         = "open_folder"
	KeyOpenFile           = "open_file"
	KeyPreview            = "preview"
	KeyFormat             = "format"
	KeyQuality            = "quality"
	KeyConsole            = "console"
	KeyHistory            = "history"
	KeyDefaultDirectory   = "default_directory"
	KeyBrowse             = "browse"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyPlaylistEntries    = "playlist_entries"
	KeyDuration           = "duration"
	KeyInvalidURL         = "invalid_url"
	KeySelectQuality      = "select_quality"
	KeyNothingToDownload  = "nothing_to_download"
	KeyAlreadyRunning     = "already_running"
	KeyDownloadStarted    = "download_started"
	KeyStoppingDownload   = "stopping_download"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadSkipped    = "download_skipped"
	KeyBatchSkipped       = "batch_skipped"
	KeyDownloadFailed     = "download_failed"
	KeyDownloadCancelled  = "download_cancelled"
	KeyProbeFailed        = "probe_failed"
	KeyThumbnailFailed    = "thumbnail_failed"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyPreviewFailed      = "preview_failed"
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

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
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

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT Grabber",
		KeyFile:               "File",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyTheme:              "Theme",
		KeyThemeDefault:       "Compact",
		KeyThemeMaterial:      "Material Design",
		KeyEnterURL:           "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyCheckURL:           "Check URL",
		KeyChecking:           "Checking URL...",
		KeyDownloadVideo:      "Download Video",
		KeyDownloadAudio:      "Download Audio",
		KeyBatchVideo:         "Batch Download Videos",
		KeyBatchAudio:         "Batch Download Audios",
		KeyStop:               "Stop",
		KeyOpenFolder:         "Open folder",
		KeyOpenFile:           "Open file",
		KeyPreview:            "Preview",
		KeyFormat:             "Video quality",
		KeyQuality:            "Batch quality",
		KeyConsole:            "Console",
		KeyHistory:            "History",
		KeyDefaultDirectory:   "Default download directory",
		KeyBrowse:             "Browse",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Default download directory saved.",
		KeyPlaylistEntries:    "Playlist: %d videos",
		KeyDuration:           "Duration",
		KeyInvalidURL:         "Please enter a valid YouTube URL",
		KeySelectQuality:      "Please select a valid video quality.",
		KeyNothingToDownload:  "Check a URL first.",
		KeyAlreadyRunning:     "A download is already running.",
		KeyDownloadStarted:    "Download started",
		KeyStoppingDownload:   "Stopping download...",
		KeyDownloadCompleted:  "Download completed successfully",
		KeyDownloadSkipped:    "Skipped private/unavailable video.",
		KeyBatchSkipped:       "Download completed, %d of %d skipped",
		KeyDownloadFailed:     "Download failed: %s",
		KeyDownloadCancelled:  "Download cancelled",
		KeyProbeFailed:        "Failed to fetch video info",
		KeyThumbnailFailed:    "Failed to load thumbnail",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyErrorOpeningFile:   "Error opening file",
		KeyPreviewFailed:      "Failed to open preview",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT Grabber",
		KeyFile:               "Файл",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyTheme:              "Тема",
		KeyThemeDefault:       "Компактная",
		KeyThemeMaterial:      "Material Design",
		KeyEnterURL:           "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyCheckURL:           "Проверить URL",
		KeyChecking:           "Проверка URL...",
		KeyDownloadVideo:      "Скачать видео",
		KeyDownloadAudio:      "Скачать аудио",
		KeyBatchVideo:         "Скачать все видео",
		KeyBatchAudio:         "Скачать все аудио",
		KeyStop:               "Стоп",
		KeyOpenFolder:         "Открыть папку",
		KeyOpenFile:           "Открыть файл",
		KeyPreview:            "Просмотр",
		KeyFormat:             "Качество видео",
		KeyQuality:            "Качество пакета",
		KeyConsole:            "Консоль",
		KeyHistory:            "История",
		KeyDefaultDirectory:   "Папка загрузки по умолчанию",
		KeyBrowse:             "Обзор",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Папка загрузки сохранена.",
		KeyPlaylistEntries:    "Плейлист: %d видео",
		KeyDuration:           "Длительность",
		KeyInvalidURL:         "Введите корректный URL YouTube",
		KeySelectQuality:      "Выберите качество видео.",
		KeyNothingToDownload:  "Сначала проверьте URL.",
		KeyAlreadyRunning:     "Загрузка уже выполняется.",
		KeyDownloadStarted:    "Загрузка начата",
		KeyStoppingDownload:   "Остановка загрузки...",
		KeyDownloadCompleted:  "Загрузка успешно завершена",
		KeyDownloadSkipped:    "Пропущено приватное или недоступное видео.",
		KeyBatchSkipped:       "Загрузка завершена, пропущено %d из %d",
		KeyDownloadFailed:     "Ошибка загрузки: %s",
		KeyDownloadCancelled:  "Загрузка отменена",
		KeyProbeFailed:        "Не удалось получить информацию о видео",
		KeyThumbnailFailed:    "Не удалось загрузить превью",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyPreviewFailed:      "Не удалось открыть просмотр",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT Grabber",
		KeyFile:               "Arquivo",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyTheme:              "Tema",
		KeyThemeDefault:       "Compacto",
		KeyThemeMaterial:      "Material Design",
		KeyEnterURL:           "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyCheckURL:           "Verificar URL",
		KeyChecking:           "Verificando URL...",
		KeyDownloadVideo:      "Baixar vídeo",
		KeyDownloadAudio:      "Baixar áudio",
		KeyBatchVideo:         "Baixar todos os vídeos",
		KeyBatchAudio:         "Baixar todos os áudios",
		KeyStop:               "Parar",
		KeyOpenFolder:         "Abrir pasta",
		KeyOpenFile:           "Abrir arquivo",
		KeyPreview:            "Pré-visualizar",
		KeyFormat:             "Qualidade do vídeo",
		KeyQuality:            "Qualidade do lote",
		KeyConsole:            "Console",
		KeyHistory:            "Histórico",
		KeyDefaultDirectory:   "Diretório de download padrão",
		KeyBrowse:             "Navegar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Diretório de download salvo.",
		KeyPlaylistEntries:    "Playlist: %d vídeos",
		KeyDuration:           "Duração",
		KeyInvalidURL:         "Digite uma URL válida do YouTube",
		KeySelectQuality:      "Selecione uma qualidade de vídeo válida.",
		KeyNothingToDownload:  "Verifique uma URL primeiro.",
		KeyAlreadyRunning:     "Um download já está em andamento.",
		KeyDownloadStarted:    "Download iniciado",
		KeyStoppingDownload:   "Parando download...",
		KeyDownloadCompleted:  "Download concluído com sucesso",
		KeyDownloadSkipped:    "Vídeo privado ou indisponível ignorado.",
		KeyBatchSkipped:       "Download concluído, %d de %d ignorados",
		KeyDownloadFailed:     "Falha no download: %s",
		KeyDownloadCancelled:  "Download cancelado",
		KeyProbeFailed:        "Falha ao obter informações do vídeo",
		KeyThumbnailFailed:    "Falha ao carregar miniatura",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyPreviewFailed:      "Falha ao abrir a pré-visualização",
	}
}
