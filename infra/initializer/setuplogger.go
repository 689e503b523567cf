package initializer

import (
	"io"
	"log/slog"

	"github.com/amirasaad/paygate/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

// formatters maps LOG_FORMAT values; anything else falls back to text.
var formatters = map[string]log.Formatter{
	"json": log.JSONFormatter,
	"text": log.TextFormatter,
}

func levelStyle(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(icon).
		Bold(true).
		Padding(0, 1).
		Foreground(color)
}

// gatewayStyles colors the level badges and the keys every gateway log line
// carries.
func gatewayStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":   errorTxtColor,
		"gateway": infoTxtColor,
		"code":    infoTxtColor,
		"status":  warnTxtColor,
		"url":     debugTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// setupLogger builds the charmbracelet-backed slog logger and installs it as
// the default. A nil cfg uses the text formatter at info level.
func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text", TimeFormat: "2006-01-02 15:04:05", Prefix: "[paygate]"}
	}
	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(gatewayStyles())

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
