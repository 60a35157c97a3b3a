// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package webhook

import (
	"embed"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/linuxfoundation/lfx-v2-webinar-client/internal/logging"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/utils"
	"github.com/linuxfoundation/lfx-v2-webinar-client/pkg/webinar"
)

//go:embed active.*.toml
var localeFS embed.FS

// Summary languages.
const (
	LangEN = "EN"
	LangRU = "RU"
)

const summaryTimeLayout = "2006-01-02 15:04 MST"

// Translator renders summaries from the embedded message files.
type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator loads the embedded English and Russian messages.
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.ru.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

var (
	defaultTranslator     *Translator
	defaultTranslatorErr  error
	defaultTranslatorOnce sync.Once
)

func translator() (*Translator, error) {
	defaultTranslatorOnce.Do(func() {
		defaultTranslator, defaultTranslatorErr = NewTranslator()
	})
	return defaultTranslator, defaultTranslatorErr
}

// Summary renders a one-line description of p in lang (LangEN or LangRU).
// Unknown languages fall back to English.
func (p Payload) Summary(lang string) string {
	t, err := translator()
	if err != nil {
		slog.Error("webhook translations are unavailable", logging.ErrKey, err)
		return string(p.Event)
	}
	return t.Summary(p, lang)
}

// Summary renders a one-line description of p in lang.
func (t *Translator) Summary(p Payload, lang string) string {
	localizer := i18n.NewLocalizer(t.bundle, lang, language.English.String())

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID(p.Event),
		TemplateData: templateData(p.Data),
	})
	if err != nil {
		slog.Warn("failed to localize webhook summary", "event", p.Event, "lang", lang, logging.ErrKey, err)
		return string(p.Event)
	}
	return msg
}

func messageID(e Event) string {
	switch e {
	case EventSessionCreated:
		return "SessionCreated"
	case EventSessionScheduleChanged:
		return "SessionScheduleChanged"
	case EventSessionReminderSent:
		return "SessionReminderSent"
	case EventSessionStarted:
		return "SessionStarted"
	case EventSessionAllLeft:
		return "SessionAllLeft"
	case EventSessionEnded:
		return "SessionEnded"
	case EventRecordReady:
		return "RecordReady"
	case EventConversionReady:
		return "ConversionReady"
	}
	return "UnknownEvent"
}

func templateData(d Data) map[string]any {
	return map[string]any{
		"Name":         utils.CoalesceString(utils.StringValue(d.Name), "#"+int64String(d.EventSessionID)),
		"SessionID":    int64String(d.EventSessionID),
		"StartsAt":     timeString(d.StartsAt),
		"EndsAt":       timeString(d.EndsAt),
		"OldStartsAt":  timeString(d.OldStartsAt),
		"ReminderType": utils.StringValue(d.ReminderType),
		"RecordID":     int64String(d.RecordID),
		"ConversionID": int64String(d.ConversionID),
		"URL":          utils.StringValue(d.URL),
		"Duration":     durationString(d.Duration),
	}
}

func int64String(v *int64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatInt(*v, 10)
}

func timeString(v *webinar.DateTime) string {
	if v == nil || v.IsZero() {
		return "?"
	}
	return v.Format(summaryTimeLayout)
}

func durationString(seconds *int64) string {
	if seconds == nil {
		return "?"
	}
	return (time.Duration(*seconds) * time.Second).String()
}
