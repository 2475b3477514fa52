// Package bot serves lessons over Telegram. Every text message is handled
// on its own, the bot keeps no per-user state.
package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"codeberg.org/snonux/kannadacards/internal/export"
	"codeberg.org/snonux/kannadacards/internal/processor"
)

// LessonBuilder builds a lesson from a source sentence
type LessonBuilder interface {
	Process(ctx context.Context, text string) (*processor.Lesson, error)
}

// Router registers handlers, *tele.Bot implements it
type Router interface {
	Handle(endpoint interface{}, h tele.HandlerFunc, m ...tele.MiddlewareFunc)
}

// Handler answers bot commands and messages
type Handler struct {
	builder LessonBuilder
	logger  *zap.Logger
	ctx     context.Context
	timeout time.Duration // Deadline of one message, zero for none
}

// NewHandler creates a handler building lessons with builder. Lessons are
// built under ctx.
func NewHandler(ctx context.Context, builder LessonBuilder, timeout time.Duration, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{builder: builder, logger: logger, ctx: ctx, timeout: timeout}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers(r Router) {
	r.Handle("/start", h.handleStart)
	r.Handle("/help", h.handleStart)
	r.Handle(tele.OnText, h.handleText)
}

const helpText = `ਸਤ ਸ੍ਰੀ ਅਕਾਲ! Send me a sentence in Punjabi.

I answer with its Kannada translation, the translation written in Gurmukhi, how to pronounce it and audio for the whole sentence and every word.`

func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot", senderFields(c)...)
	return c.Send(helpText)
}

func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if strings.HasPrefix(text, "/") {
		return c.Send("Unknown command. Send /start for help.")
	}

	ctx := h.ctx
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	_ = c.Notify(tele.Typing)
	lesson, err := h.builder.Process(ctx, text)
	if err != nil {
		h.logger.Warn("lesson failed", append(senderFields(c), zap.Error(err))...)
		return c.Send(export.UserMessage(err))
	}

	if err := c.Send(export.FormatLesson(lesson)); err != nil {
		return err
	}
	if err := c.Send(audioMessage(export.SentenceAudioFile, lesson.Sentence.SourceText, lesson.Sentence.Audio)); err != nil {
		return fmt.Errorf("failed to send sentence audio: %w", err)
	}
	for _, card := range lesson.Cards {
		if card.Failed() {
			continue
		}
		title := fmt.Sprintf("%s = %s", card.SourceWord, card.TranslatedWord)
		if err := c.Send(audioMessage(export.WordAudioFile(card.Index), title, card.Audio)); err != nil {
			return fmt.Errorf("failed to send audio of word %d: %w", card.Index, err)
		}
	}
	return nil
}

func audioMessage(fileName, title string, data []byte) *tele.Audio {
	return &tele.Audio{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: fileName,
		Title:    title,
		MIME:     "audio/mpeg",
	}
}

func senderFields(c tele.Context) []zap.Field {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	return []zap.Field{zap.Int64("user_id", sender.ID), zap.String("username", sender.Username)}
}

// Run starts a long polling bot and blocks until ctx is done
func Run(ctx context.Context, token string, builder LessonBuilder, timeout time.Duration, logger *zap.Logger) error {
	if token == "" {
		return fmt.Errorf("telegram bot token is required, set TELEGRAM_BOT_TOKEN or bot.token")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("bot handler failed", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	NewHandler(ctx, builder, timeout, logger).RegisterHandlers(b)

	go func() {
		logger.Info("Bot started", zap.String("username", b.Me.Username))
		b.Start()
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping bot")
	b.Stop()
	return nil
}
