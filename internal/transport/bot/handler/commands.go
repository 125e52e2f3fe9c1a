package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"dealflow/internal/domain"
	"dealflow/internal/transport/bot/view"
	"dealflow/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.reply(ctx, msg, h.Status)
}

func (h *Handler) OnTop(ctx *th.Context, msg telego.Message) error {
	return h.reply(ctx, msg, h.Top)
}

func (h *Handler) OnDeal(ctx *th.Context, msg telego.Message) error {
	return h.reply(ctx, msg, func(ctx context.Context) (string, error) {
		return h.Deal(ctx, msg.Text)
	})
}

func (h *Handler) OnRescore(ctx *th.Context, msg telego.Message) error {
	return h.reply(ctx, msg, func(ctx context.Context) (string, error) {
		return h.Rescore(ctx, msg.Text)
	})
}

func (h *Handler) OnSweep(ctx *th.Context, msg telego.Message) error {
	n := h.sweeper.SweepOnce(ctx)

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.SweepDone, n))
}

func (h *Handler) OnStartSweep(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.StartSweep(ctx))
}

func (h *Handler) OnStopSweep(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.StopSweep())
}

// Status собирает сводку по системе.
func (h *Handler) Status(ctx context.Context) (string, error) {
	snap, err := h.stats.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("stats.Snapshot: %w", err)
	}

	return view.Status(snap, h.stats.HotScore(), h.sweeper.IsRunning()), nil
}

func (h *Handler) Top(ctx context.Context) (string, error) {
	deals, err := h.stats.TopDeals(ctx, topLimit)
	if err != nil {
		return "", fmt.Errorf("stats.TopDeals: %w", err)
	}

	return view.Top(deals), nil
}

// Deal показывает карточку сделки.
// Использование: /deal 42
func (h *Handler) Deal(ctx context.Context, text string) (string, error) {
	id, usage := parseID(text, view.UsageDeal)
	if usage != "" {
		return usage, nil
	}

	d, err := h.deals.Get(ctx, id)
	if domain.IsNotFound(err) {
		return fmt.Sprintf(view.DealNotFound, id), nil
	}
	if err != nil {
		return "", fmt.Errorf("deals.Get: %w", err)
	}

	return view.Deal(*d), nil
}

// Rescore пересчитывает оценку сделки.
// Использование: /rescore 42
func (h *Handler) Rescore(ctx context.Context, text string) (string, error) {
	id, usage := parseID(text, view.UsageRescore)
	if usage != "" {
		return usage, nil
	}

	result, err := h.deals.Rescore(ctx, id)
	if domain.IsNotFound(err) {
		return fmt.Sprintf(view.DealNotFound, id), nil
	}
	if err != nil {
		return "", fmt.Errorf("deals.Rescore: %w", err)
	}

	return view.Rescored(result.Deal, result.Dispatched), nil
}

// StartSweep запускает фоновый проход, не привязанный к обновлению бота.
func (h *Handler) StartSweep(ctx context.Context) string {
	if h.sweeper.IsRunning() {
		return view.SweeperRunning
	}

	if err := h.sweeper.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Sprintf(view.SweeperStartFail, err)
	}

	return view.SweeperStarted
}

func (h *Handler) StopSweep() string {
	if !h.sweeper.IsRunning() {
		return view.SweeperIdle
	}

	h.sweeper.Stop()

	return view.SweeperStopped
}

// Вспомогательные методы

func parseID(text, usage string) (int64, string) {
	args := strings.Fields(text)
	if len(args) < 2 {
		return 0, usage
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, view.InvalidID
	}

	return id, ""
}

func (h *Handler) reply(ctx *th.Context, msg telego.Message, build func(context.Context) (string, error)) error {
	text, err := build(ctx)
	if err != nil {
		logger(ctx).Error("bot command failed", logx.Error(err))
		return h.send(ctx, msg.Chat.ID, "❌ Внутренняя ошибка, подробности в логах")
	}

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})
	return err
}
