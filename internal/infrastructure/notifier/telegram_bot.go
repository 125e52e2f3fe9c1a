package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/value"
	"dealflow/pkg/logx"
)

const (
	ChannelTelegram      = "telegram"
	ChannelTelegramAdmin = "telegram_admin"
)

var ErrNoChatID = errors.New("buyer has no telegram chat id")

//go:generate moq -rm -out sender_mock.gen.go . MessageSender

// MessageSender — часть telego.Bot, через которую уходят сообщения.
type MessageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot рассылает уведомления о совпадениях покупателям и в админский чат.
type TelegramBot struct {
	sender   MessageSender
	chatID   int64
	trackURL string
}

func NewTelegramBot(sender MessageSender, adminChatID int64) *TelegramBot {
	return &TelegramBot{
		sender: sender,
		chatID: adminChatID,
	}
}

// WithTrackURL задаёт публичный адрес API для ссылок отслеживания.
func (b *TelegramBot) WithTrackURL(baseURL string) *TelegramBot {
	b.trackURL = strings.TrimRight(baseURL, "/")
	return b
}

// Buyers — канал, доставляющий совпадение в личный чат покупателя.
func (b *TelegramBot) Buyers() Channel {
	return Channel{bot: b, name: ChannelTelegram}
}

// Admin — канал, дублирующий совпадения в админский чат.
func (b *TelegramBot) Admin() Channel {
	return Channel{bot: b, name: ChannelTelegramAdmin, chatID: b.chatID}
}

// SendText отправляет простое текстовое сообщение в админский чат.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.sender.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func (b *TelegramBot) send(ctx context.Context, chatID int64, text string) error {
	msg := tu.Message(tu.ID(chatID), text).
		WithParseMode(telego.ModeHTML).
		WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})

	if _, err := b.sender.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// Channel реализует match.Notifier для одного получателя.
// Нулевой chatID означает чат покупателя из уведомления.
type Channel struct {
	bot    *TelegramBot
	name   string
	chatID int64
}

func (c Channel) Channel() string {
	return c.name
}

func (c Channel) NotifyMatch(ctx context.Context, notice entity.MatchNotice) (string, error) {
	chatID := c.chatID
	text := c.bot.buyerText(notice)

	if chatID == 0 {
		chatID = notice.Buyer.TelegramChatID
		if chatID == 0 {
			return "", ErrNoChatID
		}
	} else {
		text = adminText(notice)
	}

	if err := c.bot.send(ctx, chatID, text); err != nil {
		return text, err
	}

	logger(ctx).Debug("match notification sent",
		slog.String("channel", c.name),
		slog.Int64(logx.FieldMatchID, notice.Match.ID),
	)

	return text, nil
}

func (b *TelegramBot) buyerText(n entity.MatchNotice) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🔥 <b>New deal matched for you</b>\n\n")
	fmt.Fprintf(&sb, "Hi %s,\n\n", html.EscapeString(n.Buyer.Name))
	writeDeal(&sb, n)

	if b.trackURL != "" {
		fmt.Fprintf(&sb, "\n%s · %s",
			link(b.trackLink(n.Match.ID, value.TrackActionInterest), "I'm interested"),
			link(b.trackLink(n.Match.ID, value.TrackActionReject), "Not for me"),
		)
	}
	if n.Deal.SourceURL != "" {
		fmt.Fprintf(&sb, "\n%s", link(n.Deal.SourceURL, "View listing"))
	}

	return sb.String()
}

func adminText(n entity.MatchNotice) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📬 <b>Match #%d</b> for deal #%d\n", n.Match.ID, n.Deal.ID)
	fmt.Fprintf(&sb, "<b>Buyer:</b> %s (#%d)\n", html.EscapeString(n.Buyer.Name), n.Buyer.ID)
	writeDeal(&sb, n)

	return sb.String()
}

func writeDeal(sb *strings.Builder, n entity.MatchNotice) {
	fmt.Fprintf(sb, "🏷 <b>%s</b>\n", html.EscapeString(n.Deal.Title))
	fmt.Fprintf(sb, "📦 <b>Category:</b> %s\n", html.EscapeString(n.Deal.Category.String()))
	if n.Deal.Location != "" {
		fmt.Fprintf(sb, "📍 <b>Location:</b> %s\n", html.EscapeString(n.Deal.Location))
	}
	fmt.Fprintf(sb, "💰 <b>Price:</b> $%s\n", n.Deal.Price.StringFixed(0))
	if n.Deal.DiscountPercentage != nil && *n.Deal.DiscountPercentage > 0 {
		fmt.Fprintf(sb, "📉 <b>Discount:</b> %.1f%%\n", *n.Deal.DiscountPercentage)
	}
	fmt.Fprintf(sb, "📊 <b>AI Score:</b> %d/100\n", n.Deal.AIScore)
	fmt.Fprintf(sb, "🤝 <b>Match:</b> %d/100\n", n.Match.MatchScore)
}

func (b *TelegramBot) trackLink(matchID int64, action value.TrackAction) string {
	return fmt.Sprintf("%s/v1/matches/%d/track?action=%s", b.trackURL, matchID, action)
}

func link(href, title string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(title))
}
