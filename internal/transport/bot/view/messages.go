package view

import (
	"fmt"
	"html"
	"strings"

	"dealflow/internal/domain/entity"
	"dealflow/internal/domain/service/stats"
)

const StartMessage = `👋 <b>Dealflow</b>

Команды администратора:
/status - сводка по сделкам, покупателям и совпадениям
/top - лучшие активные сделки
/deal <code>ID</code> - карточка сделки
/rescore <code>ID</code> - пересчитать оценку и запустить подбор
/sweep - разовый проход по горячим сделкам
/startsweep, /stopsweep - управление фоновым проходом`

const (
	UsageDeal        = "❌ Использование: /deal <code>ID</code>"
	UsageRescore     = "❌ Использование: /rescore <code>ID</code>"
	InvalidID        = "❌ Неверный формат ID"
	DealNotFound     = "⚠️ Сделка <code>%d</code> не найдена"
	NoDeals          = "📭 Активных сделок пока нет"
	SweeperRunning   = "Проход уже запущен!"
	SweeperStarted   = "Проход запущен!"
	SweeperStopped   = "Проход остановлен"
	SweeperIdle      = "Проход не запущен"
	SweeperStartFail = "Ошибка запуска прохода: %v"
	SweepDone        = "🔁 Поставлено задач на подбор: %d"
)

func Status(snap stats.Snapshot, hotScore int, sweeping bool) string {
	sweeper := "🔴 остановлен"
	if sweeping {
		sweeper = "🟢 работает"
	}

	var sb strings.Builder

	sb.WriteString("📊 <b>Статус системы</b>\n\n")
	fmt.Fprintf(&sb, "📦 <b>Сделки:</b> %d (горячих ≥%d: %d)\n", snap.TotalDeals, hotScore, snap.HotDeals)
	fmt.Fprintf(&sb, "👥 <b>Покупатели:</b> %d (активных: %d)\n", snap.TotalBuyers, snap.ActiveBuyers)
	fmt.Fprintf(&sb, "🤝 <b>Совпадения:</b> %d (интерес: %d)\n", snap.TotalMatches, snap.InterestedMatches)
	fmt.Fprintf(&sb, "🔍 <b>Фоновый проход:</b> %s", sweeper)

	return sb.String()
}

func Top(deals []entity.Deal) string {
	if len(deals) == 0 {
		return NoDeals
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "🔥 <b>Лучшие сделки (%d):</b>\n\n", len(deals))

	for i, d := range deals {
		fmt.Fprintf(&sb, "%d. <code>%d</code> %s - $%s, оценка %d\n",
			i+1, d.ID, html.EscapeString(d.Title), d.Price.StringFixed(2), d.AIScore)
	}

	return sb.String()
}

func Deal(d entity.Deal) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(d.Title))
	fmt.Fprintf(&sb, "ID: <code>%d</code>, статус: %s\n", d.ID, d.Status)
	fmt.Fprintf(&sb, "Цена: $%s\n", d.Price.StringFixed(2))

	if d.MarketValue != nil {
		mark := ""
		if d.MarketValueEstimated {
			mark = " (оценка)"
		}
		fmt.Fprintf(&sb, "Рыночная цена: $%s%s\n", d.MarketValue.StringFixed(2), mark)
	}
	if d.DiscountPercentage != nil {
		fmt.Fprintf(&sb, "Скидка: %.1f%%\n", *d.DiscountPercentage)
	}

	fmt.Fprintf(&sb, "Категория: %s, источник: %s\n", d.Category, d.Source)
	if d.Location != "" {
		fmt.Fprintf(&sb, "Локация: %s\n", html.EscapeString(d.Location))
	}

	fmt.Fprintf(&sb, "\n⭐ <b>Оценка: %d/100</b>\n", d.AIScore)
	for _, f := range d.ScoreFactors {
		fmt.Fprintf(&sb, "• %s\n", html.EscapeString(f))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func Rescored(d entity.Deal, dispatched bool) string {
	text := fmt.Sprintf("✅ Сделка <code>%d</code> переоценена: %d/100", d.ID, d.AIScore)
	if dispatched {
		text += "\n🤝 Подбор покупателей запущен"
	}

	return text
}
