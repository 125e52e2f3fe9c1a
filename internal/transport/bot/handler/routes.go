package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"dealflow/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	adminGroup.HandleMessage(h.OnTop, th.CommandEqual("top"))
	adminGroup.HandleMessage(h.OnDeal, th.CommandEqual("deal"))
	adminGroup.HandleMessage(h.OnRescore, th.CommandEqual("rescore"))

	// Фоновый проход по горячим сделкам
	adminGroup.HandleMessage(h.OnSweep, th.CommandEqual("sweep"))
	adminGroup.HandleMessage(h.OnStartSweep, th.CommandEqual("startsweep"))
	adminGroup.HandleMessage(h.OnStopSweep, th.CommandEqual("stopsweep"))
}
