package server

//go:generate moq -rm -out mocks.gen.go . DealService DealMatcher BuyerService BuyerMatchLister MatchService NotificationLister StatsService FitScorer

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	DealServer
	BuyerServer
	MatchServer
	AdminServer
	FitServer
}

func NewServer(
	dealServer DealServer,
	buyerServer BuyerServer,
	matchServer MatchServer,
	adminServer AdminServer,
	fitServer FitServer,
) Server {
	return Server{
		DealServer:  dealServer,
		BuyerServer: buyerServer,
		MatchServer: matchServer,
		AdminServer: adminServer,
		FitServer:   fitServer,
	}
}
