package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidPaging       failure.ErrorCode = "InvalidPaging"

	// Сделки
	DealNotFound        failure.ErrorCode = "DealNotFound"
	InvalidDealID       failure.ErrorCode = "InvalidDealID"
	InvalidPrice        failure.ErrorCode = "InvalidPrice"
	InvalidCategory     failure.ErrorCode = "InvalidCategory"
	InvalidSource       failure.ErrorCode = "InvalidSource"
	DealAlreadyIngested failure.ErrorCode = "DealAlreadyIngested" // тот же source_url недавно уже приходил

	// Покупатели
	BuyerNotFound   failure.ErrorCode = "BuyerNotFound"
	InvalidBuyerID  failure.ErrorCode = "InvalidBuyerID"
	BuyerEmailTaken failure.ErrorCode = "BuyerEmailTaken"
	InvalidBudget   failure.ErrorCode = "InvalidBudget"

	// Совпадения
	MatchNotFound      failure.ErrorCode = "MatchNotFound"
	InvalidMatchID     failure.ErrorCode = "InvalidMatchID"
	InvalidMatchStatus failure.ErrorCode = "InvalidMatchStatus"
	InvalidTrackAction failure.ErrorCode = "InvalidTrackAction"
)
