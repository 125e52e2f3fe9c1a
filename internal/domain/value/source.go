package value

import "strings"

// Source — площадка, с которой пришла сделка.
type Source string

const (
	SourceAutotrader          Source = "autotrader"
	SourceFacebookMarketplace Source = "facebook-marketplace"
	SourceFSBO                Source = "fsbo"
	SourceAuction             Source = "auction"
	SourceCraigslist          Source = "craigslist"
	SourceDealer              Source = "dealer"
)

func (s Source) String() string {
	return string(s)
}

func ParseSource(s string) Source {
	return Source(strings.ToLower(strings.TrimSpace(s)))
}
