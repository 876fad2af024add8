package models

// Company is one tradable company on the simulated exchange. Prices and the
// percent change are computed server-side; the client only reads them.
type Company struct {
	ID            int64   `json:"id"`
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	CurrentPrice  int64   `json:"current_price"`
	BasePrice     int64   `json:"base_price,omitempty"`
	ChangePercent float64 `json:"change_percent"`
}

// Position is the user's aggregated holding of one company's shares,
// including the server-derived valuation fields.
type Position struct {
	CompanyID       int64  `json:"company_id"`
	Name            string `json:"name"`
	Ticker          string `json:"ticker"`
	Shares          int64  `json:"shares"`
	AverageBuyPrice int64  `json:"average_buy_price"`
	CurrentPrice    int64  `json:"current_price"`
	CurrentValue    int64  `json:"current_value"`
	Profit          int64  `json:"profit"`
}

// PricePoint is one entry of a company's price history.
type PricePoint struct {
	Price      int64  `json:"price"`
	RecordedAt string `json:"recorded_at"`
}

// PortfolioTotals sums the display aggregates over a portfolio: total
// current value, total profit and total share count.
func PortfolioTotals(positions []Position) (value, profit, shares int64) {
	for _, p := range positions {
		value += p.CurrentValue
		profit += p.Profit
		shares += p.Shares
	}
	return value, profit, shares
}
