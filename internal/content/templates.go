package content

// Template is one reusable post body with its targeting metadata.
type Template struct {
	ID           string
	Category     string
	Platforms    []string
	Body         string
	Hashtags     []string
	CallToAction string
}

// Spec captures per-network posting constraints.
type Spec struct {
	MaxLength int
	Hashtags  int
	BestTimes []string // HH:MM, in the configured timezone
}

var platformSpecs = map[string]Spec{
	"twitter": {
		MaxLength: 280,
		Hashtags:  3,
		BestTimes: []string{"09:00", "12:00", "17:00", "20:00"},
	},
	"linkedin": {
		MaxLength: 3000,
		Hashtags:  4,
		BestTimes: []string{"07:00", "12:00", "17:00"},
	},
	"facebook": {
		MaxLength: 63206,
		Hashtags:  3,
		BestTimes: []string{"13:00", "15:00", "19:00"},
	},
	"instagram": {
		MaxLength: 2200,
		Hashtags:  8,
		BestTimes: []string{"11:00", "14:00", "19:00"},
	},
	"reddit": {
		MaxLength: 40000,
		Hashtags:  0,
		BestTimes: []string{"06:00", "08:00", "16:00", "21:00"},
	},
}

var defaultSpec = Spec{
	MaxLength: 280,
	Hashtags:  3,
	BestTimes: []string{"09:00"},
}

var templateLibrary = []Template{
	{
		ID:        "feature_realtime_charts",
		Category:  "feature",
		Platforms: []string{"twitter", "linkedin", "facebook"},
		Body: "Real-time market data at your fingertips. TradeFlows Pro delivers professional-grade " +
			"charts with multiple timeframes, from one minute to one day.",
		Hashtags:     []string{"TradingPlatform", "StockMarket", "MarketData"},
		CallToAction: "Start your 14-day free trial: https://tradeflows.net",
	},
	{
		ID:        "feature_strategies",
		Category:  "feature",
		Platforms: []string{"twitter", "linkedin"},
		Body: "Four algorithmic strategies out of the box: RSI mean reversion, MACD trend following, " +
			"Bollinger breakouts and momentum signals. Let the engine scan the market for you.",
		Hashtags:     []string{"AlgoTrading", "TradingStrategy", "AutomatedTrading"},
		CallToAction: "Try the strategies free for 14 days: https://tradeflows.net",
	},
	{
		ID:        "feature_backtesting",
		Category:  "feature",
		Platforms: []string{"twitter", "linkedin", "reddit"},
		Body: "Backtest before you invest. Validate any strategy against historical data and full " +
			"performance metrics before a single dollar moves.",
		Hashtags:     []string{"Backtesting", "DataDrivenTrading"},
		CallToAction: "Test drive the backtesting engine: https://tradeflows.net",
	},
	{
		ID:        "feature_portfolio",
		Category:  "feature",
		Platforms: []string{"linkedin", "facebook"},
		Body: "Track multiple portfolios, monitor real-time P&L and visualize asset allocation " +
			"from one dashboard. Professional portfolio tools without the institutional price tag.",
		Hashtags:     []string{"PortfolioManagement", "InvestmentTools"},
		CallToAction: "Elevate your portfolio management: https://tradeflows.net",
	},
	{
		ID:        "pricing_trial",
		Category:  "pricing",
		Platforms: []string{"twitter", "facebook", "instagram"},
		Body: "Every plan starts with 14 days free. No credit card, no commitment, full feature " +
			"access from day one.",
		Hashtags:     []string{"FreeTrial", "Trading"},
		CallToAction: "Claim your trial: https://tradeflows.net",
	},
	{
		ID:        "pricing_value",
		Category:  "pricing",
		Platforms: []string{"linkedin", "reddit"},
		Body: "Institutional trading software used to cost five figures a year. TradeFlows Pro puts " +
			"the same tooling at retail pricing, starting at $29 a month.",
		Hashtags:     []string{"FinTech", "RetailTrading"},
		CallToAction: "See the plans: https://tradeflows.net",
	},
	{
		ID:        "education_risk",
		Category:  "education",
		Platforms: []string{"twitter", "linkedin", "reddit"},
		Body: "Position sizing beats stock picking. Risking 1-2% of capital per trade keeps any " +
			"single loss survivable, and surviving is what compounds.",
		Hashtags:     []string{"RiskManagement", "TradingTips"},
		CallToAction: "More on risk tooling: https://tradeflows.net",
	},
	{
		ID:        "education_indicators",
		Category:  "education",
		Platforms: []string{"twitter", "facebook", "instagram"},
		Body: "RSI below 30 is not a buy signal by itself. Oversold can stay oversold. Pair momentum " +
			"indicators with trend context before acting.",
		Hashtags:     []string{"TechnicalAnalysis", "TradingEducation"},
		CallToAction: "Learn with live charts: https://tradeflows.net",
	},
	{
		ID:        "usecase_daytrader",
		Category:  "usecase",
		Platforms: []string{"twitter", "reddit"},
		Body: "Day traders: imagine four strategies running in parallel, scanning markets all session " +
			"and pushing instant alerts. That is a normal Tuesday on TradeFlows Pro.",
		Hashtags:     []string{"DayTrading", "TradingSignals"},
		CallToAction: "14-day free trial, no credit card: https://tradeflows.net",
	},
	{
		ID:        "usecase_swing",
		Category:  "usecase",
		Platforms: []string{"linkedin", "facebook"},
		Body: "Swing traders get their edge from preparation: price alerts, multi-timeframe analysis " +
			"and strategy signals that surface opportunities while you focus on the big picture.",
		Hashtags:     []string{"SwingTrading", "ActiveTrading"},
		CallToAction: "Set up your watchlist: https://tradeflows.net",
	},
	{
		ID:        "promotion_launch",
		Category:  "promotion",
		Platforms: []string{"twitter", "facebook", "instagram"},
		Body: "New this month: flash momentum signals and an upgraded alerting pipeline. Existing " +
			"subscribers get both at no extra cost.",
		Hashtags:     []string{"ProductUpdate", "Trading"},
		CallToAction: "Read the changelog: https://tradeflows.net",
	},
	{
		ID:        "engagement_question",
		Category:  "engagement",
		Platforms: []string{"twitter", "reddit", "facebook"},
		Body: "Traders: what is the one indicator you would keep if you had to drop all the others? " +
			"Curious what this community actually leans on.",
		Hashtags:     []string{"TradingCommunity"},
		CallToAction: "",
	},
	{
		ID:        "comparison_spreadsheets",
		Category:  "comparison",
		Platforms: []string{"linkedin", "reddit"},
		Body: "Still tracking trades in a spreadsheet? Manual journals drift out of date the week you " +
			"need them most. Automated P&L and transaction history keep the record honest.",
		Hashtags:     []string{"TradingJournal", "FinTech"},
		CallToAction: "Automate the boring part: https://tradeflows.net",
	},
}

// SpecFor returns the posting constraints for a platform, falling back to a
// conservative default for unknown networks.
func SpecFor(platform string) Spec {
	if spec, ok := platformSpecs[platform]; ok {
		return spec
	}
	return defaultSpec
}
