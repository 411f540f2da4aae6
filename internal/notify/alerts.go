package notify

import (
	"fmt"
	"strings"

	"github.com/alanyoungcy/arbscan/internal/domain"
)

// maxAlertLines caps how many opportunities one alert message lists so a
// busy scan does not overflow Telegram's message size limit.
const maxAlertLines = 10

// FormatOpportunities renders a scan's best opportunities as an alert
// title and body. Opportunities are assumed to be sorted by profit
// already; only the top entries are listed.
func FormatOpportunities(opps []domain.Opportunity) (title, message string) {
	title = fmt.Sprintf("%d arbitrage opportunities", len(opps))

	var b strings.Builder
	for i, o := range opps {
		if i == maxAlertLines {
			fmt.Fprintf(&b, "... and %d more\n", len(opps)-maxAlertLines)
			break
		}
		fmt.Fprintf(&b, "%s: buy %s @ %.8g, sell %s @ %.8g, net %.3f%%\n",
			o.Symbol, o.BuyExchange, o.BuyPrice, o.SellExchange, o.SellPrice, o.RealProfitPercent)
	}
	return title, strings.TrimRight(b.String(), "\n")
}
