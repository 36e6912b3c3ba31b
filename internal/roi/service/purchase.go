package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxInsights caps how many insight lines the score carries.
const maxInsights = 4

// PurchaseScore is the 1-9 buy recommendation with supporting insights.
type PurchaseScore struct {
	Score    int      `json:"score"`
	Label    string   `json:"label"`
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
}

// ScoreInputs are the projection metrics the score is derived from.
type ScoreInputs struct {
	PaybackYears        *float64
	ROIPercent          float64
	NetProfit           float64
	ExtraCostDuringLoan float64
	PostLoanSavings     float64
}

type scoreLabel struct {
	label   string
	summary string
}

var scoreLabels = map[int]scoreLabel{
	1: {"1 • Non-starter", "Financials are strongly negative; pursue efficiency upgrades before solar."},
	2: {"2 • Very Weak", "Returns rely on major incentives that are not currently in the model."},
	3: {"3 • Weak", "Long payback and modest savings make this difficult to justify today."},
	4: {"4 • Borderline", "Could make sense with better incentives or lower system costs."},
	5: {"5 • Mixed Bag", "Economics are middling—tune the assumptions to tilt the math in your favor."},
	6: {"6 • Solid", "Respectable payback and savings; worth serious consideration."},
	7: {"7 • Compelling", "Strong fundamentals with attractive lifetime value."},
	8: {"8 • Strong Buy", "Excellent ROI and payback; solar is a smart investment here."},
	9: {"9 • Exceptional", "Top-tier economics with rapid payback and outsized upside."},
}

// ScorePurchase turns projection metrics into a 1-9 recommendation. The
// same inputs always produce the same score and insight list.
func ScorePurchase(in ScoreInputs) PurchaseScore {
	score := 5.0
	insights := make([]string, 0, 8)

	switch {
	case in.PaybackYears == nil:
		score -= 2
		insights = append(insights, "Payback is beyond the 25-year analysis window at current settings.")
	case *in.PaybackYears <= 7:
		score += 2
		insights = append(insights, fmt.Sprintf("Payback in %s years is outstanding for residential solar.", formatYears(*in.PaybackYears)))
	case *in.PaybackYears <= 10:
		score++
		insights = append(insights, fmt.Sprintf("Payback in %s years is comfortably within a typical homeowner horizon.", formatYears(*in.PaybackYears)))
	case *in.PaybackYears <= 14:
		insights = append(insights, fmt.Sprintf("Payback in %s years is workable but not stellar.", formatYears(*in.PaybackYears)))
	case *in.PaybackYears <= 18:
		score--
		insights = append(insights, fmt.Sprintf("Payback in %s years is on the long side—confirm you will stay in the home.", formatYears(*in.PaybackYears)))
	default:
		score -= 2
		insights = append(insights, fmt.Sprintf("Payback in %s years is quite long; consider trimming system size or costs.", formatYears(*in.PaybackYears)))
	}

	roi := math.Round(in.ROIPercent)
	switch {
	case roi >= 220:
		score += 2
		insights = append(insights, fmt.Sprintf("Lifetime ROI of %.0f%% signals exceptional value.", roi))
	case roi >= 160:
		score++
		insights = append(insights, fmt.Sprintf("Lifetime ROI of %.0f%% is very healthy.", roi))
	case roi >= 120:
		insights = append(insights, fmt.Sprintf("Lifetime ROI of %.0f%% is solid, though not elite.", roi))
	case roi >= 80:
		score--
		insights = append(insights, fmt.Sprintf("Lifetime ROI of %.0f%% is modest—hunt for rebates or lower pricing.", roi))
	default:
		score -= 2
		insights = append(insights, fmt.Sprintf("Lifetime ROI of %.0f%% is weak without stronger incentives.", roi))
	}

	profit := math.Round(in.NetProfit)
	if profit >= 60000 {
		score++
		insights = append(insights, fmt.Sprintf("Estimated $%s lifetime profit is excellent.", groupThousands(profit)))
	} else if profit <= 15000 {
		score--
		insights = append(insights, fmt.Sprintf("Lifetime profit of $%s is relatively small.", groupThousands(profit)))
	}

	extra := in.ExtraCostDuringLoan
	switch {
	case extra <= -25:
		score++
		insights = append(insights, fmt.Sprintf("Even with loan payments you save %s/month versus staying with the utility.", signedCurrency(extra)))
	case extra <= 40:
		insights = append(insights, fmt.Sprintf("Loan years are nearly bill-neutral at %s/month versus no solar.", signedCurrency(extra)))
	case extra <= 120:
		score--
		insights = append(insights, fmt.Sprintf("Expect about %s/month more during the loan—plan cash flow accordingly.", signedCurrency(extra)))
	default:
		score -= 2
		insights = append(insights, fmt.Sprintf("High carry cost of %s/month during the loan hurts near-term cash flow.", signedCurrency(extra)))
	}

	if in.PostLoanSavings >= 250 {
		score++
		insights = append(insights, fmt.Sprintf("After payoff you pocket %s/month in ongoing savings.", signedCurrency(in.PostLoanSavings)))
	} else if in.PostLoanSavings <= 75 {
		score--
		insights = append(insights, fmt.Sprintf("Post-loan savings of %s/month are fairly light.", signedCurrency(in.PostLoanSavings)))
	}

	final := int(math.Round(score))
	if final < 1 {
		final = 1
	}
	if final > 9 {
		final = 9
	}

	if len(insights) == 0 {
		insights = append(insights, "Adjust pricing, incentives, or utility inflation assumptions to stress-test the outcome.")
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	entry := scoreLabels[final]
	return PurchaseScore{
		Score:    final,
		Label:    entry.label,
		Summary:  entry.summary,
		Insights: insights,
	}
}

// formatYears renders a payback figure without trailing zeros (13.2, 9).
func formatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64)
}

// signedCurrency matches the display format of the monthly figures:
// "$120", "-$45", and "$0" for zero or non-finite values.
func signedCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return "$0"
	}
	formatted := "$" + groupThousands(math.Abs(math.Round(value)))
	if value < 0 {
		return "-" + formatted
	}
	return formatted
}

// groupThousands renders a rounded dollar amount with comma separators.
func groupThousands(value float64) string {
	negative := value < 0
	digits := strconv.FormatFloat(math.Abs(value), 'f', 0, 64)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
