package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/freightlens/freightlens/internal/model"
)

// Renderer turns a DatasetSummary into styled terminal output.
type Renderer struct {
	theme Theme

	title    lipgloss.Style
	section  lipgloss.Style
	kpiCard  lipgloss.Style
	kpiLabel lipgloss.Style
	kpiValue lipgloss.Style
	header   lipgloss.Style
	subtle   lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
}

// NewRenderer creates a renderer bound to a theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		theme: theme,
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginTop(1),
		kpiCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Subtle).
			Padding(0, 2).
			MarginRight(1),
		kpiLabel: lipgloss.NewStyle().
			Foreground(theme.Subtle),
		kpiValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		subtle: lipgloss.NewStyle().
			Foreground(theme.Subtle),
		positive: lipgloss.NewStyle().
			Foreground(theme.Success),
		negative: lipgloss.NewStyle().
			Foreground(theme.Danger),
	}
}

// Dashboard renders the full report: analysis banner, KPI cards, monthly
// performance table, and cost structure table.
func (r *Renderer) Dashboard(summary *model.DatasetSummary) string {
	if summary.OrderCount == 0 {
		return r.subtle.Render("No orders in dataset.")
	}

	sections := []string{
		r.banner(summary),
		r.kpiRow(summary),
		r.section.Render("Monthly Performance"),
		r.monthlyTable(summary),
		r.section.Render("Cost Structure"),
		r.costTable(summary),
	}

	return strings.Join(sections, "\n") + "\n"
}

func (r *Renderer) banner(summary *model.DatasetSummary) string {
	parts := []string{
		fmt.Sprintf("Analysis period: %s — %s",
			summary.DateRange.Start.Format("Jan 2006"),
			summary.DateRange.End.Format("Jan 2006")),
		fmt.Sprintf("Orders: %d", summary.OrderCount),
	}
	if summary.AccountName != "" {
		parts = append(parts, "Customer: "+summary.AccountName)
	}
	return r.title.Render("Profitability Report") + "\n" +
		r.subtle.Render(strings.Join(parts, " | "))
}

func (r *Renderer) kpiRow(summary *model.DatasetSummary) string {
	profitStyle := r.positive
	if summary.TotalProfit < 0 {
		profitStyle = r.negative
	}

	cards := []string{
		r.kpiCardContent("TOTAL REVENUE", r.kpiValue.Render(FormatCurrency(summary.TotalRevenue, 1)), ""),
		r.kpiCardContent("TOTAL COSTS", r.kpiValue.Render(FormatCurrency(summary.TotalCost, 1)), ""),
		r.kpiCardContent("TOTAL PROFIT",
			profitStyle.Bold(true).Render(FormatCurrency(summary.TotalProfit, 1)),
			FormatPercent(summary.OverallMarginPct, 1)+" margin"),
		r.kpiCardContent("AVG ORDER VALUE",
			r.kpiValue.Render(FormatCurrency(summary.AvgOrderValue, 1)),
			fmt.Sprintf("%d orders", summary.OrderCount)),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (r *Renderer) kpiCardContent(label, value, delta string) string {
	lines := []string{r.kpiLabel.Render(label), value}
	if delta != "" {
		lines = append(lines, r.subtle.Render(delta))
	}
	return r.kpiCard.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) monthlyTable(summary *model.DatasetSummary) string {
	var b strings.Builder

	b.WriteString(r.header.Render(fmt.Sprintf("%-10s %12s %12s %12s %9s %8s",
		"Month", "Revenue", "Costs", "Profit", "Margin", "Orders")))
	b.WriteString("\n")

	for _, period := range summary.Periods {
		line := fmt.Sprintf("%-10s %12s %12s %12s %9s %8d",
			period.Label,
			FormatCurrency(period.Revenue, 1),
			FormatCurrency(period.TotalCost, 1),
			FormatCurrency(period.Profit, 1),
			FormatPercent(period.MarginPct, 1),
			period.OrderCount)
		if period.Profit < 0 {
			line = r.negative.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (r *Renderer) costTable(summary *model.DatasetSummary) string {
	var b strings.Builder

	b.WriteString(r.header.Render(fmt.Sprintf("%-18s %12s %9s", "Category", "Amount", "Share")))
	b.WriteString("\n")

	for _, entry := range summary.Categories {
		b.WriteString(fmt.Sprintf("%-18s %12s %9s\n",
			entry.Category.Display(),
			FormatCurrency(entry.Amount, 1),
			FormatPercent(entry.PctOfTotalCost, 1)))
	}

	return b.String()
}

// ExecutiveSummary renders the plain-text narrative of the report.
func (r *Renderer) ExecutiveSummary(summary *model.DatasetSummary) string {
	if summary.OrderCount == 0 {
		return "No orders in dataset.\n"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Financial Performance Overview\n\n")
	fmt.Fprintf(&b, "Period analyzed: %s to %s\n\n",
		summary.DateRange.Start.Format("Jan 2006"),
		summary.DateRange.End.Format("Jan 2006"))

	fmt.Fprintf(&b, "Revenue:\n")
	fmt.Fprintf(&b, "  Total revenue:           %s\n", FormatCurrency(summary.TotalRevenue, 1))
	if len(summary.Periods) > 0 {
		fmt.Fprintf(&b, "  Average monthly revenue: %s\n",
			FormatCurrency(summary.TotalRevenue/float64(len(summary.Periods)), 1))
	}
	fmt.Fprintf(&b, "  Orders:                  %d\n\n", summary.OrderCount)

	fmt.Fprintf(&b, "Costs:\n")
	fmt.Fprintf(&b, "  Total operating costs:   %s\n", FormatCurrency(summary.TotalCost, 1))
	fmt.Fprintf(&b, "  Primary cost driver:     %s (%s of total)\n",
		summary.TopCostDriver.Category.Display(),
		FormatPercent(summary.TopCostDriver.PctOfTotalCost, 1))
	fmt.Fprintf(&b, "  Average cost per order:  %s\n\n", FormatCurrency(summary.AvgCostPerOrder, 1))

	fmt.Fprintf(&b, "Profitability:\n")
	fmt.Fprintf(&b, "  Net profit/(loss):       %s\n", FormatCurrency(summary.TotalProfit, 1))
	fmt.Fprintf(&b, "  Profit margin:           %s\n", FormatPercent(summary.OverallMarginPct, 1))

	return b.String()
}
