package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"duoprofits/internal/model"
	"duoprofits/internal/stats"
)

var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// ReportService builds human-readable summaries for the Telegram bot.
type ReportService struct {
	txs     TransactionStore
	couples CoupleStore
}

func NewReportService(txs TransactionStore, couples CoupleStore) *ReportService {
	return &ReportService{txs: txs, couples: couples}
}

// MonthlyReport summarises the current month: totals, balance and the
// expense breakdown by category, largest first.
func (s *ReportService) MonthlyReport(ctx context.Context, now time.Time) (string, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return "", err
	}
	txs, err := s.txs.ListByCouple(ctx, couple.ID)
	if err != nil {
		return "", err
	}

	series := stats.MonthlyTrends(txs, 1, now)
	month := series[0]
	breakdown := stats.CategoryBreakdown(txs, now.Year(), now.Month())

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Reporte de %s %d</b>\n", MonthName(now.Month()), now.Year()))
	b.WriteString(fmt.Sprintf("👥 %s\n\n", html.EscapeString(couple.Name)))
	b.WriteString(fmt.Sprintf("📈 Ingresos: %s\n", FormatCOP(month.Income)))
	b.WriteString(fmt.Sprintf("📉 Gastos: %s\n", FormatCOP(month.Expenses)))
	b.WriteString(fmt.Sprintf("💵 Balance: %s\n", FormatCOP(month.Balance)))

	b.WriteString("\n📂 <b>Gastos por categoría</b>\n")
	if len(breakdown) == 0 {
		b.WriteString("— sin gastos este mes\n")
	} else {
		for _, stat := range breakdown {
			name := model.CategoryName(model.TypeExpense, stat.Category)
			b.WriteString(fmt.Sprintf("• %s: %s (%.1f%%)\n", name, FormatCOP(stat.Amount), stat.Percentage))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// DailySummary summarises yesterday's movements plus the month-to-date
// balance. Sent by the scheduler to every subscribed chat.
func (s *ReportService) DailySummary(ctx context.Context, now time.Time) (string, error) {
	couple, err := s.couples.Household(ctx)
	if err != nil {
		return "", err
	}
	txs, err := s.txs.ListByCouple(ctx, couple.ID)
	if err != nil {
		return "", err
	}

	yesterday := now.AddDate(0, 0, -1)
	var dayIncome, dayExpenses float64
	var dayCount int
	for _, t := range txs {
		d := t.TransactionDate
		if d.Year() != yesterday.Year() || d.Month() != yesterday.Month() || d.Day() != yesterday.Day() {
			continue
		}
		dayCount++
		switch t.Type {
		case model.TypeIncome:
			dayIncome += t.Amount
		case model.TypeExpense:
			dayExpenses += t.Amount
		}
	}

	month := stats.MonthlyTrends(txs, 1, now)[0]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗓 <b>Resumen de ayer</b> (%s)\n", yesterday.Format("02/01/2006")))
	if dayCount == 0 {
		b.WriteString("— sin movimientos\n")
	} else {
		b.WriteString(fmt.Sprintf("📈 Ingresos: %s\n", FormatCOP(dayIncome)))
		b.WriteString(fmt.Sprintf("📉 Gastos: %s\n", FormatCOP(dayExpenses)))
	}
	b.WriteString(fmt.Sprintf("\n💵 Balance de %s: %s", MonthName(now.Month()), FormatCOP(month.Balance)))
	return strings.TrimSpace(b.String()), nil
}

// MonthName is the Spanish month name, lowercase as es-CO renders it.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return spanishMonths[m]
}
