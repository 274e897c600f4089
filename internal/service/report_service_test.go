package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duoprofits/internal/model"
)

func TestMonthlyReport(t *testing.T) {
	now := time.Date(2026, time.August, 20, 10, 0, 0, 0, time.UTC)
	store := &fakeTransactionStore{txs: []model.Transaction{
		{ID: 1, CoupleID: 1, Amount: 3000000, Type: model.TypeIncome, Person: model.PersonOne, Category: "salary", TransactionDate: now.AddDate(0, 0, -5)},
		{ID: 2, CoupleID: 1, Amount: 500000, Type: model.TypeExpense, Person: model.PersonTwo, Category: "food", TransactionDate: now.AddDate(0, 0, -2)},
	}}
	svc := NewReportService(store, testCouple())

	report, err := svc.MonthlyReport(context.Background(), now)
	require.NoError(t, err)

	assert.Contains(t, report, "agosto 2026")
	assert.Contains(t, report, "Los Pérez")
	assert.Contains(t, report, "Ingresos: $ 3.000.000")
	assert.Contains(t, report, "Gastos: $ 500.000")
	assert.Contains(t, report, "Balance: $ 2.500.000")
	assert.Contains(t, report, "(100.0%)")
}

func TestDailySummaryNoMovements(t *testing.T) {
	now := time.Date(2026, time.August, 20, 8, 0, 0, 0, time.UTC)
	svc := NewReportService(&fakeTransactionStore{}, testCouple())

	summary, err := svc.DailySummary(context.Background(), now)
	require.NoError(t, err)

	assert.Contains(t, summary, "19/08/2026")
	assert.Contains(t, summary, "sin movimientos")
	assert.Contains(t, summary, "Balance de agosto: $ 0")
}

func TestDailySummaryCountsOnlyYesterday(t *testing.T) {
	now := time.Date(2026, time.August, 20, 8, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, time.August, 19, 0, 0, 0, 0, time.UTC)
	store := &fakeTransactionStore{txs: []model.Transaction{
		{ID: 1, CoupleID: 1, Amount: 80000, Type: model.TypeExpense, Person: model.PersonOne, Category: "food", TransactionDate: yesterday},
		{ID: 2, CoupleID: 1, Amount: 30000, Type: model.TypeExpense, Person: model.PersonTwo, Category: "transport", TransactionDate: now},
	}}
	svc := NewReportService(store, testCouple())

	summary, err := svc.DailySummary(context.Background(), now)
	require.NoError(t, err)

	assert.Contains(t, summary, "Gastos: $ 80.000")
	assert.Contains(t, summary, "Balance de agosto: -$ 110.000")
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "enero", MonthName(time.January))
	assert.Equal(t, "diciembre", MonthName(time.December))
	assert.Equal(t, "", MonthName(time.Month(13)))
}
