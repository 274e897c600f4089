package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"duoprofits/internal/model"
)

// In-memory stores backing the service tests.

type fakeCoupleStore struct {
	couple model.Couple
	err    error
}

func (f *fakeCoupleStore) Household(context.Context) (*model.Couple, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := f.couple
	return &c, nil
}

type fakeTransactionStore struct {
	txs    []model.Transaction
	nextID uint
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *model.Transaction) error {
	f.nextID++
	tx.ID = f.nextID
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeTransactionStore) ListByCouple(_ context.Context, coupleID uint) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range f.txs {
		if t.CoupleID == coupleID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) ListRecent(ctx context.Context, coupleID uint, limit int) ([]model.Transaction, error) {
	out, _ := f.ListByCouple(ctx, coupleID)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TransactionDate.After(out[j].TransactionDate)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTransactionStore) FindByID(_ context.Context, coupleID, id uint) (*model.Transaction, error) {
	for i := range f.txs {
		if f.txs[i].CoupleID == coupleID && f.txs[i].ID == id {
			t := f.txs[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTransactionStore) Update(_ context.Context, tx *model.Transaction) error {
	for i := range f.txs {
		if f.txs[i].ID == tx.ID {
			f.txs[i] = *tx
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTransactionStore) Delete(_ context.Context, coupleID, id uint) error {
	for i := range f.txs {
		if f.txs[i].CoupleID == coupleID && f.txs[i].ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTransactionStore) SearchByDescription(ctx context.Context, coupleID uint, query string, limit int) ([]model.Transaction, error) {
	all, _ := f.ListByCouple(ctx, coupleID)
	var out []model.Transaction
	for _, t := range all {
		if strings.Contains(strings.ToLower(t.Description), strings.ToLower(query)) {
			out = append(out, t)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeGoalStore struct {
	goals  []model.SavingsGoal
	nextID uint
}

func (f *fakeGoalStore) Create(_ context.Context, goal *model.SavingsGoal) error {
	f.nextID++
	goal.ID = f.nextID
	f.goals = append(f.goals, *goal)
	return nil
}

func (f *fakeGoalStore) ListByCouple(_ context.Context, coupleID uint) ([]model.SavingsGoal, error) {
	var out []model.SavingsGoal
	for _, g := range f.goals {
		if g.CoupleID == coupleID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) FindByID(_ context.Context, coupleID, id uint) (*model.SavingsGoal, error) {
	for i := range f.goals {
		if f.goals[i].CoupleID == coupleID && f.goals[i].ID == id {
			g := f.goals[i]
			return &g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGoalStore) Save(_ context.Context, goal *model.SavingsGoal) error {
	for i := range f.goals {
		if f.goals[i].ID == goal.ID {
			f.goals[i] = *goal
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeGoalStore) Delete(_ context.Context, coupleID, id uint) error {
	for i := range f.goals {
		if f.goals[i].CoupleID == coupleID && f.goals[i].ID == id {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeBudgetStore struct {
	budgets []model.MonthlyBudget
}

func (f *fakeBudgetStore) ListByMonth(_ context.Context, coupleID uint, monthYear string) ([]model.MonthlyBudget, error) {
	var out []model.MonthlyBudget
	for _, b := range f.budgets {
		if b.CoupleID == coupleID && b.MonthYear == monthYear {
			out = append(out, b)
		}
	}
	return out, nil
}

func testCouple() *fakeCoupleStore {
	return &fakeCoupleStore{couple: model.Couple{ID: 1, Name: "Los Pérez", Person1Name: "Ana", Person2Name: "Luis"}}
}
