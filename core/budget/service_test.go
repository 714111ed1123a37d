package budget_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/budget"
	inmemdb "github.com/studyease/backend/storage/database/inmem"
)

type logEntry struct {
	level string
	msg   string
}

// recLogger records what the service logs.
type recLogger struct {
	entries []logEntry
}

func (l *recLogger) log(level, msg string) { l.entries = append(l.entries, logEntry{level: level, msg: msg}) }

func (l *recLogger) Debug(msg string, _ ...interface{}) { l.log("debug", msg) }
func (l *recLogger) Info(msg string, _ ...interface{})  { l.log("info", msg) }
func (l *recLogger) Warn(msg string, _ ...interface{})  { l.log("warn", msg) }
func (l *recLogger) Error(msg string, _ ...interface{}) { l.log("error", msg) }
func (l *recLogger) Fatal(msg string, _ ...interface{}) { l.log("fatal", msg) }

func setup(t *testing.T) (*budget.Service, *recLogger) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	logger := &recLogger{}
	return budget.NewService(inmemdb.NewBudgetRepository(db), logger), logger
}

func createEntry(t *testing.T, svc *budget.Service, user string, amount interface{}, incomeType string) budget.Entry {
	entry, err := svc.Create(context.Background(), budget.NewEntry{User: user, Amount: amount, IncomeType: incomeType})
	if err != nil {
		t.Fatalf("createEntry() failed: %v", err)
	}
	return entry
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []budget.Entry
		want    budget.Summary
	}{
		{name: "no entries", want: budget.Summary{}},
		{
			name: "mixed representations",
			entries: []budget.Entry{
				{Amount: "12.50", IncomeType: budget.IncomeTypeExpense},
				{Amount: 7, IncomeType: budget.IncomeTypeExpense},
				{Amount: 100.0, IncomeType: budget.IncomeTypeSaving},
			},
			want: budget.Summary{TotalExpense: 19.5, TotalSaving: 100, Retrieved: 3},
		},
		{
			name: "invalid amounts are skipped",
			entries: []budget.Entry{
				{Amount: "abc", IncomeType: budget.IncomeTypeExpense},
				{Amount: 5, IncomeType: budget.IncomeTypeExpense},
				{Amount: nil, IncomeType: budget.IncomeTypeSaving},
			},
			want: budget.Summary{TotalExpense: 5, Retrieved: 3, Skipped: 2},
		},
		{
			name: "other income types are ignored",
			entries: []budget.Entry{
				{Amount: 50, IncomeType: "income"},
				{Amount: "junk", IncomeType: "gift"},
				{Amount: 1, IncomeType: budget.IncomeTypeSaving},
			},
			want: budget.Summary{TotalSaving: 1, Retrieved: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budget.Aggregate(tt.entries))
		})
	}
}

func TestService_Summarize(t *testing.T) {
	ctx := context.Background()

	t.Run("owner without entries", func(t *testing.T) {
		svc, logger := setup(t)
		sum, err := svc.Summarize(ctx, "nobody@test.io")
		require.NoError(t, err)
		assert.Equal(t, budget.Summary{}, sum)
		assert.Empty(t, logger.entries)
	})

	t.Run("owner entries only", func(t *testing.T) {
		svc, logger := setup(t)
		createEntry(t, svc, "a@test.io", "12.50", budget.IncomeTypeExpense)
		createEntry(t, svc, "a@test.io", 7, budget.IncomeTypeExpense)
		createEntry(t, svc, "a@test.io", 30, budget.IncomeTypeSaving)
		createEntry(t, svc, "b@test.io", 1000, budget.IncomeTypeExpense)

		sum, err := svc.Summarize(ctx, " a@test.io")
		require.NoError(t, err)
		assert.Equal(t, budget.Summary{TotalExpense: 19.5, TotalSaving: 30, Retrieved: 3}, sum)
		assert.Empty(t, logger.entries)
	})

	t.Run("owner matched as stored", func(t *testing.T) {
		svc, _ := setup(t)
		createEntry(t, svc, "Jane.Doe@Test.io", 10, budget.IncomeTypeSaving)

		sum, err := svc.Summarize(ctx, "Jane.Doe@Test.io")
		require.NoError(t, err)
		assert.Equal(t, budget.Summary{TotalSaving: 10, Retrieved: 1}, sum)

		sum, err = svc.Summarize(ctx, "jane.doe@test.io")
		require.NoError(t, err)
		assert.Equal(t, budget.Summary{}, sum)
	})

	t.Run("skipped entries are logged", func(t *testing.T) {
		svc, logger := setup(t)
		createEntry(t, svc, "a@test.io", "lots", budget.IncomeTypeExpense)
		createEntry(t, svc, "a@test.io", 2, budget.IncomeTypeExpense)

		sum, err := svc.Summarize(ctx, "a@test.io")
		require.NoError(t, err)
		assert.Equal(t, budget.Summary{TotalExpense: 2, Retrieved: 2, Skipped: 1}, sum)
		require.Len(t, logger.entries, 1)
		assert.Equal(t, "warn", logger.entries[0].level)
	})

	t.Run("owner required", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Summarize(ctx, "")
		assert.True(t, core.IsKind(err, core.KindInvalidInput))
	})
}

func TestNewEntry_Validate(t *testing.T) {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())

	tests := []struct {
		name    string
		data    budget.NewEntry
		wantErr bool
	}{
		{name: "number", data: budget.NewEntry{User: "a@test.io", Amount: 10.0, IncomeType: budget.IncomeTypeExpense}},
		{name: "string", data: budget.NewEntry{User: "a@test.io", Amount: "10", IncomeType: budget.IncomeTypeSaving}},
		{name: "no amount", data: budget.NewEntry{User: "a@test.io", IncomeType: budget.IncomeTypeSaving}, wantErr: true},
		{name: "no type", data: budget.NewEntry{User: "a@test.io", Amount: 1.0}, wantErr: true},
		{name: "no user", data: budget.NewEntry{Amount: 1.0, IncomeType: budget.IncomeTypeSaving}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate(validate)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
