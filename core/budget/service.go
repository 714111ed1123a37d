package budget

import (
	"context"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
)

var ErrOwnerRequired = core.NewError(core.KindInvalidInput, "budget", "owner email is required")

type (
	// Repository is the document store holding budget entries.
	Repository interface {
		CreateEntry(ctx context.Context, entry Entry) (Entry, error)
		QueryEntriesByOwner(ctx context.Context, owner string) ([]Entry, error)
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (svc *Service) Create(ctx context.Context, ne NewEntry) (Entry, error) {
	entry := Entry{
		User:        ne.User,
		Amount:      ne.Amount,
		IncomeType:  ne.IncomeType,
		Category:    ne.Category,
		Description: ne.Description,
		Date:        ne.Date,
	}
	entry, err := svc.repo.CreateEntry(ctx, entry)
	if err != nil {
		return Entry{}, errors.Wrap(err, "creating budget entry")
	}
	return entry, nil
}

// Query returns the owner's entries as stored.
func (svc *Service) Query(ctx context.Context, owner string) ([]Entry, error) {
	owner = core.CleanString(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	entries, err := svc.repo.QueryEntriesByOwner(ctx, owner)
	if err != nil {
		return nil, core.WrapError(err, core.KindInfrastructureFailure, "querying budget entries")
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Summarize computes the owner's total expense and total saving.
// Entries whose amount cannot be coerced are left out of the totals and counted in Summary.Skipped.
// An owner without entries gets the zero Summary.
func (svc *Service) Summarize(ctx context.Context, owner string) (Summary, error) {
	entries, err := svc.Query(ctx, owner)
	if err != nil {
		return Summary{}, err
	}

	sum := Aggregate(entries)
	if sum.Skipped > 0 && svc.logger != nil {
		svc.logger.Warn(
			"budget summary: skipped entries with invalid amounts",
			map[string]interface{}{"owner": core.CleanString(owner), "skipped": sum.Skipped, "retrieved": sum.Retrieved},
		)
	}
	return sum, nil
}

// Aggregate sums the amounts of expense and saving entries.
// Only entries of those two income types are coerced; other types count as retrieved.
func Aggregate(entries []Entry) Summary {
	sum := Summary{Retrieved: len(entries)}
	for _, entry := range entries {
		var total *float64
		switch entry.IncomeType {
		case IncomeTypeExpense:
			total = &sum.TotalExpense
		case IncomeTypeSaving:
			total = &sum.TotalSaving
		default:
			continue
		}

		amount, err := CoerceAmount(entry.Amount)
		if err != nil {
			sum.Skipped++
			continue
		}
		*total += amount
	}
	return sum
}
