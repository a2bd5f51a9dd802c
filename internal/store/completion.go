package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdrill/ent"
	"github.com/abhisek/quizdrill/ent/partcompletion"
)

// completionRepo implements CompletionRepo backed by ent.
type completionRepo struct {
	client *ent.Client
}

func (r *completionRepo) All(ctx context.Context) ([]Completion, error) {
	rows, err := r.client.PartCompletion.Query().
		Order(ent.Asc(partcompletion.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions: %w", err)
	}

	out := make([]Completion, len(rows))
	for i, row := range rows {
		out[i] = Completion{
			Category:    row.Category,
			Level:       row.Level,
			Part:        row.Part,
			CompletedAt: row.CompletedAt,
		}
	}
	return out, nil
}

func (r *completionRepo) Mark(ctx context.Context, category, level string, part int) error {
	_, err := r.client.PartCompletion.Create().
		SetCategory(category).
		SetLevel(level).
		SetPart(part).
		Save(ctx)
	if ent.IsConstraintError(err) {
		// Already completed. First completion wins.
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark completion: %w", err)
	}
	return nil
}

func (r *completionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.PartCompletion.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear completions: %w", err)
	}
	return nil
}
