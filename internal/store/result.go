package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdrill/ent"
	"github.com/abhisek/quizdrill/ent/quizresult"
)

// resultRepo implements ResultRepo backed by ent and the global sequence counter.
type resultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *resultRepo) Append(ctx context.Context, data ResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResult.Create().
		SetSequence(seqNum).
		SetCategory(data.Category).
		SetLevel(data.Level).
		SetPart(data.Part).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]Result, error) {
	q := r.client.QuizResult.Query().
		Order(ent.Desc(quizresult.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	out := make([]Result, len(rows))
	for i, row := range rows {
		out[i] = Result{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ResultData: ResultData{
				Category:   row.Category,
				Level:      row.Level,
				Part:       row.Part,
				Score:      row.Score,
				Total:      row.Total,
				DurationMs: row.DurationMs,
			},
		}
	}
	return out, nil
}

func (r *resultRepo) Totals(ctx context.Context) (Totals, error) {
	rows, err := r.client.QuizResult.Query().All(ctx)
	if err != nil {
		return Totals{}, fmt.Errorf("query results: %w", err)
	}

	var t Totals
	for _, row := range rows {
		t.Runs++
		t.Questions += row.Total
		t.Correct += row.Score
	}
	return t, nil
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.client.QuizResult.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}
