package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdrill/ent"
)

// profileRepo implements ProfileRepo backed by ent.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Name(ctx context.Context) (string, error) {
	p, err := r.client.Profile.Query().Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query profile: %w", err)
	}
	return p.DisplayName, nil
}

func (r *profileRepo) SetName(ctx context.Context, name string) error {
	existing, err := r.client.Profile.Query().Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Profile.Create().SetDisplayName(name).Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("query profile: %w", err)
	}

	_, err = existing.Update().SetDisplayName(name).Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profileRepo) ClearName(ctx context.Context) error {
	_, err := r.client.Profile.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
