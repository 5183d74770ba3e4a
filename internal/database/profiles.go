package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	"github.com/google/uuid"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (models.TimerProfile, error) {
	var p models.TimerProfile
	var description sql.NullString
	err := row.Scan(&p.ID, &p.Name, &description,
		&p.WarmUp, &p.LowIntensity, &p.HighIntensity, &p.Rest, &p.Cooldown,
		&p.Sets, &p.Rounds)
	if err != nil {
		return models.TimerProfile{}, err
	}
	if description.Valid {
		p.Description = util.Ptr(description.String)
	}
	return p, nil
}

func (d *Database) queryProfiles(ctx context.Context, q *ProfileQuery) ([]models.TimerProfile, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.TimerProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// ListProfiles returns every stored profile ordered by name. Failures wrap
// ErrProfileLoadFailed.
func (d *Database) ListProfiles(ctx context.Context) ([]models.TimerProfile, error) {
	return d.SearchProfiles(ctx, util.SearchQuery{})
}

// SearchProfiles narrows the list by exact sets/rounds and free-text terms.
func (d *Database) SearchProfiles(ctx context.Context, query util.SearchQuery) ([]models.TimerProfile, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.TimerProfile, error) {
		q := NewProfileQuery()
		for _, sets := range query.Sets {
			q.WhereSets(sets)
		}
		for _, rounds := range query.Rounds {
			q.WhereRounds(rounds)
		}
		for _, term := range query.Text {
			q.WhereText(term)
		}
		profiles, err := d.queryProfiles(ctx, q)
		if err != nil {
			return nil, wrapErr(EntityProfile, "list", "", fmt.Errorf("%w: %v", ErrProfileLoadFailed, err))
		}
		return profiles, nil
	})
}

func (d *Database) GetProfile(ctx context.Context, id string) (models.TimerProfile, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.TimerProfile, error) {
		query, args := NewProfileQuery().WhereID(id).Build()
		p, err := scanProfile(d.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return models.TimerProfile{}, wrapErr(EntityProfile, "get", id, ErrProfileNotFound)
		}
		if err != nil {
			return models.TimerProfile{}, wrapErr(EntityProfile, "get", id, err)
		}
		return p, nil
	})
}

// CreateProfile stores a new profile under a fresh id and returns it.
func (d *Database) CreateProfile(ctx context.Context, profile models.TimerProfile) (models.TimerProfile, error) {
	if err := profile.Validate(); err != nil {
		return models.TimerProfile{}, wrapErr(EntityProfile, "create", "", err)
	}
	profile.ID = uuid.NewString()
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, `
			INSERT INTO profiles
			(id, name, description, warm_up, low_intensity, high_intensity, rest, cooldown, sets, rounds)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			profile.ID, profile.Name, nullableString(util.Deref(profile.Description)),
			profile.WarmUp, profile.LowIntensity, profile.HighIntensity, profile.Rest, profile.Cooldown,
			profile.Sets, profile.Rounds,
		)
		return err
	})
	if err != nil {
		return models.TimerProfile{}, wrapErr(EntityProfile, "create", profile.ID, err)
	}
	return profile, nil
}

// UpdateProfile replaces every field of the profile with the given id.
func (d *Database) UpdateProfile(ctx context.Context, profile models.TimerProfile) error {
	if err := profile.Validate(); err != nil {
		return wrapErr(EntityProfile, "update", profile.ID, err)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, `
			UPDATE profiles SET
				name = ?, description = ?,
				warm_up = ?, low_intensity = ?, high_intensity = ?, rest = ?, cooldown = ?,
				sets = ?, rounds = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			profile.Name, nullableString(util.Deref(profile.Description)),
			profile.WarmUp, profile.LowIntensity, profile.HighIntensity, profile.Rest, profile.Cooldown,
			profile.Sets, profile.Rounds, profile.ID,
		)
		if err != nil {
			return wrapErr(EntityProfile, "update", profile.ID, err)
		}
		return requireAffected(res, "update", profile.ID)
	})
}

func (d *Database) DeleteProfile(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id)
		if err != nil {
			return wrapErr(EntityProfile, "delete", id, err)
		}
		return requireAffected(res, "delete", id)
	})
}

func requireAffected(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(EntityProfile, op, id, err)
	}
	if n == 0 {
		return wrapErr(EntityProfile, op, id, ErrProfileNotFound)
	}
	return nil
}
