package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marchaven/crownspire/internal/game/hero"
	"github.com/marchaven/crownspire/internal/game/skill"
)

// ErrHeroNotFound is returned when a hero lookup yields no results.
var ErrHeroNotFound = errors.New("hero not found")

// ErrHeroNameTaken is returned when creating a hero with a name that is already in use.
var ErrHeroNameTaken = errors.New("hero name already taken")

// HeroRepository provides hero persistence operations.
type HeroRepository struct {
	db *pgxpool.Pool
}

// NewHeroRepository creates a HeroRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

// Create inserts a new hero with its skill roster and returns it with ID and
// timestamps set.
//
// Precondition: h.Name must be non-empty; h.Race must be valid.
// Postcondition: Returns the created hero with ID set, or ErrHeroNameTaken on duplicate.
func (r *HeroRepository) Create(ctx context.Context, h *hero.Hero) (*hero.Hero, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := hero.Hero{
		Name:    h.Name,
		Race:    h.Race,
		Level:   h.Level,
		Primary: h.Primary,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO heroes
			(name, race, level, attack, defense, power, knowledge)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		h.Name, h.Race.Key(), h.Level,
		h.Primary.Attack, h.Primary.Defense, h.Primary.Power, h.Primary.Knowledge,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrHeroNameTaken
		}
		return nil, fmt.Errorf("inserting hero: %w", err)
	}

	var slots []skill.Secondary
	if h.Skills != nil {
		slots = h.Skills.Slots()
	}
	if err := replaceSkills(ctx, tx, out.ID, slots); err != nil {
		return nil, err
	}
	out.Skills = skill.NewSkillSetFromSlots(slots)

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing hero insert: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a hero and its skill roster by primary key.
//
// Precondition: id must be > 0.
// Postcondition: Returns the Hero or ErrHeroNotFound.
func (r *HeroRepository) GetByID(ctx context.Context, id int64) (*hero.Hero, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

// GetByName retrieves a hero and its skill roster by unique name.
//
// Precondition: name must be non-empty.
// Postcondition: Returns the Hero or ErrHeroNotFound.
func (r *HeroRepository) GetByName(ctx context.Context, name string) (*hero.Hero, error) {
	return r.getBy(ctx, `WHERE name = $1`, name)
}

func (r *HeroRepository) getBy(ctx context.Context, where string, arg any) (*hero.Hero, error) {
	var (
		h       hero.Hero
		raceKey string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, race, level, attack, defense, power, knowledge,
		       created_at, updated_at
		FROM heroes `+where,
		arg,
	).Scan(
		&h.ID, &h.Name, &raceKey, &h.Level,
		&h.Primary.Attack, &h.Primary.Defense, &h.Primary.Power, &h.Primary.Knowledge,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHeroNotFound
		}
		return nil, fmt.Errorf("querying hero: %w", err)
	}
	h.Race, err = hero.ParseRace(raceKey)
	if err != nil {
		return nil, fmt.Errorf("hero %d: %w", h.ID, err)
	}
	if h.Skills, err = r.loadSkills(ctx, h.ID); err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns all heroes ordered by creation time, skill rosters included.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *HeroRepository) List(ctx context.Context) ([]*hero.Hero, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, race, level, attack, defense, power, knowledge,
		       created_at, updated_at
		FROM heroes ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing heroes: %w", err)
	}
	defer rows.Close()

	heroes := make([]*hero.Hero, 0)
	for rows.Next() {
		var (
			h       hero.Hero
			raceKey string
		)
		if err := rows.Scan(
			&h.ID, &h.Name, &raceKey, &h.Level,
			&h.Primary.Attack, &h.Primary.Defense, &h.Primary.Power, &h.Primary.Knowledge,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning hero row: %w", err)
		}
		if h.Race, err = hero.ParseRace(raceKey); err != nil {
			return nil, fmt.Errorf("hero %d: %w", h.ID, err)
		}
		heroes = append(heroes, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, h := range heroes {
		if h.Skills, err = r.loadSkills(ctx, h.ID); err != nil {
			return nil, err
		}
	}
	return heroes, nil
}

// SaveProgress persists a hero's level, primary stats, and skill roster after
// a progression event.
//
// Precondition: h.ID must be > 0.
// Postcondition: Returns nil on success, ErrHeroNotFound if no row updated.
func (r *HeroRepository) SaveProgress(ctx context.Context, h *hero.Hero) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE heroes
		SET level = $2, attack = $3, defense = $4, power = $5, knowledge = $6,
		    updated_at = NOW()
		WHERE id = $1`,
		h.ID, h.Level,
		h.Primary.Attack, h.Primary.Defense, h.Primary.Power, h.Primary.Knowledge,
	)
	if err != nil {
		return fmt.Errorf("saving hero progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeroNotFound
	}
	if err := replaceSkills(ctx, tx, h.ID, h.Skills.Slots()); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Delete removes a hero and, by cascade, its skill rows.
//
// Precondition: id must be > 0.
// Postcondition: Returns nil on success, ErrHeroNotFound if no row deleted.
func (r *HeroRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting hero: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHeroNotFound
	}
	return nil
}

// loadSkills reads the hero's skill rows in slot order. Rosters persisted by
// older builds may exceed the slot ceiling; restoring through
// NewSkillSetFromSlots truncates them.
func (r *HeroRepository) loadSkills(ctx context.Context, heroID int64) (*skill.SkillSet, error) {
	rows, err := r.db.Query(ctx, `
		SELECT kind, level FROM hero_skills
		WHERE hero_id = $1 ORDER BY slot ASC`,
		heroID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying hero skills: %w", err)
	}
	defer rows.Close()

	slots := make([]skill.Secondary, 0, skill.MaxSlots)
	for rows.Next() {
		var (
			kindKey  string
			rawLevel uint8
		)
		if err := rows.Scan(&kindKey, &rawLevel); err != nil {
			return nil, fmt.Errorf("scanning hero skill row: %w", err)
		}
		var s skill.Secondary
		if s.Kind, err = skill.ParseKind(kindKey); err != nil {
			return nil, fmt.Errorf("hero %d: %w", heroID, err)
		}
		if s.Level, err = skill.ParseLevel(rawLevel); err != nil {
			return nil, fmt.Errorf("hero %d: %w", heroID, err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return skill.NewSkillSetFromSlots(slots), nil
}

// replaceSkills rewrites the hero's skill rows to match the given slots.
func replaceSkills(ctx context.Context, tx pgx.Tx, heroID int64, slots []skill.Secondary) error {
	if _, err := tx.Exec(ctx, `DELETE FROM hero_skills WHERE hero_id = $1`, heroID); err != nil {
		return fmt.Errorf("clearing hero skills: %w", err)
	}
	for i, s := range slots {
		if !s.IsValid() {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO hero_skills (hero_id, slot, kind, level)
			VALUES ($1,$2,$3,$4)`,
			heroID, i, s.Kind.Key(), uint8(s.Level),
		); err != nil {
			return fmt.Errorf("inserting hero skill: %w", err)
		}
	}
	return nil
}

// isDuplicateKeyError reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isDuplicateKeyError(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
