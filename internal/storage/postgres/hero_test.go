package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/marchaven/crownspire/internal/game/hero"
	"github.com/marchaven/crownspire/internal/game/skill"
	"github.com/marchaven/crownspire/internal/storage/postgres"
	"github.com/marchaven/crownspire/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func setupHeroRepo(t *testing.T) *postgres.HeroRepository {
	t.Helper()
	return postgres.NewHeroRepository(testutil.NewPool(t))
}

func makeTestHero(name string) *hero.Hero {
	h := hero.New(name, hero.Knight)
	h.Primary = hero.PrimaryStats{Attack: 1, Defense: 2, Power: 1, Knowledge: 1}
	h.Skills.AddSkill(skill.Secondary{Kind: skill.Leadership, Level: skill.LevelBasic})
	h.Skills.AddSkill(skill.Secondary{Kind: skill.Archery, Level: skill.LevelAdvanced})
	return h
}

func TestPool_TagsSessionsWithApplicationName(t *testing.T) {
	pc := testutil.NewPostgresContainer(t)

	var name string
	err := pc.RawPool.QueryRow(context.Background(), "SHOW application_name").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "crownspire", name)
}

func TestHeroRepository_Create(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeTestHero("Roland"))
	require.NoError(t, err)

	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "Roland", created.Name)
	assert.Equal(t, hero.Knight, created.Race)
	assert.Equal(t, 1, created.Level)
	assert.Equal(t, 2, created.Primary.Defense)
	assert.Equal(t, 2, created.Skills.Count())
	assert.False(t, created.CreatedAt.IsZero())
}

func TestHeroRepository_DuplicateNameError(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, makeTestHero("Roland"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, makeTestHero("Roland"))
	require.Error(t, err)
	assert.ErrorIs(t, err, postgres.ErrHeroNameTaken)
}

func TestHeroRepository_GetByID(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeTestHero("Roland"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Roland", fetched.Name)
	assert.Equal(t, hero.Knight, fetched.Race)
	assert.Equal(t, skill.LevelBasic, fetched.Skills.GetLevel(skill.Leadership))
	assert.Equal(t, skill.LevelAdvanced, fetched.Skills.GetLevel(skill.Archery))
}

func TestHeroRepository_GetByID_NotFound(t *testing.T) {
	repo := setupHeroRepo(t)
	_, err := repo.GetByID(context.Background(), 99999999)
	require.Error(t, err)
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroRepository_GetByName(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeTestHero("Gwenneth"))
	require.NoError(t, err)

	fetched, err := repo.GetByName(ctx, "Gwenneth")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = repo.GetByName(ctx, "nobody")
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroRepository_List(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	heroes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, heroes)

	_, err = repo.Create(ctx, makeTestHero("Alpha"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeTestHero("Beta"))
	require.NoError(t, err)

	heroes, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, heroes, 2)
	assert.Equal(t, "Alpha", heroes[0].Name)
	assert.Equal(t, 2, heroes[0].Skills.Count())
}

func TestHeroRepository_SaveProgress(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeTestHero("Roland"))
	require.NoError(t, err)

	created.Level = 5
	created.Primary.Attack = 4
	created.Skills.AddSkill(skill.Secondary{Kind: skill.Wisdom, Level: skill.LevelBasic})
	created.Skills.AddSkill(skill.Secondary{Kind: skill.Leadership, Level: skill.LevelExpert})
	require.NoError(t, repo.SaveProgress(ctx, created))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, fetched.Level)
	assert.Equal(t, 4, fetched.Primary.Attack)
	assert.Equal(t, 3, fetched.Skills.Count())
	assert.Equal(t, skill.LevelExpert, fetched.Skills.GetLevel(skill.Leadership))
	assert.Equal(t, skill.LevelBasic, fetched.Skills.GetLevel(skill.Wisdom))
}

func TestHeroRepository_SaveProgress_NotFound(t *testing.T) {
	repo := setupHeroRepo(t)
	ghost := makeTestHero("Ghost")
	ghost.ID = 99999999
	err := repo.SaveProgress(context.Background(), ghost)
	require.Error(t, err)
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

func TestHeroRepository_Delete(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeTestHero("Roland"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, postgres.ErrHeroNotFound)
}

// TestHeroRepository_Property_CreateThenGet verifies that for any valid hero
// state, Create followed by GetByID returns an equal hero, roster included.
func TestHeroRepository_Property_CreateThenGet(t *testing.T) {
	repo := setupHeroRepo(t)
	ctx := context.Background()

	races := []hero.Race{
		hero.Knight, hero.Barbarian, hero.Sorceress,
		hero.Warlock, hero.Wizard, hero.Necromancer,
	}
	kinds := skill.AllKinds()

	rapid.Check(t, func(rt *rapid.T) {
		h := hero.New(uniqueName("hero"), races[rapid.IntRange(0, len(races)-1).Draw(rt, "race")])
		h.Level = rapid.IntRange(1, 74).Draw(rt, "level")
		h.Primary = hero.PrimaryStats{
			Attack:    rapid.IntRange(0, 30).Draw(rt, "attack"),
			Defense:   rapid.IntRange(0, 30).Draw(rt, "defense"),
			Power:     rapid.IntRange(0, 30).Draw(rt, "power"),
			Knowledge: rapid.IntRange(0, 30).Draw(rt, "knowledge"),
		}
		for _, i := range rapid.SliceOfNDistinct(
			rapid.IntRange(0, len(kinds)-1), 0, skill.MaxSlots, rapid.ID,
		).Draw(rt, "kinds") {
			h.Skills.AddSkill(skill.Secondary{
				Kind:  kinds[i],
				Level: skill.Level(rapid.IntRange(1, 3).Draw(rt, "slevel")),
			})
		}

		created, err := repo.Create(ctx, h)
		require.NoError(t, err)

		fetched, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, h.Name, fetched.Name)
		assert.Equal(t, h.Race, fetched.Race)
		assert.Equal(t, h.Level, fetched.Level)
		assert.Equal(t, h.Primary, fetched.Primary)
		assert.Equal(t, h.Skills.Count(), fetched.Skills.Count())
		for _, s := range h.Skills.Slots() {
			assert.Equal(t, s.Level, fetched.Skills.GetLevel(s.Kind))
		}
	})
}
