// Package main provides the level-up simulator binary. It replays a hero's
// progression deterministically from a base seed, firing map-event scripts
// along the way, and can persist the result to PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marchaven/crownspire/internal/config"
	"github.com/marchaven/crownspire/internal/game/hero"
	"github.com/marchaven/crownspire/internal/game/ruleset"
	"github.com/marchaven/crownspire/internal/game/skill"
	"github.com/marchaven/crownspire/internal/observability"
	"github.com/marchaven/crownspire/internal/scripting"
	"github.com/marchaven/crownspire/internal/storage/postgres"
	lua "github.com/yuin/gopher-lua"
)

// witchsHutInterval is the level cadence at which the simulated hero visits
// a witch's hut.
const witchsHutInterval = 7

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	raceKey := flag.String("race", "", "faction key to simulate; empty = value from config")
	heroName := flag.String("name", "Roland", "name of the simulated hero")
	levels := flag.Int("levels", 0, "number of level-ups to replay; 0 = value from config")
	seed := flag.Uint("seed", 0, "base seed; 0 = value from config")
	save := flag.Bool("save", false, "persist the simulated hero to PostgreSQL")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *raceKey != "" {
		cfg.Simulator.Race = *raceKey
	}
	if *levels > 0 {
		cfg.Simulator.Levels = *levels
	}
	if *seed != 0 {
		cfg.Simulator.Seed = uint32(*seed)
	}

	runID := uuid.NewString()
	logger, err := observability.NewRunLogger(cfg.Logging, runID)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	race, err := hero.ParseRace(cfg.Simulator.Race)
	if err != nil {
		logger.Fatal("parsing race", zap.Error(err))
	}

	registry, err := ruleset.NewRegistry(cfg.Data.Dir)
	if err != nil {
		logger.Fatal("loading ruleset", zap.Error(err))
	}

	logger.Info("starting simulation",
		zap.String("hero", *heroName),
		zap.Stringer("race", race),
		zap.Int("levels", cfg.Simulator.Levels),
		zap.Uint32("seed", cfg.Simulator.Seed),
	)

	h := registry.NewHero(*heroName, race)
	scripts := newScriptManager(logger, cfg, registry, h)
	defer scripts.Close()

	simulate(logger, cfg.Simulator, registry, h, scripts)

	logger.Info("simulation finished",
		zap.Int("level", h.Level),
		zap.Int("attack", h.Primary.Attack),
		zap.Int("defense", h.Primary.Defense),
		zap.Int("power", h.Primary.Power),
		zap.Int("knowledge", h.Primary.Knowledge),
		zap.Stringer("skills", h.Skills),
		zap.Duration("elapsed", time.Since(start)),
	)

	if *save {
		persist(logger, cfg, h)
	}
}

// simulate replays the configured number of level-ups. Secondary proposals
// follow the roster planner; the first proposal is always accepted, matching
// how an AI-controlled hero levels. Every witchsHutInterval levels the hero
// visits a witch's hut, which grants through the scripted event path.
func simulate(logger *zap.Logger, simCfg config.SimulatorConfig, registry *ruleset.Registry, h *hero.Hero, scripts *scripting.Manager) {
	for i := 0; i < simCfg.Levels; i++ {
		h.Level++

		primarySeed := deriveSeed(simCfg.Seed, uint32(h.Level), 0)
		weights := registry.PrimaryWeights(h.Race, h.Level)
		gained := h.Primary.LevelUp(weights, primarySeed)

		seed1 := deriveSeed(simCfg.Seed, uint32(h.Level), 1)
		seed2 := deriveSeed(simCfg.Seed, uint32(h.Level), 2)
		first, second := h.Skills.FindSkillsForLevelUp(registry.Weights(h.Race), seed1, seed2)

		logger.Info("level up",
			zap.Int("level", h.Level),
			zap.Stringer("primary", gained),
			zap.String("offered", offerString(first, second)),
		)

		if first.IsValid() {
			h.Skills.AddSkill(first)
		}

		if h.Level%witchsHutInterval == 0 {
			hutSeed := deriveSeed(simCfg.Seed, uint32(h.Level), 3)
			kind := registry.RandomWitchsHutSkill(hutSeed)
			if kind.IsValid() {
				_, err := scripts.CallHook(scripting.GlobalSetID, "on_witchs_hut",
					lua.LString(h.Name), lua.LString(kind.Key()))
				if err != nil {
					logger.Warn("witch's hut event failed", zap.Error(err))
				}
			}
		}
	}
}

// newScriptManager loads the map-event scripts with callbacks bound to the
// simulated hero.
func newScriptManager(logger *zap.Logger, cfg config.Config, registry *ruleset.Registry, h *hero.Hero) *scripting.Manager {
	m := scripting.NewManager(logger)
	m.GetHero = func(name string) *scripting.HeroInfo {
		if name != h.Name {
			return nil
		}
		return &scripting.HeroInfo{
			Name:       h.Name,
			Race:       h.Race.Key(),
			Level:      h.Level,
			SkillCount: h.Skills.Count(),
			TotalLevel: h.Skills.TotalLevel(),
		}
	}
	m.GrantSkill = func(heroName, skillKey string, level int) (bool, error) {
		if heroName != h.Name {
			return false, nil
		}
		kind, err := skill.ParseKind(skillKey)
		if err != nil {
			return false, err
		}
		lv, err := skill.ParseLevel(uint8(level))
		if err != nil {
			return false, err
		}
		current := h.Skills.GetLevel(kind)
		if current >= lv {
			return false, nil
		}
		applied := h.Skills.AddSkill(skill.Secondary{Kind: kind, Level: lv})
		if applied {
			logger.Info("skill granted by event",
				zap.Stringer("skill", kind),
				zap.Stringer("level", lv),
			)
		}
		return applied, nil
	}
	if err := m.LoadGlobal(cfg.Data.ScriptsDir, cfg.Data.ScriptInstructionLimit); err != nil {
		logger.Fatal("loading event scripts", zap.Error(err))
	}
	return m
}

func persist(logger *zap.Logger, cfg config.Config, h *hero.Hero) {
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()

	repo := postgres.NewHeroRepository(pool.DB())
	saved, err := repo.Create(ctx, h)
	if err != nil {
		logger.Fatal("saving hero", zap.Error(err))
	}
	logger.Info("hero saved", zap.Int64("id", saved.ID))
}

func offerString(first, second skill.Secondary) string {
	switch {
	case !first.IsValid():
		return "nothing"
	case !second.IsValid():
		return first.String()
	default:
		return first.String() + " or " + second.String()
	}
}

// deriveSeed mixes the base seed, the level and a draw index into one
// deterministic sub-seed, so every draw in a run is independently seeded but
// fully reproducible.
func deriveSeed(base, level, salt uint32) uint32 {
	x := base ^ (level * 2654435761) ^ (salt * 40503)
	x ^= x >> 16
	x *= 2246822519
	x ^= x >> 13
	return x
}
