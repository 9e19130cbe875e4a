package skill

import "github.com/marchaven/crownspire/internal/game/weighted"

// WeightProvider supplies the per-race level-up weight for each secondary
// skill. Weights are non-negative; zero excludes a kind from being drawn for
// that race.
type WeightProvider interface {
	SkillWeight(kind Kind) uint32
}

// priorityPick draws one kind from all kinds minus the exclusion set,
// weighted by the race table. Returns Unknown when nothing is drawable.
func priorityPick(weights WeightProvider, exclude map[Kind]bool, seed uint32) Kind {
	q := weighted.NewQueue[Kind](KindCount)
	for _, kind := range allKinds {
		if !exclude[kind] {
			q.Push(kind, weights.SkillWeight(kind))
		}
	}
	kind, ok := q.Pick(seed)
	if !ok {
		return Unknown
	}
	return kind
}

// FindSkillsForLevelUp produces up to two skill proposals for a level-up
// event. Each proposal carries the level the hero would hold after accepting
// it, already advanced one step from the current roster level.
//
// Exclusion rules, applied in order:
//  1. kinds already at Expert cannot be improved further;
//  2. with a full roster (Count() >= MaxSlots) every kind currently at
//     LevelNone is also excluded — a full roster can only improve what it
//     already has, never learn something new;
//  3. the first pick excludes itself from the second draw.
//
// All randomness flows through the two seeds, so a replay reproduces the
// proposals exactly. When the first draw yields nothing, both proposals are
// the empty sentinel and the level-up grants no skills.
func (ss *SkillSet) FindSkillsForLevelUp(weights WeightProvider, seed1, seed2 uint32) (Secondary, Secondary) {
	exclude := make(map[Kind]bool, KindCount)

	for i := range ss.slots {
		if ss.slots[i].Level == LevelExpert {
			exclude[ss.slots[i].Kind] = true
		}
	}

	if ss.Count() >= MaxSlots {
		for _, kind := range allKinds {
			if ss.GetLevel(kind) == LevelNone {
				exclude[kind] = true
			}
		}
	}

	var first, second Secondary

	first.Kind = priorityPick(weights, exclude, seed1)
	if first.Kind == Unknown {
		return Secondary{}, Secondary{}
	}

	exclude[first.Kind] = true
	second.Kind = priorityPick(weights, exclude, seed2)

	first.Level = ss.GetLevel(first.Kind)
	first.NextLevel()

	if second.Kind == Unknown {
		return first, Secondary{}
	}
	second.Level = ss.GetLevel(second.Kind)
	second.NextLevel()

	return first, second
}

// RandForWitchsHut draws one kind uniformly from the hut's allowed set.
// Returns Unknown for an empty set.
func RandForWitchsHut(allowed []Kind, seed uint32) Kind {
	q := weighted.NewQueue[Kind](len(allowed))
	for _, kind := range allowed {
		if kind.IsValid() {
			q.Push(kind, 1)
		}
	}
	kind, ok := q.Pick(seed)
	if !ok {
		return Unknown
	}
	return kind
}
