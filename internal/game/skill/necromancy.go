package skill

// NecromancyBonus returns the flat bonus to the Necromancy skill granted by
// kingdom shrines and the bonus artifact, capped at 7.
func NecromancyBonus(shrineCount uint32, hasBonusArtifact bool) uint32 {
	bonus := shrineCount
	if hasBonusArtifact {
		bonus++
	}
	if bonus > 7 {
		return 7
	}
	return bonus
}

// NecromancyPercent returns the share of creatures killed in combat that
// rise again as Skeletons: the hero's current Necromancy effect value plus
// 10 points per bonus, capped at 100.
func NecromancyPercent(skillValue, bonus uint32) uint32 {
	percent := skillValue + 10*bonus
	if percent > 100 {
		return 100
	}
	return percent
}
