package spell

// Record is one immutable catalog row. The Discounts and SchoolLevelMod
// schedules are indexed by the caster's mastery level in the spell's school
// (0 = none .. 3 = expert).
type Record struct {
	Name           string
	School         School
	Cost           uint8
	Discounts      [4]uint8
	SchoolLevelMod [4]uint8
	MovePoints     uint16
	MinMovePoints  uint16
	SpriteIndex    uint32
	ExtraValue     uint8
	Description    string
}

// catalog is process-wide immutable state: initialized here, never written
// afterwards, safe for unsynchronized concurrent reads. Keyed by ID so the
// compiler keeps the mapping total as ids are added.
var catalog = [Count]Record{
	None: {Name: "Unknown", School: SchoolNone, Cost: 0,
		Description: "Unknown spell."},
	Fireball: {Name: "Fireball", School: SchoolFire, Cost: 9,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 10, 20, 50}, SpriteIndex: 8, ExtraValue: 10,
		Description: "Causes a giant fireball to strike the selected area, damaging all nearby creatures."},
	Fireblast: {Name: "Fireblast", School: SchoolFire, Cost: 15,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 15, 30, 60}, SpriteIndex: 9, ExtraValue: 10,
		Description: "An improved version of fireball, fireblast affects two hexes around the center point of the spell, rather than one."},
	LightningBolt: {Name: "Lightning Bolt", School: SchoolAir, Cost: 10,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 10, 20, 50}, SpriteIndex: 4, ExtraValue: 25,
		Description: "Causes a bolt of electrical energy to strike the selected creature."},
	ChainLightning: {Name: "Chain Lightning", School: SchoolAir, Cost: 24,
		Discounts: [4]uint8{0, 4, 4, 4}, SchoolLevelMod: [4]uint8{0, 25, 50, 100}, SpriteIndex: 5, ExtraValue: 40,
		Description: "Causes a bolt of electrical energy to strike a selected creature, then strike the nearest creature with half damage, then strike the NEXT nearest creature with half again damage, and so on, until it becomes too weak to be harmful. Warning: This spell can hit your own creatures!"},
	Teleport: {Name: "Teleport", School: SchoolWater, Cost: 15,
		Discounts: [4]uint8{0, 3, 9, 12}, SpriteIndex: 10,
		Description: "Teleports the creature you select to any open position on the battlefield."},
	Cure: {Name: "Cure", School: SchoolWater, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 10, 20, 30}, SpriteIndex: 6, ExtraValue: 5,
		Description: "Removes all negative spells cast upon one of your units, and restores up to %{count} HP per level of spell power."},
	MassCure: {Name: "Mass Cure", School: SchoolWater, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 6, 14, 24}, SpriteIndex: 60, ExtraValue: 5,
		Description: "Removes all negative spells cast upon your forces, and restores up to %{count} HP per level of spell power, per creature."},
	Resurrect: {Name: "Resurrect", School: SchoolEarth, Cost: 12,
		Discounts: [4]uint8{0, 4, 4, 4}, SchoolLevelMod: [4]uint8{0, 10, 20, 30}, SpriteIndex: 13, ExtraValue: 50,
		Description: "Resurrects creatures from a damaged or dead unit until end of combat."},
	ResurrectTrue: {Name: "Resurrect True", School: SchoolEarth, Cost: 20,
		Discounts: [4]uint8{0, 4, 4, 4}, SchoolLevelMod: [4]uint8{0, 20, 40, 50}, SpriteIndex: 12, ExtraValue: 50,
		Description: "Resurrects creatures from a damaged or dead unit permanently."},
	Haste: {Name: "Haste", School: SchoolAir, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 1, 1, 2}, SpriteIndex: 14, ExtraValue: 2,
		Description: "Increases the speed of any creature by %{count}."},
	MassHaste: {Name: "Mass Haste", School: SchoolAir, Cost: 10,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 0, 1, 1}, SpriteIndex: 61, ExtraValue: 2,
		Description: "Increases the speed of all of your creatures by %{count}."},
	Slow: {Name: "Slow", School: SchoolEarth, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 1,
		Description: "Slows target to half movement rate."},
	MassSlow: {Name: "Mass Slow", School: SchoolEarth, Cost: 15,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 0, 1, 1}, SpriteIndex: 62,
		Description: "Slows all enemies to half movement rate."},
	Blind: {Name: "Blind", School: SchoolFire, Cost: 10,
		Discounts: [4]uint8{0, 2, 2, 2}, SpriteIndex: 21,
		Description: "Clouds the affected creatures' eyes, preventing them from moving."},
	Bless: {Name: "Bless", School: SchoolWater, Cost: 5,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 7,
		Description: "Causes the selected creatures to inflict maximum damage."},
	MassBless: {Name: "Mass Bless", School: SchoolWater, Cost: 12,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 0, 1, 1}, SpriteIndex: 63,
		Description: "Causes all of your units to inflict maximum damage."},
	Stoneskin: {Name: "Stoneskin", School: SchoolEarth, Cost: 3,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 31, ExtraValue: 3,
		Description: "Magically increases the defense skill of the selected creatures."},
	Steelskin: {Name: "Steelskin", School: SchoolEarth, Cost: 6,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 0, 2, 3}, SpriteIndex: 30, ExtraValue: 5,
		Description: "Increases the defense skill of the targeted creatures. This is an improved version of Stoneskin."},
	Curse: {Name: "Curse", School: SchoolFire, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 3,
		Description: "Causes the selected creatures to inflict minimum damage."},
	MassCurse: {Name: "Mass Curse", School: SchoolFire, Cost: 12,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 0, 1, 1}, SpriteIndex: 64,
		Description: "Causes all enemy troops to inflict minimum damage."},
	HolyWord: {Name: "Holy Word", School: SchoolAir, Cost: 12,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 3, 3, 3}, SpriteIndex: 22, ExtraValue: 10,
		Description: "Damages all undead in the battle."},
	HolyShout: {Name: "Holy Shout", School: SchoolAir, Cost: 15,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 3, 3, 3}, SpriteIndex: 23, ExtraValue: 20,
		Description: "Damages all undead in the battle. This is an improved version of Holy Word."},
	AntiMagic: {Name: "Anti-Magic", School: SchoolEarth, Cost: 15,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 17,
		Description: "Prevents harmful magic against the selected creatures."},
	DispelMagic: {Name: "Dispel Magic", School: SchoolWater, Cost: 5,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 18,
		Description: "Removes all magic spells from a single target."},
	MassDispel: {Name: "Mass Dispel", School: SchoolWater, Cost: 12,
		Discounts: [4]uint8{0, 3, 3, 3}, SpriteIndex: 18,
		Description: "Removes all magic spells from all creatures."},
	MagicArrow: {Name: "Magic Arrow", School: SchoolAir, Cost: 3,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 10, 20, 30}, SpriteIndex: 38, ExtraValue: 10,
		Description: "Causes a magic arrow to strike the selected target."},
	Berserker: {Name: "Berserker", School: SchoolFire, Cost: 12,
		Discounts: [4]uint8{0, 4, 4, 4}, SpriteIndex: 19,
		Description: "Causes a creature to attack its nearest neighbor."},
	Armageddon: {Name: "Armageddon", School: SchoolFire, Cost: 24,
		Discounts: [4]uint8{0, 4, 4, 4}, SchoolLevelMod: [4]uint8{0, 10, 40, 80}, SpriteIndex: 16, ExtraValue: 50,
		Description: "Holy terror strikes the battlefield, causing severe damage to all creatures."},
	ElementalStorm: {Name: "Elemental Storm", School: SchoolFire, Cost: 20,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 20, 50, 60}, SpriteIndex: 11, ExtraValue: 25,
		Description: "Magical elements pour down on the battlefield, damaging all creatures."},
	MeteorShower: {Name: "Meteor Shower", School: SchoolEarth, Cost: 16,
		Discounts: [4]uint8{0, 4, 4, 4}, SchoolLevelMod: [4]uint8{0, 20, 40, 70}, SpriteIndex: 24, ExtraValue: 25,
		Description: "A rain of rocks strikes an area of the battlefield, damaging all nearby creatures."},
	Paralyze: {Name: "Paralyze", School: SchoolFire, Cost: 9,
		Discounts: [4]uint8{0, 3, 3, 3}, SpriteIndex: 20,
		Description: "The targeted creatures are paralyzed, unable to move or retaliate."},
	Hypnotize: {Name: "Hypnotize", School: SchoolAir, Cost: 18,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 10, 20, 50}, SpriteIndex: 37, ExtraValue: 25,
		Description: "Brings a single enemy unit under your control if its hits are less than %{count} times the caster's spell power."},
	ColdRay: {Name: "Cold Ray", School: SchoolWater, Cost: 8,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 10, 20, 50}, SpriteIndex: 36, ExtraValue: 20,
		Description: "Drains body heat from a single enemy unit."},
	ColdRing: {Name: "Cold Ring", School: SchoolWater, Cost: 9,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 15, 30, 60}, SpriteIndex: 35, ExtraValue: 10,
		Description: "Drains body heat from all units surrounding the center point, but not including the center point."},
	DisruptingRay: {Name: "Disrupting Ray", School: SchoolEarth, Cost: 7,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 34, ExtraValue: 3,
		Description: "Reduces the defense rating of an enemy unit by three."},
	DeathRipple: {Name: "Death Ripple", School: SchoolEarth, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 5, 10}, SpriteIndex: 29, ExtraValue: 5,
		Description: "Damages all living (non-undead) units in the battle."},
	DeathWave: {Name: "Death Wave", School: SchoolEarth, Cost: 10,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 10, 20, 30}, SpriteIndex: 28, ExtraValue: 10,
		Description: "Damages all living (non-undead) units in the battle. This spell is an improved version of Death Ripple."},
	DragonSlayer: {Name: "Dragon Slayer", School: SchoolFire, Cost: 6,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 10, 20, 30}, SpriteIndex: 32, ExtraValue: 5,
		Description: "Greatly increases a unit's attack skill vs. Dragons."},
	BloodLust: {Name: "Blood Lust", School: SchoolFire, Cost: 5,
		Discounts: [4]uint8{0, 1, 1, 1}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 27, ExtraValue: 3,
		Description: "Increases a unit's attack skill."},
	AnimateDead: {Name: "Animate Dead", School: SchoolEarth, Cost: 15,
		Discounts: [4]uint8{0, 3, 3, 3}, SchoolLevelMod: [4]uint8{0, 10, 40, 70}, SpriteIndex: 25, ExtraValue: 50,
		Description: "Resurrects creatures from a damaged or dead undead unit permanently."},
	MirrorImage: {Name: "Mirror Image", School: SchoolWater, Cost: 25,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 4, 5, 6}, SpriteIndex: 26,
		Description: "Creates an illusionary unit that duplicates one of your existing units. This illusionary unit does the same damages as the original, but will vanish if it takes any damage."},
	Shield: {Name: "Shield", School: SchoolEarth, Cost: 5,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 1, 2, 2}, SpriteIndex: 15, ExtraValue: 2,
		Description: "Halves damage received from ranged attacks for a single unit. Does not affect damage received from Turrets or Ballistae."},
	MassShield: {Name: "Mass Shield", School: SchoolEarth, Cost: 7,
		Discounts: [4]uint8{0, 2, 2, 2}, SchoolLevelMod: [4]uint8{0, 0, 1, 1}, SpriteIndex: 65,
		Description: "Halves damage received from ranged attacks for all of your units. Does not affect damage received from Turrets or Ballistae."},
	SummonEarthElement: {Name: "Summon Earth Elemental", School: SchoolEarth, Cost: 30,
		Discounts: [4]uint8{0, 10, 10, 10}, SchoolLevelMod: [4]uint8{0, 20, 50, 80}, SpriteIndex: 56, ExtraValue: 3,
		Description: "Summons Earth Elementals to fight for your army."},
	SummonAirElement: {Name: "Summon Air Elemental", School: SchoolAir, Cost: 30,
		Discounts: [4]uint8{0, 10, 10, 10}, SchoolLevelMod: [4]uint8{0, 20, 50, 80}, SpriteIndex: 57, ExtraValue: 3,
		Description: "Summons Air Elementals to fight for your army."},
	SummonFireElement: {Name: "Summon Fire Elemental", School: SchoolFire, Cost: 30,
		Discounts: [4]uint8{0, 10, 10, 10}, SchoolLevelMod: [4]uint8{0, 20, 50, 80}, SpriteIndex: 58, ExtraValue: 3,
		Description: "Summons Fire Elementals to fight for your army."},
	SummonWaterElement: {Name: "Summon Water Elemental", School: SchoolWater, Cost: 30,
		Discounts: [4]uint8{0, 10, 10, 10}, SchoolLevelMod: [4]uint8{0, 20, 50, 80}, SpriteIndex: 59, ExtraValue: 3,
		Description: "Summons Water Elementals to fight for your army."},
	Earthquake: {Name: "Earthquake", School: SchoolEarth, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 0, 1, 2}, SpriteIndex: 33,
		Description: "Damages castle walls."},
	ViewMines: {Name: "View Mines", School: SchoolEarth, Cost: 1,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 39,
		Description: "Causes all mines across the land to become visible."},
	ViewResources: {Name: "View Resources", School: SchoolEarth, Cost: 1,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 40,
		Description: "Causes all resources across the land to become visible."},
	ViewArtifacts: {Name: "View Artifacts", School: SchoolAir, Cost: 2,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 41,
		Description: "Causes all artifacts across the land to become visible."},
	ViewTowns: {Name: "View Towns", School: SchoolAir, Cost: 2,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 42,
		Description: "Causes all towns and castles across the land to become visible."},
	ViewHeroes: {Name: "View Heroes", School: SchoolAir, Cost: 2,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 43,
		Description: "Causes all Heroes across the land to become visible."},
	ViewAll: {Name: "View All", School: SchoolAir, Cost: 3,
		Discounts: [4]uint8{0, 1, 1, 1}, SpriteIndex: 44,
		Description: "Causes the entire land to become visible."},
	IdentifyHero: {Name: "Identify Hero", School: SchoolWater, Cost: 3,
		Discounts: [4]uint8{0, 2, 2, 2}, SpriteIndex: 45,
		Description: "Allows the caster to view detailed information on enemy Heroes."},
	SummonBoat: {Name: "Summon Boat", School: SchoolWater, Cost: 5,
		Discounts: [4]uint8{0, 3, 3, 3}, SpriteIndex: 46,
		Description: "Summons the nearest unoccupied, friendly boat to an adjacent shore location. A friendly boat is one which you just built or were the most recent player to occupy."},
	DimensionDoor: {Name: "Dimension Door", School: SchoolAir, Cost: 10,
		MovePoints: 225, MinMovePoints: 69, SpriteIndex: 47,
		Description: "Allows the caster to magically transport to a nearby location."},
	TownGate: {Name: "Town Gate", School: SchoolEarth, Cost: 10,
		MovePoints: 225, MinMovePoints: 69, SpriteIndex: 48,
		Description: "Returns the caster to any town or castle currently owned."},
	TownPortal: {Name: "Town Portal", School: SchoolEarth, Cost: 20,
		MovePoints: 225, MinMovePoints: 69, SpriteIndex: 49,
		Description: "Returns the hero to the town or castle of choice, provided it is controlled by you."},
	Visions: {Name: "Visions", School: SchoolAir, Cost: 6,
		SpriteIndex: 50, ExtraValue: 3,
		Description: "Visions predicts the likely outcome of an encounter with a neutral army camp."},
	Haunt: {Name: "Haunt", School: SchoolNone, Cost: 8,
		SpriteIndex: 51, ExtraValue: 4,
		Description: "Haunts a mine you control with Ghosts. This mine stops producing resources. (If I can't keep it, nobody will!)"},
	SetEarthGuardian: {Name: "Set Earth Guardian", School: SchoolEarth, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 40, 60, 90}, SpriteIndex: 52, ExtraValue: 4,
		Description: "Sets Earth Elementals to guard a mine against enemy armies."},
	SetAirGuardian: {Name: "Set Air Guardian", School: SchoolAir, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 40, 60, 90}, SpriteIndex: 53, ExtraValue: 4,
		Description: "Sets Air Elementals to guard a mine against enemy armies."},
	SetFireGuardian: {Name: "Set Fire Guardian", School: SchoolFire, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 40, 60, 90}, SpriteIndex: 54, ExtraValue: 4,
		Description: "Sets Fire Elementals to guard a mine against enemy armies."},
	SetWaterGuardian: {Name: "Set Water Guardian", School: SchoolWater, Cost: 15,
		Discounts: [4]uint8{0, 5, 5, 5}, SchoolLevelMod: [4]uint8{0, 40, 60, 90}, SpriteIndex: 55, ExtraValue: 4,
		Description: "Sets Water Elementals to guard a mine against enemy armies."},
	Random:  {Name: "Random", School: SchoolNone, Cost: 1, Description: "Random"},
	Random1: {Name: "Random 1", School: SchoolNone, Cost: 1, Description: "Random 1"},
	Random2: {Name: "Random 2", School: SchoolNone, Cost: 1, Description: "Random 2"},
	Random3: {Name: "Random 3", School: SchoolNone, Cost: 1, Description: "Random 3"},
	Random4: {Name: "Random 4", School: SchoolNone, Cost: 1, Description: "Random 4"},
	Random5: {Name: "Random 5", School: SchoolNone, Cost: 1, Description: "Random 5"},
	Petrify: {Name: "Petrification", School: SchoolNone, Cost: 1, SpriteIndex: 66,
		Description: "Turns the affected creature into stone. A petrified creature receives half damage from a direct attack."},
}
