package models

// RollKind identifies what a standard roll is resolving
type RollKind string

const (
	// RollKindAttack is an attack against an active monster
	RollKindAttack RollKind = "ATTACK"

	// RollKindHeroAbility is a party hero's ability roll
	RollKindHeroAbility RollKind = "HERO_ABILITY"
)

// DuelPhase is the phase of a challenge duel
type DuelPhase string

const (
	// DuelPhaseRolling waits for both duelists to roll
	DuelPhaseRolling DuelPhase = "ROLLING"

	// DuelPhaseModifiers collects modifiers until every player passes
	DuelPhaseModifiers DuelPhase = "MODIFIERS"
)
