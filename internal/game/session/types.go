package session

import (
	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/uuid"
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// Rules holds the fixed numbers of the game
type Rules struct {
	// MinPlayers needed to start
	MinPlayers int

	// MaxPlayers that may be seated
	MaxPlayers int

	// HandSize dealt to each player at start
	HandSize int

	// CopiesPerCard overrides the catalog copy count when positive
	CopiesPerCard int

	// ActiveMonsters is the number of monster slots on the board
	ActiveMonsters int

	// SlayTarget is the number of slain monsters that wins the game
	SlayTarget int

	// ActionPoints granted at the start of every turn
	ActionPoints int

	// AttackCost is the action point cost of attacking a monster
	AttackCost int

	// DiscardHandCost is the action point cost of discarding a hand
	DiscardHandCost int

	// LeaderBonus is added to hero ability rolls matching the leader class
	LeaderBonus int

	// RollBonus is the turn bonus granted by roll_bonus effects
	RollBonus int

	// ForceDiscardCount is how many cards a force-discard effect takes
	ForceDiscardCount int
}

// DefaultRules returns the base game rules
func DefaultRules() Rules {
	return Rules{
		MinPlayers:        2,
		MaxPlayers:        6,
		HandSize:          5,
		ActiveMonsters:    3,
		SlayTarget:        3,
		ActionPoints:      3,
		AttackCost:        2,
		DiscardHandCost:   3,
		LeaderBonus:       2,
		RollBonus:         3,
		ForceDiscardCount: 2,
	}
}

func (r Rules) validate() error {
	if r.MinPlayers < 1 || r.MaxPlayers < r.MinPlayers || r.ActionPoints < 1 ||
		r.SlayTarget < 1 || r.ActiveMonsters < 1 || r.HandSize < 0 {
		return ErrInvalidRules
	}
	return nil
}

// Config holds the dependencies of a session
type Config struct {
	// ID is the game identifier
	ID string

	// Rules default to DefaultRules when zero
	Rules Rules

	// Catalog is the read-only card reference data
	Catalog *catalog.Catalog

	// DiceRoller rolls dice and shuffles piles
	DiceRoller dice.Roller

	// UUIDGenerator names card instances
	UUIDGenerator uuid.UUID
}

// Player is one seat at the table
type Player struct {
	// ID is the opaque identifier supplied by the transport
	ID string

	// Name is the display name
	Name string

	// Hand is private to the owner
	Hand []*models.Card

	// Party is public
	Party []*models.Card

	// Slain are the monsters this player has slain
	Slain []*models.Monster

	// Leader is dealt once at start and never changes
	Leader *models.Leader

	// TurnBonus is added to every roll this player opens until their turn ends
	TurnBonus int
}

func (p *Player) handCard(instanceID string) (int, *models.Card) {
	return findCard(p.Hand, instanceID)
}

func (p *Player) partyCard(instanceID string) (int, *models.Card) {
	return findCard(p.Party, instanceID)
}

func (p *Player) heroes() []*models.Card {
	var heroes []*models.Card
	for _, c := range p.Party {
		if c.Type == models.CardTypeHero {
			heroes = append(heroes, c)
		}
	}
	return heroes
}

func findCard(cards []*models.Card, instanceID string) (int, *models.Card) {
	for i, c := range cards {
		if c.InstanceID == instanceID {
			return i, c
		}
	}
	return -1, nil
}

func removeCard(cards []*models.Card, index int) []*models.Card {
	return append(cards[:index], cards[index+1:]...)
}

// passSet records who has passed in one bidding round, in arrival order
type passSet []string

func (p passSet) has(playerID string) bool {
	for _, id := range p {
		if id == playerID {
			return true
		}
	}
	return false
}

// add is idempotent
func (p *passSet) add(playerID string) {
	if !p.has(playerID) {
		*p = append(*p, playerID)
	}
}

func (p passSet) list() []string {
	return append([]string(nil), p...)
}

// StandardRoll is an attack or hero ability roll awaiting consensus
type StandardRoll struct {
	PlayerID      string
	Kind          models.RollKind
	SourceID      string
	Base          int
	LeaderBonus   int
	TurnBonus     int
	ModifierTotal int
	Total         int
	Target        int
	FailTarget    int
	History       []string
	Passes        passSet
}

// ChallengeState is the state of an open challenge window
type ChallengeState string

const (
	// ChallengeOpen collects passes from everyone but the source player
	ChallengeOpen ChallengeState = "OPEN"

	// ChallengeDueling hands voting to the duel until it resolves
	ChallengeDueling ChallengeState = "DUELING"
)

// Challenge is the window opened when a hero, item or magic card is played.
// While Dueling, Duel owns all voting and the window's own passes are frozen.
type Challenge struct {
	SourceID string
	Card     *models.Card
	Passes   passSet
	State    ChallengeState
	Duel     *DuelRoll
}

// DuelRoll adjudicates a challenge between challenger and defender
type DuelRoll struct {
	ChallengerID    string
	DefenderID      string
	ChallengerRoll  *int
	DefenderRoll    *int
	ChallengerTotal int
	DefenderTotal   int
	Phase           models.DuelPhase
	History         []string
	Passes          passSet
}

// Event names what an action did
type Event string

const (
	EventPlayerJoined      Event = "player_joined"
	EventPlayerLeft        Event = "player_left"
	EventGameStarted       Event = "game_started"
	EventCardDrawn         Event = "card_drawn"
	EventCardPlayed        Event = "card_played"
	EventChallengeOpened   Event = "challenge_opened"
	EventChallengePassed   Event = "challenge_passed"
	EventChallengeResolved Event = "challenge_resolved"
	EventDuelStarted       Event = "duel_started"
	EventDuelRolled        Event = "duel_rolled"
	EventRollOpened        Event = "roll_opened"
	EventModifierPlayed    Event = "modifier_played"
	EventRollPassed        Event = "roll_passed"
	EventRollResolved      Event = "roll_resolved"
	EventSelectionResolved Event = "selection_resolved"
	EventTurnEnded         Event = "turn_ended"
	EventHandDiscarded     Event = "hand_discarded"
)

// Outcome describes what a successful action did
type Outcome struct {
	// Event is the most significant thing that happened
	Event Event `json:"event"`

	// Message is player-facing text
	Message string `json:"message"`

	// Resolved is set when a roll, duel or challenge window resolved
	Resolved bool `json:"resolved,omitempty"`

	// Punished is set when an attack fell to the monster's fail target. The
	// punishment text is reported but not applied.
	Punished bool `json:"punished,omitempty"`

	// Punishment is the monster's punishment text when Punished
	Punishment string `json:"punishment,omitempty"`

	// Unimplemented is set when a successful ability has no effect entry
	Unimplemented bool `json:"unimplemented,omitempty"`

	// Interaction is set when an effect now waits for a selection
	Interaction *Interaction `json:"interaction,omitempty"`

	// Winner is set only by the action that decided the game
	Winner string `json:"winner,omitempty"`
}

// chain appends a follow-up outcome, keeping the flags of both
func (o *Outcome) chain(next *Outcome) *Outcome {
	if next == nil {
		return o
	}
	if next.Message != "" {
		if o.Message != "" {
			o.Message += " "
		}
		o.Message += next.Message
	}
	if next.Event != "" {
		o.Event = next.Event
	}
	o.Resolved = o.Resolved || next.Resolved
	o.Punished = o.Punished || next.Punished
	if next.Punishment != "" {
		o.Punishment = next.Punishment
	}
	o.Unimplemented = o.Unimplemented || next.Unimplemented
	if next.Interaction != nil {
		o.Interaction = next.Interaction
	}
	if next.Winner != "" {
		o.Winner = next.Winner
	}
	return o
}
