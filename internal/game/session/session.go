// Package session is the rules engine for a single game. A Session is not
// safe for concurrent use; the game service serializes every call for one
// game id.
package session

import (
	"fmt"

	"github.com/KirkDiggler/heroparty/internal/catalog"
	"github.com/KirkDiggler/heroparty/internal/common/uuid"
	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/game/pile"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// Session is the authoritative state of one game
type Session struct {
	id            string
	rules         Rules
	catalog       *catalog.Catalog
	diceRoller    dice.Roller
	uuidGenerator uuid.UUID

	status         models.GameStatus
	players        []*Player
	drawPile       pile.Pile[*models.Card]
	discardPile    pile.Pile[*models.Card]
	monsterDeck    pile.Pile[*models.Monster]
	leaderPool     pile.Pile[*models.Leader]
	activeMonsters []*models.Monster
	currentTurn    int
	turnCount      int
	actionPoints   int
	winnerID       string

	roll        *StandardRoll
	challenge   *Challenge
	interaction *Interaction
}

// New creates a session in the waiting state
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}

	id := cfg.ID
	if id == "" {
		id = cfg.UUIDGenerator.NewGameID()
	}

	return &Session{
		id:            id,
		rules:         rules,
		catalog:       cfg.Catalog,
		diceRoller:    cfg.DiceRoller,
		uuidGenerator: cfg.UUIDGenerator,
		status:        models.GameStatusWaiting,
	}, nil
}

// ID returns the game id
func (s *Session) ID() string {
	return s.id
}

// Status returns the lifecycle status
func (s *Session) Status() models.GameStatus {
	return s.status
}

// WinnerID returns the winner once the game is over
func (s *Session) WinnerID() string {
	return s.winnerID
}

// TurnCount returns the number of completed turns
func (s *Session) TurnCount() int {
	return s.turnCount
}

// PlayerIDs returns seated player ids in turn order
func (s *Session) PlayerIDs() []string {
	ids := make([]string, 0, len(s.players))
	for _, p := range s.players {
		ids = append(ids, p.ID)
	}
	return ids
}

// Summaries returns the per-player results recorded when a game ends
func (s *Session) Summaries() []*models.PlayerSummary {
	out := make([]*models.PlayerSummary, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, &models.PlayerSummary{
			ID:            p.ID,
			Name:          p.Name,
			SlainMonsters: len(p.Slain),
		})
	}
	return out
}

// AddPlayer seats a player before the game starts
func (s *Session) AddPlayer(playerID, name string) (*Outcome, error) {
	if s.status != models.GameStatusWaiting {
		return nil, ErrAlreadyStarted
	}
	if playerID == "" {
		return nil, ErrPlayerNotFound
	}
	if s.player(playerID) != nil {
		return nil, ErrPlayerAlreadySeated
	}
	if len(s.players) >= s.rules.MaxPlayers {
		return nil, ErrCapacityExceeded
	}
	if name == "" {
		name = playerID
	}

	s.players = append(s.players, &Player{ID: playerID, Name: name})

	return &Outcome{
		Event:   EventPlayerJoined,
		Message: fmt.Sprintf("%s joined the game.", name),
	}, nil
}

// RemovePlayer unseats a player before the game starts
func (s *Session) RemovePlayer(playerID string) (*Outcome, error) {
	if s.status != models.GameStatusWaiting {
		return nil, ErrAlreadyStarted
	}
	for i, p := range s.players {
		if p.ID == playerID {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return &Outcome{
				Event:   EventPlayerLeft,
				Message: fmt.Sprintf("%s left the game.", p.Name),
			}, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// Start builds the piles, deals leaders and hands, and fills the monster
// slots
func (s *Session) Start() (*Outcome, error) {
	if s.status != models.GameStatusWaiting {
		return nil, ErrAlreadyStarted
	}
	if len(s.players) < s.rules.MinPlayers {
		return nil, ErrNotEnoughPlayers
	}
	leaders := s.catalog.Leaders()
	if len(leaders) < len(s.players) {
		return nil, ErrNotEnoughLeaders
	}

	copies := s.rules.CopiesPerCard
	if copies <= 0 {
		copies = s.catalog.Copies()
	}
	entries := s.catalog.Cards()
	s.drawPile = make(pile.Pile[*models.Card], 0, copies*len(entries))
	for c := 0; c < copies; c++ {
		for _, entry := range entries {
			s.drawPile.Add(entry.NewCard(s.uuidGenerator.NewInstanceID(entry.ID, c)))
		}
	}
	s.drawPile.Shuffle(s.diceRoller)

	s.monsterDeck = pile.Pile[*models.Monster](s.catalog.Monsters())
	s.monsterDeck.Shuffle(s.diceRoller)
	s.activeMonsters = s.monsterDeck.DrawN(s.rules.ActiveMonsters)

	s.leaderPool = pile.Pile[*models.Leader](leaders)
	s.leaderPool.Shuffle(s.diceRoller)

	for _, p := range s.players {
		p.Leader, _ = s.leaderPool.Draw()
		p.Hand = s.drawPile.DrawN(s.rules.HandSize)
	}

	s.status = models.GameStatusActive
	s.currentTurn = 0
	s.actionPoints = s.rules.ActionPoints

	return &Outcome{
		Event:   EventGameStarted,
		Message: fmt.Sprintf("Game started! %s goes first.", s.players[0].Name),
	}, nil
}

// DrawCard spends 1 AP to move the top of the draw pile into the hand. When
// the pile is empty the AP is still spent and nothing is drawn.
func (s *Session) DrawCard(playerID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActionPoints(1); err != nil {
		return nil, err
	}

	s.actionPoints--
	card, ok := s.drawPile.Draw()
	if !ok {
		return &Outcome{Event: EventCardDrawn, Message: "The draw pile is empty."}, nil
	}
	p.Hand = append(p.Hand, card)

	return &Outcome{
		Event:   EventCardDrawn,
		Message: fmt.Sprintf("%s drew a card.", p.Name),
	}, nil
}

// PlayCard plays a hero, item or magic card from hand and opens a challenge
// window. The AP is charged when the play is confirmed.
func (s *Session) PlayCard(playerID, cardID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}
	idx, card := p.handCard(cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	if err := s.requireActionPoints(1); err != nil {
		return nil, err
	}
	if card.Type == models.CardTypeModifier || card.Type == models.CardTypeChallenge {
		return nil, ErrWrongCardType
	}

	p.Hand = removeCard(p.Hand, idx)

	if !card.Type.OpensChallenge() {
		out := &Outcome{
			Event:   EventCardPlayed,
			Message: fmt.Sprintf("%s played %s.", p.Name, card.Name),
		}
		return out.chain(s.confirmPlay(p, card)), nil
	}

	s.challenge = &Challenge{
		SourceID: p.ID,
		Card:     card,
		State:    ChallengeOpen,
	}

	out := &Outcome{
		Event:   EventChallengeOpened,
		Message: fmt.Sprintf("%s played %s. Waiting for challenges...", p.Name, card.Name),
	}
	if len(s.players) < 2 {
		out.chain(s.closeChallenge(true))
	}
	return out, nil
}

// AttackMonster spends the attack cost and opens an attack roll against an
// active monster
func (s *Session) AttackMonster(playerID, monsterID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActionPoints(s.rules.AttackCost); err != nil {
		return nil, err
	}
	monster := s.activeMonster(monsterID)
	if monster == nil {
		return nil, ErrMonsterNotFound
	}

	s.actionPoints -= s.rules.AttackCost
	r := s.openRoll(p, models.RollKindAttack, monster.ID, monster.SlayTarget, monster.FailTarget, nil)
	r.History = append(r.History, fmt.Sprintf("%s attacks %s: rolled %d.", p.Name, monster.Name, r.Base))

	return s.rollOpened(r), nil
}

// UseHeroAbility spends 1 AP and opens an ability roll for a party hero that
// has not been used this turn
func (s *Session) UseHeroAbility(playerID, heroCardID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActionPoints(1); err != nil {
		return nil, err
	}
	_, hero := p.partyCard(heroCardID)
	if hero == nil || hero.Type != models.CardTypeHero {
		return nil, ErrCardNotFound
	}
	if hero.UsedThisTurn {
		return nil, ErrHeroAlreadyUsed
	}

	s.actionPoints--
	hero.UsedThisTurn = true
	r := s.openRoll(p, models.RollKindHeroAbility, hero.InstanceID, hero.RollRequirement, 0, hero)
	r.History = append(r.History, fmt.Sprintf("%s uses %s: rolled %d.", p.Name, hero.Name, r.Base))

	return s.rollOpened(r), nil
}

// EndTurn passes the turn to the next seat, refreshing AP and every hero
func (s *Session) EndTurn(playerID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}

	p.TurnBonus = 0
	s.currentTurn = (s.currentTurn + 1) % len(s.players)
	s.turnCount++
	s.actionPoints = s.rules.ActionPoints
	for _, c := range p.Party {
		c.UsedThisTurn = false
	}

	next := s.players[s.currentTurn]
	return &Outcome{
		Event:   EventTurnEnded,
		Message: fmt.Sprintf("%s ended their turn. It is now %s's turn.", p.Name, next.Name),
	}, nil
}

// DiscardHand spends the whole discard cost. The hand itself is left as is.
func (s *Session) DiscardHand(playerID string) (*Outcome, error) {
	p, err := s.requireTurnIdle(playerID)
	if err != nil {
		return nil, err
	}
	if err := s.requireActionPoints(s.rules.DiscardHandCost); err != nil {
		return nil, err
	}

	s.actionPoints -= s.rules.DiscardHandCost

	return &Outcome{
		Event:   EventHandDiscarded,
		Message: fmt.Sprintf("%s discarded their hand.", p.Name),
	}, nil
}

func (s *Session) player(playerID string) *Player {
	for _, p := range s.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (s *Session) current() *Player {
	if len(s.players) == 0 {
		return nil
	}
	return s.players[s.currentTurn]
}

// opponents returns every other player in turn order starting after p
func (s *Session) opponents(p *Player) []*Player {
	start := 0
	for i, player := range s.players {
		if player == p {
			start = i
			break
		}
	}
	out := make([]*Player, 0, len(s.players)-1)
	for i := 1; i < len(s.players); i++ {
		out = append(out, s.players[(start+i)%len(s.players)])
	}
	return out
}

func (s *Session) activeMonster(monsterID string) *models.Monster {
	for _, m := range s.activeMonsters {
		if m.ID == monsterID {
			return m
		}
	}
	return nil
}

func (s *Session) requireActive() error {
	switch {
	case s.winnerID != "":
		return ErrGameOver
	case s.status != models.GameStatusActive:
		return ErrNotStarted
	}
	return nil
}

func (s *Session) requireSeated(playerID string) (*Player, error) {
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	p := s.player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if s.interaction != nil {
		return nil, ErrSelectionPending
	}
	return p, nil
}

// requireTurnIdle guards turn actions: the caller holds the turn and no roll,
// challenge window or selection is open
func (s *Session) requireTurnIdle(playerID string) (*Player, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	if s.roll != nil || s.challenge != nil {
		return nil, ErrActionPending
	}
	if s.current() != p {
		return nil, ErrInvalidTurn
	}
	return p, nil
}

func (s *Session) requireActionPoints(cost int) error {
	if s.actionPoints < cost {
		return ErrInsufficientActionPoints
	}
	return nil
}

// randomIndex picks a uniform index in [0, n)
func (s *Session) randomIndex(n int) int {
	i := s.diceRoller.Roll(n) - 1
	if i < 0 || i >= n {
		return 0
	}
	return i
}
