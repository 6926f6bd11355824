package session

import (
	"github.com/KirkDiggler/heroparty/internal/models"
)

// PublicView is everything every player may see. It shares no memory with
// the session.
type PublicView struct {
	GameID           string            `json:"gameId"`
	Status           models.GameStatus `json:"status"`
	WinnerID         string            `json:"winnerId,omitempty"`
	CurrentTurn      int               `json:"currentTurn"`
	CurrentPlayerID  string            `json:"currentPlayerId,omitempty"`
	ActionPoints     int               `json:"actionPoints"`
	TurnCount        int               `json:"turnCount"`
	Players          []PublicPlayer    `json:"players"`
	ActiveMonsters   []models.Monster  `json:"activeMonsters"`
	MonsterDeckCount int               `json:"monsterDeckCount"`
	DrawPileCount    int               `json:"drawPileCount"`
	DiscardPile      []models.Card     `json:"discardPile"`
	Roll             *RollView         `json:"roll,omitempty"`
	Challenge        *ChallengeView    `json:"challenge,omitempty"`
	Interaction      *Interaction      `json:"interaction,omitempty"`
}

// PublicPlayer is a seat as seen by everyone
type PublicPlayer struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Leader        *models.Leader   `json:"leader,omitempty"`
	Party         []models.Card    `json:"party"`
	SlainMonsters []models.Monster `json:"slainMonsters"`
	HandCount     int              `json:"handCount"`
	TurnBonus     int              `json:"turnBonus,omitempty"`
}

// RollView is the open standard roll
type RollView struct {
	PlayerID      string          `json:"playerId"`
	Kind          models.RollKind `json:"kind"`
	SourceID      string          `json:"sourceId"`
	Base          int             `json:"base"`
	LeaderBonus   int             `json:"leaderBonus"`
	TurnBonus     int             `json:"turnBonus"`
	ModifierTotal int             `json:"modifierTotal"`
	Total         int             `json:"total"`
	Target        int             `json:"target"`
	FailTarget    int             `json:"failTarget"`
	History       []string        `json:"history"`
	Passed        []string        `json:"passed"`
}

// ChallengeView is the open challenge window and its duel
type ChallengeView struct {
	SourcePlayerID string         `json:"sourcePlayerId"`
	Card           models.Card    `json:"card"`
	State          ChallengeState `json:"state"`
	Passed         []string       `json:"passed"`
	Duel           *DuelView      `json:"duel,omitempty"`
}

// DuelView is a live duel
type DuelView struct {
	ChallengerID    string           `json:"challengerId"`
	DefenderID      string           `json:"defenderId"`
	ChallengerRoll  *int             `json:"challengerRoll,omitempty"`
	DefenderRoll    *int             `json:"defenderRoll,omitempty"`
	ChallengerTotal int              `json:"challengerTotal"`
	DefenderTotal   int              `json:"defenderTotal"`
	Phase           models.DuelPhase `json:"phase"`
	History         []string         `json:"history"`
	Passed          []string         `json:"passed"`
}

// PrivateView is what only the owner of a hand may see
type PrivateView struct {
	PlayerID string        `json:"playerId"`
	Hand     []models.Card `json:"hand"`
}

// PublicView snapshots the shared table
func (s *Session) PublicView() *PublicView {
	v := &PublicView{
		GameID:           s.id,
		Status:           s.status,
		WinnerID:         s.winnerID,
		CurrentTurn:      s.currentTurn,
		ActionPoints:     s.actionPoints,
		TurnCount:        s.turnCount,
		Players:          make([]PublicPlayer, 0, len(s.players)),
		ActiveMonsters:   copyMonsters(s.activeMonsters),
		MonsterDeckCount: s.monsterDeck.Size(),
		DrawPileCount:    s.drawPile.Size(),
		DiscardPile:      copyCards(s.discardPile.Items()),
	}
	if s.status == models.GameStatusActive || s.status == models.GameStatusCompleted {
		if p := s.current(); p != nil {
			v.CurrentPlayerID = p.ID
		}
	}

	for _, p := range s.players {
		pp := PublicPlayer{
			ID:            p.ID,
			Name:          p.Name,
			Party:         copyCards(p.Party),
			SlainMonsters: copyMonsters(p.Slain),
			HandCount:     len(p.Hand),
			TurnBonus:     p.TurnBonus,
		}
		if p.Leader != nil {
			leader := *p.Leader
			pp.Leader = &leader
		}
		v.Players = append(v.Players, pp)
	}

	if r := s.roll; r != nil {
		v.Roll = &RollView{
			PlayerID:      r.PlayerID,
			Kind:          r.Kind,
			SourceID:      r.SourceID,
			Base:          r.Base,
			LeaderBonus:   r.LeaderBonus,
			TurnBonus:     r.TurnBonus,
			ModifierTotal: r.ModifierTotal,
			Total:         r.Total,
			Target:        r.Target,
			FailTarget:    r.FailTarget,
			History:       append([]string(nil), r.History...),
			Passed:        r.Passes.list(),
		}
	}

	if c := s.challenge; c != nil {
		v.Challenge = &ChallengeView{
			SourcePlayerID: c.SourceID,
			Card:           copyCard(c.Card),
			State:          c.State,
			Passed:         c.Passes.list(),
		}
		if d := c.Duel; d != nil {
			v.Challenge.Duel = &DuelView{
				ChallengerID:    d.ChallengerID,
				DefenderID:      d.DefenderID,
				ChallengerRoll:  copyInt(d.ChallengerRoll),
				DefenderRoll:    copyInt(d.DefenderRoll),
				ChallengerTotal: d.ChallengerTotal,
				DefenderTotal:   d.DefenderTotal,
				Phase:           d.Phase,
				History:         append([]string(nil), d.History...),
				Passed:          d.Passes.list(),
			}
		}
	}

	if s.interaction != nil {
		i := *s.interaction
		v.Interaction = &i
	}

	return v
}

// PrivateView snapshots one player's hand
func (s *Session) PrivateView(playerID string) (*PrivateView, error) {
	p := s.player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return &PrivateView{PlayerID: p.ID, Hand: copyCards(p.Hand)}, nil
}

func copyCard(c *models.Card) models.Card {
	out := *c
	if c.ModifierOptions != nil {
		out.ModifierOptions = append([]int(nil), c.ModifierOptions...)
	}
	return out
}

func copyCards(cards []*models.Card) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, copyCard(c))
	}
	return out
}

func copyMonsters(monsters []*models.Monster) []models.Monster {
	out := make([]models.Monster, 0, len(monsters))
	for _, m := range monsters {
		out = append(out, *m)
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
