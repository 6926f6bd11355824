package session

import (
	"fmt"

	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// duel returns the live duel, if any
func (s *Session) duel() *DuelRoll {
	if s.challenge == nil || s.challenge.State != ChallengeDueling {
		return nil
	}
	return s.challenge.Duel
}

// PassChallenge records that a player lets the pending card through. Once
// everyone but the source player has passed the play is confirmed.
func (s *Session) PassChallenge(playerID string) (*Outcome, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	if s.challenge == nil {
		return nil, ErrNoActiveChallenge
	}
	if s.challenge.State == ChallengeDueling {
		return nil, ErrActionPending
	}
	if p.ID == s.challenge.SourceID {
		return nil, ErrSelfTargetNotAllowed
	}

	s.challenge.Passes.add(p.ID)
	if len(s.challenge.Passes) < len(s.players)-1 {
		return &Outcome{
			Event:   EventChallengePassed,
			Message: fmt.Sprintf("%s will not challenge.", p.Name),
		}, nil
	}

	out := &Outcome{
		Event:    EventChallengeResolved,
		Message:  fmt.Sprintf("No one challenged %s.", s.challenge.Card.Name),
		Resolved: true,
	}
	return out.chain(s.closeChallenge(true)), nil
}

// InitiateChallenge burns a CHALLENGE card from the caller's hand and starts
// a duel against the source player
func (s *Session) InitiateChallenge(playerID string) (*Outcome, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	if s.challenge == nil {
		return nil, ErrNoActiveChallenge
	}
	if s.challenge.State == ChallengeDueling {
		return nil, ErrActionPending
	}
	if p.ID == s.challenge.SourceID {
		return nil, ErrSelfTargetNotAllowed
	}

	idx := -1
	for i, c := range p.Hand {
		if c.Type == models.CardTypeChallenge {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoChallengeCard
	}
	burned := p.Hand[idx]
	p.Hand = removeCard(p.Hand, idx)
	s.discardPile.Add(burned)

	defender := s.player(s.challenge.SourceID)
	entry := fmt.Sprintf("%s challenged %s's %s! Waiting for rolls...", p.Name, defender.Name, s.challenge.Card.Name)
	s.challenge.State = ChallengeDueling
	s.challenge.Duel = &DuelRoll{
		ChallengerID: p.ID,
		DefenderID:   defender.ID,
		Phase:        models.DuelPhaseRolling,
		History:      []string{entry},
	}

	return &Outcome{Event: EventDuelStarted, Message: entry}, nil
}

// RollDuelDice rolls for the challenger or defender. A duelist who already
// rolled gets an empty outcome and their roll stands.
func (s *Session) RollDuelDice(playerID string) (*Outcome, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	duel := s.duel()
	if duel == nil {
		return nil, ErrNoActiveRoll
	}
	if duel.Phase != models.DuelPhaseRolling {
		return nil, ErrWrongDuelPhase
	}

	var slot **int
	var total *int
	switch p.ID {
	case duel.ChallengerID:
		slot, total = &duel.ChallengerRoll, &duel.ChallengerTotal
	case duel.DefenderID:
		slot, total = &duel.DefenderRoll, &duel.DefenderTotal
	default:
		return nil, ErrNotDuelist
	}
	if *slot != nil {
		return &Outcome{Event: EventDuelRolled}, nil
	}

	rolled := dice.RollPair(s.diceRoller)
	*slot = &rolled
	*total = rolled
	entry := fmt.Sprintf("%s rolled %d.", p.Name, rolled)
	duel.History = append(duel.History, entry)

	out := &Outcome{Event: EventDuelRolled, Message: entry}
	if duel.ChallengerRoll != nil && duel.DefenderRoll != nil {
		duel.Phase = models.DuelPhaseModifiers
		duel.Passes = nil
		out.Message += " Play modifiers or pass."
	}
	return out, nil
}

// modifyDuel adds amount to the challenger's total when the challenger plays
// it and to the defender's total otherwise
func (s *Session) modifyDuel(p *Player, card *models.Card, amount int) *Outcome {
	duel := s.challenge.Duel
	side := "defender"
	if p.ID == duel.ChallengerID {
		duel.ChallengerTotal += amount
		side = "challenger"
	} else {
		duel.DefenderTotal += amount
	}
	duel.Passes = nil
	entry := fmt.Sprintf("%s played %s (%+d) for the %s. Challenger %d vs Defender %d.",
		p.Name, card.Name, amount, side, duel.ChallengerTotal, duel.DefenderTotal)
	duel.History = append(duel.History, entry)

	return &Outcome{Event: EventModifierPlayed, Message: entry}
}

func (s *Session) passDuel(p *Player) *Outcome {
	duel := s.challenge.Duel
	duel.Passes.add(p.ID)
	if len(duel.Passes) < len(s.players) {
		return &Outcome{
			Event:   EventRollPassed,
			Message: fmt.Sprintf("%s passed.", p.Name),
		}
	}

	challenger := s.player(duel.ChallengerID)
	out := &Outcome{Event: EventChallengeResolved, Resolved: true}
	if duel.ChallengerTotal > duel.DefenderTotal {
		out.Message = fmt.Sprintf("Challenge succeeded! %s blocked %s (%d vs %d).",
			challenger.Name, s.challenge.Card.Name, duel.ChallengerTotal, duel.DefenderTotal)
		return out.chain(s.closeChallenge(false))
	}
	out.Message = fmt.Sprintf("Challenge failed! %s goes through (%d vs %d).",
		s.challenge.Card.Name, duel.ChallengerTotal, duel.DefenderTotal)
	return out.chain(s.closeChallenge(true))
}

// closeChallenge is the only place a challenge window is cleared. The pending
// card is either confirmed or discarded.
func (s *Session) closeChallenge(confirmed bool) *Outcome {
	c := s.challenge
	s.challenge = nil
	if !confirmed {
		s.discardPile.Add(c.Card)
		return nil
	}
	return s.confirmPlay(s.player(c.SourceID), c.Card)
}

// confirmPlay charges 1 AP and puts the card into effect. A hero joins the
// party and immediately opens a free ability roll.
func (s *Session) confirmPlay(p *Player, card *models.Card) *Outcome {
	s.actionPoints--

	switch card.Type {
	case models.CardTypeMagic:
		s.discardPile.Add(card)
		return &Outcome{Message: fmt.Sprintf("%s cast %s.", p.Name, card.Name)}
	case models.CardTypeHero:
		card.UsedThisTurn = true
		p.Party = append(p.Party, card)
		r := s.openRoll(p, models.RollKindHeroAbility, card.InstanceID, card.RollRequirement, 0, card)
		r.History = append(r.History, fmt.Sprintf("%s joined %s's party and rolls %d.", card.Name, p.Name, r.Base))
		out := &Outcome{Message: fmt.Sprintf("%s joined %s's party.", card.Name, p.Name)}
		return out.chain(s.rollOpened(r))
	default:
		p.Party = append(p.Party, card)
		return &Outcome{Message: fmt.Sprintf("%s equipped %s.", p.Name, card.Name)}
	}
}
