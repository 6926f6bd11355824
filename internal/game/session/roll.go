package session

import (
	"fmt"

	"github.com/KirkDiggler/heroparty/internal/dice"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// openRoll rolls two dice for p and stores the roll. hero is set for ability
// rolls and earns the leader bonus when its class matches p's leader.
func (s *Session) openRoll(p *Player, kind models.RollKind, sourceID string, target, failTarget int, hero *models.Card) *StandardRoll {
	r := &StandardRoll{
		PlayerID:   p.ID,
		Kind:       kind,
		SourceID:   sourceID,
		Base:       dice.RollPair(s.diceRoller),
		TurnBonus:  p.TurnBonus,
		Target:     target,
		FailTarget: failTarget,
	}
	if hero != nil && p.Leader != nil && p.Leader.Class == hero.Class {
		r.LeaderBonus = s.rules.LeaderBonus
	}
	r.Total = r.Base + r.LeaderBonus + r.TurnBonus
	s.roll = r
	return r
}

func (s *Session) rollOpened(r *StandardRoll) *Outcome {
	return &Outcome{
		Event:   EventRollOpened,
		Message: fmt.Sprintf("Rolled %d (total %d, need %d). Play modifiers or pass.", r.Base, r.Total, r.Target),
	}
}

// PlayModifier applies a modifier card from any seated player's hand to the
// open roll. With no value the card's first option is used. A live duel
// takes the modifier instead of a standard roll.
func (s *Session) PlayModifier(playerID, cardID string, value *int) (*Outcome, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	duel := s.duel()
	if duel == nil && s.roll == nil {
		return nil, ErrNoActiveRoll
	}
	if duel != nil && duel.Phase != models.DuelPhaseModifiers {
		return nil, ErrWrongDuelPhase
	}

	idx, card := p.handCard(cardID)
	if card == nil {
		return nil, ErrCardNotFound
	}
	if card.Type != models.CardTypeModifier {
		return nil, ErrWrongCardType
	}
	amount, err := modifierValue(card, value)
	if err != nil {
		return nil, err
	}

	p.Hand = removeCard(p.Hand, idx)
	s.discardPile.Add(card)

	if duel != nil {
		return s.modifyDuel(p, card, amount), nil
	}

	s.roll.ModifierTotal += amount
	s.roll.Total += amount
	s.roll.Passes = nil
	entry := fmt.Sprintf("%s played %s (%+d). Total is now %d.", p.Name, card.Name, amount, s.roll.Total)
	s.roll.History = append(s.roll.History, entry)

	return &Outcome{Event: EventModifierPlayed, Message: entry}, nil
}

// PassRoll records a pass on the open roll or duel. The roll resolves once
// every seated player has passed since the last modifier.
func (s *Session) PassRoll(playerID string) (*Outcome, error) {
	p, err := s.requireSeated(playerID)
	if err != nil {
		return nil, err
	}
	if duel := s.duel(); duel != nil {
		if duel.Phase != models.DuelPhaseModifiers {
			return nil, ErrWrongDuelPhase
		}
		return s.passDuel(p), nil
	}
	if s.roll == nil {
		return nil, ErrNoActiveRoll
	}

	s.roll.Passes.add(p.ID)
	if len(s.roll.Passes) < len(s.players) {
		return &Outcome{
			Event:   EventRollPassed,
			Message: fmt.Sprintf("%s passed.", p.Name),
		}, nil
	}
	return s.resolveRoll(), nil
}

func modifierValue(card *models.Card, value *int) (int, error) {
	options := card.Options()
	if value == nil {
		if len(options) == 0 {
			return 0, ErrInvalidModifierValue
		}
		return options[0], nil
	}
	if !card.AllowsModifier(*value) {
		return 0, ErrInvalidModifierValue
	}
	return *value, nil
}

// resolveRoll clears the roll and applies its result
func (s *Session) resolveRoll() *Outcome {
	r := s.roll
	s.roll = nil
	p := s.player(r.PlayerID)

	out := &Outcome{Event: EventRollResolved, Resolved: true}
	switch r.Kind {
	case models.RollKindAttack:
		out.chain(s.resolveAttack(p, r))
	case models.RollKindHeroAbility:
		out.chain(s.resolveAbility(p, r))
	}
	return out
}

func (s *Session) resolveAttack(p *Player, r *StandardRoll) *Outcome {
	idx := -1
	for i, m := range s.activeMonsters {
		if m.ID == r.SourceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &Outcome{Message: "The monster is gone."}
	}
	monster := s.activeMonsters[idx]

	switch {
	case r.Total >= r.Target:
		s.activeMonsters = append(s.activeMonsters[:idx], s.activeMonsters[idx+1:]...)
		if next, ok := s.monsterDeck.Draw(); ok {
			s.activeMonsters = append(s.activeMonsters, next)
		}
		p.Slain = append(p.Slain, monster)
		out := &Outcome{Message: fmt.Sprintf("%s slayed %s! (%d)", p.Name, monster.Name, r.Total)}
		if len(p.Slain) >= s.rules.SlayTarget {
			s.winnerID = p.ID
			s.status = models.GameStatusCompleted
			out.Winner = p.ID
			out.Message += fmt.Sprintf(" %s wins the game!", p.Name)
		}
		return out
	case r.Total <= r.FailTarget:
		return &Outcome{
			Message:    fmt.Sprintf("Attack on %s failed! (%d) Punishment: %s", monster.Name, r.Total, monster.Punishment),
			Punished:   true,
			Punishment: monster.Punishment,
		}
	default:
		return &Outcome{Message: fmt.Sprintf("Attack on %s missed. (%d)", monster.Name, r.Total)}
	}
}

func (s *Session) resolveAbility(p *Player, r *StandardRoll) *Outcome {
	_, hero := p.partyCard(r.SourceID)
	if hero == nil {
		return &Outcome{Message: "The hero left the party before the ability resolved."}
	}
	if r.Total < r.Target {
		return &Outcome{Message: fmt.Sprintf("%s's ability failed. (%d, needed %d)", hero.Name, r.Total, r.Target)}
	}

	out := &Outcome{Message: fmt.Sprintf("%s's ability succeeded! (%d)", hero.Name, r.Total)}
	return out.chain(s.resolveEffect(p, hero))
}
