package session

import (
	"fmt"

	"github.com/KirkDiggler/heroparty/internal/models"
)

// EffectKind is the closed set of hero effects the engine knows how to apply
type EffectKind int

const (
	EffectUnimplemented EffectKind = iota
	EffectDrawCard
	EffectDestroyItem
	EffectStealCard
	EffectTakeFromEveryone
	EffectStealFromOpponents
	EffectRollBonus
	EffectSelectDestroyHero
	EffectSelectForceDiscard
	EffectSelectDiscardItem
	EffectSelectSacrifice
	EffectSelectStealHero
)

var effectKeys = map[string]EffectKind{
	"draw_card":            EffectDrawCard,
	"destroy_item":         EffectDestroyItem,
	"steal_card":           EffectStealCard,
	"take_from_everyone":   EffectTakeFromEveryone,
	"steal_from_opponents": EffectStealFromOpponents,
	"roll_bonus":           EffectRollBonus,
	"select_destroy_hero":  EffectSelectDestroyHero,
	"select_force_discard": EffectSelectForceDiscard,
	"select_discard_item":  EffectSelectDiscardItem,
	"select_sacrifice":     EffectSelectSacrifice,
	"select_steal_hero":    EffectSelectStealHero,
}

// EffectFor maps a catalog effect key to its kind. Unknown or empty keys are
// EffectUnimplemented.
func EffectFor(key string) EffectKind {
	return effectKeys[key]
}

// InteractionKind is what the chooser must pick
type InteractionKind string

const (
	InteractionSelectHero    InteractionKind = "SELECT_HERO"
	InteractionSelectPlayer  InteractionKind = "SELECT_PLAYER"
	InteractionSelectDiscard InteractionKind = "SELECT_DISCARD"

	// InteractionSelectOwnHero asks the chooser to give up one of their own
	// party heroes
	InteractionSelectOwnHero InteractionKind = "SELECT_OWN_HERO"
)

// InteractionAction is what happens to the chosen target
type InteractionAction string

const (
	ActionDestroy      InteractionAction = "DESTROY"
	ActionSteal        InteractionAction = "STEAL"
	ActionForceDiscard InteractionAction = "FORCE_DISCARD"
	ActionSacrifice    InteractionAction = "SACRIFICE"
	ActionTakeToHand   InteractionAction = "TAKE_TO_HAND"
)

// Interaction is an effect suspended until its chooser picks a target
type Interaction struct {
	ChooserID    string            `json:"chooserId"`
	Kind         InteractionKind   `json:"kind"`
	Action       InteractionAction `json:"action"`
	Count        int               `json:"count,omitempty"`
	Filter       models.CardType   `json:"filter,omitempty"`
	SourceCardID string            `json:"sourceCardId"`
	Prompt       string            `json:"prompt"`
}

// Selection answers a pending Interaction. PlayerID names the target player;
// CardID names a party hero or discard pile card.
type Selection struct {
	PlayerID string `json:"playerId,omitempty"`
	CardID   string `json:"cardId,omitempty"`
}

// resolveEffect applies a hero's effect after a successful ability roll
func (s *Session) resolveEffect(p *Player, hero *models.Card) *Outcome {
	switch EffectFor(hero.Effect) {
	case EffectDrawCard:
		card, ok := s.drawPile.Draw()
		if !ok {
			return &Outcome{Message: "The draw pile is empty."}
		}
		p.Hand = append(p.Hand, card)
		return &Outcome{Message: fmt.Sprintf("%s drew a card.", p.Name)}

	case EffectDestroyItem:
		for _, o := range s.opponents(p) {
			for i, c := range o.Party {
				if c.Type == models.CardTypeItem {
					o.Party = removeCard(o.Party, i)
					s.discardPile.Add(c)
					return &Outcome{Message: fmt.Sprintf("Destroyed %s's %s.", o.Name, c.Name)}
				}
			}
		}
		return &Outcome{Message: "No items to destroy."}

	case EffectStealCard:
		for _, o := range s.opponents(p) {
			if len(o.Hand) > 0 {
				s.takeRandomCard(o, p)
				return &Outcome{Message: fmt.Sprintf("Stole a card from %s.", o.Name)}
			}
		}
		return &Outcome{Message: "No cards to steal."}

	case EffectTakeFromEveryone:
		taken := 0
		for _, o := range s.opponents(p) {
			if n := len(o.Hand); n > 0 {
				card := o.Hand[n-1]
				o.Hand = o.Hand[:n-1]
				p.Hand = append(p.Hand, card)
				taken++
			}
		}
		return &Outcome{Message: fmt.Sprintf("Took %d cards from the table.", taken)}

	case EffectStealFromOpponents:
		taken := 0
		for _, o := range s.opponents(p) {
			if len(o.Hand) > 0 {
				s.takeRandomCard(o, p)
				taken++
			}
		}
		return &Outcome{Message: fmt.Sprintf("Stole %d cards.", taken)}

	case EffectRollBonus:
		p.TurnBonus += s.rules.RollBonus
		return &Outcome{Message: fmt.Sprintf("%s gets %+d to rolls this turn.", p.Name, s.rules.RollBonus)}

	case EffectSelectDestroyHero:
		if !s.opponentHasHero(p) {
			return &Outcome{Message: "No heroes to destroy."}
		}
		return s.suspend(&Interaction{
			ChooserID: p.ID,
			Kind:      InteractionSelectHero,
			Action:    ActionDestroy,
			Prompt:    "Choose a hero to destroy.",
		}, hero)

	case EffectSelectStealHero:
		if !s.opponentHasHero(p) {
			return &Outcome{Message: "No heroes to steal."}
		}
		return s.suspend(&Interaction{
			ChooserID: p.ID,
			Kind:      InteractionSelectHero,
			Action:    ActionSteal,
			Prompt:    "Choose a hero to steal.",
		}, hero)

	case EffectSelectForceDiscard:
		if !s.opponentHasCards(p) {
			return &Outcome{Message: "No one has cards to discard."}
		}
		return s.suspend(&Interaction{
			ChooserID: p.ID,
			Kind:      InteractionSelectPlayer,
			Action:    ActionForceDiscard,
			Count:     s.rules.ForceDiscardCount,
			Prompt:    fmt.Sprintf("Choose a player to discard %d cards.", s.rules.ForceDiscardCount),
		}, hero)

	case EffectSelectSacrifice:
		if !s.opponentHasHero(p) {
			return &Outcome{Message: "No one has a hero to sacrifice."}
		}
		return s.suspend(&Interaction{
			ChooserID: p.ID,
			Kind:      InteractionSelectPlayer,
			Action:    ActionSacrifice,
			Count:     1,
			Prompt:    "Choose a player to sacrifice a hero.",
		}, hero)

	case EffectSelectDiscardItem:
		if _, ok := s.discardPile.Find(isType(models.CardTypeItem)); !ok {
			return &Outcome{Message: "No items in the discard pile."}
		}
		return s.suspend(&Interaction{
			ChooserID: p.ID,
			Kind:      InteractionSelectDiscard,
			Action:    ActionTakeToHand,
			Filter:    models.CardTypeItem,
			Prompt:    "Choose an item from the discard pile.",
		}, hero)

	case EffectUnimplemented:
		return &Outcome{Message: "Effect not implemented yet.", Unimplemented: true}

	default:
		return &Outcome{Message: "Effect not implemented yet.", Unimplemented: true}
	}
}

func (s *Session) suspend(i *Interaction, hero *models.Card) *Outcome {
	i.SourceCardID = hero.InstanceID
	s.interaction = i
	copied := *i
	return &Outcome{Message: i.Prompt, Interaction: &copied}
}

// ResolveSelection completes the pending interaction with the chooser's pick
func (s *Session) ResolveSelection(playerID string, sel Selection) (*Outcome, error) {
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	p := s.player(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	i := s.interaction
	if i == nil {
		return nil, ErrNoPendingSelection
	}
	if i.ChooserID != p.ID {
		return nil, ErrInvalidTurn
	}

	var message string
	var next *Interaction
	switch i.Kind {
	case InteractionSelectHero, InteractionSelectPlayer:
		target, err := s.selectionTarget(p, sel)
		if err != nil {
			return nil, err
		}
		message, next, err = s.applyToPlayer(p, target, i, sel)
		if err != nil {
			return nil, err
		}
	case InteractionSelectOwnHero:
		_, hero := p.partyCard(sel.CardID)
		if hero == nil || hero.Type != models.CardTypeHero {
			return nil, ErrInvalidSelection
		}
		message = s.sacrifice(p, hero)
	case InteractionSelectDiscard:
		card, ok := s.discardPile.RemoveFunc(func(c *models.Card) bool {
			return c.InstanceID == sel.CardID && (i.Filter == "" || c.Type == i.Filter)
		})
		if !ok {
			return nil, ErrInvalidSelection
		}
		p.Hand = append(p.Hand, card)
		message = fmt.Sprintf("%s took %s from the discard pile.", p.Name, card.Name)
	default:
		return nil, ErrInvalidSelection
	}

	s.interaction = next
	out := &Outcome{Event: EventSelectionResolved, Message: message}
	if next != nil {
		copied := *next
		out.Interaction = &copied
	}
	return out, nil
}

func (s *Session) selectionTarget(chooser *Player, sel Selection) (*Player, error) {
	if sel.PlayerID == chooser.ID {
		return nil, ErrSelfTargetNotAllowed
	}
	target := s.player(sel.PlayerID)
	if target == nil {
		return nil, ErrPlayerNotFound
	}
	return target, nil
}

// applyToPlayer carries out i against target. A non-nil Interaction means the
// effect now waits on a further pick.
func (s *Session) applyToPlayer(chooser, target *Player, i *Interaction, sel Selection) (string, *Interaction, error) {
	switch i.Action {
	case ActionDestroy, ActionSteal:
		idx, hero := target.partyCard(sel.CardID)
		if hero == nil || hero.Type != models.CardTypeHero {
			return "", nil, ErrInvalidSelection
		}
		target.Party = removeCard(target.Party, idx)
		if i.Action == ActionDestroy {
			s.discardPile.Add(hero)
			return fmt.Sprintf("%s destroyed %s's %s.", chooser.Name, target.Name, hero.Name), nil, nil
		}
		hero.UsedThisTurn = true
		chooser.Party = append(chooser.Party, hero)
		return fmt.Sprintf("%s stole %s from %s.", chooser.Name, hero.Name, target.Name), nil, nil

	case ActionForceDiscard:
		if len(target.Hand) == 0 {
			return "", nil, ErrInvalidSelection
		}
		discarded := 0
		for discarded < i.Count && len(target.Hand) > 0 {
			idx := s.randomIndex(len(target.Hand))
			card := target.Hand[idx]
			target.Hand = removeCard(target.Hand, idx)
			s.discardPile.Add(card)
			discarded++
		}
		return fmt.Sprintf("%s discarded %d cards.", target.Name, discarded), nil, nil

	case ActionSacrifice:
		// The target decides which hero goes, not the chooser
		if sel.CardID != "" {
			return "", nil, ErrInvalidSelection
		}
		heroes := target.heroes()
		switch len(heroes) {
		case 0:
			return "", nil, ErrInvalidSelection
		case 1:
			return s.sacrifice(target, heroes[0]), nil, nil
		}
		next := &Interaction{
			ChooserID:    target.ID,
			Kind:         InteractionSelectOwnHero,
			Action:       ActionSacrifice,
			Count:        1,
			SourceCardID: i.SourceCardID,
			Prompt:       fmt.Sprintf("%s, choose a hero to sacrifice.", target.Name),
		}
		return fmt.Sprintf("%s must sacrifice a hero.", target.Name), next, nil
	}
	return "", nil, ErrInvalidSelection
}

func (s *Session) sacrifice(p *Player, hero *models.Card) string {
	idx, _ := p.partyCard(hero.InstanceID)
	p.Party = removeCard(p.Party, idx)
	s.discardPile.Add(hero)
	return fmt.Sprintf("%s sacrificed %s.", p.Name, hero.Name)
}

// takeRandomCard moves a random card from one hand to another
func (s *Session) takeRandomCard(from, to *Player) {
	idx := s.randomIndex(len(from.Hand))
	card := from.Hand[idx]
	from.Hand = removeCard(from.Hand, idx)
	to.Hand = append(to.Hand, card)
}

func (s *Session) opponentHasHero(p *Player) bool {
	for _, o := range s.opponents(p) {
		if len(o.heroes()) > 0 {
			return true
		}
	}
	return false
}

func (s *Session) opponentHasCards(p *Player) bool {
	for _, o := range s.opponents(p) {
		if len(o.Hand) > 0 {
			return true
		}
	}
	return false
}

func isType(t models.CardType) func(*models.Card) bool {
	return func(c *models.Card) bool {
		return c.Type == t
	}
}
