package ws

import (
	"github.com/KirkDiggler/heroparty/internal/game/session"
	"github.com/KirkDiggler/heroparty/internal/models"
)

// Inbound message types
const (
	TypeCreateGame        = "createGame"
	TypeJoinGame          = "joinGame"
	TypeLeaveGame         = "leaveGame"
	TypeStartGame         = "startGame"
	TypeDrawCard          = "drawCard"
	TypePlayCard          = "playCard"
	TypeAttackMonster     = "attackMonster"
	TypeUseHeroAbility    = "useHeroAbility"
	TypeEndTurn           = "endTurn"
	TypeDiscardHand       = "discardHand"
	TypePlayModifier      = "playModifier"
	TypePassModifier      = "passModifier"
	TypeChallengeCard     = "challengeCard"
	TypePassChallenge     = "passChallenge"
	TypeRollChallengeDice = "rollChallengeDice"
	TypeResolveSelection  = "resolveSelection"
	TypeGetState          = "getState"
)

// Outbound message types
const (
	TypeState       = "state"
	TypeError       = "error"
	TypeLeaderboard = "leaderboard"
)

// Inbound is a request from a connected player. The player is fixed by the
// connection, so it never appears in the message.
type Inbound struct {
	Type      string             `json:"type"`
	CardID    string             `json:"cardId,omitempty"`
	MonsterID string             `json:"monsterId,omitempty"`
	Value     *int               `json:"value,omitempty"`
	Selection *session.Selection `json:"selection,omitempty"`
}

// Outbound is everything the server sends down a connection
type Outbound struct {
	Type   string `json:"type"`
	GameID string `json:"gameId,omitempty"`

	// Request is the inbound type an error answers
	Request string `json:"request,omitempty"`

	ActorID  string               `json:"actorId,omitempty"`
	Outcome  *session.Outcome     `json:"outcome,omitempty"`
	Headline string               `json:"headline,omitempty"`
	State    *session.PublicView  `json:"state,omitempty"`
	Hand     *session.PrivateView `json:"hand,omitempty"`

	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	Leaderboard *models.Leaderboard `json:"leaderboard,omitempty"`
}
