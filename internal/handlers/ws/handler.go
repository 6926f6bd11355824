// Package ws is the realtime transport: players connect to a game over a
// websocket, send actions and receive every state change of that game.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/heroparty/internal/models"
	"github.com/KirkDiggler/heroparty/internal/services/game"
	"github.com/KirkDiggler/heroparty/internal/services/messaging"
)

// ErrUnknownMessage is returned for an inbound type the server does not know
var ErrUnknownMessage = errors.New("unknown message type")

// Config holds configuration for the handler
type Config struct {
	// GameService runs the games
	GameService game.Service

	// MessagingService turns errors into player-facing text
	MessagingService messaging.Service

	// Hub must also be the game service's notifier
	Hub *Hub

	// CheckOrigin defaults to allowing every origin
	CheckOrigin func(r *http.Request) bool

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// Handler serves the HTTP and websocket surface of the game server
type Handler struct {
	gameService      game.Service
	messagingService messaging.Service
	hub              *Hub
	upgrader         websocket.Upgrader
	logger           *slog.Logger
}

// New creates a new handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		hub:              cfg.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger.With("component", "ws"),
	}, nil
}

// Routes returns the server's router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the game routes on r
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/leaderboard", h.GetLeaderboard)
	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.ListGames)
		r.Post("/", h.CreateGame)
		r.Get("/{gameID}", h.GetGame)
		r.Delete("/{gameID}", h.EndGame)
		r.Get("/{gameID}/ws", h.ServeWS)
	})
}

// GetLeaderboard returns the all-time winners
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_limit", "limit must be a non-negative number")
			return
		}
		limit = n
	}

	out, err := h.gameService.GetLeaderboard(r.Context(), &game.GetLeaderboardInput{Limit: limit})
	if err != nil {
		h.logger.Error("failed to get leaderboard", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to load leaderboard")
		return
	}

	writeJSON(w, http.StatusOK, &Outbound{Type: TypeLeaderboard, Leaderboard: out.Leaderboard})
}

type listGamesResponse struct {
	Games []*models.GameRecord `json:"games"`
}

// ListGames returns the open games on this server
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	out, err := h.gameService.ListGames(r.Context(), &game.ListGamesInput{})
	if err != nil {
		h.logger.Error("failed to list games", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "failed to list games")
		return
	}

	writeJSON(w, http.StatusOK, &listGamesResponse{Games: out.Games})
}

type createGameRequest struct {
	GameID string `json:"gameId"`
}

type createGameResponse struct {
	GameID string `json:"gameId"`
}

// CreateGame opens an empty game. Players seat themselves over the websocket.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be JSON")
		return
	}

	out, err := h.gameService.CreateGame(r.Context(), &game.CreateGameInput{GameID: req.GameID})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &createGameResponse{GameID: out.GameID})
}

// GetGame returns the public state of a game
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	out, err := h.gameService.GetState(r.Context(), &game.GetStateInput{GameID: gameID})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, &Outbound{
		Type:   TypeState,
		GameID: gameID,
		State:  out.Snapshot.Public,
	})
}

type endGameResponse struct {
	GameID    string `json:"gameId"`
	Completed bool   `json:"completed"`
}

// EndGame closes a game room and drops it from the directory
func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	out, err := h.gameService.EndGame(r.Context(), &game.EndGameInput{GameID: gameID})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, &endGameResponse{GameID: gameID, Completed: out.Completed})
}

// ServeWS upgrades the request to a websocket bound to one game and player
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	playerID := r.URL.Query().Get("player")
	playerName := r.URL.Query().Get("name")
	if playerID == "" {
		writeError(w, http.StatusBadRequest, "missing_player", "player query parameter is required")
		return
	}
	if playerName == "" {
		playerName = playerID
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		h.logger.Warn("failed to upgrade connection", "game_id", gameID, "error", err)
		return
	}

	c := newClient(conn, h, gameID, playerID, playerName)
	h.hub.register(c)
	h.logger.Info("player connected", "game_id", gameID, "player_id", playerID)

	go c.writeLoop()

	// A reconnecting player gets the table straight away
	if state, err := h.gameService.GetState(r.Context(), &game.GetStateInput{GameID: gameID}); err == nil {
		h.hub.Send(c, stateMessage(state.Snapshot, playerID, ""))
	}

	go c.readLoop()
}

// dispatch runs one inbound message for c. Successful actions reach every
// connection through the hub, so only errors and direct reads are returned.
func (h *Handler) dispatch(ctx context.Context, c *Client, msg *Inbound) *Outbound {
	gameID, playerID := c.gameID, c.playerID

	var err error
	switch msg.Type {
	case TypeCreateGame:
		_, err = h.gameService.CreateGame(ctx, &game.CreateGameInput{
			GameID:      gameID,
			CreatorID:   playerID,
			CreatorName: c.playerName,
		})
	case TypeJoinGame:
		_, err = h.gameService.JoinGame(ctx, &game.JoinGameInput{
			GameID:     gameID,
			PlayerID:   playerID,
			PlayerName: c.playerName,
		})
	case TypeLeaveGame:
		_, err = h.gameService.LeaveGame(ctx, &game.LeaveGameInput{GameID: gameID, PlayerID: playerID})
	case TypeStartGame:
		_, err = h.gameService.StartGame(ctx, &game.StartGameInput{GameID: gameID, PlayerID: playerID})
	case TypeDrawCard:
		_, err = h.gameService.DrawCard(ctx, &game.DrawCardInput{GameID: gameID, PlayerID: playerID})
	case TypePlayCard:
		_, err = h.gameService.PlayCard(ctx, &game.PlayCardInput{GameID: gameID, PlayerID: playerID, CardID: msg.CardID})
	case TypeAttackMonster:
		_, err = h.gameService.AttackMonster(ctx, &game.AttackMonsterInput{GameID: gameID, PlayerID: playerID, MonsterID: msg.MonsterID})
	case TypeUseHeroAbility:
		_, err = h.gameService.UseHeroAbility(ctx, &game.UseHeroAbilityInput{GameID: gameID, PlayerID: playerID, CardID: msg.CardID})
	case TypeEndTurn:
		_, err = h.gameService.EndTurn(ctx, &game.EndTurnInput{GameID: gameID, PlayerID: playerID})
	case TypeDiscardHand:
		_, err = h.gameService.DiscardHand(ctx, &game.DiscardHandInput{GameID: gameID, PlayerID: playerID})
	case TypePlayModifier:
		_, err = h.gameService.PlayModifier(ctx, &game.PlayModifierInput{
			GameID:   gameID,
			PlayerID: playerID,
			CardID:   msg.CardID,
			Value:    msg.Value,
		})
	case TypePassModifier:
		_, err = h.gameService.PassRoll(ctx, &game.PassRollInput{GameID: gameID, PlayerID: playerID})
	case TypeChallengeCard:
		_, err = h.gameService.InitiateChallenge(ctx, &game.InitiateChallengeInput{GameID: gameID, PlayerID: playerID})
	case TypePassChallenge:
		_, err = h.gameService.PassChallenge(ctx, &game.PassChallengeInput{GameID: gameID, PlayerID: playerID})
	case TypeRollChallengeDice:
		_, err = h.gameService.RollDuelDice(ctx, &game.RollDuelDiceInput{GameID: gameID, PlayerID: playerID})
	case TypeResolveSelection:
		if msg.Selection == nil {
			err = fmt.Errorf("%w: selection is required", ErrUnknownMessage)
			break
		}
		_, err = h.gameService.ResolveSelection(ctx, &game.ResolveSelectionInput{
			GameID:    gameID,
			PlayerID:  playerID,
			Selection: *msg.Selection,
		})
	case TypeGetState:
		var out *game.GetStateOutput
		out, err = h.gameService.GetState(ctx, &game.GetStateInput{GameID: gameID})
		if err == nil {
			return stateMessage(out.Snapshot, playerID, "")
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}

	if err == nil {
		return nil
	}

	h.logger.Debug("request rejected", "game_id", gameID, "player_id", playerID, "type", msg.Type, "error", err)
	return h.errorMessage(ctx, msg.Type, err)
}

func (h *Handler) errorMessage(ctx context.Context, request string, err error) *Outbound {
	reply := &Outbound{
		Type:    TypeError,
		Request: request,
		Code:    "internal",
		Message: err.Error(),
	}

	if errors.Is(err, ErrUnknownMessage) {
		reply.Code = "bad_request"
		return reply
	}

	if msg, msgErr := h.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err}); msgErr == nil {
		reply.Code = msg.Code
		reply.Message = msg.Message
	}
	return reply
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, game.ErrTooManyGames), errors.Is(err, game.ErrServiceClosed):
		status = http.StatusServiceUnavailable
	}

	reply := h.errorMessage(ctx, "", err)
	writeJSON(w, status, reply)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, &Outbound{Type: TypeError, Code: code, Message: message})
}
