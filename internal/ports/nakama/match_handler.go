package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/proto"

	"tienlen-server/internal/app"
	"tienlen-server/internal/config"
	"tienlen-server/internal/ports"
	pb "tienlen-server/proto"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Room      *app.Room                   // Serialized match state machine
	Presences map[string]runtime.Presence // UserId -> Presence for targeted messaging
	Label     string                      // Last label pushed to Nakama

	notifier *bufferNotifier
}

// newMatchState builds the room for a match. scores may be nil.
func newMatchState(matchID string, logger runtime.Logger, scores ports.ScorePort, scoreTimeout time.Duration) *MatchState {
	notifier := &bufferNotifier{}
	return &MatchState{
		Room: app.NewRoom(matchID, app.RoomOptions{
			Notifier:     notifier,
			Scores:       scores,
			Logger:       newRuntimeLogger(logger),
			ScoreTimeout: scoreTimeout,
		}),
		Presences: make(map[string]runtime.Presence),
		notifier:  notifier,
	}
}

// presencesFor resolves user ids to connected presences.
func (ms *MatchState) presencesFor(userIDs []string) []runtime.Presence {
	out := make([]runtime.Presence, 0, len(userIDs))
	for _, id := range userIDs {
		if p, ok := ms.Presences[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

type matchHandler struct {
	cfg *config.GameConfig
}

func newMatchHandler(cfg *config.GameConfig) *matchHandler {
	return &matchHandler{cfg: cfg}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	logger.Debug("MatchInit: Initializing match %s.", matchID)

	var scores ports.ScorePort
	if nk != nil {
		scores = NewWalletScores(nk, matchID)
	}
	state := newMatchState(matchID, logger, scores, mh.cfg.ScoreTimeout())

	label, err := buildLabel(state.Room.Snapshot())
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	state.Label = label

	return state, mh.cfg.Ticks(), label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	ms, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if ms.Room.Has(presence.GetUserId()) {
		return ms, true, ""
	}
	snapshot := ms.Room.Snapshot()
	if snapshot.Phase != app.PhaseForming {
		return ms, false, "Match in progress"
	}
	if len(snapshot.Players) >= snapshot.MaxSeats {
		return ms, false, "Match full"
	}
	return ms, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	ms, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		ms.Presences[p.GetUserId()] = p
		if err := ms.Room.Join(ctx, p.GetUserId(), p.GetUsername()); err != nil {
			logger.Warn("MatchJoin: User %s could not take a seat: %v", p.GetUserId(), err)
		}
	}

	mh.flush(ms, dispatcher, logger)
	mh.updateLabel(ms, dispatcher, logger)
	return ms
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	ms, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(ms.Presences, p.GetUserId())
		if err := ms.Room.Leave(ctx, p.GetUserId()); err != nil && !errors.Is(err, app.ErrUnknownPlayer) {
			logger.Warn("MatchLeave: User %s: %v", p.GetUserId(), err)
		}
	}

	mh.flush(ms, dispatcher, logger)

	if ms.Room.Empty() {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	mh.updateLabel(ms, dispatcher, logger)
	return ms
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	ms, ok := state.(*MatchState)
	if !ok {
		return state
	}

	for _, msg := range messages {
		mh.handleMessage(ctx, ms, dispatcher, logger, msg)
	}

	// Score updates finish in the background and are queued for the next tick.
	mh.flush(ms, dispatcher, logger)
	mh.updateLabel(ms, dispatcher, logger)
	return ms
}

func (mh *matchHandler) handleMessage(ctx context.Context, ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	userID := msg.GetUserId()

	var err error
	switch msg.GetOpCode() {
	case OpReady:
		err = ms.Room.SetReady(ctx, userID)
	case OpStart:
		err = ms.Room.Start(ctx, userID)
	case OpPlay:
		cards, decodeErr := decodePlay(msg.GetData())
		if decodeErr != nil {
			logger.Warn("handlePlay: User %s sent a bad request: %v", userID, decodeErr)
			mh.sendError(ms, dispatcher, logger, userID, errCodeBadRequest, decodeErr.Error())
			return
		}
		err = ms.Room.SubmitPlay(ctx, userID, cards)
	case OpPass:
		err = ms.Room.Pass(ctx, userID)
	default:
		logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		mh.sendError(ms, dispatcher, logger, userID, errCodeUnknownOp, "unknown op code")
		return
	}

	// Rejections already reached the player as play_rejected.
	if err != nil {
		logger.Debug("MatchLoop: op %d from %s rejected: %v", msg.GetOpCode(), userID, err)
	}
}

// flush dispatches queued room events. Targeted events whose recipients are all
// disconnected are dropped rather than broadcast.
func (mh *matchHandler) flush(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for _, q := range ms.notifier.drain() {
		opCode, data, err := encodeEvent(q.ev)
		if err != nil {
			logger.Error("flush: %v", err)
			continue
		}
		recipients := ms.presencesFor(q.recipients)
		if len(recipients) == 0 {
			continue
		}
		if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
			logger.Warn("flush: Failed to send %s: %v", q.ev.Kind, err)
		}
	}
}

// sendError sends a GameErrorEvent to a single player.
func (mh *matchHandler) sendError(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := ms.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}
	data, err := proto.Marshal(&pb.GameErrorEvent{Code: int32(code), Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorEvent: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpError, data, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Warn("Failed to send error to %s: %v", userID, err)
	}
}

func (mh *matchHandler) updateLabel(ms *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := buildLabel(ms.Room.Snapshot())
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if label == ms.Label {
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
		return
	}
	ms.Label = label
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminating, grace %ds", graceSeconds)
	if ms, ok := state.(*MatchState); ok {
		ms.Room.Wait()
		mh.flush(ms, dispatcher, logger)
	}
	return state
}

// MatchSignal answers with the lobby view of the room.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	ms, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}
	b, err := json.Marshal(ms.Room.Snapshot())
	if err != nil {
		logger.Error("MatchSignal: Failed to marshal snapshot: %v", err)
		return ms, ""
	}
	return ms, string(b)
}
