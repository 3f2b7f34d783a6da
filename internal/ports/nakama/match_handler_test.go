package nakama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/proto"

	"tienlen-server/internal/app"
	"tienlen-server/internal/domain"
	pb "tienlen-server/proto"
)

// mockWallet implements walletModule for testing.
type mockWallet struct {
	wallets   map[string]map[string]int64
	metadata  []map[string]interface{}
	updateErr error
}

func (m *mockWallet) AccountGetId(ctx context.Context, userID string) (*api.Account, error) {
	w, ok := m.wallets[userID]
	if !ok {
		return &api.Account{Wallet: "{}"}, nil
	}
	b, _ := json.Marshal(w)
	return &api.Account{Wallet: string(b)}, nil
}

func (m *mockWallet) WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error) {
	if m.updateErr != nil {
		return nil, nil, m.updateErr
	}
	if m.wallets == nil {
		m.wallets = make(map[string]map[string]int64)
	}
	if _, ok := m.wallets[userID]; !ok {
		m.wallets[userID] = make(map[string]int64)
	}
	prev := make(map[string]int64)
	for k, v := range m.wallets[userID] {
		prev[k] = v
	}
	for k, v := range changeset {
		m.wallets[userID][k] += v
	}
	m.metadata = append(m.metadata, metadata)
	return m.wallets[userID], prev, nil
}

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// recordingLogger keeps the level of every line logged through it.
type recordingLogger struct {
	noopLogger
	lines *[]string
}

func (r recordingLogger) Warn(format string, v ...interface{})  { *r.lines = append(*r.lines, "warn") }
func (r recordingLogger) Error(format string, v ...interface{}) { *r.lines = append(*r.lines, "error") }
func (r recordingLogger) Info(format string, v ...interface{})  { *r.lines = append(*r.lines, "info") }
func (r recordingLogger) WithFields(f map[string]interface{}) runtime.Logger {
	return recordingLogger{lines: r.lines}
}

type sentMessage struct {
	opCode    int64
	data      []byte
	presences []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	runtime.MatchDispatcher
	sent   []sentMessage
	labels []string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.sent = append(md.sent, sentMessage{opCode: opCode, data: append([]byte(nil), data...), presences: presences})
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labels = append(md.labels, label)
	return nil
}

func (md *mockDispatcher) ofOp(opCode int64) []sentMessage {
	var out []sentMessage
	for _, m := range md.sent {
		if m.opCode == opCode {
			out = append(out, m)
		}
	}
	return out
}

type testPresence struct {
	runtime.Presence
	userID string
}

func (p testPresence) GetUserId() string   { return p.userID }
func (p testPresence) GetUsername() string { return "name-" + p.userID }

type testMatchData struct {
	runtime.MatchData
	userID string
	opCode int64
	data   []byte
}

func (d testMatchData) GetUserId() string { return d.userID }
func (d testMatchData) GetOpCode() int64  { return d.opCode }
func (d testMatchData) GetData() []byte   { return d.data }

func initMatch(t *testing.T) (*matchHandler, *MatchState) {
	t.Helper()
	handler := newMatchHandler(nil)
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_MATCH_ID, "match-1")
	state, tickRate, label := handler.MatchInit(ctx, noopLogger{}, nil, nil, nil)
	if tickRate != 5 {
		t.Fatalf("tick rate = %d, want default 5", tickRate)
	}
	if label == "" {
		t.Fatalf("expected initial label")
	}
	return handler, state.(*MatchState)
}

func joinAll(handler *matchHandler, ms *MatchState, d *mockDispatcher, ids ...string) {
	presences := make([]runtime.Presence, 0, len(ids))
	for _, id := range ids {
		presences = append(presences, testPresence{userID: id})
	}
	handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, d, 0, ms, presences)
}

func compactJSON(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(s)); err != nil {
		t.Fatalf("compact %q: %v", s, err)
	}
	return buf.String()
}

func TestBuildLabel(t *testing.T) {
	tests := []struct {
		name     string
		summary  app.RoomSummary
		expected string
	}{
		{
			name:     "Forming",
			summary:  app.RoomSummary{Phase: app.PhaseForming, MaxSeats: 4, Players: make([]app.PublicPlayer, 1)},
			expected: `{"game":"tienlen","open":3,"phase":"forming","players":1}`,
		},
		{
			name:     "Playing",
			summary:  app.RoomSummary{Phase: app.PhasePlaying, MaxSeats: 4, Players: make([]app.PublicPlayer, 2)},
			expected: `{"game":"tienlen","open":0,"phase":"playing","players":2}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			label, err := buildLabel(test.summary)
			if err != nil {
				t.Fatalf("buildLabel: %v", err)
			}
			if got := compactJSON(t, label); got != test.expected {
				t.Errorf("Got %s, want %s", got, test.expected)
			}
		})
	}
}

func TestMatchJoinAttempt(t *testing.T) {
	handler, ms := initMatch(t)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a", "b", "c", "d")

	_, ok, reason := handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, d, 0, ms, testPresence{userID: "e"}, nil)
	if ok || reason != "Match full" {
		t.Fatalf("fifth player: ok=%t reason=%q", ok, reason)
	}

	_, ok, _ = handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, d, 0, ms, testPresence{userID: "a"}, nil)
	if !ok {
		t.Fatalf("seated player should be allowed back in")
	}

	for _, id := range []string{"a", "b", "c", "d"} {
		handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, d, 1, ms, []runtime.MatchData{testMatchData{userID: id, opCode: OpReady}})
	}
	if got := ms.Room.Snapshot().Phase; got != app.PhasePlaying {
		t.Fatalf("phase = %s, want playing", got)
	}

	handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, d, 2, ms, []runtime.Presence{testPresence{userID: "d"}})
	_, ok, reason = handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, d, 2, ms, testPresence{userID: "e"}, nil)
	if !ok {
		t.Fatalf("leaving resets the match so a new player can join, got %q", reason)
	}
}

func TestMatchFlowDispatchesEvents(t *testing.T) {
	handler, ms := initMatch(t)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a", "b")

	if n := len(d.ofOp(OpPlayersChanged)); n == 0 {
		t.Fatalf("expected players_changed after join")
	}
	if len(d.labels) == 0 {
		t.Fatalf("expected label update after join")
	}

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, d, 1, ms, []runtime.MatchData{
		testMatchData{userID: "a", opCode: OpReady},
		testMatchData{userID: "b", opCode: OpReady},
	})

	started := d.ofOp(OpMatchStarted)
	if len(started) != 2 {
		t.Fatalf("match_started sent %d times, want one per player", len(started))
	}
	for _, m := range started {
		if len(m.presences) != 1 {
			t.Fatalf("match_started must be private, got %d recipients", len(m.presences))
		}
		payload := &pb.MatchStartedEvent{}
		if err := proto.Unmarshal(m.data, payload); err != nil {
			t.Fatalf("decode match_started: %v", err)
		}
		if len(payload.GetHand()) != domain.HandSize {
			t.Fatalf("hand size = %d, want %d", len(payload.GetHand()), domain.HandSize)
		}
		if len(payload.GetPlayers()) != 2 || payload.GetFirstTurn() == "" {
			t.Fatalf("unexpected match_started %v", payload)
		}
	}
	var phase string
	if err := json.Unmarshal([]byte(d.labels[len(d.labels)-1]), &struct {
		Phase *string `json:"phase"`
	}{Phase: &phase}); err != nil {
		t.Fatalf("decode label: %v", err)
	}
	if phase != string(app.PhasePlaying) {
		t.Fatalf("label phase = %q, want playing", phase)
	}

	var turn string
	ms.Room.Inspect(func(m *app.Match) { turn = m.CurrentTurn() })
	waiting := "a"
	if turn == "a" {
		waiting = "b"
	}

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, d, 2, ms, []runtime.MatchData{
		testMatchData{userID: waiting, opCode: OpPass},
	})
	rejected := d.ofOp(OpPlayRejected)
	if len(rejected) != 1 {
		t.Fatalf("play_rejected sent %d times, want 1", len(rejected))
	}
	if got := rejected[0].presences[0].GetUserId(); got != waiting {
		t.Fatalf("rejection went to %s, want %s", got, waiting)
	}
	reject := &pb.PlayRejectedEvent{}
	if err := proto.Unmarshal(rejected[0].data, reject); err != nil {
		t.Fatalf("decode play_rejected: %v", err)
	}
	if reject.GetReason() != "not_your_turn" || reject.GetPlayerId() != waiting {
		t.Fatalf("unexpected play_rejected %v", reject)
	}
}

func TestMatchLoopRejectsMalformedMessages(t *testing.T) {
	handler, ms := initMatch(t)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a")

	empty, _ := proto.Marshal(&pb.PlayRequest{})
	badCard, _ := proto.Marshal(&pb.PlayRequest{Cards: []*pb.Card{{Suit: pb.Suit_SUIT_HEARTS, Rank: 16}}})

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, d, 1, ms, []runtime.MatchData{
		testMatchData{userID: "a", opCode: OpPlay, data: []byte{0xff}},
		testMatchData{userID: "a", opCode: OpPlay, data: empty},
		testMatchData{userID: "a", opCode: OpPlay, data: badCard},
		testMatchData{userID: "a", opCode: 42},
	})

	errs := d.ofOp(OpError)
	if len(errs) != 4 {
		t.Fatalf("error messages = %d, want 4", len(errs))
	}
	for i, want := range []int32{errCodeBadRequest, errCodeBadRequest, errCodeBadRequest, errCodeUnknownOp} {
		msg := &pb.GameErrorEvent{}
		if err := proto.Unmarshal(errs[i].data, msg); err != nil {
			t.Fatalf("decode error %d: %v", i, err)
		}
		if msg.GetCode() != want {
			t.Fatalf("error %d code = %d, want %d (%s)", i, msg.GetCode(), want, msg.GetMessage())
		}
	}
	last := &pb.GameErrorEvent{}
	if err := proto.Unmarshal(errs[3].data, last); err != nil || last.GetMessage() != "unknown op code" {
		t.Fatalf("unexpected error payload %v (%v)", last, err)
	}
}

func TestDecodePlay(t *testing.T) {
	data, err := proto.Marshal(&pb.PlayRequest{Cards: []*pb.Card{
		{Suit: pb.Suit_SUIT_SPADES, Rank: 3},
		{Suit: pb.Suit_SUIT_HEARTS, Rank: 15},
	}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	cards, err := decodePlay(data)
	if err != nil {
		t.Fatalf("decodePlay: %v", err)
	}
	want := []domain.Card{domain.ThreeOfSpades, {Suit: domain.Hearts, Rank: domain.RankTwo}}
	if len(cards) != len(want) || cards[0] != want[0] || cards[1] != want[1] {
		t.Fatalf("cards = %v, want %v", cards, want)
	}
}

func TestEncodeEventCoversEveryKind(t *testing.T) {
	total := int64(12)
	payloads := map[app.EventKind]any{
		app.EventPlayersChanged: app.PlayersChangedPayload{MatchID: "m", Players: []app.PublicPlayer{{ID: "a", Seat: 1, CardCount: 13, Score: 4}}},
		app.EventPlayerReady:    app.PlayerReadyPayload{PlayerID: "a"},
		app.EventPlayerLeft:     app.PlayerLeftPayload{MatchID: "m", PlayerID: "a"},
		app.EventMatchStarted:   app.MatchStartedPayload{Hand: []domain.Card{domain.ThreeOfSpades}, FirstTurn: "a"},
		app.EventTurnChanged:    app.TurnChangedPayload{PlayerID: "a"},
		app.EventPlayAccepted:   app.PlayAcceptedPayload{PlayerID: "a", Cards: []domain.Card{domain.ThreeOfSpades}, Combo: "single"},
		app.EventPlayRejected:   app.PlayRejectedPayload{PlayerID: "a", Reason: "not_your_turn"},
		app.EventPassAccepted:   app.PassAcceptedPayload{PlayerID: "a"},
		app.EventPlayerFinished: app.PlayerFinishedPayload{PlayerID: "a"},
		app.EventRoundReset:     app.RoundResetPayload{NextTurn: "a"},
		app.EventScoreDelta:     app.ScoreDeltaPayload{PlayerID: "a", Delta: -2, Reason: app.ScoreReasonChop, NewTotal: &total},
		app.EventMatchOver:      app.MatchOverPayload{Ranking: []string{"a", "b"}, Loser: "b"},
	}
	if len(payloads) != len(eventOpCodes) {
		t.Fatalf("covering %d kinds, op code table has %d", len(payloads), len(eventOpCodes))
	}
	for kind, payload := range payloads {
		opCode, data, err := encodeEvent(app.Event{Kind: kind, Payload: payload})
		if err != nil {
			t.Fatalf("encode %s: %v", kind, err)
		}
		if opCode != eventOpCodes[kind] {
			t.Fatalf("%s op code = %d, want %d", kind, opCode, eventOpCodes[kind])
		}
		if kind == app.EventScoreDelta {
			delta := &pb.ScoreDeltaEvent{}
			if err := proto.Unmarshal(data, delta); err != nil {
				t.Fatalf("decode score_delta: %v", err)
			}
			if delta.GetDelta() != -2 || delta.NewTotal == nil || delta.GetNewTotal() != 12 || delta.GetReason() != "chop" {
				t.Fatalf("unexpected score_delta %v", delta)
			}
		}
	}

	if _, _, err := encodeEvent(app.Event{Kind: app.EventTurnChanged, Payload: "oops"}); err == nil {
		t.Fatalf("expected error for unsupported payload")
	}
}

func TestMatchLeaveTerminatesEmptyMatch(t *testing.T) {
	handler, ms := initMatch(t)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a", "b")

	next := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, d, 1, ms, []runtime.Presence{testPresence{userID: "a"}})
	if next == nil {
		t.Fatalf("match with a seated player must keep running")
	}
	left := d.ofOp(OpPlayerLeft)
	if len(left) != 1 || left[0].presences[0].GetUserId() != "b" {
		t.Fatalf("player_left should reach the remaining player, got %+v", left)
	}

	next = handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, d, 2, ms, []runtime.Presence{testPresence{userID: "b"}})
	if next != nil {
		t.Fatalf("empty match should terminate")
	}
}

func TestMatchSignalReturnsSnapshot(t *testing.T) {
	handler, ms := initMatch(t)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a")

	_, data := handler.MatchSignal(context.Background(), noopLogger{}, nil, nil, d, 0, ms, "")
	var snapshot app.RoomSummary
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot.ID != "match-1" || len(snapshot.Players) != 1 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestWalletScoresAndQueuedEvents(t *testing.T) {
	wallet := &mockWallet{wallets: map[string]map[string]int64{"a": {ScoreWalletKey: 7}}}
	handler := newMatchHandler(nil)
	ms := newMatchState("match-1", noopLogger{}, NewWalletScores(wallet, "match-1"), 0)
	d := &mockDispatcher{}
	joinAll(handler, ms, d, "a", "b")

	players := &pb.PlayersChangedEvent{}
	changed := d.ofOp(OpPlayersChanged)
	if err := proto.Unmarshal(changed[len(changed)-1].data, players); err != nil {
		t.Fatalf("decode players_changed: %v", err)
	}
	if got := players.GetPlayers()[0].GetScore(); got != 7 {
		t.Fatalf("score of a = %d, want 7 from wallet", got)
	}

	// Background score updates land in the queue between ticks.
	ms.notifier.Notify(context.Background(), []string{"a"}, app.Event{
		Kind:    app.EventScoreDelta,
		Payload: app.ScoreDeltaPayload{PlayerID: "a", Delta: 3, Reason: app.ScoreReasonChop},
	})
	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, d, 1, ms, nil)
	deltas := d.ofOp(OpScoreDelta)
	if len(deltas) != 1 {
		t.Fatalf("score_delta sent %d times, want 1", len(deltas))
	}
	delta := &pb.ScoreDeltaEvent{}
	if err := proto.Unmarshal(deltas[0].data, delta); err != nil {
		t.Fatalf("decode score_delta: %v", err)
	}
	if delta.GetPlayerId() != "a" || delta.GetDelta() != 3 || delta.NewTotal != nil {
		t.Fatalf("unexpected score_delta %v", delta)
	}
}

func TestWalletScores(t *testing.T) {
	wallet := &mockWallet{}
	scores := NewWalletScores(wallet, "match-1")
	ctx := context.Background()

	if got, err := scores.GetScore(ctx, "u1"); err != nil || got != 0 {
		t.Fatalf("unknown player score = %d, %v", got, err)
	}
	if err := scores.AddScore(ctx, "u1", 5); err != nil {
		t.Fatalf("AddScore: %v", err)
	}
	if err := scores.AddScore(ctx, "u1", -2); err != nil {
		t.Fatalf("AddScore: %v", err)
	}
	if err := scores.AddScore(ctx, "u1", 0); err != nil {
		t.Fatalf("AddScore zero: %v", err)
	}
	if got, err := scores.GetScore(ctx, "u1"); err != nil || got != 3 {
		t.Fatalf("score = %d, %v; want 3", got, err)
	}
	if len(wallet.metadata) != 2 {
		t.Fatalf("zero delta should not touch the wallet, got %d updates", len(wallet.metadata))
	}
	if wallet.metadata[0]["match_id"] != "match-1" {
		t.Fatalf("ledger metadata missing match id: %+v", wallet.metadata[0])
	}

	wallet.updateErr = errors.New("boom")
	if err := scores.AddScore(ctx, "u1", 1); err == nil {
		t.Fatalf("expected wallet error")
	}
}

type fakeFinder struct {
	matches []*api.Match
	created int
	query   string
}

func (f *fakeFinder) MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error) {
	f.query = query
	return f.matches, nil
}

func (f *fakeFinder) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	f.created++
	return "new-match", nil
}

func TestQuickMatch(t *testing.T) {
	finder := &fakeFinder{}
	out, err := quickMatch(context.Background(), noopLogger{}, finder, 10)
	if err != nil {
		t.Fatalf("quickMatch: %v", err)
	}
	if out != `{"match_id":"new-match","is_new":true}` {
		t.Fatalf("unexpected response %s", out)
	}
	if finder.query != "+label.game:tienlen +label.phase:forming +label.open:>=1" {
		t.Fatalf("unexpected query %q", finder.query)
	}

	finder.matches = []*api.Match{{MatchId: "open-match"}}
	out, err = quickMatch(context.Background(), noopLogger{}, finder, 10)
	if err != nil {
		t.Fatalf("quickMatch: %v", err)
	}
	if out != `{"match_id":"open-match","is_new":false}` || finder.created != 1 {
		t.Fatalf("expected existing match, got %s (created %d)", out, finder.created)
	}
}

func TestRuntimeHookForwardsLevels(t *testing.T) {
	var lines []string
	log := newRuntimeLogger(recordingLogger{lines: &lines})

	log.WithField("match_id", "m").Warn("slow store")
	log.Error("broken")
	log.Info("hello")
	log.Debug("quiet")

	want := []string{"warn", "error", "info"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("lines = %v, want %v", lines, want)
		}
	}
}
