package nakama

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"tienlen-server/internal/app"
	"tienlen-server/internal/domain"
	pb "tienlen-server/proto"
)

func encodeEvent(ev app.Event) (int64, []byte, error) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		return 0, nil, fmt.Errorf("no op code for event %q", ev.Kind)
	}
	payload, err := toProtoEvent(ev.Payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode %s: %w", ev.Kind, err)
	}
	data, err := proto.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal %s: %w", ev.Kind, err)
	}
	return opCode, data, nil
}

func toProtoEvent(payload any) (proto.Message, error) {
	switch p := payload.(type) {
	case app.PlayersChangedPayload:
		return &pb.PlayersChangedEvent{MatchId: p.MatchID, Players: toProtoPlayers(p.Players)}, nil
	case app.PlayerReadyPayload:
		return &pb.PlayerReadyEvent{PlayerId: p.PlayerID}, nil
	case app.PlayerLeftPayload:
		return &pb.PlayerLeftEvent{MatchId: p.MatchID, PlayerId: p.PlayerID}, nil
	case app.MatchStartedPayload:
		return &pb.MatchStartedEvent{
			Hand:      toProtoCards(p.Hand),
			Players:   toProtoPlayers(p.Players),
			FirstTurn: p.FirstTurn,
		}, nil
	case app.TurnChangedPayload:
		return &pb.TurnChangedEvent{PlayerId: p.PlayerID}, nil
	case app.PlayAcceptedPayload:
		return &pb.PlayAcceptedEvent{PlayerId: p.PlayerID, Cards: toProtoCards(p.Cards), Combo: p.Combo}, nil
	case app.PlayRejectedPayload:
		return &pb.PlayRejectedEvent{PlayerId: p.PlayerID, Reason: p.Reason, Message: p.Message}, nil
	case app.PassAcceptedPayload:
		return &pb.PassAcceptedEvent{PlayerId: p.PlayerID}, nil
	case app.PlayerFinishedPayload:
		return &pb.PlayerFinishedEvent{PlayerId: p.PlayerID}, nil
	case app.RoundResetPayload:
		return &pb.RoundResetEvent{NextTurn: p.NextTurn}, nil
	case app.ScoreDeltaPayload:
		return &pb.ScoreDeltaEvent{
			PlayerId:    p.PlayerID,
			Delta:       int32(p.Delta),
			Reason:      string(p.Reason),
			NewTotal:    p.NewTotal,
			Provisional: p.Provisional,
		}, nil
	case app.MatchOverPayload:
		return &pb.MatchOverEvent{Ranking: p.Ranking, Loser: p.Loser}, nil
	default:
		return nil, fmt.Errorf("unsupported payload %T", payload)
	}
}

func decodePlay(data []byte) ([]domain.Card, error) {
	req := &pb.PlayRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("invalid play request: %w", err)
	}
	if len(req.GetCards()) == 0 {
		return nil, fmt.Errorf("invalid play request: no cards")
	}
	return fromProtoCards(req.GetCards())
}

func toProtoCards(cards []domain.Card) []*pb.Card {
	out := make([]*pb.Card, len(cards))
	for i, c := range cards {
		out[i] = &pb.Card{Suit: pb.Suit(c.Suit), Rank: int32(c.Rank)}
	}
	return out
}

func fromProtoCards(cards []*pb.Card) ([]domain.Card, error) {
	out := make([]domain.Card, len(cards))
	for i, c := range cards {
		card := domain.Card{Suit: domain.Suit(c.GetSuit()), Rank: domain.Rank(c.GetRank())}
		if !card.Valid() {
			return nil, fmt.Errorf("invalid play request: bad card suit=%d rank=%d", c.GetSuit(), c.GetRank())
		}
		out[i] = card
	}
	return out, nil
}

func toProtoPlayers(players []app.PublicPlayer) []*pb.PublicPlayer {
	out := make([]*pb.PublicPlayer, len(players))
	for i, p := range players {
		out[i] = &pb.PublicPlayer{
			Id:        p.ID,
			Name:      p.Name,
			Seat:      int32(p.Seat),
			Ready:     p.Ready,
			CardCount: int32(p.CardCount),
			Finished:  p.Finished,
			Score:     p.Score,
		}
	}
	return out
}

// buildLabel renders the searchable match label, e.g.
// {"game":"tienlen","open":3,"phase":"forming","players":1}.
func buildLabel(s app.RoomSummary) (string, error) {
	open := s.MaxSeats - len(s.Players)
	if s.Phase != app.PhaseForming {
		open = 0
	}
	label, err := structpb.NewStruct(map[string]interface{}{
		labelKeyGame:  labelGameName,
		labelKeyOpen:  open,
		labelKeyPhase: string(s.Phase),
		"players":     len(s.Players),
	})
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
