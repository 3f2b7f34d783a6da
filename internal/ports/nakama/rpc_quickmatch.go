package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"tienlen-server/internal/app"
	"tienlen-server/internal/config"
)

// QuickMatchResponse is the payload returned to clients when requesting a forming match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// matchFinder is the part of runtime.NakamaModule quick match needs.
type matchFinder interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch)
}

func quickMatchQuery() string {
	return fmt.Sprintf("+label.%s:%s +label.%s:%s +label.%s:>=1",
		labelKeyGame, labelGameName, labelKeyPhase, app.PhaseForming, labelKeyOpen)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return quickMatch(ctx, logger, nk, config.GetGameConfig().ListLimit())
}

func quickMatch(ctx context.Context, logger runtime.Logger, nk matchFinder, limit int) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	minSize := 1
	maxSize := app.MaxSeats - 1

	matches, err := nk.MatchList(ctx, limit, true, "", &minSize, &maxSize, quickMatchQuery())
	if err != nil {
		logger.Error("QuickMatch [User:%s]: MatchList error: %v", userID, err)
		return "", err
	}

	resp := QuickMatchResponse{}
	if len(matches) > 0 {
		resp.MatchID = matches[0].GetMatchId()
		logger.Info("QuickMatch [User:%s]: Found existing match %s", userID, resp.MatchID)
	} else {
		// Seat assignment happens in MatchJoin.
		matchID, err := nk.MatchCreate(ctx, MatchNameTienLen, map[string]interface{}{})
		if err != nil {
			logger.Error("QuickMatch [User:%s]: MatchCreate error: %v", userID, err)
			return "", err
		}
		resp = QuickMatchResponse{MatchID: matchID, IsNew: true}
		logger.Info("QuickMatch [User:%s]: Created new match %s", userID, matchID)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
