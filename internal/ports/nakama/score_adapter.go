package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
)

// ScoreWalletKey is the wallet currency that holds a player's running score.
const ScoreWalletKey = "score"

// walletModule is the part of runtime.NakamaModule the score adapter uses.
type walletModule interface {
	AccountGetId(ctx context.Context, userID string) (*api.Account, error)
	WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error)
}

// WalletScores implements ports.ScorePort on top of Nakama wallets.
type WalletScores struct {
	nk      walletModule
	matchID string
}

// NewWalletScores creates a score adapter. matchID is recorded in the wallet ledger.
func NewWalletScores(nk walletModule, matchID string) *WalletScores {
	return &WalletScores{nk: nk, matchID: matchID}
}

// GetScore reads the score entry of the player's wallet.
func (a *WalletScores) GetScore(ctx context.Context, userID string) (int64, error) {
	account, err := a.nk.AccountGetId(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if account.GetWallet() == "" {
		return 0, nil
	}

	var wallet map[string]int64
	if err := json.Unmarshal([]byte(account.GetWallet()), &wallet); err != nil {
		return 0, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}
	return wallet[ScoreWalletKey], nil
}

// AddScore applies delta to the player's wallet and writes a ledger entry.
func (a *WalletScores) AddScore(ctx context.Context, userID string, delta int64) error {
	if delta == 0 {
		return nil
	}
	changes := map[string]int64{ScoreWalletKey: delta}
	metadata := map[string]interface{}{
		"match_id": a.matchID,
		"reason":   "tienlen_score",
	}
	if _, _, err := a.nk.WalletUpdate(ctx, userID, changes, metadata, true); err != nil {
		return fmt.Errorf("failed to update wallet for user %s: %w", userID, err)
	}
	return nil
}
