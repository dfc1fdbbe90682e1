// Package tui is the terminal frontend of the FHETalk client: wallet
// unlock, group list and encrypted conversations, built on Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/service"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// ErrUserQuit reports that the user closed the program from the UI.
var ErrUserQuit = errors.New("user quit")

// TUI drives the two interactive flows of the client: unlocking the wallet
// and the chat main loop. The chat dependencies are bound per MainLoop call
// because the messaging stack only exists once a wallet is unlocked.
type TUI struct {
	keystore  crypto.WalletKeystore
	buildInfo models.AppBuildInfo
	log       *logger.Logger
}

// New assembles the TUI. The logger is optional.
func New(keystore crypto.WalletKeystore, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		keystore:  keystore,
		buildInfo: buildInfo,
		log:       log,
	}
}

// UnlockFlow runs the wallet unlock (or first-run create) screen and returns
// the unlocked wallet.
func (t *TUI) UnlockFlow(ctx context.Context) (*crypto.Wallet, error) {
	pages := map[string]tea.Model{
		"unlock": newUnlockModel(t.keystore),
	}

	root := NewRootModel(pages, "unlock", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	return result.resultWallet, nil
}

// MainLoop runs the chat screen until the user quits.
func (t *TUI) MainLoop(ctx context.Context, wallet *crypto.Wallet, messaging service.MessagingService, client service.FhevmClient) error {
	model := newChatModel(ctx, messaging, client, wallet.Address())
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return runErr
}
