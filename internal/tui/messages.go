package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// NavigateTo switches the RootModel to another page, optionally delivering a
// payload message to it.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// UnlockResult finishes the wallet unlock flow.
type UnlockResult struct {
	Wallet *crypto.Wallet
	Err    error
}

type groupsLoadedMsg struct {
	groups []models.Group
	err    error
}

type conversationLoadedMsg struct {
	key      string
	messages []models.Message
	err      error
}

type messageSentMsg struct {
	message models.Message
	err     error
}

type txSubmittedMsg struct {
	action string
	txHash string
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
