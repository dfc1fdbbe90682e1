// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
)

// unlockModel is the Bubble Tea model for the wallet unlock screen. On a
// fresh install (no keystore file) it switches to create mode and asks for
// the password twice. On submit an async command unlocks or creates the
// wallet and produces an [UnlockResult] handled by [RootModel].
type unlockModel struct {
	keystore crypto.WalletKeystore
	creating bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newUnlockModel(keystore crypto.WalletKeystore) *unlockModel {
	creating := !keystore.Exists()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	inputs := []textinput.Model{passwordInput}
	if creating {
		confirmInput := textinput.New()
		confirmInput.Placeholder = "repeat password"
		confirmInput.CharLimit = 256
		confirmInput.Width = 40
		confirmInput.EchoMode = textinput.EchoPassword
		confirmInput.EchoCharacter = '*'
		inputs = append(inputs, confirmInput)
	}

	return &unlockModel{
		keystore: keystore,
		creating: creating,
		inputs:   inputs,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *unlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [UnlockResult] — clears submitting state; on error, populates errMsg.
//   - tab/shift+tab  — move focus between inputs in create mode.
//   - enter          — validates inputs and dispatches the async command.
//
// All other key events are forwarded to the focused input widget.
func (m *unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = m.humanizeUnlockError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			password := m.inputs[0].Value()
			if password == "" {
				m.errMsg = "Password is required"
				return m, nil
			}
			if m.creating && m.inputs[1].Value() != password {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *unlockModel) View() string {
	var b strings.Builder

	if m.creating {
		b.WriteString("No wallet found, a new one will be created.\n\n")
	}

	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if m.creating {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	label := "[Unlock]"
	if m.creating {
		label = "[Create wallet]"
	}
	if m.submitting {
		label = label[:len(label)-1] + "...]"
	}
	b.WriteString("\n")
	b.WriteString(label)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "UNLOCK WALLET"
	if m.creating {
		title = "CREATE WALLET"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm │ ctrl+v: about")
}

func (m *unlockModel) cmdUnlock(password string) tea.Cmd {
	keystore := m.keystore
	creating := m.creating

	return func() tea.Msg {
		var (
			wallet *crypto.Wallet
			err    error
		)
		if creating {
			wallet, err = keystore.Create(password)
		} else {
			wallet, err = keystore.Unlock(password)
		}
		return UnlockResult{Wallet: wallet, Err: err}
	}
}

func (m *unlockModel) humanizeUnlockError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrWrongPassword):
		return "Wrong password"
	case errors.Is(err, crypto.ErrKeystoreExists):
		return "A wallet already exists, restart to unlock it"
	}
	return err.Error()
}

func (m *unlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *unlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
