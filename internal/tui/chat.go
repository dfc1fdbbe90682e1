// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/internal/service"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

type chatMode int

const (
	modeGroups chatMode = iota
	modeConversation
	modePrompt
)

type promptKind int

const (
	promptNone promptKind = iota
	promptCreateGroup
	promptJoinGroup
	promptDirect
)

// chatModel is the main screen: the group list on start, a conversation once
// one is opened, and a one-line prompt for group creation, joining and DMs.
type chatModel struct {
	ctx           context.Context
	messaging     service.MessagingService
	client        service.FhevmClient
	walletAddress string

	mode chatMode

	groups   []models.Group
	groupIdx int
	loading  bool

	// current conversation
	kind      models.MessageKind
	groupID   uint64
	peer      string
	convTitle string
	messages  []models.Message
	msgIdx    int
	sending   bool

	input  textinput.Model
	prompt textinput.Model
	after  promptKind

	status string
	errMsg string
}

func newChatModel(ctx context.Context, messaging service.MessagingService, client service.FhevmClient, walletAddress string) chatModel {
	input := textinput.New()
	input.Placeholder = "value to send (number)"
	input.CharLimit = 10
	input.Width = 40

	prompt := textinput.New()
	prompt.CharLimit = 64
	prompt.Width = 48

	return chatModel{
		ctx:           ctx,
		messaging:     messaging,
		client:        client,
		walletAddress: strings.ToLower(walletAddress),
		input:         input,
		prompt:        prompt,
		loading:       true,
	}
}

// Init implements [tea.Model]: load the cached group list immediately and
// refresh it from the chain.
func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRefreshGroups())
}

// Update implements [tea.Model].
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case groupsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.groups = msg.groups
		if m.groupIdx >= len(m.groups) {
			m.groupIdx = 0
		}
		return m, nil

	case conversationLoadedMsg:
		if msg.key != m.conversationKey() {
			return m, nil // stale load for a conversation we already left
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.messages = msg.messages
		if len(m.messages) > 0 {
			m.msgIdx = len(m.messages) - 1
		}
		return m, nil

	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.input.SetValue("")
		m.messages = append(m.messages, msg.message)
		m.msgIdx = len(m.messages) - 1
		return m.setStatus("sent")

	case txSubmittedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		model, cmd := m.setStatus(msg.action + " submitted: " + shortAddress(msg.txHash))
		return model, tea.Batch(cmd, m.cmdRefreshGroups())

	case copiedMsg:
		return m.setStatus("copied to clipboard")

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeGroups:
			return m.updateGroups(msg)
		case modeConversation:
			return m.updateConversation(msg)
		case modePrompt:
			return m.updatePrompt(msg)
		}
	}

	return m, nil
}

func (m chatModel) updateGroups(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.groupIdx > 0 {
			m.groupIdx--
		}

	case key.Matches(msg, keys.down):
		if m.groupIdx < len(m.groups)-1 {
			m.groupIdx++
		}

	case key.Matches(msg, keys.refresh):
		m.loading = true
		return m, m.cmdRefreshGroups()

	case key.Matches(msg, keys.enter):
		if len(m.groups) == 0 {
			return m, nil
		}
		group := m.groups[m.groupIdx]
		return m.openGroup(group)

	case key.Matches(msg, keys.newItem):
		return m.openPrompt(promptCreateGroup, "group name")

	case key.Matches(msg, keys.join):
		return m.openPrompt(promptJoinGroup, "group id")

	case key.Matches(msg, keys.direct):
		return m.openPrompt(promptDirect, "peer address (0x...)")
	}

	return m, nil
}

func (m chatModel) updateConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeGroups
		m.input.Blur()
		m.messages = nil
		m.errMsg = ""
		return m, nil

	case "up":
		if m.msgIdx > 0 {
			m.msgIdx--
		}
		return m, nil

	case "down":
		if m.msgIdx < len(m.messages)-1 {
			m.msgIdx++
		}
		return m, nil

	case "ctrl+r":
		m.loading = true
		return m, m.cmdLoadConversation()

	case "ctrl+o":
		if len(m.messages) == 0 {
			return m, nil
		}
		return m, cmdCopy(m.messages[m.msgIdx].Handle)

	case "ctrl+u":
		if len(m.messages) == 0 {
			return m, nil
		}
		return m, cmdCopy(m.messages[m.msgIdx].Sender)

	case "enter":
		if m.sending {
			return m, nil
		}

		raw := strings.TrimSpace(m.input.Value())
		if raw == "" {
			return m, nil
		}
		value, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			m.errMsg = "Only numeric values can be sent"
			return m, nil
		}

		m.errMsg = ""
		m.sending = true
		return m, m.cmdSend(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = modeGroups
		m.prompt.Blur()
		m.errMsg = ""
		return m, nil

	case "enter":
		raw := strings.TrimSpace(m.prompt.Value())
		if raw == "" {
			return m, nil
		}

		after := m.after
		m.mode = modeGroups
		m.prompt.Blur()
		m.prompt.SetValue("")

		switch after {
		case promptCreateGroup:
			return m, m.cmdCreateGroup(raw)
		case promptJoinGroup:
			groupID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				m.errMsg = "Group id must be a number"
				return m, nil
			}
			return m, m.cmdJoinGroup(groupID)
		case promptDirect:
			return m.openDirect(raw)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m chatModel) View() string {
	switch m.mode {
	case modeConversation:
		return m.viewConversation()
	case modePrompt:
		return m.viewPrompt()
	default:
		return m.viewGroups()
	}
}

func (m chatModel) viewGroups() string {
	var b strings.Builder

	b.WriteString("Wallet: ")
	b.WriteString(shortAddress(m.walletAddress))
	b.WriteString(" │ FHE: ")
	b.WriteString(m.clientStatus())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: "+m.status) + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	switch {
	case m.loading && len(m.groups) == 0:
		b.WriteString("Loading groups...\n")
	case len(m.groups) == 0:
		b.WriteString("No groups yet. Create one with n or join with g.\n")
	default:
		b.WriteString(fmt.Sprintf("%-4s │ %-24s │ %s\n", "ID", "Group", "Creator"))
		b.WriteString(strings.Repeat("─", 4) + "─┼─" + strings.Repeat("─", 24) + "─┼─" + strings.Repeat("─", 14) + "\n")
		for i, group := range m.groups {
			cursor := " "
			if i == m.groupIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-2d │ %-24s │ %s\n",
				cursor, group.ID, fitText(group.Name, 24), shortAddress(group.Creator)))
		}
	}

	return renderPage("FHETALK — GROUPS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ g: join │ d: direct message │ r: refresh │ q: quit")
}

func (m chatModel) viewConversation() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: "+m.status) + "\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	switch {
	case m.loading && len(m.messages) == 0:
		b.WriteString("Syncing conversation...\n")
	case len(m.messages) == 0:
		b.WriteString("No messages yet.\n")
	default:
		for i, message := range m.messages {
			cursor := " "
			if i == m.msgIdx {
				cursor = ">"
			}

			sender := shortAddress(message.Sender)
			if message.Sender == m.walletAddress {
				sender = "you"
			}

			payload := encryptedStyle.Render("[encrypted " + shortAddress(message.Handle) + "]")
			if message.Decrypted() {
				payload = strconv.FormatUint(*message.Value, 10)
			}

			b.WriteString(fmt.Sprintf("%s %s  %-14s %s\n",
				cursor, message.SentAt.Local().Format("15:04"), sender, payload))
		}
	}

	b.WriteString("\n> [")
	b.WriteString(m.input.View())
	b.WriteString("]")
	if m.sending {
		b.WriteString(" sending...")
	}

	return renderPage("FHETALK — "+m.convTitle, strings.TrimRight(b.String(), "\n"),
		"enter: send │ ↑/↓: select │ ctrl+o: copy handle │ ctrl+u: copy sender │ ctrl+r: resync │ esc: back")
}

func (m chatModel) viewPrompt() string {
	var b strings.Builder

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	b.WriteString(m.prompt.Placeholder)
	b.WriteString(": [")
	b.WriteString(m.prompt.View())
	b.WriteString("]")

	return renderPage("FHETALK", b.String(), "enter: confirm │ esc: cancel")
}

func (m chatModel) openGroup(group models.Group) (tea.Model, tea.Cmd) {
	m.mode = modeConversation
	m.kind = models.GroupMessage
	m.groupID = group.ID
	m.peer = ""
	m.convTitle = strings.ToUpper(group.Name)
	m.messages = nil
	m.msgIdx = 0
	m.loading = true
	m.input.Focus()
	return m, tea.Batch(textinput.Blink, m.cmdLoadConversation())
}

func (m chatModel) openDirect(peer string) (tea.Model, tea.Cmd) {
	m.mode = modeConversation
	m.kind = models.DirectMessage
	m.groupID = 0
	m.peer = strings.ToLower(peer)
	m.convTitle = "DM " + shortAddress(peer)
	m.messages = nil
	m.msgIdx = 0
	m.loading = true
	m.input.Focus()
	return m, tea.Batch(textinput.Blink, m.cmdLoadConversation())
}

func (m chatModel) openPrompt(kind promptKind, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = modePrompt
	m.after = kind
	m.prompt.Placeholder = placeholder
	m.prompt.SetValue("")
	m.prompt.Focus()
	m.errMsg = ""
	return m, textinput.Blink
}

func (m chatModel) conversationKey() string {
	message := models.Message{Kind: m.kind, GroupID: m.groupID, Peer: m.peer}
	return message.ConversationKey()
}

func (m chatModel) clientStatus() string {
	switch m.client.State().Status {
	case fhevm.StatusReady:
		return "ready"
	case fhevm.StatusLoading:
		return "loading"
	case fhevm.StatusError:
		return "error"
	default:
		return "idle"
	}
}

func (m chatModel) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── async commands ───────────────────────────────────────────────────────────

func (m chatModel) cmdRefreshGroups() tea.Cmd {
	ctx, messaging := m.ctx, m.messaging
	return func() tea.Msg {
		groups, err := messaging.RefreshGroups(ctx)
		return groupsLoadedMsg{groups: groups, err: err}
	}
}

func (m chatModel) cmdLoadConversation() tea.Cmd {
	ctx, messaging := m.ctx, m.messaging
	kind, groupID, peer, convKey := m.kind, m.groupID, m.peer, m.conversationKey()

	return func() tea.Msg {
		var (
			messages []models.Message
			err      error
		)
		if kind == models.GroupMessage {
			messages, err = messaging.SyncGroupMessages(ctx, groupID)
		} else {
			messages, err = messaging.SyncDirectMessages(ctx, peer)
		}
		return conversationLoadedMsg{key: convKey, messages: messages, err: err}
	}
}

func (m chatModel) cmdSend(value uint64) tea.Cmd {
	ctx, messaging := m.ctx, m.messaging
	kind, groupID, peer := m.kind, m.groupID, m.peer

	return func() tea.Msg {
		var (
			message models.Message
			err     error
		)
		if kind == models.GroupMessage {
			message, err = messaging.SendGroupMessage(ctx, groupID, value)
		} else {
			message, err = messaging.SendDirectMessage(ctx, peer, value)
		}
		return messageSentMsg{message: message, err: err}
	}
}

func (m chatModel) cmdCreateGroup(name string) tea.Cmd {
	ctx, messaging := m.ctx, m.messaging
	return func() tea.Msg {
		txHash, err := messaging.CreateGroup(ctx, name)
		return txSubmittedMsg{action: "create group", txHash: txHash, err: err}
	}
}

func (m chatModel) cmdJoinGroup(groupID uint64) tea.Cmd {
	ctx, messaging := m.ctx, m.messaging
	return func() tea.Msg {
		txHash, err := messaging.JoinGroup(ctx, groupID)
		return txSubmittedMsg{action: "join group", txHash: txHash, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}
