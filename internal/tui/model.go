package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leadtrack-dev/leadtrack/internal/activity"
	"github.com/leadtrack-dev/leadtrack/internal/contacts"
	"github.com/leadtrack-dev/leadtrack/internal/lifecycle"
	"github.com/leadtrack-dev/leadtrack/internal/session"
)

// Deps holds the collaborators the dashboard drives. All lifecycle
// decisions happen in Engine; the model only renders and routes keys.
type Deps struct {
	Store   *contacts.Store
	Session *session.Session
	Engine  *lifecycle.Engine
	Log     *activity.Log
}

// followupGeneratedMsg reports the outcome of a generate-follow-up call.
type followupGeneratedMsg struct {
	index int
	text  string
	err   error
}

// contactItem adapts a contact row for the list component.
type contactItem struct {
	contact contacts.Contact
	state   lifecycle.State
}

func (i contactItem) Title() string {
	return i.contact.Name
}

func (i contactItem) Description() string {
	return fmt.Sprintf("%s at %s - %s", i.contact.Title, i.contact.Company, i.state)
}

func (i contactItem) FilterValue() string {
	return i.contact.Name
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	deps Deps

	// table is the session's working copy; actions mutate rows in place
	// through the engine. Row index == contact Index by construction.
	table []contacts.Contact

	contactList list.Model
	search      textinput.Model
	detail      viewport.Model

	// companies drives the scope selector: AllCompanies first.
	companies  []string
	companyIdx int
	dueOnly    bool

	// justSent marks contacts sent this render cycle; it feeds the
	// generation-eligibility predicate.
	justSent map[int]bool

	searching    bool
	generating   bool
	showActivity bool
	status       string
	statusErr    bool

	width  int
	height int
}

// NewModel builds the dashboard over the loaded (and log-rebuilt) table.
func NewModel(deps Deps, table []contacts.Contact) *Model {
	companies := append([]string{contacts.AllCompanies}, contacts.Companies(table)...)

	search := textinput.New()
	search.Placeholder = "search name, title or company"
	search.CharLimit = 64

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Contacts"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false) // scope + search replace list filtering
	l.SetShowStatusBar(false)

	m := &Model{
		deps:        deps,
		table:       table,
		contactList: l,
		search:      search,
		detail:      viewport.New(0, 0),
		companies:   companies,
		justSent:    make(map[int]bool),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := msg.Width / 3
		contentHeight := msg.Height - 6
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.contactList.SetSize(listWidth, contentHeight)
		m.detail.Width = msg.Width - listWidth - 6
		m.detail.Height = contentHeight
		m.renderDetail()
		return m, nil

	case followupGeneratedMsg:
		m.generating = false
		if msg.err != nil {
			// State is untouched; the action can simply be retried.
			m.setStatus(msg.err.Error(), true)
		} else {
			m.deps.Engine.EditFollowup(&m.table[msg.index], msg.text)
			// A draft now exists; the contact no longer counts as just
			// marked sent for generation eligibility.
			delete(m.justSent, msg.index)
			m.setStatus("Follow-up message generated.", false)
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refresh()
		return m, nil
	case KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC, "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case KeyTab:
		m.companyIdx = (m.companyIdx + 1) % len(m.companies)
		m.refresh()
		return m, nil

	case "f":
		m.dueOnly = !m.dueOnly
		m.refresh()
		return m, nil

	case "a":
		m.showActivity = !m.showActivity
		m.renderDetail()
		return m, nil

	case "s":
		return m.markSent()

	case "g":
		return m.generateFollowup()

	case "z":
		return m.snooze()

	case "c":
		return m.copyMessage(false)

	case "C":
		return m.copyMessage(true)

	case KeyCtrlS, "w":
		return m.save()
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	m.renderDetail()
	return m, cmd
}

func (m *Model) markSent() (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil || m.generating {
		return m, nil
	}
	if c.OutreachSent() {
		m.setStatus(fmt.Sprintf("%s is already marked as sent.", c.Name), false)
		return m, nil
	}
	_, created := m.deps.Engine.MarkSent(c, time.Now())
	if created {
		m.justSent[c.Index] = true
		m.setStatus(fmt.Sprintf("Marked as sent. Follow-up scheduled for %s.", c.NextFollowupDate), false)
	}
	m.refresh()
	return m, nil
}

func (m *Model) generateFollowup() (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil || m.generating {
		return m, nil
	}
	if !m.deps.Engine.CanGenerateFollowup(c, m.justSent[c.Index], time.Now()) {
		m.setStatus("Follow-up generation not needed right now.", false)
		return m, nil
	}
	m.generating = true
	m.setStatus(fmt.Sprintf("Generating follow-up for %s...", c.Name), false)
	engine := m.deps.Engine
	index := c.Index
	snapshot := *c
	return m, func() tea.Msg {
		// Generation is side-effect free: it reads the snapshot and
		// returns text, so nothing shared with the update loop is
		// touched until the message lands and EditFollowup applies the
		// draft there.
		text, err := engine.GenerateFollowup(context.Background(), &snapshot)
		return followupGeneratedMsg{index: index, text: text, err: err}
	}
}

func (m *Model) snooze() (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil || m.generating {
		return m, nil
	}
	if !c.OutreachSent() {
		m.setStatus("Nothing to snooze: outreach not sent yet.", false)
		return m, nil
	}
	date, err := m.deps.Engine.Snooze(c, time.Now())
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Snoozed. Next follow-up set for %s.", date), false)
	m.refresh()
	return m, nil
}

func (m *Model) copyMessage(followup bool) (tea.Model, tea.Cmd) {
	c := m.selected()
	if c == nil {
		return m, nil
	}
	text := c.OutreachMessage
	label := "Initial outreach message"
	if followup {
		text = c.FollowupMessage
		label = "Follow-up message"
	}
	if strings.TrimSpace(text) == "" {
		m.setStatus("Nothing to copy.", false)
		return m, nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.setStatus(fmt.Sprintf("Clipboard unavailable: %v", err), true)
		return m, nil
	}
	m.setStatus(label+" copied to clipboard.", false)
	return m, nil
}

func (m *Model) save() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	// Reconcile once more so overlay state not yet applied to the table
	// (none in practice, since actions mutate rows in place) is merged
	// before the wholesale rewrite.
	m.deps.Session.Reconcile(m.table)
	if err := m.deps.Store.Save(m.table); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.deps.Session.Clear()
	m.setStatus("All updates saved.", false)
	m.refresh()
	return m, nil
}

// selected returns the working-table row for the highlighted list item.
func (m *Model) selected() *contacts.Contact {
	item, ok := m.contactList.SelectedItem().(contactItem)
	if !ok {
		return nil
	}
	idx := item.contact.Index
	if idx < 0 || idx >= len(m.table) {
		return nil
	}
	return &m.table[idx]
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// currentFilter builds the Filter for the active scope, search text and
// due-only toggle.
func (m *Model) currentFilter() contacts.Filter {
	f := contacts.Filter{
		Company: m.companies[m.companyIdx],
		Search:  m.search.Value(),
	}
	if m.dueOnly {
		f.Followup = contacts.FollowupDue
	}
	return f
}

// refresh recomputes the visible view from the working table. Status is
// derived fresh every pass; nothing is cached between renders.
func (m *Model) refresh() {
	today := time.Now()
	view := contacts.Apply(m.table, m.currentFilter(), today)

	items := make([]list.Item, len(view))
	for i, c := range view {
		state, _ := lifecycle.Derive(&c, today)
		items[i] = contactItem{contact: c, state: state}
	}
	m.contactList.SetItems(items)
	m.renderDetail()
}

func (m *Model) renderDetail() {
	if m.showActivity {
		m.detail.SetContent(m.renderActivity())
		return
	}
	c := m.selected()
	if c == nil {
		m.detail.SetContent(DimStyle.Render("Select a contact to view details."))
		return
	}

	today := time.Now()
	state, warn := lifecycle.Derive(c, today)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", TitleStyle.Render(c.Name))
	fmt.Fprintf(&b, "%s at %s\n", c.Title, c.Company)
	fmt.Fprintf(&b, "%s\n\n", DimStyle.Render(c.LinkedInURL))
	fmt.Fprintf(&b, "Channel: %s    Status: %s\n", c.OutreachMethod, state)
	if warn != nil {
		fmt.Fprintf(&b, "%s\n", WarningStyle.Render("Warning: "+warn.Error()))
	}

	switch state {
	case lifecycle.StateFollowupDue:
		fmt.Fprintf(&b, "%s\n", WarningStyle.Render("Time to follow up!"))
	case lifecycle.StateContactedWaiting:
		if days, err := c.DaysUntilFollowup(today); err == nil && days > 0 {
			fmt.Fprintf(&b, "%d days until follow-up.\n", days)
		}
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", TitleStyle.Render("Initial Message"), messageOrPlaceholder(c.OutreachMessage))
	fmt.Fprintf(&b, "\n%s\n%s\n", TitleStyle.Render("Follow-Up Message"), messageOrPlaceholder(c.FollowupMessage))

	m.detail.SetContent(b.String())
}

func (m *Model) renderActivity() string {
	entries := m.deps.Log.Entries()
	if len(entries) == 0 {
		return DimStyle.Render("No outreach activity yet.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", TitleStyle.Render("Activity"))
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s\n", e.Timestamp.Format(contacts.DateLayout), e.Message)
	}
	return b.String()
}

func messageOrPlaceholder(text string) string {
	if strings.TrimSpace(text) == "" {
		return DimStyle.Render("(none)")
	}
	return text
}

// View implements tea.Model.
func (m *Model) View() string {
	today := time.Now()
	total := len(m.table)
	sent := len(contacts.Apply(m.table, contacts.Filter{Outreach: contacts.OutreachSent}, today))
	due := len(contacts.Apply(m.table, contacts.Filter{Followup: contacts.FollowupDue}, today))

	header := fmt.Sprintf("%s  %s",
		TitleStyle.Render("Lead Outreach Dashboard"),
		DimStyle.Render(fmt.Sprintf("%s | %d leads, %d sent, %d due", m.companies[m.companyIdx], total, sent, due)))
	if m.deps.Session.Pending() {
		header += " " + WarningStyle.Render("[unsaved]")
	}

	searchLine := ""
	if m.searching || m.search.Value() != "" {
		searchLine = m.search.View() + "\n"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.contactList.View(),
		BoxStyle.Render(m.detail.View()),
	)

	statusLine := m.status
	if m.statusErr {
		statusLine = ErrorStyle.Render(statusLine)
	} else if statusLine != "" {
		statusLine = SuccessStyle.Render(statusLine)
	}

	help := DimStyle.Render("tab: company  /: search  f: due only  s: sent  g: follow-up  z: snooze  c/C: copy  w: save  a: activity  q: quit")

	return fmt.Sprintf("%s\n%s%s\n%s\n%s\n", header, searchLine, body, statusLine, help)
}
