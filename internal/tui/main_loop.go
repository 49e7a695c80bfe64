package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/facade"
	"github.com/MKhiriev/go-pass-keeper/internal/session"
	"github.com/MKhiriev/go-pass-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type loopScreen int

const (
	loopScreenVaults loopScreen = iota
	loopScreenRecords
	loopScreenRecordDetail
	loopScreenVaultForm
	loopScreenRecordForm
)

type deleteKind int

const (
	deleteKindVault deleteKind = iota
	deleteKindRecord
)

type mainLoopModel struct {
	ctx       context.Context
	unlocked  *session.UnlockedSession
	facade    *facade.Core
	buildInfo models.AppBuildInfo

	screen loopScreen

	vaultRows []models.PlainVault
	vaults    listModel

	recordRows []models.PlainRecord
	records    listModel
	curVault   models.PlainVault

	detail detailModel

	vaultForm  vaultFormModel
	recordForm recordFormModel

	showConfirm   bool
	confirmMsg    string
	pendingDelete deleteKind
	pendingID     uuid.UUID

	showError    bool
	errorOverlay errorOverlayModel

	status string
	logout bool
}

func newMainLoopModel(ctx context.Context, unlocked *session.UnlockedSession, buildInfo models.AppBuildInfo) mainLoopModel {
	vaults := newListModel("GoPassKeeper — хранилища")
	return mainLoopModel{
		ctx:       ctx,
		unlocked:  unlocked,
		facade:    unlocked.Facade(),
		buildInfo: buildInfo,
		screen:    loopScreenVaults,
		vaults:    vaults,
	}
}

type vaultsLoadedMsg struct {
	vaults []models.PlainVault
	err    error
}

type recordsLoadedMsg struct {
	records []models.PlainRecord
	err     error
}

type vaultSavedMsg struct{ err error }
type vaultDeletedMsg struct{ err error }
type recordSavedMsg struct{ err error }
type recordDeletedMsg struct{ err error }
type syncDoneMsg struct{ err error }
type copiedMsg struct{}
type clearStatusMsg struct{}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadVaults()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(keyMsg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdConfirmDelete()
			}
			if key.Matches(keyMsg, keys.no) || key.Matches(keyMsg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case vaultsLoadedMsg:
		m.vaults.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.vaultRows = msg.vaults
		m.vaults.rows = make([]listRow, len(msg.vaults))
		for i, v := range msg.vaults {
			m.vaults.rows[i] = listRow{id: v.ID, title: string(v.Name.Expose())}
		}
		m.clampIdx(&m.vaults.idx, len(m.vaults.rows))
		return m, nil

	case recordsLoadedMsg:
		m.records.loading = false
		if msg.err != nil {
			return m.withError(msg.err), nil
		}
		m.recordRows = msg.records
		m.records.rows = make([]listRow, len(msg.records))
		for i, r := range msg.records {
			m.records.rows[i] = listRow{id: r.ID, title: recordPreview(r)}
		}
		m.clampIdx(&m.records.idx, len(m.records.rows))
		return m, nil

	case syncDoneMsg:
		m.vaults.sync.running = false
		if msg.err != nil {
			m.status = "Сервер недоступен, синхронизация будет выполнена позже"
		} else {
			m.status = "Синхронизация завершена"
		}
		return m, tea.Batch(m.cmdLoadVaults(), cmdClearStatus())

	case vaultSavedMsg, vaultDeletedMsg:
		m.vaultForm.submitting = false
		if err := errOf(msg); err != nil {
			return m.withError(err), nil
		}
		m.screen = loopScreenVaults
		return m, m.cmdLoadVaults()

	case recordSavedMsg, recordDeletedMsg:
		m.recordForm.submitting = false
		if err := errOf(msg); err != nil {
			return m.withError(err), nil
		}
		m.screen = loopScreenRecords
		return m, m.cmdLoadRecords(m.curVault.ID)

	case copiedMsg:
		m.status = "Скопировано!"
		m.detail.status = "Скопировано!"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		m.detail.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.vaults.sync.running {
			var cmd tea.Cmd
			m.vaults.sync.spinner, cmd = m.vaults.sync.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.screen {
	case loopScreenVaults:
		return m.updateVaults(msg)
	case loopScreenRecords:
		return m.updateRecords(msg)
	case loopScreenRecordDetail:
		return m.updateDetail(msg)
	case loopScreenVaultForm:
		return m.updateVaultForm(msg)
	case loopScreenRecordForm:
		return m.updateRecordForm(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case loopScreenVaults:
		body = m.vaults.View() + "\n\nn новое  e переим.  d удалить  enter открыть  s синхр.  l выход из сессии  q выход"
	case loopScreenRecords:
		body = m.records.View() + "\n\nhранилище: " + string(m.curVault.Name.Expose()) + "\n\nn новая  enter открыть  esc назад  q выход"
	case loopScreenRecordDetail:
		body = m.detail.View()
	case loopScreenVaultForm:
		body = m.vaultForm.View()
	case loopScreenRecordForm:
		body = m.recordForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + confirmModel{message: m.confirmMsg}.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m mainLoopModel) updateVaults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.vaults.idx > 0 {
			m.vaults.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.vaults.idx < len(m.vaults.rows)-1 {
			m.vaults.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		row, found := m.vaults.current()
		if !found {
			return m, nil
		}
		m.curVault = m.vaultRows[m.vaults.idx]
		m.screen = loopScreenRecords
		m.records = newListModel("Записи")
		return m, m.cmdLoadRecords(row.id)
	case key.Matches(keyMsg, keys.newItem):
		m.vaultForm = newVaultFormModel(uuid.Nil, "")
		m.screen = loopScreenVaultForm
	case key.Matches(keyMsg, keys.edit):
		row, found := m.vaults.current()
		if !found {
			return m, nil
		}
		m.vaultForm = newVaultFormModel(row.id, row.title)
		m.screen = loopScreenVaultForm
	case key.Matches(keyMsg, keys.delete):
		row, found := m.vaults.current()
		if !found {
			return m, nil
		}
		m.showConfirm = true
		m.confirmMsg = row.title
		m.pendingDelete = deleteKindVault
		m.pendingID = row.id
	case key.Matches(keyMsg, keys.sync):
		if m.vaults.sync.running {
			return m, nil
		}
		m.vaults.sync.running = true
		return m, tea.Batch(m.vaults.sync.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = loopScreenVaults
	case key.Matches(keyMsg, keys.up):
		if m.records.idx > 0 {
			m.records.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.records.idx < len(m.records.rows)-1 {
			m.records.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.records.idx < 0 || m.records.idx >= len(m.recordRows) {
			return m, nil
		}
		m.detail = detailModel{record: m.recordRows[m.records.idx]}
		m.screen = loopScreenRecordDetail
	case key.Matches(keyMsg, keys.newItem):
		m.recordForm = newRecordFormModel(uuid.Nil, "")
		m.screen = loopScreenRecordForm
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = loopScreenRecords
	case key.Matches(keyMsg, keys.edit):
		m.recordForm = newRecordFormModel(m.detail.record.ID, string(m.detail.record.Data.Expose()))
		m.screen = loopScreenRecordForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirmMsg = "запись"
		m.pendingDelete = deleteKindRecord
		m.pendingID = m.detail.record.ID
	case key.Matches(keyMsg, keys.copy):
		text := string(m.detail.record.Data.Expose())
		return m, cmdCopyToClipboard(text)
	}

	return m, nil
}

func (m mainLoopModel) updateVaultForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = loopScreenVaults
			return m, nil
		case "enter":
			name := m.vaultForm.input.Value()
			if name == "" {
				return m, nil
			}
			m.vaultForm.submitting = true
			return m, m.cmdSaveVault(m.vaultForm.editingID, name)
		}
	}

	var cmd tea.Cmd
	m.vaultForm.input, cmd = m.vaultForm.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateRecordForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.recordForm.editing {
				m.screen = loopScreenRecordDetail
			} else {
				m.screen = loopScreenRecords
			}
			return m, nil
		case "ctrl+s":
			data := m.recordForm.area.Value()
			m.recordForm.submitting = true
			return m, m.cmdSaveRecord(m.recordForm.editingID, data)
		}
	}

	var cmd tea.Cmd
	m.recordForm.area, cmd = m.recordForm.area.Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdLoadVaults() tea.Cmd {
	ctx := m.ctx
	f := m.facade
	return func() tea.Msg {
		vaults, err := f.ListVaults(ctx)
		return vaultsLoadedMsg{vaults: vaults, err: err}
	}
}

func (m mainLoopModel) cmdLoadRecords(vaultID uuid.UUID) tea.Cmd {
	ctx := m.ctx
	f := m.facade
	return func() tea.Msg {
		records, err := f.ListRecords(ctx, vaultID)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	unlocked := m.unlocked
	return func() tea.Msg {
		return syncDoneMsg{err: unlocked.SyncOnce(ctx)}
	}
}

func (m mainLoopModel) cmdSaveVault(id uuid.UUID, name string) tea.Cmd {
	ctx := m.ctx
	f := m.facade
	return func() tea.Msg {
		var err error
		if id == uuid.Nil {
			_, err = f.CreateVault(ctx, name)
		} else {
			_, err = f.UpdateVault(ctx, id, name)
		}
		return vaultSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSaveRecord(id uuid.UUID, data string) tea.Cmd {
	ctx := m.ctx
	f := m.facade
	vaultID := m.curVault.ID
	return func() tea.Msg {
		var err error
		if id == uuid.Nil {
			_, err = f.CreateRecord(ctx, vaultID, []byte(data))
		} else {
			_, err = f.UpdateRecord(ctx, vaultID, id, []byte(data))
		}
		return recordSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdConfirmDelete() tea.Cmd {
	ctx := m.ctx
	f := m.facade
	id := m.pendingID
	vaultID := m.curVault.ID

	switch m.pendingDelete {
	case deleteKindVault:
		return func() tea.Msg {
			return vaultDeletedMsg{err: f.DeleteVault(ctx, id)}
		}
	default:
		return func() tea.Msg {
			return recordDeletedMsg{err: f.DeleteRecord(ctx, vaultID, id)}
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return recordSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m mainLoopModel) withError(err error) mainLoopModel {
	m.showError = true
	m.errorOverlay.message = err.Error()
	return m
}

func (m *mainLoopModel) clampIdx(idx *int, n int) {
	if *idx >= n {
		*idx = n - 1
	}
	if *idx < 0 {
		*idx = 0
	}
}

func recordPreview(r models.PlainRecord) string {
	text := string(r.Data.Expose())
	return fitText(text, 60)
}

func errOf(msg tea.Msg) error {
	switch v := msg.(type) {
	case vaultSavedMsg:
		return v.err
	case vaultDeletedMsg:
		return v.err
	case recordSavedMsg:
		return v.err
	case recordDeletedMsg:
		return v.err
	default:
		return nil
	}
}
