package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"
)

// vaultFormModel edits a vault's name. A zero editingID means "create".
type vaultFormModel struct {
	input      textinput.Model
	editing    bool
	editingID  uuid.UUID
	submitting bool
}

func newVaultFormModel(editingID uuid.UUID, name string) vaultFormModel {
	in := textinput.New()
	in.Placeholder = "название хранилища"
	in.Width = 50
	in.SetValue(name)
	in.Focus()

	return vaultFormModel{input: in, editing: editingID != uuid.Nil, editingID: editingID}
}

func (m vaultFormModel) View() string {
	title := "Новое хранилище"
	if m.editing {
		title = "Переименовать хранилище"
	}

	out := title + "\n\n"
	out += "Название: [" + m.input.View() + "]\n\n"
	if m.submitting {
		out += "[Сохранение...]\n\n"
	}
	out += "esc отмена  enter сохранить"
	return out
}

// recordFormModel edits a record's raw payload as free text. A zero
// editingID means "create".
type recordFormModel struct {
	area       textarea.Model
	editing    bool
	editingID  uuid.UUID
	submitting bool
}

func newRecordFormModel(editingID uuid.UUID, data string) recordFormModel {
	area := textarea.New()
	area.Placeholder = "содержимое записи"
	area.SetWidth(60)
	area.SetHeight(8)
	area.SetValue(data)
	area.Focus()

	return recordFormModel{area: area, editing: editingID != uuid.Nil, editingID: editingID}
}

func (m recordFormModel) View() string {
	title := "Новая запись"
	if m.editing {
		title = "Редактирование записи"
	}

	out := title + "\n\n"
	out += m.area.View() + "\n\n"
	if m.submitting {
		out += "[Сохранение...]\n\n"
	}
	out += "esc отмена  ctrl+s сохранить"
	return out
}
