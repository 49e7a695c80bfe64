package tui

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// listRow is one selectable line of a [listModel]: an opaque id paired with
// the label shown to the user.
type listRow struct {
	id    uuid.UUID
	title string
}

// listModel renders a cursor-navigable list of rows, shared by the vault
// screen and the record screen of [mainLoopModel].
type listModel struct {
	header  string
	rows    []listRow
	idx     int
	loading bool
	sync    syncModel
	status  string
	lastErr error
}

func newListModel(header string) listModel {
	return listModel{header: header, sync: newSyncModel(), loading: true}
}

func (m listModel) current() (listRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return listRow{}, false
	}
	return m.rows[m.idx], true
}

func (m listModel) View() string {
	header := m.header
	if m.sync.running {
		header += "  " + m.sync.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.rows) == 0 {
		out += "Пусто\n"
	} else {
		for i, row := range m.rows {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, row.title)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\nОшибка: " + m.lastErr.Error() + "\n"
	}

	return strings.TrimRight(out, "\n")
}
