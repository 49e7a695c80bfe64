package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// detailModel renders the decrypted payload of one record.
type detailModel struct {
	record models.PlainRecord
	status string
}

func (m detailModel) View() string {
	out := fmt.Sprintf("Запись %s\n\n", m.record.ID)
	out += string(m.record.Data.Expose())
	out += "\n\n"
	out += fmt.Sprintf("Изменено: %s\n", m.record.UpdatedAt.Format("2006-01-02 15:04"))
	out += "\ne редакт.  d удалить  c копировать  esc назад"

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
