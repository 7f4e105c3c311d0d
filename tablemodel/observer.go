package tablemodel

import (
	"github.com/google/uuid"
)

// Observer receives structural change notifications from a TableModel.
//
// RowsAboutToBeInserted announces the insert range before the fetch
// traverses the store, sized with the optimistic estimate (it assumes
// no further deleted records inside the batch). RowsInserted closes the
// bracket with the range actually appended, which can be shorter and
// even empty: both ranges are inclusive, so zero appended rows arrive
// as last == first-1.
type Observer interface {
	RowsAboutToBeInserted(first, last int)
	RowsInserted(first, last int)
	CellChanged(row, column int)
	HeaderChanged(axis Axis, section int)
}

// Subscribe registers an observer and returns the handle to remove it.
func (m *TableModel) Subscribe(observer Observer) string {
	id := uuid.New().String()
	m.observers[id] = observer
	return id
}

func (m *TableModel) Unsubscribe(id string) {
	delete(m.observers, id)
}

func (m *TableModel) notifyRowsAboutToBeInserted(first, last int) {
	for _, observer := range m.observers {
		observer.RowsAboutToBeInserted(first, last)
	}
}

func (m *TableModel) notifyRowsInserted(first, last int) {
	for _, observer := range m.observers {
		observer.RowsInserted(first, last)
	}
}

func (m *TableModel) notifyCellChanged(row, column int) {
	for _, observer := range m.observers {
		observer.CellChanged(row, column)
	}
}

func (m *TableModel) notifyHeaderChanged(axis Axis, section int) {
	for _, observer := range m.observers {
		observer.HeaderChanged(axis, section)
	}
}
