package tablemodel

import (
	"strings"

	"github.com/google/btree"

	"github.com/dbfkit/dbfkit/dbf"
)

// Prefetch is the maximum number of live rows appended per FetchMore
// call. It bounds latency and memory growth of a single call, callers
// wanting the whole store just keep calling.
const Prefetch = 255

// Role is the intent behind a cell or header access. Reads with any
// other role yield no value instead of falling through.
type Role int

const (
	RoleDisplay Role = iota
	RoleEdit
)

type Axis int

const (
	AxisColumns Axis = iota
	AxisRows
)

type rowPosition struct {
	position int
	row      int
}

// TableModel is a dense, index-stable row/column view over a
// sequential record store. Rows are fetched incrementally, deleted
// records are skipped and accounted for so that the model knows when
// the store is exhausted. Single-threaded, callers serialize access.
type TableModel struct {
	store Store

	// schema descriptor, captured once at construction
	fieldNames []string

	records             []dbf.Record
	deletedRecordsCount int
	lastRecordIndex     int

	headers []map[Role]interface{}

	// physical record position -> cached row index
	positions *btree.BTreeG[rowPosition]

	observers map[string]Observer
}

// New builds a model over an already opened store and pulls the first
// batch of rows.
func New(store Store) *TableModel {

	m := &TableModel{
		store:           store,
		lastRecordIndex: -1,
		positions: btree.NewG(32, func(a, b rowPosition) bool {
			return a.position < b.position
		}),
		observers: map[string]Observer{},
	}

	m.fieldNames = make([]string, store.FieldCount())
	for i := range m.fieldNames {
		m.fieldNames[i] = store.FieldName(i)
	}

	if m.CanFetchMore() {
		m.FetchMore()
	}

	return m
}

// RowCount is the number of live rows fetched so far.
func (m *TableModel) RowCount() int {
	return len(m.records)
}

func (m *TableModel) ColumnCount() int {
	return len(m.fieldNames)
}

// DeletedRecordsCount is how many deleted records have been skipped
// during all fetches so far.
func (m *TableModel) DeletedRecordsCount() int {
	return m.deletedRecordsCount
}

// CanFetchMore reports whether the store still holds untraversed
// records. Invariant: RowCount + DeletedRecordsCount never exceeds
// store.Size, they are equal once fully fetched.
func (m *TableModel) CanFetchMore() bool {
	return m.store.IsOpen() &&
		len(m.records)+m.deletedRecordsCount < m.store.Size()
}

// FetchMore pulls the next batch of live rows from the store. It is a
// no-op when the store cannot resume from the bookmark or when nothing
// remains. Deleted records are skipped without consuming batch slots.
func (m *TableModel) FetchMore() {

	if !m.store.Seek(m.lastRecordIndex) {
		return
	}

	fetchSize := m.store.Size() - len(m.records) - m.deletedRecordsCount
	if fetchSize > Prefetch {
		fetchSize = Prefetch
	}
	if fetchSize < 1 {
		return
	}

	first := len(m.records)
	m.notifyRowsAboutToBeInserted(first, first+fetchSize-1)

	fetched := 0
	for m.store.Next() {
		record := m.store.CurrentRecord()
		if record.IsDeleted() {
			m.deletedRecordsCount++
			continue
		}
		m.records = append(m.records, record)
		m.positions.ReplaceOrInsert(rowPosition{position: record.Position(), row: len(m.records) - 1})
		m.lastRecordIndex = record.Position()
		fetched++
		if fetched >= fetchSize {
			break
		}
	}

	// the closing range carries the real count, shorter than announced
	// when deleted records showed up inside the batch
	m.notifyRowsInserted(first, first+fetched-1)
}

// Data reads one cell. Out-of-range coordinates or an unsupported role
// yield nil. Edit-role reads of string values are trimmed, display
// returns the stored value untouched.
func (m *TableModel) Data(row, column int, role Role) interface{} {

	if row < 0 || row >= len(m.records) {
		return nil
	}
	if column < 0 || column >= len(m.fieldNames) {
		return nil
	}

	switch role {
	case RoleDisplay, RoleEdit:
	default:
		return nil
	}

	value := m.records[row].Value(column)

	if role == RoleEdit {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s)
		}
	}

	return value
}

// SetData edits one cell and persists the whole record. On persistence
// failure the in-memory value is rolled back and no notification
// fires, the cache never diverges from the store.
func (m *TableModel) SetData(row, column int, value interface{}, role Role) bool {

	if !m.store.IsOpen() || m.store.OpenMode() != dbf.ReadWrite {
		return false
	}
	if role != RoleEdit {
		return false
	}
	if row < 0 || row >= len(m.records) {
		return false
	}
	if column < 0 || column >= len(m.fieldNames) {
		return false
	}

	oldValue := m.records[row].Value(column)
	m.records[row].SetValue(column, value)

	if !m.store.UpdateRecord(m.records[row]) {
		m.records[row].SetValue(column, oldValue)
		return false
	}

	m.notifyCellChanged(row, column)
	return true
}

// Editable reports whether a cell accepts edits: valid coordinates and
// a store opened for writing.
func (m *TableModel) Editable(row, column int) bool {
	if !m.store.IsOpen() || m.store.OpenMode() != dbf.ReadWrite {
		return false
	}
	if row < 0 || row >= len(m.records) {
		return false
	}
	if column < 0 || column >= len(m.fieldNames) {
		return false
	}
	return true
}

// Record returns a copy of the cached record behind a row.
func (m *TableModel) Record(row int) (dbf.Record, bool) {
	if row < 0 || row >= len(m.records) {
		return dbf.Record{}, false
	}
	return m.records[row], true
}

// RowAtPosition maps a physical record position back to its cached row
// index. False when that position is deleted or not fetched yet.
func (m *TableModel) RowAtPosition(position int) (int, bool) {
	item, found := m.positions.Get(rowPosition{position: position})
	if !found {
		return 0, false
	}
	return item.row, true
}

// TraverseRange calls f for every cached row in [from, to). A to
// beyond the cache stops at the last cached row.
func (m *TableModel) TraverseRange(from, to int, f func(row int, record dbf.Record)) {
	if from < 0 {
		from = 0
	}
	for i := from; i < to && i < len(m.records); i++ {
		f(i, m.records[i])
	}
}
