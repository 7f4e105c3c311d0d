package tablemodel

import (
	"fmt"

	"github.com/dbfkit/dbfkit/dbf"
)

// fakeStore is an in-memory Store with switches to simulate the
// failure modes a file would produce.
type fakeStore struct {
	open       bool
	mode       dbf.OpenMode
	fields     []dbf.Field
	records    []dbf.Record
	position   int
	failSeek   bool
	failUpdate bool
	updates    int
}

// newFakeStore builds a store with size records, deleted(i) marks the
// record at position i as deleted.
func newFakeStore(size int, deleted func(position int) bool) *fakeStore {

	fields := []dbf.Field{
		{Name: "NAME", Type: dbf.Character, Length: 10},
		{Name: "AGE", Type: dbf.Numeric, Length: 3},
	}

	s := &fakeStore{
		open:     true,
		mode:     dbf.ReadWrite,
		fields:   fields,
		position: -1,
	}

	for i := 0; i < size; i++ {
		values := []interface{}{
			fmt.Sprintf("person-%d ", i), // trailing space on purpose
			int64(i),
		}
		s.records = append(s.records, dbf.NewRecord(fields, values, deleted(i), i))
	}

	return s
}

func noneDeleted(int) bool { return false }

func (s *fakeStore) IsOpen() bool {
	return s.open
}

func (s *fakeStore) OpenMode() dbf.OpenMode {
	if !s.open {
		return dbf.Closed
	}
	return s.mode
}

func (s *fakeStore) FieldCount() int {
	return len(s.fields)
}

func (s *fakeStore) FieldName(column int) string {
	return s.fields[column].Name
}

func (s *fakeStore) Size() int {
	return len(s.records)
}

func (s *fakeStore) Seek(position int) bool {
	if !s.open || s.failSeek {
		return false
	}
	if position < -1 || position >= len(s.records) {
		return false
	}
	s.position = position
	return true
}

func (s *fakeStore) Next() bool {
	if !s.open || s.position+1 >= len(s.records) {
		return false
	}
	s.position++
	return true
}

func (s *fakeStore) At() int {
	return s.position
}

func (s *fakeStore) CurrentRecord() dbf.Record {
	record := s.records[s.position]
	// detach, same as reading from a file
	return dbf.NewRecord(s.fields, record.Values(), record.IsDeleted(), record.Position())
}

func (s *fakeStore) UpdateRecord(record dbf.Record) bool {
	if !s.open || s.mode != dbf.ReadWrite || s.failUpdate {
		return false
	}
	position := record.Position()
	if position < 0 || position >= len(s.records) {
		return false
	}
	s.records[position] = dbf.NewRecord(s.fields, record.Values(), record.IsDeleted(), position)
	s.updates++
	return true
}

// recorder collects every notification for later inspection.
type recorder struct {
	aboutToInsert [][2]int
	inserted      [][2]int
	cells         [][2]int
	headers       []int
}

func (r *recorder) RowsAboutToBeInserted(first, last int) {
	r.aboutToInsert = append(r.aboutToInsert, [2]int{first, last})
}

func (r *recorder) RowsInserted(first, last int) {
	r.inserted = append(r.inserted, [2]int{first, last})
}

func (r *recorder) CellChanged(row, column int) {
	r.cells = append(r.cells, [2]int{row, column})
}

func (r *recorder) HeaderChanged(axis Axis, section int) {
	r.headers = append(r.headers, section)
}
