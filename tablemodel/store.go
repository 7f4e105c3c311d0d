package tablemodel

import (
	"github.com/dbfkit/dbfkit/dbf"
)

// Store is the sequential record store behind a TableModel. *dbf.Table
// satisfies it, tests plug in their own.
type Store interface {
	IsOpen() bool
	OpenMode() dbf.OpenMode
	FieldCount() int
	FieldName(column int) string

	// Size is the total physical record count, deleted included.
	Size() int

	Seek(position int) bool
	Next() bool
	At() int
	CurrentRecord() dbf.Record

	UpdateRecord(record dbf.Record) bool
}
