package dbf

import (
	"os"
	"testing"

	. "github.com/fulldump/biff"
)

func personFields() []Field {
	return []Field{
		{Name: "NAME", Type: Character, Length: 10},
		{Name: "AGE", Type: Numeric, Length: 3},
		{Name: "BALANCE", Type: Numeric, Length: 8, Decimals: 2},
		{Name: "ACTIVE", Type: Logical, Length: 1},
		{Name: "BIRTH", Type: Date, Length: 8},
	}
}

func TestCreateAndOpen(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		AssertNil(Create(filename, personFields()))

		// Run
		table := NewTable(filename)
		AssertNil(table.Open(ReadOnly))
		defer table.Close()

		// Check
		AssertEqual(table.IsOpen(), true)
		AssertEqual(table.OpenMode(), ReadOnly)
		AssertEqual(table.Size(), 0)
		AssertEqual(table.FieldCount(), 5)
		AssertEqual(table.FieldName(0), "NAME")
		AssertEqual(table.FieldName(4), "BIRTH")
		AssertEqual(table.Field(2).Decimals, 2)
		AssertEqual(table.Next(), false)
	})
}

func TestAppendAndTraverse(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		AssertNil(table.AppendRecord("Fulanez", int64(33), 12.5, true, "19900102"))
		AssertNil(table.AppendRecord("Menganez", int64(51), -3.25, false, ""))
		AssertNil(table.Close())

		// Run
		AssertNil(table.Open(ReadOnly))
		defer table.Close()

		// Check
		AssertEqual(table.Size(), 2)
		AssertTrue(table.Seek(-1))
		AssertTrue(table.Next())

		record := table.CurrentRecord()
		AssertEqual(record.Position(), 0)
		AssertEqual(record.IsDeleted(), false)
		AssertEqual(record.Value(0), "Fulanez   ") // character values keep padding
		AssertEqual(record.Value(1), int64(33))
		AssertEqual(record.Value(2), 12.5)
		AssertEqual(record.Value(3), true)
		AssertEqual(record.Value(4), "19900102")

		AssertTrue(table.Next())
		record = table.CurrentRecord()
		AssertEqual(record.Position(), 1)
		AssertEqual(record.Value(0), "Menganez  ")
		AssertEqual(record.Value(2), -3.25)
		AssertEqual(record.Value(3), false)
		AssertEqual(record.Value(4), "")

		AssertEqual(table.Next(), false)
		AssertEqual(table.At(), 1)
	})
}

func TestDeleteRecord(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		defer table.Close()
		AssertNil(table.AppendRecord("A", int64(1), 0.0, true, ""))
		AssertNil(table.AppendRecord("B", int64(2), 0.0, true, ""))

		// Run
		AssertNil(table.DeleteRecord(0))

		// Check: size counts deleted records, the flag is set
		AssertEqual(table.Size(), 2)
		AssertTrue(table.Seek(-1))
		AssertTrue(table.Next())
		AssertEqual(table.CurrentRecord().IsDeleted(), true)
		AssertTrue(table.Next())
		AssertEqual(table.CurrentRecord().IsDeleted(), false)
	})
}

func TestUpdateRecord(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		AssertNil(table.AppendRecord("Fulanez", int64(33), 12.5, true, "19900102"))
		AssertTrue(table.Seek(-1))
		AssertTrue(table.Next())
		record := table.CurrentRecord()

		// Run
		record.SetValue(1, int64(34))
		AssertTrue(table.UpdateRecord(record))
		AssertNil(table.Close())

		// Check: survives reopen
		AssertNil(table.Open(ReadOnly))
		defer table.Close()
		AssertTrue(table.Next())
		AssertEqual(table.CurrentRecord().Value(1), int64(34))
		AssertEqual(table.CurrentRecord().Value(0), "Fulanez   ")
	})
}

func TestUpdateRecordReadOnly(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		AssertNil(table.AppendRecord("Fulanez", int64(33), 12.5, true, ""))
		AssertNil(table.Close())

		AssertNil(table.Open(ReadOnly))
		defer table.Close()
		AssertTrue(table.Next())
		record := table.CurrentRecord()
		record.SetValue(1, int64(99))

		// Run
		ok := table.UpdateRecord(record)

		// Check
		AssertEqual(ok, false)
		AssertTrue(table.Seek(-1))
		AssertTrue(table.Next())
		AssertEqual(table.CurrentRecord().Value(1), int64(33))
	})
}

func TestSeekBounds(t *testing.T) {
	Environment(func(filename string) {

		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		defer table.Close()
		AssertNil(table.AppendRecord("A", int64(1), 0.0, true, ""))

		AssertEqual(table.Seek(-2), false)
		AssertEqual(table.Seek(1), false)
		AssertTrue(table.Seek(-1))
		AssertTrue(table.Seek(0))
		AssertEqual(table.Next(), false) // cursor already on the last record
	})
}

func TestCloseIsIdempotent(t *testing.T) {
	Environment(func(filename string) {

		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadOnly))

		AssertNil(table.Close())
		AssertNil(table.Close())
		AssertEqual(table.IsOpen(), false)
		AssertEqual(table.OpenMode(), Closed)
		AssertEqual(table.Seek(-1), false)
		AssertEqual(table.Next(), false)
	})
}

func TestOpenTwice(t *testing.T) {
	Environment(func(filename string) {

		AssertNil(Create(filename, personFields()))
		table := NewTable(filename)
		AssertNil(table.Open(ReadOnly))
		defer table.Close()

		AssertNotNil(table.Open(ReadOnly))
	})
}

func TestOpenRejectsZeroLengthField(t *testing.T) {
	Environment(func(filename string) {

		AssertNil(Create(filename, []Field{
			{Name: "FLAG", Type: Logical, Length: 1},
		}))

		// corrupt the header: field length 0, record size adjusted so
		// the lengths still add up
		f, err := os.OpenFile(filename, os.O_RDWR, 0666)
		AssertNil(err)
		_, err = f.WriteAt([]byte{1, 0}, 10) // record size = 1
		AssertNil(err)
		_, err = f.WriteAt([]byte{0}, 32+16) // field length = 0
		AssertNil(err)
		AssertNil(f.Close())

		table := NewTable(filename)
		AssertNotNil(table.Open(ReadOnly))
	})
}

func TestNumericOverflow(t *testing.T) {
	Environment(func(filename string) {

		AssertNil(Create(filename, []Field{
			{Name: "N", Type: Numeric, Length: 3},
		}))
		table := NewTable(filename)
		AssertNil(table.Open(ReadWrite))
		defer table.Close()

		AssertNil(table.AppendRecord(int64(12345)))

		AssertTrue(table.Next())
		AssertEqual(table.CurrentRecord().Value(0), nil) // overflow slot holds asterisks
	})
}
