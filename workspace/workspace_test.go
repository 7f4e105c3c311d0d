package workspace

import (
	"os"
	"path"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/dbfkit/dbfkit/dbf"
)

func createFixture(t *testing.T, dir, name string, records int) {
	filename := path.Join(dir, name)
	AssertNil(dbf.Create(filename, []dbf.Field{
		{Name: "NAME", Type: dbf.Character, Length: 10},
	}))
	table := dbf.NewTable(filename)
	AssertNil(table.Open(dbf.ReadWrite))
	defer table.Close()
	for i := 0; i < records; i++ {
		AssertNil(table.AppendRecord("Fulanez"))
	}
}

func TestLoad(t *testing.T) {

	dir := t.TempDir()
	createFixture(t, dir, "people.dbf", 3)
	createFixture(t, dir, "PLACES.DBF", 1)
	AssertNil(os.WriteFile(path.Join(dir, "notes.txt"), []byte("not a table"), 0666))

	w := NewWorkspace(&Config{Dir: dir})
	AssertEqual(w.GetStatus(), StatusOpening)

	AssertNil(w.Load())

	AssertEqual(w.GetStatus(), StatusOperating)
	AssertEqual(len(w.Tables), 2)

	table, exists := w.Get("people")
	AssertTrue(exists)
	AssertEqual(table.Model.RowCount(), 3) // first batch loads eagerly
	AssertEqual(table.Store.OpenMode(), dbf.ReadWrite)

	_, exists = w.Get("PLACES")
	AssertTrue(exists)

	AssertNil(w.Stop())
	AssertEqual(table.Store.IsOpen(), false)
}

func TestLoadReadOnly(t *testing.T) {

	dir := t.TempDir()
	createFixture(t, dir, "people.dbf", 1)

	w := NewWorkspace(&Config{Dir: dir, ReadOnly: true})
	AssertNil(w.Load())
	defer w.Stop()

	table, _ := w.Get("people")
	AssertEqual(table.Store.OpenMode(), dbf.ReadOnly)
	AssertEqual(table.Model.Editable(0, 0), false)
}
