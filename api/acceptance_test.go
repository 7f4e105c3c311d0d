package api

import (
	"fmt"
	"path"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/dbfkit/dbfkit/dbf"
	"github.com/dbfkit/dbfkit/service"
	"github.com/dbfkit/dbfkit/workspace"
)

func createPeopleFixture(dir string) error {

	filename := path.Join(dir, "people.dbf")

	err := dbf.Create(filename, []dbf.Field{
		{Name: "NAME", Type: dbf.Character, Length: 10},
		{Name: "AGE", Type: dbf.Numeric, Length: 3},
	})
	if err != nil {
		return err
	}

	table := dbf.NewTable(filename)
	err = table.Open(dbf.ReadWrite)
	if err != nil {
		return err
	}
	defer table.Close()

	for i := 0; i < 300; i++ {
		err = table.AppendRecord(fmt.Sprintf("person-%d", i), i)
		if err != nil {
			return err
		}
	}
	for i := 0; i < 300; i += 30 {
		err = table.DeleteRecord(i)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		dir := t.TempDir()
		biff.AssertNil(createPeopleFixture(dir))

		ws := workspace.NewWorkspace(&workspace.Config{
			Dir: dir,
		})

		biff.AssertNil(ws.Load())
		biff.AssertEqual(ws.GetStatus(), workspace.StatusOperating)

		s := service.NewService(ws)

		b := Build(s, "", "test")
		b.WithInterceptors(
			InterceptorUnavailable(ws),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
