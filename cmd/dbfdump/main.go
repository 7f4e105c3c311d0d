package main

import (
	"fmt"
	"os"

	"github.com/fulldump/goconfig"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/dbfkit/dbfkit/dbf"
)

type config struct {
	Input   string `usage:"dbf file to dump"`
	Deleted bool   `usage:"include logically deleted records"`
}

// dbfdump prints a dbf file as one JSON document per record.
func main() {

	c := config{}
	goconfig.Read(&c)

	if c.Input == "" {
		fmt.Println("missing -input")
		os.Exit(-1)
	}

	table := dbf.NewTable(c.Input)
	err := table.Open(dbf.ReadOnly)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	defer table.Close()

	e := jsontext.NewEncoder(os.Stdout)

	table.Seek(-1)
	for table.Next() {
		record := table.CurrentRecord()
		if record.IsDeleted() && !c.Deleted {
			continue
		}

		item := map[string]interface{}{}
		for i := 0; i < record.FieldCount(); i++ {
			item[record.FieldName(i)] = record.Value(i)
		}
		item["_position"] = record.Position()
		if record.IsDeleted() {
			item["_deleted"] = true
		}

		err := json2.MarshalEncode(e, item)
		if err != nil {
			fmt.Println("ERROR:", err.Error())
			os.Exit(-1)
		}
	}
}
