package main

import (
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/dbfkit/dbfkit/dbf"
)

type config struct {
	Output      string `usage:"dbf file to create"`
	Records     int    `usage:"number of records"`
	DeleteEvery int    `usage:"mark one of every N records as deleted (0 disables)"`
}

// dbfseed creates a sample dbf file, handy to exercise the server with
// tables bigger than one fetch batch.
func main() {

	c := config{
		Output:  "people.dbf",
		Records: 1000,
	}
	goconfig.Read(&c)

	err := seed(c)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	fmt.Println("written", c.Records, "records to", c.Output)
}

func seed(c config) error {

	err := dbf.Create(c.Output, []dbf.Field{
		{Name: "NAME", Type: dbf.Character, Length: 20},
		{Name: "AGE", Type: dbf.Numeric, Length: 3},
		{Name: "BALANCE", Type: dbf.Numeric, Length: 10, Decimals: 2},
		{Name: "ACTIVE", Type: dbf.Logical, Length: 1},
		{Name: "SIGNUP", Type: dbf.Date, Length: 8},
	})
	if err != nil {
		return err
	}

	table := dbf.NewTable(c.Output)
	err = table.Open(dbf.ReadWrite)
	if err != nil {
		return err
	}
	defer table.Close()

	for i := 0; i < c.Records; i++ {
		err = table.AppendRecord(
			fmt.Sprintf("person-%d", i),
			20+i%60,
			float64(i)*1.5,
			i%2 == 0,
			fmt.Sprintf("2024%02d%02d", 1+i%12, 1+i%28),
		)
		if err != nil {
			return err
		}
	}

	if c.DeleteEvery > 0 {
		for i := 0; i < c.Records; i += c.DeleteEvery {
			err = table.DeleteRecord(i)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
