package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dbfkit/dbfkit/dbf"
	"github.com/dbfkit/dbfkit/tablemodel"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Dir      string
	ReadOnly bool
}

// Table pairs one dbf file with its incremental model. The embedded
// mutex is the single serialization boundary for all model and store
// access, fetch state is mutated non-atomically across several steps.
type Table struct {
	sync.Mutex
	Name  string
	Store *dbf.Table
	Model *tablemodel.TableModel
}

// Workspace holds every table found in the data directory.
type Workspace struct {
	config *Config
	status string
	Tables map[string]*Table
	exit   chan struct{}
}

func NewWorkspace(config *Config) *Workspace {
	return &Workspace{
		config: config,
		status: StatusOpening,
		Tables: map[string]*Table{},
		exit:   make(chan struct{}),
	}
}

func (w *Workspace) GetStatus() string {
	return w.status
}

func (w *Workspace) Get(name string) (*Table, bool) {
	table, exists := w.Tables[name]
	return table, exists
}

// Load walks the data directory and opens every .dbf file it finds.
func (w *Workspace) Load() error {

	fmt.Printf("Loading workspace %s...\n", w.config.Dir) // todo: move to logger
	dir := w.config.Dir
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = filepath.WalkDir(dir, func(filename string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(filename), ".dbf") {
			return nil
		}

		t0 := time.Now()
		table, err := w.openTable(filename)
		if err != nil {
			fmt.Printf("ERROR: open table '%s': %s\n", filename, err.Error()) // todo: move to logger
			return err
		}
		fmt.Println(table.Name, table.Model.RowCount(), "of", table.Store.Size(), time.Since(t0))

		w.Tables[table.Name] = table

		return nil
	})

	if err != nil {
		w.status = StatusClosing
		return err
	}

	w.status = StatusOperating

	return nil
}

func (w *Workspace) openTable(filename string) (*Table, error) {

	mode := dbf.ReadWrite
	if w.config.ReadOnly {
		mode = dbf.ReadOnly
	}

	store := dbf.NewTable(filename)
	err := store.Open(mode)
	if err != nil {
		return nil, fmt.Errorf("open '%s': %w", filename, err)
	}

	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &Table{
		Name:  name,
		Store: store,
		Model: tablemodel.New(store), // pulls the first batch
	}, nil
}

func (w *Workspace) Start() error {

	go w.Load()

	<-w.exit

	return nil
}

func (w *Workspace) Stop() error {

	defer close(w.exit)

	w.status = StatusClosing

	var lastErr error
	for name, table := range w.Tables {
		fmt.Printf("Closing '%s'...\n", name)
		err := table.Store.Close()
		if err != nil {
			fmt.Printf("ERROR: close(%s): %s", name, err.Error())
			lastErr = err
		}
	}

	return lastErr
}
