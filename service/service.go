package service

import (
	"github.com/dbfkit/dbfkit/dbf"
	"github.com/dbfkit/dbfkit/tablemodel"
	"github.com/dbfkit/dbfkit/utils"
	"github.com/dbfkit/dbfkit/workspace"
)

// Service exposes workspace tables to the API. Every operation locks
// the table for its whole duration, the model underneath is strictly
// single-threaded.
type Service struct {
	ws *workspace.Workspace
}

func NewService(ws *workspace.Workspace) *Service {
	return &Service{
		ws: ws,
	}
}

func (s *Service) table(name string) (*workspace.Table, error) {
	table, exists := s.ws.Get(name)
	if !exists {
		return nil, ErrorTableNotFound
	}
	return table, nil
}

func (s *Service) ListTables() []*TableInfo {

	result := []*TableInfo{}
	for _, name := range utils.GetKeys(s.ws.Tables) {
		info, err := s.GetTable(name)
		if err != nil {
			continue
		}
		result = append(result, info)
	}

	return result
}

func (s *Service) GetTable(name string) (*TableInfo, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	fields := make([]FieldInfo, table.Store.FieldCount())
	for i := range fields {
		field := table.Store.Field(i)
		fields[i] = FieldInfo{
			Name:     field.Name,
			Type:     string(field.Type),
			Length:   field.Length,
			Decimals: field.Decimals,
		}
	}

	return &TableInfo{
		Name:         table.Name,
		Fields:       fields,
		Rows:         table.Model.RowCount(),
		TotalRecords: table.Store.Size(),
		DeletedSeen:  table.Model.DeletedRecordsCount(),
		CanGrow:      table.Model.CanFetchMore(),
		ReadOnly:     table.Store.OpenMode() != dbf.ReadWrite,
	}, nil
}

// Grow triggers one bounded fetch batch. Growing an exhausted table is
// a no-op reporting zero appended rows.
func (s *Service) Grow(name string) (*GrowResult, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	before := table.Model.RowCount()
	if table.Model.CanFetchMore() {
		table.Model.FetchMore()
	}

	return &GrowResult{
		Appended: table.Model.RowCount() - before,
		Rows:     table.Model.RowCount(),
		CanGrow:  table.Model.CanFetchMore(),
	}, nil
}

// Rows reads a range of already cached rows, it never grows the cache.
// A limit < 1 means everything from skip on.
func (s *Service) Rows(name string, skip, limit int) ([]*RowItem, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	if skip < 0 {
		skip = 0
	}
	to := table.Model.RowCount()
	if limit > 0 && skip+limit < to {
		to = skip + limit
	}

	items := []*RowItem{}
	table.Model.TraverseRange(skip, to, func(row int, record dbf.Record) {
		items = append(items, &RowItem{
			Row:      row,
			Position: record.Position(),
			Values:   record.Values(),
		})
	})

	return items, nil
}

func (s *Service) GetCell(name string, row, column int, role string) (*Cell, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	return &Cell{
		Row:      row,
		Column:   column,
		Value:    table.Model.Data(row, column, parseRole(role)),
		Editable: table.Model.Editable(row, column),
	}, nil
}

func (s *Service) UpdateCell(name string, row, column int, value interface{}) (*Cell, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	if !table.Model.SetData(row, column, value, tablemodel.RoleEdit) {
		return nil, ErrorCellRejected
	}

	return &Cell{
		Row:      row,
		Column:   column,
		Value:    table.Model.Data(row, column, tablemodel.RoleDisplay),
		Editable: true,
	}, nil
}

func (s *Service) GetHeader(name string, section int, axis, role string) (*Header, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	a, ok := parseAxis(axis)
	if !ok {
		return nil, ErrorUnknownAxis
	}

	table.Lock()
	defer table.Unlock()

	return &Header{
		Section: section,
		Axis:    axis,
		Role:    role,
		Value:   table.Model.HeaderData(section, a, parseRole(role)),
	}, nil
}

func (s *Service) SetHeader(name string, section int, axis, role string, value interface{}) (*Header, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	a, ok := parseAxis(axis)
	if !ok {
		return nil, ErrorUnknownAxis
	}

	r := parseRole(role)
	if r != tablemodel.RoleDisplay && r != tablemodel.RoleEdit {
		return nil, ErrorUnknownRole
	}

	table.Lock()
	defer table.Unlock()

	if !table.Model.SetHeaderData(section, a, value, r) {
		return nil, ErrorHeaderRejected
	}

	return &Header{
		Section: section,
		Axis:    axis,
		Role:    role,
		Value:   value,
	}, nil
}

// Locate maps a physical record position to its row index in the
// cache.
func (s *Service) Locate(name string, position int) (*RowItem, error) {

	table, err := s.table(name)
	if err != nil {
		return nil, err
	}

	table.Lock()
	defer table.Unlock()

	row, found := table.Model.RowAtPosition(position)
	if !found {
		return nil, ErrorRecordNotFound
	}

	record, _ := table.Model.Record(row)

	return &RowItem{
		Row:      row,
		Position: position,
		Values:   record.Values(),
	}, nil
}

// parseRole maps a wire role name to the model role. Unknown names map
// to an unsupported role, the model resolves those to no value.
func parseRole(role string) tablemodel.Role {
	switch role {
	case "display", "":
		return tablemodel.RoleDisplay
	case "edit":
		return tablemodel.RoleEdit
	}
	return tablemodel.Role(-1)
}

func parseAxis(axis string) (tablemodel.Axis, bool) {
	switch axis {
	case "columns", "":
		return tablemodel.AxisColumns, true
	case "rows":
		return tablemodel.AxisRows, true
	}
	return 0, false
}
