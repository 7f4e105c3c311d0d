package service

import (
	"errors"
)

var ErrorTableNotFound = errors.New("table not found")
var ErrorRecordNotFound = errors.New("record not found")
var ErrorCellRejected = errors.New("cell update rejected")
var ErrorHeaderRejected = errors.New("header update rejected")
var ErrorUnknownAxis = errors.New("unknown axis")
var ErrorUnknownRole = errors.New("unknown role")

type Servicer interface { // todo: review naming
	ListTables() []*TableInfo
	GetTable(name string) (*TableInfo, error)
	Grow(name string) (*GrowResult, error)
	Rows(name string, skip, limit int) ([]*RowItem, error)
	GetCell(name string, row, column int, role string) (*Cell, error)
	UpdateCell(name string, row, column int, value interface{}) (*Cell, error)
	GetHeader(name string, section int, axis, role string) (*Header, error)
	SetHeader(name string, section int, axis, role string, value interface{}) (*Header, error)
	Locate(name string, position int) (*RowItem, error)
}

type TableInfo struct {
	Name         string      `json:"name"`
	Fields       []FieldInfo `json:"fields"`
	Rows         int         `json:"rows"`
	TotalRecords int         `json:"totalRecords"`
	DeletedSeen  int         `json:"deletedSeen"`
	CanGrow      bool        `json:"canGrow"`
	ReadOnly     bool        `json:"readOnly"`
}

type FieldInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Length   int    `json:"length"`
	Decimals int    `json:"decimals"`
}

type GrowResult struct {
	Appended int  `json:"appended"`
	Rows     int  `json:"rows"`
	CanGrow  bool `json:"canGrow"`
}

type RowItem struct {
	Row      int           `json:"row"`
	Position int           `json:"position"`
	Values   []interface{} `json:"values"`
}

type Cell struct {
	Row      int         `json:"row"`
	Column   int         `json:"column"`
	Value    interface{} `json:"value"`
	Editable bool        `json:"editable"`
}

type Header struct {
	Section int         `json:"section"`
	Axis    string      `json:"axis"`
	Role    string      `json:"role"`
	Value   interface{} `json:"value"`
}
