package dbf

// Record is one decoded table record: an ordered sequence of typed
// values plus the deletion flag and the physical position it was read
// from. Records are detached from the table, mutating one does not
// touch the file until Table.UpdateRecord.
type Record struct {
	fields   []Field
	values   []interface{}
	deleted  bool
	position int
}

// NewRecord builds a detached record. Store implementations outside
// this package use it to hand out records of their own making.
func NewRecord(fields []Field, values []interface{}, deleted bool, position int) Record {
	record := Record{
		fields:   fields,
		values:   make([]interface{}, len(values)),
		deleted:  deleted,
		position: position,
	}
	copy(record.values, values)
	return record
}

func (r Record) FieldCount() int {
	return len(r.fields)
}

func (r Record) FieldName(column int) string {
	if column < 0 || column >= len(r.fields) {
		return ""
	}
	return r.fields[column].Name
}

func (r Record) Field(column int) Field {
	if column < 0 || column >= len(r.fields) {
		return Field{}
	}
	return r.fields[column]
}

func (r Record) Value(column int) interface{} {
	if column < 0 || column >= len(r.values) {
		return nil
	}
	return r.values[column]
}

func (r *Record) SetValue(column int, value interface{}) {
	if column < 0 || column >= len(r.values) {
		return
	}
	r.values[column] = value
}

// Values returns a copy of all field values in column order.
func (r Record) Values() []interface{} {
	values := make([]interface{}, len(r.values))
	copy(values, r.values)
	return values
}

func (r Record) IsDeleted() bool {
	return r.deleted
}

// Position is the physical record index inside the table, deleted
// records included.
func (r Record) Position() int {
	return r.position
}
