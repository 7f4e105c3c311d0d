package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"
)

type OpenMode int

const (
	Closed OpenMode = iota
	ReadOnly
	ReadWrite
)

const (
	tableVersion     = 0x03 // dBase III without memo
	headerTerminator = 0x0D
	fileTerminator   = 0x1A

	flagLive    = ' '
	flagDeleted = '*'
)

// Table is a dBase file: a fixed schema and a sequence of fixed-width
// records traversed with a forward cursor. Records keep their physical
// position forever, deleting only flips the deletion flag.
type Table struct {
	filename string
	file     *os.File
	mode     OpenMode

	fields      []Field
	recordCount int
	headerSize  int
	recordSize  int

	position int // cursor, -1 = before first record
	buffer   []byte
}

func NewTable(filename string) *Table {
	return &Table{
		filename: filename,
		mode:     Closed,
		position: -1,
	}
}

func (t *Table) Open(mode OpenMode) error {

	if t.file != nil {
		return fmt.Errorf("table '%s' is already open", t.filename)
	}

	var flag int
	switch mode {
	case ReadOnly:
		flag = os.O_RDONLY
	case ReadWrite:
		flag = os.O_RDWR
	default:
		return fmt.Errorf("unsupported open mode %d", mode)
	}

	f, err := os.OpenFile(t.filename, flag, 0666)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}

	err = t.readHeader(f)
	if err != nil {
		f.Close()
		return err
	}

	t.file = f
	t.mode = mode
	t.position = -1
	t.buffer = make([]byte, t.recordSize)

	return nil
}

func (t *Table) readHeader(f *os.File) error {

	header := make([]byte, 32)
	_, err := io.ReadFull(f, header)
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	t.recordCount = int(binary.LittleEndian.Uint32(header[4:8]))
	t.headerSize = int(binary.LittleEndian.Uint16(header[8:10]))
	t.recordSize = int(binary.LittleEndian.Uint16(header[10:12]))

	numFields := (t.headerSize - 32 - 1) / 32
	if numFields < 1 {
		return fmt.Errorf("header declares no fields")
	}

	t.fields = make([]Field, 0, numFields)
	descriptor := make([]byte, 32)
	offset := 1 // byte 0 is the deletion flag
	for i := 0; i < numFields; i++ {
		_, err := io.ReadFull(f, descriptor)
		if err != nil {
			return fmt.Errorf("read field descriptor %d: %w", i, err)
		}
		field := Field{
			Name:     string(bytes.TrimRight(descriptor[0:11], "\x00")),
			Type:     FieldType(descriptor[11]),
			Length:   int(descriptor[16]),
			Decimals: int(descriptor[17]),
			offset:   offset,
		}
		if field.Length < 1 {
			return fmt.Errorf("field '%s': invalid length %d", field.Name, field.Length)
		}
		offset += field.Length
		t.fields = append(t.fields, field)
	}

	if offset != t.recordSize {
		return fmt.Errorf("field lengths (%d) do not match record size (%d)", offset, t.recordSize)
	}

	return nil
}

// Close is idempotent, closing a closed table is a no-op.
func (t *Table) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	t.mode = Closed
	t.position = -1
	return err
}

func (t *Table) Filename() string {
	return t.filename
}

func (t *Table) IsOpen() bool {
	return t.file != nil
}

func (t *Table) OpenMode() OpenMode {
	return t.mode
}

// Size is the total physical record count, deleted records included.
func (t *Table) Size() int {
	return t.recordCount
}

func (t *Table) FieldCount() int {
	return len(t.fields)
}

func (t *Table) Field(column int) Field {
	if column < 0 || column >= len(t.fields) {
		return Field{}
	}
	return t.fields[column]
}

func (t *Table) FieldName(column int) string {
	if column < 0 || column >= len(t.fields) {
		return ""
	}
	return t.fields[column].Name
}

// Seek places the cursor so that the following Next reads the record
// at position+1. Position -1 rewinds to before the first record.
func (t *Table) Seek(position int) bool {
	if t.file == nil {
		return false
	}
	if position < -1 || position >= t.recordCount {
		return false
	}
	t.position = position
	return true
}

// Next advances the cursor one record and loads it. Returns false at
// the end of the table.
func (t *Table) Next() bool {
	if t.file == nil {
		return false
	}
	if t.position+1 >= t.recordCount {
		return false
	}

	next := t.position + 1
	_, err := t.file.ReadAt(t.buffer, t.recordOffset(next))
	if err != nil {
		return false
	}

	t.position = next
	return true
}

// At is the physical position of the current record, -1 before the
// first Next.
func (t *Table) At() int {
	return t.position
}

// CurrentRecord decodes the record under the cursor. The returned
// record owns its values, later cursor moves do not change it.
func (t *Table) CurrentRecord() Record {

	record := Record{
		fields:   t.fields,
		values:   make([]interface{}, len(t.fields)),
		position: t.position,
	}

	if t.position < 0 {
		return record
	}

	record.deleted = t.buffer[0] == flagDeleted
	for i, field := range t.fields {
		record.values[i] = decodeValue(field, t.buffer[field.offset:field.offset+field.Length])
	}

	return record
}

// UpdateRecord overwrites one physical record in place. Returns false
// if the table is not open for writing, the position is invalid or the
// write itself failed.
func (t *Table) UpdateRecord(record Record) bool {

	if t.file == nil || t.mode != ReadWrite {
		return false
	}
	if record.position < 0 || record.position >= t.recordCount {
		return false
	}

	buffer := make([]byte, t.recordSize)
	buffer[0] = flagLive
	if record.deleted {
		buffer[0] = flagDeleted
	}
	for i, field := range t.fields {
		encodeValue(field, record.Value(i), buffer[field.offset:field.offset+field.Length])
	}

	_, err := t.file.WriteAt(buffer, t.recordOffset(record.position))
	return err == nil
}

// AppendRecord encodes values as a new live record at the end of the
// table and bumps the header record count.
func (t *Table) AppendRecord(values ...interface{}) error {

	if t.file == nil || t.mode != ReadWrite {
		return fmt.Errorf("table is not open for writing")
	}
	if len(values) != len(t.fields) {
		return fmt.Errorf("expected %d values, got %d", len(t.fields), len(values))
	}

	buffer := make([]byte, t.recordSize)
	buffer[0] = flagLive
	for i, field := range t.fields {
		encodeValue(field, values[i], buffer[field.offset:field.offset+field.Length])
	}

	offset := t.recordOffset(t.recordCount)
	_, err := t.file.WriteAt(buffer, offset)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	_, err = t.file.WriteAt([]byte{fileTerminator}, offset+int64(t.recordSize))
	if err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}

	t.recordCount++
	return t.writeRecordCount()
}

// DeleteRecord flips the deletion flag of one physical record. The
// record keeps its position and still counts towards Size.
func (t *Table) DeleteRecord(position int) error {

	if t.file == nil || t.mode != ReadWrite {
		return fmt.Errorf("table is not open for writing")
	}
	if position < 0 || position >= t.recordCount {
		return fmt.Errorf("record %d does not exist", position)
	}

	_, err := t.file.WriteAt([]byte{flagDeleted}, t.recordOffset(position))
	if err != nil {
		return fmt.Errorf("write deletion flag: %w", err)
	}

	return nil
}

func (t *Table) recordOffset(position int) int64 {
	return int64(t.headerSize + position*t.recordSize)
}

func (t *Table) writeRecordCount() error {
	counter := make([]byte, 4)
	binary.LittleEndian.PutUint32(counter, uint32(t.recordCount))
	_, err := t.file.WriteAt(counter, 4)
	if err != nil {
		return fmt.Errorf("write record count: %w", err)
	}
	return nil
}

// Create writes an empty table file with the given schema. The file
// must not exist.
func Create(filename string, fields []Field) error {

	if len(fields) == 0 {
		return fmt.Errorf("at least one field is required")
	}

	recordSize := 1
	for i, field := range fields {
		if field.Name == "" || len(field.Name) > 10 {
			return fmt.Errorf("field %d: invalid name '%s'", i, field.Name)
		}
		if field.Length < 1 || field.Length > 255 {
			return fmt.Errorf("field '%s': invalid length %d", field.Name, field.Length)
		}
		recordSize += field.Length
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	headerSize := 32 + 32*len(fields) + 1
	header := make([]byte, headerSize)
	header[0] = tableVersion
	now := time.Now()
	header[1] = byte(now.Year() % 100)
	header[2] = byte(now.Month())
	header[3] = byte(now.Day())
	binary.LittleEndian.PutUint32(header[4:8], 0)
	binary.LittleEndian.PutUint16(header[8:10], uint16(headerSize))
	binary.LittleEndian.PutUint16(header[10:12], uint16(recordSize))

	for i, field := range fields {
		descriptor := header[32+32*i : 32+32*i+32]
		copy(descriptor[0:11], field.Name)
		descriptor[11] = byte(field.Type)
		descriptor[16] = byte(field.Length)
		descriptor[17] = byte(field.Decimals)
	}
	header[headerSize-1] = headerTerminator

	_, err = f.Write(header)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	_, err = f.Write([]byte{fileTerminator})
	if err != nil {
		return fmt.Errorf("write terminator: %w", err)
	}

	return nil
}
