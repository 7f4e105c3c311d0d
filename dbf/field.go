package dbf

// FieldType is the dBase field type letter as stored in the field
// descriptor.
type FieldType byte

const (
	Character FieldType = 'C'
	Date      FieldType = 'D'
	Float     FieldType = 'F'
	Logical   FieldType = 'L'
	Numeric   FieldType = 'N'
)

type Field struct {
	Name     string
	Type     FieldType
	Length   int
	Decimals int

	// offset of the field inside the raw record, the deletion flag is
	// byte 0
	offset int
}
