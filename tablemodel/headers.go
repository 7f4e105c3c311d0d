package tablemodel

// headerBlock is the minimum overlay capacity allocated on first
// write, so that filling columns left to right does not reallocate per
// column.
const headerBlock = 16

// HeaderData resolves a header value for one section. Column axis
// resolution order: exact overlay role, then the overlay edit value
// when display was asked, then the store field name for display, and
// finally the 1-based ordinal for display on either axis.
func (m *TableModel) HeaderData(section int, axis Axis, role Role) interface{} {

	if axis == AxisColumns {
		var value interface{}

		if section >= 0 && section < len(m.headers) && m.headers[section] != nil {
			value = m.headers[section][role]
			if value == nil && role == RoleDisplay {
				value = m.headers[section][RoleEdit]
			}
		}

		if value != nil {
			return value
		}

		if role == RoleDisplay && section >= 0 && section < len(m.fieldNames) {
			return m.fieldNames[section]
		}
	}

	if role == RoleDisplay {
		return section + 1
	}

	return nil
}

// SetHeaderData stores an overlay value for one column. Only the
// column axis carries an overlay. The overlay grows in blocks of at
// least headerBlock slots.
func (m *TableModel) SetHeaderData(section int, axis Axis, value interface{}, role Role) bool {

	if axis != AxisColumns || section < 0 || section >= len(m.fieldNames) {
		return false
	}

	if len(m.headers) <= section {
		capacity := section + 1
		if capacity < headerBlock {
			capacity = headerBlock
		}
		headers := make([]map[Role]interface{}, capacity)
		copy(headers, m.headers)
		m.headers = headers
	}

	if m.headers[section] == nil {
		m.headers[section] = map[Role]interface{}{}
	}
	m.headers[section][role] = value

	m.notifyHeaderChanged(AxisColumns, section)

	return true
}
