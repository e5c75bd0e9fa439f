package schema

import "fmt"

// FieldCount is the number of comma-separated fields in every schema row
const FieldCount = 10

// DataType is the value type of a driver parameter
type DataType string

const (
	DataTypeInt32   DataType = "i32"
	DataTypeFloat64 DataType = "f64"
)

// ParseDataType maps the schema spelling of a data type onto a DataType
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case DataTypeInt32, DataTypeFloat64:
		return DataType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDataType, s)
	}
}

// ParameterRecord is one accepted row of a parameter schema.
// Bounds and the register number are kept as written; they are passed through
// to generated source as literal tokens.
type ParameterRecord struct {
	PVSuffix        string   `json:"pvSuffix"`
	DataType        DataType `json:"dataType"`
	ParamString     string   `json:"paramString"`
	ParamStringName string   `json:"paramStringName"`
	ParamVar        string   `json:"paramVar"`
	PVMin           string   `json:"pvMin"`
	PVMax           string   `json:"pvMax"`
	RegMin          string   `json:"regMin"`
	RegMax          string   `json:"regMax"`
	RegNum          string   `json:"regNum"`

	// Line is the 1-based line number the record was read from
	Line int `json:"line"`
}

// newRecord builds a record from exactly FieldCount trimmed fields
func newRecord(fields []string, line int) (ParameterRecord, error) {
	dt, err := ParseDataType(fields[1])
	if err != nil {
		return ParameterRecord{}, err
	}

	return ParameterRecord{
		PVSuffix:        fields[0],
		DataType:        dt,
		ParamString:     fields[2],
		ParamStringName: fields[3],
		ParamVar:        fields[4],
		PVMin:           fields[5],
		PVMax:           fields[6],
		RegMin:          fields[7],
		RegMax:          fields[8],
		RegNum:          fields[9],
		Line:            line,
	}, nil
}
