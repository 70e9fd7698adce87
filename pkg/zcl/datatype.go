package zcl

import "fmt"

// DataType is the 8-bit ZCL data type tag (ZCL Spec "2.5.2 Data
// Types") used to carry the concrete representation of an attribute
// value inline in the frame.
type DataType uint8

const (
	DataTypeNull             DataType = 0x00
	DataTypeBoolean          DataType = 0x10
	DataTypeBitmap8          DataType = 0x18
	DataTypeBitmap16         DataType = 0x19
	DataTypeBitmap64         DataType = 0x1F
	DataTypeUint8            DataType = 0x20
	DataTypeUint16           DataType = 0x21
	DataTypeUint64           DataType = 0x27
	DataTypeInt8             DataType = 0x28
	DataTypeInt16            DataType = 0x29
	DataTypeInt64            DataType = 0x2F
	DataTypeEnum8            DataType = 0x30
	DataTypeEnum16           DataType = 0x31
	DataTypeCharacterString  DataType = 0x42
	DataTypeEUI64            DataType = 0xF0
)

var dataTypeNames = map[DataType]string{
	DataTypeNull:            "NULL",
	DataTypeBoolean:         "BOOLEAN",
	DataTypeBitmap8:         "BITMAP8",
	DataTypeBitmap16:        "BITMAP16",
	DataTypeBitmap64:        "BITMAP64",
	DataTypeUint8:           "UINT8",
	DataTypeUint16:          "UINT16",
	DataTypeUint64:          "UINT64",
	DataTypeInt8:            "INT8",
	DataTypeInt16:           "INT16",
	DataTypeInt64:           "INT64",
	DataTypeEnum8:           "ENUM8",
	DataTypeEnum16:          "ENUM16",
	DataTypeCharacterString: "CHARACTER_STRING",
	DataTypeEUI64:           "EUI64",
}

// analogDataTypes is the subset over which attribute reporting carries
// a "delta" reportable-change threshold.
var analogDataTypes = map[DataType]bool{
	DataTypeUint8:  true,
	DataTypeUint16: true,
	DataTypeUint64: true,
	DataTypeInt8:   true,
	DataTypeInt16:  true,
	DataTypeInt64:  true,
}

func (d DataType) String() string {
	if name, ok := dataTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(d))
}

// IsAnalog reports whether d belongs to the analog subset eligible for
// a reporting "delta" threshold.
func (d DataType) IsAnalog() bool {
	return analogDataTypes[d]
}

// decodeDataTypeValue decodes one value of the physical representation
// named by tag, per the wire table in spec.md §3.
func decodeDataTypeValue(tag DataType, data []byte, off int) (any, int, error) {
	switch tag {
	case DataTypeNull:
		return nil, off, nil
	case DataTypeBoolean:
		v, next, err := readUint(data, off, 1)
		if err != nil {
			return nil, off, err
		}
		return v != 0, next, nil
	case DataTypeBitmap8, DataTypeUint8:
		v, next, err := readUint(data, off, 1)
		return uint8(v), next, err
	case DataTypeBitmap16, DataTypeUint16:
		v, next, err := readUint(data, off, 2)
		return uint16(v), next, err
	case DataTypeBitmap64, DataTypeUint64:
		return readUint(data, off, 8)
	case DataTypeInt8:
		v, next, err := readUint(data, off, 1)
		return int8(v), next, err
	case DataTypeInt16:
		v, next, err := readUint(data, off, 2)
		return int16(v), next, err
	case DataTypeInt64:
		v, next, err := readUint(data, off, 8)
		return int64(v), next, err
	case DataTypeEnum8:
		v, next, err := readUint(data, off, 1)
		return uint8(v), next, err
	case DataTypeEnum16:
		v, next, err := readUint(data, off, 2)
		return uint16(v), next, err
	case DataTypeCharacterString:
		return decodeString(data, off)
	case DataTypeEUI64:
		return decodeEUI64(data, off)
	default:
		return nil, off, fmt.Errorf("data type tag 0x%02X: %w", uint8(tag), ErrUnknownDataType)
	}
}

// encodeDataTypeValue emits one value of the physical representation
// named by tag.
func encodeDataTypeValue(buf []byte, tag DataType, v any) ([]byte, error) {
	switch tag {
	case DataTypeNull:
		return buf, nil
	case DataTypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("value %v (%T) is not a bool: %w", v, v, ErrMalformed)
		}
		if b {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case DataTypeBitmap8, DataTypeUint8, DataTypeEnum8:
		return encodeUintValue(buf, v, 1)
	case DataTypeBitmap16, DataTypeUint16, DataTypeEnum16:
		return encodeUintValue(buf, v, 2)
	case DataTypeBitmap64, DataTypeUint64:
		return encodeUintValue(buf, v, 8)
	case DataTypeInt8:
		return encodeUintValue(buf, v, 1)
	case DataTypeInt16:
		return encodeUintValue(buf, v, 2)
	case DataTypeInt64:
		return encodeUintValue(buf, v, 8)
	case DataTypeCharacterString:
		return encodeString(buf, v)
	case DataTypeEUI64:
		return encodeEUI64(buf, v)
	default:
		return nil, fmt.Errorf("data type tag 0x%02X: %w", uint8(tag), ErrUnknownDataType)
	}
}

// dataTypeTagByName maps the lowercase descriptor-friendly spelling
// (as used when a caller supplies e.g. "uint8" for a configure-
// reporting "datatype" field) to its tag. This is distinct from a
// field descriptor's physical typeref table (descriptor.go): this one
// is for callers building a record by hand.
var dataTypeTagByName = map[string]DataType{
	"null":             DataTypeNull,
	"bool":             DataTypeBoolean,
	"boolean":          DataTypeBoolean,
	"bitmap8":          DataTypeBitmap8,
	"bitmap16":         DataTypeBitmap16,
	"bitmap64":         DataTypeBitmap64,
	"uint8":            DataTypeUint8,
	"uint16":           DataTypeUint16,
	"uint64":           DataTypeUint64,
	"int8":             DataTypeInt8,
	"int16":            DataTypeInt16,
	"int64":            DataTypeInt64,
	"enum8":            DataTypeEnum8,
	"enum16":           DataTypeEnum16,
	"string":           DataTypeCharacterString,
	"character_string": DataTypeCharacterString,
	"eui64":            DataTypeEUI64,
}

// resolveDataTypeTag normalizes a "datatype" field supplied for encode:
// callers may pass a DataType directly, a raw uint8 tag, or one of the
// friendly lowercase names above (as spec.md scenario 6 does with
// "uint8").
func resolveDataTypeTag(v any) (DataType, error) {
	switch x := v.(type) {
	case DataType:
		return x, nil
	case uint8:
		return DataType(x), nil
	case int:
		return DataType(x), nil
	case string:
		tag, ok := dataTypeTagByName[x]
		if !ok {
			return 0, fmt.Errorf("data type name %q: %w", x, ErrUnknownDataType)
		}
		return tag, nil
	default:
		return 0, fmt.Errorf("datatype field value %v (%T): %w", v, v, ErrInvalidState)
	}
}
