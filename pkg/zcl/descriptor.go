package zcl

import (
	"fmt"
	"strings"
)

// repeatMode classifies how many values a field descriptor contributes.
type repeatMode int

const (
	repeatOne repeatMode = iota
	repeatCount         // *T — driven by a preceding n_ field
	repeatBytes         // #T — driven by a preceding b_ field
	repeatToEnd         // %T — consumes to end of buffer
)

// analogDeltaPhysical is the typeref used only by attr_reporting_config's
// "delta" field: present, and of the attribute's own physical width,
// only when the attribute's data type is in the analog subset.
const analogDeltaPhysical = "analog_delta"

// field is the parsed, tagged-variant form of a "name:typeref[:tags]"
// descriptor string, built once at catalog-construction time and
// walked directly by the interpreter on every decode/encode — the
// descriptor strings themselves are never re-parsed per frame.
type field struct {
	name             string // record key; n_/b_/s_ prefix already stripped
	physical         string // physical type name, or a composite name, or "datatype"
	repeat           repeatMode
	isCountPrefix    bool // n_: updates the scratch count, emits nothing
	isBytePrefix     bool // b_: updates the scratch byte count, emits nothing
	stopOnNonSuccess bool // s_: halts decode immediately on a non-SUCCESS value
}

// parseField parses one descriptor string. Variant tags (the optional
// third colon-separated segment) are accepted but carry no decode/
// encode semantics in this codec — same as the source this catalog
// was ported from, where they are documentation only.
func parseField(desc string) (*field, error) {
	parts := strings.SplitN(desc, ":", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("field descriptor %q: missing typeref", desc)
	}
	rawName, typeref := parts[0], parts[1]

	f := &field{repeat: repeatOne}
	switch {
	case strings.HasPrefix(typeref, "*"):
		f.repeat = repeatCount
		f.physical = typeref[1:]
	case strings.HasPrefix(typeref, "#"):
		f.repeat = repeatBytes
		f.physical = typeref[1:]
	case strings.HasPrefix(typeref, "%"):
		f.repeat = repeatToEnd
		f.physical = typeref[1:]
	default:
		f.physical = typeref
	}

	switch {
	case strings.HasPrefix(rawName, "s_"):
		f.stopOnNonSuccess = true
		f.name = rawName[2:]
	case strings.HasPrefix(rawName, "n_"):
		f.isCountPrefix = true
		f.name = rawName[2:]
	case strings.HasPrefix(rawName, "b_"):
		f.isBytePrefix = true
		f.name = rawName[2:]
	default:
		f.name = rawName
	}

	return f, nil
}

// parseFields parses a whole descriptor list, failing fast on the
// first malformed entry. Called only at package init from the catalog
// tables.
func parseFields(descs []string) []*field {
	fields := make([]*field, 0, len(descs))
	for _, d := range descs {
		f, err := parseField(d)
		if err != nil {
			panic(err) // catalog descriptors are a compile-time invariant
		}
		fields = append(fields, f)
	}
	return fields
}

// decodeFields walks fields in order against data starting at off,
// producing a keyed record and the offset just past the last byte
// consumed. See spec's decode contract: n_/b_ fields drive the
// following repeated field and are not themselves emitted; s_ fields
// halt decoding (without error) as soon as a non-SUCCESS value is
// seen, leaving any remaining descriptors unconsumed. The returned
// bool reports whether an s_ field triggered that early stop, so
// callers at the ZDO/ZCL frame boundary can log the (otherwise
// unremarkable) short decode.
func decodeFields(fields []*field, data []byte, off int) (map[string]any, int, bool, error) {
	record := map[string]any{}
	n, b := 1, 0

	for _, f := range fields {
		switch {
		case f.isCountPrefix:
			val, next, err := decodeOne(f.physical, data, off, record)
			if err != nil {
				return record, off, false, err
			}
			count, err := toInt(val)
			if err != nil {
				return record, off, false, err
			}
			n, off = count, next

		case f.isBytePrefix:
			val, next, err := decodeOne(f.physical, data, off, record)
			if err != nil {
				return record, off, false, err
			}
			count, err := toInt(val)
			if err != nil {
				return record, off, false, err
			}
			b, off = count, next

		case f.physical == analogDeltaPhysical:
			if tagVal, ok := record["datatype"]; ok {
				tag, err := resolveDataTypeTag(tagVal)
				if err != nil {
					return record, off, false, err
				}
				if tag.IsAnalog() {
					val, next, err := decodeDataTypeValue(tag, data, off)
					if err != nil {
						return record, off, false, err
					}
					record[f.name] = val
					off = next
				}
			}
			n, b = 1, 0

		case f.repeat == repeatCount:
			list := make([]any, 0, n)
			for i := 0; i < n; i++ {
				val, next, err := decodeOne(f.physical, data, off, record)
				if err != nil {
					return record, off, false, err
				}
				list = append(list, val)
				off = next
			}
			record[f.name] = list
			n, b = 1, 0

		case f.repeat == repeatBytes:
			end := off + b
			list := []any{}
			for off < end {
				val, next, err := decodeOne(f.physical, data, off, record)
				if err != nil {
					return record, off, false, err
				}
				list = append(list, val)
				off = next
			}
			record[f.name] = list
			n, b = 1, 0

		case f.repeat == repeatToEnd:
			list := []any{}
			for off < len(data) {
				val, next, err := decodeOne(f.physical, data, off, record)
				if err != nil {
					return record, off, false, err
				}
				list = append(list, val)
				off = next
			}
			record[f.name] = list
			n, b = 1, 0

		default:
			val, next, err := decodeOne(f.physical, data, off, record)
			if err != nil {
				return record, off, false, err
			}
			off = next
			record[f.name] = val
			n, b = 1, 0

			if f.stopOnNonSuccess {
				if s, ok := val.(Status); ok && s != StatusSuccess {
					return record, off, true, nil
				}
			}
		}
	}

	return record, off, false, nil
}

// encodeFields is the dual of decodeFields: it derives n_/b_ values
// from the record's list fields rather than requiring a caller to
// supply them.
func encodeFields(fields []*field, record map[string]any) ([]byte, error) {
	buf := []byte{}
	skip := make(map[int]bool, len(fields))

	for i, f := range fields {
		if skip[i] {
			continue
		}

		switch {
		case f.isCountPrefix:
			list, ok := toList(record[f.name])
			if !ok {
				return nil, fmt.Errorf("encode count prefix for %q: %w", f.name, ErrMissingField)
			}
			var err error
			buf, err = encodeOne(f.physical, buf, len(list), record)
			if err != nil {
				return nil, err
			}

		case f.isBytePrefix:
			j := -1
			for k := i + 1; k < len(fields); k++ {
				if fields[k].name == f.name && fields[k].repeat == repeatBytes {
					j = k
					break
				}
			}
			if j == -1 {
				return nil, fmt.Errorf("descriptor for %q has no matching #T field: %w", f.name, ErrMalformed)
			}
			list, ok := toList(record[f.name])
			if !ok {
				return nil, fmt.Errorf("encode byte prefix for %q: %w", f.name, ErrMissingField)
			}
			elemBuf := []byte{}
			var err error
			for _, elem := range list {
				elemBuf, err = encodeOne(fields[j].physical, elemBuf, elem, record)
				if err != nil {
					return nil, err
				}
			}
			buf, err = encodeOne(f.physical, buf, len(elemBuf), record)
			if err != nil {
				return nil, err
			}
			buf = append(buf, elemBuf...)
			skip[j] = true

		case f.physical == analogDeltaPhysical:
			tagVal, ok := record["datatype"]
			if !ok {
				continue
			}
			tag, err := resolveDataTypeTag(tagVal)
			if err != nil {
				return nil, err
			}
			if !tag.IsAnalog() {
				continue
			}
			val, ok := record[f.name]
			if !ok {
				return nil, fmt.Errorf("encode %q: %w", f.name, ErrMissingField)
			}
			buf, err = encodeDataTypeValue(buf, tag, val)
			if err != nil {
				return nil, err
			}

		case f.repeat == repeatCount, f.repeat == repeatBytes, f.repeat == repeatToEnd:
			list, ok := toList(record[f.name])
			if !ok {
				return nil, fmt.Errorf("encode %q: %w", f.name, ErrMissingField)
			}
			var err error
			for _, elem := range list {
				buf, err = encodeOne(f.physical, buf, elem, record)
				if err != nil {
					return nil, err
				}
			}

		case f.name == "datatype" && f.physical == "uint8":
			// The literal "datatype:uint8" field (write_attr,
			// attr_reporting_config, reported_attribute, ...) accepts
			// the same DataType/uint8/friendly-name spellings a
			// "value:datatype" field's tag does; normalize through
			// resolveDataTypeTag before serializing, same as the
			// analogDeltaPhysical branch above.
			val, ok := record[f.name]
			if !ok {
				return nil, fmt.Errorf("encode %q: %w", f.name, ErrMissingField)
			}
			tag, err := resolveDataTypeTag(val)
			if err != nil {
				return nil, err
			}
			buf, err = encodeOne(f.physical, buf, tag, record)
			if err != nil {
				return nil, err
			}

		default:
			val, ok := record[f.name]
			if !ok {
				return nil, fmt.Errorf("encode %q: %w", f.name, ErrMissingField)
			}
			var err error
			buf, err = encodeOne(f.physical, buf, val, record)
			if err != nil {
				return nil, err
			}
			if f.stopOnNonSuccess {
				if s, ok := val.(Status); ok && s != StatusSuccess {
					return buf, nil
				}
			}
		}
	}

	return buf, nil
}

// decodeOne decodes a single value of the named physical type. record
// is the in-progress record for this field list, consulted when
// physical == "datatype".
func decodeOne(physical string, data []byte, off int, record map[string]any) (any, int, error) {
	switch physical {
	case "uint8":
		return decodeUint8(data, off)
	case "uint16":
		return decodeUint16(data, off)
	case "uint32":
		return decodeUint32(data, off)
	case "uint64":
		return decodeUint64(data, off)
	case "int8":
		return decodeInt8(data, off)
	case "int16":
		return decodeInt16(data, off)
	case "int32":
		return decodeInt32(data, off)
	case "int64":
		return decodeInt64(data, off)
	case "enum8":
		return decodeUint8(data, off)
	case "enum16":
		return decodeUint16(data, off)
	case "bool":
		v, next, err := readUint(data, off, 1)
		if err != nil {
			return nil, off, err
		}
		return v != 0, next, nil
	case "string":
		return decodeString(data, off)
	case "status8":
		return decodeStatus8(data, off)
	case "eui64":
		return decodeEUI64(data, off)
	case "datatype":
		raw, ok := record["datatype"]
		if !ok {
			return nil, off, fmt.Errorf("decode datatype-typed value: %w", ErrInvalidState)
		}
		tag, err := resolveDataTypeTag(raw)
		if err != nil {
			return nil, off, err
		}
		return decodeDataTypeValue(tag, data, off)
	default:
		if sub, ok := compositeFieldLists[physical]; ok {
			nested, next, _, err := decodeFields(sub, data, off)
			return nested, next, err
		}
		return nil, off, fmt.Errorf("field type %q: %w", physical, ErrMalformed)
	}
}

// encodeOne is the dual of decodeOne.
func encodeOne(physical string, buf []byte, val any, record map[string]any) ([]byte, error) {
	switch physical {
	case "uint8", "enum8":
		return encodeUintValue(buf, val, 1)
	case "uint16", "enum16":
		return encodeUintValue(buf, val, 2)
	case "uint32":
		return encodeUintValue(buf, val, 4)
	case "uint64":
		return encodeUintValue(buf, val, 8)
	case "int8":
		return encodeUintValue(buf, val, 1)
	case "int16":
		return encodeUintValue(buf, val, 2)
	case "int32":
		return encodeUintValue(buf, val, 4)
	case "int64":
		return encodeUintValue(buf, val, 8)
	case "bool":
		b, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("value %v (%T) is not a bool: %w", val, val, ErrMalformed)
		}
		if b {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case "string":
		return encodeString(buf, val)
	case "status8":
		return encodeStatus8(buf, val)
	case "eui64":
		return encodeEUI64(buf, val)
	case "datatype":
		raw, ok := record["datatype"]
		if !ok {
			return nil, fmt.Errorf("encode datatype-typed value: %w", ErrInvalidState)
		}
		tag, err := resolveDataTypeTag(raw)
		if err != nil {
			return nil, err
		}
		return encodeDataTypeValue(buf, tag, val)
	default:
		if sub, ok := compositeFieldLists[physical]; ok {
			nested, ok := val.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("value for %q is not a record: %w", physical, ErrMalformed)
			}
			encoded, err := encodeFields(sub, nested)
			if err != nil {
				return nil, err
			}
			return append(buf, encoded...), nil
		}
		return nil, fmt.Errorf("field type %q: %w", physical, ErrMalformed)
	}
}

// toInt coerces a decoded scratch-counter value (always one of the
// unsigned integer physical types) to an int.
func toInt(v any) (int, error) {
	switch x := v.(type) {
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case int:
		return x, nil
	default:
		return 0, fmt.Errorf("count value %v (%T) is not an integer: %w", v, v, ErrMalformed)
	}
}

// toList type-asserts a record entry as the []any every repeated field
// is stored/expected as.
func toList(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}
