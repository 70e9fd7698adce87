package zcl

import (
	"reflect"
	"testing"
)

func TestDecodeFieldsCountPrefix(t *testing.T) {
	fields := parseFields([]string{"n_items:uint8", "items:*uint16"})
	data := []byte{0x02, 0x34, 0x12, 0x78, 0x56}

	record, off, _, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != len(data) {
		t.Errorf("cursor = %d, want %d", off, len(data))
	}
	want := []any{uint16(0x1234), uint16(0x5678)}
	if !reflect.DeepEqual(record["items"], want) {
		t.Errorf("items = %v, want %v", record["items"], want)
	}
	if _, present := record["n_items"]; present {
		t.Error("n_items should not be emitted in the record")
	}
}

func TestDecodeFieldsZeroLengthCountPrefix(t *testing.T) {
	fields := parseFields([]string{"n_items:uint8", "items:*uint16"})
	data := []byte{0x00}

	record, off, _, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != 1 {
		t.Errorf("cursor = %d, want 1", off)
	}
	if got := record["items"].([]any); len(got) != 0 {
		t.Errorf("items = %v, want empty", got)
	}
}

func TestDecodeFieldsBytePrefix(t *testing.T) {
	fields := parseFields([]string{"b_body:uint8", "body:#uint8"})
	data := []byte{0x03, 0x01, 0x02, 0x03, 0xFF}

	record, off, _, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != 4 {
		t.Errorf("cursor = %d, want 4 (trailing byte untouched)", off)
	}
	want := []any{uint8(1), uint8(2), uint8(3)}
	if !reflect.DeepEqual(record["body"], want) {
		t.Errorf("body = %v, want %v", record["body"], want)
	}
}

func TestDecodeFieldsRepeatToEnd(t *testing.T) {
	fields := parseFields([]string{"values:%uint16"})
	data := []byte{0x01, 0x00, 0x02, 0x00}

	record, _, _, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []any{uint16(1), uint16(2)}
	if !reflect.DeepEqual(record["values"], want) {
		t.Errorf("values = %v, want %v", record["values"], want)
	}
}

func TestDecodeFieldsStopOnNonSuccess(t *testing.T) {
	fields := parseFields([]string{"s_status:status8", "addr16:uint16"})
	data := []byte{0x83, 0x34, 0x12}

	record, off, stopped, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != 1 {
		t.Errorf("cursor = %d, want 1 (stopped right after status)", off)
	}
	if !stopped {
		t.Error("stopped = false, want true")
	}
	if _, present := record["addr16"]; present {
		t.Error("addr16 should not be decoded after non-SUCCESS status")
	}
	if record["status"] != StatusUnsupManufClusterCommand {
		t.Errorf("status = %v, want %v", record["status"], StatusUnsupManufClusterCommand)
	}
}

func TestDecodeFieldsContinuesOnSuccess(t *testing.T) {
	fields := parseFields([]string{"s_status:status8", "addr16:uint16"})
	data := []byte{0x00, 0x34, 0x12}

	record, off, stopped, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != 3 {
		t.Errorf("cursor = %d, want 3", off)
	}
	if stopped {
		t.Error("stopped = true, want false")
	}
	if record["addr16"] != uint16(0x1234) {
		t.Errorf("addr16 = %v, want 0x1234", record["addr16"])
	}
}

func TestDatatypeFieldDecodesPriorTag(t *testing.T) {
	fields := parseFields([]string{"datatype:uint8", "value:datatype"})
	data := []byte{0x20, 0x07}

	record, _, _, err := decodeFields(fields, data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if record["value"] != uint8(7) {
		t.Errorf("value = %v, want 7", record["value"])
	}
}

func TestDatatypeFieldMissingTagFails(t *testing.T) {
	fields := parseFields([]string{"value:datatype"})
	if _, _, _, err := decodeFields(fields, []byte{0x07}, 0); err == nil {
		t.Fatal("expected error when datatype field is absent")
	}
}

func TestAnalogDeltaPresentOnlyForAnalogTypes(t *testing.T) {
	fields := compositeFieldLists["attr_reporting_config"]

	// datatype=uint8 (analog) -- delta is present.
	analog := []byte{0x00, 0x00, 0x00, 0x20, 0x01, 0x00, 0x3C, 0x00, 0x02}
	record, off, _, err := decodeFields(fields, analog, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != len(analog) {
		t.Errorf("cursor = %d, want %d", off, len(analog))
	}
	if record["delta"] != uint8(2) {
		t.Errorf("delta = %v, want 2", record["delta"])
	}

	// datatype=boolean (not analog) -- delta is absent, no trailing byte.
	nonAnalog := []byte{0x00, 0x00, 0x00, 0x10, 0x01, 0x00, 0x3C, 0x00}
	record, off, _, err = decodeFields(fields, nonAnalog, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != len(nonAnalog) {
		t.Errorf("cursor = %d, want %d", off, len(nonAnalog))
	}
	if _, present := record["delta"]; present {
		t.Errorf("delta should be absent for a non-analog data type, got %v", record["delta"])
	}
}

func TestEncodeFieldsBytePrefixMeasuresThenEmits(t *testing.T) {
	fields := parseFields([]string{"b_body:uint8", "body:#uint8"})
	record := map[string]any{"body": []any{uint8(1), uint8(2), uint8(3)}}

	buf, err := encodeFields(fields, record)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x03, 0x01, 0x02, 0x03}
	if !reflect.DeepEqual(buf, want) {
		t.Errorf("encodeFields = % X, want % X", buf, want)
	}
}

func TestEncodeDecodeRoundTripCountPrefix(t *testing.T) {
	fields := parseFields([]string{"n_items:uint8", "items:*uint16"})
	record := map[string]any{"items": []any{uint16(5), uint16(9)}}

	buf, err := encodeFields(fields, record)
	if err != nil {
		t.Fatal(err)
	}
	got, _, _, err := decodeFields(fields, buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got["items"], record["items"]) {
		t.Errorf("round trip items = %v, want %v", got["items"], record["items"])
	}
}
