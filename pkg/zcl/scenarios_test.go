package zcl

import (
	"bytes"
	"testing"
)

// TestOnCommand is spec.md §8 scenario 1.
func TestOnCommand(t *testing.T) {
	clusterID, data, err := EncodeClusterCommand("onoff", "on", 7, false, true, nil, map[string]any{})
	if err != nil {
		t.Fatal(err)
	}
	if clusterID != 0x0006 {
		t.Errorf("cluster id = 0x%04X, want 0x0006", clusterID)
	}
	want := []byte{0x01, 0x07, 0x01}
	if !bytes.Equal(data, want) {
		t.Fatalf("encoded = % X, want % X", data, want)
	}

	name, seq, kind, cmd, defaultResponse, record, err := DecodeZCL(clusterID, data)
	if err != nil {
		t.Fatal(err)
	}
	if name != "onoff" || seq != 7 || kind != CommandCluster || cmd != "on" || !defaultResponse {
		t.Errorf("decode = (%q, %d, %v, %q, %v), want (onoff, 7, CLUSTER, on, true)", name, seq, kind, cmd, defaultResponse)
	}
	if len(record) != 0 {
		t.Errorf("record = %v, want empty", record)
	}
}

// TestMoveToLevel is spec.md §8 scenario 2.
func TestMoveToLevel(t *testing.T) {
	clusterID, data, err := EncodeClusterCommand("level_control", "move_to_level", 3, false, true, nil, map[string]any{
		"level": uint8(200),
		"time":  uint16(10),
	})
	if err != nil {
		t.Fatal(err)
	}
	if clusterID != 0x0008 {
		t.Errorf("cluster id = 0x%04X, want 0x0008", clusterID)
	}
	want := []byte{0x01, 0x03, 0x00, 0xC8, 0x0A, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("encoded = % X, want % X", data, want)
	}
}

// TestActiveEPResponse is spec.md §8 scenario 3: a well-formed 7-byte
// frame (seq, status, addr16, n, eps) round-trips through decode and
// encode.
func TestActiveEPResponse(t *testing.T) {
	data := []byte{0x00, 0x00, 0x34, 0x12, 0x02, 0x05, 0x09}

	name, seq, record, err := DecodeZDO(0x8005, data)
	if err != nil {
		t.Fatal(err)
	}
	if name != "active_ep_resp" || seq != 0 {
		t.Fatalf("decode = (%q, %d), want (active_ep_resp, 0)", name, seq)
	}
	if record["status"] != StatusSuccess {
		t.Errorf("status = %v, want SUCCESS", record["status"])
	}
	if record["addr16"] != uint16(0x1234) {
		t.Errorf("addr16 = %v, want 0x1234", record["addr16"])
	}
	eps, _ := record["active_eps"].([]any)
	if len(eps) != 2 || eps[0] != uint8(5) || eps[1] != uint8(9) {
		t.Errorf("active_eps = %v, want [5 9]", eps)
	}

	clusterID, reencoded, err := EncodeZDO(name, seq, record)
	if err != nil {
		t.Fatal(err)
	}
	if clusterID != 0x8005 {
		t.Errorf("cluster id = 0x%04X, want 0x8005", clusterID)
	}
	if !bytes.Equal(reencoded, data) {
		t.Errorf("re-encoded = % X, want % X", reencoded, data)
	}
}

// TestActiveEPResponseEarlyStop is spec.md §8 scenario 4.
func TestActiveEPResponseEarlyStop(t *testing.T) {
	data := []byte{0x00, 0x83, 0x34, 0x12}

	name, seq, record, err := DecodeZDO(0x8005, data)
	if err != nil {
		t.Fatal(err)
	}
	if name != "active_ep_resp" || seq != 0 {
		t.Fatalf("decode = (%q, %d), want (active_ep_resp, 0)", name, seq)
	}
	if record["status"] != StatusUnsupManufClusterCommand {
		t.Errorf("status = %v, want UNSUP_MANUF_CLUSTER_COMMAND", record["status"])
	}
	if len(record) != 1 {
		t.Errorf("record = %v, want only {status: ...}", record)
	}
}

// TestReadAttributesRequestResponse is spec.md §8 scenario 5.
func TestReadAttributesRequestResponse(t *testing.T) {
	clusterID, data, err := EncodeProfileCommand("onoff", "read_attributes", 1, false, true, nil, map[string]any{
		"attributes": []any{uint16(0x0000)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if clusterID != 0x0006 {
		t.Errorf("cluster id = 0x%04X, want 0x0006", clusterID)
	}
	wantBody := []byte{0x00, 0x00}
	if !bytes.Equal(data[3:], wantBody) {
		t.Fatalf("body = % X, want % X", data[3:], wantBody)
	}
	if data[0] != 0x00 {
		t.Errorf("frame control = 0x%02X, want 0x00 (profile)", data[0])
	}

	respClusterID, respData, err := EncodeProfileCommand("onoff", "read_attributes_response", 1, true, true, nil, map[string]any{
		"attributes": []any{
			map[string]any{
				"attribute": uint16(0x0000),
				"status":    StatusSuccess,
				"datatype":  DataTypeBoolean,
				"value":     true,
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, _, kind, cmd, _, record, err := DecodeZCL(respClusterID, respData)
	if err != nil {
		t.Fatal(err)
	}
	if kind != CommandProfile || cmd != "read_attributes_response" {
		t.Fatalf("decode kind/cmd = (%v, %q)", kind, cmd)
	}
	attrs, _ := record["attributes"].([]any)
	if len(attrs) != 1 {
		t.Fatalf("attributes = %v, want 1 entry", attrs)
	}
	entry := attrs[0].(map[string]any)
	if entry["attribute"] != uint16(0x0000) || entry["status"] != StatusSuccess || entry["datatype"] != uint8(0x10) || entry["value"] != true {
		t.Errorf("read_attr_status entry = %+v", entry)
	}
}

// TestConfigureReportingAnalogAttribute is spec.md §8 scenario 6.
func TestConfigureReportingAnalogAttribute(t *testing.T) {
	fields := compositeFieldLists["attr_reporting_config"]
	record := map[string]any{
		"direction": uint8(0),
		"attribute": uint16(0x0000),
		"datatype":  "uint8",
		"minimum":   uint16(1),
		"maximum":   uint16(60),
		"delta":     uint8(2),
	}

	buf, err := encodeFields(fields, record)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x20, 0x01, 0x00, 0x3C, 0x00, 0x02}
	if !bytes.Equal(buf, want) {
		t.Fatalf("encoded = % X, want % X", buf, want)
	}
}
