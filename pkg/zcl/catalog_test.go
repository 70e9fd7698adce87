package zcl

import (
	"errors"
	"testing"
)

func TestProfileLookupRoundTrip(t *testing.T) {
	id, err := ProfileID("HOME_AUTOMATION")
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x0104 {
		t.Errorf("ProfileID = 0x%04X, want 0x0104", id)
	}
	name, err := ProfileName(id)
	if err != nil {
		t.Fatal(err)
	}
	if name != "HOME_AUTOMATION" {
		t.Errorf("ProfileName = %q, want HOME_AUTOMATION", name)
	}
}

func TestProfileLookupUnknownName(t *testing.T) {
	if _, err := ProfileID("NOT_A_PROFILE"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("err = %v, want wrapping ErrUnknownName", err)
	}
}

func TestAttributeLookupRoundTrip(t *testing.T) {
	id, dataType, err := AttributeID("onoff", "onoff")
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x0000 || dataType != "bool" {
		t.Errorf("AttributeID = (0x%04X, %q), want (0x0000, bool)", id, dataType)
	}
	name, dataType, err := AttributeName("onoff", id)
	if err != nil {
		t.Fatal(err)
	}
	if name != "onoff" || dataType != "bool" {
		t.Errorf("AttributeName = (%q, %q), want (onoff, bool)", name, dataType)
	}
}

func TestAttributeLookupUnknownFails(t *testing.T) {
	if _, _, err := AttributeID("onoff", "not_an_attribute"); !errors.Is(err, ErrUnknownAttribute) {
		t.Errorf("err = %v, want wrapping ErrUnknownAttribute", err)
	}
	if _, _, err := AttributeID("not_a_cluster", "onoff"); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("err = %v, want wrapping ErrUnknownCluster", err)
	}
}

func TestDecodeZDOUnknownClusterFails(t *testing.T) {
	if _, _, _, err := DecodeZDO(0xFFFF, []byte{0x00}); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("err = %v, want wrapping ErrUnknownCluster", err)
	}
}

func TestEncodeClusterCommandUnknownNameFails(t *testing.T) {
	if _, _, err := EncodeClusterCommand("onoff", "not_a_command", 1, false, true, nil, nil); !errors.Is(err, ErrUnknownName) {
		t.Errorf("err = %v, want wrapping ErrUnknownName", err)
	}
	if _, _, err := EncodeClusterCommand("not_a_cluster", "on", 1, false, true, nil, nil); !errors.Is(err, ErrUnknownCluster) {
		t.Errorf("err = %v, want wrapping ErrUnknownCluster", err)
	}
}

func TestZDOByNameAndByIDAgree(t *testing.T) {
	byName, err := ZDOByName("active_ep_resp")
	if err != nil {
		t.Fatal(err)
	}
	byID, err := ZDOByID(0x8005)
	if err != nil {
		t.Fatal(err)
	}
	if byName.ClusterID != 0x8005 || byID.Name != "active_ep_resp" {
		t.Errorf("ZDOByName/ZDOByID disagree: %+v vs %+v", byName, byID)
	}
}

func TestProfileCommandByNameAndByIDAgree(t *testing.T) {
	byName, err := ProfileCommandByName("read_attributes")
	if err != nil {
		t.Fatal(err)
	}
	byID, err := ProfileCommandByID(0x00)
	if err != nil {
		t.Fatal(err)
	}
	if byName.ID != 0x00 || byID.Name != "read_attributes" {
		t.Errorf("ProfileCommandByName/ProfileCommandByID disagree: %+v vs %+v", byName, byID)
	}
}

func TestClusterByNameAndByIDAgree(t *testing.T) {
	byName, err := ClusterByName("onoff")
	if err != nil {
		t.Fatal(err)
	}
	byID, err := ClusterByID(0x0006)
	if err != nil {
		t.Fatal(err)
	}
	if byName.ID != 0x0006 || byID.Name != "onoff" {
		t.Errorf("ClusterByName/ClusterByID disagree: %+v vs %+v", byName, byID)
	}
}

func TestClusterCommandByName(t *testing.T) {
	id, fields, err := ClusterCommandByName("onoff", "on")
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x01 || len(fields) != 0 {
		t.Errorf("ClusterCommandByName(onoff, on) = (0x%02X, %v), want (0x01, [])", id, fields)
	}
	if _, _, err := ClusterCommandByName("onoff", "not_a_command"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("err = %v, want wrapping ErrUnknownName", err)
	}
}

func TestCatalogDumpValidates(t *testing.T) {
	if err := Dump().Validate(); err != nil {
		t.Fatalf("catalog dump failed schema validation: %v", err)
	}
}
