package zcl

import "fmt"

// DecodeZDO decodes a ZDO (ZigBee Device Object) frame: the one-octet
// transaction sequence followed by a body interpreted through the
// catalog entry for clusterID.
func DecodeZDO(clusterID uint16, data []byte) (name string, seq uint8, record map[string]any, err error) {
	name, entry, err := lookupZDOByID(clusterID)
	if err != nil {
		return "", 0, nil, err
	}

	seqVal, off, err := readUint(data, 0, 1)
	if err != nil {
		return "", 0, nil, fmt.Errorf("ZDO %q sequence: %w", name, err)
	}
	seq = uint8(seqVal)

	var stopped bool
	record, _, stopped, err = decodeFields(entry.fields, data, off)
	if err != nil {
		return "", 0, nil, fmt.Errorf("ZDO %q body: %w", name, err)
	}

	if stopped {
		logZDODecode(name, clusterID, seq)
	}
	return name, seq, record, nil
}

// EncodeZDO encodes a ZDO frame for the named cluster: the sequence
// octet followed by the descriptor-encoded body.
func EncodeZDO(name string, seq uint8, fields map[string]any) (clusterID uint16, data []byte, err error) {
	entry, err := lookupZDOByName(name)
	if err != nil {
		return 0, nil, err
	}

	buf := []byte{seq}
	body, err := encodeFields(entry.fields, fields)
	if err != nil {
		return 0, nil, fmt.Errorf("ZDO %q body: %w", name, err)
	}

	return entry.ClusterID, append(buf, body...), nil
}
