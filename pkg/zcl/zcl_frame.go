package zcl

import "fmt"

// CommandKind distinguishes a profile-wide (general) command from a
// cluster-specific command, reported by DecodeZCL per frame-control
// bit0.
type CommandKind int

const (
	CommandProfile CommandKind = iota
	CommandCluster
)

func (k CommandKind) String() string {
	if k == CommandCluster {
		return "CLUSTER"
	}
	return "PROFILE"
}

// Frame-control octet bits (ZCL Spec "2.1.1.1 Frame Control Field").
// The manufacturer-specific bit is bit2: the source this catalog was
// ported from disagreed with itself (coding it as bit4 in one place,
// bit2 in another, and hardcoding manufacturer-specific off
// everywhere); the ZCL specification mandates bit2, used here.
const (
	frameControlFrameType              = 1 << 0
	frameControlManufacturerSpecific   = 1 << 2
	frameControlDirection              = 1 << 3
	frameControlDisableDefaultResponse = 1 << 4
)

// DecodeZCL decodes a ZCL frame addressed to clusterID: the
// frame-control octet, optional manufacturer code, transaction
// sequence, and command id, then dispatches the remainder through
// either the profile-command table or the resolved cluster's rx/tx
// command table.
func DecodeZCL(clusterID uint16, data []byte) (name string, seq uint8, kind CommandKind, commandName string, defaultResponseRequested bool, record map[string]any, err error) {
	clusterName, entry, err := lookupClusterByID(clusterID)
	if err != nil {
		return "", 0, 0, "", false, nil, err
	}

	fc, off, err := readUint(data, 0, 1)
	if err != nil {
		return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q frame control: %w", clusterName, err)
	}
	frameControl := uint8(fc)

	if frameControl&frameControlManufacturerSpecific != 0 {
		_, off, err = readUint(data, off, 2)
		if err != nil {
			return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q manufacturer code: %w", clusterName, err)
		}
	}

	seqVal, off, err := readUint(data, off, 1)
	if err != nil {
		return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q sequence: %w", clusterName, err)
	}
	seq = uint8(seqVal)

	cmdVal, off, err := readUint(data, off, 1)
	if err != nil {
		return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q command id: %w", clusterName, err)
	}
	commandID := uint8(cmdVal)

	defaultResponseRequested = frameControl&frameControlDisableDefaultResponse == 0

	if frameControl&frameControlFrameType == 0 {
		profName, profEntry, perr := lookupProfileCommandByID(commandID)
		if perr != nil {
			return "", 0, 0, "", false, nil, fmt.Errorf("cluster %q: %w", clusterName, perr)
		}
		var stopped bool
		record, _, stopped, err = decodeFields(profEntry.fields, data, off)
		if err != nil {
			return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q %q body: %w", clusterName, profName, err)
		}
		if stopped {
			logZCLDecode(clusterName, CommandProfile, profName, seq)
		}
		return clusterName, seq, CommandProfile, profName, defaultResponseRequested, record, nil
	}

	direction := frameControl&frameControlDirection != 0
	cmdName, cmdEntry, cerr := lookupClusterCommand(entry, direction, commandID)
	if cerr != nil {
		return "", 0, 0, "", false, nil, fmt.Errorf("cluster %q: %w", clusterName, cerr)
	}
	var stopped bool
	record, _, stopped, err = decodeFields(cmdEntry.fields, data, off)
	if err != nil {
		return "", 0, 0, "", false, nil, fmt.Errorf("ZCL %q %q body: %w", clusterName, cmdName, err)
	}
	if stopped {
		logZCLDecode(clusterName, CommandCluster, cmdName, seq)
	}
	return clusterName, seq, CommandCluster, cmdName, defaultResponseRequested, record, nil
}

// lookupClusterCommand resolves a wire command id against a cluster's
// rx table (direction == false, client to server) or tx table
// (direction == true, server to client).
func lookupClusterCommand(ce clusterEntry, direction bool, id uint8) (string, commandEntry, error) {
	byID, table := ce.rxByID, ce.RX
	if direction {
		byID, table = ce.txByID, ce.TX
	}
	name, ok := byID[id]
	if !ok {
		return "", commandEntry{}, fmt.Errorf("command 0x%02X: %w", id, ErrUnknownCommand)
	}
	return name, table[name], nil
}

// EncodeClusterCommand encodes a cluster-specific command. Command
// resolution always consults the cluster's rx table, matching the
// convention that a client encodes the commands a server receives;
// server-originated replies are out of this function's scope.
func EncodeClusterCommand(clusterName, commandName string, seq uint8, direction bool, defaultResponse bool, manufacturerCode *uint16, fields map[string]any) (clusterID uint16, data []byte, err error) {
	ce, err := lookupClusterByName(clusterName)
	if err != nil {
		return 0, nil, err
	}
	cmd, ok := ce.RX[commandName]
	if !ok {
		return 0, nil, fmt.Errorf("cluster %q command %q: %w", clusterName, commandName, ErrUnknownName)
	}

	frameControl := uint8(frameControlFrameType)
	if direction {
		frameControl |= frameControlDirection
	}
	if !defaultResponse {
		frameControl |= frameControlDisableDefaultResponse
	}

	buf := []byte{frameControl}
	if manufacturerCode != nil {
		frameControl |= frameControlManufacturerSpecific
		buf[0] = frameControl
		buf, err = encodeUintValue(buf, *manufacturerCode, 2)
		if err != nil {
			return 0, nil, err
		}
	}
	buf = append(buf, seq, cmd.ID)

	body, err := encodeFields(cmd.fields, fields)
	if err != nil {
		return 0, nil, fmt.Errorf("cluster %q command %q body: %w", clusterName, commandName, err)
	}

	return ce.ID, append(buf, body...), nil
}

// EncodeProfileCommand encodes a general command shared across all
// clusters (e.g. read_attributes). The cluster name still selects the
// destination cluster id; command resolution uses the profile-command
// table, not the cluster's own command tables.
func EncodeProfileCommand(clusterName, commandName string, seq uint8, direction bool, defaultResponse bool, manufacturerCode *uint16, fields map[string]any) (clusterID uint16, data []byte, err error) {
	ce, err := lookupClusterByName(clusterName)
	if err != nil {
		return 0, nil, err
	}
	cmd, err := lookupProfileCommandByName(commandName)
	if err != nil {
		return 0, nil, err
	}

	var frameControl uint8
	if direction {
		frameControl |= frameControlDirection
	}
	if !defaultResponse {
		frameControl |= frameControlDisableDefaultResponse
	}

	buf := []byte{frameControl}
	if manufacturerCode != nil {
		frameControl |= frameControlManufacturerSpecific
		buf[0] = frameControl
		buf, err = encodeUintValue(buf, *manufacturerCode, 2)
		if err != nil {
			return 0, nil, err
		}
	}
	buf = append(buf, seq, cmd.ID)

	body, err := encodeFields(cmd.fields, fields)
	if err != nil {
		return 0, nil, fmt.Errorf("cluster %q profile command %q body: %w", clusterName, commandName, err)
	}

	return ce.ID, append(buf, body...), nil
}
