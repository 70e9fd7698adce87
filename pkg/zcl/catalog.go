package zcl

import "fmt"

// zdoEntry is one row of the ZDO cluster table: a 16-bit cluster id
// and the field descriptor list that decodes/encodes its body.
type zdoEntry struct {
	ClusterID   uint16
	descriptors []string
	fields      []*field
}

func zdo(id uint16, descs ...string) zdoEntry {
	return zdoEntry{ClusterID: id, descriptors: descs, fields: parseFields(descs)}
}

// profileCommandEntry is one row of the profile (general) command
// table, shared across every cluster.
type profileCommandEntry struct {
	ID          uint8
	descriptors []string
	fields      []*field
}

func profileCommand(id uint8, descs ...string) profileCommandEntry {
	return profileCommandEntry{ID: id, descriptors: descs, fields: parseFields(descs)}
}

// commandEntry is one row of a cluster's rx or tx command table.
type commandEntry struct {
	ID          uint8
	descriptors []string
	fields      []*field
}

func command(id uint8, descs ...string) commandEntry {
	return commandEntry{ID: id, descriptors: descs, fields: parseFields(descs)}
}

// attributeEntry is one row of a cluster's attribute table. DataType
// here is catalog metadata (the name an external tool would show for
// this attribute's expected representation) — it plays no role in
// decoding frames, which always carry an explicit datatype tag byte.
type attributeEntry struct {
	ID       uint16
	DataType string
}

func attr(id uint16, dataType string) attributeEntry {
	return attributeEntry{ID: id, DataType: dataType}
}

// clusterEntry is one row of the ZCL cluster table.
type clusterEntry struct {
	ID         uint16
	RX         map[string]commandEntry
	TX         map[string]commandEntry
	Attributes map[string]attributeEntry

	rxByID   map[uint8]string
	txByID   map[uint8]string
	attrByID map[uint16]string
}

func cluster(id uint16, rx, tx map[string]commandEntry, attrs map[string]attributeEntry) clusterEntry {
	c := clusterEntry{ID: id, RX: rx, TX: tx, Attributes: attrs}
	c.rxByID = make(map[uint8]string, len(rx))
	for name, e := range rx {
		c.rxByID[e.ID] = name
	}
	c.txByID = make(map[uint8]string, len(tx))
	for name, e := range tx {
		c.txByID[e.ID] = name
	}
	c.attrByID = make(map[uint16]string, len(attrs))
	for name, e := range attrs {
		c.attrByID[e.ID] = name
	}
	return c
}

// profilesByName maps each recognized Zigbee profile name to its
// 16-bit profile identifier (spec.md §3).
var profilesByName = map[string]uint16{
	"ZIGBEE":            0x0000,
	"HOME_AUTOMATION":   0x0104,
	"ZIGBEE_LIGHT_LINK": 0xC05E,
}

var profilesByID = reverseUint16Map(profilesByName)

// ProfileID resolves a recognized profile name (e.g. "HOME_AUTOMATION")
// to its 16-bit identifier.
func ProfileID(name string) (uint16, error) {
	id, ok := profilesByName[name]
	if !ok {
		return 0, fmt.Errorf("profile %q: %w", name, ErrUnknownName)
	}
	return id, nil
}

// ProfileName resolves a 16-bit profile identifier back to its name.
func ProfileName(id uint16) (string, error) {
	name, ok := profilesByID[id]
	if !ok {
		return "", fmt.Errorf("profile 0x%04X: %w", id, ErrUnknownName)
	}
	return name, nil
}

func reverseUint16Map(m map[string]uint16) map[uint16]string {
	r := make(map[uint16]string, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

var (
	zdoByID            map[uint16]string
	profileCommandByID map[uint8]string
	clusterByID        map[uint16]string
)

func init() {
	zdoByID = make(map[uint16]string, len(zdoTable))
	for name, e := range zdoTable {
		zdoByID[e.ClusterID] = name
	}

	profileCommandByID = make(map[uint8]string, len(profileCommandTable))
	for name, e := range profileCommandTable {
		profileCommandByID[e.ID] = name
	}

	clusterByID = make(map[uint16]string, len(clusterTable))
	for name, e := range clusterTable {
		clusterByID[e.ID] = name
	}
}

func lookupZDOByName(name string) (zdoEntry, error) {
	e, ok := zdoTable[name]
	if !ok {
		return zdoEntry{}, fmt.Errorf("ZDO cluster %q: %w", name, ErrUnknownName)
	}
	return e, nil
}

func lookupZDOByID(id uint16) (string, zdoEntry, error) {
	name, ok := zdoByID[id]
	if !ok {
		return "", zdoEntry{}, fmt.Errorf("ZDO cluster 0x%04X: %w", id, ErrUnknownCluster)
	}
	return name, zdoTable[name], nil
}

func lookupProfileCommandByName(name string) (profileCommandEntry, error) {
	e, ok := profileCommandTable[name]
	if !ok {
		return profileCommandEntry{}, fmt.Errorf("profile command %q: %w", name, ErrUnknownName)
	}
	return e, nil
}

func lookupProfileCommandByID(id uint8) (string, profileCommandEntry, error) {
	name, ok := profileCommandByID[id]
	if !ok {
		return "", profileCommandEntry{}, fmt.Errorf("profile command 0x%02X: %w", id, ErrUnknownCommand)
	}
	return name, profileCommandTable[name], nil
}

func lookupClusterByName(name string) (clusterEntry, error) {
	e, ok := clusterTable[name]
	if !ok {
		return clusterEntry{}, fmt.Errorf("cluster %q: %w", name, ErrUnknownCluster)
	}
	return e, nil
}

func lookupClusterByID(id uint16) (string, clusterEntry, error) {
	name, ok := clusterByID[id]
	if !ok {
		return "", clusterEntry{}, fmt.Errorf("cluster 0x%04X: %w", id, ErrUnknownCluster)
	}
	return name, clusterTable[name], nil
}

// ZDOByName resolves a ZDO cluster name to its (id, descriptors),
// spec.md §4.3's "by ZDO cluster name" lookup.
func ZDOByName(name string) (ZDODump, error) {
	e, err := lookupZDOByName(name)
	if err != nil {
		return ZDODump{}, err
	}
	return ZDODump{Name: name, ClusterID: e.ClusterID, Fields: append([]string(nil), e.descriptors...)}, nil
}

// ZDOByID resolves a ZDO cluster id back to its name and descriptors,
// the reverse of ZDOByName.
func ZDOByID(id uint16) (ZDODump, error) {
	name, e, err := lookupZDOByID(id)
	if err != nil {
		return ZDODump{}, err
	}
	return ZDODump{Name: name, ClusterID: e.ClusterID, Fields: append([]string(nil), e.descriptors...)}, nil
}

// ProfileCommandByName resolves a profile-command name to its
// (id, descriptors), spec.md §4.3's "by profile-command name" lookup.
func ProfileCommandByName(name string) (ProfileCommandDump, error) {
	e, err := lookupProfileCommandByName(name)
	if err != nil {
		return ProfileCommandDump{}, err
	}
	return ProfileCommandDump{Name: name, ID: e.ID, Fields: append([]string(nil), e.descriptors...)}, nil
}

// ProfileCommandByID resolves a profile-command id back to its name
// and descriptors, the reverse of ProfileCommandByName.
func ProfileCommandByID(id uint8) (ProfileCommandDump, error) {
	name, e, err := lookupProfileCommandByID(id)
	if err != nil {
		return ProfileCommandDump{}, err
	}
	return ProfileCommandDump{Name: name, ID: e.ID, Fields: append([]string(nil), e.descriptors...)}, nil
}

// ClusterByName resolves a ZCL cluster name to its (id, rx-commands,
// tx-commands, attributes), spec.md §4.3's "by ZCL cluster name"
// lookup.
func ClusterByName(name string) (ClusterDump, error) {
	e, err := lookupClusterByName(name)
	if err != nil {
		return ClusterDump{}, err
	}
	return newClusterDump(name, e), nil
}

// ClusterByID resolves a ZCL cluster id back to its name and
// rx/tx/attribute tables, the reverse of ClusterByName.
func ClusterByID(id uint16) (ClusterDump, error) {
	name, e, err := lookupClusterByID(id)
	if err != nil {
		return ClusterDump{}, err
	}
	return newClusterDump(name, e), nil
}

// ClusterCommandByName resolves a command name within a cluster to
// its (id, descriptors), spec.md §4.3's "within a cluster, by command
// name" lookup. The rx table (commands the cluster receives) is
// checked first, then tx; use ClusterByName for the full rx/tx split.
func ClusterCommandByName(clusterName, commandName string) (id uint8, fields []string, err error) {
	ce, err := lookupClusterByName(clusterName)
	if err != nil {
		return 0, nil, err
	}
	if c, ok := ce.RX[commandName]; ok {
		return c.ID, append([]string(nil), c.descriptors...), nil
	}
	if c, ok := ce.TX[commandName]; ok {
		return c.ID, append([]string(nil), c.descriptors...), nil
	}
	return 0, nil, fmt.Errorf("cluster %q command %q: %w", clusterName, commandName, ErrUnknownName)
}

// AttributeID resolves a cluster's attribute name to its 16-bit id and
// catalog data-type name (spec.md §4.3: "within a cluster, by
// attribute name -> (id, datatype name)").
func AttributeID(clusterName, attributeName string) (id uint16, dataType string, err error) {
	ce, err := lookupClusterByName(clusterName)
	if err != nil {
		return 0, "", err
	}
	a, ok := ce.Attributes[attributeName]
	if !ok {
		return 0, "", fmt.Errorf("cluster %q attribute %q: %w", clusterName, attributeName, ErrUnknownAttribute)
	}
	return a.ID, a.DataType, nil
}

// AttributeName resolves a cluster's attribute id back to its name and
// catalog data-type name.
func AttributeName(clusterName string, attributeID uint16) (name string, dataType string, err error) {
	ce, err := lookupClusterByName(clusterName)
	if err != nil {
		return "", "", err
	}
	name, ok := ce.attrByID[attributeID]
	if !ok {
		return "", "", fmt.Errorf("cluster %q attribute 0x%04X: %w", clusterName, attributeID, ErrUnknownAttribute)
	}
	return name, ce.Attributes[name].DataType, nil
}
