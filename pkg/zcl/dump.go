package zcl

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ProfileDump is one row of CatalogDump.Profiles.
type ProfileDump struct {
	Name string `json:"name"`
	ID   uint16 `json:"id"`
}

// StatusDump is one row of CatalogDump.Statuses.
type StatusDump struct {
	Name string `json:"name"`
	Code uint8  `json:"code"`
}

// ZDODump is one row of CatalogDump.ZDO.
type ZDODump struct {
	Name      string   `json:"name"`
	ClusterID uint16   `json:"cluster_id"`
	Fields    []string `json:"fields"`
}

// ProfileCommandDump is one row of CatalogDump.ProfileCommands.
type ProfileCommandDump struct {
	Name   string   `json:"name"`
	ID     uint8    `json:"id"`
	Fields []string `json:"fields"`
}

// ClusterCommandDump is one rx/tx command row of a ClusterDump.
type ClusterCommandDump struct {
	Name   string   `json:"name"`
	ID     uint8    `json:"id"`
	Fields []string `json:"fields"`
}

// ClusterAttributeDump is one attribute row of a ClusterDump.
type ClusterAttributeDump struct {
	Name     string `json:"name"`
	ID       uint16 `json:"id"`
	DataType string `json:"data_type"`
}

// ClusterDump is one row of CatalogDump.Clusters.
type ClusterDump struct {
	Name       string                 `json:"name"`
	ID         uint16                 `json:"id"`
	RX         []ClusterCommandDump   `json:"rx_commands"`
	TX         []ClusterCommandDump   `json:"tx_commands"`
	Attributes []ClusterAttributeDump `json:"attributes"`
}

// CatalogDump is a complete, JSON-serializable snapshot of the
// catalog, intended for external documentation and configuration
// tooling (spec.md §6: "Catalog introspection").
type CatalogDump struct {
	Profiles        []ProfileDump        `json:"profiles"`
	Statuses        []StatusDump         `json:"statuses"`
	ZDO             []ZDODump            `json:"zdo"`
	ProfileCommands []ProfileCommandDump `json:"profile_commands"`
	Clusters        []ClusterDump        `json:"clusters"`
}

// Dump renders the full catalog. Every slice is sorted by id (or name,
// where no numeric id applies) so the output is deterministic across
// calls and process restarts.
func Dump() CatalogDump {
	d := CatalogDump{}

	for name, id := range profilesByName {
		d.Profiles = append(d.Profiles, ProfileDump{Name: name, ID: id})
	}
	sort.Slice(d.Profiles, func(i, j int) bool { return d.Profiles[i].ID < d.Profiles[j].ID })

	for code, name := range statusNames {
		d.Statuses = append(d.Statuses, StatusDump{Name: name, Code: uint8(code)})
	}
	sort.Slice(d.Statuses, func(i, j int) bool { return d.Statuses[i].Code < d.Statuses[j].Code })

	for name, e := range zdoTable {
		d.ZDO = append(d.ZDO, ZDODump{Name: name, ClusterID: e.ClusterID, Fields: append([]string(nil), e.descriptors...)})
	}
	sort.Slice(d.ZDO, func(i, j int) bool { return d.ZDO[i].ClusterID < d.ZDO[j].ClusterID })

	for name, e := range profileCommandTable {
		d.ProfileCommands = append(d.ProfileCommands, ProfileCommandDump{Name: name, ID: e.ID, Fields: append([]string(nil), e.descriptors...)})
	}
	sort.Slice(d.ProfileCommands, func(i, j int) bool { return d.ProfileCommands[i].ID < d.ProfileCommands[j].ID })

	for name, e := range clusterTable {
		d.Clusters = append(d.Clusters, newClusterDump(name, e))
	}
	sort.Slice(d.Clusters, func(i, j int) bool { return d.Clusters[i].ID < d.Clusters[j].ID })

	return d
}

// newClusterDump renders one cluster catalog entry as a ClusterDump,
// shared by Dump and the single-entry ClusterByName/ClusterByID
// lookups in catalog.go.
func newClusterDump(name string, e clusterEntry) ClusterDump {
	cd := ClusterDump{Name: name, ID: e.ID}
	for cn, c := range e.RX {
		cd.RX = append(cd.RX, ClusterCommandDump{Name: cn, ID: c.ID, Fields: append([]string(nil), c.descriptors...)})
	}
	sort.Slice(cd.RX, func(i, j int) bool { return cd.RX[i].ID < cd.RX[j].ID })
	for cn, c := range e.TX {
		cd.TX = append(cd.TX, ClusterCommandDump{Name: cn, ID: c.ID, Fields: append([]string(nil), c.descriptors...)})
	}
	sort.Slice(cd.TX, func(i, j int) bool { return cd.TX[i].ID < cd.TX[j].ID })
	for an, a := range e.Attributes {
		cd.Attributes = append(cd.Attributes, ClusterAttributeDump{Name: an, ID: a.ID, DataType: a.DataType})
	}
	sort.Slice(cd.Attributes, func(i, j int) bool { return cd.Attributes[i].ID < cd.Attributes[j].ID })
	return cd
}

// dumpSchema is the JSON Schema every CatalogDump must satisfy.
// Embedded as a Go literal rather than a file on disk since the schema
// describes this package's own output, not external configuration.
const dumpSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["profiles", "statuses", "zdo", "profile_commands", "clusters"],
  "properties": {
    "profiles": {"type": "array", "items": {"type": "object", "required": ["name", "id"]}},
    "statuses": {"type": "array", "items": {"type": "object", "required": ["name", "code"]}},
    "zdo": {"type": "array", "items": {"type": "object", "required": ["name", "cluster_id", "fields"]}},
    "profile_commands": {"type": "array", "items": {"type": "object", "required": ["name", "id", "fields"]}},
    "clusters": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "id", "rx_commands", "tx_commands", "attributes"]
      }
    }
  }
}`

// DumpSchema returns the JSON Schema document that CatalogDump's JSON
// rendering is validated against.
func DumpSchema() json.RawMessage {
	return json.RawMessage(dumpSchema)
}

var (
	dumpSchemaOnce    sync.Once
	dumpSchemaCompiled *jsonschema.Schema
	dumpSchemaErr     error
)

func compiledDumpSchema() (*jsonschema.Schema, error) {
	dumpSchemaOnce.Do(func() {
		var schemaMap any
		if err := json.Unmarshal([]byte(dumpSchema), &schemaMap); err != nil {
			dumpSchemaErr = fmt.Errorf("unmarshal catalog dump schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog_dump.json", schemaMap); err != nil {
			dumpSchemaErr = fmt.Errorf("add catalog dump schema resource: %w", err)
			return
		}
		compiled, err := c.Compile("catalog_dump.json")
		if err != nil {
			dumpSchemaErr = fmt.Errorf("compile catalog dump schema: %w", err)
			return
		}
		dumpSchemaCompiled = compiled
	})
	return dumpSchemaCompiled, dumpSchemaErr
}

// Validate checks d's JSON rendering against DumpSchema. External
// documentation and configuration tooling that consumes a serialized
// dump can call this to confirm the document it received is
// shaped as expected before walking it.
func (d CatalogDump) Validate() error {
	compiled, err := compiledDumpSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal catalog dump: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("unmarshal catalog dump for validation: %w", err)
	}

	return compiled.Validate(payload)
}
