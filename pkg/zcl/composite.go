package zcl

// compositeDescriptorStrings holds the field-descriptor sequence for
// each built-in composite type named in spec.md §3. simple_descriptor
// is carried verbatim from the source catalog's ZDO Simple_Desc_resp
// helper; the rest (read_attr_status, write_attr, write_attr_status,
// attr_reporting_config, attr_reporting_status, reported_attribute)
// are new, designed from spec.md §4.2's rules and the worked byte
// sequences in spec.md §8 scenarios 5 and 6 — the source this catalog
// was ported from names these composite element types but never
// defines their wire shape.
var compositeDescriptorStrings = map[string][]string{
	"simple_descriptor": {
		"endpoint:uint8",
		"profile:uint16",
		"device_identifier:uint16",
		"device_version:uint8",
		"n_in_clusters:uint8",
		"in_clusters:*uint16",
		"n_out_clusters:uint8",
		"out_clusters:*uint16",
	},

	// ZCL Spec "2.5.4 Read Attributes Response Command" — datatype and
	// value are only present when status == SUCCESS.
	"read_attr_status": {
		"attribute:uint16",
		"s_status:status8",
		"datatype:uint8",
		"value:datatype",
	},

	// ZCL Spec "2.5.3 Write Attributes Command" — one record per
	// attribute to write.
	"write_attr": {
		"attribute:uint16",
		"datatype:uint8",
		"value:datatype",
	},

	// ZCL Spec "2.5.7 Write Attributes Response Command" — one record
	// per attribute that failed to write.
	"write_attr_status": {
		"status:status8",
		"attribute:uint16",
	},

	// ZCL Spec "2.5.9 Configure Reporting Command" — direction 0x00
	// (attribute reported by this device) carries datatype/min/max and,
	// for analog types only, a reportable-change delta of the
	// attribute's own physical width (spec.md scenario 6).
	"attr_reporting_config": {
		"direction:uint8",
		"attribute:uint16",
		"datatype:uint8",
		"minimum:uint16",
		"maximum:uint16",
		"delta:analog_delta",
	},

	// ZCL Spec "2.5.10 Configure Reporting Response Command" — direction
	// and attribute are only present when status != SUCCESS.
	"attr_reporting_status": {
		"s_status:status8",
		"direction:uint8",
		"attribute:uint16",
	},

	// ZCL Spec "2.5.11 Report Attributes Command" element.
	"reported_attribute": {
		"attribute:uint16",
		"datatype:uint8",
		"value:datatype",
	},
}

// compositeFieldLists is compositeDescriptorStrings parsed once at
// init into the tagged-variant form the interpreter walks directly.
var compositeFieldLists map[string][]*field

func init() {
	compositeFieldLists = make(map[string][]*field, len(compositeDescriptorStrings))
	for name, descs := range compositeDescriptorStrings {
		compositeFieldLists[name] = parseFields(descs)
	}
}
