package zcl

// profileCommandTable is the general ("profile-wide") command table
// shared by every cluster (ZCL Spec "2.5 General Command Frames").
// Ported from the source catalog's PROFILE_COMMANDS_BY_NAME.
//
// The source models these commands' attribute/record lists with a
// bare "*T" typeref and never implements encoding for it (its own
// encoder raises on any list field). A profile command's attribute
// list has no count or length prefix on the wire — it simply runs to
// the end of the frame — so these are ported here as "%T" (repeat to
// end), which both matches the real wire format (spec.md scenario 5)
// and satisfies the "every *T is preceded by n_" catalog invariant
// vacuously, since none of these use "*T".
//
// Tags 0x08, 0x09, and 0x0c-0x10 are reserved but unimplemented per
// spec.md's Non-goals.
var profileCommandTable = map[string]profileCommandEntry{
	"read_attributes": profileCommand(0x00,
		"attributes:%uint16",
	),
	"read_attributes_response": profileCommand(0x01,
		"attributes:%read_attr_status",
	),
	"write_attributes": profileCommand(0x02,
		"writes:%write_attr",
	),
	"write_attributes_undivided": profileCommand(0x03,
		"writes:%write_attr",
	),
	"write_attributes_response": profileCommand(0x04,
		"results:%write_attr_status",
	),
	"write_attributes_no_response": profileCommand(0x05,
		"writes:%write_attr",
	),
	"configure_reporting": profileCommand(0x06,
		"configs:%attr_reporting_config",
	),
	"configure_reporting_response": profileCommand(0x07,
		"results:%attr_reporting_status",
	),
	// 0x08 read_reporting_configuration -- reserved, unimplemented.
	// 0x09 read_reporting_configuration_response -- reserved, unimplemented.
	"report_attributes": profileCommand(0x0a,
		"reports:%reported_attribute",
	),
	"default_response": profileCommand(0x0b,
		"command:uint8",
		"status:status8",
	),
	// 0x0c discover_attributes -- reserved, unimplemented.
	// 0x0d discover_attributes_response -- reserved, unimplemented.
	// 0x0e read_attributes_structured -- reserved, unimplemented.
	// 0x0f write_attributes_structured -- reserved, unimplemented.
	// 0x10 write_attributes_structured_response -- reserved, unimplemented.
}
