package zcl

// clusterTable is the ZCL cluster catalog: per-cluster receive
// commands (sent to the cluster), transmit commands (sent by the
// cluster), and attributes. Ported from the source catalog's
// CLUSTERS_BY_NAME. Per-field vestigial enum variant-tag lists (never
// consulted by the source decoder) are dropped in favor of the plain
// "enum8"/"enum16" physical type; attribute DataType entries keep a
// descriptive name since that slot is catalog metadata only, never
// consulted by the wire codec (every attribute value on the wire
// carries its own inline datatype tag byte).
var clusterTable = map[string]clusterEntry{
	// ZCL Spec -- Chapter 3 -- General
	"basic": cluster(0x0000,
		map[string]commandEntry{
			"reset": command(0x00),
		},
		map[string]commandEntry{},
		map[string]attributeEntry{
			"zclversion":          attr(0x0000, "uint8"),
			"application_version": attr(0x0001, "uint8"),
			"stack_version":       attr(0x0002, "uint8"),
			"hw_version":          attr(0x0003, "uint8"),
			"manufacturer_name":   attr(0x0004, "string"),
			"model_id":            attr(0x0005, "string"),
			"date_code":           attr(0x0006, "string"),
			"power_source":        attr(0x0007, "enum8"),
			"location":            attr(0x0010, "string"),
			"physical_environment": attr(0x0011, "uint8"),
			"device_enabled":      attr(0x0012, "bool"),
			"sw_build_id":         attr(0x4000, "string"),
		},
	),
	"power_configuration": cluster(0x0001,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
	"identify": cluster(0x0003,
		map[string]commandEntry{
			"identify":       command(0x00, "identify_time:uint16"),
			"identify_query": command(0x01),
			"trigger_effect": command(0x40, "effect_id:uint8", "effect_variant:uint8"),
		},
		map[string]commandEntry{
			"identify_query_response": command(0x00, "timeout:uint16"),
		},
		map[string]attributeEntry{
			"identify_time": attr(0x0000, "uint16"),
		},
	),
	"groups": cluster(0x0004,
		map[string]commandEntry{
			"add_group":                  command(0x00, "id:uint16", "name:string"),
			"view_group":                 command(0x01, "id:uint16"),
			"get_group_membership":       command(0x02, "n_count:uint8", "ids:*uint16"),
			"remove_group":               command(0x03, "id:uint16"),
			"remove_all_groups":          command(0x04),
			"add_group_if_identifying":   command(0x05, "id:uint16", "name:string"),
		},
		map[string]commandEntry{
			"add_group_response":            command(0x00, "status:status8", "id:uint16"),
			"view_group_response":           command(0x01, "status:status8", "id:uint16", "name:string"),
			"get_group_membership_response":  command(0x02, "capacity:uint8", "n_count:uint8", "ids:*uint16"),
			"remove_group_response":         command(0x03, "status:status8", "id:uint16"),
		},
		map[string]attributeEntry{
			"name_support": attr(0x0000, "uint8"),
		},
	),
	"scenes": cluster(0x0005,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
	"onoff": cluster(0x0006,
		map[string]commandEntry{
			"off":                          command(0x00),
			"on":                           command(0x01),
			"toggle":                       command(0x02),
			"off_with_effect":              command(0x40, "effect_id:uint8", "effect_variant:uint8"),
			"on_with_recall_global_scene":  command(0x41),
			"on_with_timed_off":            command(0x42, "control:uint8", "on_time:uint16", "off_wait_time:uint16"),
		},
		map[string]commandEntry{},
		map[string]attributeEntry{
			"onoff":                 attr(0x0000, "bool"),
			"global_scene_control":  attr(0x4000, "bool"),
			"on_time":               attr(0x4001, "uint16"),
			"off_wait_time":         attr(0x4002, "uint16"),
		},
	),
	"onoff_configuration": cluster(0x0007,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
	"level_control": cluster(0x0008,
		map[string]commandEntry{
			"move_to_level":         command(0x00, "level:uint8", "time:uint16"),
			"move":                  command(0x01, "mode:enum8", "rate:uint8"),
			"step":                  command(0x02, "mode:enum8", "size:uint8", "time:uint16"),
			"stop":                  command(0x03),
			"move_to_level_on_off":  command(0x04, "level:uint8", "time:uint16"),
			"move_on_off":           command(0x05, "mode:enum8", "rate:uint8"),
			"step_on_off":           command(0x06, "mode:enum8", "size:uint8", "time:uint16"),
			"stop_on_off":           command(0x07),
		},
		map[string]commandEntry{},
		map[string]attributeEntry{
			"current_level":          attr(0x0000, "uint8"),
			"remaining_time":         attr(0x0001, "uint16"),
			"on_off_transition_time": attr(0x0010, "uint16"),
			"on_level":               attr(0x0011, "uint8"),
			"on_transition_time":     attr(0x0012, "uint16"),
			"off_transition_time":    attr(0x0013, "uint16"),
			"default_move_rate":      attr(0x0014, "uint16"),
		},
	),
	"poll_control": cluster(0x0020,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
	"diagnostics": cluster(0x0b05,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),

	// ZCL Spec -- Chapter 4 -- Measurement and Sensing
	"electrical_measurement": cluster(0x0b04,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),

	// ZCL Spec -- Chapter 5 -- Lighting
	"color": cluster(0x0300,
		map[string]commandEntry{
			"move_to_hue":                command(0x00, "hue:uint8", "dir:enum8", "time:uint16"),
			"move_hue":                   command(0x01, "mode:enum8", "rate:uint8"),
			"step_hue":                   command(0x02, "mode:enum8", "size:uint8", "time:uint8"),
			"move_to_satuation":          command(0x03, "saturation:uint8", "dir:enum8", "time:uint16"),
			"move_saturation":            command(0x04, "mode:enum8", "rate:uint8"),
			"step_saturation":            command(0x05, "mode:enum8", "size:uint8", "time:uint8"),
			"move_to_hue_saturation":     command(0x06, "hue:uint8", "saturation:uint8", "time:uint16"),
			"move_to_color_temperature":  command(0x0a, "mireds:uint16", "time:uint16"),
		},
		map[string]commandEntry{},
		map[string]attributeEntry{
			"hue":            attr(0x0000, "uint8"),
			"saturation":     attr(0x0001, "uint8"),
			"remaining_time": attr(0x0002, "uint16"),
			"temperature":    attr(0x0007, "uint16"),
		},
	),

	// ZCL Spec -- Chapter 13 -- Commissioning
	"commissioning": cluster(0x0015,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
	"touchlink": cluster(0x1000,
		map[string]commandEntry{},
		map[string]commandEntry{},
		map[string]attributeEntry{},
	),
}
