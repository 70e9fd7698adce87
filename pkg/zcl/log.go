package zcl

import "github.com/rs/zerolog/log"

// This codec is a pure function library (spec.md §5: no suspension
// points, no mutable state), so logging is limited to debug-level
// tracing of the one surprising decode outcome: an s_ field halting
// the interpreter early on a non-SUCCESS status, leaving the caller
// with a shorter record than the descriptor list promises. Callers
// only reach these when decodeFields reports that early stop; a
// well-formed frame that decodes in full never logs anything.

func logZDODecode(name string, clusterID uint16, seq uint8) {
	log.Debug().
		Str("cluster", name).
		Uint16("cluster_id", clusterID).
		Uint8("seq", seq).
		Msg("ZDO decode")
}

func logZCLDecode(cluster string, kind CommandKind, command string, seq uint8) {
	log.Debug().
		Str("cluster", cluster).
		Str("kind", kind.String()).
		Str("command", command).
		Uint8("seq", seq).
		Msg("ZCL decode")
}
