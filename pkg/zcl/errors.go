package zcl

import "errors"

// Sentinel error kinds returned (wrapped with fmt.Errorf("...: %w", ...))
// by every decode/encode entry point in this package.
var (
	// ErrUnknownCluster indicates a cluster id or name is absent from the catalog.
	ErrUnknownCluster = errors.New("unknown cluster")

	// ErrUnknownCommand indicates a command id or name is absent from the
	// resolved command table.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownAttribute indicates an attribute id or name is absent from
	// a cluster's attribute table.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownStatus indicates a status8 field held a byte not present
	// in the Status table.
	ErrUnknownStatus = errors.New("unknown status code")

	// ErrUnknownDataType indicates a datatype tag byte is not present in
	// the DataType table.
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrMalformed indicates a buffer underrun, a truncated string, or a
	// value otherwise out of range for its fixed-width representation.
	ErrMalformed = errors.New("malformed frame")

	// ErrMissingField indicates encode was invoked without a field the
	// descriptor requires.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidState indicates a datatype-typed field was requested
	// without an earlier "datatype" field having been decoded or supplied.
	ErrInvalidState = errors.New("datatype field absent")

	// ErrUnknownName indicates a lookup or encode call referenced a
	// profile, ZDO cluster, profile-command, or cluster-command name the
	// catalog doesn't define. Unknown ZCL cluster names report
	// ErrUnknownCluster and unknown attribute names ErrUnknownAttribute.
	ErrUnknownName = errors.New("unknown name")
)
