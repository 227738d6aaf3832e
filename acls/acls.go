package acls

/*

ACLs enforce access to the endpoint's state.

Accessors which expose privileged machine state declare the
permission they require in their descriptor. Before an accessor is
instantiated the permission is checked against the ACL manager
carried in the scope. The client normally runs with a null manager
(everything allowed) - the check exists so embedding frameworks can
restrict what a query is allowed to touch.

*/

import (
	"fmt"
)

type ACL_PERMISSION int

const (
	NO_PERMISSIONS ACL_PERMISSION = iota

	// Issue any query at all.
	ANY_QUERY

	// Read files from the endpoint's filesystem.
	FILESYSTEM_READ

	// Write files to the endpoint's filesystem.
	FILESYSTEM_WRITE

	// Access operating system state - devices, physical memory,
	// process memory.
	MACHINE_STATE

	// Collect executable code from the endpoint.
	EXECVE
)

func (self ACL_PERMISSION) String() string {
	switch self {
	case NO_PERMISSIONS:
		return "NO_PERMISSIONS"
	case ANY_QUERY:
		return "ANY_QUERY"
	case FILESYSTEM_READ:
		return "FILESYSTEM_READ"
	case FILESYSTEM_WRITE:
		return "FILESYSTEM_WRITE"
	case MACHINE_STATE:
		return "MACHINE_STATE"
	case EXECVE:
		return "EXECVE"
	}
	return fmt.Sprintf("%d", self)
}
