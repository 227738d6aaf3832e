package vql

import (
	"fmt"

	"www.velocidex.com/golang/physmem/acls"
	"www.velocidex.com/golang/vfilter"
)

const (
	ACL_MANAGER_VAR = "$acl"
)

type ACLManager interface {
	CheckAccess(permission ...acls.ACL_PERMISSION) (bool, error)
}

// Check access through the ACL manager in the scope. NOTE: This
// assumes it is not possible for a user to mask the ACL manager in
// the scope - if the ACL_MANAGER_VAR is overridden with something
// else this locks down the entire system and denies all permissions.
func CheckAccess(scope vfilter.Scope, permissions ...acls.ACL_PERMISSION) error {
	manager_any, pres := scope.Resolve(ACL_MANAGER_VAR)
	if !pres {
		return fmt.Errorf("Permission denied: %v", permissions)
	}

	manager, ok := manager_any.(ACLManager)
	if !ok {
		return fmt.Errorf("Permission denied: %v", permissions)
	}

	perm, err := manager.CheckAccess(permissions...)
	if !perm || err != nil {
		return fmt.Errorf("Permission denied: %v", permissions)
	}

	return nil
}
