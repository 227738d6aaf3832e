/*

  Support for running accessors inside a VQL scope. The scope carries
  the per-query cache and the ACL manager which gates access to
  privileged machine state.

*/

package vql

import (
	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/physmem/vql/acl_managers"
	"www.velocidex.com/golang/vfilter"
)

func MakeScope() vfilter.Scope {
	result := vfilter.NewScope()
	result.AppendVars(ordereddict.NewDict().
		Set(CACHE_VAR, NewScopeCache()).
		Set(ACL_MANAGER_VAR, acl_managers.NullACLManager{}))

	return result
}
