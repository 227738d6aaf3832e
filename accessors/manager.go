package accessors

import (
	"sync"

	"github.com/Velocidex/ordereddict"
	errors "github.com/pkg/errors"
	"www.velocidex.com/golang/physmem/acls"
	"www.velocidex.com/golang/physmem/constants"
	"www.velocidex.com/golang/vfilter"
)

var (
	GlobalDeviceManager = NewDefaultDeviceManager()
)

// Accessors describe themselves so the registry and the GUI can
// enumerate what is available and what permissions each needs.
type AccessorDescriptor struct {
	Name        string
	Description string
	Permissions []acls.ACL_PERMISSION
}

type Describer interface {
	Describe() *AccessorDescriptor
}

// A device manager is a factory for creating accessors.
type DeviceManager interface {
	GetAccessor(scheme string, scope vfilter.Scope) (FileSystemAccessor, error)
	Copy() DeviceManager
	Clear()
	Register(accessor FileSystemAccessor)
}

func GetManager(scope vfilter.Scope) DeviceManager {
	manager_any, pres := scope.Resolve(constants.SCOPE_DEVICE_MANAGER)
	if pres {
		manager, ok := manager_any.(DeviceManager)
		if ok {
			return manager
		}
	}

	return GlobalDeviceManager
}

func GetAccessor(scheme string, scope vfilter.Scope) (FileSystemAccessor, error) {
	return GetManager(scope).GetAccessor(scheme, scope)
}

type DefaultDeviceManager struct {
	mu           sync.Mutex
	handlers     map[string]FileSystemAccessor
	descriptions *ordereddict.Dict
}

func NewDefaultDeviceManager() *DefaultDeviceManager {
	return &DefaultDeviceManager{
		handlers:     make(map[string]FileSystemAccessor),
		descriptions: ordereddict.NewDict(),
	}
}

func (self *DefaultDeviceManager) GetAccessor(
	scheme string, scope vfilter.Scope) (FileSystemAccessor, error) {

	self.mu.Lock()
	handler, pres := self.handlers[scheme]
	self.mu.Unlock()

	if pres {
		res, err := handler.New(scope)
		return res, err
	}
	return nil, errors.New("Unknown filesystem accessor " + scheme)
}

func (self *DefaultDeviceManager) Register(accessor FileSystemAccessor) {
	describer, ok := accessor.(Describer)
	if !ok {
		panic("Registered accessors must implement Describe()")
	}

	descriptor := describer.Describe()

	self.mu.Lock()
	defer self.mu.Unlock()

	self.handlers[descriptor.Name] = accessor
	self.descriptions.Set(descriptor.Name, descriptor.Description)
}

func (self *DefaultDeviceManager) DescribeAccessors() *ordereddict.Dict {
	self.mu.Lock()
	defer self.mu.Unlock()

	return self.descriptions
}

func (self *DefaultDeviceManager) Clear() {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.handlers = make(map[string]FileSystemAccessor)
	self.descriptions = ordereddict.NewDict()
}

func (self *DefaultDeviceManager) Copy() DeviceManager {
	self.mu.Lock()
	defer self.mu.Unlock()

	result := NewDefaultDeviceManager()
	for k, v := range self.handlers {
		result.handlers[k] = v
	}

	result.descriptions = ordereddict.NewDict()
	result.descriptions.MergeFrom(self.descriptions)
	return result
}

func Register(accessor FileSystemAccessor) {
	GlobalDeviceManager.Register(accessor)
}

func DescribeAccessors() *ordereddict.Dict {
	return GlobalDeviceManager.DescribeAccessors()
}
