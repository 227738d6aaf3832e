package accessors

import (
	"strings"

	"www.velocidex.com/golang/physmem/json"
)

// A PathSpec describes how to open a path. It can be nested: the
// Delegate is opened first with the DelegateAccessor, and the outer
// accessor then interprets Path within it. For example a sparse
// overlay over a raw device, or a registry hive inside an image.
type PathSpec struct {
	DelegateAccessor string    `json:"DelegateAccessor,omitempty"`
	DelegatePath     string    `json:"DelegatePath,omitempty"`
	Delegate         *PathSpec `json:"Delegate,omitempty"`
	Path             string    `json:"Path,omitempty"`
}

func (self PathSpec) Copy() *PathSpec {
	result := self
	if self.Delegate != nil {
		result.Delegate = self.Delegate.Copy()
	}
	return &result
}

// The delegate path is either specified directly or as a full nested
// pathspec.
func (self *PathSpec) GetDelegatePath() string {
	if self.Delegate != nil {
		return self.Delegate.String()
	}
	return self.DelegatePath
}

func (self *PathSpec) String() string {
	return json.MustMarshalString(self)
}

func PathSpecFromString(parsed_path string) (*PathSpec, error) {
	result := &PathSpec{}

	// It is a serialized JSON object.
	if strings.HasPrefix(parsed_path, "{") {
		err := json.Unmarshal([]byte(parsed_path), result)
		return result, err
	}

	// Otherwise the string is a verbatim path.
	result.Path = parsed_path
	return result, nil
}

// If the path is a serialized pathspec, expand it into the OSPath,
// otherwise treat it as a plain path string.
func maybeParsePathSpec(path string, result *OSPath) error {
	pathspec, err := PathSpecFromString(path)
	if err != nil {
		return err
	}

	result.pathspec = pathspec
	return nil
}
