/*
   Velociraptor - Dig Deeper
   Copyright (C) 2019-2025 Rapid7 Inc.

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU Affero General Public License as published
   by the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU Affero General Public License for more details.

   You should have received a copy of the GNU Affero General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package accessors

import (
	"strings"
)

// Responsible for serialization of linux paths
type LinuxPathManipulator int

func (self LinuxPathManipulator) PathParse(path string, result *OSPath) error {
	err := maybeParsePathSpec(path, result)
	if err != nil {
		return err
	}
	path = result.pathspec.Path

	components := strings.Split(path, "/")
	result.Components = make([]string, 0, len(components))
	for _, c := range components {
		if c == "" || c == "." || c == ".." {
			continue
		}
		result.Components = append(result.Components, c)
	}
	return nil
}

func (self LinuxPathManipulator) AsPathSpec(path *OSPath) *PathSpec {
	result := path.pathspec
	if result == nil {
		result = &PathSpec{}
		path.pathspec = result
	}
	result.Path = "/" + strings.Join(path.Components, "/")
	return result
}

func (self LinuxPathManipulator) PathJoin(path *OSPath) string {
	result := self.AsPathSpec(path)
	if result.DelegateAccessor == "" && result.GetDelegatePath() == "" {
		return result.Path
	}
	return result.String()
}

func NewLinuxOSPath(path string) (*OSPath, error) {
	manipulator := LinuxPathManipulator(0)
	result := &OSPath{
		pathspec:    &PathSpec{},
		Manipulator: manipulator,
	}

	err := manipulator.PathParse(path, result)
	return result, err
}

// A manipulator for accessors whose paths are not real filesystem
// paths at all - the path is carried as a single opaque component.
type PathspecPathManipulator int

func (self PathspecPathManipulator) PathParse(path string, result *OSPath) error {
	err := maybeParsePathSpec(path, result)
	if err != nil {
		return err
	}

	result.Components = nil
	if result.pathspec.Path != "" {
		result.Components = []string{result.pathspec.Path}
	}
	return nil
}

func (self PathspecPathManipulator) AsPathSpec(path *OSPath) *PathSpec {
	result := path.pathspec
	if result == nil {
		result = &PathSpec{}
		path.pathspec = result
	}
	if len(path.Components) > 0 {
		result.Path = path.Components[0]
	}
	return result
}

func (self PathspecPathManipulator) PathJoin(path *OSPath) string {
	result := self.AsPathSpec(path)
	if result.DelegateAccessor == "" && result.GetDelegatePath() == "" {
		return result.Path
	}
	return result.String()
}

func NewPathspecOSPath(path string) (*OSPath, error) {
	manipulator := PathspecPathManipulator(0)
	result := &OSPath{
		pathspec:    &PathSpec{},
		Manipulator: manipulator,
	}

	err := manipulator.PathParse(path, result)
	return result, err
}

func MustNewPathspecOSPath(path string) *OSPath {
	result, err := NewPathspecOSPath(path)
	if err != nil {
		panic(err)
	}
	return result
}
