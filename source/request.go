/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package source

import (
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/config"
	"dirpx.dev/hfx/typeref"
)

// TypedRequest builds an access request from a Go value: the canonical type
// identity is derived from v (via typeref, honoring a typeref.Namer fast
// path), so the reference is validated at compile time instead of being a
// free-form string.
func TypedRequest(v any, access apis.Access, opts ...config.Option) (apis.Request, error) {
	name, err := typeref.Of(v, config.NewConfig(opts...))
	if err != nil {
		return apis.Request{}, err
	}
	return apis.Request{Type: name, Access: access}, nil
}

// NamedRequest builds an access request from a textual fully-qualified type
// name, for types that are not available at hint-authoring time.
func NamedRequest(name string, access apis.Access) (apis.Request, error) {
	canonical, err := typeref.Named(name)
	if err != nil {
		return apis.Request{}, err
	}
	return apis.Request{Type: canonical, Access: access}, nil
}
