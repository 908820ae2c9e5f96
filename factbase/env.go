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

package factbase

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// WithEnvFile loads build properties from a dotenv file. The file is read
// once at construction; later edits never reach the frozen snapshot.
func WithEnvFile(path string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		props, err := godotenv.Read(path)
		if err != nil {
			return err
		}
		for k, v := range props {
			s.props[k] = v
		}
		return nil
	}
}

// WithEnviron copies process environment variables carrying the given prefix
// into the build properties, with the prefix stripped. An empty prefix is
// rejected by taking no values at all: importing the whole environment into
// a closed world is never intended.
func WithEnviron(prefix string) Option {
	return func(s *snapshot) error {
		if s == nil {
			return ErrNilSnapshot
		}
		if prefix == "" {
			return nil
		}
		for _, kv := range os.Environ() {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || !strings.HasPrefix(k, prefix) {
				continue
			}
			s.props[strings.TrimPrefix(k, prefix)] = v
		}
		return nil
	}
}
