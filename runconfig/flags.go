// Copyright 2016 CoreOS, Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package runconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SizeFlag parses human-friendly byte sizes ("4Mi", "512k", "128") into an
// int, for sizing the CORE's output buffer from the command line. This type
// implements the flag.Value interface, the same pattern flagutil's IPv4Flag
// uses.
type SizeFlag struct {
	val int
}

func (f *SizeFlag) Bytes() int {
	return f.val
}

var sizeSuffixes = map[string]int64{
	"":   1,
	"k":  1 << 10,
	"ki": 1 << 10,
	"m":  1 << 20,
	"mi": 1 << 20,
	"g":  1 << 30,
	"gi": 1 << 30,
}

func (f *SizeFlag) Set(v string) error {
	v = strings.TrimSpace(v)
	i := 0
	for i < len(v) && (v[i] == '-' || v[i] == '+' || (v[i] >= '0' && v[i] <= '9')) {
		i++
	}
	if i == 0 {
		return errors.New("not a size: missing numeric prefix")
	}
	n, err := strconv.ParseInt(v[:i], 10, 64)
	if err != nil {
		return fmt.Errorf("not a size: %v", err)
	}
	mult, ok := sizeSuffixes[strings.ToLower(v[i:])]
	if !ok {
		return fmt.Errorf("not a size: unknown suffix %q", v[i:])
	}
	if n < 0 {
		return errors.New("not a size: negative")
	}
	f.val = int(n * mult)
	return nil
}

func (f *SizeFlag) String() string {
	return strconv.Itoa(f.val)
}

// Type names the value kind for cobra's pflag-based flag sets.
func (f *SizeFlag) Type() string {
	return "size"
}

// HashAlgFlag selects the checksum algorithm digest.Sum uses. This type
// implements the flag.Value interface.
type HashAlgFlag struct {
	val string
}

func (f *HashAlgFlag) String() string {
	if f.val == "" {
		return "none"
	}
	return f.val
}

func (f *HashAlgFlag) Alg() string {
	return f.val
}

// Type names the value kind for cobra's pflag-based flag sets.
func (f *HashAlgFlag) Type() string {
	return "hashAlg"
}

func (f *HashAlgFlag) Set(v string) error {
	switch v {
	case "blake2b", "xxhash", "none", "":
		f.val = v
		return nil
	default:
		return fmt.Errorf("unsupported hash algorithm %q", v)
	}
}
