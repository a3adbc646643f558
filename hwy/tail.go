// Copyright 2025 go-highway Authors
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

package hwy

// NumBlocks returns how many vectors are needed to hold size elements.
//
// Example:
//
//	hwy.NumBlocks(4) // 1
//	hwy.NumBlocks(6) // 2, the second block has 2 active lanes
func NumBlocks(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + NumLanes - 1) / NumLanes
}

// TailCount returns the number of active lanes in the last block of size
// elements: NumLanes when size is aligned, 0 when size is 0.
func TailCount(size int) int {
	if size <= 0 {
		return 0
	}
	if r := size % NumLanes; r != 0 {
		return r
	}
	return NumLanes
}

// IsAligned returns true if size is a multiple of the vector width.
func IsAligned(size int) bool {
	return size%NumLanes == 0
}

// LoadBlocks splits src into NumBlocks(len(src)) vectors. The last vector is
// zero-filled past the end of src.
func LoadBlocks[T Floats](src []T) []Vec[T] {
	blocks := make([]Vec[T], NumBlocks(len(src)))
	for i := range blocks {
		blocks[i] = LoadPartial(src[i*NumLanes:])
	}
	return blocks
}

// StoreBlocks writes blocks back to dst, stopping at len(dst). Lanes past
// len(dst) are dropped.
func StoreBlocks[T Floats](blocks []Vec[T], dst []T) {
	for i, b := range blocks {
		off := i * NumLanes
		if off >= len(dst) {
			return
		}
		StorePartial(b, dst[off:])
	}
}
