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

package engine

import (
	"errors"
	"runtime"

	"github.com/amx-go/goamx/amx/internal/detect"
	"github.com/amx-go/goamx/amx/internal/engine/asm"
)

// ErrUnavailable is returned by Scope.Open when the AMX coprocessor isn't
// present; it is a capability query, not a fault (spec.md §7 item 3).
var ErrUnavailable = errors.New("engine: AMX coprocessor unavailable")

// Scope is a scoped acquisition of the AMX coprocessor: Open issues SET on
// the first (outermost) call and CLR is only issued when the matching
// Close brings the nesting depth back to zero, mirroring the teacher's
// SMEGuard (hwy/contrib/matmul/asm/sme_guard_darwin_arm64.go), generalized
// from a single lock/unlock pair to the nest-counted SET/CLR scope §4.3
// requires. A Scope is not safe for concurrent use: each worker goroutine
// owns and opens its own Scope on its own OS thread, never shares one
// (spec.md §4.3/§5 - AMX register state is per-thread).
type Scope struct {
	depth        int
	unlockThread func()
}

// Open enables the AMX coprocessor for the calling goroutine's OS thread.
// The goroutine is locked to that thread for the scope's lifetime, since
// AMX register state cannot migrate across a thread boundary (spec.md
// §4.3/§9). Reopening an already-open Scope is a no-op other than
// incrementing the nesting depth. If the coprocessor isn't available, or
// this build has no real AMX issue sites (asm.Available is false), Open
// returns ErrUnavailable and the scope remains closed; callers must
// fall back to the scalar path.
func (s *Scope) Open() error {
	if s.depth > 0 {
		s.depth++
		return nil
	}
	if !asm.Available || !detect.IsAvailable() {
		return ErrUnavailable
	}
	runtime.LockOSThread()
	asm.SET()
	s.depth = 1
	s.unlockThread = runtime.UnlockOSThread
	return nil
}

// Close decrements the nesting depth and, once it reaches zero, issues
// CLR and releases the OS thread lock. Calling Close on an already-closed
// Scope is a no-op.
func (s *Scope) Close() {
	if s.depth == 0 {
		return
	}
	s.depth--
	if s.depth == 0 {
		asm.CLR()
		if s.unlockThread != nil {
			s.unlockThread()
			s.unlockThread = nil
		}
	}
}
