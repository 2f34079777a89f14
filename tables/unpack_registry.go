/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tables

import (
	"fmt"
	"sync"
)

// UnpackSpec describes how rows of a table kind are unpacked for output.
// UXF stores some tables as one row per session with nested item lists per
// trial; list-valued attributes are exploded into one row per element while
// the key columns are repeated.
type UnpackSpec struct {
	// KeyColumns are held fixed (and repeated) while lists are exploded.
	KeyColumns []string
}

var (
	unpackRegistry = make(map[Kind]UnpackSpec)
	mu             sync.RWMutex
)

// RegisterUnpackSpec associates a table kind with its unpack spec.
// If a spec is already registered for the kind, it panics to prevent
// accidental overrides.
func RegisterUnpackSpec(kind Kind, spec UnpackSpec) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := unpackRegistry[kind]; exists {
		panic(fmt.Sprintf("tables: unpack spec for kind %q already registered", kind))
	}
	unpackRegistry[kind] = spec
}

// UnpackSpecFor retrieves the unpack spec for a table kind, if any.
func UnpackSpecFor(kind Kind) (UnpackSpec, bool) {
	mu.RLock()
	defer mu.RUnlock()
	spec, ok := unpackRegistry[kind]
	return spec, ok
}

func init() {
	session := UnpackSpec{KeyColumns: []string{"ppid_session_dataname"}}
	for _, k := range Standard() {
		RegisterUnpackSpec(k, session)
	}
	// Tracker rows carry trial_num once per sample rather than once per
	// trial, so it joins the key columns during unpacking.
	RegisterUnpackSpec(KindTrackers, UnpackSpec{
		KeyColumns: []string{"ppid_session_dataname", "trial_num"},
	})
}
