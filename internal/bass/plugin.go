//go:build cgo

package bass

/*
#include <stdlib.h>
#include "bass.h"
*/
import "C"

import "unsafe"

// Plugin is a loaded BASS add-on, e.g. bassflac or bassopus. Loading a
// plugin extends the format support of the StreamCreateFile/URL functions.
type Plugin struct {
	handle C.HPLUGIN
	Path   string
}

// PluginLoad loads a codec plugin from a shared library file.
func PluginLoad(path string) (*Plugin, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.BASS_PluginLoad(cpath, 0)
	if h == 0 {
		return nil, lastError("BASS_PluginLoad")
	}
	return &Plugin{handle: h, Path: path}, nil
}

// Free unloads the plugin. Streams already using it are freed as well.
func (p *Plugin) Free() error {
	if C.BASS_PluginFree(p.handle) == 0 {
		return lastError("BASS_PluginFree")
	}
	return nil
}
