package bass

import (
	"log"
	"path/filepath"
	"runtime"
)

// codec plugins this application knows about, loaded dynamically via
// BASS_PluginLoad rather than linked in
var codecPlugins = []string{"bassflac", "bassopus"}

// CodecLibraries returns the platform file names of the known codec plugins.
func CodecLibraries() []string {
	libs := make([]string, 0, len(codecPlugins))
	for _, name := range codecPlugins {
		libs = append(libs, pluginLibrary(name))
	}
	return libs
}

func pluginLibrary(name string) string {
	switch runtime.GOOS {
	case "darwin":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}

// LoadCodecs loads the known codec plugins from dir. A plugin that fails to
// load is logged and skipped; the rest still load. The returned plugins
// should be freed before Free is called on the library.
func LoadCodecs(dir string) []*Plugin {
	var loaded []*Plugin
	for _, lib := range CodecLibraries() {
		path := filepath.Join(dir, lib)
		plugin, err := PluginLoad(path)
		if err != nil {
			log.Printf("skipping codec plugin %s: %v", path, err)
			continue
		}
		log.Printf("loaded codec plugin %s", path)
		loaded = append(loaded, plugin)
	}
	return loaded
}
