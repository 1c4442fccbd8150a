package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPath is where PprofMux serves the profiles.
const PprofPath = "/debug/pprof/"

// PprofMux returns a mux serving net/http/pprof under PprofPath. Mount it at
// PprofPath without stripping the prefix; pprof.Index resolves named
// profiles (heap, goroutine, ...) from the full path.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPath, pprof.Index)
	mux.HandleFunc(PprofPath+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPath+"profile", pprof.Profile)
	mux.HandleFunc(PprofPath+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPath+"trace", pprof.Trace)

	return mux
}
