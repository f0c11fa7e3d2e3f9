package formcheck

import (
	"io/fs"

	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and the browser runtime so Go
// applications can serve them next to their own pages.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(formcheck.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
