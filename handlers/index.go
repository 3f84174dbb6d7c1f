package handlers

import (
	"net/http"

	"fknsrs.biz/p/videoregistry/internal/httputil"
)

func Index(rw http.ResponseWriter, r *http.Request) {
	if err := httputil.WriteText(rw, http.StatusOK, "Hello my crazy life!"); err != nil {
		panic(err)
	}
}
