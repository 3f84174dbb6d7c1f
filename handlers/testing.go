package handlers

import (
	"net/http"

	"fknsrs.biz/p/videoregistry/internal/ctxlogger"
	"fknsrs.biz/p/videoregistry/internal/ctxstore"
	"fknsrs.biz/p/videoregistry/internal/httputil"
	"fknsrs.biz/p/videoregistry/internal/videometrics"
)

func DeleteAllData(rw http.ResponseWriter, r *http.Request) {
	ctxstore.MustGetStore(r.Context()).Reset()

	videometrics.IncOperation("reset", videometrics.OutcomeOK)
	videometrics.SetVideos(0)

	ctxlogger.GetLogger(r.Context()).Info("all data deleted")

	httputil.NoContent(rw)
}
