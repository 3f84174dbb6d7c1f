package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"fknsrs.biz/p/videoregistry/internal/ctxconfig"
	"fknsrs.biz/p/videoregistry/internal/ctxlogger"
	"fknsrs.biz/p/videoregistry/internal/ctxstore"
	"fknsrs.biz/p/videoregistry/internal/httputil"
	"fknsrs.biz/p/videoregistry/internal/validation"
	"fknsrs.biz/p/videoregistry/internal/videometrics"
	"fknsrs.biz/p/videoregistry/internal/videostore"
	"fknsrs.biz/p/videoregistry/models"
)

func Videos(rw http.ResponseWriter, r *http.Request) {
	videos := ctxstore.MustGetStore(r.Context()).List()

	videometrics.IncOperation("list", videometrics.OutcomeOK)

	if err := httputil.WriteJSON(rw, http.StatusOK, videos); err != nil {
		panic(err)
	}
}

func CreateVideo(rw http.ResponseWriter, r *http.Request) {
	s := ctxstore.MustGetStore(r.Context())

	p, ok := readPayload(rw, r)
	if !ok {
		return
	}

	if errs := validation.ValidateForCreate(p); len(errs) > 0 {
		rejectPayload(rw, r, "create", errs)
		return
	}

	video, err := s.Create(p.Patch())
	if err != nil {
		panic(err)
	}

	videometrics.IncOperation("create", videometrics.OutcomeOK)
	videometrics.SetVideos(s.Len())

	ctxlogger.GetLogger(r.Context()).WithField("video.id", video.ID).Info("video created")

	if err := httputil.WriteJSON(rw, http.StatusCreated, video); err != nil {
		panic(err)
	}
}

func Video(rw http.ResponseWriter, r *http.Request) {
	id, ok := videoID(r)
	if !ok {
		notFound(rw, r, "get")
		return
	}

	video, err := ctxstore.MustGetStore(r.Context()).Get(id)
	if err != nil {
		if errors.Is(err, videostore.ErrNotFound) {
			notFound(rw, r, "get")
			return
		}

		panic(err)
	}

	videometrics.IncOperation("get", videometrics.OutcomeOK)

	if err := httputil.WriteJSON(rw, http.StatusOK, video); err != nil {
		panic(err)
	}
}

// UpdateVideo validates before looking the video up, so an invalid payload
// for a missing id is reported as invalid rather than not found.
func UpdateVideo(rw http.ResponseWriter, r *http.Request) {
	s := ctxstore.MustGetStore(r.Context())

	p, ok := readPayload(rw, r)
	if !ok {
		return
	}

	if errs := validation.ValidateForUpdate(p); len(errs) > 0 {
		rejectPayload(rw, r, "update", errs)
		return
	}

	id, ok := videoID(r)
	if !ok {
		notFound(rw, r, "update")
		return
	}

	if err := s.Update(id, p.Patch()); err != nil {
		if errors.Is(err, videostore.ErrNotFound) {
			notFound(rw, r, "update")
			return
		}

		panic(err)
	}

	videometrics.IncOperation("update", videometrics.OutcomeOK)

	ctxlogger.GetLogger(r.Context()).WithFields(logrus.Fields{
		"video.id":     id,
		"video.fields": p.Fields(),
	}).Info("video updated")

	httputil.NoContent(rw)
}

func DeleteVideo(rw http.ResponseWriter, r *http.Request) {
	s := ctxstore.MustGetStore(r.Context())

	id, ok := videoID(r)
	if !ok {
		notFound(rw, r, "delete")
		return
	}

	if err := s.Delete(id); err != nil {
		if errors.Is(err, videostore.ErrNotFound) {
			notFound(rw, r, "delete")
			return
		}

		panic(err)
	}

	videometrics.IncOperation("delete", videometrics.OutcomeOK)
	videometrics.SetVideos(s.Len())

	ctxlogger.GetLogger(r.Context()).WithField("video.id", id).Info("video deleted")

	httputil.NoContent(rw)
}

func videoID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}

	return id, true
}

// readPayload reads and parses the request body. Unparseable bodies become
// non-object payloads and fail validation; only an oversized body is
// rejected here.
func readPayload(rw http.ResponseWriter, r *http.Request) (*validation.Payload, bool) {
	d, err := httputil.ReadBody(rw, r, ctxconfig.MaxBodyBytes(r.Context()))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ctxlogger.GetLogger(r.Context()).WithError(err).Info("request body too large")
			rw.WriteHeader(http.StatusRequestEntityTooLarge)
			return nil, false
		}

		panic(err)
	}

	return validation.ParsePayload(d), true
}

func rejectPayload(rw http.ResponseWriter, r *http.Request, operation string, errs []models.FieldError) {
	videometrics.IncOperation(operation, videometrics.OutcomeInvalid)

	ctxlogger.GetLogger(r.Context()).WithField("validation.fields", models.FieldNames(errs)).Debug("video " + operation + " rejected")

	if err := httputil.WriteJSON(rw, http.StatusBadRequest, models.ErrorsMessages{ErrorsMessages: errs}); err != nil {
		panic(err)
	}
}

func notFound(rw http.ResponseWriter, r *http.Request, operation string) {
	videometrics.IncOperation(operation, videometrics.OutcomeNotFound)
	httputil.NotFound(rw, r)
}
