package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the route table. The route clearing all data is only
// mounted when withTestingRoutes is set.
func NewRouter(withTestingRoutes bool) *mux.Router {
	m := mux.NewRouter()

	m.Methods(http.MethodGet).Path("/").HandlerFunc(Index)
	m.Methods(http.MethodGet).Path("/videos").HandlerFunc(Videos)
	m.Methods(http.MethodPost).Path("/videos").HandlerFunc(CreateVideo)
	m.Methods(http.MethodGet).Path("/videos/{id:[0-9]+}").HandlerFunc(Video)
	m.Methods(http.MethodPut).Path("/videos/{id:[0-9]+}").HandlerFunc(UpdateVideo)
	m.Methods(http.MethodDelete).Path("/videos/{id:[0-9]+}").HandlerFunc(DeleteVideo)

	if withTestingRoutes {
		m.Methods(http.MethodDelete).Path("/testing/all-data").HandlerFunc(DeleteAllData)
	}

	return m
}
