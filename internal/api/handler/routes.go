package handler

import (
	"net/http"

	"github.com/prakanlife/meta-ads-sync/internal/api/handler/router"
	"github.com/prakanlife/meta-ads-sync/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(service *scheduler.MetaSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: RunSync(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}
