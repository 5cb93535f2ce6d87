package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prakanlife/meta-ads-sync/internal/scheduler"
	"github.com/prakanlife/meta-ads-sync/pkg/apiErrors"
	"github.com/prakanlife/meta-ads-sync/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunSync starts a Meta sync run in the background
func RunSync(service *scheduler.MetaSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.L.Info("INIT - RunSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Meta sync service not available", nil)
			return
		}

		service.TriggerManualSync()

		response := map[string]any{
			"message": "Meta sync started",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSyncStatus returns the scheduler state and the last run outcome
func GetSyncStatus(service *scheduler.MetaSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.L.Info("INIT - GetSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Meta sync service not available", nil)
			return
		}

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
