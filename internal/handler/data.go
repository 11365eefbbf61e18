package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/DailyGarden_Go/internal/logger"
)

const backupFileName = "daily-garden-backup.json"

// HandleExport downloads the backup document
// @Summary Export garden data
// @Tags data
// @Produce json
// @Success 200 {object} domain.Backup
// @Router /api/v1/data/export [get]
func (h *GardenHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", backupFileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleImport replaces the player and garden with an uploaded backup
// @Summary Import garden data
// @Tags data
// @Accept json
// @Produce json
// @Param request body domain.Backup true "Backup document"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid backup"
// @Router /api/v1/data/import [post]
func (h *GardenHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
		return
	}

	if err := h.svc.Import(r.Context(), data); err != nil {
		respondServiceError(w, r, "import", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImportSuccess})
}

// HandleReset wipes saved state and starts a new garden
// @Summary Reset garden
// @Tags data
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/data/reset [post]
func (h *GardenHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgResetFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgResetFailed)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResetSuccess})
}
