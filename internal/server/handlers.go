package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/advisor"
)

// maxImageBytes caps crop-doctor uploads.
const maxImageBytes = 10 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("response encoding failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// cropRegionRequest is the shared body of the market and weather endpoints.
type cropRegionRequest struct {
	CropName string `json:"crop_name"`
	Region   string `json:"region"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) handleSmartMarket(w http.ResponseWriter, r *http.Request) {
	var req cropRegionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CropName == "" || req.Region == "" {
		writeError(w, http.StatusBadRequest, "crop_name and region are required")
		return
	}

	result, err := s.svc.AnalyzeMarket(r.Context(), req.CropName, req.Region)
	if err != nil {
		zap.L().Error("market analysis failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Unable to fetch price trend data. Service temporarily unavailable.")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWeatherIrrigation(w http.ResponseWriter, r *http.Request) {
	var req cropRegionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CropName == "" || req.Region == "" {
		writeError(w, http.StatusBadRequest, "crop_name and region are required")
		return
	}

	advice, err := s.svc.AdviseIrrigation(r.Context(), req.CropName, req.Region)
	if err != nil {
		zap.L().Error("weather advice failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "Unable to fetch weather data. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

func (s *Server) handleGovtSchemes(w http.ResponseWriter, r *http.Request) {
	var req advisor.SchemeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Region == "" || req.Crop == "" || req.Need == "" {
		writeError(w, http.StatusBadRequest, "region, crop, and need are required")
		return
	}

	// Degradations are reported in-band; this endpoint always answers 200.
	writeJSON(w, http.StatusOK, s.svc.MatchSchemes(r.Context(), req))
}

func (s *Server) handleCropProfit(w http.ResponseWriter, r *http.Request) {
	var req advisor.ProfitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Region == "" || req.Crop == "" {
		writeError(w, http.StatusBadRequest, "region and crop are required")
		return
	}

	// A prediction always comes back, numeric fallback included.
	writeJSON(w, http.StatusOK, s.svc.PredictProfit(r.Context(), req))
}

func (s *Server) handleCropDoctor(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	// Content type gate runs before any provider work.
	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		writeError(w, http.StatusUnprocessableEntity, "Invalid file type. Only JPEG and PNG images are supported.")
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
		return
	}

	diag, err := s.svc.DiagnoseCrop(r.Context(), image, contentType)
	if err != nil {
		zap.L().Error("crop diagnosis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, diag)
}
