package v1

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"pharmaplus-backend/pkg/storage"
	"pharmaplus-backend/pkg/utils"
)

var (
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
	}
)

// UploadHandler receives prescription photos. The file is recompressed
// before storage so the original never lands in the bucket; the
// returned URL goes into the checkout request as prescriptionUrl.
type UploadHandler struct {
	storage       *storage.R2Storage
	maxUploadSize int64
}

func NewUploadHandler(s *storage.R2Storage, maxUploadSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       s,
		maxUploadSize: maxUploadSizeMB << 20, // Convert MB to bytes
	}
}

// POST /api/v1/uploads/prescription
func (h *UploadHandler) UploadPrescription(w http.ResponseWriter, r *http.Request) {
	// 1. Parse Multipart Form with configurable limit
	err := r.ParseMultipartForm(h.maxUploadSize)
	if err != nil {
		log.Printf("Upload Error: ParseMultipartForm failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	// 2. Get File
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("Upload Error: FormFile failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	// 3. Validate MIME Type
	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		log.Printf("Upload Error: Invalid MIME type: %s", contentType)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP")
		return
	}

	// 4. Validate File Extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		log.Printf("Upload Error: Invalid extension: %s", ext)
		utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
		return
	}

	// 5. Process Image (Resize + WebP)
	processedData, newContentType, err := utils.ProcessImage(file, header.Filename)
	if err != nil {
		log.Printf("Image Processing Error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	// 6. Upload Processed Buffer to R2
	url, err := h.storage.UploadBuffer(r.Context(), processedData, newContentType)
	if err != nil {
		log.Printf("R2 Upload Error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"url": url,
	})
}

// DELETE /api/v1/uploads/prescription
// Removes a previously uploaded prescription so the customer can
// replace a blurry photo before placing the order.
func (h *UploadHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		utils.WriteError(w, http.StatusBadRequest, "File URL required")
		return
	}

	if err := h.storage.DeleteFile(r.Context(), req.URL); err != nil {
		log.Printf("R2 Delete Error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
