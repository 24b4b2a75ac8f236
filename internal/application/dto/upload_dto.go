package dto

// UploadResponse URL pública del archivo subido.
type UploadResponse struct {
	URL string `json:"url"`
}
