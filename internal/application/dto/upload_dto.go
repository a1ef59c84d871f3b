package dto

// UploadResponse resultado de subir un PDF de medición.
type UploadResponse struct {
	Path     string `json:"path"`     // clave en el almacenamiento, se guarda en pdf_path
	URL      string `json:"url"`      // enlace de descarga firmado
	Checksum string `json:"checksum"` // BLAKE2b-256 en hex
	Size     int64  `json:"size"`
}
