package import_museums

import "github.com/m04kA/SMC-MuseumService/internal/service/catalog"

// ImportRecordResponse результат импорта одной записи
type ImportRecordResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ImportResponse HTTP response model
type ImportResponse struct {
	Imported int                    `json:"imported"`
	Failed   int                    `json:"failed"`
	Details  []ImportRecordResponse `json:"details"`
}

// FromServiceResult конвертирует результат сервиса в HTTP response
func FromServiceResult(result *catalog.ImportResult) *ImportResponse {
	resp := &ImportResponse{
		Imported: result.Imported,
		Failed:   result.Failed,
		Details:  make([]ImportRecordResponse, 0, len(result.Details)),
	}
	for _, record := range result.Details {
		resp.Details = append(resp.Details, ImportRecordResponse{
			ID:      record.ID,
			Name:    record.Name,
			Success: record.Success,
			Error:   record.Error,
		})
	}
	return resp
}
