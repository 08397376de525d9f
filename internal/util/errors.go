// internal/util/errors.go
// Definisi error aplikasi standar

package util

import "fmt"

type AppError struct {
	Code    string // e.g., "bad_input", "list_load_failed", "well_data_load_failed"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError { return AppError{Code: "bad_input", Message: msg} }

// ListLoadFailure: gagal mengambil daftar sumur dari service.
func ListLoadFailure(msg string) AppError {
	return AppError{Code: "list_load_failed", Message: msg}
}

// WellDataLoadFailure: gagal mengambil data sumur terpilih.
func WellDataLoadFailure(msg string) AppError {
	return AppError{Code: "well_data_load_failed", Message: msg}
}
