package http

import (
	"io"
	"mime/multipart"
)

// readFormFile lee los bytes de un archivo multipart y su Content-Type
// declarado. El límite de tamaño lo aplican los casos de uso.
func readFormFile(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
