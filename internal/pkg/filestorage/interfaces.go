package filestorage

import "mime/multipart"

// Storage abstracts where uploaded files end up. Records only keep the
// returned URL/identifier, never the bytes.
type Storage interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(filePath string) error
}
