package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrInvalidName     = errors.New("invalid image name")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// 只接受點陣圖；/uploads 與頁面同源，html 與 svg 會變成可執行內容
var allowedTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// Store keeps product images in one flat directory. Names handed out by
// Save are the only names Exists and Remove accept.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload.NewStore: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

var newSuffix = uuid.NewString

// FileName builds "<slug(stem)>-<uuid><ext>" from the product name.
func FileName(stem, ext string) string {
	base := slug.Make(stem)
	if base == "" {
		base = "image"
	}
	return base + "-" + newSuffix() + ext
}

// sniff detects the image type from content. The client's filename and
// Content-Type are ignored.
func sniff(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	for _, t := range allowedTypes {
		if mt.Is(t) {
			return mt.Extension(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
}

// Save copies the uploaded file into the directory and returns its stored
// name. The extension comes from the sniffed content type.
func (s *Store) Save(fh *multipart.FileHeader, stem string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	defer src.Close()

	ext, err := sniff(src)
	if err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	name := FileName(stem, ext)
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("upload.Save: %w", err)
	}
	return name, nil
}

// path 拒絕含目錄成分的名稱，避免跳出 dir
func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

func (s *Store) Exists(name string) bool {
	p, err := s.path(name)
	if err != nil {
		return false
	}
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// Remove deletes the file. A missing file is not an error.
func (s *Store) Remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("upload.Remove: %w", err)
	}
	return nil
}
