package infrastructure

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/EduardoCSampaio/financas-app/config"
	appErrors "github.com/EduardoCSampaio/financas-app/internal/errors"
	"github.com/EduardoCSampaio/financas-app/internal/pkg"
)

// FileStorage guarda comprovantes enviados nas transações.
type FileStorage interface {
	Save(file *multipart.FileHeader) (url string, err error)
}

type LocalStorage struct {
	dir     string
	baseURL string
}

var _ FileStorage = (*LocalStorage)(nil)

func NewLocalStorage(cfg *config.Config) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("criando diretório de uploads: %w", err)
	}
	return &LocalStorage{
		dir:     cfg.Storage.UploadDir,
		baseURL: strings.TrimSuffix(cfg.Storage.BaseURL, "/"),
	}, nil
}

// Save grava o arquivo com nome ULID, preservando apenas a extensão
// original. O nome enviado pelo cliente nunca chega ao disco.
func (s *LocalStorage) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", appErrors.ErrBadRequest.WithError(err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	name := pkg.GenerateULID() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}

	return s.baseURL + "/" + name, nil
}

// Dir expõe o diretório físico para o servidor de arquivos estáticos.
func (s *LocalStorage) Dir() string {
	return s.dir
}
