package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// 新規商品に割り当てるプレースホルダ画像名。削除対象にしない。
const DefaultImage = "default.png"

// 商品画像を設定ディレクトリ配下に保存する。
// ファイル名はUUID+元の拡張子で採番する。
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save は画像を保存して採番したファイル名を返す。
func (s *ImageStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	logger.Info().Str("file", name).Msg("image stored")
	return name, nil
}

// Delete は古い画像を消す。default.pngは残す。
func (s *ImageStore) Delete(name string) error {
	if name == "" || name == DefaultImage {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
