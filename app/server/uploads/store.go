package uploads

import (
	"article-admin/app/server/constants"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store 管理上传目录，目录本身是多个请求共享的资源，只依赖文件系统的创建与删除原子性
type Store struct {
	dir string
}

// File 是一次已写入磁盘的上传
type File struct {
	Filename string // 生成的文件名
	Path     string // 磁盘路径
	URL      string // 文章中引用的地址
	Size     int64
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Filename 生成 <字段名>-<毫秒时间戳>-<0..1e9 随机数><原扩展名> 形式的文件名
func Filename(field string, originalName string) string {
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1e9+1), filepath.Ext(originalName))
}

func (s *Store) Save(field string, fh *multipart.FileHeader) (*File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	filename := Filename(field, fh.Filename)
	path := filepath.Join(s.dir, filename)

	// O_EXCL ：即使文件名撞上也不会覆盖别人的文件
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &File{
		Filename: filename,
		Path:     path,
		URL:      constants.UploadURLPrefix + filename,
		Size:     size,
	}, nil
}

// IsLocal 判断封面地址是否指向上传目录
func IsLocal(url string) bool {
	return strings.HasPrefix(url, constants.UploadURLPrefix)
}

// Remove 删除地址对应的本地文件。外部地址不做任何操作，文件已不存在也视为成功。
// 返回值表示是否真的删除了文件。
func (s *Store) Remove(url string) (bool, error) {
	if !IsLocal(url) {
		return false, nil
	}

	// 只取文件名，不允许跳出上传目录
	name := filepath.Base(strings.TrimPrefix(url, constants.UploadURLPrefix))
	if name == "." || name == "/" || name == ".." {
		return false, nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove upload %s: %w", name, err)
	}

	return true, nil
}
