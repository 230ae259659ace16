package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"moyu/internal/utils"
)

// 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveImage 保存上传的文章配图到本地目录
// 参数: file - multipart 文件, header - 文件头, uploadDir - 存储目录
// 返回: 可通过静态路由访问的相对路径, error
func SaveImage(file multipart.File, header *multipart.FileHeader, uploadDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrValidation, ext)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	// 随机文件名，避免覆盖和路径猜测
	name := utils.RandStringBytesMaskImpr(12) + ext
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return "/uploads/" + name, nil
}
