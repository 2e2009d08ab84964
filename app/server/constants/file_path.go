package constants

// 封面图片
const (
	UploadURLPrefix       = "/uploads/"   // 文章中记录的本地文件地址前缀
	UploadFieldCoverImage = "cover_image" // 上传字段名
	UploadMaxSize         = 5 << 20       // 5 MiB ，包含边界
)

// 允许的扩展名与对应的 MIME 类型，两者都要在列表中
var (
	UploadAllowedExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}
	UploadAllowedMIMETypes  = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"image/jpeg",
		"image/png",
	}
)
