package constants

// echo context 中的键
const (
	ContextKeyIdentity = "identity"
	ContextKeyUpload   = "upload"
)

const RoleAdmin = "admin"
