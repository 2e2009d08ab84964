package handlers

import (
	"article-admin/app/server/backend/backendtest"
	"article-admin/app/server/lock"
	"article-admin/app/server/uploads"
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const (
	testPrefix        = "/api/admin"
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "correct horse battery staple"
)

type testServer struct {
	e       *echo.Echo
	mem     *backendtest.Memory
	dir     string
	adminID uuid.UUID
	token   string // 管理员会话
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	store, err := uploads.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	mem := backendtest.NewMemory()
	identity, token := mem.AddAdmin(testAdminEmail, testAdminPassword)

	e := echo.New()
	NewApp(zap.NewNop(), mem, store, lock.NewLocal()).Register(e, testPrefix)

	return &testServer{e: e, mem: mem, dir: dir, adminID: identity.ID, token: token}
}

func (s *testServer) do(t *testing.T, method string, path string, body io.Reader, contentType string, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, testPrefix+path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) json(t *testing.T, method string, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(b)
	}
	return s.do(t, method, path, body, echo.MIMEApplicationJSON, token)
}

type testFile struct {
	filename    string
	contentType string
	content     []byte
}

func pngFile() *testFile {
	return &testFile{filename: "cover.png", contentType: "image/png", content: []byte("\x89PNG\r\n\x1a\nfake")}
}

func (s *testServer) form(t *testing.T, method string, path string, fields map[string]string, file *testFile) *httptest.ResponseRecorder {
	t.Helper()
	return s.serve(s.formRequest(t, method, path, fields, file))
}

// formRequest 构造带管理员会话的 multipart 请求，只能在测试主 goroutine 中调用
func (s *testServer) formRequest(t *testing.T, method string, path string, fields map[string]string, file *testFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	// 固定顺序，方便复现
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := mw.WriteField(k, fields[k]); err != nil {
			t.Fatal(err)
		}
	}

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cover_image"; filename=%q`, file.filename))
		h.Set("Content-Type", file.contentType)
		w, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(file.content); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(method, testPrefix+path, &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token)
	return req
}

// files 返回上传目录中的文件名
func (s *testServer) files(t *testing.T) []string {
	t.Helper()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// putLocalCover 在上传目录中放一个文件，返回它的引用地址
func (s *testServer) putLocalCover(t *testing.T, name string) string {
	t.Helper()

	if err := os.WriteFile(filepath.Join(s.dir, name), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	return "/uploads/" + name
}

func (s *testServer) fileExists(t *testing.T, url string) bool {
	t.Helper()

	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(url)))
	return err == nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decode[map[string]interface{}](t, rec)
	if len(body) != 1 {
		t.Errorf("error body = %v, want only an error field", body)
	}
	if message != "" && body["error"] != message {
		t.Errorf("error = %q, want %q", body["error"], message)
	}
	if _, ok := body["error"].(string); !ok {
		t.Errorf("error body = %v, want string error field", body)
	}
}

func articleFields(overrides map[string]string) map[string]string {
	fields := map[string]string{
		"title":   "Hello",
		"excerpt": "Short",
		"content": "Long body",
		"author":  "Ada",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func statusOK(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}
