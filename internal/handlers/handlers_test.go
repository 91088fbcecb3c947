package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCaseService 只实现测试用到的方法，其余方法调用会 panic
type fakeCaseService struct {
	services.CaseService
	getCase  func(id int64) (*models.Case, error)
	list     func(q models.ListQuery, caseType string) ([]models.Case, int64, error)
	create   func(p models.CasePayload) (*models.Case, error)
	attached []byte
	filename string
}

func (f *fakeCaseService) GetCase(_ context.Context, id int64) (*models.Case, error) {
	return f.getCase(id)
}

func (f *fakeCaseService) ListCases(_ context.Context, q models.ListQuery, caseType string) ([]models.Case, int64, error) {
	return f.list(q, caseType)
}

func (f *fakeCaseService) CreateCase(_ context.Context, p models.CasePayload) (*models.Case, error) {
	return f.create(p)
}

func (f *fakeCaseService) AttachDocument(_ context.Context, id int64, filename string, src io.Reader) (*models.Case, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	f.attached, f.filename = data, filename
	stored := "uploads/stored" + filepath.Ext(filename)
	return &models.Case{ID: id, Document: &stored}, nil
}

type fakeDocumentService struct {
	services.DocumentService
	zipPath string
	err     error
	ctx     context.Context
}

func (f *fakeDocumentService) GenerateDocumentBundle(ctx context.Context, _ int64) (string, error) {
	f.ctx = ctx
	return f.zipPath, f.err
}

func caseRouter(svc services.CaseService, docs services.DocumentService) *gin.Engine {
	h := NewCaseHandler(svc, docs)
	r := gin.New()
	r.GET("/cases", h.GetCases)
	r.POST("/cases", h.CreateCase)
	r.GET("/cases/:id", h.GetCaseByID)
	r.POST("/cases/:id/document", h.UploadDocument)
	r.GET("/cases/:id/bundle", h.DownloadBundle)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrCaseNotFound, http.StatusNotFound},
		{services.ErrLastNameChange, http.StatusBadRequest},
		{services.ErrBranchInUse, http.StatusConflict},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { respondServiceError(c, tt.err, "操作失败") })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
		})
	}
}

func TestCaseHandler_GetCaseByID(t *testing.T) {
	svc := &fakeCaseService{getCase: func(id int64) (*models.Case, error) {
		if id == 7 {
			return &models.Case{ID: 7, CaseType: models.CaseTypeClaim}, nil
		}
		return nil, services.ErrCaseNotFound
	}}
	r := caseRouter(svc, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/7", nil))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Claim", data["caseType"])
	assert.Equal(t, []interface{}{}, data["folios"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/8", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCaseHandler_CreateCase(t *testing.T) {
	var got models.CasePayload
	svc := &fakeCaseService{create: func(p models.CasePayload) (*models.Case, error) {
		got = p
		return &models.Case{ID: 1, CaseType: p.CaseType, Folios: p.Folios}, nil
	}}
	r := caseRouter(svc, nil)

	body := `{"caseType":"Deletion","shareCertificateId":3,"folios":"10_11","selectClaimant":[4]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.IDList{10, 11}, got.Folios)
	assert.Equal(t, models.IDList{4}, got.SelectClaimant)

	// 缺少必填字段时一次列出所有字段
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(`{"isMinor":"Maybe"}`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	details, ok := decodeBody(t, w)["details"].([]interface{})
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(details), 3)
}

func TestCaseHandler_GetCasesPagination(t *testing.T) {
	var gotType string
	svc := &fakeCaseService{list: func(q models.ListQuery, caseType string) ([]models.Case, int64, error) {
		gotType = caseType
		return []models.Case{{ID: 6}, {ID: 7}}, 12, nil
	}}
	r := caseRouter(svc, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases?page=2&limit=5&caseType=Claim", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Claim", gotType)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.EqualValues(t, 12, pagination["totalItems"])
	assert.EqualValues(t, 3, pagination["totalPages"])
	assert.EqualValues(t, 2, pagination["currentPage"])
	assert.Len(t, data["items"], 2)
}

func TestCaseHandler_UploadDocument(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     int
	}{
		{"pdf accepted", "Death Certificate.pdf", pdf, http.StatusOK},
		{"extension not allowed", "payload.exe", pdf, http.StatusBadRequest},
		{"content does not match extension", "scan.png", pdf, http.StatusBadRequest},
		{"too large", "big.pdf", append(append([]byte{}, pdf...), make([]byte, MaxUploadSize)...), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCaseService{getCase: func(int64) (*models.Case, error) { return &models.Case{}, nil }}
			r := caseRouter(svc, nil)

			body, contentType := multipartBody(t, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/cases/3/document", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.want == http.StatusOK {
				assert.Equal(t, tt.content, svc.attached, "service must receive the whole file")
				assert.Equal(t, tt.filename, svc.filename)
			} else {
				assert.Nil(t, svc.attached)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		r := caseRouter(&fakeCaseService{}, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cases/3/document", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCaseHandler_DownloadBundleIgnoresClientDisconnect(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "doc_3_1760866200000.zip")
	require.NoError(t, os.WriteFile(zipPath, []byte("PK\x05\x06"+strings.Repeat("\x00", 18)), 0o644))

	docs := &fakeDocumentService{zipPath: zipPath}
	r := caseRouter(&fakeCaseService{}, docs)

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/3/bundle", nil).WithContext(reqCtx))

	require.NotNil(t, docs.ctx)
	assert.NoError(t, docs.ctx.Err())
	assert.Nil(t, docs.ctx.Done())
}

func TestCaseHandler_DownloadBundle(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "doc_3_1760866200000.zip")
	require.NoError(t, os.WriteFile(zipPath, []byte("PK\x05\x06"+strings.Repeat("\x00", 18)), 0o644))

	r := caseRouter(&fakeCaseService{}, &fakeDocumentService{zipPath: zipPath})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/3/bundle", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "doc_3_1760866200000.zip")
	assert.Equal(t, 22, w.Body.Len())

	r = caseRouter(&fakeCaseService{}, &fakeDocumentService{err: services.ErrInvalidCaseType})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/3/bundle", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type fakeAuthService struct {
	loggedOut string
	exp       time.Time
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*services.LoginResult, error) {
	if username != "admin" || password != "admin" {
		return nil, services.ErrInvalidCredentials
	}
	return &services.LoginResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		User:      &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
	}, nil
}

func (f *fakeAuthService) Logout(_ context.Context, jti string, exp time.Time) error {
	f.loggedOut, f.exp = jti, exp
	return nil
}

func TestAuthHandler(t *testing.T) {
	svc := &fakeAuthService{}
	h := NewAuthHandler(svc)
	exp := time.Now().Add(time.Hour)

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/logout", func(c *gin.Context) {
		c.Set("jti", "jti-42")
		c.Set("exp", exp)
	}, h.Logout)
	r.POST("/logout-no-context", h.Logout)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"admin"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
	assert.Equal(t, "admin", data["user"].(map[string]interface{})["role"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"admin","password":"nope"}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jti-42", svc.loggedOut)
	assert.True(t, exp.Equal(svc.exp))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout-no-context", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
