package givehope

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/givehope/givehope.go/internal/givehope/apierrors"
	"github.com/givehope/givehope.go/internal/givehope/config"
	"github.com/givehope/givehope.go/internal/givehope/dao"
	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/givehope/givehope.go/internal/givehope/editor/library"
	"github.com/givehope/givehope.go/internal/givehope/export"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	testDB      *gorm.DB
	testEcho    *echo.Echo
	testLibrary *library.Library
)

func TestMain(m *testing.M) {
	testDB, _ = gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	Migrate(testDB)

	cfg = &config.Config{}
	testLibrary = library.New()

	s := &Services{db: testDB, library: testLibrary}
	testEcho = echo.New()
	testEcho.Validator = NewRequestValidator()
	s.AddStudioServices(testEcho.Group("/api/"))

	os.Exit(m.Run())
}

func doJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	testEcho.ServeHTTP(rec, req)
	return rec
}

func seedDocument(t *testing.T) dao.StudioDocument {
	doc := dao.StudioDocument{
		Name:     "Spring letter",
		Snapshot: dao.DocumentSnapshot{Snapshot: export.TakeSnapshot(editor.NewState())},
		Device:   string(editor.DeviceDesktop),
	}
	assert.NoError(t, testDB.Create(&doc).Error)
	t.Cleanup(func() { testDB.Delete(&doc) })
	return doc
}

func reloadDocument(t *testing.T, id string) dao.StudioDocument {
	doc, err := dao.GetDocument(testDB, id)
	assert.NoError(t, err)
	return doc
}

func snapshotJSON(t *testing.T, doc dao.StudioDocument) string {
	data, err := json.Marshal(doc.Snapshot.Snapshot)
	assert.NoError(t, err)
	return string(data)
}

func TestLoadTemplateWithoutConfirm(t *testing.T) {
	doc := seedDocument(t)
	before := snapshotJSON(t, reloadDocument(t, doc.Id))

	for _, body := range []string{`{"confirm": false}`, `{}`} {
		rec := doJSON(http.MethodPost, "/api/studio/documents/"+doc.Id+"/template/newsletter_monthly/load/", body)
		assert.Equal(t, http.StatusConflict, rec.Code)

		var apiErr apierrors.DefinedError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apierrors.ErrTemplateLoadConfirm.Code, apiErr.Code)
	}

	assert.Equal(t, before, snapshotJSON(t, reloadDocument(t, doc.Id)),
		"declined load must not touch the stored document")
}

func TestLoadTemplateConfirmed(t *testing.T) {
	doc := seedDocument(t)
	originalIds := make(map[string]bool)
	for _, b := range doc.Snapshot.Blocks {
		originalIds[b.Id.String()] = true
	}

	rec := doJSON(http.MethodPost, "/api/studio/documents/"+doc.Id+"/template/newsletter_monthly/load/", `{"confirm": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	tplBlocks, tplBody, ok := testLibrary.ExpandTemplate("newsletter_monthly")
	assert.True(t, ok)

	loaded := reloadDocument(t, doc.Id)
	assert.Equal(t, len(tplBlocks), len(loaded.Snapshot.Blocks))
	for _, b := range loaded.Snapshot.Blocks {
		assert.False(t, originalIds[b.Id.String()], "template blocks must replace the previous tree")
	}
	assert.Equal(t, tplBody.Width, loaded.Snapshot.BodyStyles.Width)
}

func TestLoadUnknownTemplate(t *testing.T) {
	doc := seedDocument(t)
	before := snapshotJSON(t, reloadDocument(t, doc.Id))

	rec := doJSON(http.MethodPost, "/api/studio/documents/"+doc.Id+"/template/galactic/load/", `{"confirm": true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before, snapshotJSON(t, reloadDocument(t, doc.Id)))
}
