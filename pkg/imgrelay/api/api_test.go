package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/domain"
)

const inferenceResult = `{"id":"cmpl-1","choices":[{"message":{"role":"assistant","content":"A detailed caption."}}]}`

type testEndpoints struct {
	page           string
	inferStatus    int
	validateStatus int

	inferred    domain.InferencePayload
	submitted   []byte
	submitCalls atomic.Int32
}

func (e *testEndpoints) start(t *testing.T) (pageURL, inferURL, validateURL string) {
	t.Helper()
	pageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, e.page)
	}))
	t.Cleanup(pageServer.Close)
	inferServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&e.inferred))
		if e.inferStatus != 0 {
			w.WriteHeader(e.inferStatus)
			return
		}
		_, _ = io.WriteString(w, inferenceResult)
	}))
	t.Cleanup(inferServer.Close)
	validateServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.submitCalls.Add(1)
		e.submitted, _ = io.ReadAll(r.Body)
		if e.validateStatus != 0 {
			w.WriteHeader(e.validateStatus)
		}
	}))
	t.Cleanup(validateServer.Close)
	return pageServer.URL + "/challenge", inferServer.URL + "/v1/chat/completions", validateServer.URL + "/submit"
}

func newTestAPI(t *testing.T, endpoints *testEndpoints) (API, string) {
	t.Helper()
	pageURL, inferURL, validateURL := endpoints.start(t)
	directory := t.TempDir()
	config := common.NewConfig(map[string]any{
		domain.ConfigKeyScrapingURL:    pageURL,
		domain.ConfigKeyInferenceURL:   inferURL,
		domain.ConfigKeyValidationURL:  validateURL,
		domain.ConfigKeyInferenceToken: "token",
		domain.ConfigKeyImageDirectory: directory,
		domain.ConfigKeyImagePath:      "image.jpg",
	})
	imgrelay, err := NewAPI(config, common.NewNopLogger())
	require.NoError(t, err)
	return imgrelay, filepath.Join(directory, "image.jpg")
}

func TestAPI_Run(t *testing.T) {
	ctx := context.Background()
	const jpegPage = `<html><body><img src="data:image/jpeg;base64,/9j/4AAQSkZJRg=="></body></html>`

	t.Run("end to end", func(t *testing.T) {
		endpoints := &testEndpoints{page: jpegPage}
		imgrelay, imagePath := newTestAPI(t, endpoints)

		require.NoError(t, imgrelay.Run(ctx))

		saved, err := os.ReadFile(imagePath)
		require.NoError(t, err)
		assert.Equal(t, "/9j/4AAQSkZJRg==", base64.StdEncoding.EncodeToString(saved))

		assert.Equal(t, "microsoft-florence-2-large", endpoints.inferred.Model)
		require.Len(t, endpoints.inferred.Messages, 1)
		content := endpoints.inferred.Messages[0].Content
		require.Len(t, content, 2)
		assert.Equal(t, domain.NewTextContent("<DETAILED_CAPTION>"), content[0])
		assert.Equal(t, domain.NewImageContent("data:image/jpeg;base64,/9j/4AAQSkZJRg=="), content[1])

		assert.Equal(t, inferenceResult, string(endpoints.submitted))
	})

	t.Run("no image never reaches the inference endpoint", func(t *testing.T) {
		endpoints := &testEndpoints{page: `<html><img src="/logo.png"></html>`}
		imgrelay, imagePath := newTestAPI(t, endpoints)

		err := imgrelay.Run(ctx)

		assert.ErrorIs(t, err, domain.ErrImageNotFound)
		assert.NoFileExists(t, imagePath)
		assert.Empty(t, endpoints.inferred.Model)
		assert.Equal(t, int32(0), endpoints.submitCalls.Load())
	})

	t.Run("inference failure aborts before submission", func(t *testing.T) {
		endpoints := &testEndpoints{page: jpegPage, inferStatus: http.StatusInternalServerError}
		imgrelay, _ := newTestAPI(t, endpoints)

		err := imgrelay.Run(ctx)

		var stageErr *domain.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, domain.StageInfer, stageErr.Stage)
		assert.ErrorIs(t, err, domain.ErrNetwork)
		assert.Equal(t, int32(0), endpoints.submitCalls.Load())
	})

	t.Run("validation failure is returned as an error", func(t *testing.T) {
		endpoints := &testEndpoints{page: jpegPage, validateStatus: http.StatusBadRequest}
		imgrelay, _ := newTestAPI(t, endpoints)

		err := imgrelay.Run(ctx)

		var stageErr *domain.StageError
		require.ErrorAs(t, err, &stageErr)
		assert.Equal(t, domain.StageSubmit, stageErr.Stage)
		assert.Equal(t, int32(1), endpoints.submitCalls.Load())
	})
}

func TestNewAPI_ValidatesEndpoints(t *testing.T) {
	valid := map[string]any{
		domain.ConfigKeyScrapingURL:   "https://example.com/page",
		domain.ConfigKeyInferenceURL:  "https://example.com/infer",
		domain.ConfigKeyValidationURL: "https://example.com/submit",
	}
	_, err := NewAPI(common.NewConfig(valid), common.NewNopLogger())
	require.NoError(t, err)

	for key := range valid {
		t.Run("missing "+key, func(t *testing.T) {
			values := make(map[string]any)
			for k, v := range valid {
				values[k] = v
			}
			delete(values, key)
			_, err := NewAPI(common.NewConfig(values), common.NewNopLogger())
			assert.ErrorContains(t, err, key)
		})
		t.Run("invalid "+key, func(t *testing.T) {
			values := make(map[string]any)
			for k, v := range valid {
				values[k] = v
			}
			values[key] = "SCRAPPING_URL"
			_, err := NewAPI(common.NewConfig(values), common.NewNopLogger())
			assert.ErrorContains(t, err, key)
		})
	}
}
