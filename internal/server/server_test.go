package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AreyMadhav/PakSeek/internal/asset"
	"github.com/AreyMadhav/PakSeek/internal/scanner"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter serves the development mock catalog, the same data an
// archive-less scan produces.
func testRouter() *gin.Engine {
	result := &scanner.Result{
		Root:     "/tmp/empty",
		Archives: []string{},
		Assets:   asset.MockCatalog(),
		Graph:    asset.MockDependencies(),
		Mock:     true,
	}
	return New(result).Router()
}

func do(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	w := do(t, testRouter(), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestInfo(t *testing.T) {
	w := do(t, testRouter(), "/info")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "PakSeek", body["name"])
	assert.Equal(t, true, body["mock_data"])
	assert.Equal(t, float64(5), body["assets"])
}

func TestAssetsUnfiltered(t *testing.T) {
	w := do(t, testRouter(), "/assets")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(5), body["total"])
}

func TestAssetsTypeFilter(t *testing.T) {
	w := do(t, testRouter(), "/assets?type=texture")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])

	assets := body["assets"].([]any)
	first := assets[0].(map[string]any)
	assert.Equal(t, "MainMenuBackground", first["name"])
}

func TestAssetsSearchFilter(t *testing.T) {
	w := do(t, testRouter(), "/assets?search=sword")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])
}

func TestPreviewKnownAsset(t *testing.T) {
	w := do(t, testRouter(), "/preview/MainMenuBackground")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "MainMenuBackground", body["asset_name"])

	previewType := body["preview_type"].(map[string]any)
	assert.Equal(t, "image", previewType["type"])
}

func TestPreviewUnknownAsset(t *testing.T) {
	w := do(t, testRouter(), "/preview/Ghost")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "asset not found: Ghost", decode(t, w)["error"])
}

func TestDependenciesFullMap(t *testing.T) {
	w := do(t, testRouter(), "/dependencies")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	deps := body["dependencies"].(map[string]any)
	assert.Len(t, deps, 4)
	assert.Contains(t, deps, "PlayerCharacterMesh")
}

func TestDependenciesPerAsset(t *testing.T) {
	w := do(t, testRouter(), "/dependencies?asset=PlayerCharacterMesh")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "PlayerCharacterMesh", body["asset"])
	assert.Len(t, body["dependencies"], 3)
	assert.Len(t, body["all_dependencies"], 3)
	assert.Empty(t, body["dependents"])
}

func TestDependenciesUnknownAssetIsEmptyNotError(t *testing.T) {
	w := do(t, testRouter(), "/dependencies?asset=Ghost")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Empty(t, body["dependencies"])
	assert.Empty(t, body["dependents"])
}

func TestAnalysisKnownAsset(t *testing.T) {
	w := do(t, testRouter(), "/analysis/PlayerCharacterMesh")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "PlayerCharacterMesh", body["asset_name"])
	assert.Len(t, body["direct_dependencies"], 3)
	assert.NotNil(t, body["dependency_tree"])
	assert.NotNil(t, body["statistics"])
}

func TestAnalysisUnknownAsset(t *testing.T) {
	w := do(t, testRouter(), "/analysis/Ghost")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatistics(t *testing.T) {
	w := do(t, testRouter(), "/statistics")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(11), body["total_dependencies"])
	assert.NotNil(t, body["most_referenced"])
}

func TestValidateCleanGraph(t *testing.T) {
	w := do(t, testRouter(), "/validate")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["clean"])
	assert.Empty(t, body["issues"])
}

func TestExportDefaultsToJSON(t *testing.T) {
	w := do(t, testRouter(), "/export")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["dependencies"], "PlayerCharacterMesh")
}

func TestExportDOT(t *testing.T) {
	w := do(t, testRouter(), "/export?format=dot")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.True(t, strings.HasPrefix(w.Body.String(), "digraph AssetDependencies {"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	w := do(t, testRouter(), "/export?format=toml")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "unsupported export format")
}
