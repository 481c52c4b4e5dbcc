package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zaslon/internal/reference"
)

const sampleXML = `<ProtectionDataset><Relays>
  <Relay id="R1">
    <CTs><CT primaryA="100" secondaryA="5"/></CTs>
  </Relay>
</Relays></ProtectionDataset>`

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(reference.DefaultSynonyms())
}

func TestNormalizeEndpoint(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader(sampleXML))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		RunID  string                      `json:"run_id"`
		Tables map[string][]map[string]any `json:"tables"`
		Diags  []map[string]any            `json:"diags"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.NotEmpty(t, body.RunID)
	require.Len(t, body.Tables["relays_cts"], 1)
	assert.Equal(t, "CT-R1-01", body.Tables["relays_cts"][0]["ct_id"])
	assert.Equal(t, 20.0, body.Tables["relays_cts"][0]["ratio"])
	// пустая таблица отдаётся пустым списком, отсутствие блока — диагностикой
	assert.NotNil(t, body.Tables["relays_vts"])
	assert.Empty(t, body.Tables["relays_vts"])
	assert.NotEmpty(t, body.Diags)
}

func TestNormalizeEndpointBadXML(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("<broken"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNormalizeEndpointNoRelays(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("<ProtectionDataset/>"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMetaEndpoints(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/meta", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []metaTable
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 9)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/meta/relays_curves", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/meta/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r := testRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
