package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"timetable-optimizer/internal/dto"
)

const optimizePayload = `{
	"space_types": [{"id": 1, "name": "Lab"}],
	"course_types": [{"id": 1, "name": "Bachelor"}],
	"shifts": [{"id": 1, "name": "Morning"}],
	"courses": [{"id": 1, "name": "CS", "course_type_id": 1}],
	"classrooms": [{"id": 1, "name": "Room 101", "floor": 1, "capacity": 30, "space_type_id": 1}],
	"subjects": [{"id": 1, "name": "Algorithms", "required_space_type_id": 1, "course_id": 1}],
	"teachers": [{"id": 1, "full_name": "Prof. Smith"}],
	"class_groups": [{"id": 1, "name": "CS-1", "course_id": 1, "shift_id": 1}],
	"allocations": [{"id": 1, "class_group_id": 1, "subject_id": 1, "teacher_id": 1, "duration": 1}],
	"seed": 5,
	"evolve_runs": 1,
	"evolve_stagnation_limit": 10,
	"anneal_iterations": 20
}`

func buildRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewOptimizerHandler(zap.NewNop(), nil)
	router.POST("/test-connection", h.TestConnection)
	router.POST("/optimize-timetable", h.OptimizeTimetable)
	return router
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestTestConnection(t *testing.T) {
	router := buildRouter()

	req, _ := http.NewRequest(http.MethodPost, "/test-connection", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body dto.TestConnectionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Equal(t, "Connection established", body.Message)
}

func TestOptimizeTimetableSuccess(t *testing.T) {
	router := buildRouter()

	req, _ := http.NewRequest(http.MethodPost, "/optimize-timetable", bytes.NewBufferString(optimizePayload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body dto.OptimizeTimetableResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.NotNil(t, body.Data)
	require.Len(t, body.Data.Schedule, 1)
	require.True(t, body.Data.Statistics.HardConstraintsSatisfied)
}

func TestOptimizeTimetableMalformedBody(t *testing.T) {
	router := buildRouter()

	req, _ := http.NewRequest(http.MethodPost, "/optimize-timetable", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestOptimizeTimetableDanglingForeignKey(t *testing.T) {
	router := buildRouter()

	payload := `{
		"space_types": [{"id": 1, "name": "Lab"}],
		"classrooms": [{"id": 1, "name": "Room 101", "space_type_id": 999}]
	}`
	req, _ := http.NewRequest(http.MethodPost, "/optimize-timetable", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Equal(t, "error", body.Status)
}
