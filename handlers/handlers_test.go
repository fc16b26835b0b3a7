package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"botforge/appctx"
	"botforge/core"
	"botforge/middleware"
	"botforge/models"
	"botforge/services"
)

const testOwnerID = "user_123"

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) AlertOnError(err error, _ string) {
	r.errs = append(r.errs, err)
}

func newAuthedRequest(method, target, body string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = req.WithContext(appctx.SetOwnerID(req.Context(), testOwnerID))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestWriteServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		reported bool
	}{
		{"invalid input", fmt.Errorf("%w: name is required", core.ErrInvalidInput), http.StatusBadRequest, false},
		{"not found", fmt.Errorf("bot b_1: %w", core.ErrNotFound), http.StatusNotFound, false},
		{"upstream", fmt.Errorf("%w: timeout", core.ErrUpstream), http.StatusBadGateway, true},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			rec := httptest.NewRecorder()

			writeServiceError(rec, reporter, tt.err, "failed to do thing")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.reported, len(reporter.errs) == 1)
			if tt.reported {
				assert.Equal(t, "failed to do thing", decodeError(t, rec))
			}
		})
	}
}

func TestHandleGenerateCommand_Success(t *testing.T) {
	generation := &services.MockGenerationService{}
	generation.On("GenerateCommand", mock.Anything, "roll some dice").Return(&models.GeneratedCommand{
		Code:    "module.exports = {}",
		Command: models.CommandDescriptor{Name: "roll", Description: "Roll dice"},
	}, nil)
	handler := NewCommandsHTTPHandler(generation, &services.MockValidationService{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleGenerateCommand(rec, newAuthedRequest("POST", "/commands/generate", `{"description":"roll some dice"}`, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "module.exports = {}", body["code"])
	command := body["command"].(map[string]any)
	assert.Equal(t, "roll", command["name"])
	generation.AssertExpectations(t)
}

func TestHandleGenerateCommand_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		generation := &services.MockGenerationService{}
		handler := NewCommandsHTTPHandler(generation, &services.MockValidationService{}, nil)

		rec := httptest.NewRecorder()
		handler.HandleGenerateCommand(rec, newAuthedRequest("POST", "/commands/generate", `{`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		generation.AssertNotCalled(t, "GenerateCommand", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure", func(t *testing.T) {
		generation := &services.MockGenerationService{}
		generation.On("GenerateCommand", mock.Anything, "x").
			Return(nil, fmt.Errorf("%w: rate limited", core.ErrUpstream))
		reporter := &recordingReporter{}
		handler := NewCommandsHTTPHandler(generation, &services.MockValidationService{}, reporter)

		rec := httptest.NewRecorder()
		handler.HandleGenerateCommand(rec, newAuthedRequest("POST", "/commands/generate", `{"description":"x"}`, nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "failed to generate command", decodeError(t, rec))
		assert.Len(t, reporter.errs, 1)
	})
}

func TestHandleValidateCommand(t *testing.T) {
	validation := &services.MockValidationService{}
	validation.On("ValidateCommand", mock.Anything, "code();").Return(&models.ValidationResult{
		IsValid:       true,
		Errors:        []string{},
		CorrectedCode: "code();",
		Suggestions:   []string{"add a description"},
	}, nil)
	handler := NewCommandsHTTPHandler(&services.MockGenerationService{}, validation, nil)

	rec := httptest.NewRecorder()
	handler.HandleValidateCommand(rec, newAuthedRequest("POST", "/commands/validate", `{"code":"code();"}`, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var result models.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsValid)
	assert.Equal(t, []string{"add a description"}, result.Suggestions)
}

func TestHandleCreateBot(t *testing.T) {
	botsService := &services.MockBotsService{}
	botsService.On("CreateBot", mock.Anything, testOwnerID, "Weather", "Forecasts").
		Return(&models.Bot{ID: "b_1", OwnerID: testOwnerID, Name: "Weather", Description: "Forecasts"}, nil)
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleCreateBot(rec, newAuthedRequest("POST", "/bots", `{"name":"Weather","description":"Forecasts"}`, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b_1", body["id"])
	assert.NotContains(t, body, "owner_id")
	botsService.AssertExpectations(t)
}

func TestHandleCreateBot_RequiresOwner(t *testing.T) {
	botsService := &services.MockBotsService{}
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleCreateBot(rec, httptest.NewRequest("POST", "/bots", strings.NewReader(`{"name":"x"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	botsService.AssertNotCalled(t, "CreateBot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleGetBot_NotFound(t *testing.T) {
	botsService := &services.MockBotsService{}
	botsService.On("GetBotByID", mock.Anything, testOwnerID, "b_missing").Return(mo.None[*models.Bot](), nil)
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleGetBot(rec, newAuthedRequest("GET", "/bots/b_missing", "", map[string]string{"id": "b_missing"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "bot not found", decodeError(t, rec))
}

func TestHandleUpdateBot_InvalidInput(t *testing.T) {
	botsService := &services.MockBotsService{}
	botsService.On("UpdateBot", mock.Anything, testOwnerID, "b_1", "", "").
		Return(nil, fmt.Errorf("bot name is required: %w", core.ErrInvalidInput))
	reporter := &recordingReporter{}
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, reporter)

	rec := httptest.NewRecorder()
	handler.HandleUpdateBot(rec, newAuthedRequest("PUT", "/bots/b_1", `{"name":""}`, map[string]string{"id": "b_1"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "bot name is required")
	assert.Empty(t, reporter.errs)
}

func TestHandleGetCommand(t *testing.T) {
	botsService := &services.MockBotsService{}
	botsService.On("GetCommandByID", mock.Anything, testOwnerID, "b_1", "cmd_1").
		Return(mo.Some(&models.Command{ID: "cmd_1", BotID: "b_1", Name: "ping"}), nil)
	botsService.On("GetCommandByID", mock.Anything, testOwnerID, "b_1", "cmd_2").
		Return(mo.None[*models.Command](), nil)
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	handler.HandleGetCommand(rec, newAuthedRequest("GET", "/bots/b_1/commands/cmd_1", "", map[string]string{"id": "b_1", "commandId": "cmd_1"}))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ping", body["name"])

	rec = httptest.NewRecorder()
	handler.HandleGetCommand(rec, newAuthedRequest("GET", "/bots/b_1/commands/cmd_2", "", map[string]string{"id": "b_1", "commandId": "cmd_2"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCreateCommand_PassesParams(t *testing.T) {
	code := "module.exports = {}"
	botsService := &services.MockBotsService{}
	botsService.On("AddCommand", mock.Anything, testOwnerID, "b_1", mock.MatchedBy(func(p services.CommandParams) bool {
		return p.Name == "ping" && p.GeneratedCode != nil && *p.GeneratedCode == code && p.UserCode == nil
	})).Return(&models.Command{ID: "cmd_1", BotID: "b_1", Name: "ping", GeneratedCode: &code}, nil)
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	body := `{"name":"ping","generatedCode":"module.exports = {}"}`
	handler.HandleCreateCommand(rec, newAuthedRequest("POST", "/bots/b_1/commands", body, map[string]string{"id": "b_1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	botsService.AssertExpectations(t)
}

func TestHandleDeleteEnvVar(t *testing.T) {
	botsService := &services.MockBotsService{}
	botsService.On("DeleteEnvVar", mock.Anything, testOwnerID, "b_1", "env_1").Return(nil)
	handler := NewBotsHTTPHandler(botsService, &services.MockExportService{}, nil)

	rec := httptest.NewRecorder()
	vars := map[string]string{"id": "b_1", "envVarId": "env_1"}
	handler.HandleDeleteEnvVar(rec, newAuthedRequest("DELETE", "/bots/b_1/env-vars/env_1", "", vars))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	botsService.AssertExpectations(t)
}

func TestHandleExportBot(t *testing.T) {
	export := &models.BotExport{
		Files:       models.FileBundle{"package.json": "{}", "index.js": "client.login()"},
		BotName:     "Weather",
		ArchiveName: "weather-bot.zip",
	}

	t.Run("path parameter", func(t *testing.T) {
		exportService := &services.MockExportService{}
		exportService.On("ExportBot", mock.Anything, testOwnerID, "b_1").Return(export, nil)
		handler := NewBotsHTTPHandler(&services.MockBotsService{}, exportService, nil)

		rec := httptest.NewRecorder()
		handler.HandleExportBot(rec, newAuthedRequest("POST", "/bots/b_1/export", "", map[string]string{"id": "b_1"}))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "weather-bot.zip", body["archiveName"])
		assert.Len(t, body["files"], 2)
	})

	t.Run("body parameter", func(t *testing.T) {
		exportService := &services.MockExportService{}
		exportService.On("ExportBot", mock.Anything, testOwnerID, "b_1").Return(export, nil)
		handler := NewBotsHTTPHandler(&services.MockBotsService{}, exportService, nil)

		rec := httptest.NewRecorder()
		handler.HandleExportBotByBody(rec, newAuthedRequest("POST", "/export", `{"botId":"b_1"}`, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		exportService.AssertExpectations(t)
	})

	t.Run("missing bot id", func(t *testing.T) {
		exportService := &services.MockExportService{}
		handler := NewBotsHTTPHandler(&services.MockBotsService{}, exportService, nil)

		rec := httptest.NewRecorder()
		handler.HandleExportBotByBody(rec, newAuthedRequest("POST", "/export", `{}`, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		exportService.AssertNotCalled(t, "ExportBot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown bot", func(t *testing.T) {
		exportService := &services.MockExportService{}
		exportService.On("ExportBot", mock.Anything, testOwnerID, "b_2").
			Return(nil, fmt.Errorf("bot b_2: %w", core.ErrNotFound))
		handler := NewBotsHTTPHandler(&services.MockBotsService{}, exportService, nil)

		rec := httptest.NewRecorder()
		handler.HandleExportBot(rec, newAuthedRequest("POST", "/bots/b_2/export", "", map[string]string{"id": "b_2"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "bot not found", decodeError(t, rec))
	})
}

func TestSetupEndpoints_RoutesThroughAuth(t *testing.T) {
	t.Setenv("TESTING_MODE", "true")

	exportService := &services.MockExportService{}
	exportService.On("ExportBot", mock.Anything, mock.Anything, "b_9").Return(&models.BotExport{Files: models.FileBundle{}}, nil)
	handler := NewBotsHTTPHandler(&services.MockBotsService{}, exportService, nil)

	router := mux.NewRouter()
	handler.SetupEndpoints(router, middleware.NewClerkAuthMiddleware("sk_test_unused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/bots/b_9/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	exportService.AssertExpectations(t)
}
