package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"botforge/middleware"
	"botforge/models/api"
	"botforge/services"
)

type CommandsHTTPHandler struct {
	generationService services.GenerationService
	validationService services.ValidationService
	reporter          ErrorReporter
}

func NewCommandsHTTPHandler(
	generationService services.GenerationService,
	validationService services.ValidationService,
	reporter ErrorReporter,
) *CommandsHTTPHandler {
	return &CommandsHTTPHandler{
		generationService: generationService,
		validationService: validationService,
		reporter:          reporter,
	}
}

type GenerateCommandRequest struct {
	Description string `json:"description"`
}

type ValidateCommandRequest struct {
	Code string `json:"code"`
}

func (h *CommandsHTTPHandler) HandleGenerateCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("✨ Generate command request received from %s", r.RemoteAddr)

	var req GenerateCommandRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	generated, err := h.generationService.GenerateCommand(r.Context(), req.Description)
	if err != nil {
		log.Printf("❌ Failed to generate command: %v", err)
		writeServiceError(w, h.reporter, err, "failed to generate command")
		return
	}

	writeJSONResponse(w, http.StatusOK, api.DomainGeneratedCommandToAPI(generated))
}

func (h *CommandsHTTPHandler) HandleValidateCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔎 Validate command request received from %s", r.RemoteAddr)

	var req ValidateCommandRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	result, err := h.validationService.ValidateCommand(r.Context(), req.Code)
	if err != nil {
		log.Printf("❌ Failed to validate command: %v", err)
		writeServiceError(w, h.reporter, err, "failed to validate command")
		return
	}

	writeJSONResponse(w, http.StatusOK, result)
}

func (h *CommandsHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.ClerkAuthMiddleware) {
	log.Printf("🚀 Registering command AI endpoints")

	router.HandleFunc("/commands/generate", authMiddleware.WithAuth(h.HandleGenerateCommand)).Methods("POST")
	log.Printf("✅ POST /commands/generate endpoint registered")

	router.HandleFunc("/commands/validate", authMiddleware.WithAuth(h.HandleValidateCommand)).Methods("POST")
	log.Printf("✅ POST /commands/validate endpoint registered")
}
